package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/ddirect/collection"
	"github.com/ddirect/collection/arraylist"
	"github.com/ddirect/collection/fifo"
	"github.com/ddirect/collection/linkedlist"
	"github.com/ddirect/collection/pqueue"
	"github.com/spf13/cobra"
)

type demoConfig struct {
	initialCapacity int
	descending      bool
	count           int
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		initialCapacity: 1,
		count:           10,
	}
}

func makeDemoCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "collectiondemo [command] (flags)",
		Short: "collectiondemo exercises the sequences and queues of the collection module.",
		Long: `collectiondemo exercises the sequences and queues of the collection module.

Typical usage:
    collectiondemo lists
        Build the same four item list with a linked list and an array list and print both.

    collectiondemo queue --descending --count=5
        Fill a priority queue and print the order items come out in.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(makeListsCommand())
	command.AddCommand(makeQueueCommand())
	command.AddCommand(makeFifoCommand())
	return command
}

func makeListsCommand() *cobra.Command {
	config := defaultDemoConfig()
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Build [4 5 6 7] with both sequence implementations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLists(cmd.OutOrStdout(), config)
		},
	}
	cmd.Flags().IntVar(&config.initialCapacity, "initial-capacity", config.initialCapacity, "initial capacity of the array list")
	return cmd
}

func makeQueueCommand() *cobra.Command {
	config := defaultDemoConfig()
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Fill a priority queue and print the order items come out in.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueue(cmd.OutOrStdout(), config)
		},
	}
	cmd.Flags().IntVar(&config.initialCapacity, "initial-capacity", config.initialCapacity, "initial capacity of the heap")
	cmd.Flags().BoolVar(&config.descending, "descending", config.descending, "hand out the largest item first")
	cmd.Flags().IntVar(&config.count, "count", config.count, "number of items to add")
	return cmd
}

func makeFifoCommand() *cobra.Command {
	config := defaultDemoConfig()
	cmd := &cobra.Command{
		Use:   "fifo",
		Short: "Fill a FIFO queue and print the order items come out in.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFifo(cmd.OutOrStdout(), config)
		},
	}
	cmd.Flags().IntVar(&config.count, "count", config.count, "number of items to add")
	return cmd
}

func printElements(w io.Writer, s collection.Sequence[int]) error {
	for i := range s.Size() {
		v, err := s.At(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d: %d\n", i, *v)
	}
	fmt.Fprintln(w)
	return nil
}

func runLists(w io.Writer, config demoConfig) error {
	if config.initialCapacity < 0 {
		return errors.Newf("invalid initial capacity %d", config.initialCapacity)
	}

	linked := linkedlist.New[int]()
	linked.Add(5)
	linked.AddFirst(4)
	linked.AddLast(7)
	if err := linked.Put(2, 6); err != nil {
		return errors.Wrap(err, "linked list")
	}
	fmt.Fprintln(w, "Linked List:")
	if err := printElements(w, linked); err != nil {
		return err
	}

	array := arraylist.New[int](collection.WithInitialCapacity(config.initialCapacity))
	array.Add(5)
	if err := array.Put(0, 4); err != nil {
		return errors.Wrap(err, "array list")
	}
	array.Add(7)
	if err := array.Put(2, 6); err != nil {
		return errors.Wrap(err, "array list")
	}
	fmt.Fprintln(w, "Array List:")
	return printElements(w, array)
}

func drainQueue(w io.Writer, q collection.Queue[int]) error {
	for !q.Empty() {
		top, err := q.Peek()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\n", *top)
		if err := q.Drop(); err != nil {
			return err
		}
	}
	return nil
}

func runQueue(w io.Writer, config demoConfig) error {
	if config.initialCapacity < 0 {
		return errors.Newf("invalid initial capacity %d", config.initialCapacity)
	}
	opt := collection.WithInitialCapacity(config.initialCapacity)

	var q *pqueue.Queue[int]
	if config.descending {
		q = pqueue.New(func(a, b int) bool { return a > b }, opt)
		for i := range config.count {
			q.Add(i * 2)
		}
	} else {
		q = pqueue.NewOrdered[int](opt)
		for i := config.count; i > 0; i-- {
			q.Add(i)
		}
	}
	fmt.Fprintf(w, "Priority Queue (%d items):\n", q.Size())
	return drainQueue(w, q)
}

func runFifo(w io.Writer, config demoConfig) error {
	q := fifo.New[int]()
	for i := config.count; i > 0; i-- {
		q.Add(i)
	}
	fmt.Fprintf(w, "FIFO Queue (%d items):\n", q.Size())
	return drainQueue(w, q)
}
