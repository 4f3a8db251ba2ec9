package collection_test

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/ddirect/collection"
	"github.com/ddirect/collection/arraylist"
	"github.com/ddirect/collection/linkedlist"
	godslist "github.com/emirpasic/gods/lists/arraylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequenceFactory func(opts ...collection.Option) collection.Sequence[int]

var sequences = []struct {
	name   string
	newSeq sequenceFactory
}{
	{"array", func(opts ...collection.Option) collection.Sequence[int] { return arraylist.New[int](opts...) }},
	{"linked", func(opts ...collection.Option) collection.Sequence[int] { return linkedlist.New[int](opts...) }},
}

func show(s collection.Sequence[int]) string {
	return fmt.Sprint(slices.Collect(s.Values()))
}

// Test_SequenceScript runs the same script against every sequence: the
// expected output is shared, so the implementations must be interchangeable.
func Test_SequenceScript(t *testing.T) {
	for _, seq := range sequences {
		t.Run(seq.name, func(t *testing.T) {
			var s collection.Sequence[int]
			datadriven.RunTest(t, "testdata/sequence", func(t *testing.T, d *datadriven.TestData) string {
				if d.Cmd != "new" {
					require.NotNil(t, s, "%s: new must come first", d.Pos)
				}
				switch d.Cmd {
				case "new":
					var opts []collection.Option
					if c := intArgs(t, d, "capacity"); len(c) > 0 {
						opts = append(opts, collection.WithInitialCapacity(c[0]))
					}
					s = seq.newSeq(opts...)
					return show(s)
				case "add":
					for _, v := range intArgs(t, d, "v") {
						s.Add(v)
					}
					return show(s)
				case "put":
					if err := s.Put(intArg(t, d, "i"), intArg(t, d, "v")); err != nil {
						return errorOutput(err)
					}
					return show(s)
				case "set":
					if err := s.Set(intArg(t, d, "i"), intArg(t, d, "v")); err != nil {
						return errorOutput(err)
					}
					return show(s)
				case "remove":
					removed := s.Remove(intArg(t, d, "v"))
					return fmt.Sprintf("%t %s", removed, show(s))
				case "remove-at":
					if err := s.RemoveAt(intArg(t, d, "i")); err != nil {
						return errorOutput(err)
					}
					return show(s)
				case "at":
					v, err := s.At(intArg(t, d, "i"))
					if err != nil {
						return errorOutput(err)
					}
					return strconv.Itoa(*v)
				case "contains":
					return strconv.FormatBool(s.Contains(intArg(t, d, "v")))
				case "size":
					return strconv.Itoa(s.Size())
				case "empty":
					return strconv.FormatBool(s.Empty())
				case "clear":
					s.Clear()
					return show(s)
				default:
					d.Fatalf(t, "unknown command %s", d.Cmd)
					return ""
				}
			})
		})
	}
}

// Test_Interchangeable drives every sequence with the same operations and
// compares them after each step.
func Test_Interchangeable(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 0))
	var all []collection.Sequence[int]
	for _, seq := range sequences {
		all = append(all, seq.newSeq(collection.WithInitialCapacity(1)))
	}
	apply := func(op func(s collection.Sequence[int]) error) {
		var first error
		for i, s := range all {
			err := op(s)
			if i == 0 {
				first = err
			} else {
				assert.Equal(t, first == nil, err == nil)
			}
		}
	}
	for range 3000 {
		n := all[0].Size()
		i := rnd.IntN(n+3) - 1
		v := rnd.IntN(20)
		switch rnd.IntN(5) {
		case 0:
			apply(func(s collection.Sequence[int]) error { s.Add(v); return nil })
		case 1:
			apply(func(s collection.Sequence[int]) error { return s.Put(i, v) })
		case 2:
			apply(func(s collection.Sequence[int]) error { return s.Set(i, v) })
		case 3:
			apply(func(s collection.Sequence[int]) error { s.Remove(v); return nil })
		case 4:
			apply(func(s collection.Sequence[int]) error { return s.RemoveAt(i) })
		}
		for _, s := range all[1:] {
			require.Equal(t, all[0].Size(), s.Size())
			require.Equal(t, slices.Collect(all[0].Values()), slices.Collect(s.Values()))
		}
	}
}

// makeCore checks every sequence against the gods array list used as a
// reference model.
func makeCore(log LogFunc) func(t *testing.T, seed uint64, variance int) {
	type stats struct {
		Seed uint64
		Variance,
		Iterations, FinalLen, MaxLen,
		Add, Put, Set, Remove, RemoveMissing, RemoveAt, OutOfRange int
	}

	return func(t *testing.T, seed uint64, variance int) {
		if variance < 1 {
			return
		}

		rnd := rand.New(rand.NewPCG(seed, 0))
		iterations := rnd.IntN(variance) + 1
		maxValue := rnd.IntN(variance) + 1
		s := stats{
			Seed:       seed,
			Variance:   variance,
			Iterations: iterations,
		}

		for _, seq := range sequences {
			s.Add, s.Put, s.Set, s.Remove, s.RemoveMissing, s.RemoveAt, s.OutOfRange = 0, 0, 0, 0, 0, 0, 0
			rnd = rand.New(rand.NewPCG(seed, 0))
			sq := seq.newSeq(collection.WithInitialCapacity(rnd.IntN(4)))
			ref := godslist.New()

			checkRange := func(err error, ok bool) {
				if ok {
					require.NoError(t, err)
				} else {
					require.True(t, errors.Is(err, collection.ErrIndexOutOfRange), "%v", err)
					s.OutOfRange++
				}
			}

			for range iterations {
				n := ref.Size()
				i := rnd.IntN(n+3) - 1
				v := rnd.IntN(maxValue)
				switch rnd.IntN(6) {
				case 0, 1:
					sq.Add(v)
					ref.Add(v)
					s.Add++
				case 2:
					ok := i >= 0 && i <= n
					checkRange(sq.Put(i, v), ok)
					if ok {
						ref.Insert(i, v)
						s.Put++
					}
				case 3:
					ok := i >= 0 && i < n
					checkRange(sq.Set(i, v), ok)
					if ok {
						ref.Set(i, v)
						s.Set++
					}
				case 4:
					// gods IndexOf also scans the stale slots past Size, Contains does not
					found := ref.Contains(v)
					require.Equal(t, found, sq.Contains(v), "value %d", v)
					require.Equal(t, found, sq.Remove(v), "value %d", v)
					if found {
						at := ref.IndexOf(v)
						require.Less(t, at, ref.Size())
						ref.Remove(at)
						s.Remove++
					} else {
						s.RemoveMissing++
					}
				case 5:
					ok := i >= 0 && i < n
					checkRange(sq.RemoveAt(i), ok)
					if ok {
						ref.Remove(i)
						s.RemoveAt++
					}
				}
				require.Equal(t, ref.Size(), sq.Size())
				s.MaxLen = max(s.MaxLen, sq.Size())
			}

			exp := make([]int, 0, ref.Size())
			for _, v := range ref.Values() {
				exp = append(exp, v.(int))
			}
			got := make([]int, 0, sq.Size())
			for i := range sq.Size() {
				v, err := sq.At(i)
				require.NoError(t, err)
				got = append(got, *v)
			}
			assert.Equal(t, exp, got, seq.name)
			s.FinalLen = sq.Size()

			sStr, _ := json.Marshal(s)
			log(t, append([]byte(seq.name+" "), sStr...))
		}
	}
}

func Fuzz_Multi(f *testing.F) {
	f.Add(uint64(1), 10)
	f.Add(uint64(2), 1000)
	f.Add(uint64(3), 5000)
	f.Add(uint64(104), 53)
	f.Fuzz(makeCore(makeLogFunc(logFile)))
}
