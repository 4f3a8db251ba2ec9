package collection_test

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

type LogFunc func(t *testing.T, data []byte)

var logFile string

func init() {
	flag.StringVar(&logFile, "logfile", "", "logfile to use")
}

func makeLogFunc(logFile string) LogFunc {
	if logFile == "" {
		return func(t *testing.T, data []byte) {
			t.Logf("%s\n", data)
		}
	}

	logout, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open: %w", err))
	}

	return func(t *testing.T, data []byte) {
		if _, err := logout.Write(append(data, '\n')); err != nil {
			panic(fmt.Errorf("write: %w", err))
		}
	}
}

// intArgs collects every value given for key, including lists like v=(1,2).
func intArgs(t *testing.T, d *datadriven.TestData, key string) []int {
	var res []int
	for _, arg := range d.CmdArgs {
		if arg.Key != key {
			continue
		}
		for _, v := range arg.Vals {
			i, err := strconv.Atoi(v)
			require.NoError(t, err, "%s: %s=%s", d.Pos, key, v)
			res = append(res, i)
		}
	}
	return res
}

func intArg(t *testing.T, d *datadriven.TestData, key string) int {
	v := intArgs(t, d, key)
	require.Len(t, v, 1, "%s: expected exactly one %s", d.Pos, key)
	return v[0]
}

func stringArg(d *datadriven.TestData, key, def string) string {
	for _, arg := range d.CmdArgs {
		if arg.Key == key && len(arg.Vals) > 0 {
			return arg.Vals[0]
		}
	}
	return def
}

func errorOutput(err error) string {
	return fmt.Sprintf("error: %v", err)
}
