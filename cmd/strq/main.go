package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"Algorithms/errutil"
	"Algorithms/utils"

	"github.com/rs/zerolog"
)

const usage = `usage: strq <command> [flags]

commands:
  segtree   range aggregates with point updates
  kmp       occurrences of a pattern in a text
  aho       occurrence counts of several patterns in a text
  trie      word membership queries
`

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"segtree": runSegTree,
	"kmp":     runKMP,
	"aho":     runAho,
	"trie":    runTrie,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, log: newLogger(stderr, errutil.Debug())}
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
	if err := cmd(e, args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		e.log.Error().Err(err).Str("command", args[0]).Msg("command failed")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "2006-01-02 15:04:05.000"}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	in    string
	mem   bool
	json  bool
	debug bool
}

func newFlagSet(e *env, name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	c := &commonFlags{}
	fs.StringVar(&c.in, "in", "", "Read input from this file instead of stdin")
	fs.BoolVar(&c.mem, "mem", false, "Print a memory report of the built structure")
	fs.BoolVar(&c.json, "json", false, "Print the -mem report as JSON")
	fs.BoolVar(&c.debug, "debug", false, "Debug logging and internal invariant checks")
	return fs, c
}

// apply opens the input and adjusts logging; the returned func closes the input.
func (c *commonFlags) apply(e *env) (io.Reader, func() error, error) {
	if c.debug {
		errutil.SetDebug(true)
		e.log = e.log.Level(zerolog.DebugLevel)
	}
	if c.in == "" {
		return e.stdin, func() error { return nil }, nil
	}
	f, err := os.Open(c.in)
	if err != nil {
		return nil, nil, err
	}
	e.log.Debug().Str("file", c.in).Msg("reading input")
	return f, f.Close, nil
}

// printMem writes report when -mem is set, as JSON with -json.
func (c *commonFlags) printMem(w io.Writer, report utils.MemReport) {
	if !c.mem {
		return
	}
	if c.json {
		fmt.Fprintln(w, report.JSON())
		return
	}
	fmt.Fprint(w, report.Human())
}

// finish flushes out and closes the input, keeping the first error.
func finish(err *error, out *bufio.Writer, closeIn func() error) {
	*err = errutil.First(*err, out.Flush(), closeIn())
}
