package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"Algorithms/segtree"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

const shellHelp = `commands:
  update <pos> <value>   set a value (1-based)
  query <l> <r>          aggregate of [l, r] (1-based, inclusive)
  prefix <k>             aggregate of the first k values
  show                   print the values
  mem                    print a memory report
  help
  quit
`

var errQuit = errors.New("quit")

// shell evaluates one command line against a segment tree.
type shell struct {
	st *segtree.SegmentTree[int64]
}

func (s *shell) exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	args, err := atois(fields[1:])
	if err != nil {
		return "", err
	}
	switch fields[0] {
	case "update", "u":
		if len(args) != 2 {
			return "", errors.New("usage: update <pos> <value>")
		}
		if err := s.st.Update(args[0]-1, int64(args[1])); err != nil {
			return "", err
		}
		return "ok", nil
	case "query", "q":
		if len(args) != 2 {
			return "", errors.New("usage: query <l> <r>")
		}
		res, err := s.st.Query(args[0]-1, args[1]-1)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(res, 10), nil
	case "prefix", "p":
		if len(args) != 1 {
			return "", errors.New("usage: prefix <k>")
		}
		res, err := s.st.Prefix(args[0])
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(res, 10), nil
	case "show":
		return fmt.Sprint(s.st.Values()), nil
	case "mem":
		return strings.TrimRight(s.st.MemDetailed().Human(), "\n"), nil
	case "help":
		return strings.TrimRight(shellHelp, "\n"), nil
	case "quit", "exit":
		return "", errQuit
	default:
		return "", errors.Errorf("unknown command %q, try help", fields[0])
	}
}

func atois(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

// runShell reads commands from r until EOF or quit.
func runShell(e *env, r io.Reader, st *segtree.SegmentTree[int64]) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "segtree> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           io.NopCloser(r),
		Stdout:          e.stdout,
		Stderr:          e.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	sh := &shell{st: st}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		out, err := sh.exec(line)
		if err == errQuit {
			return nil
		}
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(rl.Stdout(), out)
		}
	}
}
