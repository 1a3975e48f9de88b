package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Algorithms/segtree"

	"github.com/pkg/errors"
)

func aggregatorByName(name string) (segtree.Aggregator[int64], error) {
	switch name {
	case "sum":
		return segtree.Sum[int64](), nil
	case "min":
		return segtree.Min[int64](), nil
	case "max":
		return segtree.Max[int64](), nil
	case "gcd":
		return segtree.GCD[int64](), nil
	default:
		return segtree.Aggregator[int64]{}, errors.Wrapf(segtree.ErrConfiguration, "unknown aggregator %q", name)
	}
}

// runSegTree reads "n q", n values and q queries. "1 pos value" sets a value,
// "2 l r" prints the aggregate of [l, r]. Positions are 1-based.
//
// With -i the input starts with "n" and n values (or the array comes from
// -values) and every following line is a shell command.
func runSegTree(e *env, args []string) (err error) {
	fs, common := newFlagSet(e, "segtree")
	aggName := fs.String("agg", "sum", "Aggregator: sum, min, max or gcd")
	interactive := fs.Bool("i", false, "Build from the input header, then read shell commands")
	values := fs.String("values", "", "Comma-separated initial array for -i; the whole input is then shell commands")
	if err := fs.Parse(args); err != nil {
		return err
	}
	agg, err := aggregatorByName(*aggName)
	if err != nil {
		return err
	}
	in, closeIn, err := common.apply(e)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(e.stdout)
	defer finish(&err, out, closeIn)

	if *interactive {
		br := bufio.NewReader(in)
		var arr []int64
		if *values != "" {
			arr, err = parseValues(*values)
		} else {
			arr, err = readHeader(br)
		}
		if err != nil {
			return err
		}
		st, err := segtree.NewFromSlice(arr, agg)
		if err != nil {
			return err
		}
		e.log.Debug().Int("n", len(arr)).Str("agg", agg.Name).Msg("segment tree built")
		if err := runShell(e, br, st); err != nil {
			return err
		}
		common.printMem(out, st.MemDetailed())
		return nil
	}

	tok := newTokens(in)
	n, err := tok.count("array size")
	if err != nil {
		return err
	}
	q, err := tok.count("query count")
	if err != nil {
		return err
	}
	arr := make([]int64, n)
	for i := range arr {
		if arr[i], err = tok.int64("array value"); err != nil {
			return err
		}
	}

	st, err := segtree.New(n, int64(0), agg)
	if err != nil {
		return err
	}
	if err := st.Build(arr); err != nil {
		return err
	}
	e.log.Debug().Int("n", n).Int("queries", q).Str("agg", agg.Name).Msg("segment tree built")

	for i := 0; i < q; i++ {
		kind, err := tok.int("query type")
		if err != nil {
			return err
		}
		switch kind {
		case 1:
			pos, err := tok.int("position")
			if err != nil {
				return err
			}
			v, err := tok.int64("value")
			if err != nil {
				return err
			}
			if err := st.Update(pos-1, v); err != nil {
				return errors.WithMessagef(err, "query %d", i+1)
			}
		case 2:
			l, err := tok.int("left bound")
			if err != nil {
				return err
			}
			r, err := tok.int("right bound")
			if err != nil {
				return err
			}
			res, err := st.Query(l-1, r-1)
			if err != nil {
				return errors.WithMessagef(err, "query %d", i+1)
			}
			fmt.Fprintln(out, res)
		default:
			return errors.Errorf("query %d: unknown type %d", i+1, kind)
		}
	}
	common.printMem(out, st.MemDetailed())
	return nil
}

// readHeader reads "n" and n values, line by line, so that br is left at the
// start of the first shell command.
func readHeader(br *bufio.Reader) ([]int64, error) {
	var fields []string
	n := -1
	for n < 0 || len(fields) < n+1 {
		line, err := br.ReadString('\n')
		fields = append(fields, strings.Fields(line)...)
		if n < 0 && len(fields) > 0 {
			if n, err = strconv.Atoi(fields[0]); err != nil {
				return nil, errors.Wrap(err, "array size")
			}
			if n < 0 {
				return nil, errors.Errorf("array size must be non-negative, got %d", n)
			}
			continue
		}
		if err == io.EOF {
			return nil, errors.Wrapf(errUnexpectedEOF, "header has %d of %d values", max(len(fields)-1, 0), max(n, 0))
		}
		if err != nil {
			return nil, err
		}
	}
	if len(fields) > n+1 {
		return nil, errors.Errorf("header has %d values, want %d", len(fields)-1, n)
	}
	arr, err := parseValues(strings.Join(fields[1:], ","))
	if err != nil {
		return nil, err
	}
	return arr, nil
}

func parseValues(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int64{}, nil
	}
	parts := strings.Split(s, ",")
	arr := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		arr[i] = v
	}
	return arr, nil
}
