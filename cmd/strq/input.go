package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var errUnexpectedEOF = errors.New("unexpected end of input")

// tokens reads whitespace-separated tokens.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", errors.Wrapf(err, "reading %s", what)
		}
		return "", errors.Wrapf(errUnexpectedEOF, "expected %s after token %d", what, t.pos)
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokens) int(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "token %d (%s)", t.pos, what)
	}
	return v, nil
}

func (t *tokens) int64(what string) (int64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "token %d (%s)", t.pos, what)
	}
	return v, nil
}

func (t *tokens) count(what string) (int, error) {
	n, err := t.int(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Errorf("%s must be non-negative, got %d", what, n)
	}
	return n, nil
}
