package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"Algorithms/kmp"
	"Algorithms/trie"
	"Algorithms/trie/ahocorasick"
	"Algorithms/utils"

	"github.com/pkg/errors"
)

// runKMP reads a text and a pattern and prints the number of occurrences.
func runKMP(e *env, args []string) (err error) {
	fs, common := newFlagSet(e, "kmp")
	verbose := fs.Bool("v", false, "Also print the start offsets")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, closeIn, err := common.apply(e)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(e.stdout)
	defer finish(&err, out, closeIn)

	tok := newTokens(in)
	text, err := tok.next("text")
	if err != nil {
		return err
	}
	pattern, err := tok.next("pattern")
	if err != nil {
		return err
	}

	k := kmp.New()
	res, err := k.Run(text, pattern)
	if err != nil {
		return err
	}
	e.log.Debug().Int("text", len(text)).Int("pattern", len(pattern)).Int("matches", len(res)).Msg("kmp done")

	fmt.Fprintln(out, len(res))
	if *verbose {
		fmt.Fprintln(out, strings.Join(utils.Map(res, strconv.Itoa), " "))
	}
	common.printMem(out, k.MemDetailed())
	return nil
}

// runAho reads a pattern count, the patterns and a text, and prints the
// occurrence count of every pattern. A missing text prints nothing.
func runAho(e *env, args []string) (err error) {
	fs, common := newFlagSet(e, "aho")
	exact := fs.Bool("exact", false, "Only count a pattern when the scan state is its own node, ignoring suffix matches")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, closeIn, err := common.apply(e)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(e.stdout)
	defer finish(&err, out, closeIn)

	tok := newTokens(in)
	n, err := tok.count("pattern count")
	if err != nil {
		return err
	}
	patterns := make([]string, n)
	for i := range patterns {
		if patterns[i], err = tok.next("pattern"); err != nil {
			return err
		}
	}
	text, err := tok.next("text")
	if errors.Is(err, errUnexpectedEOF) {
		e.log.Debug().Int("patterns", n).Msg("no text to scan")
		return nil
	}
	if err != nil {
		return err
	}

	a, err := ahocorasick.NewFromPatterns(patterns)
	if err != nil {
		return err
	}
	a.Precompute()

	var counts []int
	if *exact {
		counts = a.CountExact(text)
	} else {
		counts = a.Count(text)
	}
	total := utils.Fold(counts, 0, func(acc, c int) int { return acc + c })
	e.log.Debug().Int("patterns", n).Int("states", a.States()).Int("matches", total).Msg("scan done")

	fmt.Fprintln(out, strings.Join(utils.Map(counts, strconv.Itoa), " "))
	common.printMem(out, a.MemDetailed())
	return nil
}

// runTrie reads a word list followed by queries and prints whether each query
// is a stored word.
func runTrie(e *env, args []string) (err error) {
	fs, common := newFlagSet(e, "trie")
	prefix := fs.Bool("prefix", false, "Answer prefix queries instead of exact ones")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in, closeIn, err := common.apply(e)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(e.stdout)
	defer finish(&err, out, closeIn)

	tok := newTokens(in)
	n, err := tok.count("word count")
	if err != nil {
		return err
	}
	t := trie.New()
	for i := 0; i < n; i++ {
		w, err := tok.next("word")
		if err != nil {
			return err
		}
		t.Insert(w)
	}
	q, err := tok.count("query count")
	if err != nil {
		return err
	}
	e.log.Debug().Int("words", t.Len()).Int("nodes", t.NodeCount()).Msg("trie built")

	for i := 0; i < q; i++ {
		w, err := tok.next("query")
		if err != nil {
			return err
		}
		if *prefix {
			fmt.Fprintln(out, t.StartsWith(w))
		} else {
			fmt.Fprintln(out, t.Search(w))
		}
	}
	common.printMem(out, t.MemDetailed())
	return nil
}
