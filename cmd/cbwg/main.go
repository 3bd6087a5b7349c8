// Command cbwg is a thin demo wrapper around the batch package: it
// reads a rule file and a wordlist and writes every surviving candidate
// to stdout, one per line, grouped by rule line and then by word.
//
// It is a demonstration of the library, not a hardened CLI: flag
// parsing uses the standard library's flag package rather than
// introducing a CLI framework the rest of the module has no other use
// for.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hackerman70000/cbwg/batch"
)

func main() {
	rulePath := flag.String("rules", "", "path to a rule file, one rule line per line")
	wordlistPath := flag.String("words", "", "path to a wordlist, one word per line")
	workers := flag.Int("workers", 0, "max words evaluated concurrently per rule line (0 = unbounded)")
	verbose := flag.Bool("v", false, "log skipped (unparseable) rule lines to stderr")
	flag.Parse()

	if *rulePath == "" || *wordlistPath == "" {
		fmt.Fprintln(os.Stderr, "usage: cbwg -rules <file> -words <file> [-workers N] [-v]")
		os.Exit(2)
	}

	ruleLines, err := readLines(*rulePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cbwg: reading rules:", err)
		os.Exit(1)
	}
	words, err := readLines(*wordlistPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cbwg: reading words:", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if !*verbose {
		log.SetLevel(logrus.ErrorLevel)
	}

	out := batch.Run(context.Background(), ruleLines, words, batch.Options{
		Logger:  log,
		Workers: *workers,
	})

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, candidate := range out {
		fmt.Fprintln(w, candidate)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
