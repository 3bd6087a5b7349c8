// Package batch drives the rule engine's two pure layers — parsing and
// evaluation — over a set of rule lines and a set of words, producing
// one flat, deterministically ordered sequence of surviving candidates.
//
// This is the only package in the module that performs I/O-adjacent
// side effects (logging a malformed rule line) or spawns goroutines;
// rule, parser, evalrule, and simplify stay pure and safe to call from
// any goroutine without synchronization.
package batch

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hackerman70000/cbwg/evalrule"
	"github.com/hackerman70000/cbwg/parser"
	"github.com/hackerman70000/cbwg/rule"
	"github.com/hackerman70000/cbwg/simplify"
)

// Options controls batch.Run. The zero value is usable: it logs
// nothing (Logger defaults to a discard logrus.Logger) and fans each
// rule line's words out with no concurrency limit (one goroutine per
// word).
type Options struct {
	// Logger receives one Warn-level entry per rule line that fails to
	// parse; the offending line is skipped, never surfaced as an error
	// from Run. Defaults to a logger writing to io.Discard.
	Logger logrus.FieldLogger

	// Workers bounds how many words are evaluated concurrently within a
	// single rule line's fan-out. Zero (the default) means "let
	// errgroup.SetLimit leave concurrency unbounded", which is safe
	// since evaluating one word is CPU-only and allocation-light.
	Workers int
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Run parses each rule line, simplifies it, and applies the compiled
// sequence to every word in words, concurrently within a line and
// sequentially across lines. Output preserves order: all surviving
// outputs of rule line 0 (in word-input order), then rule line 1, and
// so on. A rule line that fails to parse is logged and skipped — it
// never aborts the batch and never appears in the output.
//
// Run never returns an error: parse failures are observable only
// through the logger, and evaluation is total.
func Run(ctx context.Context, ruleLines, words []string, opts Options) []string {
	log := opts.logger()
	var out []string
	for i, line := range ruleLines {
		rules, _, err := parser.ParseLine(line)
		if err != nil {
			log.WithField("line", i).WithField("text", line).Warn("skipping unparseable rule line: ", err)
			continue
		}
		compiled := simplify.Simplify(rules)
		out = append(out, runLine(ctx, compiled, words, opts)...)
	}
	return out
}

// runLine applies compiled to every word concurrently, writing each
// surviving result into its own indexed slot so the join preserves
// input order regardless of goroutine completion order.
func runLine(ctx context.Context, compiled []rule.Rule, words []string, opts Options) []string {
	scanner := evalrule.NewScanner(compiled)
	results := make([]string, len(words))
	kept := make([]bool, len(words))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if out, ok := evalrule.ApplyAllScanned(compiled, w, scanner); ok {
				results[i] = out
				kept[i] = true
			}
			return nil
		})
	}
	// Evaluation is total and side-effect-free, so the only error an
	// evaluation goroutine can return is context cancellation; a
	// cancelled batch simply yields whatever was already produced.
	_ = g.Wait()

	out := make([]string, 0, len(words))
	for i, ok := range kept {
		if ok {
			out = append(out, results[i])
		}
	}
	return out
}
