package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/gjson"
	"golang.org/x/sync/errgroup"
)

// checkConcurrency limits how many catalogs are checked at once.
const checkConcurrency = 4

// checkResult is the outcome of checking one source.
type checkResult struct {
	source     string
	categories int
	commands   int
	digest     string
	err        error
}

// Run executes the check command. Every source is checked even when
// others fail; results are printed in argument order.
func (c *CheckCmd) Run(deps *Dependencies) error {
	results := make([]checkResult, len(c.Sources))

	var g errgroup.Group
	g.SetLimit(checkConcurrency)
	for i, source := range c.Sources {
		g.Go(func() error {
			results[i] = c.check(deps.Ctx, deps, source)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(deps.Stdout, "FAIL %s\n", r.source)
			for _, line := range strings.Split(errorText(r.err), "\n") {
				fmt.Fprintf(deps.Stdout, "     %s\n", line)
			}
			continue
		}
		fmt.Fprintf(deps.Stdout, "ok   %s (%d categories, %s, digest %s)\n",
			r.source, r.categories, cmdref.FormatCommandCount(r.commands), r.digest)
	}

	if failed > 0 {
		return cmdref.Errorf(cmdref.EINVALID, "%d of %d catalogs failed the check", failed, len(results))
	}
	return nil
}

// check fetches one source, validates it against the catalog schema and
// normalizes it.
func (c *CheckCmd) check(ctx context.Context, deps *Dependencies, source string) checkResult {
	r := checkResult{source: source}

	f, err := deps.fetcher(source)
	if err != nil {
		r.err = err
		return r
	}
	r.source = f.Source()

	data, err := f.Fetch(ctx)
	if err != nil {
		r.err = err
		return r
	}

	if err := deps.Validator.Validate(data); err != nil {
		r.err = err
		return r
	}

	doc, err := gjson.Decode(data)
	if err != nil {
		r.err = err
		return r
	}
	categories, err := cmdref.Normalize(doc)
	if err != nil {
		r.err = err
		return r
	}

	r.categories = len(categories)
	for _, category := range categories {
		r.commands += len(category.Commands)
	}
	r.digest = doc.Digest
	return r
}
