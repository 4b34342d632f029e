package files

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/utils"
)

// TextRewriter is what the processor applies to each file's content.
type TextRewriter interface {
	Text(text string) string
}

type Options struct {
	Write     bool
	Workers   int
	Verbosity int
}

// Result describes one processed file.
type Result struct {
	Path    string
	Changed bool
	Written bool
	Diff    string // filled when Verbosity >= logger.VerbosityDiff
	Err     error
}

// Summary aggregates one batch.
type Summary struct {
	Files    int
	Changed  int
	Skipped  int
	Failed   int
	Duration time.Duration
}

type Processor struct {
	rewriter TextRewriter
	opts     Options
}

func NewProcessor(r TextRewriter, opts Options) *Processor {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Processor{rewriter: r, opts: opts}
}

// Run rewrites every path with a bounded worker pool and reports the results
// in input order. The returned error joins the per-file failures.
func (p *Processor) Run(ctx context.Context, paths []string) (Summary, []Result, error) {
	start := time.Now()
	results := make([]Result, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for range min(p.opts.Workers, max(len(paths), 1)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processFile(ctx, paths[i])
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				results[j] = Result{Path: paths[j], Err: ctx.Err()}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	sum := Summary{Files: len(paths)}
	var errs []error
	for _, r := range results {
		switch {
		case r.Err != nil:
			sum.Failed++
			errs = append(errs, r.Err)
		case r.Changed:
			sum.Changed++
		default:
			sum.Skipped++
		}
		p.report(r)
	}
	sum.Duration = time.Since(start)

	return sum, results, errors.Join(errs...)
}

func (p *Processor) processFile(ctx context.Context, path string) Result {
	res := Result{Path: path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return res
	}

	old := string(data)
	updated := p.rewriter.Text(old)
	if updated == old {
		return res
	}
	res.Changed = true

	if p.opts.Verbosity >= logger.VerbosityDiff {
		res.Diff = Diff(path, old, updated)
	}

	if p.opts.Write {
		if err := utils.WriteFileAtomic(path, []byte(updated)); err != nil {
			res.Err = err
			return res
		}
		res.Written = true
	}

	return res
}

func (p *Processor) report(r Result) {
	pr := logger.Printer()

	switch {
	case r.Err != nil:
		logger.LogError("%v", r.Err)
	case !r.Changed:
		if p.opts.Verbosity >= logger.VerbosityLoud {
			logger.Line(pr.Dim("Already sorted %s", r.Path))
		}
	case r.Written:
		logger.Line(pr.Dim("Updated") + " " + pr.Filename("%s", r.Path))
	default:
		logger.Line(pr.Dim("Would update") + " " + pr.Filename("%s", r.Path))
	}

	if r.Diff != "" {
		logger.Line(r.Diff)
	}
}
