package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"
)

// Worker pool sizing limits.
const (
	minWorkers = 1
	maxWorkers = 8
)

// fileJob processes one input file, writing its normal output to stdout and
// diagnostics to stderr.
type fileJob func(ctx context.Context, path string, stdout, stderr io.Writer) error

// fileResult holds the outcome of a single file.
type fileResult struct {
	Path     string
	Stdout   bytes.Buffer
	Stderr   bytes.Buffer
	Err      error
	Duration time.Duration
}

// resolveWorkers determines the worker count.
// Priority: explicit setting > GOMAXPROCS (adjusted by automaxprocs for containers).
// Never more workers than files.
func resolveWorkers(configured, files int) int {
	n := configured
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
		if n > maxWorkers {
			n = maxWorkers
		}
	}
	if n > files {
		n = files
	}
	if n < minWorkers {
		n = minWorkers
	}
	return n
}

// processFiles runs job over paths concurrently and returns results in
// input order. Once ctx is canceled, remaining files fail with ctx.Err().
func processFiles(ctx context.Context, paths []string, workers int, job fileJob) []*fileResult {
	if len(paths) == 0 {
		return nil
	}

	results := make([]*fileResult, len(paths))
	jobs := make(chan int, len(paths))
	var wg sync.WaitGroup

	for w := 0; w < resolveWorkers(workers, len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r := &fileResult{Path: paths[idx]}
				if err := ctx.Err(); err != nil {
					r.Err = err
					results[idx] = r
					continue
				}
				start := time.Now()
				r.Err = job(ctx, paths[idx], &r.Stdout, &r.Stderr)
				r.Duration = time.Since(start)
				results[idx] = r
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// emitFunc writes one file's standard output.
type emitFunc func(w io.Writer, r *fileResult) error

// reportResults writes results in input order and returns an error
// summarizing failures. The first failure is wrapped so exit codes reflect
// its kind.
func reportResults(results []*fileResult, s *settings, env *Environment, emit emitFunc) error {
	var (
		failed   int
		firstErr error
	)

	for _, r := range results {
		if r.Stderr.Len() > 0 && !s.quiet {
			_, _ = env.Stderr.Write(r.Stderr.Bytes())
		}
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Path, r.Err)
			}
		}
		if r.Stdout.Len() > 0 {
			if err := emit(env.Stdout, r); err != nil {
				return fmt.Errorf("%w: %v", ErrWriteOutput, err)
			}
		}
		if s.verbose {
			fmt.Fprintf(env.Stderr, "%s (%v)\n", r.Path, r.Duration.Round(time.Microsecond))
		}
	}

	switch {
	case failed == 0:
		return nil
	case len(results) == 1:
		return firstErr
	default:
		return fmt.Errorf("%d of %d file(s) failed: %w", failed, len(results), firstErr)
	}
}
