package main

// Notes:
// - processFiles: ordering, concurrency bound and cancellation.
// - reportResults: summary error wrapping and per-file stderr handling.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	docnav "github.com/alnah/go-docnav"
)

// ---------------------------------------------------------------------------
// TestResolveWorkers - Pool sizing
// ---------------------------------------------------------------------------

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	auto := runtime.GOMAXPROCS(0)
	if auto > maxWorkers {
		auto = maxWorkers
	}

	tests := []struct {
		name       string
		configured int
		files      int
		want       int
	}{
		{"explicit", 3, 10, 3},
		{"explicit above auto cap", 20, 30, 20},
		{"capped by file count", 6, 2, 2},
		{"auto", 0, 100, auto},
		{"never zero", 0, 0, minWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveWorkers(tt.configured, tt.files); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.configured, tt.files, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestProcessFiles - Ordering and concurrency
// ---------------------------------------------------------------------------

func TestProcessFiles(t *testing.T) {
	t.Parallel()

	paths := []string{"a.md", "b.md", "c.md", "d.md", "e.md", "f.md"}

	var running, peak atomic.Int32
	results := processFiles(context.Background(), paths, 2, func(_ context.Context, path string, stdout, _ io.Writer) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		running.Add(-1)

		fmt.Fprint(stdout, path)
		if path == "c.md" {
			return errors.New("bad")
		}
		return nil
	})

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Path != paths[i] || r.Stdout.String() != paths[i] {
			t.Errorf("result %d = %s/%q, want %s", i, r.Path, r.Stdout.String(), paths[i])
		}
		if (r.Err != nil) != (paths[i] == "c.md") {
			t.Errorf("result %d error = %v", i, r.Err)
		}
	}
	if peak.Load() > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak.Load())
	}

	if got := processFiles(context.Background(), nil, 4, nil); got != nil {
		t.Errorf("processFiles(nil) = %v, want nil", got)
	}
}

func TestProcessFiles_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := processFiles(ctx, []string{"a.md", "b.md"}, 1, func(context.Context, string, io.Writer, io.Writer) error {
		calls.Add(1)
		return nil
	})

	if calls.Load() != 0 {
		t.Errorf("job ran %d times after cancellation", calls.Load())
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s error = %v, want context.Canceled", r.Path, r.Err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestReportResults - Summary and output
// ---------------------------------------------------------------------------

func rawEmit(w io.Writer, r *fileResult) error {
	_, err := w.Write(r.Stdout.Bytes())
	return err
}

func newResult(path, stdout, stderr string, err error) *fileResult {
	r := &fileResult{Path: path, Err: err}
	r.Stdout.WriteString(stdout)
	r.Stderr.WriteString(stderr)
	return r
}

func TestReportResults(t *testing.T) {
	t.Parallel()

	t.Run("single failure returned as is", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv("", nil)
		err := reportResults([]*fileResult{newResult("a.md", "- A\n", "", docnav.ErrNotFound)}, &settings{}, env, rawEmit)

		if !errors.Is(err, docnav.ErrNotFound) || strings.Contains(err.Error(), "file(s) failed") {
			t.Errorf("error = %v, want the file error unwrapped", err)
		}
		if stdout.String() != "- A\n" {
			t.Errorf("stdout = %q", stdout.String())
		}
		if strings.Contains(stderr.String(), "FAILED") {
			t.Errorf("single file should not print FAILED line: %q", stderr.String())
		}
	})

	t.Run("multiple failures summarized", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv("", nil)
		results := []*fileResult{
			newResult("a.md", "", "", nil),
			newResult("b.md", "", "", ErrReadInput),
			newResult("c.md", "", "", docnav.ErrNotFound),
		}
		err := reportResults(results, &settings{}, env, rawEmit)

		if err == nil || err.Error() != "2 of 3 file(s) failed: "+ErrReadInput.Error() {
			t.Errorf("error = %v", err)
		}
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("summary does not wrap first error")
		}
		if !strings.Contains(stderr.String(), "FAILED b.md") || !strings.Contains(stderr.String(), "FAILED c.md") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("quiet hides warnings but not failures", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv("", nil)
		results := []*fileResult{
			newResult("a.md", "", "warning: first header\n", nil),
			newResult("b.md", "", "", errors.New("boom")),
		}
		_ = reportResults(results, &settings{quiet: true}, env, rawEmit)

		if strings.Contains(stderr.String(), "warning") {
			t.Errorf("quiet printed warnings: %q", stderr.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.md") {
			t.Errorf("quiet hid failure: %q", stderr.String())
		}
	})

	t.Run("verbose timing", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv("", nil)
		_ = reportResults([]*fileResult{newResult("a.md", "", "", nil)}, &settings{verbose: true}, env, rawEmit)
		if !strings.HasPrefix(stderr.String(), "a.md (") {
			t.Errorf("stderr = %q, want timing line", stderr.String())
		}
	})

	t.Run("emit failure", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv("", nil)
		failing := func(io.Writer, *fileResult) error { return errors.New("closed pipe") }
		err := reportResults([]*fileResult{newResult("a.md", "x", "", nil)}, &settings{}, env, failing)
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("error = %v, want ErrWriteOutput", err)
		}
	})
}
