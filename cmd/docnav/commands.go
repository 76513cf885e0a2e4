package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	docnav "github.com/alnah/go-docnav"
	"github.com/alnah/go-docnav/internal/fileutil"
	"github.com/alnah/go-docnav/internal/highlight"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoInput        = errors.New("no input specified")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrMissingTitle   = errors.New("--title is required")
)

// stdinPath selects standard input as a document.
const stdinPath = "-"

// inputReader reads documents, allowing standard input to be consumed once.
type inputReader struct {
	env  *Environment
	once sync.Once
	data string
	err  error
}

// readText returns the raw content of path, or of standard input for "-".
func (r *inputReader) readText(path string) (string, error) {
	if path == stdinPath {
		r.once.Do(func() {
			b, err := io.ReadAll(r.env.Stdin)
			r.data, r.err = string(b), err
		})
		if r.err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadInput, r.err)
		}
		return r.data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// readLines returns the lines of path, or of standard input for "-".
func (r *inputReader) readLines(path string) ([]string, error) {
	text, err := r.readText(path)
	if err != nil {
		return nil, err
	}
	return fileutil.SplitLines(text), nil
}

// loadOutline reads path and extracts its headers.
func loadOutline(in *inputReader, path string, s *settings) (*docnav.Outline, []string, error) {
	d, err := s.dialectFor(path)
	if err != nil {
		return nil, nil, err
	}
	lines, err := in.readLines(path)
	if err != nil {
		return nil, nil, err
	}
	outline, err := docnav.ParseOutline(lines, docnav.ParseOptions{
		Dialect:  d,
		MaxLevel: s.maxLevel,
		AST:      s.ast,
	})
	if err != nil {
		return nil, nil, err
	}
	return outline, lines, nil
}

// warnWriter returns where soft warnings go.
func warnWriter(s *settings, stderr io.Writer) io.Writer {
	if s.quiet {
		return nil
	}
	return stderr
}

// requireInputs rejects an empty argument list.
func requireInputs(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: pass one or more files, or - for stdin", ErrNoInput)
	}
	return nil
}

// newEmitter returns an emitFunc that colorizes Markdown output when the
// color mode allows it.
func newEmitter(s *settings, env *Environment, language string) (emitFunc, error) {
	enabled, err := highlight.Enabled(s.color, env.Stdout, env.Getenv("NO_COLOR") != "")
	if err != nil {
		return nil, err
	}
	if !enabled || language == "" {
		return func(w io.Writer, r *fileResult) error {
			_, err := w.Write(r.Stdout.Bytes())
			return err
		}, nil
	}

	h := highlight.New(s.style)
	return func(w io.Writer, r *fileResult) error {
		return h.Write(w, r.Stdout.String(), language)
	}, nil
}

// writeBlock writes text followed by a newline, skipping empty text.
func writeBlock(w io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(w, text)
}

// runHeaders lists headers in the configured format. With validation on,
// the list is still printed before a structure error is reported, so a
// malformed outline can be inspected.
func runHeaders(ctx context.Context, paths []string, s *settings, env *Environment) error {
	if err := requireInputs(paths); err != nil {
		return err
	}
	in := &inputReader{env: env}
	multi := len(paths) > 1 && s.format != docnav.FormatCFile

	results := processFiles(ctx, paths, s.workers, func(_ context.Context, path string, stdout, stderr io.Writer) error {
		outline, _, err := loadOutline(in, path, s)
		if err != nil {
			return err
		}
		text, err := outline.Format(s.format, path)
		if err != nil {
			return err
		}
		if multi && !s.quiet {
			fmt.Fprintf(stdout, "==> %s <==\n", path)
		}
		writeBlock(stdout, text)
		if !s.validate {
			return nil
		}
		return outline.Validate(warnWriter(s, stderr))
	})

	language := "markdown"
	if s.format == docnav.FormatCFile {
		language = ""
	}
	emit, err := newEmitter(s, env, language)
	if err != nil {
		return err
	}
	return reportResults(results, s, env, emit)
}

// runCheck validates the structure of each file.
func runCheck(ctx context.Context, paths []string, s *settings, env *Environment) error {
	if err := requireInputs(paths); err != nil {
		return err
	}
	in := &inputReader{env: env}

	results := processFiles(ctx, paths, s.workers, func(_ context.Context, path string, stdout, stderr io.Writer) error {
		outline, _, err := loadOutline(in, path, s)
		if err != nil {
			return err
		}
		if err := outline.Validate(warnWriter(s, stderr)); err != nil {
			return err
		}
		if !s.quiet {
			fmt.Fprintf(stdout, "ok %s (%d headers)\n", path, len(outline.Headers))
		}
		return nil
	})

	emit, err := newEmitter(s, env, "")
	if err != nil {
		return err
	}
	return reportResults(results, s, env, emit)
}

// runTOC prints the top-level outline of each file.
func runTOC(ctx context.Context, paths []string, s *settings, env *Environment) error {
	if err := requireInputs(paths); err != nil {
		return err
	}
	in := &inputReader{env: env}
	multi := len(paths) > 1

	results := processFiles(ctx, paths, s.workers, func(_ context.Context, path string, stdout, stderr io.Writer) error {
		outline, _, err := loadOutline(in, path, s)
		if err != nil {
			return err
		}
		if err := outline.Validate(warnWriter(s, stderr)); err != nil {
			return err
		}
		if multi && !s.quiet {
			fmt.Fprintf(stdout, "==> %s <==\n", path)
		}
		writeBlock(stdout, docnav.TableOfContents(outline.Tree()))
		return nil
	})

	emit, err := newEmitter(s, env, "markdown")
	if err != nil {
		return err
	}
	return reportResults(results, s, env, emit)
}

// runNav prints the navigation outline for one selected header.
func runNav(ctx context.Context, paths []string, level int, title string, s *settings, env *Environment) error {
	if err := requireInputs(paths); err != nil {
		return err
	}
	if len(paths) > 1 {
		return fmt.Errorf("%w: nav takes exactly one file, got %d", ErrUsage, len(paths))
	}
	if strings.TrimSpace(title) == "" {
		return ErrMissingTitle
	}
	in := &inputReader{env: env}

	results := processFiles(ctx, paths, 1, func(_ context.Context, path string, stdout, stderr io.Writer) error {
		outline, _, err := loadOutline(in, path, s)
		if err != nil {
			return err
		}
		if err := outline.Validate(warnWriter(s, stderr)); err != nil {
			return err
		}
		nav, err := outline.Navigate(level, title, s.markers)
		if err != nil {
			return err
		}
		writeBlock(stdout, nav)
		return nil
	})

	emit, err := newEmitter(s, env, "markdown")
	if err != nil {
		return err
	}
	return reportResults(results, s, env, emit)
}
