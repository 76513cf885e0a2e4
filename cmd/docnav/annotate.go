package main

import (
	"context"
	"fmt"
	"io"

	docnav "github.com/alnah/go-docnav"
	"github.com/alnah/go-docnav/internal/fileutil"
)

// runAnnotate inserts navigation blocks after each header, then passes the
// result through the configured external formatter. With inPlace the files
// are rewritten; otherwise the annotated text is printed.
func runAnnotate(ctx context.Context, paths []string, inPlace bool, s *settings, env *Environment) error {
	if err := requireInputs(paths); err != nil {
		return err
	}
	if inPlace {
		for _, p := range paths {
			if p == stdinPath {
				return fmt.Errorf("%w: --in-place cannot rewrite stdin", ErrUsage)
			}
		}
	}

	formatter, err := docnav.NewFormatter(s.formatter)
	if err != nil {
		return err
	}
	in := &inputReader{env: env}

	// Files of mixed dialects are highlighted as Markdown; LaTeX only when forced.
	language := "markdown"
	if s.dialect == docnav.LaTeX {
		language = "latex"
	}

	results := processFiles(ctx, paths, s.workers, func(ctx context.Context, path string, stdout, _ io.Writer) error {
		d, err := s.dialectFor(path)
		if err != nil {
			return err
		}
		raw, err := in.readText(path)
		if err != nil {
			return err
		}
		style := fileutil.DetectLineStyle(raw)
		lines := fileutil.SplitLines(raw)

		annotated, err := docnav.Annotate(lines, d, docnav.AnnotateOptions{
			MaxLevel: s.maxLevel,
			Depth:    s.depth,
			Markers:  s.markers,
		})
		if err != nil {
			return err
		}

		text := fileutil.JoinLines(annotated)
		if text != "" {
			text, err = formatter.Format(ctx, text, d)
			if err != nil {
				return err
			}
			text = style.Join(fileutil.SplitLines(text))
		}

		if !inPlace {
			_, err := io.WriteString(stdout, text)
			return err
		}
		if err := fileutil.WriteFileAtomic(path, text); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		if !s.quiet {
			fmt.Fprintf(stdout, "Annotated %s\n", path)
		}
		return nil
	})

	if inPlace {
		language = ""
	}
	emit, err := newEmitter(s, env, language)
	if err != nil {
		return err
	}
	return reportResults(results, s, env, emit)
}
