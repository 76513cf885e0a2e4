// Package highlight colorizes rendered outlines for terminal output.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Color modes.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = "monokai"

// ErrInvalidMode is returned for an unknown color mode.
var ErrInvalidMode = errors.New("invalid color mode")

// Enabled decides whether to colorize output written to w.
// "auto" colors only character devices and honours noColor (NO_COLOR).
func Enabled(mode string, w io.Writer, noColor bool) (bool, error) {
	switch strings.ToLower(mode) {
	case ModeAlways:
		return true, nil
	case ModeNever:
		return false, nil
	case "", ModeAuto:
		if noColor {
			return false, nil
		}
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		info, err := f.Stat()
		if err != nil {
			return false, nil
		}
		return info.Mode()&os.ModeCharDevice != 0, nil
	default:
		return false, fmt.Errorf("%w: %q (must be auto, always, or never)", ErrInvalidMode, mode)
	}
}

// Highlighter writes Markdown or LaTeX text with ANSI colors.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// New creates a Highlighter using the named chroma style; unknown names
// fall back to chroma's default style.
func New(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultStyle
	}
	return &Highlighter{
		style:     styles.Get(styleName),
		formatter: formatters.Get("terminal256"),
	}
}

// Write colorizes text with the lexer for language ("markdown", "latex")
// and writes it to w.
func (h *Highlighter) Write(w io.Writer, text, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", language, err)
	}
	if err := h.formatter.Format(w, h.style, iterator); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
