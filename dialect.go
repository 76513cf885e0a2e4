package docnav

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Dialect names one of the supported input syntaxes.
type Dialect string

// Supported dialects.
const (
	Markdown Dialect = "markdown"
	LaTeX    Dialect = "latex"
	Slide    Dialect = "slide"
)

// Dialects lists the supported dialects in display order.
var Dialects = []Dialect{Markdown, LaTeX, Slide}

// dialectExtensions maps lowercase file extensions to dialects.
var dialectExtensions = map[string]Dialect{
	".md":       Markdown,
	".markdown": Markdown,
	".tex":      LaTeX,
	".txt":      Slide,
	".slides":   Slide,
}

// ParseDialect converts a dialect name (case-insensitive) to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Dialects, d) {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q (must be markdown, latex, or slide)", ErrUnknownDialect, name)
}

// DialectForPath guesses the dialect from a file extension.
func DialectForPath(path string) (Dialect, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if d, ok := dialectExtensions[ext]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: cannot infer from extension %q", ErrUnknownDialect, ext)
}

// Classifier returns the line classifier for d.
func (d Dialect) Classifier() (Classifier, error) {
	switch d {
	case Markdown:
		return ClassifierFunc(classifyMarkdown), nil
	case LaTeX:
		return ClassifierFunc(classifyLaTeX), nil
	case Slide:
		return ClassifierFunc(classifySlide), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
	}
}

// CommentPrefix returns the line-comment syntax used when docnav writes
// marker lines into a document of this dialect.
func (d Dialect) CommentPrefix() string {
	if d == LaTeX {
		return "% "
	}
	return "<!-- "
}

// CommentSuffix closes a comment opened with CommentPrefix.
func (d Dialect) CommentSuffix() string {
	if d == LaTeX {
		return ""
	}
	return " -->"
}

// Precompiled patterns, one per dialect.
var (
	markdownHeader = regexp.MustCompile(`^(#+)\s+(.*)`)
	latexHeader    = regexp.MustCompile(`^\\(section|subsection|subsubsection)\*?(?:\[[^\]]*\])?\{(.*?)\}`)
	slideHeader    = regexp.MustCompile(`^\* (.*)$`)
)

// latexLevels maps sectioning commands to header levels.
var latexLevels = map[string]int{
	"section":       1,
	"subsection":    2,
	"subsubsection": 3,
}

func classifyMarkdown(line string) (int, string, bool) {
	m := markdownHeader.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	title := strings.TrimSpace(m[2])
	if title == "" {
		return 0, "", false
	}
	return len(m[1]), title, true
}

func classifyLaTeX(line string) (int, string, bool) {
	s := strings.TrimSpace(line)
	if isLaTeXComment(s) {
		return 0, "", false
	}
	m := latexHeader.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	title := strings.TrimSpace(m[2])
	if title == "" {
		return 0, "", false
	}
	return latexLevels[m[1]], title, true
}

func classifySlide(line string) (int, string, bool) {
	m := slideHeader.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return 0, "", false
	}
	return 1, title, true
}

// isLaTeXComment reports whether the stripped line s begins with an
// unescaped '%'.
func isLaTeXComment(s string) bool {
	return unescapedPercent(s) == 0
}

// unescapedPercent returns the index of the first '%' in s that is not
// preceded by an odd number of backslashes, or -1.
func unescapedPercent(s string) int {
	backslashes := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			backslashes++
			continue
		case '%':
			if backslashes%2 == 0 {
				return i
			}
		}
		backslashes = 0
	}
	return -1
}
