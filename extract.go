package docnav

import (
	"fmt"
	"strings"
)

// Classifier decides whether a single source line is a header and, if so,
// which level and title it carries. Each dialect provides one.
type Classifier interface {
	Classify(line string) (level int, title string, ok bool)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(line string) (level int, title string, ok bool)

// Classify calls f(line).
func (f ClassifierFunc) Classify(line string) (int, string, bool) { return f(line) }

// Extraction is the result of scanning a document for headers.
type Extraction struct {
	Headers []Header // in document order
	// LineCount is the number of lines scanned, i.e. the line number of the
	// last line. Slide tooling uses it as the end boundary of the last slide.
	LineCount int
}

// Extract scans lines with c and returns the headers whose level does not
// exceed maxLevel. Decorative separator lines are never headers.
// Reported line numbers are 1-based.
func Extract(lines []string, maxLevel int, c Classifier) (*Extraction, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, maxLevel)
	}

	result := &Extraction{LineCount: len(lines)}
	for i, line := range lines {
		if IsSeparator(line) {
			continue
		}
		level, title, ok := c.Classify(line)
		if !ok || level > maxLevel {
			continue
		}
		h, err := NewHeader(level, title, i+1)
		if err != nil {
			return nil, err
		}
		result.Headers = append(result.Headers, h)
	}
	return result, nil
}

// ExtractDialect is Extract using the classifier registered for d.
func ExtractDialect(lines []string, maxLevel int, d Dialect) (*Extraction, error) {
	c, err := d.Classifier()
	if err != nil {
		return nil, err
	}
	return Extract(lines, maxLevel, c)
}

// separatorChars are the characters that form decorative separator runs.
const separatorChars = "#/-="

// minSeparatorRun is the shortest run of a separator character that counts
// as decoration rather than content.
const minSeparatorRun = 5

// IsSeparator reports whether line is a decorative separator such as
// "#####", "## #####", "%% =====" or "// -----".
func IsSeparator(line string) bool {
	s := strings.TrimSpace(line)
	if isSeparatorRun(s) {
		return true
	}

	// Allow a comment-like prefix ("##", "%%", "//") followed by whitespace.
	rest := strings.TrimLeft(s, "#%/")
	if rest == s || rest == "" {
		return false
	}
	trimmed := strings.TrimLeft(rest, " \t")
	if trimmed == rest {
		return false
	}
	return isSeparatorRun(trimmed)
}

// isSeparatorRun reports whether s consists solely of at least
// minSeparatorRun copies of one separator character.
func isSeparatorRun(s string) bool {
	if len(s) < minSeparatorRun || !strings.ContainsRune(separatorChars, rune(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
