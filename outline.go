package docnav

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMaxLevel is the deepest header level extracted when none is given.
const DefaultMaxLevel = 3

// ParseOptions configures ParseOutline.
type ParseOptions struct {
	Dialect  Dialect
	MaxLevel int // 0 = DefaultMaxLevel
	// AST switches Markdown extraction to ExtractMarkdownAST.
	// Ignored for other dialects.
	AST bool
}

// Outline is the header structure of one document: the flat header list
// and, on demand, the tree derived from it.
type Outline struct {
	Dialect   Dialect
	Headers   []Header
	LineCount int

	tree *Tree
}

// ParseOutline extracts the headers of a document given as lines.
// It does not validate; call Validate before relying on the tree.
func ParseOutline(lines []string, opts ParseOptions) (*Outline, error) {
	maxLevel := opts.MaxLevel
	if maxLevel == 0 {
		maxLevel = DefaultMaxLevel
	}

	var (
		extraction *Extraction
		err        error
	)
	if opts.AST && opts.Dialect == Markdown {
		extraction, err = ExtractMarkdownAST([]byte(strings.Join(lines, "\n")), maxLevel)
	} else {
		extraction, err = ExtractDialect(lines, maxLevel, opts.Dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("extracting %s headers: %w", opts.Dialect, err)
	}

	return &Outline{
		Dialect:   opts.Dialect,
		Headers:   extraction.Headers,
		LineCount: extraction.LineCount,
	}, nil
}

// Validate runs Validate over the outline's headers.
func (o *Outline) Validate(warn io.Writer) error {
	return Validate(o.Headers, warn)
}

// Tree returns the header tree, building it on first use.
func (o *Outline) Tree() *Tree {
	if o.tree == nil {
		o.tree = Build(o.Headers)
	}
	return o.tree
}

// Format renders the flat header list; see FormatHeaders.
func (o *Outline) Format(format OutputFormat, sourcePath string) (string, error) {
	return FormatHeaders(o.Headers, format, sourcePath)
}

// Navigate renders the navigation outline for a selected header.
func (o *Outline) Navigate(level int, description string, m Markers) (string, error) {
	return Navigate(o.Tree(), level, description, m)
}

// SlideRange is the span of source lines covered by one slide.
type SlideRange struct {
	Header Header
	Start  int // line of the slide marker
	End    int // last line before the next top-level marker, or LineCount
}

// Slides splits the document at its level-1 headers. Each range ends just
// before the next level-1 header; the last one ends at LineCount.
func (o *Outline) Slides() []SlideRange {
	var tops []Header
	for _, h := range o.Headers {
		if h.Level() == 1 {
			tops = append(tops, h)
		}
	}

	ranges := make([]SlideRange, len(tops))
	for i, h := range tops {
		end := o.LineCount
		if i+1 < len(tops) {
			end = tops[i+1].Line() - 1
		}
		ranges[i] = SlideRange{Header: h, Start: h.Line(), End: end}
	}
	return ranges
}
