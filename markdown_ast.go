package docnav

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParser parses GitHub Flavored Markdown, so tables, task lists and
// strikethrough are blocks the heading scan can skip over.
var markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// ExtractMarkdownAST extracts Markdown headers by parsing src with goldmark
// instead of matching lines. Unlike the line classifier it understands
// CommonMark: "#" lines inside fenced or indented code blocks are not
// headers, setext headers ("Title" underlined with "===" or "---") are, and
// ATX closing sequences are dropped from titles.
//
// Only top-level headings are reported; headings nested in block quotes or
// list items are content. Separator lines are skipped as in Extract.
func ExtractMarkdownAST(src []byte, maxLevel int) (*Extraction, error) {
	if maxLevel < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, maxLevel)
	}

	lineStarts := indexLineStarts(src)
	result := &Extraction{LineCount: len(lineStarts)}
	if len(src) == 0 {
		result.LineCount = 0
	}

	doc := markdownParser.Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level > maxLevel {
			continue
		}

		segments := heading.Lines()
		if segments.Len() == 0 {
			continue
		}

		first := segments.At(0)
		lineIdx := sort.SearchInts(lineStarts, first.Start+1) - 1
		if IsSeparator(lineText(src, lineStarts, lineIdx)) {
			continue
		}

		parts := make([]string, 0, segments.Len())
		for i := 0; i < segments.Len(); i++ {
			seg := segments.At(i)
			parts = append(parts, strings.TrimSpace(string(seg.Value(src))))
		}
		title := strings.TrimSpace(strings.Join(parts, " "))
		if title == "" {
			continue
		}

		h, err := NewHeader(heading.Level, title, lineIdx+1)
		if err != nil {
			return nil, err
		}
		result.Headers = append(result.Headers, h)
	}

	return result, nil
}

// indexLineStarts returns the byte offset at which each line of src begins.
// A trailing newline does not start an extra line.
func indexLineStarts(src []byte) []int {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineText returns line idx of src without its terminator.
func lineText(src []byte, starts []int, idx int) string {
	end := len(src)
	if idx+1 < len(starts) {
		end = starts[idx+1]
	}
	return strings.TrimRight(string(src[starts[idx]:end]), "\r\n")
}
