package docnav

import (
	"strings"
)

// Marker names delimiting a generated navigation block.
const (
	blockBegin = "docnav:begin"
	blockEnd   = "docnav:end"
)

// AnnotateOptions controls navigation block insertion.
type AnnotateOptions struct {
	// MaxLevel bounds header extraction. Zero means DefaultMaxLevel.
	MaxLevel int
	// Depth limits which headers receive a block: only those with
	// level <= Depth. Zero means MaxLevel.
	Depth int
	// Markers emphasize the current header inside each block.
	Markers Markers
}

// Annotate returns a copy of lines in which every header up to opts.Depth is
// followed by a navigation block showing where that header sits in the
// document. Blocks are fenced by comment lines in the dialect's syntax, and
// blocks left by a previous run are removed first, so annotating twice gives
// the same result as annotating once.
//
// The document must pass Validate; otherwise the *StructureError is returned.
func Annotate(lines []string, d Dialect, opts AnnotateOptions) ([]string, error) {
	maxLevel := opts.MaxLevel
	if maxLevel == 0 {
		maxLevel = DefaultMaxLevel
	}
	clean := StripAnnotations(lines, d)

	extraction, err := ExtractDialect(clean, maxLevel, d)
	if err != nil {
		return nil, err
	}
	if err := Validate(extraction.Headers, nil); err != nil {
		return nil, err
	}

	depth := opts.Depth
	if depth <= 0 {
		depth = maxLevel
	}

	tree := Build(extraction.Headers)

	// Header i sits on line Headers[i].Line(); NodeID(i) is its node.
	blocks := make(map[int][]string, len(extraction.Headers))
	for i, h := range extraction.Headers {
		if h.Level() > depth {
			continue
		}
		nav := Render(tree, tree.PathTo(NodeID(i)), opts.Markers)
		blocks[h.Line()] = navigationBlock(nav, d)
	}

	out := make([]string, 0, len(clean)+len(blocks)*4)
	for i, line := range clean {
		out = append(out, line)
		if block, ok := blocks[i+1]; ok {
			out = append(out, block...)
		}
	}
	return out, nil
}

// StripAnnotations removes navigation blocks previously inserted by Annotate.
// An unterminated block is kept as-is.
func StripAnnotations(lines []string, d Dialect) []string {
	begin, end := markerLine(blockBegin, d), markerLine(blockEnd, d)

	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != begin {
			out = append(out, lines[i])
			continue
		}
		closing := -1
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == end {
				closing = j
				break
			}
		}
		if closing < 0 {
			out = append(out, lines[i:]...)
			break
		}
		i = closing
	}
	return out
}

func navigationBlock(nav string, d Dialect) []string {
	body := strings.Split(nav, "\n")
	block := make([]string, 0, len(body)+2)
	block = append(block, markerLine(blockBegin, d))
	for _, line := range body {
		if d == LaTeX {
			line = d.CommentPrefix() + line
		}
		block = append(block, line)
	}
	return append(block, markerLine(blockEnd, d))
}

func markerLine(name string, d Dialect) string {
	return d.CommentPrefix() + name + d.CommentSuffix()
}
