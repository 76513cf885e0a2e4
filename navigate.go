package docnav

import (
	"fmt"
	"strings"
)

// Ancestry is the path from a root down to a target node, inclusive.
type Ancestry []NodeID

// Target returns the last node of the path, or NoNode for an empty path.
func (a Ancestry) Target() NodeID {
	if len(a) == 0 {
		return NoNode
	}
	return a[len(a)-1]
}

// Headers resolves the path to header values.
func (a Ancestry) Headers(t *Tree) []Header {
	out := make([]Header, len(a))
	for i, id := range a {
		out[i] = t.Header(id)
	}
	return out
}

// Breadcrumb joins the descriptions along the path with sep,
// e.g. "Chapter 1 > Section 1.1".
func (a Ancestry) Breadcrumb(t *Tree, sep string) string {
	parts := make([]string, len(a))
	for i, id := range a {
		parts[i] = t.Header(id).Description()
	}
	return strings.Join(parts, sep)
}

// Markers wrap the selected header when rendering navigation,
// e.g. {"**", "**"} for Markdown bold.
type Markers struct {
	Open  string
	Close string
}

// DefaultMarkers emphasizes the selection with Markdown bold.
var DefaultMarkers = Markers{Open: "**", Close: "**"}

// FindAncestry returns the path to the first node, in document order, whose
// header has the given level and description. Only top-level titles are
// required to be unique, so deeper duplicates resolve to their first
// occurrence. Returns an error wrapping ErrNotFound when nothing matches.
func FindAncestry(t *Tree, level int, description string) (Ancestry, error) {
	type frame struct {
		id   NodeID
		next int // index of the next child to visit
	}

	for _, root := range t.roots {
		if t.nodes[root].header.Matches(level, description) {
			return Ancestry{root}, nil
		}

		path := []frame{{id: root}}
		for len(path) > 0 {
			top := &path[len(path)-1]
			children := t.nodes[top.id].children
			if top.next == len(children) {
				path = path[:len(path)-1]
				continue
			}
			child := children[top.next]
			top.next++

			path = append(path, frame{id: child})
			if t.nodes[child].header.Matches(level, description) {
				found := make(Ancestry, len(path))
				for i, f := range path {
					found[i] = f.id
				}
				return found, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: level %d %q", ErrNotFound, level, description)
}

// Render draws the outline of t as a Markdown list, two spaces of indent
// per depth. Only the nodes on ancestry are expanded; the last node of
// ancestry is wrapped in markers and its children are not shown. Every
// other node is a single line. An empty ancestry renders the roots only.
func Render(t *Tree, ancestry Ancestry, m Markers) string {
	type frame struct {
		id    NodeID
		depth int
	}

	var b strings.Builder
	stack := make([]frame, 0, len(t.roots))
	push := func(ids []NodeID, depth int) {
		for i := len(ids) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: ids[i], depth: depth})
		}
	}
	push(t.roots, 0)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		desc := t.nodes[f.id].header.Description()
		onPath := f.depth < len(ancestry) && ancestry[f.depth] == f.id
		isTarget := onPath && f.depth == len(ancestry)-1
		if isTarget {
			desc = m.Open + desc + m.Close
		}
		if desc == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("  ", f.depth))
		b.WriteString("- ")
		b.WriteString(desc)

		if onPath && !isTarget {
			push(t.nodes[f.id].children, f.depth+1)
		}
	}

	return b.String()
}

// Navigate renders the navigation outline for the header identified by
// level and description.
func Navigate(t *Tree, level int, description string, m Markers) (string, error) {
	ancestry, err := FindAncestry(t, level, description)
	if err != nil {
		return "", err
	}
	return Render(t, ancestry, m), nil
}

// TableOfContents renders the root-level outline with no selection.
func TableOfContents(t *Tree) string {
	return Render(t, nil, Markers{})
}
