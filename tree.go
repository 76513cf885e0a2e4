package docnav

import "slices"

// NodeID identifies a node inside a Tree. IDs are dense indexes assigned in
// document order, so NodeID(i) holds the i-th header passed to Build.
type NodeID int

// NoNode is the parent of root nodes.
const NoNode NodeID = -1

type node struct {
	header   Header
	parent   NodeID
	children []NodeID
}

// Tree is the nested view of a header list: a forest of roots whose
// children are the structurally nested sub-headers. Nodes live in an arena
// and reference each other by NodeID. A Tree is read-only after Build.
type Tree struct {
	nodes []node
	roots []NodeID
}

// Build derives the tree for headers in a single left-to-right pass. A
// stack holds the path from the current root to the deepest open node:
// level-1 headers start a new root, any other header pops entries whose
// level is >= its own and becomes a child of what remains on top.
//
// A non-level-1 header with no eligible parent (only possible when the list
// failed Validate) is promoted to a root.
func Build(headers []Header) *Tree {
	t := &Tree{nodes: make([]node, len(headers))}
	stack := make([]NodeID, 0, 8)

	for i, h := range headers {
		id := NodeID(i)
		t.nodes[i] = node{header: h, parent: NoNode}

		if h.Level() == 1 {
			t.roots = append(t.roots, id)
			stack = append(stack[:0], id)
			continue
		}

		for len(stack) > 0 && t.nodes[stack[len(stack)-1]].header.Level() >= h.Level() {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			t.roots = append(t.roots, id)
		} else {
			parent := stack[len(stack)-1]
			t.nodes[i].parent = parent
			t.nodes[parent].children = append(t.nodes[parent].children, id)
		}
		stack = append(stack, id)
	}

	return t
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Roots returns a copy of the root nodes in document order.
func (t *Tree) Roots() []NodeID { return slices.Clone(t.roots) }

// Header returns the header stored at id.
func (t *Tree) Header(id NodeID) Header { return t.nodes[id].header }

// Children returns a copy of the direct children of id in document order.
func (t *Tree) Children(id NodeID) []NodeID { return slices.Clone(t.nodes[id].children) }

// Parent returns the parent of id, or NoNode for roots.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Depth returns the distance of id from its root (roots have depth 0).
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for p := t.nodes[id].parent; p != NoNode; p = t.nodes[p].parent {
		depth++
	}
	return depth
}

// Walk visits nodes in pre-order (document order). fn receives each node
// and its depth; returning false skips that node's children.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	type frame struct {
		id    NodeID
		depth int
	}

	stack := make([]frame, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: t.roots[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(f.id, f.depth) {
			continue
		}
		children := t.nodes[f.id].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: children[i], depth: f.depth + 1})
		}
	}
}

// PathTo returns the ancestry of id, from its root down to id itself.
func (t *Tree) PathTo(id NodeID) Ancestry {
	var path Ancestry
	for cur := id; cur != NoNode; cur = t.nodes[cur].parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
