package ir

// Flags carries a handful of optional layout hints. Each field is a
// present-or-absent tri-state rather than a bare bool, so "flags omitted
// entirely" and "flags present but all false" are distinguishable on the
// wire. Flags do not enter the shallow hash.
type Flags struct {
	Sticky    *bool `json:"sticky,omitempty"`
	Scrollable *bool `json:"scrollable,omitempty"`
	Repeated  *bool `json:"repeated,omitempty"`
}

// Node is one element of a capture tree.
//
// ID may be empty before ID assignment (see the fingerprint package's
// AssignNodeIDs). Role, BBox, Interactive, and Visible are always present;
// everything else is an explicit optional field.
type Node struct {
	ID          string      `json:"id"`
	Role        Role        `json:"role"`
	BBox        BBox01      `json:"bbox"`
	Interactive bool        `json:"interactive"`
	Visible     bool        `json:"visible"`

	Semantic  *string     `json:"semantic,omitempty"`
	NameHash  *string     `json:"name_hash,omitempty"`
	Text      *TextSignal `json:"text,omitempty"`
	Z         *int        `json:"z,omitempty"`
	Enabled   *bool       `json:"enabled,omitempty"`
	Focusable *bool       `json:"focusable,omitempty"`
	Children  []*Node     `json:"children,omitempty"`
	Flags     *Flags      `json:"flags,omitempty"`
}

// Walk visits n and every descendant in preorder, depth-first, left to
// right as stored (no reordering — that canonicalization belongs to the
// fingerprint package, not the grammar). visit returning false stops the
// walk under the current node without visiting its children.
func Walk(n *Node, visit func(n *Node, depth int) bool) {
	walk(n, 0, visit)
}

func walk(n *Node, depth int, visit func(n *Node, depth int) bool) {
	if n == nil {
		return
	}
	if !visit(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, visit)
	}
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func Count(n *Node) int {
	count := 0
	Walk(n, func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// MaxDepth returns the depth of the deepest node in the subtree rooted at
// n, where n itself is depth 0.
func MaxDepth(n *Node) int {
	max := 0
	Walk(n, func(_ *Node, depth int) bool {
		if depth > max {
			max = depth
		}
		return true
	})
	return max
}
