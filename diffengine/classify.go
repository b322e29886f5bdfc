package diffengine

import (
	"sort"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

// Kind names one category of change the diff engine can emit.
type Kind string

const (
	KindAdded               Kind = "added"
	KindRemoved             Kind = "removed"
	KindMoved               Kind = "moved"
	KindResized             Kind = "resized"
	KindTextChanged         Kind = "text_changed"
	KindInteractiveChanged  Kind = "interactive_changed"
	KindRoleChanged         Kind = "role_changed"
	KindChildrenChanged     Kind = "children_changed"
)

// Change is one detected difference between two captures.
type Change struct {
	Kind Kind

	// NodeA is nil for an "added" change; NodeB is nil for a "removed"
	// change. Both are set for every matched-pair change kind.
	NodeA *ir.Node
	NodeB *ir.Node
	PathA string
	PathB string

	// Delta holds the componentwise b.bbox - a.bbox for moved/resized
	// changes, and is nil otherwise.
	Delta *ir.BBox01
}

// affectedArea returns the area of the node a change should be ranked by:
// nodeA's area when present, else nodeB's.
func (c Change) affectedArea() float64 {
	if c.NodeA != nil {
		return c.NodeA.BBox.W * c.NodeA.BBox.H
	}
	if c.NodeB != nil {
		return c.NodeB.BBox.W * c.NodeB.BBox.H
	}
	return 0
}

// classifyPair emits every change kind that applies to a matched pair.
func classifyPair(a *ir.Node, pathA string, b *ir.Node, pathB string, opts Options) []Change {
	var changes []Change

	delta := ir.BBox01{
		X: b.BBox.X - a.BBox.X,
		Y: b.BBox.Y - a.BBox.Y,
		W: b.BBox.W - a.BBox.W,
		H: b.BBox.H - a.BBox.H,
	}

	if absf(delta.X) > opts.MoveThreshold || absf(delta.Y) > opts.MoveThreshold {
		changes = append(changes, Change{Kind: KindMoved, NodeA: a, NodeB: b, PathA: pathA, PathB: pathB, Delta: &delta})
	}
	if absf(delta.W) > opts.ResizeThreshold || absf(delta.H) > opts.ResizeThreshold {
		changes = append(changes, Change{Kind: KindResized, NodeA: a, NodeB: b, PathA: pathA, PathB: pathB, Delta: &delta})
	}
	if a.Role != b.Role {
		changes = append(changes, Change{Kind: KindRoleChanged, NodeA: a, NodeB: b, PathA: pathA, PathB: pathB})
	}
	if opts.IncludeText && textHashDiffers(a, b) {
		changes = append(changes, Change{Kind: KindTextChanged, NodeA: a, NodeB: b, PathA: pathA, PathB: pathB})
	}
	if a.Interactive != b.Interactive {
		changes = append(changes, Change{Kind: KindInteractiveChanged, NodeA: a, NodeB: b, PathA: pathA, PathB: pathB})
	}
	if len(a.Children) != len(b.Children) {
		changes = append(changes, Change{Kind: KindChildrenChanged, NodeA: a, NodeB: b, PathA: pathA, PathB: pathB})
	}

	return changes
}

func textHashDiffers(a, b *ir.Node) bool {
	ah := textHash(a)
	bh := textHash(b)
	return ah != bh
}

func textHash(n *ir.Node) string {
	if n.Text == nil || n.Text.Hash == nil {
		return ""
	}
	return *n.Text.Hash
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// rankChanges returns the top limit changes ordered by descending
// affected-node area; the input slice order (detection order) is left
// untouched — this returns a new, separately ordered slice.
func rankChanges(changes []Change, limit int) []Change {
	ranked := make([]Change, len(changes))
	copy(ranked, changes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].affectedArea() > ranked[j].affectedArea()
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
