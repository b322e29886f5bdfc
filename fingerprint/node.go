package fingerprint

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

// HashOptions controls which optional node fields feed the shallow/deep
// hash and, by extension, the capture fingerprint. Defaults mirror
// DefaultHashOptions.
type HashOptions struct {
	IncludeText bool
	IncludeName bool
	IncludeZ    bool
}

// DefaultHashOptions returns the options used by fingerprintCapture:
// text and accessible-name hashes included, z-order excluded.
func DefaultHashOptions() HashOptions {
	return HashOptions{IncludeText: true, IncludeName: true, IncludeZ: false}
}

// LayoutHashOptions returns the options used by fingerprintLayout: neither
// text nor accessible-name hashes contribute, so two captures that differ
// only in copy or accessible names still fingerprint identically.
func LayoutHashOptions() HashOptions {
	return HashOptions{IncludeText: false, IncludeName: false, IncludeZ: false}
}

func boolDigit(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// HashNodeShallow computes the digest of n alone, ignoring children. Its
// serialization is stable and ordered:
//
//	r:<role>|b:<bbox-str>|i:<0/1>|v:<0/1>[|e:<0/1>][|s:<semantic>][|t:<hash16>][|n:<hash16>][|z:<z>]
func HashNodeShallow(n *ir.Node, opts HashOptions) string {
	return ShortHash(shallowRecord(n, opts))
}

func shallowRecord(n *ir.Node, opts HashOptions) string {
	var b strings.Builder
	q := Quantize(n.BBox, ir.BBoxQuantStep)
	fmt.Fprintf(&b, "r:%s|b:%s|i:%c|v:%c", n.Role, StringOf(q, 3), boolDigit(n.Interactive), boolDigit(n.Visible))
	if n.Enabled != nil {
		fmt.Fprintf(&b, "|e:%c", boolDigit(*n.Enabled))
	}
	if n.Semantic != nil {
		fmt.Fprintf(&b, "|s:%s", *n.Semantic)
	}
	if opts.IncludeText && n.Text != nil && n.Text.Hash != nil {
		fmt.Fprintf(&b, "|t:%s", firstN(*n.Text.Hash, 16))
	}
	if opts.IncludeName && n.NameHash != nil {
		fmt.Fprintf(&b, "|n:%s", firstN(*n.NameHash, 16))
	}
	if opts.IncludeZ && n.Z != nil {
		fmt.Fprintf(&b, "|z:%d", *n.Z)
	}
	return b.String()
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// orderedChildren returns n.Children sorted into the order-canonicalizing
// sequence the deep hash uses: primary key the quantized y of the child's
// bbox, with two y-values considered equal whenever their difference is at
// most BBoxQuantStep, ties broken by quantized x. Two captures whose only
// difference is sibling input order produce identical deep hashes.
func orderedChildren(children []*ir.Node) []*ir.Node {
	out := make([]*ir.Node, len(children))
	copy(out, children)
	sort.SliceStable(out, func(i, j int) bool {
		bi := Quantize(out[i].BBox, ir.BBoxQuantStep)
		bj := Quantize(out[j].BBox, ir.BBoxQuantStep)
		if math.Abs(bi.Y-bj.Y) > ir.BBoxQuantStep {
			return bi.Y < bj.Y
		}
		return bi.X < bj.X
	})
	return out
}

// HashNodeDeep computes a digest of n including all of its descendants,
// over the canonical sibling order above. A leaf's deep hash equals its
// shallow hash.
func HashNodeDeep(n *ir.Node, opts HashOptions) string {
	shallow := HashNodeShallow(n, opts)
	if len(n.Children) == 0 {
		return shallow
	}
	ordered := orderedChildren(n.Children)
	childHashes := make([]string, len(ordered))
	for i, c := range ordered {
		childHashes[i] = HashNodeDeep(c, opts)
	}
	return ShortHash(shallow + "|c:[" + strings.Join(childHashes, ",") + "]")
}

// FingerprintCapture is a capture-wide digest: the deep hash of the root
// combined with the viewport aspect ratio, rounded to two decimals so
// minor viewport-size noise doesn't perturb it. It is independent of
// TimestampMs, URL, and Compiler.
func FingerprintCapture(cap *ir.Capture) string {
	return fingerprintWith(cap, DefaultHashOptions())
}

// FingerprintLayout is FingerprintCapture with text and accessible-name
// hashes excluded, so content-only edits don't change it.
func FingerprintLayout(cap *ir.Capture) string {
	return fingerprintWith(cap, LayoutHashOptions())
}

func fingerprintWith(cap *ir.Capture, opts HashOptions) string {
	deep := HashNodeDeep(cap.Root, opts)
	aspect := strconv.FormatFloat(cap.Viewport.Aspect, 'f', 2, 64)
	return ShortHash(deep + "|a:" + aspect)
}

// GenerateNodeID computes the content-addressed ID for n given the ID path
// of its parent (empty string for the root).
func GenerateNodeID(n *ir.Node, parentPath string) string {
	shallow := HashNodeShallow(n, DefaultHashOptions())
	bx := int(math.Round(n.BBox.X * 100))
	by := int(math.Round(n.BBox.Y * 100))
	return fmt.Sprintf("%s/%s_%d_%d", parentPath, firstN(shallow, 12), bx, by)
}

// AssignNodeIDs walks root in preorder and writes each node's content-
// addressed ID in place before recursing into its children, using the
// parent's freshly assigned ID as the next parentPath. It is the one
// mutating operation in this module; callers that hold external
// references into root must treat the tree as owned by the call for its
// duration.
func AssignNodeIDs(root *ir.Node) {
	assignNodeIDs(root, "")
}

func assignNodeIDs(n *ir.Node, parentPath string) {
	if n == nil {
		return
	}
	n.ID = GenerateNodeID(n, parentPath)
	for _, c := range n.Children {
		assignNodeIDs(c, n.ID)
	}
}

// node similarity weights, from the design's scoring table.
const (
	weightRole          = 3.0
	weightBBox          = 2.0
	weightInteractivity = 1.0
	weightSemantic      = 2.0
	weightTextHash      = 1.0
)

// NodeSimilarity computes the weighted pairwise similarity the diff
// engine's matcher uses, in [0, 1].
func NodeSimilarity(a, b *ir.Node) float64 {
	var score, weight float64

	weight += weightRole
	if a.Role == b.Role {
		score += weightRole
	}

	weight += weightBBox
	score += weightBBox * BBoxSimilarity(a.BBox, b.BBox)

	weight += weightInteractivity
	if a.Interactive == b.Interactive {
		score += weightInteractivity
	}

	switch {
	case a.Semantic != nil && b.Semantic != nil:
		weight += weightSemantic
		if *a.Semantic == *b.Semantic {
			score += weightSemantic
		}
	case a.Semantic != nil || b.Semantic != nil:
		weight += weightSemantic
		// one-sided: no score, weight still accumulates. This depresses
		// the ratio on purpose and is load-bearing for threshold tuning.
	}

	if a.Text != nil && a.Text.Hash != nil && b.Text != nil && b.Text.Hash != nil {
		weight += weightTextHash
		if *a.Text.Hash == *b.Text.Hash {
			score += weightTextHash
		}
	}

	if weight == 0 {
		return 0
	}
	return score / weight
}
