// Package render paints a fixed-size character grid from a capture, for
// quick human inspection. It is mechanical grid painting, not an area the
// design treats as load-bearing, so the algorithm favors simplicity over
// pixel-perfect layout.
package render

import (
	"sort"
	"strings"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
	"github.com/mcp-tool-shop-org/websketch-ir/werrors"
)

// Options controls the render grid's dimensions.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions is an 80x24 grid, matching a typical terminal.
func DefaultOptions() Options {
	return Options{Width: 80, Height: 24}
}

func optionsOrDefault(o *Options) Options {
	if o == nil {
		return DefaultOptions()
	}
	return *o
}

const (
	maxRenderNodes = 10_000
	maxRenderDepth = 50
)

// RenderAscii paints cap onto a character grid and returns it as a single
// string of Height lines of Width characters each, newline-separated. It
// refuses (returning a *werrors.Error with CodeLimitExceeded) rather than
// silently truncating when cap's own tree already exceeds the validator's
// default resource limits, mirroring the validator's "stop but report"
// posture instead of painting a pathological tree forever.
func RenderAscii(cap *ir.Capture, opts *Options) (string, error) {
	o := optionsOrDefault(opts)
	if o.Width <= 0 || o.Height <= 0 {
		return "", werrors.New(werrors.CodeInvalidArgs, "render grid dimensions must be positive")
	}
	if ir.Count(cap.Root) > maxRenderNodes {
		return "", werrors.New(werrors.CodeLimitExceeded, "capture exceeds the node count this renderer accepts")
	}
	if ir.MaxDepth(cap.Root) > maxRenderDepth {
		return "", werrors.New(werrors.CodeLimitExceeded, "capture exceeds the depth this renderer accepts")
	}

	g := newGrid(o.Width, o.Height)

	var nodes []*ir.Node
	ir.Walk(cap.Root, func(n *ir.Node, _ int) bool {
		nodes = append(nodes, n)
		return true
	})
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Role.RenderPriority() < nodes[j].Role.RenderPriority()
	})

	for _, n := range nodes {
		paintNode(g, n, o)
	}

	return g.string()
}

// cell rect in grid coordinates, end-exclusive.
type rect struct{ x0, y0, x1, y1 int }

func cellRect(n *ir.Node, o Options) rect {
	x0 := int(n.BBox.X * float64(o.Width))
	y0 := int(n.BBox.Y * float64(o.Height))
	x1 := int((n.BBox.X + n.BBox.W) * float64(o.Width))
	y1 := int((n.BBox.Y + n.BBox.H) * float64(o.Height))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return clampRect(rect{x0, y0, x1, y1}, o)
}

func clampRect(r rect, o Options) rect {
	if r.x0 < 0 {
		r.x0 = 0
	}
	if r.y0 < 0 {
		r.y0 = 0
	}
	if r.x1 > o.Width {
		r.x1 = o.Width
	}
	if r.y1 > o.Height {
		r.y1 = o.Height
	}
	return r
}

func paintNode(g *grid, n *ir.Node, o Options) {
	r := cellRect(n, o)
	priority := n.Role.RenderPriority()
	w, h := r.x1-r.x0, r.y1-r.y0

	isBoxWorthy := n.Role.IsContainerRole() && w >= 4 && h >= 3
	if isBoxWorthy {
		drawBox(g, r, priority)
		drawLabel(g, r.x0+1, r.y0+1, r.x1-r.x0-2, label(n), priority)
		return
	}

	// Interactive leaves are always rendered, regardless of the role
	// filter above, even when too small to box-draw.
	if n.Interactive {
		drawLabel(g, r.x0, r.y0, r.x1-r.x0, label(n), priority)
	}
}

func label(n *ir.Node) string {
	if n.Semantic != nil && *n.Semantic != "" {
		return "[" + string(n.Role) + ":" + *n.Semantic + "]"
	}
	return "[" + string(n.Role) + "]"
}

func drawBox(g *grid, r rect, priority int) {
	for x := r.x0; x < r.x1; x++ {
		g.set(x, r.y0, '-', priority)
		g.set(x, r.y1-1, '-', priority)
	}
	for y := r.y0; y < r.y1; y++ {
		g.set(r.x0, y, '|', priority)
		g.set(r.x1-1, y, '|', priority)
	}
	g.set(r.x0, r.y0, '+', priority)
	g.set(r.x1-1, r.y0, '+', priority)
	g.set(r.x0, r.y1-1, '+', priority)
	g.set(r.x1-1, r.y1-1, '+', priority)
}

func drawLabel(g *grid, x, y, maxWidth int, text string, priority int) {
	if maxWidth <= 0 {
		return
	}
	if len(text) > maxWidth {
		text = text[:maxWidth]
	}
	for i, ch := range text {
		g.set(x+i, y, ch, priority)
	}
}

// grid is a priority-painted character buffer: a higher-priority role
// overwrites whatever a lower-priority role already drew in the same
// cell; equal priorities paint in traversal order, last write wins.
type grid struct {
	width, height int
	cells         [][]rune
	priority      [][]int
}

func newGrid(width, height int) *grid {
	cells := make([][]rune, height)
	priority := make([][]int, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		priority[y] = make([]int, width)
		for x := range cells[y] {
			cells[y][x] = ' '
			priority[y][x] = -1
		}
	}
	return &grid{width: width, height: height, cells: cells, priority: priority}
}

func (g *grid) set(x, y int, ch rune, priority int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	if priority < g.priority[y][x] {
		return
	}
	g.cells[y][x] = ch
	g.priority[y][x] = priority
}

func (g *grid) string() (string, error) {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String(), nil
}
