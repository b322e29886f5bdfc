package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcp-tool-shop-org/websketch-ir/ir"
	"github.com/mcp-tool-shop-org/websketch-ir/render"
)

func TestRenderAsciiDimensions(t *testing.T) {
	cap := &ir.Capture{Root: &ir.Node{Role: ir.RolePage, BBox: ir.BBox01{X: 0, Y: 0, W: 1, H: 1}, Visible: true}}
	out, err := render.RenderAscii(cap, nil)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	opts := render.DefaultOptions()
	require.Len(t, lines, opts.Height)
	for _, line := range lines {
		require.Len(t, []rune(line), opts.Width)
	}
}

func TestRenderAsciiDrawsContainerBox(t *testing.T) {
	cap := &ir.Capture{Root: &ir.Node{
		Role: ir.RoleForm, BBox: ir.BBox01{X: 0.1, Y: 0.1, W: 0.5, H: 0.5}, Visible: true,
	}}
	out, err := render.RenderAscii(cap, nil)
	require.NoError(t, err)
	require.Contains(t, out, "+")
	require.Contains(t, out, "|")
}

func TestRenderAsciiAlwaysRendersInteractiveLeaf(t *testing.T) {
	small := &ir.Node{
		Role: ir.RoleButton, BBox: ir.BBox01{X: 0.5, Y: 0.5, W: 0.1, H: 0.02},
		Interactive: true, Visible: true, Semantic: nil,
	}
	cap := &ir.Capture{Root: &ir.Node{
		Role: ir.RolePage, BBox: ir.BBox01{X: 0, Y: 0, W: 1, H: 1}, Visible: true,
		Children: []*ir.Node{small},
	}}
	out, err := render.RenderAscii(cap, nil)
	require.NoError(t, err)
	require.Contains(t, out, "BUTTON")
}

func TestRenderAsciiRejectsNonPositiveDimensions(t *testing.T) {
	cap := &ir.Capture{Root: &ir.Node{Role: ir.RolePage, BBox: ir.BBox01{W: 1, H: 1}, Visible: true}}
	opts := render.Options{Width: 0, Height: 10}
	_, err := render.RenderAscii(cap, &opts)
	require.Error(t, err)
}

func TestRenderAsciiRejectsOversizedTree(t *testing.T) {
	leaf := &ir.Node{Role: ir.RoleText, BBox: ir.BBox01{W: 0.01, H: 0.01}, Visible: true}
	var children []*ir.Node
	for i := 0; i < 10_001; i++ {
		children = append(children, leaf)
	}
	cap := &ir.Capture{Root: &ir.Node{Role: ir.RolePage, BBox: ir.BBox01{W: 1, H: 1}, Visible: true, Children: children}}

	_, err := render.RenderAscii(cap, nil)
	require.Error(t, err)
}
