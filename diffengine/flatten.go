package diffengine

import (
	"fmt"

	"github.com/mcp-tool-shop-org/websketch-ir/fingerprint"
	"github.com/mcp-tool-shop-org/websketch-ir/ir"
)

// FlatNode is one entry of a flattened capture tree.
type FlatNode struct {
	Node  *ir.Node
	Depth int
	// Path is a role trail identifying the node's position: the root's
	// role, then "/role[siblingIndex]" for each descendant step.
	Path string
	// Hash is the node's shallow hash under default hash options.
	Hash string
}

// Flatten yields root and every descendant in preorder.
func Flatten(root *ir.Node) []FlatNode {
	var out []FlatNode
	flattenInto(&out, root, 0, string(root.Role))
	return out
}

func flattenInto(out *[]FlatNode, n *ir.Node, depth int, path string) {
	*out = append(*out, FlatNode{
		Node:  n,
		Depth: depth,
		Path:  path,
		Hash:  fingerprint.HashNodeShallow(n, fingerprint.DefaultHashOptions()),
	})
	for i, c := range n.Children {
		childPath := fmt.Sprintf("%s/%s[%d]", path, c.Role, i)
		flattenInto(out, c, depth+1, childPath)
	}
}
