package registry

import (
	"fmt"
	"io"

	"github.com/bbpm-labs/bbpm/internal/manifest"
)

// Node is one reference in a dependency tree.
type Node struct {
	Ref       manifest.Reference
	Package   *manifest.Package
	Children  []*Node
	Deduped   bool
	Missing   bool
	Installed bool
}

// BuildTree expands root depth-first into a display tree. A reference seen
// earlier in the walk appears again as a Deduped leaf, which also ends
// cycles. installed marks references already recorded in the ledger.
func BuildTree(root manifest.Reference, r Resolver, installed map[manifest.Reference]bool) *Node {
	seen := make(map[manifest.Reference]bool)
	return buildNode(root, r, installed, seen)
}

func buildNode(ref manifest.Reference, r Resolver, installed, seen map[manifest.Reference]bool) *Node {
	node := &Node{Ref: ref, Installed: installed[ref]}

	if seen[ref] {
		node.Deduped = true
		return node
	}
	seen[ref] = true

	pkg, ok := r.Resolve(ref)
	if !ok {
		node.Missing = true
		return node
	}
	node.Package = pkg

	for _, dep := range pkg.Dependencies {
		node.Children = append(node.Children, buildNode(dep, r, installed, seen))
	}
	return node
}

// Count returns the distinct, resolvable references in the tree.
func (n *Node) Count() int {
	if n == nil || n.Deduped || n.Missing {
		return 0
	}
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}

// PrintTree prints the dependency tree with box-drawing characters.
func PrintTree(w io.Writer, node *Node, prefix string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	label := string(node.Ref)
	if node.Package != nil && node.Package.Version != "" {
		label += " " + node.Package.Version
	}
	switch {
	case node.Deduped:
		label += " (deduped)"
	case node.Missing:
		label += " (not found)"
	case node.Installed:
		label += " (installed)"
	}

	if prefix == "" {
		fmt.Fprintf(w, "  %s\n", label)
	} else {
		fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, label)
	}

	childPrefix := prefix
	if prefix != "" {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	} else {
		childPrefix = " "
	}

	for i, child := range node.Children {
		PrintTree(w, child, childPrefix, i == len(node.Children)-1)
	}
}
