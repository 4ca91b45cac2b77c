package tui

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &treeNode{name: name, children: make(map[string]*treeNode)}
	n.children[name] = c
	return c
}

func (n *treeNode) isDir() bool {
	return len(n.children) > 0
}

// RenderTree renders the generated project tree from the written file paths,
// given relative to the project root.
func RenderTree(styles *StyleSet, root string, relPaths []string) string {
	top := &treeNode{name: root, children: make(map[string]*treeNode)}
	for _, p := range relPaths {
		node := top
		for _, seg := range strings.Split(p, "/") {
			if seg == "" {
				continue
			}
			node = node.child(seg)
		}
	}

	var b strings.Builder
	b.WriteString("  " + styles.Title.Render(root) + "\n")
	renderChildren(&b, styles, top, "  ")
	return b.String()
}

func renderChildren(b *strings.Builder, styles *StyleSet, node *treeNode, prefix string) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node.children[name]
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(names)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		label := styles.SuccessTxt.Render(name)
		if child.isDir() {
			label = styles.AccentTxt.Bold(true).Render(name)
		}
		b.WriteString(prefix + styles.DimTxt.Render(connector) + label + "\n")

		if child.isDir() {
			renderChildren(b, styles, child, childPrefix)
		}
	}
}
