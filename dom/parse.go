package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses an HTML fragment into a detached tree and returns its first
// element node. Leading text outside any element is dropped.
func Parse(fragment string) (*Node, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.n.Type == html.ElementNode {
			return n, nil
		}
	}
	return nil, nil
}

// SetHTML replaces the node's content with the parsed fragment.
// Existing element children are detached; their listeners die with them.
func (nd *Node) SetHTML(fragment string) error {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return err
	}
	for len(nd.children) > 0 {
		nd.children[0].Remove()
	}
	// Drop remaining text nodes from the backing tree.
	for nd.n.FirstChild != nil {
		nd.n.RemoveChild(nd.n.FirstChild)
	}
	for _, n := range nodes {
		nd.Append(n)
	}
	return nil
}

// InnerHTML serializes the node's content.
func (nd *Node) InnerHTML() string {
	var b strings.Builder
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on unrenderable node types, which the tree
		// cannot contain.
		_ = html.Render(&b, c)
	}
	return b.String()
}

// OuterHTML serializes the node itself, including its tag and attributes.
func (nd *Node) OuterHTML() string {
	var b strings.Builder
	_ = html.Render(&b, nd.n)
	return b.String()
}

// parseFragment parses fragment in a div context and wraps each top-level
// element node. Text nodes between elements are kept in the backing tree of
// their wrapped parent only when nested; top-level text is dropped.
func parseFragment(fragment string) ([]*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, err
	}
	var out []*Node
	for _, n := range parsed {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		if n.Type != html.ElementNode {
			continue
		}
		out = append(out, wrapTree(n))
	}
	return out, nil
}

// wrapTree builds wrapper nodes for an already-linked html element tree.
// The html parent/child links are left as parsed; only wrappers are added.
func wrapTree(n *html.Node) *Node {
	nd := wrap(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		child := wrapTree(c)
		child.parent = nd
		nd.children = append(nd.children, child)
	}
	return nd
}
