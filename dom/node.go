// Package dom models the host tree surf elements live in: element nodes with
// attributes, parent links, event listeners with bubbling dispatch, shadow
// roots, and CSS selector matching.
//
// The implementation is in-memory and single-threaded, backed by
// golang.org/x/net/html nodes so selector matching and HTML parsing use the
// standard ecosystem machinery. It stands in for the browser DOM in servers
// and tests; the surf core only relies on the capabilities exposed here.
package dom

import (
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AttrValue is one attribute surface state: its text and whether the
// attribute is present at all. Absence is meaningful (boolean kinds encode
// false as absence), so a bare string cannot represent it.
type AttrValue struct {
	Text    string
	Present bool
}

// AttrWatcher observes attribute mutations on a node. It is invoked after
// the mutation is applied, with the previous and next states.
type AttrWatcher func(name string, prev, next AttrValue)

// Node is an element node in the host tree.
type Node struct {
	id       string
	n        *html.Node
	parent   *Node
	children []*Node

	listeners map[string][]*listener
	nextLID   int

	watchers map[int]AttrWatcher
	nextWID  int

	shadow *Node // attached shadow root, if any
	host   *Node // set on shadow roots, points back at the host
}

// New creates a detached element node with the given tag name.
func New(tag string) *Node {
	return wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

func wrap(n *html.Node) *Node {
	return &Node{id: uuid.NewString(), n: n}
}

// ID returns the node's instance identity, unique per process.
func (nd *Node) ID() string {
	return nd.id
}

// Tag returns the node's tag name.
func (nd *Node) Tag() string {
	return nd.n.Data
}

// Parent returns the parent element, or nil at the top of the tree.
// A shadow root has no parent; it is reached only through its host.
func (nd *Node) Parent() *Node {
	return nd.parent
}

// Children returns the node's element children.
func (nd *Node) Children() []*Node {
	return nd.children
}

// Append attaches child as the last child of nd.
// The child must be detached.
func (nd *Node) Append(child *Node) {
	if child.parent != nil {
		panic("dom: node already has a parent")
	}
	child.parent = nd
	nd.children = append(nd.children, child)
	nd.n.AppendChild(child.n)
}

// Remove detaches nd from its parent. Detaching a detached node is a no-op.
func (nd *Node) Remove() {
	p := nd.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == nd {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	p.n.RemoveChild(nd.n)
	nd.parent = nil
}

// Attr returns the current state of the named attribute.
func (nd *Node) Attr(name string) AttrValue {
	for _, a := range nd.n.Attr {
		if a.Key == name {
			return AttrValue{Text: a.Val, Present: true}
		}
	}
	return AttrValue{}
}

// SetAttr sets the named attribute and notifies watchers.
// Setting an attribute to its current text still notifies; deciding whether
// the change is real is the watcher's concern.
func (nd *Node) SetAttr(name, text string) {
	prev := nd.Attr(name)
	set := false
	for i, a := range nd.n.Attr {
		if a.Key == name {
			nd.n.Attr[i].Val = text
			set = true
			break
		}
	}
	if !set {
		nd.n.Attr = append(nd.n.Attr, html.Attribute{Key: name, Val: text})
	}
	nd.notifyAttr(name, prev, AttrValue{Text: text, Present: true})
}

// RemoveAttr removes the named attribute and notifies watchers.
// Removing an absent attribute is a no-op and does not notify.
func (nd *Node) RemoveAttr(name string) {
	prev := nd.Attr(name)
	if !prev.Present {
		return
	}
	for i, a := range nd.n.Attr {
		if a.Key == name {
			nd.n.Attr = append(nd.n.Attr[:i], nd.n.Attr[i+1:]...)
			break
		}
	}
	nd.notifyAttr(name, prev, AttrValue{})
}

func (nd *Node) notifyAttr(name string, prev, next AttrValue) {
	for _, w := range nd.watchers {
		w(name, prev, next)
	}
}

// WatchAttrs registers a mutation watcher and returns its remover.
// This is the host's attribute-mutation hook; surf installs one per element.
func (nd *Node) WatchAttrs(w AttrWatcher) (remove func()) {
	if nd.watchers == nil {
		nd.watchers = make(map[int]AttrWatcher)
	}
	nd.nextWID++
	id := nd.nextWID
	nd.watchers[id] = w
	return func() {
		delete(nd.watchers, id)
	}
}

// AttachShadow returns the node's shadow root, creating it on first call.
func (nd *Node) AttachShadow() *Node {
	if nd.shadow == nil {
		nd.shadow = New("shadow-root")
		nd.shadow.host = nd
	}
	return nd.shadow
}

// Shadow returns the attached shadow root, or nil.
func (nd *Node) Shadow() *Node {
	return nd.shadow
}

// Host returns the shadow root's host element, or nil for ordinary nodes.
func (nd *Node) Host() *Node {
	return nd.host
}
