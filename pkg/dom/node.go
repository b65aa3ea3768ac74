package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SVGNamespace is the namespace recorded on namespace-qualified elements.
const SVGNamespace = "svg"

// NewElement creates a detached HTML element.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewElementNS creates a detached namespace-qualified element.
func NewElementNS(namespace, tag string) *html.Node {
	n := NewElement(tag)
	n.Namespace = namespace
	return n
}

// NewText creates a detached text node.
func NewText(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// NewFragment creates a document fragment. Inserting a fragment into the
// tree splices its children in place; the fragment itself is never attached.
func NewFragment() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}

// IsFragment reports whether n is a document fragment created by
// NewFragment (as opposed to a Document root).
func (d *Document) IsFragment(n *html.Node) bool {
	return n != nil && n.Type == html.DocumentNode && n != d.root
}

// AppendChild appends child to parent. Fragments are spliced.
func (d *Document) AppendChild(parent, child *html.Node) {
	d.insert(parent, child, nil)
}

// Prepend inserts child as the first child of parent.
func (d *Document) Prepend(parent, child *html.Node) {
	d.insert(parent, child, parent.FirstChild)
}

// InsertBefore inserts child into ref's parent immediately before ref.
func (d *Document) InsertBefore(child, ref *html.Node) {
	if ref.Parent == nil {
		return
	}
	d.insert(ref.Parent, child, ref)
}

// InsertAfter inserts child into ref's parent immediately after ref.
func (d *Document) InsertAfter(child, ref *html.Node) {
	if ref.Parent == nil {
		return
	}
	d.insert(ref.Parent, child, ref.NextSibling)
}

// ReplaceNode replaces old with child in old's parent. The displaced node
// is reported to removal observers if it was connected.
func (d *Document) ReplaceNode(old, child *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	ref := old.NextSibling
	d.Detach(old)
	d.insert(parent, child, ref)
}

// ReplaceChildren detaches every existing child of parent and appends
// children in order.
func (d *Document) ReplaceChildren(parent *html.Node, children ...*html.Node) {
	for parent.FirstChild != nil {
		d.Detach(parent.FirstChild)
	}
	for _, child := range children {
		d.insert(parent, child, nil)
	}
}

// Detach unlinks n from its parent. If n was connected, removal observers
// are notified with n as the removed subtree root.
func (d *Document) Detach(n *html.Node) {
	wasConnected := d.Connected(n)
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	if wasConnected {
		d.NotifyRemoval(n)
	}
}

// insert places child (or, for a fragment, each of its children) into
// parent before ref. ref == nil appends. Moving a connected node to another
// connected position is not a removal; a connected node moved into a
// detached subtree is reported to removal observers.
func (d *Document) insert(parent, child, ref *html.Node) {
	if parent == nil || child == nil {
		return
	}
	if d.IsFragment(child) {
		for child.FirstChild != nil {
			d.insert(parent, child.FirstChild, ref)
		}
		return
	}
	wasConnected := d.Connected(child)
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	if ref != nil {
		parent.InsertBefore(child, ref)
	} else {
		parent.AppendChild(child)
	}
	nowConnected := d.Connected(child)
	if wasConnected && !nowConnected {
		d.NotifyRemoval(child)
	}
	if nowConnected {
		d.record(Mutation{Kind: MutationAttach, Node: child})
	}
}

// SetText replaces a text node's character data.
func (d *Document) SetText(textNode *html.Node, data string) {
	textNode.Data = data
	d.record(Mutation{Kind: MutationText, Node: textNode, Value: data})
}

// SetAttr sets an attribute, replacing any existing value.
func (d *Document) SetAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			d.record(Mutation{Kind: MutationAttribute, Node: n, Name: name, Value: value})
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
	d.record(Mutation{Kind: MutationAttribute, Node: n, Name: name, Value: value})
}

// RemoveAttr removes an attribute if present.
func (d *Document) RemoveAttr(n *html.Node, name string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			d.record(Mutation{Kind: MutationAttribute, Node: n, Name: name})
			return
		}
	}
}

// Attr returns the value of an attribute, or "" if absent.
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether an attribute is present, independent of value.
func HasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// WalkElements visits n and every element in its subtree in document order.
// The visitor returns false to stop the walk.
func WalkElements(n *html.Node, visit func(*html.Node) bool) {
	stopped := false
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if stopped {
			return
		}
		if cur.Type == html.ElementNode {
			if !visit(cur) {
				stopped = true
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
}

// TextContent concatenates the text data of n's subtree.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// MarkupString renders n as HTML. Fragments render their children.
func MarkupString(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}
