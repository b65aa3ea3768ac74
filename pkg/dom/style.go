package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// NormalizeStyleName converts a camelCase style property name to its dashed
// form. Custom properties (leading "--") and already-dashed names pass
// through unchanged.
func NormalizeStyleName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var sb strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

type styleDecl struct {
	name  string
	value string
}

func parseStyle(s string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, styleDecl{
			name:  strings.TrimSpace(name),
			value: strings.TrimSpace(value),
		})
	}
	return decls
}

func formatStyle(decls []styleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.name+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// StyleProperty returns the inline value of a style property, or "" if the
// property is not set. The name may be camelCase or dashed.
func StyleProperty(n *html.Node, name string) string {
	name = NormalizeStyleName(name)
	for _, d := range parseStyle(Attr(n, "style")) {
		if d.name == name {
			return d.value
		}
	}
	return ""
}

// SetStyleProperty sets one inline style property, preserving declaration
// order for existing properties.
func (d *Document) SetStyleProperty(n *html.Node, name, value string) {
	name = NormalizeStyleName(name)
	decls := parseStyle(Attr(n, "style"))
	found := false
	for i := range decls {
		if decls[i].name == name {
			decls[i].value = value
			found = true
			break
		}
	}
	if !found {
		decls = append(decls, styleDecl{name: name, value: value})
	}
	d.setStyleAttr(n, formatStyle(decls))
	d.record(Mutation{Kind: MutationStyle, Node: n, Name: name, Value: value})
}

// RemoveStyleProperty removes one inline style property if present.
func (d *Document) RemoveStyleProperty(n *html.Node, name string) {
	name = NormalizeStyleName(name)
	decls := parseStyle(Attr(n, "style"))
	for i := range decls {
		if decls[i].name == name {
			decls = append(decls[:i], decls[i+1:]...)
			d.setStyleAttr(n, formatStyle(decls))
			d.record(Mutation{Kind: MutationStyle, Node: n, Name: name})
			return
		}
	}
}

// ClearStyle removes every inline style declaration from n.
func (d *Document) ClearStyle(n *html.Node) {
	if !HasAttr(n, "style") {
		return
	}
	d.RemoveAttr(n, "style")
	d.record(Mutation{Kind: MutationStyle, Node: n})
}

// setStyleAttr writes the style attribute without double-recording an
// attribute mutation; style changes are recorded as MutationStyle.
func (d *Document) setStyleAttr(n *html.Node, value string) {
	if value == "" {
		for i := range n.Attr {
			if n.Attr[i].Key == "style" {
				n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
				return
			}
		}
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Key == "style" {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: value})
}
