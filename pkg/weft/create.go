package weft

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/events"
	"github.com/go-weft/weft/pkg/reactive"
)

// Create builds a node from a descriptor. Tag descriptors produce a native
// element (SVG tags namespace-qualified) with props applied and children
// appended; Component descriptors invoke the component with props plus the
// flattened children and return its result directly; Fragment descriptors
// produce a fragment of the literal and element children.
//
// Children flatten recursively, and nil, false, and "" are dropped so
// conditional-child idioms read naturally. A Thunk child becomes a text
// node; if it read any cells it becomes a live text binding.
//
// An invalid descriptor panics: it can only come from a broken caller or
// compiler, never from runtime data.
func (rt *Runtime) Create(desc Descriptor, props Props, children ...any) *html.Node {
	kids := flattenChildren(children)

	switch desc.kind {
	case tagDescriptor:
		var n *html.Node
		if _, ok := svgTags[desc.tag]; ok {
			n = dom.NewElementNS(dom.SVGNamespace, desc.tag)
		} else {
			n = dom.NewElement(desc.tag)
		}
		rt.applyProps(n, props)
		rt.appendChildren(n, kids)
		return n

	case componentDescriptor:
		merged := make(Props, len(props)+1)
		for k, v := range props {
			merged[k] = v
		}
		merged["children"] = kids
		return desc.component(merged)

	case fragmentDescriptor:
		frag := dom.NewFragment()
		for _, child := range kids {
			if node, ok := child.(*html.Node); ok {
				rt.doc.AppendChild(frag, node)
				continue
			}
			if asThunk(child) != nil {
				// Function children are not meaningful inside fragments.
				continue
			}
			rt.doc.AppendChild(frag, dom.NewText(reactive.Stringify(child)))
		}
		return frag

	default:
		panic(fmt.Sprintf("weft: Create called with invalid descriptor %#v", desc))
	}
}

// flattenChildren expands nested sequences in place and drops nil, false,
// and empty-string children.
func flattenChildren(children []any) []any {
	out := make([]any, 0, len(children))
	for _, child := range children {
		switch v := child.(type) {
		case nil:
		case []any:
			out = append(out, flattenChildren(v)...)
		case []*html.Node:
			for _, n := range v {
				if n != nil {
					out = append(out, n)
				}
			}
		case bool:
			if v {
				out = append(out, v)
			}
		case string:
			if v != "" {
				out = append(out, v)
			}
		default:
			out = append(out, child)
		}
	}
	return out
}

func (rt *Runtime) applyProps(n *html.Node, props Props) {
	for key, value := range props {
		rt.applyProp(n, key, value)
	}
}

// applyProp dispatches one prop. First match wins: nullish and false are
// skipped, true and "" set a presence-only attribute, a style object binds
// per-property, an event key with a handler registers through the
// delegator, any other function becomes a dynamic attribute binding, and
// everything else is coerced to a string attribute.
func (rt *Runtime) applyProp(n *html.Node, key string, value any) {
	key = aliasProp(key)

	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			rt.doc.SetAttr(n, key, "")
		}
		return
	case string:
		if v == "" {
			rt.doc.SetAttr(n, key, "")
			return
		}
		rt.doc.SetAttr(n, key, v)
		return
	}

	if key == "style" {
		if style := asStyle(value); style != nil {
			rt.bindStyles(n, style)
			return
		}
	}
	if isEventKey(key) {
		if handler := asHandler(value); handler != nil {
			rt.listen(n, eventType(key), handler)
			return
		}
	}
	if thunk := asThunk(value); thunk != nil {
		rt.bindAttribute(n, key, thunk)
		return
	}

	rt.doc.SetAttr(n, key, reactive.Stringify(value))
}

// bindStyles applies a style object. Thunk values run inside a tracking
// window; if they read any cells the property becomes a live binding.
// Properties apply in sorted order so the serialized style attribute is
// deterministic.
func (rt *Runtime) bindStyles(n *html.Node, style Style) {
	for _, name := range sortedStyleNames(style) {
		value := style[name]
		thunk := asThunk(value)
		if thunk == nil {
			rt.doc.SetStyleProperty(n, name, reactive.Stringify(value))
			continue
		}
		initial, read := rt.cells.Track(thunk)
		rt.doc.SetStyleProperty(n, name, reactive.Stringify(initial))
		if read.Cardinality() > 0 {
			rt.cells.BindStyle(n, name, thunk, read)
			rt.markReactive(n)
		}
	}
}

// bindAttribute applies a dynamic attribute binding, symmetric to style
// bindings.
func (rt *Runtime) bindAttribute(n *html.Node, name string, thunk func() any) {
	initial, read := rt.cells.Track(thunk)
	rt.doc.SetAttr(n, name, reactive.Stringify(initial))
	if read.Cardinality() > 0 {
		rt.cells.BindAttribute(n, name, thunk, read)
		rt.markReactive(n)
	}
}

func (rt *Runtime) appendChildren(n *html.Node, kids []any) {
	for _, child := range kids {
		if node, ok := child.(*html.Node); ok {
			rt.doc.AppendChild(n, node)
			continue
		}
		if thunk := asThunk(child); thunk != nil {
			initial, read := rt.cells.Track(thunk)
			text := dom.NewText(reactive.Stringify(initial))
			rt.doc.AppendChild(n, text)
			if read.Cardinality() > 0 {
				rt.cells.BindText(n, text, thunk, read)
				rt.markReactive(n)
			}
			continue
		}
		rt.doc.AppendChild(n, dom.NewText(reactive.Stringify(child)))
	}
}

// listen stamps the node with its stable id and the event-type presence
// marker, then registers the handler with the delegator.
func (rt *Runtime) listen(n *html.Node, typ string, handler events.HandlerFunc) {
	id := rt.ensureNodeID(n)
	rt.doc.SetAttr(n, events.PresenceAttribute(typ), "")
	rt.delegator.Listen(typ, handler, id)
}

// ensureNodeID returns n's stable numeric id, assigning the next one if
// the node has none. Ids are assigned once and never reused.
func (rt *Runtime) ensureNodeID(n *html.Node) uint64 {
	if existing := dom.Attr(n, events.IDAttribute); existing != "" {
		if id, err := strconv.ParseUint(existing, 10, 64); err == nil {
			return id
		}
	}
	rt.nextNodeID++
	rt.doc.SetAttr(n, events.IDAttribute, strconv.FormatUint(rt.nextNodeID, 10))
	return rt.nextNodeID
}

func (rt *Runtime) markReactive(n *html.Node) {
	if !dom.HasAttr(n, ReactiveAttribute) {
		rt.doc.SetAttr(n, ReactiveAttribute, "")
	}
}
