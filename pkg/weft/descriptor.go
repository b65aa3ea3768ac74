package weft

import (
	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/events"
)

// Props holds the attribute, style, and event configuration of a node
// under construction. Keys dispatch by value shape; see Runtime.Create.
type Props map[string]any

// Style maps style property names (camelCase, dashed, or custom "--"
// properties) to values. A Thunk value makes the property a dynamic
// binding.
type Style map[string]any

// Thunk is a zero-argument recompute function. Reading cells inside it
// registers them as dependencies of the binding it backs.
type Thunk func() any

// ComponentFunc is a pure descriptor-producing component. It receives its
// props plus the flattened children under the "children" key.
type ComponentFunc func(Props) *html.Node

type descriptorKind uint8

const (
	invalidDescriptor descriptorKind = iota
	tagDescriptor
	componentDescriptor
	fragmentDescriptor
)

// Descriptor says what Create should build: a native element, a component
// invocation, or a fragment. The zero Descriptor is invalid and panics at
// construction time.
type Descriptor struct {
	kind      descriptorKind
	tag       string
	component ComponentFunc
}

// Tag describes a native element.
func Tag(name string) Descriptor {
	return Descriptor{kind: tagDescriptor, tag: name}
}

// Component describes a component invocation.
func Component(fn ComponentFunc) Descriptor {
	return Descriptor{kind: componentDescriptor, component: fn}
}

// Fragment describes a wrapperless child list.
var Fragment = Descriptor{kind: fragmentDescriptor}

// ReactiveAttribute marks nodes that own at least one dynamic binding, for
// garbage-collector discovery.
const ReactiveAttribute = "data-reactive"

// propAliases rewrites reserved prop keys to their attribute names before
// dispatch.
var propAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

func aliasProp(key string) string {
	if attr, ok := propAliases[key]; ok {
		return attr
	}
	return key
}

// svgTags is the set of tag names created with the SVG namespace.
var svgTags = map[string]struct{}{
	"svg": {}, "path": {}, "circle": {}, "ellipse": {}, "line": {},
	"rect": {}, "polygon": {}, "polyline": {}, "g": {}, "defs": {},
	"use": {}, "symbol": {}, "marker": {}, "mask": {}, "pattern": {},
	"clipPath": {}, "linearGradient": {}, "radialGradient": {}, "stop": {},
	"filter": {}, "feGaussianBlur": {}, "feOffset": {}, "feBlend": {},
	"feColorMatrix": {}, "feMerge": {}, "feMergeNode": {}, "tspan": {},
	"textPath": {}, "foreignObject": {}, "animate": {}, "animateMotion": {},
	"animateTransform": {}, "view": {},
}

func asThunk(v any) func() any {
	switch fn := v.(type) {
	case Thunk:
		return fn
	case func() any:
		return fn
	}
	return nil
}

func asHandler(v any) events.HandlerFunc {
	switch fn := v.(type) {
	case events.HandlerFunc:
		return fn
	case func(*dom.Event):
		return fn
	}
	return nil
}

func asStyle(v any) Style {
	switch m := v.(type) {
	case Style:
		return m
	case map[string]any:
		return m
	}
	return nil
}

// isEventKey reports whether a prop key follows the event-handler naming
// convention ("on" + type).
func isEventKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// eventType extracts the event type from an event prop key.
func eventType(key string) string {
	return key[2:]
}
