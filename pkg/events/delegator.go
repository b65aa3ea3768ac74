// Package events implements delegated event dispatch: one document-level
// listener per event type, routing to per-node handlers through marker
// attributes.
//
// Nodes that listen for events carry a stable numeric id attribute shared
// across all their event types, plus one boolean-presence attribute per
// type. The shared listener walks from the event target to the nearest
// ancestor carrying the type's presence marker and invokes the handler
// registered under that ancestor's id; the innermost marked ancestor wins
// and handlers fire at most once per event.
package events

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
)

// Marker attribute names are a stable contract: hosts and tests correlate
// events and bindings through them.
const (
	// IDAttribute holds a node's stable numeric id.
	IDAttribute = "data-wid"
	// presencePrefix prefixes the per-event-type boolean marker.
	presencePrefix = "data-on-"
)

// PresenceAttribute returns the boolean marker attribute name for an event
// type. The type is normalized first, so aliased names map to the same
// marker as their canonical form.
func PresenceAttribute(typ string) string {
	return presencePrefix + Normalize(typ)
}

// aliases maps a few convenience event names to their closest broadly
// supported native equivalent.
var aliases = map[string]string{
	"tap":         "click",
	"doubleclick": "dblclick",
	"mousewheel":  "wheel",
	"hover":       "mouseover",
	"focusin":     "focus",
	"focusout":    "blur",
}

// Normalize lower-cases an event type and resolves aliases.
func Normalize(typ string) string {
	typ = strings.ToLower(typ)
	if canonical, ok := aliases[typ]; ok {
		return canonical
	}
	return typ
}

// HandlerFunc handles a dispatched event.
type HandlerFunc func(*dom.Event)

// Delegator owns the per-type dispatch tables and the shared document
// listeners.
type Delegator struct {
	doc *dom.Document
	// handlers maps event type -> node id -> handler.
	handlers map[string]map[uint64]HandlerFunc
}

// NewDelegator creates a delegator for doc. No listeners are installed
// until the first registration.
func NewDelegator(doc *dom.Document) *Delegator {
	return &Delegator{
		doc:      doc,
		handlers: make(map[string]map[uint64]HandlerFunc),
	}
}

// Listen registers handler for (typ, nodeID), overwriting any previous
// registration. The single shared document listener for the type is
// installed on first use.
func (d *Delegator) Listen(typ string, handler HandlerFunc, nodeID uint64) {
	typ = Normalize(typ)
	table, ok := d.handlers[typ]
	if !ok {
		table = make(map[uint64]HandlerFunc)
		d.handlers[typ] = table
		d.doc.AddListener(typ, func(ev *dom.Event) {
			d.dispatch(typ, ev)
		})
	}
	table[nodeID] = handler
}

// dispatch is the shared listener body: walk from the target to the
// nearest ancestor marked for the type and invoke its registered handler.
// Events with no marked ancestor are ignored.
func (d *Delegator) dispatch(typ string, ev *dom.Event) {
	marker := presencePrefix + typ
	for n := ev.Target; n != nil; n = n.Parent {
		if n.Type != html.ElementNode || !dom.HasAttr(n, marker) {
			continue
		}
		id, err := strconv.ParseUint(dom.Attr(n, IDAttribute), 10, 64)
		if err != nil {
			return
		}
		if handler := d.handlers[typ][id]; handler != nil {
			handler(ev)
		}
		return
	}
}

// Forget drops every dispatch-table entry held for n, keyed off the
// presence markers it carries. When a type's table empties, the shared
// document listener for that type is uninstalled.
func (d *Delegator) Forget(n *html.Node) {
	idAttr := dom.Attr(n, IDAttribute)
	if idAttr == "" {
		return
	}
	id, err := strconv.ParseUint(idAttr, 10, 64)
	if err != nil {
		return
	}
	for typ, table := range d.handlers {
		if !dom.HasAttr(n, presencePrefix+typ) {
			continue
		}
		delete(table, id)
		if len(table) == 0 {
			d.doc.RemoveListener(typ)
			delete(d.handlers, typ)
		}
	}
}

// Handles reports whether a handler is registered for (typ, nodeID).
func (d *Delegator) Handles(typ string, nodeID uint64) bool {
	_, ok := d.handlers[Normalize(typ)][nodeID]
	return ok
}
