package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"
)

type recordKind uint8

const (
	textRecord recordKind = iota
	attributeRecord
	styleRecord
)

// consumerRecord binds one DOM location to the function that recomputes
// its value. Records are stored per owning node in an append-only list;
// cells reference them by (node, index), so indices stay stable for the
// node's lifetime.
type consumerRecord struct {
	kind      recordKind
	recompute func() any

	// Target locator, by kind.
	textNode *html.Node // textRecord: the owned text node
	attr     string     // attributeRecord: attribute name
	prop     string     // styleRecord: style property name

	// deps is the set of cell ids this record depends on. It only grows:
	// ids read on any recompute stay subscribed even if a later recompute
	// stops reading them.
	deps mapset.Set[uint64]
}

// BindText registers a text binding: owner's text node is rewritten from
// recompute whenever any cell in deps updates.
func (rt *Runtime) BindText(owner, textNode *html.Node, recompute func() any, deps mapset.Set[uint64]) {
	rt.bind(owner, &consumerRecord{
		kind:      textRecord,
		recompute: recompute,
		textNode:  textNode,
	}, deps)
}

// BindAttribute registers a dynamic attribute binding on owner.
func (rt *Runtime) BindAttribute(owner *html.Node, name string, recompute func() any, deps mapset.Set[uint64]) {
	rt.bind(owner, &consumerRecord{
		kind:      attributeRecord,
		recompute: recompute,
		attr:      name,
	}, deps)
}

// BindStyle registers a per-property style binding on owner.
func (rt *Runtime) BindStyle(owner *html.Node, prop string, recompute func() any, deps mapset.Set[uint64]) {
	rt.bind(owner, &consumerRecord{
		kind:      styleRecord,
		recompute: recompute,
		prop:      prop,
	}, deps)
}

func (rt *Runtime) bind(owner *html.Node, rec *consumerRecord, deps mapset.Set[uint64]) {
	if rt.closed || deps == nil || deps.Cardinality() == 0 {
		return
	}
	rec.deps = deps.Clone()
	idx := len(rt.consumers[owner])
	rt.consumers[owner] = append(rt.consumers[owner], rec)
	for id := range deps.Iter() {
		if st := rt.cells[id]; st != nil {
			st.addConsumer(owner, idx)
		}
	}
}
