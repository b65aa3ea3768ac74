package reactive

import (
	"golang.org/x/net/html"
)

// updateDynamicValue re-runs the consumer records at the given indices of
// node's consumer list and patches each record's DOM location. A missing
// list or out-of-range index is a no-op: the node may have been collected
// between the cell snapshot and this call.
//
// Each recompute runs inside a fresh tracking frame; cells newly read are
// subscribed, cells no longer read stay subscribed (dependency sets grow
// monotonically).
func (rt *Runtime) updateDynamicValue(node *html.Node, indices []int) {
	records := rt.consumers[node]
	if len(records) == 0 {
		return
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(records) {
			continue
		}
		rec := records[idx]
		before := rec.deps.Clone()

		v, read := rt.Track(rec.recompute)

		switch rec.kind {
		case textRecord:
			rt.doc.SetText(rec.textNode, Stringify(v))
		case attributeRecord:
			rt.doc.SetAttr(node, rec.attr, Stringify(v))
		case styleRecord:
			rt.doc.SetStyleProperty(node, rec.prop, Stringify(v))
		}

		for id := range read.Iter() {
			if before.Contains(id) {
				continue
			}
			if st := rt.cells[id]; st != nil {
				st.addConsumer(node, idx)
			}
			rec.deps.Add(id)
		}
	}
}

// Dependencies returns the current dependency ids of the idx-th consumer
// record owned by node, or nil if no such record exists. Exposed for
// instrumentation and tests.
func (rt *Runtime) Dependencies(node *html.Node, idx int) []uint64 {
	records := rt.consumers[node]
	if idx < 0 || idx >= len(records) {
		return nil
	}
	return records[idx].deps.ToSlice()
}
