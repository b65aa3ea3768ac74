package reactive

import (
	"fmt"
	"reflect"

	"golang.org/x/net/html"
)

// cellState is the runtime-side record of one cell: its current value and
// the multimap from consumer-owning node to consumer-record indices.
// Nodes are kept in subscription order; propagation visits them in that
// order, not document order.
type cellState struct {
	value   any
	indices map[*html.Node][]int
	order   []*html.Node
}

func (st *cellState) addConsumer(node *html.Node, idx int) {
	existing, seen := st.indices[node]
	if !seen {
		st.order = append(st.order, node)
	}
	for _, i := range existing {
		if i == idx {
			return
		}
	}
	st.indices[node] = append(existing, idx)
}

// Cell is a reactive value. Reading it inside a tracking frame records a
// dependency; updating it re-runs exactly the consumers subscribed to it.
type Cell struct {
	id uint64
	rt *Runtime
}

// Dynamic allocates a new cell holding initial.
func (rt *Runtime) Dynamic(initial any) *Cell {
	rt.nextCellID++
	id := rt.nextCellID
	rt.cells[id] = &cellState{
		value:   initial,
		indices: make(map[*html.Node][]int),
	}
	return &Cell{id: id, rt: rt}
}

// ID returns the cell's unique id. Ids are assigned once, monotonically.
func (c *Cell) ID() uint64 { return c.id }

// Value returns the current value. If a tracking frame is active, the
// cell's id is recorded into it.
func (c *Cell) Value() any {
	st := c.rt.cells[c.id]
	if st == nil {
		return nil
	}
	if frame := c.rt.tracking; frame != nil {
		frame.ids.Add(c.id)
	}
	return st.value
}

// Update stores next and propagates to every subscribed consumer, one
// propagator call per owning node in subscription order. Values that
// compare equal to the stored value (strict inequality on comparable
// types) do not propagate; values of non-comparable types always count as
// changed.
func (c *Cell) Update(next any) {
	rt := c.rt
	st := rt.cells[c.id]
	if st == nil {
		return
	}
	if !valueChanged(st.value, next) {
		rt.maybeSweep()
		return
	}
	st.value = next

	// Snapshot the multimap: a recompute may subscribe new consumers or a
	// forced sweep may prune entries mid-propagation.
	nodes := append([]*html.Node(nil), st.order...)
	for _, node := range nodes {
		indices := append([]int(nil), st.indices[node]...)
		if len(indices) == 0 {
			continue
		}
		rt.updateDynamicValue(node, indices)
	}
	rt.maybeSweep()
}

func valueChanged(prev, next any) bool {
	if prev == nil && next == nil {
		return false
	}
	if prev == nil || next == nil {
		return true
	}
	pt := reflect.TypeOf(prev)
	if pt == reflect.TypeOf(next) && pt.Comparable() {
		return prev != next
	}
	return true
}

// Stringify coerces a recompute result to the string written into the DOM.
// nil coerces to the empty string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}
