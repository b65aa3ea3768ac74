// Package weft is the public surface of the weft runtime: it builds native
// DOM nodes from declarative descriptors, wires dynamic bindings and event
// handlers while constructing them, and patches exactly the locations that
// depend on a cell when the cell updates.
//
// A minimal program:
//
//	rt := weft.New(weft.DefaultOptions())
//	count := rt.Dynamic(0)
//
//	view := rt.Create(weft.Tag("button"), weft.Props{
//	    "onclick": events.HandlerFunc(func(*dom.Event) {
//	        count.Update(count.Value().(int) + 1)
//	    }),
//	}, func() any {
//	    return fmt.Sprintf("Count: %d", count.Value())
//	})
//
//	rt.Render(rt.Document().Body(), view, weft.PlacementChildren, nil)
//
// Descriptors are an exhaustive tagged variant: Tag for native elements,
// Component for descriptor-producing functions, Fragment for child lists
// without a wrapper element. Constructing with the zero Descriptor panics;
// that is a compiler/caller contract violation, not a runtime condition.
//
// All state lives on a Runtime instance; create one per document and Close
// it when embedding scenarios need teardown.
package weft
