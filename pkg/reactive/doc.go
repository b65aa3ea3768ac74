// Package reactive implements the dependency-tracking core of the weft
// runtime: state cells, the ambient tracking context, the bidirectional
// subscription graph between cells and DOM consumers, update propagation,
// and garbage collection of consumer records when nodes leave the document.
//
// There is no virtual-DOM diff pass. Every dynamic binding is a zero-argument
// recompute function paired with the exact DOM location it owns (a text
// node, an attribute, or a style property). Executing a recompute inside a
// tracking frame records which cells it read; updating a cell re-executes
// only the recomputes subscribed to it and patches only their locations.
//
// Tracking frames are call-stack scoped: opening a frame saves the previous
// one and closing restores it, so a recompute that itself updates a cell
// cannot corrupt the dependency discovery of an outer binding.
//
// All state is owned by a Runtime instance. The runtime is single-threaded
// and cooperative; nothing in this package starts goroutines or takes locks.
package reactive
