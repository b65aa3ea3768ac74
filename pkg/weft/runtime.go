package weft

import (
	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/events"
	"github.com/go-weft/weft/pkg/reactive"
)

// Runtime is one rendering runtime: a document, its reactive tables, and
// its event delegator. Runtimes are single-threaded; every public
// operation runs to completion on the calling turn.
type Runtime struct {
	doc       *dom.Document
	cells     *reactive.Runtime
	delegator *events.Delegator

	nextNodeID uint64

	ready    bool
	readyFns []func()
}

// New creates a runtime with a fresh empty document.
func New(opts Options) *Runtime {
	return NewWithDocument(dom.NewDocument(), opts)
}

// NewWithDocument creates a runtime over an existing document, for hosts
// that parse or construct their tree elsewhere.
func NewWithDocument(doc *dom.Document, opts Options) *Runtime {
	opts = opts.withDefaults()
	rt := &Runtime{
		doc:       doc,
		cells:     reactive.NewRuntime(doc, opts.reactive()),
		delegator: events.NewDelegator(doc),
	}
	rt.cells.SetDelegate(rt.delegator)
	return rt
}

// Close tears the runtime down for embedding scenarios: reactive tables
// are released and the document stops notifying this runtime of removals.
// The document itself stays usable.
func (rt *Runtime) Close() {
	rt.cells.Close()
	rt.readyFns = nil
}

// Document returns the runtime's document.
func (rt *Runtime) Document() *dom.Document { return rt.doc }

// Delegator returns the runtime's event delegator.
func (rt *Runtime) Delegator() *events.Delegator { return rt.delegator }

// Dynamic allocates a reactive cell holding initial.
func (rt *Runtime) Dynamic(initial any) *reactive.Cell {
	return rt.cells.Dynamic(initial)
}

// Remove detaches nodes from the document. Removal triggers listener and
// binding collection synchronously and schedules the deferred sweep.
func (rt *Runtime) Remove(nodes ...*html.Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		rt.doc.Detach(n)
	}
}

// Sweep forces the deferred consumer sweep to run immediately.
func (rt *Runtime) Sweep() {
	rt.cells.Sweep()
}

// Cells exposes the reactive runtime for instrumentation and tests.
func (rt *Runtime) Cells() *reactive.Runtime { return rt.cells }
