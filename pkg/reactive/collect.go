package reactive

import (
	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
)

// collect runs synchronously for every subtree that leaves the document.
// Per removed element it drops delegator state and the element's consumer
// list, then schedules the deferred sweep that prunes the now-dangling
// entries from cell multimaps. Collection is best-effort; it never fails
// an update.
func (rt *Runtime) collect(removed *html.Node) {
	if rt.closed {
		return
	}
	dom.WalkElements(removed, func(el *html.Node) bool {
		if rt.delegate != nil {
			rt.delegate.Forget(el)
		}
		if _, ok := rt.consumers[el]; ok {
			delete(rt.consumers, el)
			rt.scheduleSweep()
		}
		return true
	})
	rt.maybeSweep()
}

// scheduleSweep arms the deferred sweep on a trailing debounce window.
// Each call resets the window; once SweepThreshold calls accumulate the
// sweep runs immediately, bounding worst-case unswept garbage under high
// churn.
func (rt *Runtime) scheduleSweep() {
	rt.sweepCalls++
	if rt.sweepCalls >= rt.opts.SweepThreshold {
		rt.sweepNow()
		return
	}
	rt.sweepPending = true
	rt.sweepDeadline = rt.opts.Clock.Now().Add(rt.opts.SweepDebounce)
}

// maybeSweep runs the pending sweep if its debounce window has elapsed.
// The runtime is cooperative: the window is checked on later runtime
// operations rather than by a timer goroutine.
func (rt *Runtime) maybeSweep() {
	if rt.sweepPending && !rt.opts.Clock.Now().Before(rt.sweepDeadline) {
		rt.sweepNow()
	}
}

// Sweep forces the deferred sweep to run now.
func (rt *Runtime) Sweep() {
	rt.sweepNow()
}

// sweepNow prunes, from every cell's consumer multimap, entries whose node
// no longer owns a consumer list (it was collected after leaving the
// document).
func (rt *Runtime) sweepNow() {
	rt.sweepPending = false
	rt.sweepCalls = 0
	for _, st := range rt.cells {
		kept := st.order[:0:0]
		for _, node := range st.order {
			if _, live := rt.consumers[node]; live {
				kept = append(kept, node)
				continue
			}
			delete(st.indices, node)
		}
		st.order = kept
	}
}

// ConsumerNodes returns the nodes currently subscribed to a cell, in
// subscription order. Exposed for instrumentation and tests.
func (rt *Runtime) ConsumerNodes(c *Cell) []*html.Node {
	st := rt.cells[c.id]
	if st == nil {
		return nil
	}
	return append([]*html.Node(nil), st.order...)
}
