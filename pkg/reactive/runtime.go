package reactive

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
)

// Default tuning for the deferred sweep; see Options.
const (
	DefaultSweepDebounce  = 100 * time.Millisecond
	DefaultSweepThreshold = 32
)

// Clock abstracts time for the deferred sweep so tests can drive it
// manually.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Delegate receives collection notifications for removed elements. The
// event delegator implements it to drop dispatch-table entries.
type Delegate interface {
	// Forget drops any per-node state held for an element that left the
	// document.
	Forget(n *html.Node)
}

// Options tunes a Runtime. The zero value selects defaults.
type Options struct {
	// SweepDebounce is the trailing window after a removal before the
	// deferred sweep runs. Each new removal resets the window.
	SweepDebounce time.Duration
	// SweepThreshold forces an immediate sweep once this many removals
	// accumulate inside one debounce window, bounding unswept garbage
	// under high churn.
	SweepThreshold int
	// Clock supplies time for sweep scheduling. Defaults to the system
	// clock.
	Clock Clock
}

func (o Options) withDefaults() Options {
	if o.SweepDebounce <= 0 {
		o.SweepDebounce = DefaultSweepDebounce
	}
	if o.SweepThreshold <= 0 {
		o.SweepThreshold = DefaultSweepThreshold
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	return o
}

// Runtime owns every reactive table: the cell table, the node consumer
// table, and the ambient tracking context. One Runtime serves one Document.
//
// Runtime is not safe for concurrent use; all operations run to completion
// on the calling turn.
type Runtime struct {
	doc  *dom.Document
	opts Options

	cells      map[uint64]*cellState
	nextCellID uint64

	// consumers maps an owning node to its append-only, stable-index list
	// of consumer records.
	consumers map[*html.Node][]*consumerRecord

	tracking *trackingFrame

	delegate  Delegate
	unobserve func()

	sweepPending  bool
	sweepDeadline time.Time
	sweepCalls    int

	closed bool
}

// NewRuntime creates a reactive runtime bound to doc and registers it as a
// removal observer, so detaching nodes through the document triggers
// collection synchronously.
func NewRuntime(doc *dom.Document, opts Options) *Runtime {
	rt := &Runtime{
		doc:       doc,
		opts:      opts.withDefaults(),
		cells:     make(map[uint64]*cellState),
		consumers: make(map[*html.Node][]*consumerRecord),
	}
	rt.unobserve = doc.ObserveRemovals(rt.collect)
	return rt
}

// SetDelegate installs the collection delegate (the event delegator).
func (rt *Runtime) SetDelegate(d Delegate) {
	rt.delegate = d
}

// Document returns the document this runtime patches.
func (rt *Runtime) Document() *dom.Document { return rt.doc }

// Close tears the runtime down: it stops observing removals and releases
// every table. Cells created by this runtime become inert; their Value
// returns the last stored value and Update is a no-op.
func (rt *Runtime) Close() {
	if rt.closed {
		return
	}
	rt.closed = true
	if rt.unobserve != nil {
		rt.unobserve()
		rt.unobserve = nil
	}
	rt.consumers = make(map[*html.Node][]*consumerRecord)
	rt.tracking = nil
	rt.sweepPending = false
	rt.sweepCalls = 0
}

// HasBindings reports whether n owns at least one consumer record.
func (rt *Runtime) HasBindings(n *html.Node) bool {
	return len(rt.consumers[n]) > 0
}

// trackingFrame is one recording interval of the ambient tracking context.
type trackingFrame struct {
	ids mapset.Set[uint64]
}

// Track runs fn inside a fresh tracking frame and returns its result along
// with the set of cell ids it read. The previous frame is saved and
// restored, never reset, so nested tracked runs compose.
func (rt *Runtime) Track(fn func() any) (any, mapset.Set[uint64]) {
	prev := rt.tracking
	frame := &trackingFrame{ids: mapset.NewThreadUnsafeSet[uint64]()}
	rt.tracking = frame
	defer func() { rt.tracking = prev }()
	v := fn()
	return v, frame.ids
}
