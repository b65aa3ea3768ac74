package weft

import (
	stderrors "errors"

	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/reactive"
)

// Placement selects where Render places content relative to the target.
type Placement int

const (
	// PlacementChildren replaces the target's children (the default).
	PlacementChildren Placement = iota
	// PlacementBefore inserts content before the target.
	PlacementBefore
	// PlacementPrepend inserts content as the target's first child.
	PlacementPrepend
	// PlacementReplace replaces the target itself.
	PlacementReplace
	// PlacementAppend appends content as the target's last child.
	PlacementAppend
	// PlacementAfter inserts content after the target.
	PlacementAfter
)

var (
	errDetachedTarget = stderrors.New("render target is not attached to the document")
	errInvalidContent = stderrors.New("content is not a node, fragment, or string")
)

// Render places content relative to target. The target must be attached to
// the document; content must be a node, a fragment, or a string (rendered
// as text). On success the DOM-ready flag is set, queued OnReady callbacks
// fire once, and callback(true) is invoked. On failure a diagnostic is
// reported and callback(false) is invoked; Render never panics on runtime
// data.
func (rt *Runtime) Render(target *html.Node, content any, placement Placement, callback func(ok bool)) {
	fail := func(err error) {
		errors.Report(&errors.WeftError{
			Op:   "weft.Render",
			Kind: errors.KindRender,
			Err:  err,
		})
		if callback != nil {
			callback(false)
		}
	}

	if target == nil || !rt.doc.Connected(target) {
		fail(errDetachedTarget)
		return
	}

	node, ok := rt.renderable(content)
	if !ok {
		fail(errInvalidContent)
		return
	}

	switch placement {
	case PlacementBefore:
		rt.doc.InsertBefore(node, target)
	case PlacementPrepend:
		rt.doc.Prepend(target, node)
	case PlacementReplace:
		rt.doc.ReplaceNode(target, node)
	case PlacementAppend:
		rt.doc.AppendChild(target, node)
	case PlacementAfter:
		rt.doc.InsertAfter(node, target)
	default:
		rt.doc.ReplaceChildren(target, node)
	}

	rt.markReady()
	if callback != nil {
		callback(true)
	}
}

func (rt *Runtime) renderable(content any) (*html.Node, bool) {
	switch c := content.(type) {
	case *html.Node:
		if c == nil {
			return nil, false
		}
		return c, true
	case string:
		return dom.NewText(c), true
	case int, int64, float64, bool:
		return dom.NewText(reactive.Stringify(c)), true
	default:
		return nil, false
	}
}

// markReady sets the ready flag and drains the one-shot ready queue.
func (rt *Runtime) markReady() {
	if rt.ready {
		return
	}
	rt.ready = true
	fns := rt.readyFns
	rt.readyFns = nil
	for _, fn := range fns {
		fn()
	}
}

// OnReady invokes fn immediately if a render has completed, otherwise
// queues it for the one-shot ready signal.
func (rt *Runtime) OnReady(fn func()) {
	if fn == nil {
		return
	}
	if rt.ready {
		fn()
		return
	}
	rt.readyFns = append(rt.readyFns, fn)
}
