package events_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/events"
)

func newHarness(t *testing.T) (*dom.Document, *events.Delegator) {
	t.Helper()
	doc := dom.NewDocument()
	return doc, events.NewDelegator(doc)
}

// mark stamps a node with the id and presence markers the element factory
// would write.
func mark(doc *dom.Document, n *html.Node, id uint64, types ...string) {
	doc.SetAttr(n, events.IDAttribute, strconv.FormatUint(id, 10))
	for _, typ := range types {
		doc.SetAttr(n, events.PresenceAttribute(typ), "")
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "click", events.Normalize("click"))
	assert.Equal(t, "click", events.Normalize("Click"))
	assert.Equal(t, "click", events.Normalize("tap"))
	assert.Equal(t, "dblclick", events.Normalize("doubleclick"))
	assert.Equal(t, "wheel", events.Normalize("mousewheel"))
	assert.Equal(t, "mouseover", events.Normalize("hover"))
	assert.Equal(t, "focus", events.Normalize("focusin"))
	assert.Equal(t, "blur", events.Normalize("focusout"))
	assert.Equal(t, "custom-thing", events.Normalize("custom-thing"))
}

func TestPresenceAttribute(t *testing.T) {
	assert.Equal(t, "data-on-click", events.PresenceAttribute("click"))
	assert.Equal(t, "data-on-click", events.PresenceAttribute("tap"))
}

func TestListenInstallsOneListenerPerType(t *testing.T) {
	doc, d := newHarness(t)

	d.Listen("click", func(*dom.Event) {}, 1)
	require.True(t, doc.HasListener("click"))

	d.Listen("click", func(*dom.Event) {}, 2)
	d.Listen("tap", func(*dom.Event) {}, 3)
	assert.True(t, doc.HasListener("click"))
	assert.False(t, doc.HasListener("tap"), "aliases share the canonical listener")

	assert.True(t, d.Handles("click", 1))
	assert.True(t, d.Handles("click", 2))
	assert.True(t, d.Handles("tap", 3), "alias lookups resolve to the canonical table")
}

func TestDispatchHitsMarkedTarget(t *testing.T) {
	doc, d := newHarness(t)
	button := dom.NewElement("button")
	doc.AppendChild(doc.Body(), button)
	mark(doc, button, 7, "click")

	var got *dom.Event
	d.Listen("click", func(ev *dom.Event) { got = ev }, 7)

	doc.Dispatch(&dom.Event{Type: "click", Target: button})
	require.NotNil(t, got)
	assert.Same(t, button, got.Target)
}

func TestDispatchBubblesToNearestMarkedAncestor(t *testing.T) {
	doc, d := newHarness(t)
	outer := dom.NewElement("div")
	inner := dom.NewElement("div")
	leaf := dom.NewElement("span")
	doc.AppendChild(doc.Body(), outer)
	doc.AppendChild(outer, inner)
	doc.AppendChild(inner, leaf)
	mark(doc, outer, 1, "click")
	mark(doc, inner, 2, "click")

	var fired []uint64
	d.Listen("click", func(*dom.Event) { fired = append(fired, 1) }, 1)
	d.Listen("click", func(*dom.Event) { fired = append(fired, 2) }, 2)

	doc.Dispatch(&dom.Event{Type: "click", Target: leaf})
	assert.Equal(t, []uint64{2}, fired,
		"the innermost marked ancestor wins and the handler fires once")
}

func TestDispatchIgnoresUnmarkedTree(t *testing.T) {
	doc, d := newHarness(t)
	span := dom.NewElement("span")
	doc.AppendChild(doc.Body(), span)

	fired := 0
	d.Listen("click", func(*dom.Event) { fired++ }, 1)

	doc.Dispatch(&dom.Event{Type: "click", Target: span})
	assert.Zero(t, fired)
}

func TestDispatchSkipsMarkerOfOtherType(t *testing.T) {
	doc, d := newHarness(t)
	button := dom.NewElement("button")
	doc.AppendChild(doc.Body(), button)
	mark(doc, button, 7, "keydown")

	fired := 0
	d.Listen("click", func(*dom.Event) { fired++ }, 7)
	d.Listen("keydown", func(*dom.Event) { fired++ }, 7)

	doc.Dispatch(&dom.Event{Type: "click", Target: button})
	assert.Zero(t, fired, "a keydown marker does not catch clicks")
}

func TestForgetDropsHandlersAndListener(t *testing.T) {
	doc, d := newHarness(t)
	a := dom.NewElement("button")
	b := dom.NewElement("button")
	doc.AppendChild(doc.Body(), a)
	doc.AppendChild(doc.Body(), b)
	mark(doc, a, 1, "click")
	mark(doc, b, 2, "click", "keydown")

	d.Listen("click", func(*dom.Event) {}, 1)
	d.Listen("click", func(*dom.Event) {}, 2)
	d.Listen("keydown", func(*dom.Event) {}, 2)

	d.Forget(a)
	assert.False(t, d.Handles("click", 1))
	assert.True(t, d.Handles("click", 2))
	assert.True(t, doc.HasListener("click"), "other handlers keep the listener installed")

	d.Forget(b)
	assert.False(t, d.Handles("click", 2))
	assert.False(t, d.Handles("keydown", 2))
	assert.False(t, doc.HasListener("click"), "last handler uninstalls the shared listener")
	assert.False(t, doc.HasListener("keydown"))
}

func TestForgetUnmarkedNodeIsNoop(t *testing.T) {
	_, d := newHarness(t)
	plain := dom.NewElement("div")

	d.Listen("click", func(*dom.Event) {}, 1)
	d.Forget(plain)
	assert.True(t, d.Handles("click", 1))
}

func TestListenOverwritesHandler(t *testing.T) {
	doc, d := newHarness(t)
	button := dom.NewElement("button")
	doc.AppendChild(doc.Body(), button)
	mark(doc, button, 1, "click")

	var calls []string
	d.Listen("click", func(*dom.Event) { calls = append(calls, "old") }, 1)
	d.Listen("click", func(*dom.Event) { calls = append(calls, "new") }, 1)

	doc.Dispatch(&dom.Event{Type: "click", Target: button})
	assert.Equal(t, []string{"new"}, calls)
}
