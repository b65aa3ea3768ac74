package weft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/domtest"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/weft"
)

type captureHandler struct {
	errs []*errors.WeftError
}

func (h *captureHandler) HandleError(err *errors.WeftError) {
	h.errs = append(h.errs, err)
}

func installCapture(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func childTags(n *dom.Document) []string {
	var tags []string
	for c := n.Body().FirstChild; c != nil; c = c.NextSibling {
		tags = append(tags, c.Data)
	}
	return tags
}

func TestRenderDefaultReplacesChildren(t *testing.T) {
	ts := domtest.NewTesterWithT(t)
	ts.Document.AppendChild(ts.Document.Body(), dom.NewElement("stale"))

	fresh := ts.Runtime.Create(weft.Tag("main"), nil)
	ok := false
	ts.Runtime.Render(ts.Document.Body(), fresh, weft.PlacementChildren, func(v bool) { ok = v })

	assert.True(t, ok)
	assert.Equal(t, []string{"main"}, childTags(ts.Document))
}

func TestRenderPlacements(t *testing.T) {
	ts := domtest.NewTesterWithT(t)
	anchor := ts.Runtime.Create(weft.Tag("main"), nil)
	ts.Runtime.Render(ts.Document.Body(), anchor, weft.PlacementChildren, nil)

	ts.Runtime.Render(anchor, ts.Runtime.Create(weft.Tag("header"), nil), weft.PlacementBefore, nil)
	ts.Runtime.Render(anchor, ts.Runtime.Create(weft.Tag("footer"), nil), weft.PlacementAfter, nil)
	assert.Equal(t, []string{"header", "main", "footer"}, childTags(ts.Document))

	ts.Runtime.Render(anchor, ts.Runtime.Create(weft.Tag("nav"), nil), weft.PlacementPrepend, nil)
	ts.Runtime.Render(anchor, ts.Runtime.Create(weft.Tag("section"), nil), weft.PlacementAppend, nil)

	var inner []string
	for c := anchor.FirstChild; c != nil; c = c.NextSibling {
		inner = append(inner, c.Data)
	}
	assert.Equal(t, []string{"nav", "section"}, inner)

	ts.Runtime.Render(anchor, ts.Runtime.Create(weft.Tag("article"), nil), weft.PlacementReplace, nil)
	assert.Equal(t, []string{"header", "article", "footer"}, childTags(ts.Document))
}

func TestRenderStringContent(t *testing.T) {
	ts := domtest.NewTesterWithT(t)

	ts.Runtime.Render(ts.Document.Body(), "hello", weft.PlacementChildren, nil)
	assert.Equal(t, "hello", dom.TextContent(ts.Document.Body()))
}

func TestRenderFragmentContent(t *testing.T) {
	ts := domtest.NewTesterWithT(t)
	frag := ts.Runtime.Create(weft.Fragment, nil,
		ts.Runtime.Create(weft.Tag("li"), nil),
		ts.Runtime.Create(weft.Tag("li"), nil),
	)

	ts.Runtime.Render(ts.Document.Body(), frag, weft.PlacementChildren, nil)
	assert.Equal(t, []string{"li", "li"}, childTags(ts.Document))
}

func TestRenderDetachedTargetFails(t *testing.T) {
	ts := domtest.NewTesterWithT(t)
	h := installCapture(t)

	orphan := ts.Runtime.Create(weft.Tag("div"), nil)
	content := ts.Runtime.Create(weft.Tag("span"), nil)

	var got *bool
	ts.Runtime.Render(orphan, content, weft.PlacementChildren, func(v bool) { got = &v })

	require.NotNil(t, got)
	assert.False(t, *got)
	require.Len(t, h.errs, 1)
	assert.Equal(t, errors.KindRender, h.errs[0].Kind)
	assert.Nil(t, orphan.FirstChild, "a failed render leaves the tree untouched")
	assert.Nil(t, content.Parent)
}

func TestRenderNilTargetFails(t *testing.T) {
	ts := domtest.NewTesterWithT(t)
	h := installCapture(t)

	ok := true
	ts.Runtime.Render(nil, "x", weft.PlacementChildren, func(v bool) { ok = v })
	assert.False(t, ok)
	assert.Len(t, h.errs, 1)
}

func TestRenderInvalidContentFails(t *testing.T) {
	ts := domtest.NewTesterWithT(t)
	h := installCapture(t)

	ok := true
	ts.Runtime.Render(ts.Document.Body(), struct{}{}, weft.PlacementChildren, func(v bool) { ok = v })

	assert.False(t, ok)
	require.Len(t, h.errs, 1)
	assert.Equal(t, errors.KindRender, h.errs[0].Kind)
	assert.Nil(t, ts.Document.Body().FirstChild)
}

func TestOnReadyFiresOnceAfterFirstRender(t *testing.T) {
	ts := domtest.NewTesterWithT(t)

	calls := 0
	ts.Runtime.OnReady(func() { calls++ })
	assert.Zero(t, calls, "queued before the first render")

	ts.Runtime.Render(ts.Document.Body(), "a", weft.PlacementChildren, nil)
	assert.Equal(t, 1, calls)

	ts.Runtime.Render(ts.Document.Body(), "b", weft.PlacementChildren, nil)
	assert.Equal(t, 1, calls, "the ready signal is one-shot")

	ts.Runtime.OnReady(func() { calls++ })
	assert.Equal(t, 2, calls, "late registrations fire immediately")
}

func TestOnReadyNotFiredByFailedRender(t *testing.T) {
	ts := domtest.NewTesterWithT(t)
	installCapture(t)

	calls := 0
	ts.Runtime.OnReady(func() { calls++ })

	ts.Runtime.Render(nil, "x", weft.PlacementChildren, nil)
	assert.Zero(t, calls)
}

func TestRemoveCollectsSubtree(t *testing.T) {
	ts := domtest.NewTesterWithT(t)

	clicks := 0
	count := ts.Runtime.Dynamic(0)
	button := ts.Runtime.Create(weft.Tag("button"), weft.Props{
		"onclick": func(*dom.Event) { clicks++ },
	}, func() any { return count.Value() })
	ts.Mount(button)

	ts.Runtime.Remove(button)

	ts.Fire(button, "click", nil)
	assert.Zero(t, clicks, "handlers are forgotten on removal")
	assert.False(t, ts.Runtime.Cells().HasBindings(button))
}
