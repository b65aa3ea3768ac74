package domtest

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/weft"
)

// Tester bundles a runtime, a fake clock, and a mutation recorder for
// deterministic tests. The clock drives the deferred sweep; the recorder
// captures every patch the document applies.
type Tester struct {
	Runtime  *weft.Runtime
	Document *dom.Document
	Clock    *FakeClock
	Recorder *Recorder
}

// NewTester creates a tester with a fresh document, a fake clock, and a
// recorder already installed. Call Cleanup when done, or use NewTesterWithT.
func NewTester() *Tester {
	clk := NewFakeClock()
	rec := NewRecorder()
	doc := dom.NewDocument()
	doc.SetRecorder(rec)
	rt := weft.NewWithDocument(doc, weft.Options{Clock: clk})
	return &Tester{
		Runtime:  rt,
		Document: doc,
		Clock:    clk,
		Recorder: rec,
	}
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	ts := NewTester()
	t.Cleanup(ts.Cleanup)
	return ts
}

// Cleanup closes the runtime.
func (ts *Tester) Cleanup() {
	ts.Runtime.Close()
}

// Mount appends nodes to the document body and marks the runtime rendered,
// the usual test entry point.
func (ts *Tester) Mount(nodes ...*html.Node) {
	for _, n := range nodes {
		ts.Runtime.Render(ts.Document.Body(), n, weft.PlacementAppend, nil)
	}
}

// Find returns the first element matching selector, failing nil-safe like
// Runtime.Select.
func (ts *Tester) Find(selector string) *html.Node {
	return ts.Document.Query(selector)
}

// FindAll returns every element matching selector.
func (ts *Tester) FindAll(selector string) []*html.Node {
	return ts.Document.QueryAll(selector)
}

// Text returns the concatenated text content of the first element matching
// selector, or "" if none matches.
func (ts *Tester) Text(selector string) string {
	n := ts.Document.Query(selector)
	if n == nil {
		return ""
	}
	return dom.TextContent(n)
}

// Fire synthesizes an event on target and dispatches it through the
// document-level listener table, exactly as a host would.
func (ts *Tester) Fire(target *html.Node, typ string, data map[string]any) bool {
	return ts.Document.Dispatch(&dom.Event{Type: typ, Target: target, Data: data})
}
