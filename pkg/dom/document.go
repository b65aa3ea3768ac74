package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MutationKind identifies the kind of a recorded DOM mutation.
type MutationKind int

const (
	// MutationText is a text node character-data change.
	MutationText MutationKind = iota
	// MutationAttribute is an attribute set or removal.
	MutationAttribute
	// MutationStyle is an inline style property change.
	MutationStyle
	// MutationAttach is a node insertion.
	MutationAttach
	// MutationDetach is a node removal.
	MutationDetach
)

func (k MutationKind) String() string {
	switch k {
	case MutationText:
		return "text"
	case MutationAttribute:
		return "attribute"
	case MutationStyle:
		return "style"
	case MutationAttach:
		return "attach"
	case MutationDetach:
		return "detach"
	default:
		return "unknown"
	}
}

// Mutation describes a single change applied through a Document.
type Mutation struct {
	Kind MutationKind
	// Node is the mutated node (the text node for MutationText, the element
	// for attribute and style changes, the subtree root for attach/detach).
	Node *html.Node
	// Name is the attribute or style property name, if applicable.
	Name string
	// Value is the new value, if applicable.
	Value string
}

// Recorder receives mutation notifications. Recorders are instrumentation
// only; they must not mutate the tree.
type Recorder interface {
	RecordMutation(m Mutation)
}

// Listener is a document-level event listener. The document keeps at most
// one listener per event type; bubbling and target resolution are the
// caller's concern.
type Listener func(*Event)

// Event is a dispatched UI event. Target is the node the event originated
// on; the delegator resolves which handler receives it.
type Event struct {
	Type   string
	Target *html.Node
	// Data carries host-specific event payload (key, coordinates, ...).
	Data map[string]any
}

// RemovalObserver is invoked synchronously with the root of every subtree
// that leaves the document.
type RemovalObserver func(removed *html.Node)

// Document owns a node tree and the document-wide tables attached to it.
// A Document is not safe for concurrent use; the runtime is single-threaded.
type Document struct {
	root *html.Node
	body *html.Node

	listeners map[string]Listener
	observers []removalEntry
	nextObs   int

	recorder Recorder
}

type removalEntry struct {
	id int
	fn RemovalObserver
}

// NewDocument creates an empty document with html and body elements, the
// shape a browser host provides before any rendering happens.
func NewDocument() *Document {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(body)
	return &Document{
		root:      root,
		body:      body,
		listeners: make(map[string]Listener),
	}
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the document body element.
func (d *Document) Body() *html.Node { return d.body }

// SetRecorder installs a mutation recorder. Pass nil to remove it.
func (d *Document) SetRecorder(r Recorder) { d.recorder = r }

func (d *Document) record(m Mutation) {
	if d.recorder != nil {
		d.recorder.RecordMutation(m)
	}
}

// Connected reports whether n is attached under this document's root.
func (d *Document) Connected(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == d.root {
			return true
		}
	}
	return false
}

// AddListener installs the single document-level listener for an event
// type, replacing any existing one.
func (d *Document) AddListener(typ string, fn Listener) {
	d.listeners[typ] = fn
}

// RemoveListener uninstalls the document-level listener for an event type.
func (d *Document) RemoveListener(typ string) {
	delete(d.listeners, typ)
}

// HasListener reports whether a listener is installed for an event type.
func (d *Document) HasListener(typ string) bool {
	_, ok := d.listeners[typ]
	return ok
}

// Dispatch delivers an event to the document-level listener for its type.
// It reports whether a listener was installed.
func (d *Document) Dispatch(ev *Event) bool {
	fn, ok := d.listeners[ev.Type]
	if !ok {
		return false
	}
	fn(ev)
	return true
}

// ObserveRemovals registers an observer invoked with the root of every
// subtree that leaves the document. The returned function unregisters it.
func (d *Document) ObserveRemovals(fn RemovalObserver) (unobserve func()) {
	d.nextObs++
	id := d.nextObs
	d.observers = append(d.observers, removalEntry{id: id, fn: fn})
	return func() {
		for i, e := range d.observers {
			if e.id == id {
				d.observers = append(d.observers[:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

// NotifyRemoval invokes the removal observers for a subtree that has left
// the document. Mutation methods on Document call this automatically;
// hosts that unlink nodes directly must call it themselves.
func (d *Document) NotifyRemoval(removed *html.Node) {
	d.record(Mutation{Kind: MutationDetach, Node: removed})
	for _, e := range d.observers {
		e.fn(removed)
	}
}
