// Package dom provides the native document tree the weft runtime renders
// into and patches.
//
// Nodes are plain *html.Node values from golang.org/x/net/html, so any
// parsed HTML interoperates directly and trees serialize with html.Render.
// A Document owns the root node and everything that needs a document-wide
// view: per-type event listeners, removal observers, and an optional
// mutation Recorder.
//
// All tree and content mutations go through Document methods so that the
// Document can notify observers. Detaching a connected subtree invokes the
// removal observers synchronously with the subtree root; there is no
// asynchronous mutation observer. Hosts that remove nodes by other means
// must call NotifyRemoval themselves.
package dom
