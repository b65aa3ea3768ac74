package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns the first element under the document root matching the CSS
// selector, or nil on no match or an invalid selector.
func (d *Document) Query(selector string) *html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	return sel.MatchFirst(d.root)
}

// QueryAll returns every element under the document root matching the CSS
// selector, in document order. An invalid selector yields nil.
func (d *Document) QueryAll(selector string) []*html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	return sel.MatchAll(d.root)
}
