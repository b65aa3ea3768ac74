package weft

import (
	stderrors "errors"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/errors"
)

var errNoMatch = stderrors.New("no element matches selector")

// Select returns the first element matching any of the selectors, trying
// them in order. No match reports a diagnostic and returns nil.
func (rt *Runtime) Select(selectors ...string) *html.Node {
	for _, sel := range selectors {
		if n := rt.doc.Query(sel); n != nil {
			return n
		}
	}
	errors.Report(&errors.WeftError{
		Op:     "weft.Select",
		Kind:   errors.KindQuery,
		Err:    errNoMatch,
		Detail: strings.Join(selectors, ", "),
	})
	return nil
}

// SelectAll returns every element matching any of the selectors, deduped,
// preserving per-selector document order. No match reports a diagnostic
// and returns nil.
func (rt *Runtime) SelectAll(selectors ...string) []*html.Node {
	var out []*html.Node
	seen := make(map[*html.Node]struct{})
	for _, sel := range selectors {
		for _, n := range rt.doc.QueryAll(sel) {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		errors.Report(&errors.WeftError{
			Op:     "weft.SelectAll",
			Kind:   errors.KindQuery,
			Err:    errNoMatch,
			Detail: strings.Join(selectors, ", "),
		})
		return nil
	}
	return out
}
