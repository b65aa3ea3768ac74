package weft

import (
	stderrors "errors"
	"sort"

	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/reactive"
)

var errNotElement = stderrors.New("style target is not an element")

// ApplyStyle applies a style object to each node imperatively. Thunk values
// are evaluated once, untracked; use a style prop on Create for live
// bindings. Non-element nodes report a diagnostic and are skipped.
func (rt *Runtime) ApplyStyle(style Style, nodes ...*html.Node) {
	if len(style) == 0 {
		return
	}
	names := sortedStyleNames(style)
	for _, n := range nodes {
		if n == nil || n.Type != html.ElementNode {
			rt.reportStyle("weft.ApplyStyle", n)
			continue
		}
		for _, name := range names {
			value := style[name]
			if thunk := asThunk(value); thunk != nil {
				value = thunk()
			}
			rt.doc.SetStyleProperty(n, name, reactive.Stringify(value))
		}
	}
}

// RemoveStyle removes the declarations named by the style object's keys
// from each node. A nil style clears every inline declaration. Non-element
// nodes report a diagnostic and are skipped.
func (rt *Runtime) RemoveStyle(style Style, nodes ...*html.Node) {
	names := sortedStyleNames(style)
	for _, n := range nodes {
		if n == nil || n.Type != html.ElementNode {
			rt.reportStyle("weft.RemoveStyle", n)
			continue
		}
		if style == nil {
			rt.doc.ClearStyle(n)
			continue
		}
		for _, name := range names {
			rt.doc.RemoveStyleProperty(n, name)
		}
	}
}

func sortedStyleNames(style Style) []string {
	names := make([]string, 0, len(style))
	for name := range style {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (rt *Runtime) reportStyle(op string, n *html.Node) {
	detail := "<nil>"
	if n != nil {
		detail = n.Data
	}
	errors.Report(&errors.WeftError{
		Op:     op,
		Kind:   errors.KindStyle,
		Err:    errNotElement,
		Detail: detail,
	})
}
