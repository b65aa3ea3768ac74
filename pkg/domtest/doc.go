// Package domtest provides a testing harness for weft runtimes.
//
// # Quick Start
//
// Create a tester, build a tree, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    ts := domtest.NewTesterWithT(t)
//	    count := ts.Runtime.Dynamic(0)
//	    ts.Mount(ts.Runtime.Create(weft.Tag("button"), weft.Props{
//	        "onclick": func(ev *dom.Event) { count.Update(count.Value().(int) + 1) },
//	    }, func() any { return count.Value() }))
//
//	    ts.Fire(ts.Find("button"), "click", nil)
//	    if got := ts.Text("button"); got != "1" {
//	        t.Errorf("expected 1, got %s", got)
//	    }
//	}
//
// The tester wires a fake clock into the runtime so deferred-sweep tests
// can advance time manually, and a mutation recorder so tests can assert
// exactly which patches a cell update performed.
package domtest
