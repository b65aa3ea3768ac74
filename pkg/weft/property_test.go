//go:build property
// +build property

package weft_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/go-weft/weft/pkg/domtest"
	"github.com/go-weft/weft/pkg/reactive"
	"github.com/go-weft/weft/pkg/weft"
)

// Dependency sets only grow: across any update sequence, the dependency
// set of a binding is a superset of every earlier snapshot.
func TestDependencyGrowthProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("dependency sets grow monotonically", prop.ForAll(
		func(flips []bool) bool {
			ts := domtest.NewTester()
			defer ts.Cleanup()

			selector := ts.Runtime.Dynamic(0)
			branches := []*reactive.Cell{
				ts.Runtime.Dynamic("a"),
				ts.Runtime.Dynamic("b"),
			}
			node := ts.Runtime.Create(weft.Tag("span"), nil, func() any {
				idx := selector.Value().(int) % len(branches)
				return branches[idx].Value()
			})
			ts.Mount(node)

			cells := ts.Runtime.Cells()
			prev := map[uint64]bool{}
			for _, flip := range flips {
				next := 0
				if flip {
					next = 1
				}
				selector.Update(next)

				current := map[uint64]bool{}
				for _, id := range cells.Dependencies(node, 0) {
					current[id] = true
				}
				for id := range prev {
					if !current[id] {
						return false
					}
				}
				prev = current
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("equal updates never mutate the document", prop.ForAll(
		func(value int, repeats uint8) bool {
			ts := domtest.NewTester()
			defer ts.Cleanup()

			cell := ts.Runtime.Dynamic(value)
			ts.Mount(ts.Runtime.Create(weft.Tag("span"), nil, func() any {
				return cell.Value()
			}))

			ts.Recorder.Reset()
			for i := uint8(0); i < repeats%16; i++ {
				cell.Update(value)
			}
			return ts.Recorder.Counts().Total() == 0
		},
		gen.Int(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
