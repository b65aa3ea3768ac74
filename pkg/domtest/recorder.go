package domtest

import "github.com/go-weft/weft/pkg/dom"

// Counts is a per-kind tally of recorded mutations.
type Counts struct {
	Text      int
	Attribute int
	Style     int
	Attach    int
	Detach    int
}

// Total returns the sum across kinds.
func (c Counts) Total() int {
	return c.Text + c.Attribute + c.Style + c.Attach + c.Detach
}

// Recorder implements dom.Recorder, keeping every mutation in order for
// assertions about exactly what a propagation touched.
type Recorder struct {
	mutations []dom.Mutation
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordMutation appends m to the log.
func (r *Recorder) RecordMutation(m dom.Mutation) {
	r.mutations = append(r.mutations, m)
}

// Mutations returns the recorded log in order.
func (r *Recorder) Mutations() []dom.Mutation {
	return r.mutations
}

// Counts tallies the log by kind.
func (r *Recorder) Counts() Counts {
	var c Counts
	for _, m := range r.mutations {
		switch m.Kind {
		case dom.MutationText:
			c.Text++
		case dom.MutationAttribute:
			c.Attribute++
		case dom.MutationStyle:
			c.Style++
		case dom.MutationAttach:
			c.Attach++
		case dom.MutationDetach:
			c.Detach++
		}
	}
	return c
}

// Reset clears the log. Tests call it after setup so assertions cover only
// the operation under test.
func (r *Recorder) Reset() {
	r.mutations = nil
}
