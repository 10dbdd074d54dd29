package io

import (
	"iter"
	"slices"

	"github.com/ezrec/alu4/alu"
)

// Trace is an in-memory stimulus, replayable after a Rewind,
// which captures the output of every cycle.
type Trace struct {
	Capacity int // Output capacity in cycles, or 0 for no limit.

	Inputs  []alu.Input // Stimulus, one entry per cycle.
	Outputs []uint8     // Captured outputs, one entry per cycle.
}

var _ Channel = (*Trace)(nil)

// NewTrace creates a trace from a stimulus sequence.
func NewTrace(seq iter.Seq[alu.Input]) *Trace {
	return &Trace{
		Inputs: slices.Collect(seq),
	}
}

// Rewind discards all captured outputs.
func (tr *Trace) Rewind() {
	tr.Outputs = tr.Outputs[:0]
}

// Receive returns an iterator over the stimulus.
func (tr *Trace) Receive() iter.Seq[alu.Input] {
	return slices.Values(tr.Inputs)
}

// Send captures an output byte.
// Returns ErrChannelFull if the trace has reached capacity.
func (tr *Trace) Send(value uint8) (err error) {
	if tr.Capacity > 0 && len(tr.Outputs) >= tr.Capacity {
		err = ErrChannelFull
		return
	}

	tr.Outputs = append(tr.Outputs, value)

	return
}
