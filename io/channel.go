// Package io provides pin channels for the alu4 core.
// A channel yields the pin levels sampled on each clock cycle, and
// accepts the uo_out byte the core drives back on that cycle.
// It includes an in-memory stimulus trace (Trace) and a binary
// pin tape over byte streams (Tape).
package io

import (
	"iter"

	"github.com/ezrec/alu4/alu"
)

// Channel defines the interface for all pin channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields one input per cycle.
	Receive() iter.Seq[alu.Input]
	// Send records the output byte of a cycle.
	Send(value uint8) error
}
