package vector

import (
	"iter"

	"github.com/ezrec/alu4/alu"
)

// Step is one assembled line of a stimulus script.
type Step struct {
	LineNo int         // Source line number.
	Words  []string    // Source words, after equate expansion.
	Inputs []alu.Input // Inputs driven, one per cycle.
	Expect *alu.Result // If set, the output expected after Inputs.
}

// Program is an assembled stimulus script.
type Program struct {
	Steps []Step
}

// Cycles iterates over every driven cycle, with its step index.
func (prog *Program) Cycles() iter.Seq2[int, alu.Input] {
	return func(yield func(index int, in alu.Input) bool) {
		for n, step := range prog.Steps {
			for _, in := range step.Inputs {
				if !yield(n, in) {
					return
				}
			}
		}
	}
}

// Checks returns the number of expectations in the program.
func (prog *Program) Checks() (count int) {
	for _, step := range prog.Steps {
		if step.Expect != nil {
			count++
		}
	}

	return
}

// Inputs iterates over every driven cycle.
func (prog *Program) Inputs() iter.Seq[alu.Input] {
	return func(yield func(in alu.Input) bool) {
		for _, in := range prog.Cycles() {
			if !yield(in) {
				return
			}
		}
	}
}
