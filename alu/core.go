// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

import (
	"fmt"
	"log"
	"math/bits"
)

// Input is the set of lines sampled on every step.
type Input struct {
	Control Control // Opcode and load select.
	Bus     uint8   // Operand bus, high nibble first operand.
	Reset   bool    // Reset asserted.
	Enable  bool    // Stepping enabled.
}

// Core is the simulation context of the processing core.
// A Core must be stepped from a single goroutine.
type Core struct {
	Verbose bool // Set to enable verbose logging.

	Registers       // Operand registers.
	Result          // Result registers.
	State     State // Output latch state.

	Power int // Power (register bits flipped) counter.
	Ticks int // Enabled steps counter.
}

// NewCore creates a core in its reset state.
func NewCore() (core *Core) {
	core = &Core{}
	core.Reset()

	return
}

// Reset clears all six registers and the statistics counters.
func (core *Core) Reset() {
	if core.Verbose {
		log.Printf("alu: reset")
	}

	core.Registers = Registers{}
	core.Result = Result{}
	core.State = STATE_IDLE_HOLD
	core.Ticks = 0
	core.Power = 0
}

// Load overwrites an operand register pair from the bus.
func (core *Core) Load(sel LoadSelect, bus uint8) {
	hi, lo := Unpack(bus)

	switch sel {
	case LOAD_AB:
		core.A, core.B = hi, lo
	case LOAD_CD:
		core.C, core.D = hi, lo
	}
}

// Execute evaluates the kernel for op and latches its result.
// The hold opcodes leave the result registers untouched.
func (core *Core) Execute(op Opcode) {
	kernel, ok := Lookup(op)
	if !ok {
		return
	}

	core.Result = kernel(core.Registers)
	core.State = STATE_COMPUTED
}

// Step performs one evaluation step and returns the output byte.
func (core *Core) Step(in Input) uint8 {
	if in.Reset {
		core.Reset()
		return core.Output()
	}

	if !in.Enable {
		return core.Output()
	}

	prior := core.word()

	core.Load(in.Control.LoadSelect(), in.Bus)
	core.Execute(in.Control.Opcode())

	if core.Verbose {
		log.Printf("alu: %v %02x: %v", in.Control, in.Bus, core.Result)
	}

	core.Ticks++
	core.Power += bits.OnesCount32(prior ^ core.word())

	return core.Output()
}

// Output returns the output byte, M in the high nibble.
func (core *Core) Output() uint8 {
	return core.Result.Byte()
}

// word packs all six registers.
func (core *Core) word() uint32 {
	return uint32(Pack(core.A, core.B))<<16 |
		uint32(Pack(core.C, core.D))<<8 |
		uint32(core.Result.Byte())
}

// String returns the current core state as a string.
func (core *Core) String() (text string) {
	regs := []string{"a", "b", "c", "d", "m", "n", "state"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "a":
			strval = fmt.Sprintf("%X", core.A)
		case "b":
			strval = fmt.Sprintf("%X", core.B)
		case "c":
			strval = fmt.Sprintf("%X", core.C)
		case "d":
			strval = fmt.Sprintf("%X", core.D)
		case "m":
			strval = fmt.Sprintf("%X", core.M)
		case "n":
			strval = fmt.Sprintf("%X", core.N)
		case "state":
			strval = core.State.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
