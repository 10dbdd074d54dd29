package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzStep(f *testing.F) {
	for rv := range 0x10 {
		f.Add(uint8(rv<<4)|uint8(Q_AB_LOAD), uint8(0x5a), uint8(0x12), false, true)
		f.Add(uint8(rv<<4)|uint8(Q_CD_LOAD), uint8(0xc3), uint8(0xf0), false, true)
		f.Add(uint8(rv<<4), uint8(0xff), uint8(0x00), rv&1 == 1, rv&2 == 2)
	}

	f.Fuzz(func(t *testing.T, ui uint8, uio uint8, prior uint8, reset bool, enable bool) {
		assert := assert.New(t)

		core := NewCore()
		core.Step(enabled(OP_NOP, LOAD_AB, prior))
		core.Step(enabled(OP_NOP, LOAD_CD, ^prior))
		core.Step(enabled(OP_DOTPRODUCT, LOAD_NONE, 0))

		before := *core
		in := Input{Control: Control(ui), Bus: uio, Reset: reset, Enable: enable}
		out := core.Step(in)

		assert.Equal(core.Output(), out)

		switch {
		case reset:
			assert.Equal(uint8(0), out)
			assert.Equal(Registers{}, core.Registers)
			assert.Equal(STATE_IDLE_HOLD, core.State)
		case !enable:
			assert.Equal(before.Registers, core.Registers)
			assert.Equal(before.Result, core.Result)
			assert.Equal(before.Ticks, core.Ticks)
		default:
			want := before.Registers
			hi, lo := Unpack(uio)
			switch in.Control.LoadSelect() {
			case LOAD_AB:
				want.A, want.B = hi, lo
			case LOAD_CD:
				want.C, want.D = hi, lo
			}
			assert.Equal(want, core.Registers)

			kernel, ok := Lookup(in.Control.Opcode())
			if ok {
				assert.Equal(kernel(want), core.Result)
			} else {
				assert.Equal(before.Result, core.Result)
			}
			assert.Equal(before.Ticks+1, core.Ticks)
		}
	})
}
