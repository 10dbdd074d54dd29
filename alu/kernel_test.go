package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// replay drives a vector through the core the way the bench does:
// load (A,B), load (C,D), then execute.
func replay(core *Core, vec Vector) uint8 {
	core.Step(Input{Control: MakeControl(OP_NOP, LOAD_AB), Bus: Pack(vec.A, vec.B), Enable: true})
	core.Step(Input{Control: MakeControl(OP_NOP, LOAD_CD), Bus: Pack(vec.C, vec.D), Enable: true})
	return core.Step(Input{Control: MakeControl(vec.Op, LOAD_NONE), Enable: true})
}

func TestGolden(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	count := 0
	for vec := range Golden() {
		out := replay(core, vec)
		assert.Equal(vec.Want.Byte(), out, "%+v", vec)
		assert.Equal(vec.Registers, core.Registers, "%+v", vec)
		count++
	}

	assert.Equal(102, count)
}

func TestGolden_Kernels(t *testing.T) {
	assert := assert.New(t)

	for vec := range Golden() {
		kernel, ok := Lookup(vec.Op)
		if !ok {
			continue
		}
		assert.Equal(vec.Want, kernel(vec.Registers), "%v %+v", vec.Op, vec.Registers)
	}
}

func TestGolden_Wrong(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()
	for vec := range GoldenWrong() {
		out := replay(core, vec)
		assert.NotEqual(vec.Want.Byte(), out, "%+v", vec)
	}
}

func TestKernel_Scenarios(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		reg  Registers
		op   Opcode
		want Result
	}){
		{"mingate_lt", Registers{4, 2, 7, 5}, OP_MINGATE, Result{4, 2}},
		{"mingate_gt", Registers{1, 9, 3, 4}, OP_MINGATE, Result{3, 4}},
		{"mingate_eq", Registers{8, 6, 2, 6}, OP_MINGATE, Result{2, 6}},
		{"mean", Registers{4, 5, 7, 8}, OP_FOCALMEANROW, Result{5, 6}},
		{"sum", Registers{3, 4, 5, 6}, OP_FOCALSUMROW, Result{12, 15}},
		{"sum_wrap", Registers{15, 15, 15, 15}, OP_FOCALSUMROW, Result{13, 13}},
		{"sum_zero", Registers{}, OP_FOCALSUMROW, Result{0, 0}},
		{"ndi", Registers{12, 10, 4, 2}, OP_NORMDIFFINDEX, Result{12, 13}},
		{"distdir_same", Registers{7, 7, 7, 7}, OP_DISTDIR, Result{0, 0}},
		{"buffer_same", Registers{7, 9, 7, 9}, OP_BASICBUFFER, Result{7, 9}},
		{"buffer_wrap", Registers{0, 15, 0, 0}, OP_BASICBUFFER, Result{14, 1}},
		{"boxarea_same", Registers{3, 3, 3, 3}, OP_VECTORBOXAREA, Result{0, 0}},
		{"dot_wrap", Registers{15, 15, 15, 15}, OP_DOTPRODUCT, Result{14, 0}},
	}

	for _, entry := range table {
		kernel, ok := Lookup(entry.op)
		assert.True(ok, entry.name)
		assert.Equal(entry.want, kernel(entry.reg), entry.name)
	}
}

// allRegisters yields every possible register file.
func allRegisters(yield func(Registers) bool) {
	for v := range 1 << 16 {
		reg := Registers{
			A: Nibble(v >> 12 & 0xf),
			B: Nibble(v >> 8 & 0xf),
			C: Nibble(v >> 4 & 0xf),
			D: Nibble(v & 0xf),
		}
		if !yield(reg) {
			return
		}
	}
}

func TestKernel_Range(t *testing.T) {
	for reg := range allRegisters {
		for op, kernel := range Kernels {
			if kernel == nil {
				continue
			}
			res := kernel(reg)
			if res.M > NIBBLE_MAX || res.N > NIBBLE_MAX {
				t.Fatalf("%v %+v: %+v out of range", Opcode(op), reg, res)
			}
			if kernel(reg) != res {
				t.Fatalf("%v %+v: not deterministic", Opcode(op), reg)
			}
		}
	}
}

func TestKernel_Classes(t *testing.T) {
	for reg := range allRegisters {
		if res := DistDir(reg); res.N > Nibble(DIR_NW) {
			t.Fatalf("distdir %+v: direction %v", reg, res.N)
		}
		if res := AttrReclass(reg); res.M < 1 || res.M > 3 || (res.N != 0 && res.N != RECLASS_FLAG) {
			t.Fatalf("reclass %+v: %+v", reg, res)
		}
		if res := MhDist8(reg); res.M > 1 {
			t.Fatalf("mhdist8 %+v: %+v", reg, res)
		}
		if res := ZeroMN(reg); res != (Result{}) {
			t.Fatalf("zeromn %+v: %+v", reg, res)
		}
		swapped := Registers{A: reg.B, B: reg.A, C: reg.D, D: reg.C}
		if FocalMaxPoolRow(reg) != FocalMaxPoolRow(swapped) {
			t.Fatalf("maxpool %+v: not symmetric", reg)
		}
	}
}

func TestHeading(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		dx, dy int
		dir    Direction
	}){
		{0, 0, DIR_N},
		{0, 3, DIR_N},
		{3, 3, DIR_NE},
		{3, 0, DIR_E},
		{3, -1, DIR_SE},
		{0, -3, DIR_S},
		{-1, -3, DIR_SW},
		{-3, 0, DIR_W},
		{-3, 4, DIR_NW},
	}

	for _, entry := range table {
		assert.Equal(entry.dir, Heading(entry.dx, entry.dy), "%d,%d", entry.dx, entry.dy)
	}

	assert.True(DIR_NE.Diagonal())
	assert.False(DIR_W.Diagonal())
}

func TestNdi(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Nibble(0), Ndi(0, 0))
	assert.Equal(Nibble(15), Ndi(15, 0))
	assert.Equal(Nibble(1), Ndi(0, 15))
	assert.Equal(Nibble(8), Ndi(5, 5))
	// 8 + 7*8/16 = 11.5 rounds up.
	assert.Equal(Nibble(12), Ndi(12, 4))

	for sum := 1; sum <= 30; sum++ {
		var last Nibble
		for x := max(0, sum-15); x <= min(15, sum); x++ {
			y := sum - x
			v := Ndi(Nibble(x), Nibble(y))
			assert.LessOrEqual(v, Nibble(NIBBLE_MAX))
			assert.GreaterOrEqual(v, last, "ndi(%d,%d)", x, y)
			last = v
		}
	}
}

func TestLocalCodeOp(t *testing.T) {
	assert := assert.New(t)

	// D[3:2] and D[1:0] select and, or, add, mul.
	want := [16]Result{
		{1, 0}, {1, 7}, {1, 7}, {1, 6},
		{7, 6}, {7, 7}, {7, 13}, {7, 10},
		{8, 0}, {8, 14}, {8, 14}, {8, 0},
		{15, 6}, {15, 15}, {15, 5}, {15, 10},
	}

	for d := range Nibble(16) {
		assert.Equal(want[d], LocalCodeOp(Registers{5, 3, 6, d}), "d=%d", d)
	}
}
