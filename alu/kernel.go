// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package alu

// Registers is the operand register file.
type Registers struct {
	A, B, C, D Nibble
}

// Result is the pair of result registers.
type Result struct {
	M, N Nibble
}

// Byte returns the result as the output byte, M in the high nibble.
func (res Result) Byte() uint8 {
	return Pack(res.M, res.N)
}

// Kernel computes a result from the operand registers.
type Kernel func(reg Registers) Result

// Kernels indexed by opcode. The hold opcodes have no kernel.
var Kernels = [16]Kernel{
	OP_MINGATE:         MinGate,
	OP_EQGATE:          EqGate,
	OP_ZEROMN:          ZeroMN,
	OP_DISTDIR:         DistDir,
	OP_VECTORBOXAREA:   VectorBoxArea,
	OP_BASICBUFFER:     BasicBuffer,
	OP_ATTRRECLASS:     AttrReclass,
	OP_FOCALMEANROW:    FocalMeanRow,
	OP_FOCALSUMROW:     FocalSumRow,
	OP_FOCALMAXPOOLROW: FocalMaxPoolRow,
	OP_NORMDIFFINDEX:   NormDiffIndex,
	OP_LOCALCODEOP:     LocalCodeOp,
	OP_MHDIST8:         MhDist8,
	OP_DOTPRODUCT:      DotProduct,
}

// Lookup returns the kernel for op, or false for the hold opcodes.
func Lookup(op Opcode) (kernel Kernel, ok bool) {
	if op < 0 || int(op) >= len(Kernels) {
		return
	}
	kernel = Kernels[op]
	ok = kernel != nil
	return
}

// delta returns the displacement from point (A,B) to point (C,D).
func (reg Registers) delta() (dx, dy int) {
	dx = int(reg.C) - int(reg.A)
	dy = int(reg.D) - int(reg.B)
	return
}

// MinGate selects the pair with the smaller second coordinate.
func MinGate(reg Registers) Result {
	switch {
	case reg.B < reg.D:
		return Result{M: reg.A, N: reg.B}
	case reg.B > reg.D:
		return Result{M: reg.C, N: reg.D}
	}
	return Result{M: reg.C, N: reg.B}
}

// EqGate passes (A,D) when B equals D, otherwise (C,D).
func EqGate(reg Registers) Result {
	if reg.B == reg.D {
		return Result{M: reg.A, N: reg.D}
	}
	return Result{M: reg.C, N: reg.D}
}

// ZeroMN clears both results.
func ZeroMN(reg Registers) Result {
	return Result{}
}

// octants maps the signs of (dx,dy) to a direction.
var octants = [3][3]Direction{
	// dy:  -1      0      +1
	{DIR_SW, DIR_W, DIR_NW}, // dx -1
	{DIR_S, DIR_N, DIR_N},   // dx  0
	{DIR_SE, DIR_E, DIR_NE}, // dx +1
}

// Heading returns the direction of the displacement (dx,dy), with
// north toward increasing y. A zero displacement reports DIR_N.
func Heading(dx, dy int) Direction {
	return octants[sign(dx)+1][sign(dy)+1]
}

// DistDir reports the Manhattan distance between the points, modulo 16,
// and the heading from (A,B) to (C,D).
func DistDir(reg Registers) Result {
	dx, dy := reg.delta()
	return Result{
		M: Wrap(abs(dx) + abs(dy)),
		N: Nibble(Heading(dx, dy)),
	}
}

// VectorBoxArea reports the area and perimeter of the bounding box of
// the two points, both modulo 16.
func VectorBoxArea(reg Registers) Result {
	dx, dy := reg.delta()
	w, h := abs(dx), abs(dy)
	return Result{
		M: Wrap(w * h),
		N: Wrap(2 * (w + h)),
	}
}

const BUFFER_RADIUS = 2

// bufferOffset is the unit offset of the buffer corner for each axis
// heading: the heading rotated 135 degrees clockwise.
var bufferOffset = map[Direction][2]int{
	DIR_N: {1, -1},
	DIR_E: {-1, -1},
	DIR_S: {-1, 1},
	DIR_W: {1, 1},
}

// BasicBuffer offsets point (A,B) by the buffer radius away from the
// heading toward (C,D). Diagonal headings and coincident points are
// not offset.
func BasicBuffer(reg Registers) Result {
	dx, dy := reg.delta()
	var off [2]int
	if dx != 0 || dy != 0 {
		off = bufferOffset[Heading(dx, dy)]
	}
	return Result{
		M: Wrap(int(reg.A) + BUFFER_RADIUS*off[0]),
		N: Wrap(int(reg.B) + BUFFER_RADIUS*off[1]),
	}
}

// Reclass bounds: class 1 below the first, 2 below the second, else 3.
var reclassBounds = [...]Nibble{3, 6}

const RECLASS_FLAG = Nibble(5) // Secondary code when D exceeds C.

// AttrReclass buckets attribute B into classes 1..3 and flags D > C.
func AttrReclass(reg Registers) (res Result) {
	res.M = 1
	for _, bound := range reclassBounds {
		if reg.B >= bound {
			res.M++
		}
	}
	if reg.D > reg.C {
		res.N = RECLASS_FLAG
	}
	return
}

// FocalMeanRow is the floor of the 3-sample sliding mean.
func FocalMeanRow(reg Registers) Result {
	return Result{
		M: Nibble((int(reg.A) + int(reg.B) + int(reg.C)) / 3),
		N: Nibble((int(reg.B) + int(reg.C) + int(reg.D)) / 3),
	}
}

// FocalSumRow is the 3-sample sliding sum, modulo 16.
func FocalSumRow(reg Registers) Result {
	return Result{
		M: Wrap(int(reg.A) + int(reg.B) + int(reg.C)),
		N: Wrap(int(reg.B) + int(reg.C) + int(reg.D)),
	}
}

// FocalMaxPoolRow is the pairwise maximum.
func FocalMaxPoolRow(reg Registers) Result {
	return Result{M: max(reg.A, reg.B), N: max(reg.C, reg.D)}
}

// Ndi is the normalized difference index of x and y, re-centered to 8
// and scaled by 7: round(8 + 7(x-y)/(x+y)), rounding halves up.
// Ndi(0,0) is 0.
func Ndi(x, y Nibble) Nibble {
	sum := int(x) + int(y)
	if sum == 0 {
		return 0
	}
	// floor((8 + 7(x-y)/sum) + 1/2) over a common denominator of 2*sum.
	num := 17*sum + 14*(int(x)-int(y))
	return Saturate(num / (2 * sum))
}

// NormDiffIndex computes Ndi(A,C) and Ndi(B,D).
func NormDiffIndex(reg Registers) Result {
	return Result{M: Ndi(reg.A, reg.C), N: Ndi(reg.B, reg.D)}
}

// Local code logic operations, selected by two bits of D.
const (
	LOCAL_AND = 0
	LOCAL_OR  = 1
	LOCAL_ADD = 2
	LOCAL_MUL = 3
)

func localOp(sel Nibble, x, y Nibble) Nibble {
	switch sel & 3 {
	case LOCAL_AND:
		return x & y
	case LOCAL_OR:
		return x | y
	case LOCAL_ADD:
		return Wrap(int(x) + int(y))
	default:
		return Wrap(int(x) * int(y))
	}
}

// LocalCodeOp uses D as a code word: D[3:2] selects the operation
// combining A and B into M, D[1:0] the operation combining M and C into N.
func LocalCodeOp(reg Registers) (res Result) {
	res.M = localOp(reg.D>>2, reg.A, reg.B)
	res.N = localOp(reg.D, res.M, reg.C)
	return
}

// MhDist8 is the 8-bit Manhattan distance between the points, split
// across M (high) and N (low).
func MhDist8(reg Registers) Result {
	dx, dy := reg.delta()
	return Split8(abs(dx) + abs(dy))
}

// DotProduct multiplies A by B and accumulates into the 8-bit word
// {C,D}, modulo 256, split across M (high) and N (low).
func DotProduct(reg Registers) Result {
	return Split8(int(reg.A)*int(reg.B) + int(Pack(reg.C, reg.D)))
}
