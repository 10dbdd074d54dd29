package alu

import (
	"iter"
	"slices"

	"github.com/ezrec/alu4/internal"
)

// Vector is a reference stimulus: load the registers, execute Op, and
// expect Want on the output.
type Vector struct {
	Registers
	Op   Opcode
	Want Result
}

// Golden returns the reference vectors in replay order. Hold vectors
// depend on the result of the vector before them.
func Golden() iter.Seq[Vector] {
	return internal.IterSeqConcat(
		slices.Values(goldenHold),
		slices.Values(goldenMinGate),
		slices.Values(goldenEqGate),
		slices.Values(goldenZeroMN),
		slices.Values(goldenDistDir),
		slices.Values(goldenVectorBoxArea),
		slices.Values(goldenBasicBuffer),
		slices.Values(goldenAttrReclass),
		slices.Values(goldenFocalMeanRow),
		slices.Values(goldenFocalSumRow),
		slices.Values(goldenFocalMaxPoolRow),
		slices.Values(goldenNormDiffIndex),
		slices.Values(goldenLocalCodeOp),
		slices.Values(goldenMhDist8),
		slices.Values(goldenDotProduct),
	)
}

// GoldenWrong returns vectors whose expectations are deliberately wrong.
// A conforming core fails every one of them.
func GoldenWrong() iter.Seq[Vector] {
	return slices.Values(goldenWrong)
}

var goldenWrong = []Vector{
	{Registers{1, 2, 3, 4}, OP_ZEROMN, Result{1, 0}},
	{Registers{1, 2, 3, 4}, OP_NOP, Result{0, 1}},
	{Registers{1, 2, 3, 4}, OP_NOP, Result{1, 1}},
	{Registers{1, 2, 3, 4}, OP_EQGATE, Result{0, 1}},
	{Registers{2, 2, 4, 4}, OP_DISTDIR, Result{0, 0}},
}

var goldenHold = []Vector{
	{Registers{1, 2, 3, 4}, OP_ZEROMN, Result{0, 0}},
	{Registers{1, 2, 3, 4}, OP_NOP, Result{0, 0}},
	{Registers{0, 0, 15, 15}, OP_NOP, Result{0, 0}},
	{Registers{2, 6, 5, 3}, OP_DISTDIR, Result{6, 3}},
	{Registers{15, 15, 0, 0}, OP_NOP, Result{6, 3}},
	{Registers{0, 0, 0, 0}, OP_NOP, Result{6, 3}},
	{Registers{15, 15, 15, 15}, OP_NOP, Result{6, 3}},
}

var goldenMinGate = []Vector{
	{Registers{4, 2, 7, 5}, OP_MINGATE, Result{4, 2}},
	{Registers{1, 9, 3, 4}, OP_MINGATE, Result{3, 4}},
	{Registers{8, 6, 2, 6}, OP_MINGATE, Result{2, 6}},
	{Registers{15, 0, 8, 15}, OP_MINGATE, Result{15, 0}},
}

var goldenEqGate = []Vector{
	{Registers{2, 5, 7, 5}, OP_EQGATE, Result{2, 5}},
	{Registers{1, 3, 9, 4}, OP_EQGATE, Result{9, 4}},
	{Registers{12, 0, 5, 0}, OP_EQGATE, Result{12, 0}},
	{Registers{8, 15, 3, 15}, OP_EQGATE, Result{8, 15}},
}

var goldenZeroMN = []Vector{
	{Registers{1, 2, 3, 4}, OP_ZEROMN, Result{0, 0}},
	{Registers{0, 0, 15, 15}, OP_ZEROMN, Result{0, 0}},
	{Registers{15, 15, 0, 0}, OP_ZEROMN, Result{0, 0}},
	{Registers{0, 0, 0, 0}, OP_ZEROMN, Result{0, 0}},
	{Registers{15, 15, 15, 15}, OP_ZEROMN, Result{0, 0}},
}

var goldenDistDir = []Vector{
	{Registers{2, 3, 2, 3}, OP_DISTDIR, Result{0, 0}},
	{Registers{2, 3, 2, 6}, OP_DISTDIR, Result{3, 0}},
	{Registers{2, 6, 2, 3}, OP_DISTDIR, Result{3, 4}},
	{Registers{2, 3, 5, 3}, OP_DISTDIR, Result{3, 2}},
	{Registers{5, 3, 2, 3}, OP_DISTDIR, Result{3, 6}},
	{Registers{2, 3, 5, 6}, OP_DISTDIR, Result{6, 1}},
	{Registers{2, 6, 5, 3}, OP_DISTDIR, Result{6, 3}},
	{Registers{5, 6, 2, 3}, OP_DISTDIR, Result{6, 5}},
	{Registers{5, 3, 2, 6}, OP_DISTDIR, Result{6, 7}},
	{Registers{15, 0, 0, 15}, OP_DISTDIR, Result{14, 7}},
	{Registers{0, 15, 15, 0}, OP_DISTDIR, Result{14, 3}},
	{Registers{0, 0, 15, 15}, OP_DISTDIR, Result{14, 1}},
	{Registers{1, 14, 14, 1}, OP_DISTDIR, Result{10, 3}},
	{Registers{8, 8, 9, 8}, OP_DISTDIR, Result{1, 2}},
	{Registers{8, 8, 8, 9}, OP_DISTDIR, Result{1, 0}},
	{Registers{9, 3, 6, 7}, OP_DISTDIR, Result{7, 7}},
	{Registers{3, 10, 7, 8}, OP_DISTDIR, Result{6, 3}},
	{Registers{7, 8, 3, 10}, OP_DISTDIR, Result{6, 7}},
	{Registers{0, 15, 0, 14}, OP_DISTDIR, Result{1, 4}},
	{Registers{15, 15, 15, 0}, OP_DISTDIR, Result{15, 4}},
	{Registers{15, 15, 0, 15}, OP_DISTDIR, Result{15, 6}},
}

var goldenVectorBoxArea = []Vector{
	{Registers{4, 4, 4, 4}, OP_VECTORBOXAREA, Result{0, 0}},
	{Registers{2, 3, 5, 3}, OP_VECTORBOXAREA, Result{0, 6}},
	{Registers{6, 2, 6, 9}, OP_VECTORBOXAREA, Result{0, 14}},
	{Registers{4, 6, 1, 4}, OP_VECTORBOXAREA, Result{6, 10}},
	{Registers{1, 4, 4, 6}, OP_VECTORBOXAREA, Result{6, 10}},
	{Registers{0, 0, 15, 15}, OP_VECTORBOXAREA, Result{1, 12}},
}

var goldenBasicBuffer = []Vector{
	{Registers{4, 5, 7, 5}, OP_BASICBUFFER, Result{2, 3}},
	{Registers{7, 5, 3, 5}, OP_BASICBUFFER, Result{9, 7}},
	{Registers{4, 4, 4, 7}, OP_BASICBUFFER, Result{6, 2}},
	{Registers{8, 7, 8, 4}, OP_BASICBUFFER, Result{6, 9}},
	{Registers{3, 2, 5, 6}, OP_BASICBUFFER, Result{3, 2}},
}

var goldenAttrReclass = []Vector{
	{Registers{2, 1, 3, 2}, OP_ATTRRECLASS, Result{1, 0}},
	{Registers{2, 1, 3, 4}, OP_ATTRRECLASS, Result{1, 5}},
	{Registers{5, 3, 4, 2}, OP_ATTRRECLASS, Result{2, 0}},
	{Registers{5, 3, 4, 7}, OP_ATTRRECLASS, Result{2, 5}},
	{Registers{5, 6, 4, 2}, OP_ATTRRECLASS, Result{3, 0}},
	{Registers{5, 6, 4, 7}, OP_ATTRRECLASS, Result{3, 5}},
}

var goldenFocalMeanRow = []Vector{
	{Registers{0, 0, 0, 0}, OP_FOCALMEANROW, Result{0, 0}},
	{Registers{4, 5, 7, 8}, OP_FOCALMEANROW, Result{5, 6}},
	{Registers{15, 15, 15, 15}, OP_FOCALMEANROW, Result{15, 15}},
}

var goldenFocalSumRow = []Vector{
	{Registers{0, 0, 0, 0}, OP_FOCALSUMROW, Result{0, 0}},
	{Registers{3, 4, 5, 6}, OP_FOCALSUMROW, Result{12, 15}},
	{Registers{15, 15, 15, 15}, OP_FOCALSUMROW, Result{13, 13}},
}

var goldenFocalMaxPoolRow = []Vector{
	{Registers{5, 5, 7, 7}, OP_FOCALMAXPOOLROW, Result{5, 7}},
	{Registers{9, 4, 12, 3}, OP_FOCALMAXPOOLROW, Result{9, 12}},
	{Registers{2, 8, 1, 6}, OP_FOCALMAXPOOLROW, Result{8, 6}},
	{Registers{0, 15, 15, 0}, OP_FOCALMAXPOOLROW, Result{15, 15}},
}

var goldenNormDiffIndex = []Vector{
	{Registers{0, 0, 0, 0}, OP_NORMDIFFINDEX, Result{0, 0}},
	{Registers{15, 15, 0, 0}, OP_NORMDIFFINDEX, Result{15, 15}},
	{Registers{12, 10, 4, 2}, OP_NORMDIFFINDEX, Result{12, 13}},
	{Registers{4, 7, 8, 9}, OP_NORMDIFFINDEX, Result{6, 7}},
	{Registers{8, 0, 4, 0}, OP_NORMDIFFINDEX, Result{10, 0}},
}

var goldenLocalCodeOp = []Vector{
	{Registers{5, 3, 6, 0}, OP_LOCALCODEOP, Result{1, 0}},
	{Registers{5, 3, 6, 1}, OP_LOCALCODEOP, Result{1, 7}},
	{Registers{5, 3, 6, 2}, OP_LOCALCODEOP, Result{1, 7}},
	{Registers{5, 3, 6, 3}, OP_LOCALCODEOP, Result{1, 6}},
	{Registers{5, 3, 6, 4}, OP_LOCALCODEOP, Result{7, 6}},
	{Registers{5, 3, 6, 5}, OP_LOCALCODEOP, Result{7, 7}},
	{Registers{5, 3, 6, 6}, OP_LOCALCODEOP, Result{7, 13}},
	{Registers{5, 3, 6, 7}, OP_LOCALCODEOP, Result{7, 10}},
	{Registers{5, 3, 6, 8}, OP_LOCALCODEOP, Result{8, 0}},
	{Registers{5, 3, 6, 9}, OP_LOCALCODEOP, Result{8, 14}},
	{Registers{5, 3, 6, 10}, OP_LOCALCODEOP, Result{8, 14}},
	{Registers{5, 3, 6, 11}, OP_LOCALCODEOP, Result{8, 0}},
	{Registers{5, 3, 6, 12}, OP_LOCALCODEOP, Result{15, 6}},
	{Registers{5, 3, 6, 13}, OP_LOCALCODEOP, Result{15, 15}},
	{Registers{5, 3, 6, 14}, OP_LOCALCODEOP, Result{15, 5}},
	{Registers{5, 3, 6, 15}, OP_LOCALCODEOP, Result{15, 10}},
	{Registers{15, 10, 15, 10}, OP_LOCALCODEOP, Result{9, 8}},
	{Registers{15, 15, 15, 15}, OP_LOCALCODEOP, Result{1, 15}},
}

var goldenMhDist8 = []Vector{
	{Registers{5, 5, 5, 5}, OP_MHDIST8, Result{0, 0}},
	{Registers{4, 6, 1, 3}, OP_MHDIST8, Result{0, 6}},
	{Registers{15, 0, 0, 0}, OP_MHDIST8, Result{0, 15}},
	{Registers{15, 15, 0, 0}, OP_MHDIST8, Result{1, 14}},
	{Registers{10, 12, 2, 3}, OP_MHDIST8, Result{1, 1}},
}

var goldenDotProduct = []Vector{
	{Registers{0, 0, 0, 0}, OP_DOTPRODUCT, Result{0, 0}},
	{Registers{3, 2, 1, 4}, OP_DOTPRODUCT, Result{1, 10}},
	{Registers{4, 4, 8, 15}, OP_DOTPRODUCT, Result{9, 15}},
	{Registers{15, 15, 15, 15}, OP_DOTPRODUCT, Result{14, 0}},
	{Registers{15, 10, 0, 1}, OP_DOTPRODUCT, Result{9, 7}},
	{Registers{2, 3, 0, 5}, OP_DOTPRODUCT, Result{0, 11}},
}
