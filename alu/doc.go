// Package alu implements the 4-bit processing core.
//
// The core consists of four operand registers (A, B, C, D), a load
// controller that fills them a pair at a time from an 8-bit operand bus,
// an opcode dispatcher selecting one of sixteen kernels, and an output
// latch holding the two result registers (M, N).
//
// Each Step samples the control word, operand bus, reset and enable
// lines. Loads are applied before the opcode is evaluated, so a kernel
// always sees the registers as they are after the same step's load.
package alu
