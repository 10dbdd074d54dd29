// Package vector assembles stimulus scripts for the alu4 core.
//
// A script is a line oriented list of commands. Each command drives zero
// or more cycles of pin values into the core, or records the output
// expected after the preceding cycles. Comments start with ';'.
//
//	reset [N]          assert reset for N cycles (default RESET_CYCLES)
//	enable             drive the enable line high on following cycles
//	disable            drive the enable line low on following cycles
//	idle [N]           drive N cycles of no load and NOP (default 1)
//	load ab|cd HI LO   drive one cycle loading a register pair
//	exec OP            drive one cycle executing OP (mnemonic or number)
//	pins UI UIO        drive one cycle of raw control and bus values
//	hold N             repeat the last driven cycle N times
//	expect M N         check the result registers
//
// The assembler supports '.equ NAME VALUE' constants, '.macro NAME ARGS'
// to '.endm' macro definitions (with '@' expanding to a unique prefix per
// macro line), and '$(expr)' compile time expressions evaluated as
// Starlark.
package vector
