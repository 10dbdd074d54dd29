// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package bench verifies the alu4 core against stimulus scripts.
package bench

import (
	_ "embed"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/internal"
	"github.com/ezrec/alu4/io"
	"github.com/ezrec/alu4/vector"
)

const (
	SETTLE_CYCLES = 4                   // Cycles each phase of a check is held.
	RESET_CYCLES  = vector.RESET_CYCLES // Cycles a reset is asserted.
)

var _bench_defines = map[string]string{
	"SETTLE_CYCLES": fmt.Sprintf("%v", SETTLE_CYCLES),
	"RESET_CYCLES":  fmt.Sprintf("%v", RESET_CYCLES),
}

// GoldenScript is the reference vector script for the core.
//
//go:embed golden.vec
var GoldenScript string

// Failure describes a single failed expectation.
type Failure struct {
	LineNo    int           // Script line of the expectation.
	Line      string        // Script words of the expectation.
	Registers alu.Registers // Operand registers when checked.
	Op        alu.Opcode    // Last opcode driven.
	Want      alu.Result    // Expected result.
	Got       alu.Result    // Actual result.
}

func (fail *Failure) Error() string {
	return f("line %d '%v' %v(%v): want %v, got %v",
		fail.LineNo, fail.Line, fail.Op, registers(fail.Registers), result(fail.Want), result(fail.Got))
}

func registers(reg alu.Registers) string {
	return fmt.Sprintf("A=%d, B=%d, C=%d, D=%d", reg.A, reg.B, reg.C, reg.D)
}

func result(res alu.Result) string {
	return fmt.Sprintf("M=%d N=%d", res.M, res.N)
}

func (fail *Failure) Unwrap() error {
	return ErrMismatch
}

// Report summarizes a bench run.
type Report struct {
	Checks   int       // Number of expectations evaluated.
	Passed   int       // Number of expectations met.
	Failures []Failure // Failed expectations, in script order.
}

// Err returns all failures joined, or nil if every check passed.
func (rep *Report) Err() error {
	var errs []error
	for n := range rep.Failures {
		errs = append(errs, &rep.Failures[n])
	}

	return errors.Join(errs...)
}

// Bench drives a core with an assembled script, checking every expectation.
type Bench struct {
	Verbose   bool            // If set, enables verbose logging.
	*alu.Core                 // Reference to the core simulation.
	Program   *vector.Program // Reference to the current script.

	step   int        // Index of the next step.
	op     alu.Opcode // Last opcode driven while enabled.
	report Report     // Results since the last reset.
}

// NewBench creates a new bench with an empty program.
func NewBench() (bn *Bench) {
	bn = &Bench{
		Core:    alu.NewCore(),
		Program: &vector.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines.
func (bn *Bench) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_bench_defines),
		alu.Defines(),
	)
}

// Assembler returns a script assembler with the bench defines.
func (bn *Bench) Assembler() (asm *vector.Assembler) {
	asm = &vector.Assembler{Verbose: bn.Verbose}
	for key, value := range bn.Defines() {
		asm.Predefine(key, value)
	}

	return
}

// Load assembles a script into the bench program, and resets the bench.
func (bn *Bench) Load(script string) (err error) {
	prog, err := bn.Assembler().Parse(strings.NewReader(script))
	if err != nil {
		return
	}

	bn.Program = prog
	bn.Reset()

	return
}

// Reset the core and the program position.
func (bn *Bench) Reset() {
	bn.Core.Verbose = bn.Verbose
	bn.Core.Reset()
	bn.step = 0
	bn.op = alu.OP_NOP
	bn.report = Report{}
}

// LineNo returns the line number of the next step.
func (bn *Bench) LineNo() int {
	if bn.step < len(bn.Program.Steps) {
		return bn.Program.Steps[bn.step].LineNo
	}

	return 0
}

// Report returns the results since the last reset.
func (bn *Bench) Report() Report {
	return bn.report
}

// Tick drives all of the cycles of the next step, and checks its expectation.
// A failed expectation is recorded in the report, and returned as an error.
func (bn *Bench) Tick() (done bool, err error) {
	bn.Core.Verbose = bn.Verbose

	if bn.step >= len(bn.Program.Steps) {
		done = true
		return
	}

	step := &bn.Program.Steps[bn.step]
	bn.step++

	for _, in := range step.Inputs {
		bn.Core.Step(in)
		if in.Enable && !in.Reset {
			bn.op = in.Control.Opcode()
		}
	}

	if step.Expect != nil {
		err = bn.check(step)
	}

	return
}

// check compares the output latch against an expectation.
func (bn *Bench) check(step *vector.Step) (err error) {
	want := *step.Expect
	got := bn.Core.Result

	bn.report.Checks++

	if want == got {
		bn.report.Passed++
		if bn.Verbose {
			log.Printf("PASS at line %d: Op=%04b, %v -> M: expected %d, got %d; N: expected %d, got %d",
				step.LineNo, int(bn.op), registers(bn.Core.Registers), want.M, got.M, want.N, got.N)
		}
		return
	}

	if bn.Verbose {
		log.Printf("ERROR at line %d: Op=%04b, %v -> M: expected %d, got %d; N: expected %d, got %d",
			step.LineNo, int(bn.op), registers(bn.Core.Registers), want.M, got.M, want.N, got.N)
	}

	fail := Failure{
		LineNo:    step.LineNo,
		Line:      strings.Join(step.Words, " "),
		Registers: bn.Core.Registers,
		Op:        bn.op,
		Want:      want,
		Got:       got,
	}
	bn.report.Failures = append(bn.report.Failures, fail)
	err = &fail

	return
}

// Run resets the bench, and runs the whole program.
// The returned error joins every failure in the report.
func (bn *Bench) Run() (report Report, err error) {
	bn.Reset()

	// Failures are collected in the report.
	for {
		done, _ := bn.Tick()
		if done {
			break
		}
	}

	report = bn.report
	err = report.Err()

	return
}

// Stream drives the core from a pin channel, sending the output of every cycle.
func (bn *Bench) Stream(ch io.Channel) (err error) {
	bn.Core.Verbose = bn.Verbose

	cycle := 0
	for in := range ch.Receive() {
		err = ch.Send(bn.Core.Step(in))
		if err != nil {
			err = &ErrCycle{Cycle: cycle, Err: err}
			return
		}
		cycle++
	}

	return
}
