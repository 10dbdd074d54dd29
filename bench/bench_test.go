package bench

import (
	"errors"
	"maps"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/internal"
	"github.com/ezrec/alu4/io"
)

func TestBench(t *testing.T) {
	assert := assert.New(t)

	bn := NewBench()

	assert.False(bn.Verbose)
	assert.NotNil(bn.Core)
	assert.Equal(0, len(bn.Program.Steps))
	assert.Equal(0, bn.LineNo())

	done, err := bn.Tick()
	assert.True(done)
	assert.NoError(err)
}

func TestBenchDefines(t *testing.T) {
	assert := assert.New(t)

	bn := NewBench()
	defines := maps.Collect(bn.Defines())

	assert.Equal("4", defines["SETTLE_CYCLES"])
	assert.Equal("5", defines["RESET_CYCLES"])
	assert.Equal("0x6", defines["Q_AB_LOAD"])
	assert.Equal("0xc", defines["OP_NDI"])

	asm := bn.Assembler()
	_, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal("4", asm.Equate["SETTLE_CYCLES"])
}

func TestBenchGolden(t *testing.T) {
	assert := assert.New(t)

	bn := NewBench()
	err := bn.Load(GoldenScript)
	if err != nil {
		t.Fatal(err)
	}

	report, err := bn.Run()
	assert.NoError(err)
	assert.Equal(internal.IterSeqCount(alu.Golden()), report.Checks)
	assert.Equal(report.Checks, report.Passed)
	assert.Equal(0, len(report.Failures))

	// Every check drives 3 phases, then 2 cycles between checks.
	cycles := 0
	for range bn.Program.Inputs() {
		cycles++
	}
	assert.Equal(5+RESET_CYCLES+3+report.Checks*(3*SETTLE_CYCLES+2), cycles)
	assert.Equal(cycles-(5+RESET_CYCLES+3), bn.Core.Ticks)
}

func TestBenchGoldenVectors(t *testing.T) {
	assert := assert.New(t)

	bn := NewBench()
	err := bn.Load(GoldenScript)
	if err != nil {
		t.Fatal(err)
	}

	// The script and the in-memory fixture agree, check for check.
	var want []alu.Result
	for vec := range alu.Golden() {
		want = append(want, vec.Want)
	}

	var got []alu.Result
	for _, step := range bn.Program.Steps {
		if step.Expect != nil {
			got = append(got, *step.Expect)
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("golden mismatch (-fixture +script):\n%s", diff)
	}
	assert.Equal(len(want), bn.Program.Checks())
}

func TestBenchWrong(t *testing.T) {
	assert := assert.New(t)

	script, err := os.ReadFile("testdata/wrong.vec")
	if err != nil {
		t.Fatal(err)
	}

	bn := NewBench()
	err = bn.Load(string(script))
	if err != nil {
		t.Fatal(err)
	}

	report, err := bn.Run()
	assert.ErrorIs(err, ErrMismatch)
	assert.Equal(5, report.Checks)
	assert.Equal(0, report.Passed)
	assert.Equal(5, len(report.Failures))

	var fail *Failure
	assert.True(errors.As(err, &fail))

	first := report.Failures[0]
	assert.Equal(alu.OP_ZEROMN, first.Op)
	assert.Equal(alu.Registers{A: 1, B: 2, C: 3, D: 4}, first.Registers)
	assert.Equal(alu.Result{M: 1, N: 0}, first.Want)
	assert.Equal(alu.Result{M: 0, N: 0}, first.Got)
	assert.Equal("expect 1 0", first.Line)

	// Ran again from reset, the report is the same.
	again, _ := bn.Run()
	if diff := cmp.Diff(report, again); diff != "" {
		t.Errorf("rerun mismatch (-first +again):\n%s", diff)
	}
}

func TestBenchTick(t *testing.T) {
	assert := assert.New(t)

	bn := NewBench()
	err := bn.Load(strings.Join([]string{
		"reset",
		"enable",
		"load ab 3 4",
		"load cd 5 6",
		"exec dot",
		"expect 6 2",
		"exec sum",
		"expect 0 0",
	}, "\n"))
	if err != nil {
		t.Fatal(err)
	}

	lines := []int{1, 3, 4, 5, 6, 7, 8}
	for n, lineno := range lines {
		assert.Equal(lineno, bn.LineNo())
		done, err := bn.Tick()
		assert.False(done)
		if n == len(lines)-1 {
			// Windowed sums are 12 and 15.
			assert.ErrorIs(err, ErrMismatch)
		} else {
			assert.NoError(err, lineno)
		}
	}

	done, err := bn.Tick()
	assert.True(done)
	assert.NoError(err)

	report := bn.Report()
	assert.Equal(2, report.Checks)
	assert.Equal(1, report.Passed)
	assert.Equal(alu.OP_FOCALSUMROW, report.Failures[0].Op)
}

func TestBenchStream(t *testing.T) {
	assert := assert.New(t)

	bn := NewBench()
	err := bn.Load(GoldenScript)
	if err != nil {
		t.Fatal(err)
	}

	trace := io.NewTrace(bn.Program.Inputs())
	bn.Reset()
	err = bn.Stream(trace)
	assert.NoError(err)
	assert.Equal(len(trace.Inputs), len(trace.Outputs))

	// The output after the final check's cycles is the final expectation.
	last := bn.Program.Steps[len(bn.Program.Steps)-2]
	assert.Equal(last.Expect.Byte(), trace.Outputs[len(trace.Outputs)-1])

	// Streaming again from reset reproduces the outputs.
	first := slices.Clone(trace.Outputs)
	trace.Rewind()
	bn.Reset()
	err = bn.Stream(trace)
	assert.NoError(err)
	assert.Equal(first, trace.Outputs)
}

func TestBenchStreamFull(t *testing.T) {
	assert := assert.New(t)

	bn := NewBench()
	trace := &io.Trace{
		Capacity: 2,
		Inputs:   make([]alu.Input, 5),
	}

	err := bn.Stream(trace)
	assert.ErrorIs(err, io.ErrChannelFull)

	var ec *ErrCycle
	assert.True(errors.As(err, &ec))
	assert.Equal(2, ec.Cycle)
}
