// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vector

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/internal"
)

const (
	RESET_CYCLES = 5 // Default cycles a reset is asserted.
)

// Macro represents a macro definition in a stimulus script.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = maps.Collect(internal.IterSeq2Concat(
	alu.Defines(),
	maps.All(map[string]string{
		"LINENO":       "0",
		"RESET_CYCLES": fmt.Sprintf("%d", RESET_CYCLES),
	}),
))

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass macro assembler for stimulus scripts.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Steps   []Step // List of generated steps.

	predefine map[string]string   // Predefines
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	enable bool       // Enable line level for driven cycles.
	last   *alu.Input // Last driven cycle.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil || v64 < 0 {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// limitOf returns the value of a word no larger than limit.
func (asm *Assembler) limitOf(word string, limit uint32) (value uint32, err error) {
	value, err = asm.valueOf(word)
	if err != nil {
		return
	}

	if value > limit {
		err = ErrValueRange{Word: word, Value: value, Limit: limit}
	}

	return
}

// nibbleOf returns a register value.
func (asm *Assembler) nibbleOf(word string) (nb alu.Nibble, err error) {
	value, err := asm.limitOf(word, alu.NIBBLE_MAX)
	nb = alu.Nibble(value)
	return
}

// byteOf returns a pin bank value.
func (asm *Assembler) byteOf(word string) (b uint8, err error) {
	value, err := asm.limitOf(word, 0xff)
	b = uint8(value)
	return
}

// opcodeOf returns an opcode by mnemonic or number.
func (asm *Assembler) opcodeOf(word string) (op alu.Opcode, err error) {
	op, err = alu.ParseOpcode(word)
	if err == nil {
		return
	}

	nb, err := asm.nibbleOf(word)
	if err != nil {
		err = alu.ErrOpcodeName(word)
		return
	}

	op = alu.Opcode(nb)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates, such as opcode names
			// passed to a macro.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	err = nil
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine parses a single line into words, expanding macros.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", fmt.Sprintf("%v_%v_", name, lineno))
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// Parse parses an input stream into a Program of steps.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Steps = asm.Steps[:0]
	asm.enable = false
	asm.last = nil
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Steps: slices.Clone(asm.Steps),
	}

	return
}

// argCount checks a command has exactly count argument words.
func argCount(words []string, count int) error {
	switch {
	case len(words)-1 < count:
		return ErrCommandValueMissing
	case len(words)-1 > count:
		return ErrCommandExtraArgs
	}
	return nil
}

// parseWords evaluates the words in a line of script text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var inputs []alu.Input
	var expect *alu.Result

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if err != nil || (len(inputs) == 0 && expect == nil) {
			return
		}
		step := Step{LineNo: lineno, Words: initial_words, Inputs: inputs, Expect: expect}
		asm.Steps = append(asm.Steps, step)
		if len(inputs) > 0 {
			last := inputs[len(inputs)-1]
			asm.last = &last
		}
	}()

	drive := func(ctl alu.Control, bus uint8) alu.Input {
		return alu.Input{Control: ctl, Bus: bus, Enable: asm.enable}
	}

	switch words[0] {
	case "enable", "disable":
		err = argCount(words, 0)
		if err != nil {
			return
		}
		asm.enable = words[0] == "enable"
	case "reset", "idle":
		count := uint32(1)
		if words[0] == "reset" {
			count = RESET_CYCLES
		}
		if len(words) > 2 {
			err = ErrCommandExtraArgs
			return
		}
		if len(words) == 2 {
			count, err = asm.valueOf(words[1])
			if err != nil {
				return
			}
		}
		for range count {
			in := drive(0, 0)
			in.Reset = words[0] == "reset"
			inputs = append(inputs, in)
		}
	case "load":
		err = argCount(words, 3)
		if err != nil {
			return
		}
		var sel alu.LoadSelect
		sel, err = alu.ParseLoadSelect(words[1])
		if err != nil {
			return
		}
		var hi, lo alu.Nibble
		hi, err = asm.nibbleOf(words[2])
		if err != nil {
			return
		}
		lo, err = asm.nibbleOf(words[3])
		if err != nil {
			return
		}
		inputs = append(inputs, drive(alu.MakeControl(alu.OP_NOP, sel), alu.Pack(hi, lo)))
	case "exec":
		err = argCount(words, 1)
		if err != nil {
			return
		}
		var op alu.Opcode
		op, err = asm.opcodeOf(words[1])
		if err != nil {
			return
		}
		inputs = append(inputs, drive(alu.MakeControl(op, alu.LOAD_NONE), 0))
	case "pins":
		err = argCount(words, 2)
		if err != nil {
			return
		}
		var ui, uio uint8
		ui, err = asm.byteOf(words[1])
		if err != nil {
			return
		}
		uio, err = asm.byteOf(words[2])
		if err != nil {
			return
		}
		inputs = append(inputs, drive(alu.Control(ui), uio))
	case "hold":
		err = argCount(words, 1)
		if err != nil {
			return
		}
		var count uint32
		count, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if asm.last == nil {
			err = ErrHoldEmpty
			return
		}
		for range count {
			inputs = append(inputs, *asm.last)
		}
	case "expect":
		err = argCount(words, 2)
		if err != nil {
			return
		}
		var res alu.Result
		res.M, err = asm.nibbleOf(words[1])
		if err != nil {
			return
		}
		res.N, err = asm.nibbleOf(words[2])
		if err != nil {
			return
		}
		expect = &res
	default:
		err = ErrCommandInvalid
		return
	}

	return
}
