package alu

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Opcode selects the kernel evaluated on a step.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode,LoadSelect,Direction,State -output=enum_string.go
const (
	OP_NOP             = Opcode(0b0000) // nop
	OP_MINGATE         = Opcode(0b0001) // mingate
	OP_EQGATE          = Opcode(0b0010) // eqgate
	OP_ZEROMN          = Opcode(0b0011) // zeromn
	OP_DISTDIR         = Opcode(0b0100) // distdir
	OP_VECTORBOXAREA   = Opcode(0b0101) // boxarea
	OP_BASICBUFFER     = Opcode(0b0110) // buffer
	OP_ATTRRECLASS     = Opcode(0b0111) // reclass
	OP_FOCALMEANROW    = Opcode(0b1000) // mean
	OP_FOCALSUMROW     = Opcode(0b1001) // sum
	OP_RESERVED        = Opcode(0b1010) // rsvd
	OP_FOCALMAXPOOLROW = Opcode(0b1011) // maxpool
	OP_NORMDIFFINDEX   = Opcode(0b1100) // ndi
	OP_LOCALCODEOP     = Opcode(0b1101) // localcode
	OP_MHDIST8         = Opcode(0b1110) // mhdist8
	OP_DOTPRODUCT      = Opcode(0b1111) // dot
)

// Holds reports whether the opcode leaves the result registers unchanged.
// The reserved opcode is decoded as a second no-op.
func (op Opcode) Holds() bool {
	return op == OP_NOP || op == OP_RESERVED
}

// LoadSelect is the decoded load-select field.
type LoadSelect int

const (
	LOAD_NONE = LoadSelect(0) // -
	LOAD_AB   = LoadSelect(1) // ab
	LOAD_CD   = LoadSelect(2) // cd
)

// Load-select wire codes. Every other value means no load.
const (
	Q_AB_LOAD = Nibble(0b0110)
	Q_CD_LOAD = Nibble(0b0101)
)

// DecodeLoadSelect decodes the 4-bit load-select field.
func DecodeLoadSelect(q Nibble) LoadSelect {
	switch q & NIBBLE_MASK {
	case Q_AB_LOAD:
		return LOAD_AB
	case Q_CD_LOAD:
		return LOAD_CD
	}
	return LOAD_NONE
}

// Code returns the wire code of the load select.
func (sel LoadSelect) Code() Nibble {
	switch sel {
	case LOAD_AB:
		return Q_AB_LOAD
	case LOAD_CD:
		return Q_CD_LOAD
	}
	return 0
}

// Direction is an octant code, clockwise from north.
type Direction int

const (
	DIR_N  = Direction(0) // n
	DIR_NE = Direction(1) // ne
	DIR_E  = Direction(2) // e
	DIR_SE = Direction(3) // se
	DIR_S  = Direction(4) // s
	DIR_SW = Direction(5) // sw
	DIR_W  = Direction(6) // w
	DIR_NW = Direction(7) // nw
)

// Diagonal reports whether the direction lies between two axes.
func (dir Direction) Diagonal() bool {
	return dir&1 == 1
}

// State of the output latch.
type State int

const (
	STATE_IDLE_HOLD = State(0) // hold
	STATE_COMPUTED  = State(1) // computed
)

// Control is the 8-bit control word: opcode in bits 7..4, load select in 3..0.
type Control uint8

// MakeControl encodes an opcode and load select.
func MakeControl(op Opcode, sel LoadSelect) Control {
	return Control(Pack(Nibble(op), sel.Code()))
}

// Opcode returns the opcode field.
func (ctl Control) Opcode() Opcode {
	hi, _ := Unpack(uint8(ctl))
	return Opcode(hi)
}

// LoadSelect returns the decoded load-select field.
func (ctl Control) LoadSelect() LoadSelect {
	_, lo := Unpack(uint8(ctl))
	return DecodeLoadSelect(lo)
}

func (ctl Control) String() string {
	return fmt.Sprintf("%v.%v", ctl.Opcode().String(), ctl.LoadSelect().String())
}

var opcodeByName = map[string]Opcode{}

var _alu_defines = map[string]string{
	"Q_AB_LOAD":  fmt.Sprintf("%#x", uint8(Q_AB_LOAD)),
	"Q_CD_LOAD":  fmt.Sprintf("%#x", uint8(Q_CD_LOAD)),
	"NIBBLE_MAX": fmt.Sprintf("%d", NIBBLE_MAX),
}

func init() {
	for op := OP_NOP; op <= OP_DOTPRODUCT; op++ {
		opcodeByName[op.String()] = op
	}
	for name, op := range opcodeByName {
		_alu_defines["OP_"+strings.ToUpper(name)] = fmt.Sprintf("%#x", int(op))
	}
}

// ParseOpcode looks up an opcode by its mnemonic.
func ParseOpcode(name string) (op Opcode, err error) {
	op, ok := opcodeByName[name]
	if !ok {
		err = ErrOpcodeName(name)
	}
	return
}

// Defines returns the core constants as assembler equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_alu_defines)
}

// ParseLoadSelect looks up a load select by its mnemonic.
func ParseLoadSelect(name string) (sel LoadSelect, err error) {
	switch name {
	case LOAD_AB.String():
		sel = LOAD_AB
	case LOAD_CD.String():
		sel = LOAD_CD
	default:
		err = ErrLoadInvalid
	}
	return
}
