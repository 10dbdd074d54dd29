package alu

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrLoadInvalid   = errors.New(f("load select invalid"))
)

// ErrNibbleRange is a value that does not fit in a 4-bit register.
type ErrNibbleRange int

func (err ErrNibbleRange) Error() string {
	return f("%d is outside 0..15", int(err))
}

// ErrOpcodeName is an unknown opcode mnemonic.
type ErrOpcodeName string

func (err ErrOpcodeName) Error() string {
	return f("opcode '%v' unknown", string(err))
}

func (err ErrOpcodeName) Unwrap() error {
	return ErrOpcodeInvalid
}
