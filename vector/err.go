package vector

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	ErrEquateSyntax        = errors.New(f(".equ syntax"))
	ErrEquateDuplicate     = errors.New(f(".equ duplicated"))
	ErrMacroSyntax         = errors.New(f(".macro syntax"))
	ErrMacroNesting        = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate      = errors.New(f(".macro duplicated"))
	ErrMacroLonely         = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm     = errors.New(f(".endm without .macro"))
	ErrCommandExtraArgs    = errors.New(f("excessive arguments"))
	ErrCommandValueMissing = errors.New(f("value missing"))
	ErrCommandInvalid      = errors.New(f("command invalid"))
	ErrHoldEmpty           = errors.New(f("hold without a prior cycle"))
)

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrValueRange struct {
	Word  string
	Value uint32
	Limit uint32
}

func (err ErrValueRange) Error() string {
	return f("'%v' (%d) exceeds %d", err.Word, err.Value, err.Limit)
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
