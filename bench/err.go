package bench

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	ErrMismatch = errors.New(f("output mismatch"))
)

// ErrCycle indicates the cycle of a streaming error.
type ErrCycle struct {
	Cycle int
	Err   error
}

func (err *ErrCycle) Error() string {
	return f("cycle %d %v", err.Cycle, err.Err)
}

func (err *ErrCycle) Unwrap() error {
	return err.Err
}
