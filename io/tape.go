package io

import (
	"errors"
	"io"
	"iter"

	"github.com/ezrec/alu4/alu"
)

// Tape provides sequential pin I/O over byte streams.
// Input is read as PIN_RECORD bytes per cycle, and each output
// byte is written to Output as it is sent.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	err error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Err returns the first error encountered while reading Input,
// other than a clean end of the stream.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields one input per complete
// record read from the input stream.
func (tc *Tape) Receive() iter.Seq[alu.Input] {
	return func(yield func(in alu.Input) bool) {
		if tc.Input == nil {
			return
		}
		for {
			var record [PIN_RECORD]byte
			_, err := io.ReadFull(tc.Input, record[:])
			if errors.Is(err, io.ErrUnexpectedEOF) {
				tc.err = ErrTapeShort
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					tc.err = err
				}
				return
			}
			if !yield(DecodeInput(record)) {
				return
			}
		}
	}
}

// Send writes an output byte to the output stream.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = tc.Output.Write([]byte{value})

	return
}

// Record writes the pin records of a stimulus to the output stream.
func (tc *Tape) Record(seq iter.Seq[alu.Input]) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	for in := range seq {
		record := EncodeInput(in)
		_, err = tc.Output.Write(record[:])
		if err != nil {
			return
		}
	}

	return
}
