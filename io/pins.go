package io

import (
	"github.com/ezrec/alu4/alu"
)

const (
	PIN_RECORD = 3 // Bytes per cycle: ui_in, uio_in, ctrl.

	CTRL_RST_N = uint8(1 << 0) // ctrl bit for the active-low reset line.
	CTRL_ENA   = uint8(1 << 1) // ctrl bit for the enable line.
)

// EncodeInput returns the pin record of a single cycle.
func EncodeInput(in alu.Input) (record [PIN_RECORD]byte) {
	record[0] = uint8(in.Control)
	record[1] = in.Bus
	if !in.Reset {
		record[2] |= CTRL_RST_N
	}
	if in.Enable {
		record[2] |= CTRL_ENA
	}

	return
}

// DecodeInput returns the cycle described by a pin record.
// Undefined ctrl bits are ignored.
func DecodeInput(record [PIN_RECORD]byte) (in alu.Input) {
	in.Control = alu.Control(record[0])
	in.Bus = record[1]
	in.Reset = (record[2] & CTRL_RST_N) == 0
	in.Enable = (record[2] & CTRL_ENA) != 0

	return
}
