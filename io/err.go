package io

import (
	"errors"

	"github.com/ezrec/alu4/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull   = errors.New(f("channel full"))
	ErrChannelClosed = errors.New(f("channel has no output"))
	ErrTapeShort     = errors.New(f("tape record truncated"))
)
