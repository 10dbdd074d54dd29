package io

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alu4/alu"
)

func TestTrace_Receive(t *testing.T) {
	assert := assert.New(t)

	stimulus := []alu.Input{{Reset: true}, {Enable: true}, {Control: 0x15, Enable: true}}
	trace := NewTrace(slices.Values(stimulus))

	assert.Equal(stimulus, slices.Collect(trace.Receive()))

	// Replayable
	assert.Equal(stimulus, slices.Collect(trace.Receive()))
}

func TestTrace_Receive_Empty(t *testing.T) {
	assert := assert.New(t)

	trace := &Trace{}

	count := 0
	for range trace.Receive() {
		count++
	}

	assert.Equal(0, count)
}

func TestTrace_Send(t *testing.T) {
	assert := assert.New(t)

	trace := &Trace{Capacity: 2}

	assert.NoError(trace.Send(0x12))
	assert.NoError(trace.Send(0x34))
	assert.ErrorIs(trace.Send(0x56), ErrChannelFull)
	assert.Equal([]uint8{0x12, 0x34}, trace.Outputs)

	trace.Rewind()
	assert.Equal(0, len(trace.Outputs))
	assert.NoError(trace.Send(0x56))
	assert.Equal([]uint8{0x56}, trace.Outputs)
}

func TestTrace_Send_Unbounded(t *testing.T) {
	assert := assert.New(t)

	trace := &Trace{}
	for n := range 1000 {
		assert.NoError(trace.Send(uint8(n)))
	}
	assert.Equal(1000, len(trace.Outputs))
}
