package alu

const (
	NIBBLE_BITS = 4    // Width of every register.
	NIBBLE_MASK = 0x0f // Mask of a register value.
	NIBBLE_MAX  = 15   // Largest register value.
)

// Nibble is a 4-bit unsigned register value.
type Nibble uint8

// MakeNibble checks that value fits in a register.
func MakeNibble(value int) (nb Nibble, err error) {
	if value < 0 || value > NIBBLE_MAX {
		err = ErrNibbleRange(value)
		return
	}

	nb = Nibble(value)
	return
}

// Wrap reduces value modulo 16.
func Wrap(value int) Nibble {
	return Nibble(value & NIBBLE_MASK)
}

// Saturate clamps value into [0,15].
func Saturate(value int) Nibble {
	switch {
	case value < 0:
		return 0
	case value > NIBBLE_MAX:
		return NIBBLE_MAX
	}
	return Nibble(value)
}

// Pack joins two nibbles into a byte, hi in bits 7..4.
func Pack(hi, lo Nibble) uint8 {
	return (uint8(hi&NIBBLE_MASK) << NIBBLE_BITS) | uint8(lo&NIBBLE_MASK)
}

// Unpack splits a byte into its high and low nibbles.
func Unpack(value uint8) (hi, lo Nibble) {
	hi = Nibble(value >> NIBBLE_BITS)
	lo = Nibble(value & NIBBLE_MASK)
	return
}

// Split8 reduces value modulo 256 and splits it into (M,N).
func Split8(value int) Result {
	m, n := Unpack(uint8(value & 0xff))
	return Result{M: m, N: n}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
