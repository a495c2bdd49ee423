package cpu

import "nes6502core/mask"

// StatusFlags models the 6502 P register as individual bits, the way
// the teacher's original Flags struct did, plus the packed byte
// conversions PHP/PLP/BRK/RTI/the tracer all need.
//
// 7654 3210
// NVUB DIZC
type StatusFlags struct {
	Negative         bool // bit 7
	Overflow         bool // bit 6
	Unused           bool // bit 5; always read back as 1
	Break            bool // bit 4; set on PHP/BRK push, never on hardware register
	Decimal          bool // bit 3; present on the die but unused by the NES
	DisableInterrupt bool // bit 2
	Zero             bool // bit 1
	Carry            bool // bit 0
}

const (
	flagCarry     = 1 << 0
	flagZero      = 1 << 1
	flagIRQDis    = 1 << 2
	flagDecimal   = 1 << 3
	flagBreak     = 1 << 4
	flagUnused    = 1 << 5
	flagOverflow  = 1 << 6
	flagNegative  = 1 << 7
)

// ToByte packs the flags into the P register's byte form. pushBreak
// controls bit 4: PHP and the BRK push set it, while NMI/IRQ pushes
// clear it. Bit 5 (Unused) always reads back as 1 on the pushed byte.
func (f StatusFlags) ToByte(pushBreak bool) byte {
	var b byte
	if f.Carry {
		b |= flagCarry
	}
	if f.Zero {
		b |= flagZero
	}
	if f.DisableInterrupt {
		b |= flagIRQDis
	}
	if f.Decimal {
		b |= flagDecimal
	}
	if pushBreak {
		b |= flagBreak
	}
	b |= flagUnused
	if f.Overflow {
		b |= flagOverflow
	}
	if f.Negative {
		b |= flagNegative
	}
	return b
}

// FromByte unpacks a P register byte into the flag fields. The Break
// bit is not retained as CPU state: on real hardware it exists only on
// the value pushed to the stack, never in the live P register.
func (f *StatusFlags) FromByte(b byte) {
	f.Carry = b&flagCarry != 0
	f.Zero = b&flagZero != 0
	f.DisableInterrupt = b&flagIRQDis != 0
	f.Decimal = b&flagDecimal != 0
	f.Unused = true
	f.Overflow = b&flagOverflow != 0
	f.Negative = b&flagNegative != 0
}

// setZN sets the Zero and Negative flags from the given result byte,
// the most common flag-update pattern across the instruction set.
func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = mask.IsSet(v, mask.I1)
}
