package cpu

// AddressingMode tells the Cpu where to find the operand byte for an
// instruction. There are 13 possible modes; ZeroPage is confined to
// the first 256 bytes, the rest can reach the full 64 KiB.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX
	IndirectY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
)

// operandLength is the number of operand bytes following the opcode
// byte itself, for each addressing mode.
var operandLength = map[AddressingMode]byte{
	Implied:     0,
	Accumulator: 0,
	Immediate:   1,
	ZeroPage:    1,
	ZeroPageX:   1,
	ZeroPageY:   1,
	IndirectX:   1,
	IndirectY:   1,
	Relative:    1,
	Absolute:    2,
	AbsoluteX:   2,
	AbsoluteY:   2,
	Indirect:    2,
}

// resolveAddress computes the effective address for mode given that
// operandPC points at the first operand byte (i.e. one past the
// opcode byte). It is a pure function of Cpu/Bus state: it never
// mutates the Cpu, which lets the tracer call it ahead of execution
// without disturbing anything. The returned bool reports whether
// computing the address crossed a page boundary.
func resolveAddress(c *Cpu, mode AddressingMode, operandPC uint16) (addr uint16, pageCrossed bool) {
	switch mode {

	case Implied, Accumulator:
		return 0, false

	case Immediate:
		return operandPC, false

	case ZeroPage:
		return uint16(c.Read(operandPC)), false

	case ZeroPageX:
		return uint16(c.Read(operandPC) + c.X), false

	case ZeroPageY:
		return uint16(c.Read(operandPC) + c.Y), false

	case Relative:
		offset := int8(c.Read(operandPC))
		base := operandPC + 1
		return uint16(int32(base) + int32(offset)), false

	case Absolute:
		return c.Read16(operandPC), false

	case AbsoluteX:
		base := c.Read16(operandPC)
		addr = base + uint16(c.X)
		return addr, (addr & 0xFF00) != (base & 0xFF00)

	case AbsoluteY:
		base := c.Read16(operandPC)
		addr = base + uint16(c.Y)
		return addr, (addr & 0xFF00) != (base & 0xFF00)

	case IndirectX:
		ptr := c.Read(operandPC)
		lo := c.Read(uint16(ptr + c.X))
		hi := c.Read(uint16(byte(ptr+c.X) + 1))
		return uint16(hi)<<8 | uint16(lo), false

	case IndirectY:
		ptr := c.Read(operandPC)
		lo := uint16(c.Read(uint16(ptr)))
		hi := uint16(c.Read(uint16(byte(ptr + 1))))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		return addr, (addr & 0xFF00) != (base & 0xFF00)

	case Indirect:
		// JMP ($xxFF) does not cross into the next page to fetch the
		// high byte; it wraps to the start of the same page. This is
		// the well-known 6502 indirect-JMP hardware bug.
		ptr := c.Read16(operandPC)
		lo := c.Read(ptr)
		var hi byte
		if ptr&0x00FF == 0x00FF {
			hi = c.Read(ptr & 0xFF00)
		} else {
			hi = c.Read(ptr + 1)
		}
		return uint16(hi)<<8 | uint16(lo), false
	}

	return 0, false
}
