package cpu

// Instruction handlers. Each receives the effective address already
// resolved by resolveAddress (meaningless for the operand-less
// Implied/Accumulator cases; the branch target for Relative) along
// with the addressing mode,
// so Accumulator-mode shift/rotate instructions can tell where to read
// and write. The returned byte is any extra cycle the instruction
// itself incurs beyond its table entry (used only by the branch
// instructions, for the taken/page-cross bonuses).
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

func operand(c *Cpu, addr uint16, mode AddressingMode) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.Read(addr)
}

func storeResult(c *Cpu, addr uint16, mode AddressingMode, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.Write(addr, v)
}

// adcValue implements the 16-bit-add-with-carry-in identity shared by
// ADC, SBC (with the operand's bits complemented), and the
// undocumented RRA/ISB combos.
func (c *Cpu) adcValue(value byte) {
	carryIn := uint16(0)
	if c.Flags.Carry {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(value) + carryIn
	result := byte(sum)

	c.Flags.Carry = sum > 0xFF
	c.Flags.Overflow = (c.A^value)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.A = result
	c.setZN(result)
}

// ADC - Add with Carry
func ADC(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.adcValue(operand(c, addr, mode))
	return 0
}

// SBC - Subtract with Carry
func SBC(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.adcValue(^operand(c, addr, mode))
	return 0
}

// AND - Logical AND
func AND(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.A &= operand(c, addr, mode)
	c.setZN(c.A)
	return 0
}

// ASL - Arithmetic Shift Left
func ASL(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := operand(c, addr, mode)
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	c.setZN(v)
	storeResult(c, addr, mode, v)
	return 0
}

// branch is the shared helper behind every Bxx instruction: it ticks
// +1 cycle if the branch is taken, and +1 more if the destination is
// on a different page than the instruction following the branch.
func (c *Cpu) branch(taken bool, dest uint16) byte {
	if !taken {
		return 0
	}
	var extra byte = 1
	if dest&0xFF00 != c.PC&0xFF00 {
		extra++
	}
	c.PC = dest
	return extra
}

func BCC(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(!c.Flags.Carry, addr) }
func BCS(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(c.Flags.Carry, addr) }
func BEQ(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(c.Flags.Zero, addr) }
func BMI(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(c.Flags.Negative, addr) }
func BNE(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(!c.Flags.Zero, addr) }
func BPL(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(!c.Flags.Negative, addr) }
func BVC(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(!c.Flags.Overflow, addr) }
func BVS(c *Cpu, addr uint16, mode AddressingMode) byte { return c.branch(c.Flags.Overflow, addr) }

// BIT - Bit Test
func BIT(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr)
	c.Flags.Zero = c.A&v == 0
	c.Flags.Overflow = v&0x40 != 0
	c.Flags.Negative = v&0x80 != 0
	return 0
}

// BRK - Force Interrupt. PC has already been advanced past the padding
// byte that follows a BRK opcode by the time this runs.
func BRK(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.push16(c.PC)
	c.push(c.Flags.ToByte(true))
	c.Flags.DisableInterrupt = true
	c.PC = c.Read16(0xFFFE)
	return 0
}

func CLC(c *Cpu, addr uint16, mode AddressingMode) byte { c.Flags.Carry = false; return 0 }
func CLD(c *Cpu, addr uint16, mode AddressingMode) byte { c.Flags.Decimal = false; return 0 }
func CLI(c *Cpu, addr uint16, mode AddressingMode) byte { c.Flags.DisableInterrupt = false; return 0 }
func CLV(c *Cpu, addr uint16, mode AddressingMode) byte { c.Flags.Overflow = false; return 0 }
func SEC(c *Cpu, addr uint16, mode AddressingMode) byte { c.Flags.Carry = true; return 0 }
func SED(c *Cpu, addr uint16, mode AddressingMode) byte { c.Flags.Decimal = true; return 0 }
func SEI(c *Cpu, addr uint16, mode AddressingMode) byte { c.Flags.DisableInterrupt = true; return 0 }

func (c *Cpu) compare(reg byte, addr uint16) {
	v := c.Read(addr)
	c.Flags.Carry = reg >= v
	c.setZN(reg - v)
}

// CMP - Compare
func CMP(c *Cpu, addr uint16, mode AddressingMode) byte { c.compare(c.A, addr); return 0 }

// CPX - Compare X Register
func CPX(c *Cpu, addr uint16, mode AddressingMode) byte { c.compare(c.X, addr); return 0 }

// CPY - Compare Y Register
func CPY(c *Cpu, addr uint16, mode AddressingMode) byte { c.compare(c.Y, addr); return 0 }

// DEC - Decrement Memory
func DEC(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.setZN(v)
	return 0
}

func DEX(c *Cpu, addr uint16, mode AddressingMode) byte { c.X--; c.setZN(c.X); return 0 }
func DEY(c *Cpu, addr uint16, mode AddressingMode) byte { c.Y--; c.setZN(c.Y); return 0 }
func INX(c *Cpu, addr uint16, mode AddressingMode) byte { c.X++; c.setZN(c.X); return 0 }
func INY(c *Cpu, addr uint16, mode AddressingMode) byte { c.Y++; c.setZN(c.Y); return 0 }

// EOR - Exclusive OR
func EOR(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.A ^= operand(c, addr, mode)
	c.setZN(c.A)
	return 0
}

// INC - Increment Memory
func INC(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.setZN(v)
	return 0
}

// JMP - Jump
func JMP(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.PC = addr
	return 0
}

// JSR - Jump to Subroutine. The pushed return address is the address
// of the last byte of the JSR instruction, i.e. one less than PC
// (which Step has already advanced past the full 3-byte instruction).
func JSR(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.push16(c.PC - 1)
	c.PC = addr
	return 0
}

// LDA - Load Accumulator
func LDA(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.A = c.Read(addr)
	c.setZN(c.A)
	return 0
}

// LDX - Load X Register
func LDX(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.X = c.Read(addr)
	c.setZN(c.X)
	return 0
}

// LDY - Load Y Register
func LDY(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.Y = c.Read(addr)
	c.setZN(c.Y)
	return 0
}

// LSR - Logical Shift Right
func LSR(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := operand(c, addr, mode)
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	c.setZN(v)
	storeResult(c, addr, mode, v)
	return 0
}

// NOP - No Operation (and every unofficial NOP variant)
func NOP(c *Cpu, addr uint16, mode AddressingMode) byte { return 0 }

// ORA - Logical Inclusive OR
func ORA(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.A |= operand(c, addr, mode)
	c.setZN(c.A)
	return 0
}

// PHA - Push Accumulator
func PHA(c *Cpu, addr uint16, mode AddressingMode) byte { c.push(c.A); return 0 }

// PHP - Push Processor Status
func PHP(c *Cpu, addr uint16, mode AddressingMode) byte { c.push(c.Flags.ToByte(true)); return 0 }

// PLA - Pull Accumulator
func PLA(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.A = c.pop()
	c.setZN(c.A)
	return 0
}

// PLP - Pull Processor Status. The Break bit read off the stack is
// discarded; Unused always reads back as 1.
func PLP(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.Flags.FromByte(c.pop())
	return 0
}

// ROL - Rotate Left
func ROL(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := operand(c, addr, mode)
	oldCarry := c.Flags.Carry
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.setZN(v)
	storeResult(c, addr, mode, v)
	return 0
}

// ROR - Rotate Right
func ROR(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := operand(c, addr, mode)
	oldCarry := c.Flags.Carry
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.setZN(v)
	storeResult(c, addr, mode, v)
	return 0
}

// RTI - Return from Interrupt
func RTI(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.Flags.FromByte(c.pop())
	c.PC = c.pop16()
	return 0
}

// RTS - Return from Subroutine
func RTS(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.PC = c.pop16() + 1
	return 0
}

// STA - Store Accumulator
func STA(c *Cpu, addr uint16, mode AddressingMode) byte { c.Write(addr, c.A); return 0 }

// STX - Store X Register
func STX(c *Cpu, addr uint16, mode AddressingMode) byte { c.Write(addr, c.X); return 0 }

// STY - Store Y Register
func STY(c *Cpu, addr uint16, mode AddressingMode) byte { c.Write(addr, c.Y); return 0 }

func TAX(c *Cpu, addr uint16, mode AddressingMode) byte { c.X = c.A; c.setZN(c.X); return 0 }
func TAY(c *Cpu, addr uint16, mode AddressingMode) byte { c.Y = c.A; c.setZN(c.Y); return 0 }
func TXA(c *Cpu, addr uint16, mode AddressingMode) byte { c.A = c.X; c.setZN(c.A); return 0 }
func TYA(c *Cpu, addr uint16, mode AddressingMode) byte { c.A = c.Y; c.setZN(c.A); return 0 }
func TSX(c *Cpu, addr uint16, mode AddressingMode) byte { c.X = c.SP; c.setZN(c.X); return 0 }
func TXS(c *Cpu, addr uint16, mode AddressingMode) byte { c.SP = c.X; return 0 }

// --- Undocumented opcodes exercised by nestest ---

// LAX - Load Accumulator and X (combined LDA+LDX)
func LAX(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
	return 0
}

// SAX - Store (A AND X)
func SAX(c *Cpu, addr uint16, mode AddressingMode) byte {
	c.Write(addr, c.A&c.X)
	return 0
}

// DCP - Decrement memory, then Compare (DEC + CMP)
func DCP(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.Flags.Carry = c.A >= v
	c.setZN(c.A - v)
	return 0
}

// ISB - Increment memory, then Subtract with Carry (INC + SBC); also
// known as ISC.
func ISB(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.adcValue(^v)
	return 0
}

// SLO - Shift Left, then OR with Accumulator (ASL + ORA)
func SLO(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr)
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	c.Write(addr, v)
	c.A |= v
	c.setZN(c.A)
	return 0
}

// RLA - Rotate Left, then AND with Accumulator (ROL + AND)
func RLA(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr)
	oldCarry := c.Flags.Carry
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.Write(addr, v)
	c.A &= v
	c.setZN(c.A)
	return 0
}

// SRE - Shift Right, then EOR with Accumulator (LSR + EOR)
func SRE(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr)
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	c.Write(addr, v)
	c.A ^= v
	c.setZN(c.A)
	return 0
}

// RRA - Rotate Right, then Add with Carry (ROR + ADC)
func RRA(c *Cpu, addr uint16, mode AddressingMode) byte {
	v := c.Read(addr)
	oldCarry := c.Flags.Carry
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.Write(addr, v)
	c.adcValue(v)
	return 0
}
