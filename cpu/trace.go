package cpu

import (
	"fmt"
	"strings"
)

// isUnofficial reports whether the tracer prefixes the mnemonic with
// '*'. NOP is only unofficial when the opcode byte itself isn't the
// official $EA, and SBC is only unofficial for the $EB alias; both are
// decided per opcode byte by Opcode.Unofficial (set by uop in
// opcodeTable) rather than by mnemonic.
func (o Opcode) isUnofficial() bool { return o.Unofficial }

// Trace renders one nestest.log-format line describing the
// instruction about to execute at the Cpu's current PC. It must be
// called before Step(): it reads Cpu/Bus state through the same pure
// resolveAddress helper Step uses and never changes Cpu state. It does
// read each operand's effective address through the Bus to show its
// value, so an operand that is a PPU register with read side effects
// ($2002, $2007) has those side effects when traced.
func Trace(c *Cpu) (string, error) {
	pc := c.PC
	opcodeByte := c.Read(pc)
	op, err := c.fetch(opcodeByte)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%04X  ", pc)

	for i := byte(0); i < 3; i++ {
		if i < op.Length {
			fmt.Fprintf(&b, "%02X ", c.Read(pc+uint16(i)))
		} else {
			b.WriteString("   ")
		}
	}

	if op.isUnofficial() {
		fmt.Fprintf(&b, "*%s ", op.Mnemonic)
	} else {
		fmt.Fprintf(&b, " %s ", op.Mnemonic)
	}

	b.WriteString(disassembleOperand(c, op, pc))

	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		c.A, c.X, c.Y, c.Flags.ToByte(false), c.SP,
		c.Bus.Ppu.Scanline, c.Bus.Ppu.Dot, c.Cycles)

	return b.String(), nil
}

// disassembleOperand reproduces the per-addressing-mode operand text,
// left-justified and space-padded on the right to a total field width
// of 28 columns (including any
// leading "$"/"("), the way nestest.log lays its disassembly column
// out.
func disassembleOperand(c *Cpu, op Opcode, pc uint16) string {
	operandPC := pc + 1
	printOperand := op.Mnemonic != "JSR" && op.Mnemonic != "JMP"

	switch op.Mode {

	case Implied:
		return pad(" ", 28)

	case Accumulator:
		return pad("A", 28)

	case Relative:
		addr, _ := resolveAddress(c, Relative, operandPC)
		return "$" + pad(fmt.Sprintf("%02X", addr), 27)

	case Immediate:
		v := c.Read(operandPC)
		return "#$" + pad(fmt.Sprintf("%02X", v), 26)

	case ZeroPage:
		imm := c.Read(operandPC)
		if printOperand {
			addr, _ := resolveAddress(c, ZeroPage, operandPC)
			v := c.Read(addr)
			return "$" + pad(fmt.Sprintf("%02X = %02X", imm, v), 27)
		}
		return "$" + pad(fmt.Sprintf("%04X", imm), 27)

	case ZeroPageX:
		imm := c.Read(operandPC)
		addr, _ := resolveAddress(c, ZeroPageX, operandPC)
		v := c.Read(addr)
		return "$" + pad(fmt.Sprintf("%02X,X @ %02X = %02X", imm, byte(addr), v), 27)

	case ZeroPageY:
		imm := c.Read(operandPC)
		addr, _ := resolveAddress(c, ZeroPageY, operandPC)
		v := c.Read(addr)
		return "$" + pad(fmt.Sprintf("%02X,Y @ %02X = %02X", imm, byte(addr), v), 27)

	case Absolute:
		addr := c.Read16(operandPC)
		if printOperand {
			v := c.Read(addr)
			return "$" + pad(fmt.Sprintf("%04X = %02X", addr, v), 27)
		}
		return "$" + pad(fmt.Sprintf("%04X", addr), 27)

	case AbsoluteX:
		base := c.Read16(operandPC)
		addr, _ := resolveAddress(c, AbsoluteX, operandPC)
		v := c.Read(addr)
		return "$" + pad(fmt.Sprintf("%04X,X @ %04X = %02X", base, addr, v), 27)

	case AbsoluteY:
		base := c.Read16(operandPC)
		addr, _ := resolveAddress(c, AbsoluteY, operandPC)
		v := c.Read(addr)
		return "$" + pad(fmt.Sprintf("%04X,Y @ %04X = %02X", base, addr, v), 27)

	case IndirectX:
		imm := c.Read(operandPC)
		addr, _ := resolveAddress(c, IndirectX, operandPC)
		v := c.Read(addr)
		return "(" + "$" + pad(fmt.Sprintf("%02X,X) @ %02X = %04X = %02X", imm, imm+c.X, addr, v), 26)

	case IndirectY:
		imm := c.Read(operandPC)
		addr, _ := resolveAddress(c, IndirectY, operandPC)
		v := c.Read(addr)
		base := addr - uint16(c.Y)
		return "(" + "$" + pad(fmt.Sprintf("%02X),Y = %04X @ %04X = %02X", imm, base, addr, v), 26)

	case Indirect:
		indirectAddr := c.Read16(operandPC)
		addr, _ := resolveAddress(c, Indirect, operandPC)
		return "(" + "$" + pad(fmt.Sprintf("%04X) = %04X", indirectAddr, addr), 26)
	}

	return pad(" ", 28)
}

// pad left-justifies s within width columns, matching Rust's
// "{: <N}" format specifier.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
