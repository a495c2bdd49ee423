package cpu

// Opcode associates a byte value (0x00-0xFF) with the addressing mode,
// instruction length, base cycle cost, and handler it dispatches to.
// Multiple opcodes may share a Handler, differing only in how the
// operand is fetched; that part is handled by resolveAddress, not the
// Handler itself.
type Opcode struct {
	Mnemonic string
	Mode     AddressingMode
	Length   byte
	// BaseCycles is the cycle cost charged regardless of page
	// crossing; ExtraOnPageCross adds one more for "read" class
	// instructions (loads, ALU ops, CMP/CPX/CPY, BIT, and LAX) whose
	// AbsoluteX/AbsoluteY/IndirectY operand crosses a page boundary.
	// Read-modify-write instructions and stores never get this bonus:
	// they always perform the dummy write regardless of crossing, so
	// their BaseCycles already accounts for the worst case.
	BaseCycles       byte
	ExtraOnPageCross bool
	Unofficial       bool
	Handler          func(c *Cpu, addr uint16, mode AddressingMode) byte
}

func op(name string, mode AddressingMode, cycles byte, extra bool, h func(*Cpu, uint16, AddressingMode) byte) Opcode {
	return Opcode{Mnemonic: name, Mode: mode, Length: 1 + operandLength[mode], BaseCycles: cycles, ExtraOnPageCross: extra, Handler: h}
}

func uop(name string, mode AddressingMode, cycles byte, extra bool, h func(*Cpu, uint16, AddressingMode) byte) Opcode {
	o := op(name, mode, cycles, extra, h)
	o.Unofficial = true
	return o
}

// opcodeTable lists every byte value the Cpu recognizes: the 151
// official 6502 opcodes plus the unofficial opcodes nestest's
// automated log exercises (LAX, SAX, DCP, ISB, SLO, RLA, SRE, RRA, the
// unofficial NOPs, and the $EB SBC alias). Byte values with no entry
// here are rejected by fetch() as an unknown opcode.
var opcodeTable = map[byte]Opcode{
	// ADC
	0x69: op("ADC", Immediate, 2, false, ADC),
	0x65: op("ADC", ZeroPage, 3, false, ADC),
	0x75: op("ADC", ZeroPageX, 4, false, ADC),
	0x6D: op("ADC", Absolute, 4, false, ADC),
	0x7D: op("ADC", AbsoluteX, 4, true, ADC),
	0x79: op("ADC", AbsoluteY, 4, true, ADC),
	0x61: op("ADC", IndirectX, 6, false, ADC),
	0x71: op("ADC", IndirectY, 5, true, ADC),

	// AND
	0x29: op("AND", Immediate, 2, false, AND),
	0x25: op("AND", ZeroPage, 3, false, AND),
	0x35: op("AND", ZeroPageX, 4, false, AND),
	0x2D: op("AND", Absolute, 4, false, AND),
	0x3D: op("AND", AbsoluteX, 4, true, AND),
	0x39: op("AND", AbsoluteY, 4, true, AND),
	0x21: op("AND", IndirectX, 6, false, AND),
	0x31: op("AND", IndirectY, 5, true, AND),

	// ASL
	0x0A: op("ASL", Accumulator, 2, false, ASL),
	0x06: op("ASL", ZeroPage, 5, false, ASL),
	0x16: op("ASL", ZeroPageX, 6, false, ASL),
	0x0E: op("ASL", Absolute, 6, false, ASL),
	0x1E: op("ASL", AbsoluteX, 7, false, ASL),

	// branches
	0x90: op("BCC", Relative, 2, false, BCC),
	0xB0: op("BCS", Relative, 2, false, BCS),
	0xF0: op("BEQ", Relative, 2, false, BEQ),
	0x30: op("BMI", Relative, 2, false, BMI),
	0xD0: op("BNE", Relative, 2, false, BNE),
	0x10: op("BPL", Relative, 2, false, BPL),
	0x50: op("BVC", Relative, 2, false, BVC),
	0x70: op("BVS", Relative, 2, false, BVS),

	// BIT
	0x24: op("BIT", ZeroPage, 3, false, BIT),
	0x2C: op("BIT", Absolute, 4, false, BIT),

	// BRK
	0x00: {Mnemonic: "BRK", Mode: Implied, Length: 2, BaseCycles: 7, Handler: BRK},

	// clear/set flags
	0x18: op("CLC", Implied, 2, false, CLC),
	0xD8: op("CLD", Implied, 2, false, CLD),
	0x58: op("CLI", Implied, 2, false, CLI),
	0xB8: op("CLV", Implied, 2, false, CLV),
	0x38: op("SEC", Implied, 2, false, SEC),
	0xF8: op("SED", Implied, 2, false, SED),
	0x78: op("SEI", Implied, 2, false, SEI),

	// CMP
	0xC9: op("CMP", Immediate, 2, false, CMP),
	0xC5: op("CMP", ZeroPage, 3, false, CMP),
	0xD5: op("CMP", ZeroPageX, 4, false, CMP),
	0xCD: op("CMP", Absolute, 4, false, CMP),
	0xDD: op("CMP", AbsoluteX, 4, true, CMP),
	0xD9: op("CMP", AbsoluteY, 4, true, CMP),
	0xC1: op("CMP", IndirectX, 6, false, CMP),
	0xD1: op("CMP", IndirectY, 5, true, CMP),

	// CPX, CPY
	0xE0: op("CPX", Immediate, 2, false, CPX),
	0xE4: op("CPX", ZeroPage, 3, false, CPX),
	0xEC: op("CPX", Absolute, 4, false, CPX),
	0xC0: op("CPY", Immediate, 2, false, CPY),
	0xC4: op("CPY", ZeroPage, 3, false, CPY),
	0xCC: op("CPY", Absolute, 4, false, CPY),

	// DEC, DEX, DEY
	0xC6: op("DEC", ZeroPage, 5, false, DEC),
	0xD6: op("DEC", ZeroPageX, 6, false, DEC),
	0xCE: op("DEC", Absolute, 6, false, DEC),
	0xDE: op("DEC", AbsoluteX, 7, false, DEC),
	0xCA: op("DEX", Implied, 2, false, DEX),
	0x88: op("DEY", Implied, 2, false, DEY),

	// EOR
	0x49: op("EOR", Immediate, 2, false, EOR),
	0x45: op("EOR", ZeroPage, 3, false, EOR),
	0x55: op("EOR", ZeroPageX, 4, false, EOR),
	0x4D: op("EOR", Absolute, 4, false, EOR),
	0x5D: op("EOR", AbsoluteX, 4, true, EOR),
	0x59: op("EOR", AbsoluteY, 4, true, EOR),
	0x41: op("EOR", IndirectX, 6, false, EOR),
	0x51: op("EOR", IndirectY, 5, true, EOR),

	// INC, INX, INY
	0xE6: op("INC", ZeroPage, 5, false, INC),
	0xF6: op("INC", ZeroPageX, 6, false, INC),
	0xEE: op("INC", Absolute, 6, false, INC),
	0xFE: op("INC", AbsoluteX, 7, false, INC),
	0xE8: op("INX", Implied, 2, false, INX),
	0xC8: op("INY", Implied, 2, false, INY),

	// JMP, JSR
	0x4C: op("JMP", Absolute, 3, false, JMP),
	0x6C: op("JMP", Indirect, 5, false, JMP),
	0x20: op("JSR", Absolute, 6, false, JSR),

	// LDA
	0xA9: op("LDA", Immediate, 2, false, LDA),
	0xA5: op("LDA", ZeroPage, 3, false, LDA),
	0xB5: op("LDA", ZeroPageX, 4, false, LDA),
	0xAD: op("LDA", Absolute, 4, false, LDA),
	0xBD: op("LDA", AbsoluteX, 4, true, LDA),
	0xB9: op("LDA", AbsoluteY, 4, true, LDA),
	0xA1: op("LDA", IndirectX, 6, false, LDA),
	0xB1: op("LDA", IndirectY, 5, true, LDA),

	// LDX
	0xA2: op("LDX", Immediate, 2, false, LDX),
	0xA6: op("LDX", ZeroPage, 3, false, LDX),
	0xB6: op("LDX", ZeroPageY, 4, false, LDX),
	0xAE: op("LDX", Absolute, 4, false, LDX),
	0xBE: op("LDX", AbsoluteY, 4, true, LDX),

	// LDY
	0xA0: op("LDY", Immediate, 2, false, LDY),
	0xA4: op("LDY", ZeroPage, 3, false, LDY),
	0xB4: op("LDY", ZeroPageX, 4, false, LDY),
	0xAC: op("LDY", Absolute, 4, false, LDY),
	0xBC: op("LDY", AbsoluteX, 4, true, LDY),

	// LSR
	0x4A: op("LSR", Accumulator, 2, false, LSR),
	0x46: op("LSR", ZeroPage, 5, false, LSR),
	0x56: op("LSR", ZeroPageX, 6, false, LSR),
	0x4E: op("LSR", Absolute, 6, false, LSR),
	0x5E: op("LSR", AbsoluteX, 7, false, LSR),

	// NOP
	0xEA: op("NOP", Implied, 2, false, NOP),

	// ORA
	0x09: op("ORA", Immediate, 2, false, ORA),
	0x05: op("ORA", ZeroPage, 3, false, ORA),
	0x15: op("ORA", ZeroPageX, 4, false, ORA),
	0x0D: op("ORA", Absolute, 4, false, ORA),
	0x1D: op("ORA", AbsoluteX, 4, true, ORA),
	0x19: op("ORA", AbsoluteY, 4, true, ORA),
	0x01: op("ORA", IndirectX, 6, false, ORA),
	0x11: op("ORA", IndirectY, 5, true, ORA),

	// stack
	0x48: op("PHA", Implied, 3, false, PHA),
	0x08: op("PHP", Implied, 3, false, PHP),
	0x68: op("PLA", Implied, 4, false, PLA),
	0x28: op("PLP", Implied, 4, false, PLP),
	0x9A: op("TXS", Implied, 2, false, TXS),
	0xBA: op("TSX", Implied, 2, false, TSX),

	// ROL
	0x2A: op("ROL", Accumulator, 2, false, ROL),
	0x26: op("ROL", ZeroPage, 5, false, ROL),
	0x36: op("ROL", ZeroPageX, 6, false, ROL),
	0x2E: op("ROL", Absolute, 6, false, ROL),
	0x3E: op("ROL", AbsoluteX, 7, false, ROL),

	// ROR
	0x6A: op("ROR", Accumulator, 2, false, ROR),
	0x66: op("ROR", ZeroPage, 5, false, ROR),
	0x76: op("ROR", ZeroPageX, 6, false, ROR),
	0x6E: op("ROR", Absolute, 6, false, ROR),
	0x7E: op("ROR", AbsoluteX, 7, false, ROR),

	// RTI, RTS
	0x40: op("RTI", Implied, 6, false, RTI),
	0x60: op("RTS", Implied, 6, false, RTS),

	// SBC
	0xE9: op("SBC", Immediate, 2, false, SBC),
	0xE5: op("SBC", ZeroPage, 3, false, SBC),
	0xF5: op("SBC", ZeroPageX, 4, false, SBC),
	0xED: op("SBC", Absolute, 4, false, SBC),
	0xFD: op("SBC", AbsoluteX, 4, true, SBC),
	0xF9: op("SBC", AbsoluteY, 4, true, SBC),
	0xE1: op("SBC", IndirectX, 6, false, SBC),
	0xF1: op("SBC", IndirectY, 5, true, SBC),

	// STA
	0x85: op("STA", ZeroPage, 3, false, STA),
	0x95: op("STA", ZeroPageX, 4, false, STA),
	0x8D: op("STA", Absolute, 4, false, STA),
	0x9D: op("STA", AbsoluteX, 5, false, STA),
	0x99: op("STA", AbsoluteY, 5, false, STA),
	0x81: op("STA", IndirectX, 6, false, STA),
	0x91: op("STA", IndirectY, 6, false, STA),

	// STX, STY
	0x86: op("STX", ZeroPage, 3, false, STX),
	0x96: op("STX", ZeroPageY, 4, false, STX),
	0x8E: op("STX", Absolute, 4, false, STX),
	0x84: op("STY", ZeroPage, 3, false, STY),
	0x94: op("STY", ZeroPageX, 4, false, STY),
	0x8C: op("STY", Absolute, 4, false, STY),

	// register transfers
	0xAA: op("TAX", Implied, 2, false, TAX),
	0x8A: op("TXA", Implied, 2, false, TXA),
	0xA8: op("TAY", Implied, 2, false, TAY),
	0x98: op("TYA", Implied, 2, false, TYA),

	// --- unofficial opcodes exercised by nestest ---

	0xEB: uop("SBC", Immediate, 2, false, SBC), // alias of the official SBC

	// unofficial NOPs
	0x1A: uop("NOP", Implied, 2, false, NOP),
	0x3A: uop("NOP", Implied, 2, false, NOP),
	0x5A: uop("NOP", Implied, 2, false, NOP),
	0x7A: uop("NOP", Implied, 2, false, NOP),
	0xDA: uop("NOP", Implied, 2, false, NOP),
	0xFA: uop("NOP", Implied, 2, false, NOP),
	0x80: uop("NOP", Immediate, 2, false, NOP),
	0x82: uop("NOP", Immediate, 2, false, NOP),
	0x89: uop("NOP", Immediate, 2, false, NOP),
	0xC2: uop("NOP", Immediate, 2, false, NOP),
	0xE2: uop("NOP", Immediate, 2, false, NOP),
	0x04: uop("NOP", ZeroPage, 3, false, NOP),
	0x44: uop("NOP", ZeroPage, 3, false, NOP),
	0x64: uop("NOP", ZeroPage, 3, false, NOP),
	0x14: uop("NOP", ZeroPageX, 4, false, NOP),
	0x34: uop("NOP", ZeroPageX, 4, false, NOP),
	0x54: uop("NOP", ZeroPageX, 4, false, NOP),
	0x74: uop("NOP", ZeroPageX, 4, false, NOP),
	0xD4: uop("NOP", ZeroPageX, 4, false, NOP),
	0xF4: uop("NOP", ZeroPageX, 4, false, NOP),
	0x0C: uop("NOP", Absolute, 4, false, NOP),
	0x1C: uop("NOP", AbsoluteX, 4, true, NOP),
	0x3C: uop("NOP", AbsoluteX, 4, true, NOP),
	0x5C: uop("NOP", AbsoluteX, 4, true, NOP),
	0x7C: uop("NOP", AbsoluteX, 4, true, NOP),
	0xDC: uop("NOP", AbsoluteX, 4, true, NOP),
	0xFC: uop("NOP", AbsoluteX, 4, true, NOP),

	// LAX
	0xA7: uop("LAX", ZeroPage, 3, false, LAX),
	0xB7: uop("LAX", ZeroPageY, 4, false, LAX),
	0xAF: uop("LAX", Absolute, 4, false, LAX),
	0xBF: uop("LAX", AbsoluteY, 4, true, LAX),
	0xA3: uop("LAX", IndirectX, 6, false, LAX),
	0xB3: uop("LAX", IndirectY, 5, true, LAX),

	// SAX
	0x87: uop("SAX", ZeroPage, 3, false, SAX),
	0x97: uop("SAX", ZeroPageY, 4, false, SAX),
	0x8F: uop("SAX", Absolute, 4, false, SAX),
	0x83: uop("SAX", IndirectX, 6, false, SAX),

	// DCP
	0xC7: uop("DCP", ZeroPage, 5, false, DCP),
	0xD7: uop("DCP", ZeroPageX, 6, false, DCP),
	0xCF: uop("DCP", Absolute, 6, false, DCP),
	0xDF: uop("DCP", AbsoluteX, 7, false, DCP),
	0xDB: uop("DCP", AbsoluteY, 7, false, DCP),
	0xC3: uop("DCP", IndirectX, 8, false, DCP),
	0xD3: uop("DCP", IndirectY, 8, false, DCP),

	// ISB (ISC)
	0xE7: uop("ISB", ZeroPage, 5, false, ISB),
	0xF7: uop("ISB", ZeroPageX, 6, false, ISB),
	0xEF: uop("ISB", Absolute, 6, false, ISB),
	0xFF: uop("ISB", AbsoluteX, 7, false, ISB),
	0xFB: uop("ISB", AbsoluteY, 7, false, ISB),
	0xE3: uop("ISB", IndirectX, 8, false, ISB),
	0xF3: uop("ISB", IndirectY, 8, false, ISB),

	// SLO
	0x07: uop("SLO", ZeroPage, 5, false, SLO),
	0x17: uop("SLO", ZeroPageX, 6, false, SLO),
	0x0F: uop("SLO", Absolute, 6, false, SLO),
	0x1F: uop("SLO", AbsoluteX, 7, false, SLO),
	0x1B: uop("SLO", AbsoluteY, 7, false, SLO),
	0x03: uop("SLO", IndirectX, 8, false, SLO),
	0x13: uop("SLO", IndirectY, 8, false, SLO),

	// RLA
	0x27: uop("RLA", ZeroPage, 5, false, RLA),
	0x37: uop("RLA", ZeroPageX, 6, false, RLA),
	0x2F: uop("RLA", Absolute, 6, false, RLA),
	0x3F: uop("RLA", AbsoluteX, 7, false, RLA),
	0x3B: uop("RLA", AbsoluteY, 7, false, RLA),
	0x23: uop("RLA", IndirectX, 8, false, RLA),
	0x33: uop("RLA", IndirectY, 8, false, RLA),

	// SRE
	0x47: uop("SRE", ZeroPage, 5, false, SRE),
	0x57: uop("SRE", ZeroPageX, 6, false, SRE),
	0x4F: uop("SRE", Absolute, 6, false, SRE),
	0x5F: uop("SRE", AbsoluteX, 7, false, SRE),
	0x5B: uop("SRE", AbsoluteY, 7, false, SRE),
	0x43: uop("SRE", IndirectX, 8, false, SRE),
	0x53: uop("SRE", IndirectY, 8, false, SRE),

	// RRA
	0x67: uop("RRA", ZeroPage, 5, false, RRA),
	0x77: uop("RRA", ZeroPageX, 6, false, RRA),
	0x6F: uop("RRA", Absolute, 6, false, RRA),
	0x7F: uop("RRA", AbsoluteX, 7, false, RRA),
	0x7B: uop("RRA", AbsoluteY, 7, false, RRA),
	0x63: uop("RRA", IndirectX, 8, false, RRA),
	0x73: uop("RRA", IndirectY, 8, false, RRA),
}
