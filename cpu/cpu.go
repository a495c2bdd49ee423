// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES (the 2A03, which is a 6502 core with the decimal mode disabled).
package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"nes6502core/mem"
)

// https://www.nesdev.org/wiki/CPU
// https://www.nesdev.org/wiki/CPU_ALL
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// The Cpu has no memory of its own beyond its registers. It interfaces
// with a Bus that provides the full 64 KiB address space.
type Cpu struct {
	Bus *mem.Bus

	Flags StatusFlags

	A  byte // accumulator
	X  byte
	Y  byte
	SP byte // stack pointer; stack lives at $0100-$01FF

	PC uint16

	// Cycles is the CPU's running total cycle count, used by the
	// tracer's CYC field and to keep the PPU's dot counter in sync.
	Cycles uint64

	// Halted is set by Step when the byte at PC has no opcode table
	// entry; the core does not attempt to recover from this.
	Halted bool
}

// New returns a Cpu wired to bus, with registers in their power-on
// state. Reset still must be called to load the program counter from
// the reset vector.
func New(bus *mem.Bus) *Cpu {
	c := &Cpu{Bus: bus}
	c.Flags.FromByte(0x24)
	c.SP = 0xFD
	return c
}

// Read reads one byte from the bus.
func (c *Cpu) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Read16 reads a little-endian word from the bus.
func (c *Cpu) Read16(addr uint16) uint16 {
	lo := uint16(c.Read(addr))
	hi := uint16(c.Read(addr + 1))
	return hi<<8 | lo
}

// Write writes one byte to the bus.
func (c *Cpu) Write(addr uint16, data byte) { c.Bus.Write(addr, data) }

// LoadProgram reads a whitespace-separated hex-string program and
// places it at addr in RAM, for use by unit tests.
func (c *Cpu) LoadProgram(program []byte, addr uint16) {
	for i, s := range strings.Fields(string(program)) {
		b, err := strconv.ParseInt(s, 16, 16)
		if err != nil {
			panic(err)
		}
		c.Bus.RAM[(addr+uint16(i))&0x07FF] = byte(b)
	}
}

func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

func (c *Cpu) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// Reset puts the Cpu into its power-on/reset state and loads PC from
// the reset vector at $FFFC/$FFFD. The reset sequence costs 7 CPU
// cycles on real hardware; the Ppu (which powers on at scanline 0,
// dot 0) is ticked the matching 21 dots so the very first trace line
// reads PPU:0,21, matching nestest.log's origin.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Flags.FromByte(0x24)
	c.PC = c.Read16(0xFFFC)
	c.Cycles = 7
	c.Bus.Ppu.Tick(3 * 7)
}

// NMI services a non-maskable interrupt: it may be invoked between
// Step calls (never mid-instruction).
func (c *Cpu) NMI() {
	c.push16(c.PC)
	c.push(c.Flags.ToByte(false))
	c.Flags.DisableInterrupt = true
	c.PC = c.Read16(0xFFFA)
	c.Cycles += 7
	c.Bus.Ppu.Tick(3 * 7)
}

// IRQ services a maskable interrupt, ignored if interrupts are
// disabled. May be invoked between Step calls.
func (c *Cpu) IRQ() {
	if c.Flags.DisableInterrupt {
		return
	}
	c.push16(c.PC)
	c.push(c.Flags.ToByte(false))
	c.Flags.DisableInterrupt = true
	c.PC = c.Read16(0xFFFE)
	c.Cycles += 7
	c.Bus.Ppu.Tick(3 * 7)
}

func (c *Cpu) fetch(b byte) (Opcode, error) {
	op, ok := opcodeTable[b]
	if !ok {
		return Opcode{}, fmt.Errorf("unknown opcode: $%02X at $%04X", b, c.PC)
	}
	return op, nil
}

// Step executes exactly one instruction: fetch, resolve its operand
// address, execute it, and advance Cycles by the instruction's cost
// (including any page-cross or branch-taken penalty). It then ticks
// the bus-held Ppu by 3x that cycle delta, since the PPU runs at 3
// dots per CPU cycle and Step is the only place that knows the
// delta a given instruction actually cost. It returns an error if the
// byte at PC has no opcode table entry.
func (c *Cpu) Step() error {
	opcodeByte := c.Read(c.PC)
	op, err := c.fetch(opcodeByte)
	if err != nil {
		c.Halted = true
		return err
	}

	operandPC := c.PC + 1
	addr, crossed := resolveAddress(c, op.Mode, operandPC)

	c.PC += uint16(op.Length)

	extra := op.Handler(c, addr, op.Mode)

	delta := uint64(op.BaseCycles) + uint64(extra)
	if op.ExtraOnPageCross && crossed {
		delta++
	}

	// An OAM-DMA triggered by this instruction's own write (to
	// $4014) is folded into the triggering instruction's delta
	// rather than spent as a phantom following Step call, so the
	// trace/cycle/PPU accounting never drifts out of step with the
	// instruction that actually caused it.
	if c.Bus.DMACycles > 0 {
		delta += uint64(c.Bus.DMACycles)
		c.Bus.DMACycles = 0
	}

	c.Cycles += delta
	c.Bus.Ppu.Tick(int(3 * delta))

	return nil
}
