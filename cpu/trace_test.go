package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTraceMatchesNestestFirstLine reproduces the first line of
// nestest.log, the canonical byte-exact trace fixture for this format:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
func TestTraceMatchesNestestFirstLine(t *testing.T) {
	c := newTestCpu()
	c.Reset()
	c.PC = 0xC000
	c.SP = 0xFD
	c.Cycles = 7
	c.Bus.Ppu.Scanline = 0
	c.Bus.Ppu.Dot = 21

	c.Write(0xC000, 0x4C) // JMP absolute
	c.Write(0xC001, 0xF5)
	c.Write(0xC002, 0xC5)

	line, err := Trace(c)
	require.NoError(t, err)
	assert.Equal(t,
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7",
		line,
	)
}

func TestTraceMarksUnofficialOpcode(t *testing.T) {
	c := newTestCpu()
	c.Reset()
	c.PC = 0x0300
	c.Write(0x0300, 0xA7) // LAX zero page, unofficial
	c.Write(0x0301, 0x10)

	line, err := Trace(c)
	require.NoError(t, err)
	assert.Contains(t, line, "*LAX")
}

func TestTraceImmediateFormat(t *testing.T) {
	c := newTestCpu()
	c.Reset()
	c.PC = 0x0300
	c.Write(0x0300, 0xA9) // LDA #$42
	c.Write(0x0301, 0x42)

	line, err := Trace(c)
	require.NoError(t, err)
	assert.Contains(t, line, "LDA #$42")
}
