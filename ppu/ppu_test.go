package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPPUCTRLDecode(t *testing.T) {
	p := New()
	p.WriteRegister(0, 0x80) // generate NMI
	assert.True(t, p.Ctrl.GenerateNMI)
	assert.False(t, p.Ctrl.VRAMIncrement32)
}

func TestPPUSTATUSReadClearsVBlankAndLatch(t *testing.T) {
	p := New()
	p.Status |= statusVBlank
	p.WriteRegister(6, 0x20) // first PPUADDR write sets the latch
	v := p.ReadRegister(2)
	assert.NotZero(t, v&statusVBlank)
	assert.Zero(t, p.Status&statusVBlank)
	assert.False(t, p.addrLatch)
}

func TestOAMDATARoundTrip(t *testing.T) {
	p := New()
	p.WriteRegister(3, 0x10) // OAMADDR
	p.WriteRegister(4, 0x99) // OAMDATA
	assert.Equal(t, byte(0x99), p.OAM[0x10])
	assert.Equal(t, byte(0x11), p.OAMAddr)
}

func TestPPUADDRLatchToggle(t *testing.T) {
	p := New()
	p.WriteRegister(6, 0x20) // high byte
	p.WriteRegister(6, 0x00) // low byte -> vramAddr = 0x2000
	p.WriteRegister(7, 0x77)
	assert.Equal(t, byte(0x77), p.VRAM[0x2000])
}

func TestPPUDATAReadIsBuffered(t *testing.T) {
	p := New()
	p.VRAM[0x2000] = 0x42
	p.WriteRegister(6, 0x20)
	p.WriteRegister(6, 0x00)
	first := p.ReadRegister(7)
	assert.Equal(t, byte(0), first) // stale buffer on first read
	second := p.ReadRegister(7)
	assert.Equal(t, byte(0x42), second)
}

func TestVBlankSetAtScanline241Dot1(t *testing.T) {
	p := New()
	p.Scanline = 241
	p.Dot = 0
	p.Tick(1)
	assert.NotZero(t, p.Status&statusVBlank)
}

func TestVBlankNMIPending(t *testing.T) {
	p := New()
	p.Ctrl.GenerateNMI = true
	p.Scanline = 241
	p.Dot = 0
	p.Tick(1)
	assert.True(t, p.NMIPending)
}

func TestDotWrapsIntoNextScanline(t *testing.T) {
	p := New()
	p.Scanline = 0
	p.Dot = dotsPerScanline - 1
	p.Tick(1)
	assert.Equal(t, 0, p.Dot)
	assert.Equal(t, 1, p.Scanline)
}

func TestOAMDMAWritesSequentially(t *testing.T) {
	p := New()
	var page [256]byte
	for i := range page {
		page[i] = byte(i)
	}
	p.WriteOAMDMA(page)
	assert.Equal(t, byte(255), p.OAM[255])
}
