package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nes6502core/cartridge"
	"nes6502core/ppu"
)

type fakeMapper struct{ mem [0x8000]byte }

func (m *fakeMapper) ReadPRG(addr uint16) byte     { return m.mem[addr-0x8000] }
func (m *fakeMapper) WritePRG(addr uint16, v byte) { m.mem[addr-0x8000] = v }
func (m *fakeMapper) ReadCHR(addr uint16) byte      { return 0 }
func (m *fakeMapper) WriteCHR(addr uint16, v byte)  {}

func newTestBus() *Bus {
	return NewBus(ppu.New(), &cartridge.Cartridge{Mapper: &fakeMapper{}})
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0800))
	assert.Equal(t, byte(0x42), b.Read(0x1000))
	assert.Equal(t, byte(0x42), b.Read(0x1800))
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x2000, 0x80) // PPUCTRL
	assert.True(t, b.Ppu.Ctrl.GenerateNMI)
	b.Write(0x2008, 0x00) // mirror of $2000
	assert.False(t, b.Ppu.Ctrl.GenerateNMI)
}

func TestCartridgeSpaceDelegation(t *testing.T) {
	b := newTestBus()
	b.Write(0x8000, 0x99)
	assert.Equal(t, byte(0x99), b.Read(0x8000))
}

func TestAPURegionIsOpenBus(t *testing.T) {
	b := newTestBus()
	assert.Equal(t, byte(0), b.Read(0x4000))
}

func TestOAMDMA(t *testing.T) {
	b := newTestBus()
	for i := 0; i < 256; i++ {
		b.RAM[i] = byte(i)
	}
	b.Write(0x4014, 0x00) // DMA from page $00
	assert.Equal(t, 513, b.DMACycles)
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), b.Ppu.OAM[i])
	}
}
