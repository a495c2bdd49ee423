package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildINES assembles a minimal well-formed iNES v1 image: a 16-byte
// header followed by prgBanks*16KiB of PRG-ROM and chrBanks*8KiB of
// CHR-ROM (possibly zero).
func buildINES(mapperLo, mapperHi byte, prgBanks, chrBanks byte, mirrorVertical bool) []byte {
	hdr := make([]byte, 16)
	copy(hdr, magic[:])
	hdr[4] = prgBanks
	hdr[5] = chrBanks
	flags6 := mapperLo << 4
	if mirrorVertical {
		flags6 |= 0x01
	}
	hdr[6] = flags6
	hdr[7] = mapperHi << 4

	data := append([]byte{}, hdr...)
	data = append(data, make([]byte, int(prgBanks)*prgBankSize)...)
	data = append(data, make([]byte, int(chrBanks)*chrBankSize)...)
	return data
}

func TestLoadValidNROM(t *testing.T) {
	data := buildINES(0, 0, 1, 1, false)
	data[16] = 0xAB // first PRG byte

	cart, err := Load("test.nes", data)
	require.NoError(t, err)
	assert.Equal(t, prgBankSize, len(cart.PRG))
	assert.Equal(t, byte(0xAB), cart.PRG[0])
	assert.False(t, cart.ChrRAM)
	assert.Equal(t, MirrorHorizontal, cart.Mirror)
}

func TestLoadVerticalMirroring(t *testing.T) {
	data := buildINES(0, 0, 1, 0, true)
	cart, err := Load("test.nes", data)
	require.NoError(t, err)
	assert.Equal(t, MirrorVertical, cart.Mirror)
	assert.True(t, cart.ChrRAM)
	assert.Equal(t, chrBankSize, len(cart.CHR))
}

func TestRejectsBadMagic(t *testing.T) {
	data := buildINES(0, 0, 1, 1, false)
	data[0] = 'X'
	_, err := Load("bad.nes", data)
	assert.Error(t, err)
}

func TestRejectsUnsupportedMapper(t *testing.T) {
	data := buildINES(1, 0, 1, 1, false) // mapper 1 (MMC1)
	_, err := Load("mmc1.nes", data)
	assert.Error(t, err)
}

func TestRejectsNES20(t *testing.T) {
	data := buildINES(0, 0, 1, 1, false)
	data[7] = (data[7] &^ 0x0C) | 0x08
	_, err := Load("nes20.nes", data)
	assert.Error(t, err)
}

func TestNROMMirrorsSingleBank(t *testing.T) {
	data := buildINES(0, 0, 1, 1, false)
	data[16] = 0x55
	cart, err := Load("test.nes", data)
	require.NoError(t, err)

	assert.Equal(t, byte(0x55), cart.Mapper.ReadPRG(0x8000))
	assert.Equal(t, byte(0x55), cart.Mapper.ReadPRG(0xC000))
}

func TestTruncatedFileRejected(t *testing.T) {
	data := buildINES(0, 0, 2, 0, false)
	data = data[:len(data)-1] // drop the last PRG byte
	_, err := Load("short.nes", data)
	assert.Error(t, err)
}
