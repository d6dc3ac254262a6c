package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildINES(prgBanks, chrBanks int, flags6, flags7 byte, prgFill byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("NES\x1a")
	buf.WriteByte(byte(prgBanks))
	buf.WriteByte(byte(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // PRGRAMSize, TVSystem1/2, padding(5)
	prg := make([]byte, prgBanks*16384)
	for i := range prg {
		prg[i] = prgFill
	}
	buf.Write(prg)
	buf.Write(make([]byte, chrBanks*8192))
	return buf.Bytes()
}

func TestLoadFromReader_ValidMapper0(t *testing.T) {
	data := buildINES(1, 1, 0x00, 0x00, 0xAB)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), cart.MapperID())
	assert.Equal(t, MirrorHorizontal, cart.Mirror())
	assert.Equal(t, uint8(0xAB), cart.ReadPRG(0x8000))
	// 16KB PRG mirrors into the upper half of the 32KB window.
	assert.Equal(t, uint8(0xAB), cart.ReadPRG(0xC000))
}

func TestLoadFromReader_VerticalMirroring(t *testing.T) {
	data := buildINES(1, 1, 0x01, 0x00, 0x00)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, MirrorVertical, cart.Mirror())
}

func TestLoadFromReader_ZeroCHRIsRAM(t *testing.T) {
	data := buildINES(1, 0, 0x00, 0x00, 0x00)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	cart.WriteCHR(0x0010, 0x77)
	assert.Equal(t, uint8(0x77), cart.ReadCHR(0x0010))
}

func TestLoadFromReader_BadMagic(t *testing.T) {
	data := buildINES(1, 1, 0, 0, 0)
	data[0] = 'X'
	_, err := LoadFromReader(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrMalformedROM)
}

func TestLoadFromReader_ZeroPRGSize(t *testing.T) {
	data := buildINES(1, 1, 0, 0, 0)
	data[4] = 0
	_, err := LoadFromReader(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrMalformedROM)
}

func TestLoadFromReader_UnsupportedMapper(t *testing.T) {
	// mapper id 1 (flags6 high nibble = 1)
	data := buildINES(1, 1, 0x10, 0x00, 0)
	_, err := LoadFromReader(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}

func TestLoadFromReader_Truncated(t *testing.T) {
	data := buildINES(2, 1, 0, 0, 0)
	truncated := data[:len(data)-100]
	_, err := LoadFromReader(bytes.NewReader(truncated))
	assert.ErrorIs(t, err, ErrTruncatedROM)
}

func TestMapper000_SRAM(t *testing.T) {
	data := buildINES(1, 1, 0, 0, 0)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	cart.WritePRG(0x6010, 0x42)
	assert.Equal(t, uint8(0x42), cart.ReadPRG(0x6010))
	// Writes to ROM space are ignored, not panics.
	cart.WritePRG(0x8000, 0xFF)
}
