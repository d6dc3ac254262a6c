package bus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/assert"

	"gones/internal/apu"
	"gones/internal/cartridge"
	"gones/internal/input"
	"gones/internal/ppu"
)

func buildINES(prgBanks, chrBanks int) []byte {
	data := make([]byte, 16+prgBanks*16384+chrBanks*8192)
	copy(data[0:4], []byte("NES\x1A"))
	data[4] = byte(prgBanks)
	data[5] = byte(chrBanks)
	return data
}

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	b := New(ppu.New(), apu.New(), input.NewPorts())
	cart, err := cartridge.LoadFromBytes(buildINES(1, 1))
	require.NoError(t, err)
	b.AttachCartridge(cart)
	return b
}

func TestWRAMMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x0007, 0x5A)
	for _, mirror := range []uint16{0x0807, 0x1007, 0x1807} {
		assert.Equal(t, uint8(0x5A), b.Read(mirror))
	}
}

func TestOAMDMA_CopiesWRAMIntoOAM(t *testing.T) {
	b := newTestBus(t)
	for i := 0; i < 256; i++ {
		b.Write(0x0200+uint16(i), uint8(i))
	}
	b.Write(0x4014, 0x02)

	for i := 0; i < 256; i++ {
		b.PPU.WriteRegister(0x2003, uint8(i))
		assert.Equal(t, uint8(i), b.PPU.ReadRegister(0x2004))
	}
	assert.Contains(t, []uint64{513, 514}, b.TakeDMAStall())
}

func TestControllerPolling(t *testing.T) {
	b := newTestBus(t)
	b.Ports.Controller1.SetButtons([8]bool{true, false, false, true})
	b.Write(0x4016, 1)
	b.Write(0x4016, 0)

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	for _, w := range want {
		assert.Equal(t, w, b.Read(0x4016))
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x2000, 0x80)
	assert.Equal(t, b.PPU.ReadRegister(0x2002), b.Read(0x200A))
}

func TestRead16Bug_PageWrap(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x01FF, 0x00)
	b.Write(0x0100, 0x40)
	b.Write(0x0200, 0x99)
	assert.Equal(t, uint16(0x4000), b.Read16Bug(0x01FF))
}
