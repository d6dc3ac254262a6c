package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatMemory is a trivial 64KB MemoryInterface for isolated CPU tests.
type flatMemory struct {
	ram [0x10000]uint8
}

func (m *flatMemory) Read(address uint16) uint8        { return m.ram[address] }
func (m *flatMemory) Write(address uint16, value uint8) { m.ram[address] = value }

func newTestCPU() (*CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.ram[resetVector] = 0x00
	mem.ram[resetVector+1] = 0x80
	c := New(mem)
	c.Reset()
	return c, mem
}

func TestReset_LoadsVectorAndPowerUpState(t *testing.T) {
	c, _ := newTestCPU()
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.True(t, c.I)
	assert.False(t, c.C)
}

func TestLDA_Immediate_SetsZeroAndNegative(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xA9 // LDA #$00
	mem.ram[0x8001] = 0x00
	cycles := c.Step()
	assert.Equal(t, uint64(2), cycles)
	assert.True(t, c.Z)
	assert.False(t, c.N)

	c.PC = 0x8000
	mem.ram[0x8000] = 0xA9
	mem.ram[0x8001] = 0x80
	c.Step()
	assert.False(t, c.Z)
	assert.True(t, c.N)
}

func TestADC_OverflowFlag(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x7F
	mem.ram[0x8000] = 0x69 // ADC #$01
	mem.ram[0x8001] = 0x01
	c.Step()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.V, "signed overflow from 0x7F+0x01 should set V")
	assert.True(t, c.N)
	assert.False(t, c.C)
}

func TestSBC_BorrowClearsCarry(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x00
	c.C = true // no borrow going in
	mem.ram[0x8000] = 0xE9 // SBC #$01
	mem.ram[0x8001] = 0x01
	c.Step()
	assert.Equal(t, uint8(0xFF), c.A)
	assert.False(t, c.C, "0 - 1 borrows, clearing carry")
}

func TestPHP_PLP_StatusRoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	c.C, c.Z, c.N = true, true, false
	mem.ram[0x8000] = 0x08 // PHP
	c.Step()

	pushed := mem.ram[0x01FD]
	assert.Equal(t, uint8(0x30), pushed&0x30, "PHP must set both B and unused bits in the pushed copy")

	c.C = false
	mem.ram[0x8001] = 0x28 // PLP
	c.Step()
	assert.True(t, c.C)
	assert.False(t, c.B, "B reads back clear after PLP")
}

func TestJMP_IndirectPageWrapBug(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x6C // JMP ($30FF)
	mem.ram[0x8001] = 0xFF
	mem.ram[0x8002] = 0x30
	mem.ram[0x30FF] = 0x00
	mem.ram[0x3000] = 0x40 // bug: high byte fetched from 0x3000, not 0x3100
	mem.ram[0x3100] = 0x99
	c.Step()
	require.Equal(t, uint16(0x4000), c.PC)
}

func TestSTA_AbsoluteX_NeverDiscountsPageCross(t *testing.T) {
	c, mem := newTestCPU()
	c.X = 0xFF
	c.A = 0x42
	mem.ram[0x8000] = 0x9D // STA $0001,X -> crosses into page 1
	mem.ram[0x8001] = 0x01
	mem.ram[0x8002] = 0x00
	cycles := c.Step()
	assert.Equal(t, uint64(5), cycles, "STA absolute,X always pays the indexed cost")
	assert.Equal(t, uint8(0x42), mem.ram[0x0100])
}

func TestLDA_AbsoluteX_PageCrossAddsCycle(t *testing.T) {
	c, mem := newTestCPU()
	c.X = 0xFF
	mem.ram[0x8000] = 0xBD // LDA $0001,X
	mem.ram[0x8001] = 0x01
	mem.ram[0x8002] = 0x00
	mem.ram[0x0100] = 0x55
	cycles := c.Step()
	assert.Equal(t, uint64(5), cycles)
	assert.Equal(t, uint8(0x55), c.A)
}

func TestNMI_NotGatedByIFlag(t *testing.T) {
	c, mem := newTestCPU()
	c.I = true
	mem.ram[nmiVector] = 0x00
	mem.ram[nmiVector+1] = 0x90
	c.NMI()
	assert.Equal(t, uint16(0x9000), c.PC)
}

func TestIRQ_GatedByIFlag(t *testing.T) {
	c, mem := newTestCPU()
	c.I = true
	c.SetIRQ(true)
	pc := c.PC
	c.ProcessPendingInterrupts()
	assert.Equal(t, pc, c.PC, "IRQ held while I is set")

	c.I = false
	mem.ram[irqVector] = 0x00
	mem.ram[irqVector+1] = 0xA0
	c.ProcessPendingInterrupts()
	assert.Equal(t, uint16(0xA000), c.PC)
}

func TestBRK_PushesPCPlus2(t *testing.T) {
	c, mem := newTestCPU()
	c.PC = 0x8000
	mem.ram[0x8000] = 0x00 // BRK
	mem.ram[irqVector] = 0x00
	mem.ram[irqVector+1] = 0xB0
	c.Step()
	assert.Equal(t, uint16(0xB000), c.PC)
	assert.True(t, c.I)
	// 0x8000 + 2 = 0x8002 is pushed high byte first from SP=0xFD.
	assert.Equal(t, uint8(0x80), mem.ram[0x01FD])
	assert.Equal(t, uint8(0x02), mem.ram[0x01FC])
}
