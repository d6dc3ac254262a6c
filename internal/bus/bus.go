// Package bus implements the CPU-side address decode that wires WRAM, the
// PPU register file, OAM-DMA, the controller ports, the APU register stub,
// and the cartridge mapper into the single 16-bit address space the CPU
// sees through cpu.MemoryInterface.
package bus

import (
	"gones/internal/apu"
	"gones/internal/cartridge"
	"gones/internal/input"
	"gones/internal/ppu"
)

// Bus is the CPU-side decoder described in SPEC_FULL.md §4.2. It holds no
// reference back to the CPU; the PPU and APU it owns likewise never call
// back into it except through the narrow NMI-request callback the PPU is
// given.
type Bus struct {
	ram [0x0800]uint8

	PPU *ppu.PPU
	APU *apu.APU
	Ports *input.Ports

	cart *cartridge.Cartridge

	cpuCycles      uint64
	dmaStallCycles uint64
	nmiPending     bool
}

// New wires a bus around an already-constructed PPU, APU, and controller
// ports, and wires the PPU's NMI-request callback to the bus's own
// edge-triggered nmiPending flag. AttachCartridge must be called before any
// PRG/CHR address is touched.
func New(p *ppu.PPU, a *apu.APU, ports *input.Ports) *Bus {
	b := &Bus{PPU: p, APU: a, Ports: ports}
	p.SetNMICallback(b.requestNMI)
	return b
}

func (b *Bus) requestNMI() { b.nmiPending = true }

// TakeNMI reports and clears a pending NMI request; the system scheduler
// consumes this strictly between CPU instructions (§4.5).
func (b *Bus) TakeNMI() bool {
	pending := b.nmiPending
	b.nmiPending = false
	return pending
}

// AttachCartridge wires the cartridge's mapper into PRG/SRAM dispatch and
// its CHR side + mirroring mode into the PPU.
func (b *Bus) AttachCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.PPU.SetCartridge(cart, cart.Mirror())
}

// Reset clears WRAM and the cycle/DMA bookkeeping. The PPU/APU/Ports reset
// themselves; the system scheduler calls all four.
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0
	}
	b.cpuCycles = 0
	b.dmaStallCycles = 0
	b.nmiPending = false
}

// AdvanceCPUCycles accumulates the running CPU cycle count the OAM-DMA
// odd/even stall calculation reads; the system calls this once per
// CPU.Step().
func (b *Bus) AdvanceCPUCycles(n uint64) { b.cpuCycles += n }

// TakeDMAStall returns and clears any OAM-DMA stall cycles queued by a
// write to $4014, for the system scheduler to burn as CPU-idle PPU ticks.
func (b *Bus) TakeDMAStall() uint64 {
	stall := b.dmaStallCycles
	b.dmaStallCycles = 0
	return stall
}

// Read decodes one CPU-visible address, per §4.2.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address < 0x2000:
		return b.ram[address%0x0800]
	case address < 0x4000:
		return b.PPU.ReadRegister(0x2000 + address%8)
	case address == 0x4015:
		return b.APU.ReadRegister(address)
	case address == 0x4016, address == 0x4017:
		return b.Ports.Read(address)
	case address < 0x4018:
		return b.APU.ReadRegister(address)
	case address < 0x4020:
		return 0
	case b.cart == nil:
		return 0
	default:
		return b.cart.ReadPRG(address)
	}
}

// Write decodes one CPU-visible address for a write, per §4.2.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		b.ram[address%0x0800] = value
	case address < 0x4000:
		b.PPU.WriteRegister(0x2000+address%8, value)
	case address == 0x4014:
		b.triggerOAMDMA(value)
	case address == 0x4016:
		b.Ports.Write(address, value)
	case address == 0x4017:
		b.APU.WriteRegister(address, value)
	case address < 0x4018:
		b.APU.WriteRegister(address, value)
	case address < 0x4020:
		// APU/IO test registers: unused, write is a no-op.
	case b.cart != nil:
		b.cart.WritePRG(address, value)
	}
}

// Read16 reads a little-endian 16-bit value with no wrap quirk.
func (b *Bus) Read16(address uint16) uint16 {
	low := uint16(b.Read(address))
	high := uint16(b.Read(address + 1))
	return low | high<<8
}

// Read16Bug reproduces the page-wrap variant JMP-indirect and the
// zero-page-wrapped indexed addressing modes rely on: the high byte comes
// from the same page as the low byte.
func (b *Bus) Read16Bug(address uint16) uint16 {
	low := uint16(b.Read(address))
	wrapped := (address & 0xFF00) | ((address + 1) & 0x00FF)
	high := uint16(b.Read(wrapped))
	return low | high<<8
}

// triggerOAMDMA copies 256 bytes starting at page<<8 into OAM starting at
// the current OAMADDR, wrapping mod 256, and queues the 513/514-cycle CPU
// stall depending on whether the triggering write landed on an odd cycle.
func (b *Bus) triggerOAMDMA(page uint8) {
	base := uint16(page) << 8
	start := b.PPU.OAMAddr()
	for i := 0; i < 256; i++ {
		data := b.Read(base + uint16(i))
		b.PPU.WriteOAM(start+uint8(i), data)
	}

	cycles := uint64(513)
	if b.cpuCycles%2 == 1 {
		cycles = 514
	}
	b.dmaStallCycles += cycles
}
