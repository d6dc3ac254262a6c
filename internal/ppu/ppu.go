// Package ppu implements the NES Picture Processing Unit (2C02): its eight
// memory-mapped registers, VRAM/OAM/palette storage, and a simplified
// full-frame renderer that draws the completed picture once per frame at the
// VBlank boundary rather than dot-by-dot.
package ppu

import "gones/internal/cartridge"

// Cartridge is the narrow CHR-side seam the PPU reads/writes pattern data
// through; internal/cartridge.Cartridge satisfies it.
type Cartridge interface {
	ReadCHR(address uint16) uint8
	WriteCHR(address uint16, value uint8)
}

const (
	ctrlNMIEnable      = 0x80
	ctrlSpriteHeight   = 0x20
	ctrlBGPatternTable = 0x10
	ctrlSpritePattern  = 0x08
	ctrlIncrement32    = 0x04

	statusVBlank   = 0x80
	statusSprite0  = 0x40
	statusOverflow = 0x20

	frameWidth  = 256
	frameHeight = 240
)

// PPU is the 2C02. It owns VRAM, OAM, and the palette directly; it never
// reaches back into the CPU, only into an attached NMI callback the bus
// supplies (see System, §4.5).
type PPU struct {
	ctrl, mask, status uint8
	oamAddr            uint8

	v, t uint16
	x    uint8
	w    bool

	readBuffer uint8

	vram    [0x1000]uint8 // up to 4 logical nametables, mirroring-selected
	palette [32]uint8
	oam     [256]uint8

	cart      Cartridge
	mirroring cartridge.MirrorMode

	Line    int // 0..=261
	subTick int // 0..=2, three Tick calls advance Line by one

	frameBuffer [frameWidth * frameHeight * 4]byte // RGBA

	requestNMI func()
}

// New returns a PPU with no cartridge attached; call SetCartridge before
// rendering anything meaningful.
func New() *PPU {
	p := &PPU{}
	p.Reset()
	return p
}

// SetCartridge wires the CHR-side mapper and the mirroring mode it reports.
func (p *PPU) SetCartridge(cart Cartridge, mirroring cartridge.MirrorMode) {
	p.cart = cart
	p.mirroring = mirroring
}

// SetNMICallback wires the edge-triggered NMI request the bus consumes
// between CPU instructions (§4.5). The PPU never calls the CPU directly.
func (p *PPU) SetNMICallback(callback func()) { p.requestNMI = callback }

// Reset restores power-up state.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t, p.x, p.w = 0, 0, 0, false
	p.readBuffer = 0
	p.Line = 0
	p.subTick = 0
	for i := range p.oam {
		p.oam[i] = 0
	}
	for i := range p.frameBuffer {
		p.frameBuffer[i] = 0
	}
}

// FrameBuffer returns the borrowed RGBA pixel view; the next RunFrame
// mutates it in place (§6).
func (p *PPU) FrameBuffer() []byte { return p.frameBuffer[:] }

// ReadRegister reads one of the eight CPU-visible registers at $2000-$2007.
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch address % 8 {
	case 2:
		status := p.status
		p.status &^= statusVBlank
		p.w = false
		return status
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		return p.readPPUData()
	default:
		return p.status & 0x1F
	}
}

// WriteRegister writes one of the eight CPU-visible registers.
func (p *PPU) WriteRegister(address uint16, value uint8) {
	switch address % 8 {
	case 0:
		p.ctrl = value
		p.t = (p.t & 0xF3FF) | ((uint16(value) & 0x03) << 10)
		if p.ctrl&ctrlNMIEnable != 0 && p.status&statusVBlank != 0 && p.requestNMI != nil {
			p.requestNMI()
		}
	case 1:
		p.mask = value
	case 3:
		p.oamAddr = value
	case 4:
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 5:
		p.writeScroll(value)
	case 6:
		p.writeAddr(value)
	case 7:
		p.writePPUData(value)
	}
}

func (p *PPU) writeScroll(value uint8) {
	if !p.w {
		p.x = value & 0x07
		p.t = (p.t & 0xFFE0) | (uint16(value) >> 3)
	} else {
		p.t = (p.t & 0x8FFF) | ((uint16(value) & 0x07) << 12)
		p.t = (p.t & 0xFC1F) | ((uint16(value) & 0xF8) << 2)
	}
	p.w = !p.w
}

func (p *PPU) writeAddr(value uint8) {
	if !p.w {
		p.t = (p.t & 0x00FF) | ((uint16(value) & 0x3F) << 8)
	} else {
		p.t = (p.t & 0xFF00) | uint16(value)
		p.v = p.t
	}
	p.w = !p.w
}

func (p *PPU) addrIncrement() uint16 {
	if p.ctrl&ctrlIncrement32 != 0 {
		return 32
	}
	return 1
}

func (p *PPU) readPPUData() uint8 {
	address := p.v & 0x3FFF
	var value uint8
	if address >= 0x3F00 {
		value = p.readVRAM(address)
		p.readBuffer = p.readVRAM(address - 0x1000)
	} else {
		value = p.readBuffer
		p.readBuffer = p.readVRAM(address)
	}
	p.v += p.addrIncrement()
	return value
}

func (p *PPU) writePPUData(value uint8) {
	p.writeVRAM(p.v&0x3FFF, value)
	p.v += p.addrIncrement()
}

// WriteOAM stores a byte directly into OAM, used by OAM-DMA (§4.2).
func (p *PPU) WriteOAM(address uint8, value uint8) { p.oam[address] = value }

// OAMAddr exposes the current OAMADDR, the base index OAM-DMA writes start
// filling from.
func (p *PPU) OAMAddr() uint8 { return p.oamAddr }

// RenderingEnabled reports whether either background or sprite rendering is
// on, per PPUMASK bits 3-4.
func (p *PPU) RenderingEnabled() bool { return p.mask&0x18 != 0 }

func (p *PPU) readVRAM(address uint16) uint8 {
	switch {
	case address < 0x2000:
		if p.cart != nil {
			return p.cart.ReadCHR(address)
		}
		return 0
	case address < 0x3F00:
		return p.vram[p.nametableIndex(address)]
	default:
		return p.palette[paletteIndex(address)]
	}
}

func (p *PPU) writeVRAM(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		if p.cart != nil {
			p.cart.WriteCHR(address, value)
		}
	case address < 0x3F00:
		p.vram[p.nametableIndex(address)] = value
	default:
		p.palette[paletteIndex(address)] = value
	}
}

func (p *PPU) nametableIndex(address uint16) uint16 {
	offset := (address - 0x2000) % 0x1000
	table := int(offset / 0x400)
	within := offset % 0x400
	switch p.mirroring {
	case cartridge.MirrorHorizontal:
		if table >= 2 {
			return 0x400 + within
		}
		return within
	case cartridge.MirrorVertical:
		if table == 1 || table == 3 {
			return 0x400 + within
		}
		return within
	case cartridge.MirrorSingleScreen0:
		return within
	case cartridge.MirrorSingleScreen1:
		return 0x400 + within
	case cartridge.MirrorFourScreen:
		return uint16(table)*0x400 + within
	default:
		return within
	}
}

// paletteIndex folds the four background-color mirror pairs down to their
// canonical slot (§3): 0x10/0x14/0x18/0x1C mirror 0x00/0x04/0x08/0x0C.
func paletteIndex(address uint16) uint16 {
	idx := (address - 0x3F00) & 0x1F
	if idx >= 0x10 && idx%4 == 0 {
		idx -= 0x10
	}
	return idx
}

// Tick advances the PPU by one cycle at the 3x-CPU rate; Line advances once
// every three Ticks (§4.3's simplified scanline model).
func (p *PPU) Tick() {
	p.subTick++
	if p.subTick < 3 {
		return
	}
	p.subTick = 0
	p.advanceLine()
}

func (p *PPU) advanceLine() {
	p.Line++
	switch p.Line {
	case 241:
		p.renderFrame()
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 && p.requestNMI != nil {
			p.requestNMI()
		}
	case 261:
		p.status &^= (statusVBlank | statusSprite0 | statusOverflow)
	}
	if p.Line > 261 {
		p.Line = 0
	}
}
