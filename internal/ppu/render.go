package ppu

// nesColorPalette is the 64-entry NES master palette, packed as 0xAARRGGBB
// with full alpha; putPixel writes each entry out as RGBA bytes.
var nesColorPalette = [64]uint32{
	0xFF666666, 0xFF002A88, 0xFF1412A7, 0xFF3B00A4, 0xFF5C007E, 0xFF6E0040, 0xFF6C0600, 0xFF561D00,
	0xFF333500, 0xFF0B4800, 0xFF005200, 0xFF004F08, 0xFF00404D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFADADAD, 0xFF155FD9, 0xFF4240FF, 0xFF7527FE, 0xFFA01ACC, 0xFFB71E7B, 0xFFB53120, 0xFF994E00,
	0xFF6B6D00, 0xFF388700, 0xFF0C9300, 0xFF008F32, 0xFF007C8D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFF64B0FF, 0xFF9290FF, 0xFFC676FF, 0xFFF36AFF, 0xFFFE6ECC, 0xFFFE8170, 0xFFEA9E22,
	0xFFBCBE00, 0xFF88D800, 0xFF5CE430, 0xFF45E082, 0xFF48CDDE, 0xFF4F4F4F, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFFC0DFFF, 0xFFD3D2FF, 0xFFE8C8FF, 0xFFFBC2FF, 0xFFFEC4EA, 0xFFFECCC5, 0xFFF7D8A5,
	0xFFE4E594, 0xFFCFF29B, 0xFFBEFBB3, 0xFFB8F8D8, 0xFFB8F8F8, 0xFF000000, 0xFF000000, 0xFF000000,
}

func (p *PPU) putPixel(x, y int, argb uint32) {
	if x < 0 || x >= frameWidth || y < 0 || y >= frameHeight {
		return
	}
	i := (y*frameWidth + x) * 4
	p.frameBuffer[i+0] = byte(argb >> 16)
	p.frameBuffer[i+1] = byte(argb >> 8)
	p.frameBuffer[i+2] = byte(argb)
	p.frameBuffer[i+3] = 0xFF
}

// bgPixel tracks whether the background pass wrote an opaque pixel at each
// screen coordinate, consulted by the sprite pass for sprite-0 hit.
type bgPixel struct {
	opaque bool
}

// renderFrame draws the completed picture into the frame buffer. Grounded
// on the original source's full-frame draw pass: refresh an attribute
// cache, walk the 30x32 nametable for the background, then walk OAM once
// for sprites, tracking sprite-0 hit and sprite overflow as it goes.
func (p *PPU) renderFrame() {
	if !p.RenderingEnabled() {
		return
	}

	baseNametable := uint16(0x2000 + 0x400*uint16(p.ctrl&0x03))
	bgPatternBase := uint16(0)
	if p.ctrl&ctrlBGPatternTable != 0 {
		bgPatternBase = 0x1000
	}

	attr := p.refreshAttributeTable(baseNametable)

	var bg [frameWidth * frameHeight]bool
	for row := 0; row < 30; row++ {
		for col := 0; col < 32; col++ {
			tileID := p.readVRAM(baseNametable + uint16(row*32+col))
			palette := attr[row/2*16+col/2]
			p.drawTile(bgPatternBase, tileID, col*8, row*8, palette, false, false, 0x3F00, bg[:])
		}
	}

	p.drawSprites(bg[:])
}

// refreshAttributeTable splits each of the 64 attribute bytes in the active
// nametable into its four 2-bit palette selectors, one per 16x16 block.
func (p *PPU) refreshAttributeTable(baseNametable uint16) [16 * 16]uint8 {
	var cache [16 * 16]uint8
	attrBase := baseNametable + 0x3C0
	for i := 0; i < 64; i++ {
		b := p.readVRAM(attrBase + uint16(i))
		blockRow := (i / 8) * 2
		blockCol := (i % 8) * 2
		quads := [4]uint8{b & 0x03, (b >> 2) & 0x03, (b >> 4) & 0x03, (b >> 6) & 0x03}
		set := func(r, c int, q uint8) {
			if r < 16 && c < 16 {
				cache[r*16+c] = q
			}
		}
		set(blockRow, blockCol, quads[0])
		set(blockRow, blockCol+1, quads[1])
		set(blockRow+1, blockCol, quads[2])
		set(blockRow+1, blockCol+1, quads[3])
	}
	return cache
}

// drawTile renders one 8x8 background tile's two-bit-per-pixel bitmap,
// recording each opaque pixel into bg for the sprite-0 hit pass.
func (p *PPU) drawTile(patternBase uint16, tileID uint8, originX, originY int, palette uint8, flipX, flipY bool, paletteBase uint16, bg []bool) {
	addr := patternBase + uint16(tileID)*16
	for row := 0; row < 8; row++ {
		plane0 := p.readVRAM(addr + uint16(row))
		plane1 := p.readVRAM(addr + uint16(row) + 8)
		for col := 0; col < 8; col++ {
			shift := 7 - col
			bit0 := (plane0 >> uint(shift)) & 1
			bit1 := (plane1 >> uint(shift)) & 1
			index := bit0 | (bit1 << 1)

			px, py := col, row
			if flipX {
				px = 7 - col
			}
			if flipY {
				py = 7 - row
			}
			x, y := originX+px, originY+py

			var color uint8
			opaque := index != 0
			if !opaque {
				color = p.readVRAM(0x3F00)
			} else {
				color = p.readVRAM(paletteBase | (uint16(palette) << 2) | uint16(index))
			}
			p.putPixel(x, y, nesColorPalette[color&0x3F])
			if opaque && x >= 0 && x < frameWidth && y >= 0 && y < frameHeight {
				bg[y*frameWidth+x] = true
			}
		}
	}
}

// drawSprites draws the OAM entries that precede the first one with
// Y>=240 (the early-exit the original source's draw pass uses), from the
// highest index down so that lower indices draw on top, and tracks sprite-0
// hit against the background opacity map plus per-scanline overflow.
func (p *PPU) drawSprites(bg []bool) {
	spriteHeight := 8
	if p.ctrl&ctrlSpriteHeight != 0 {
		spriteHeight = 16
	}

	var perLine [frameHeight]int
	overflowSet := false

	count := 0
	for count < 64 && p.oam[count*4] < 240 {
		count++
	}

	for i := count - 1; i >= 0; i-- {
		base := i * 4
		y := int(p.oam[base]) + 1
		tileID := p.oam[base+1]
		attrs := p.oam[base+2]
		x := int(p.oam[base+3])

		palette := attrs & 0x03
		flipX := attrs&0x40 != 0
		flipY := attrs&0x80 != 0

		for line := y; line < y+spriteHeight && line < frameHeight; line++ {
			if line >= 0 {
				perLine[line]++
				if perLine[line] > 8 {
					overflowSet = true
				}
			}
		}

		patternBase := uint16(0)
		id := tileID
		if spriteHeight == 16 {
			patternBase = uint16(tileID&1) * 0x1000
			id = tileID &^ 1
		} else if p.ctrl&ctrlSpritePattern != 0 {
			patternBase = 0x1000
		}

		p.drawSpriteTile(patternBase, id, x, y, palette, flipX, flipY, spriteHeight, i == 0, bg)
	}

	if overflowSet {
		p.status |= statusOverflow
	}
}

func (p *PPU) drawSpriteTile(patternBase uint16, tileID uint8, originX, originY int, palette uint8, flipX, flipY bool, height int, isSprite0 bool, bg []bool) {
	tiles := []uint8{tileID}
	if height == 16 {
		tiles = []uint8{tileID, tileID + 1}
		if flipY {
			tiles[0], tiles[1] = tiles[1], tiles[0]
		}
	}

	for t, id := range tiles {
		addr := patternBase + uint16(id)*16
		for row := 0; row < 8; row++ {
			plane0 := p.readVRAM(addr + uint16(row))
			plane1 := p.readVRAM(addr + uint16(row) + 8)
			for col := 0; col < 8; col++ {
				shift := 7 - col
				bit0 := (plane0 >> uint(shift)) & 1
				bit1 := (plane1 >> uint(shift)) & 1
				index := bit0 | (bit1 << 1)
				if index == 0 {
					continue
				}

				px, py := col, row
				if flipX {
					px = 7 - col
				}
				if flipY {
					py = 7 - row
				}
				x := originX + px
				y := originY + py + t*8
				if x < 0 || x >= frameWidth || y < 0 || y >= frameHeight {
					continue
				}

				color := p.readVRAM(0x3F10 | (uint16(palette) << 2) | uint16(index))
				p.putPixel(x, y, nesColorPalette[color&0x3F])

				if isSprite0 && bg[y*frameWidth+x] {
					p.status |= statusSprite0
				}
			}
		}
	}
}
