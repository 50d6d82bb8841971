package ppu

// Tile geometry and VRAM layout.
const (
	TileSize = 16 // bytes per 8x8 2bpp tile

	tilePatternTable0Start = 0x8000
	tilePatternTable1Mid   = 0x9000

	backgroundMap0Start = 0x9800
	backgroundMap1Start = 0x9C00

	tileMapWidth = 32
)

// tileAddress resolves a tile index to its VRAM base address, honoring
// LCDC bit 4: set selects the $8000 method (index is unsigned, tile 0
// at $8000), clear selects the $8800 method (index is signed, tile 0
// at $9000, so index -1 lands at $8FF0).
func (p *PPU) tileAddress(index uint8) uint16 {
	if p.LCDC&lcdcTileDataMode != 0 {
		return tilePatternTable0Start + uint16(index)*TileSize
	}
	return uint16(int32(tilePatternTable1Mid) + int32(int8(index))*TileSize)
}

// tileRow decodes the two bytes of 2bpp data for one row of a tile
// into 8 color indices (0-3), MSB-first (bit 7 is the leftmost pixel).
func (p *PPU) tileRow(tileAddr uint16, row int) [8]uint8 {
	lo := p.vram.RawVRAM(tileAddr + uint16(row)*2)
	hi := p.vram.RawVRAM(tileAddr + uint16(row)*2 + 1)
	var pixels [8]uint8
	for col := 0; col < 8; col++ {
		bit0 := (lo >> (7 - col)) & 1
		bit1 := (hi >> (7 - col)) & 1
		pixels[col] = bit0 | bit1<<1
	}
	return pixels
}

func (p *PPU) bgTileMapAddr() uint16 {
	if p.LCDC&lcdcBGMap != 0 {
		return backgroundMap1Start
	}
	return backgroundMap0Start
}

func (p *PPU) windowTileMapAddr() uint16 {
	if p.LCDC&lcdcWindowMap != 0 {
		return backgroundMap1Start
	}
	return backgroundMap0Start
}

// applyPalette maps a 2-bit tile color through a palette register
// (BGP, OBP0, or OBP1) to the 2-bit shade it's actually displayed as.
func applyPalette(palette uint8, color uint8) uint8 {
	return (palette >> (color * 2)) & 0x03
}
