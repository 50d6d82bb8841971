package ppu

// OAM layout: 40 sprites of 4 bytes each, at 0xFE00-0xFE9F.
const (
	maxSprites        = 40
	maxSpritesPerLine = 10
	spriteBytes       = 4

	spriteYOffset = 16
	spriteXOffset = 8
)

// Sprite flag bits, byte 3 of an OAM entry.
const (
	spriteFlagBehindBG = 0x80
	spriteFlagFlipY    = 0x40
	spriteFlagFlipX    = 0x20
	spriteFlagPalette1 = 0x10
)

type sprite struct {
	y, x, tile, flags uint8
	oamIndex          uint8
}

func (s sprite) screenY() int { return int(s.y) - spriteYOffset }
func (s sprite) screenX() int { return int(s.x) - spriteXOffset }

func (p *PPU) spriteHeight() int {
	if p.LCDC&lcdcSpriteSize != 0 {
		return 16
	}
	return 8
}

// scanOAMForLine performs the OAM-scan phase for scanline ly: it walks
// all 40 sprites in OAM order and keeps the first 10 that intersect the
// line, matching the hardware's fixed per-scanline sprite cap.
func (p *PPU) scanOAMForLine(ly uint8) []sprite {
	height := p.spriteHeight()
	var visible []sprite
	for i := uint8(0); i < maxSprites && len(visible) < maxSpritesPerLine; i++ {
		base := uint16(i) * spriteBytes
		s := sprite{
			y:        p.vram.RawOAM(base),
			x:        p.vram.RawOAM(base + 1),
			tile:     p.vram.RawOAM(base + 2),
			flags:    p.vram.RawOAM(base + 3),
			oamIndex: i,
		}
		top := s.screenY()
		if int(ly) >= top && int(ly) < top+height {
			visible = append(visible, s)
		}
	}
	return visible
}

// spritePixelRow returns the sprite's 8 color indices for the row of
// itself that intersects scanline ly, accounting for vertical flip and
// (for 8x16 sprites) which of the two stacked tiles that row falls in.
func (p *PPU) spritePixelRow(s sprite, ly uint8) [8]uint8 {
	height := p.spriteHeight()
	row := int(ly) - s.screenY()
	if s.flags&spriteFlagFlipY != 0 {
		row = height - 1 - row
	}

	tile := s.tile
	if height == 16 {
		tile &^= 0x01
		if row >= 8 {
			tile |= 0x01
			row -= 8
		}
	}

	pixels := p.tileRow(tilePatternTable0Start+uint16(tile)*TileSize, row)
	if s.flags&spriteFlagFlipX != 0 {
		pixels[0], pixels[1], pixels[2], pixels[3], pixels[4], pixels[5], pixels[6], pixels[7] =
			pixels[7], pixels[6], pixels[5], pixels[4], pixels[3], pixels[2], pixels[1], pixels[0]
	}
	return pixels
}
