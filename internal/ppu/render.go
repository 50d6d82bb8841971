package ppu

import "sort"

// renderScanline composes the background, window, and sprite layers
// for the current LY into the framebuffer. It runs once per scanline,
// at the mode 3 -> mode 0 transition, rather than pixel-by-pixel; the
// visible result is identical since nothing else observes mid-line state.
func (p *PPU) renderScanline() {
	ly := p.LY
	if int(ly) >= ScreenHeight {
		return
	}

	var bgColor [ScreenWidth]uint8 // raw 2-bit color index, before palette, for sprite priority

	if p.LCDC&lcdcBGEnable != 0 {
		p.renderBackgroundRow(ly, &bgColor)
	}
	if p.LCDC&lcdcWindowEnable != 0 && p.LCDC&lcdcBGEnable != 0 && ly >= p.WY {
		p.renderWindowRow(ly, &bgColor)
	}
	if p.LCDC&lcdcSpriteEnable != 0 {
		p.renderSpriteRow(ly, &bgColor)
	}
}

func (p *PPU) renderBackgroundRow(ly uint8, bgColor *[ScreenWidth]uint8) {
	mapBase := p.bgTileMapAddr()
	y := ly + p.SCY
	tileRow := int(y) / 8
	rowInTile := int(y) % 8

	for screenX := 0; screenX < ScreenWidth; screenX++ {
		x := uint8(screenX) + p.SCX
		tileCol := int(x) / 8
		colInTile := int(x) % 8

		mapIndex := (tileRow%tileMapWidth)*tileMapWidth + (tileCol % tileMapWidth)
		tileIndex := p.vram.RawVRAM(mapBase + uint16(mapIndex))
		pixels := p.tileRow(p.tileAddress(tileIndex), rowInTile)

		color := pixels[colInTile]
		bgColor[screenX] = color
		p.Framebuffer[ly][screenX] = applyPalette(p.BGP, color)
	}
}

func (p *PPU) renderWindowRow(ly uint8, bgColor *[ScreenWidth]uint8) {
	if p.WX > 166 {
		return
	}
	mapBase := p.windowTileMapAddr()
	tileRow := p.windowLine / 8
	rowInTile := p.windowLine % 8
	windowStartX := int(p.WX) - 7

	drew := false
	for screenX := 0; screenX < ScreenWidth; screenX++ {
		x := screenX - windowStartX
		if x < 0 {
			continue
		}
		drew = true
		tileCol := x / 8
		colInTile := x % 8

		mapIndex := (tileRow%tileMapWidth)*tileMapWidth + (tileCol % tileMapWidth)
		tileIndex := p.vram.RawVRAM(mapBase + uint16(mapIndex))
		pixels := p.tileRow(p.tileAddress(tileIndex), rowInTile)

		color := pixels[colInTile]
		bgColor[screenX] = color
		p.Framebuffer[ly][screenX] = applyPalette(p.BGP, color)
	}
	if drew {
		p.windowLine++
	}
}

func (p *PPU) renderSpriteRow(ly uint8, bgColor *[ScreenWidth]uint8) {
	sprites := p.scanOAMForLine(ly)

	// Lower X wins on overlap; OAM index breaks ties (stable sort
	// preserves scan order within equal X). Painting back-to-front
	// means the winner is painted last and ends up on top.
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].x < sprites[j].x })
	for i := len(sprites) - 1; i >= 0; i-- {
		s := sprites[i]
		pixels := p.spritePixelRow(s, ly)
		palette := p.OBP0
		if s.flags&spriteFlagPalette1 != 0 {
			palette = p.OBP1
		}

		for col := 0; col < 8; col++ {
			screenX := s.screenX() + col
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			color := pixels[col]
			if color == 0 {
				continue // transparent
			}
			if s.flags&spriteFlagBehindBG != 0 && bgColor[screenX] != 0 {
				continue // hidden behind non-zero background pixel
			}
			p.Framebuffer[ly][screenX] = applyPalette(palette, color)
		}
	}
}
