// Package ppu implements the Game Boy Picture Processing Unit: the
// OAM-scan/drawing/H-Blank/V-Blank mode state machine, background,
// window, and sprite rendering into a 160x144 framebuffer, and the
// VRAM/OAM access locks the CPU's bus consults during modes 2 and 3.
package ppu

import "gameboy-emulator/internal/interrupt"

// Display and timing constants, per the Game Boy's fixed 59.7 Hz
// refresh: 154 scanlines (144 visible + 10 V-Blank) of 456 T-cycles each.
const (
	ScreenWidth  = 160
	ScreenHeight = 144

	TotalScanlines    = 154
	CyclesPerScanline = 456

	oamScanCycles = 80
	drawingCycles = 172

	ColorWhite     = 0
	ColorLightGray = 1
	ColorDarkGray  = 2
	ColorBlack     = 3
)

// Mode identifies which phase of the scanline pipeline the PPU is in.
type Mode uint8

const (
	ModeHBlank  Mode = 0
	ModeVBlank  Mode = 1
	ModeOAMScan Mode = 2
	ModeDrawing Mode = 3
)

func (m Mode) String() string {
	switch m {
	case ModeHBlank:
		return "H-Blank"
	case ModeVBlank:
		return "V-Blank"
	case ModeOAMScan:
		return "OAM Scan"
	case ModeDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// LCDC bit masks, 0xFF40.
const (
	lcdcEnable        = 0x80
	lcdcWindowMap     = 0x40
	lcdcWindowEnable  = 0x20
	lcdcTileDataMode  = 0x10
	lcdcBGMap         = 0x08
	lcdcSpriteSize    = 0x04
	lcdcSpriteEnable  = 0x02
	lcdcBGEnable      = 0x01
)

// STAT bit masks, 0xFF41.
const (
	statLYCInterrupt    = 0x40
	statOAMInterrupt    = 0x20
	statVBlankInterrupt = 0x10
	statHBlankInterrupt = 0x08
	statLYCEqualLY      = 0x04
)

// VRAM is the memory the PPU reads tile data and tile/attribute maps
// from; implemented by *memory.Bus's Raw accessors, which bypass the
// PPU's own lock (the PPU always sees its own VRAM/OAM).
type VRAM interface {
	RawVRAM(addr uint16) uint8
	RawOAM(addr uint16) uint8
}

// PPU renders the Game Boy's tile-based 4-shade display.
type PPU struct {
	Framebuffer [ScreenHeight][ScreenWidth]uint8

	LCDC uint8
	STAT uint8
	SCY  uint8
	SCX  uint8
	LY   uint8
	LYC  uint8
	WY   uint8
	WX   uint8
	BGP  uint8
	OBP0 uint8
	OBP1 uint8

	Mode       Mode
	cycles     uint16
	FrameReady bool

	vram VRAM
	ic   *interrupt.Controller

	windowLine int // internal window scanline counter, independent of LY
}

// New returns a PPU in Game Boy power-on state, reading tile and map
// data from vram and requesting VBlank/LCDStat interrupts through ic.
func New(vram VRAM, ic *interrupt.Controller) *PPU {
	p := &PPU{
		LCDC: 0x91,
		BGP:  0xE4,
		OBP0: 0xE4,
		OBP1: 0xE4,
		Mode: ModeOAMScan,
		vram: vram,
		ic:   ic,
	}
	p.updateSTATMode()
	return p
}

func (p *PPU) enabled() bool { return p.LCDC&lcdcEnable != 0 }

// VRAMLocked implements memory.VRAMLocker: VRAM is closed to the CPU
// during mode 3, open otherwise.
func (p *PPU) VRAMLocked() bool { return p.enabled() && p.Mode == ModeDrawing }

// OAMLocked implements memory.VRAMLocker: OAM is closed to the CPU
// during modes 2 and 3.
func (p *PPU) OAMLocked() bool {
	return p.enabled() && (p.Mode == ModeOAMScan || p.Mode == ModeDrawing)
}

// Step advances the PPU by cycles T-states, transitioning modes,
// rendering completed scanlines, and requesting VBlank/STAT interrupts
// at the moments real hardware does.
func (p *PPU) Step(cycles uint8) {
	if !p.enabled() {
		return
	}

	p.cycles += uint16(cycles)

	// Each pass below makes at most one transition; after one, check
	// again with no extra cycles so a single call can cross several
	// mode boundaries (a whole scanline, for instance).
	mode, ly := p.Mode, p.LY
	defer func() {
		if p.Mode != mode || p.LY != ly {
			p.Step(0)
		}
	}()

	if p.LY < ScreenHeight {
		switch p.Mode {
		case ModeOAMScan:
			if p.cycles >= oamScanCycles {
				p.setMode(ModeDrawing)
			}
		case ModeDrawing:
			if p.cycles >= oamScanCycles+drawingCycles {
				p.renderScanline()
				p.setMode(ModeHBlank)
			}
		case ModeHBlank:
			if p.cycles >= CyclesPerScanline {
				p.advanceScanline()
				if p.LY == ScreenHeight {
					p.setMode(ModeVBlank)
					p.FrameReady = true
					p.ic.Request(interrupt.VBlank)
					if p.STAT&statVBlankInterrupt != 0 {
						p.ic.Request(interrupt.LCDStat)
					}
				} else {
					p.setMode(ModeOAMScan)
				}
			}
		}
		return
	}

	// V-Blank scanlines 144-153.
	if p.cycles >= CyclesPerScanline {
		p.advanceScanline()
		if p.LY == TotalScanlines {
			p.LY = 0
			p.windowLine = 0
			p.setMode(ModeOAMScan)
		}
	}
}

func (p *PPU) advanceScanline() {
	p.cycles = 0
	p.LY++
	p.updateLYCFlag()
}

func (p *PPU) setMode(m Mode) {
	p.Mode = m
	p.updateSTATMode()
	if statInterruptBit(m) != 0 && p.STAT&statInterruptBit(m) != 0 {
		p.ic.Request(interrupt.LCDStat)
	}
}

func statInterruptBit(m Mode) uint8 {
	switch m {
	case ModeHBlank:
		return statHBlankInterrupt
	case ModeOAMScan:
		return statOAMInterrupt
	default:
		return 0
	}
}

func (p *PPU) updateSTATMode() {
	p.STAT = (p.STAT &^ 0x03) | uint8(p.Mode)
}

func (p *PPU) updateLYCFlag() {
	wasEqual := p.STAT&statLYCEqualLY != 0
	isEqual := p.LY == p.LYC
	if isEqual {
		p.STAT |= statLYCEqualLY
	} else {
		p.STAT &^= statLYCEqualLY
	}
	if isEqual && !wasEqual && p.STAT&statLYCInterrupt != 0 {
		p.ic.Request(interrupt.LCDStat)
	}
}

// ClearFrameReady resets the frame-ready flag after a consumer has
// drained the framebuffer.
func (p *PPU) ClearFrameReady() { p.FrameReady = false }
