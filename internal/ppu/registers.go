package ppu

// Register addresses on the I/O bus.
const (
	LCDCAddr = 0xFF40
	STATAddr = 0xFF41
	SCYAddr  = 0xFF42
	SCXAddr  = 0xFF43
	LYAddr   = 0xFF44
	LYCAddr  = 0xFF45
	BGPAddr  = 0xFF47
	OBP0Addr = 0xFF48
	OBP1Addr = 0xFF49
	WYAddr   = 0xFF4A
	WXAddr   = 0xFF4B

	statUnusedBits = 0x80
)

// ReadRegister implements memory.TimerRegisters-shaped register access for
// the LCD control block; the bus routes 0xFF40-0xFF4B reads here.
func (p *PPU) ReadRegister(addr uint16) (uint8, bool) {
	switch addr {
	case LCDCAddr:
		return p.LCDC, true
	case STATAddr:
		return p.STAT | statUnusedBits, true
	case SCYAddr:
		return p.SCY, true
	case SCXAddr:
		return p.SCX, true
	case LYAddr:
		return p.LY, true
	case LYCAddr:
		return p.LYC, true
	case BGPAddr:
		return p.BGP, true
	case OBP0Addr:
		return p.OBP0, true
	case OBP1Addr:
		return p.OBP1, true
	case WYAddr:
		return p.WY, true
	case WXAddr:
		return p.WX, true
	default:
		return 0, false
	}
}

// WriteRegister implements the bus's write-dispatch counterpart to
// ReadRegister. LY is read-only on real hardware; writes to it are
// accepted (claimed) but discarded.
func (p *PPU) WriteRegister(addr uint16, value uint8) bool {
	switch addr {
	case LCDCAddr:
		p.setLCDC(value)
	case STATAddr:
		p.STAT = (p.STAT & 0x07) | (value &^ 0x07)
	case SCYAddr:
		p.SCY = value
	case SCXAddr:
		p.SCX = value
	case LYAddr:
		// read-only, write claimed and dropped
	case LYCAddr:
		p.LYC = value
		p.updateLYCFlag()
	case BGPAddr:
		p.BGP = value
	case OBP0Addr:
		p.OBP0 = value
	case OBP1Addr:
		p.OBP1 = value
	case WYAddr:
		p.WY = value
	case WXAddr:
		p.WX = value
	default:
		return false
	}
	return true
}

// setLCDC applies an LCDC write, resetting scanline state the way real
// hardware does when the LCD is switched off or back on.
func (p *PPU) setLCDC(value uint8) {
	wasEnabled := p.enabled()
	p.LCDC = value
	nowEnabled := p.enabled()

	if wasEnabled && !nowEnabled {
		p.LY = 0
		p.cycles = 0
		p.windowLine = 0
		p.setMode(ModeHBlank)
	} else if !wasEnabled && nowEnabled {
		p.LY = 0
		p.cycles = 0
		p.setMode(ModeOAMScan)
	}
}
