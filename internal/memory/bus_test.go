package memory

import (
	"testing"

	"gameboy-emulator/internal/interrupt"
	"gameboy-emulator/internal/ppu"
)

func TestEchoRAMAliasesWRAM(t *testing.T) {
	b := New(interrupt.New())
	b.Write(WRAMStart, 0x42)
	if got := b.Read(EchoStart); got != 0x42 {
		t.Errorf("expected echo RAM to mirror WRAM, got 0x%02X", got)
	}
	b.Write(EchoStart+1, 0x99)
	if got := b.Read(WRAMStart + 1); got != 0x99 {
		t.Errorf("expected WRAM to mirror echo RAM write, got 0x%02X", got)
	}
}

func TestProhibitedRegionReadsFF(t *testing.T) {
	b := New(interrupt.New())
	b.Write(ProhibitedStart, 0x11)
	if got := b.Read(ProhibitedStart); got != 0xFF {
		t.Errorf("expected 0xFF from prohibited region, got 0x%02X", got)
	}
}

type lockStub struct{ vram, oam bool }

func (l lockStub) VRAMLocked() bool                            { return l.vram }
func (l lockStub) OAMLocked() bool                             { return l.oam }
func (l lockStub) ReadRegister(addr uint16) (uint8, bool)      { return 0, false }
func (l lockStub) WriteRegister(addr uint16, value uint8) bool { return false }

func TestVRAMLockBlocksAccess(t *testing.T) {
	b := New(interrupt.New())
	b.Write(VRAMStart, 0x55)
	b.PPU = lockStub{vram: true}
	if got := b.Read(VRAMStart); got != 0xFF {
		t.Errorf("expected locked VRAM read to return 0xFF, got 0x%02X", got)
	}
	b.Write(VRAMStart, 0xAA)
	b.PPU = lockStub{vram: false}
	if got := b.Read(VRAMStart); got != 0x55 {
		t.Errorf("expected locked write to be dropped, got 0x%02X", got)
	}
}

func TestOAMLockBlocksAccess(t *testing.T) {
	b := New(interrupt.New())
	b.PPU = lockStub{oam: true}
	b.Write(OAMStart, 0x33)
	if got := b.Read(OAMStart); got != 0xFF {
		t.Errorf("expected locked OAM read to return 0xFF, got 0x%02X", got)
	}
}

func TestIERegisterRoutesToInterruptController(t *testing.T) {
	ic := interrupt.New()
	b := New(ic)
	b.Write(IERegister, 0xFF)
	if ic.ReadIE() != interrupt.ValidMask {
		t.Errorf("expected IE masked to valid bits, got 0x%02X", ic.ReadIE())
	}
	if b.Read(IERegister) != interrupt.ValidMask {
		t.Errorf("expected bus read of IE to match controller, got 0x%02X", b.Read(IERegister))
	}
}

func TestIFRegisterUnusedBitsReadAsOne(t *testing.T) {
	b := New(interrupt.New())
	if got := b.Read(IFRegister); got != 0xE0 {
		t.Errorf("expected unused IF bits set, got 0x%02X", got)
	}
}

func TestPPURegistersRouteThroughBus(t *testing.T) {
	ic := interrupt.New()
	b := New(ic)
	gpu := ppu.New(b, ic)
	b.PPU = gpu

	b.Write(ppu.LCDCAddr, 0x91|0x02) // enable LCD and sprites
	if gpu.LCDC&0x02 == 0 {
		t.Fatalf("expected LCDC write to reach the PPU, got 0x%02X", gpu.LCDC)
	}
	if got := b.Read(ppu.LCDCAddr); got != gpu.LCDC {
		t.Errorf("expected bus read of LCDC to match PPU state, got 0x%02X want 0x%02X", got, gpu.LCDC)
	}

	b.Write(ppu.SCXAddr, 0x07)
	if gpu.SCX != 0x07 {
		t.Errorf("expected SCX write to reach the PPU, got 0x%02X", gpu.SCX)
	}

	gpu.LY = 0x42
	if got := b.Read(ppu.LYAddr); got != 0x42 {
		t.Errorf("expected LY read to reflect live PPU state, got 0x%02X", got)
	}
	b.Write(ppu.LYAddr, 0x99)
	if gpu.LY != 0x42 {
		t.Errorf("expected LY writes to be dropped, got 0x%02X", gpu.LY)
	}
}

func TestRead16Write16LittleEndian(t *testing.T) {
	b := New(interrupt.New())
	b.Write16(0xC000, 0xBEEF)
	if got := b.Read(0xC000); got != 0xEF {
		t.Errorf("expected low byte 0xEF at base, got 0x%02X", got)
	}
	if got := b.Read(0xC001); got != 0xBE {
		t.Errorf("expected high byte 0xBE at base+1, got 0x%02X", got)
	}
	if got := b.Read16(0xC000); got != 0xBEEF {
		t.Errorf("expected Read16 to reassemble 0xBEEF, got 0x%04X", got)
	}
}
