package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameboy-emulator/internal/interrupt"
)

type fakeVRAM struct {
	vram [0x2000]uint8
	oam  [0xA0]uint8
}

func (f *fakeVRAM) RawVRAM(addr uint16) uint8 { return f.vram[addr-0x8000] }
func (f *fakeVRAM) RawOAM(addr uint16) uint8  { return f.oam[addr] }

func newTestPPU() (*PPU, *fakeVRAM, *interrupt.Controller) {
	v := &fakeVRAM{}
	ic := interrupt.New()
	p := New(v, ic)
	return p, v, ic
}

func TestModeTransitionsAcrossOneScanline(t *testing.T) {
	p, _, _ := newTestPPU()
	require.Equal(t, ModeOAMScan, p.Mode, "expected initial mode OAM scan")

	p.Step(80)
	assert.Equal(t, ModeDrawing, p.Mode, "expected drawing mode after 80 cycles")

	p.Step(172)
	assert.Equal(t, ModeHBlank, p.Mode, "expected hblank mode after the drawing window")

	p.Step(204)
	assert.EqualValues(t, 1, p.LY, "expected LY advanced to 1")
	assert.Equal(t, ModeOAMScan, p.Mode, "expected next scanline to start in OAM scan")
}

func TestVBlankEntryRequestsInterrupt(t *testing.T) {
	p, _, ic := newTestPPU()
	for line := 0; line < ScreenHeight; line++ {
		p.Step(CyclesPerScanline / 2)
		p.Step(CyclesPerScanline / 2)
	}
	require.Equal(t, ModeVBlank, p.Mode, "expected VBlank mode at line 144")

	ic.SetIE(0xFF)
	_, ok := ic.Highest()
	assert.True(t, ok, "expected VBlank interrupt requested on entering VBlank")
	assert.True(t, p.FrameReady, "expected frame-ready flag set")
}

func TestFrameWrapsAfter154Lines(t *testing.T) {
	p, _, _ := newTestPPU()
	for line := 0; line < TotalScanlines; line++ {
		p.Step(CyclesPerScanline / 2)
		p.Step(CyclesPerScanline / 2)
	}
	assert.EqualValues(t, 0, p.LY, "expected LY to wrap to 0 after 154 lines")
	assert.Equal(t, ModeOAMScan, p.Mode, "expected OAM scan mode at wraparound")
}

func TestVRAMLockedDuringDrawing(t *testing.T) {
	p, _, _ := newTestPPU()
	p.Step(80)
	assert.True(t, p.VRAMLocked(), "expected VRAM locked during mode 3")
	assert.True(t, p.OAMLocked(), "expected OAM locked during mode 3")
}

func TestTileAddressUnsignedMode(t *testing.T) {
	p, _, _ := newTestPPU()
	p.LCDC |= lcdcTileDataMode
	assert.EqualValues(t, 0x8010, p.tileAddress(1), "expected tile 1 at 0x8010")
}

func TestTileAddressSignedMode(t *testing.T) {
	p, _, _ := newTestPPU()
	p.LCDC &^= lcdcTileDataMode
	assert.EqualValues(t, 0x8FF0, p.tileAddress(0xFF), "expected tile -1 at 0x8FF0")
	assert.EqualValues(t, 0x9000, p.tileAddress(0x00), "expected tile 0 at 0x9000")
}

func TestRenderBackgroundRowDecodesTile(t *testing.T) {
	p, v, _ := newTestPPU()
	p.LCDC |= lcdcTileDataMode | lcdcBGEnable
	// Tile 0's first row: all pixels color 3 (both bit planes all set).
	v.vram[0x0000] = 0xFF
	v.vram[0x0001] = 0xFF
	p.renderScanline()
	want := applyPalette(p.BGP, 3)
	for x := 0; x < 8; x++ {
		assert.Equal(t, want, p.Framebuffer[0][x], "pixel %d should decode to the palette color", x)
	}
}
