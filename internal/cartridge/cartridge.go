// Package cartridge parses the Game Boy cartridge header and supplies the
// hardcoded 52-byte header template copied into a fresh console at boot.
//
// This is an MBC-less baseline: CartridgeType is reported for
// diagnostics, but every address in 0x0000-0x7FFF always reads the
// loaded ROM bytes directly — no bank switching is implemented. Real
// bank-switching is out of scope; see DESIGN.md.
package cartridge

import (
	"fmt"
	"strings"
)

// Header field byte offsets within the cartridge ROM.
const (
	TitleStart    = 0x0134
	TitleEnd      = 0x0143
	TypeOffset    = 0x0147
	ROMSizeOffset = 0x0148
	RAMSizeOffset = 0x0149
	ChecksumByte  = 0x014D

	// MinROMSize is the smallest image New accepts: one 32KB ROM-only
	// cartridge, which fills the whole 0x0000-0x7FFF window.
	MinROMSize = 32 * 1024

	// BootROMMaxSize is the largest boot ROM console.New will accept.
	BootROMMaxSize = 256

	// HeaderTemplateStart/End bound the 52-byte template copied into a
	// freshly booted console at ROM[0x0100:0x0134].
	HeaderTemplateStart = 0x0100
	HeaderTemplateEnd   = 0x0134
)

// Type identifies the memory controller a real cartridge would use.
// Only ROMOnly is actually emulated; other values are recognized for
// header reporting only.
type Type uint8

const (
	ROMOnly Type = 0x00
	MBC1    Type = 0x01
	MBC2    Type = 0x05
	MBC3    Type = 0x11
)

// Cartridge holds the raw ROM bytes and the header fields parsed from them.
type Cartridge struct {
	ROM []byte

	Title       string
	Type        Type
	ROMSize     int
	RAMSize     int
	HeaderValid bool
}

// New parses romData as a Game Boy cartridge image.
func New(romData []byte) (*Cartridge, error) {
	if len(romData) < MinROMSize {
		return nil, fmt.Errorf("cartridge: ROM too small: got %d bytes, need at least %d", len(romData), MinROMSize)
	}
	c := &Cartridge{ROM: romData}
	c.parseHeader()
	return c, nil
}

func (c *Cartridge) parseHeader() {
	title := strings.TrimRight(string(c.ROM[TitleStart:TitleEnd+1]), "\x00")
	var clean strings.Builder
	for _, r := range title {
		if r >= 32 && r <= 126 {
			clean.WriteRune(r)
		}
	}
	c.Title = clean.String()
	c.Type = Type(c.ROM[TypeOffset])
	c.ROMSize = romSizeFromCode(c.ROM[ROMSizeOffset])
	c.RAMSize = ramSizeFromCode(c.ROM[RAMSizeOffset])
	c.HeaderValid = c.checksumValid()
}

func romSizeFromCode(code uint8) int {
	if code > 0x08 {
		return MinROMSize
	}
	return MinROMSize << code
}

func ramSizeFromCode(code uint8) int {
	switch code {
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	case 0x04:
		return 128 * 1024
	case 0x05:
		return 64 * 1024
	default:
		return 0
	}
}

func (c *Cartridge) checksumValid() bool {
	var sum uint8
	for addr := TitleStart; addr <= 0x014C; addr++ {
		sum = sum - c.ROM[addr] - 1
	}
	return sum == c.ROM[ChecksumByte]
}

// ReadROM returns the byte at addr in the loaded image, wrapping addr
// modulo the image size. No MBC is emulated, so 0x0000-0x7FFF always
// reads the first 32KB of the image; later banks are never selected.
func (c *Cartridge) ReadROM(addr uint16) uint8 {
	a := int(addr) % len(c.ROM)
	return c.ROM[a]
}

// TypeName returns a human-readable cartridge type label.
func (c *Cartridge) TypeName() string {
	switch c.Type {
	case ROMOnly:
		return "ROM ONLY"
	case MBC1:
		return "MBC1 (header only, banking not emulated)"
	case MBC2:
		return "MBC2 (header only, banking not emulated)"
	case MBC3:
		return "MBC3 (header only, banking not emulated)"
	default:
		return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(c.Type))
	}
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("Cartridge{Title: %q, Type: %s, ROM: %dKB, RAM: %dKB, HeaderValid: %t}",
		c.Title, c.TypeName(), c.ROMSize/1024, c.RAMSize/1024, c.HeaderValid)
}

// HeaderTemplate is the hardcoded 52-byte block copied into
// ROM[0x0100:0x0134] after the boot ROM at console creation: a NOP, a
// JP 0x0150, and the Nintendo logo bitmap that the real boot ROM
// checks before handing off to cartridge code.
var HeaderTemplate = func() [HeaderTemplateEnd - HeaderTemplateStart]byte {
	var t [HeaderTemplateEnd - HeaderTemplateStart]byte
	t[0] = 0x00 // NOP
	t[1] = 0xC3 // JP nn
	t[2] = 0x50 // low byte of 0x0150
	t[3] = 0x01 // high byte of 0x0150
	copy(t[4:], nintendoLogo[:])
	return t
}()

// nintendoLogo is the 48-byte bitmap the boot ROM compares against before
// continuing; bytes 0x0104-0x0133 of every valid cartridge header.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}
