package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeROM(size int) []byte {
	rom := make([]byte, size)
	copy(rom[HeaderTemplateStart:HeaderTemplateEnd], HeaderTemplate[:])
	copy(rom[TitleStart:TitleEnd+1], []byte("TESTGAME"))
	rom[TypeOffset] = byte(ROMOnly)
	rom[ROMSizeOffset] = 0x00
	rom[RAMSizeOffset] = 0x00
	fixChecksum(rom)
	return rom
}

func fixChecksum(rom []byte) {
	var sum uint8
	for addr := TitleStart; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	rom[ChecksumByte] = sum
}

func TestNewRejectsTooSmall(t *testing.T) {
	_, err := New(make([]byte, 100))
	assert.Error(t, err, "should reject a ROM smaller than MinROMSize")
}

func TestParseHeaderTitleAndType(t *testing.T) {
	rom := makeROM(MinROMSize)
	c, err := New(rom)
	require.NoError(t, err, "should create cartridge successfully")
	assert.Equal(t, "TESTGAME", c.Title, "title should be parsed correctly")
	assert.Equal(t, ROMOnly, c.Type, "cartridge type should be ROMOnly")
	assert.True(t, c.HeaderValid, "header checksum should validate")
}

func TestChecksumDetectsCorruption(t *testing.T) {
	rom := makeROM(MinROMSize)
	rom[TitleStart] ^= 0xFF
	c, err := New(rom)
	require.NoError(t, err, "a bad checksum is reported, not an error")
	assert.False(t, c.HeaderValid, "checksum should mismatch after corrupting a title byte")
}

func TestReadROMMirrorsWhenOutOfRange(t *testing.T) {
	rom := makeROM(MinROMSize)
	c, err := New(rom)
	require.NoError(t, err)
	assert.Equal(t, c.ReadROM(0), c.ReadROM(uint16(len(rom))), "reads past the image should mirror")
}

func TestROMSizeDecoding(t *testing.T) {
	rom := makeROM(MinROMSize)
	rom[ROMSizeOffset] = 0x01
	fixChecksum(rom)
	c, err := New(rom)
	require.NoError(t, err)
	assert.Equal(t, MinROMSize*2, c.ROMSize, "ROM size code 0x01 should decode to double the base size")
}

func TestRAMSizeDecoding(t *testing.T) {
	rom := makeROM(MinROMSize)
	rom[RAMSizeOffset] = 0x03
	fixChecksum(rom)
	c, err := New(rom)
	require.NoError(t, err)
	assert.Equal(t, 32*1024, c.RAMSize, "RAM size code 0x03 should decode to 32KB")
}
