package console

import "testing"

func makeTestCartridgeROM() []byte {
	rom := make([]byte, 32*1024)
	copy(rom[0x0134:], "TEST")
	rom[0x0147] = 0x00
	var sum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	rom[0x014D] = sum
	return rom
}

func TestNewRejectsOversizedBootROM(t *testing.T) {
	bootROM := make([]byte, 300)
	if _, err := New(bootROM, makeTestCartridgeROM()); err == nil {
		t.Fatal("expected error for oversized boot ROM")
	}
}

func TestNewCopiesBootROMAndHeaderTemplate(t *testing.T) {
	bootROM := []byte{0x31, 0xFE, 0xFF} // LD SP, 0xFFFE
	c, err := New(bootROM, makeTestCartridgeROM())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Bus.Read(0x0000); got != 0x31 {
		t.Fatalf("expected boot ROM byte at 0x0000, got 0x%02X", got)
	}
	if got := c.Bus.Read(0x0104); got != 0xCE { // first byte of the Nintendo logo
		t.Fatalf("expected header template logo at 0x0104, got 0x%02X", got)
	}
}

func TestStepAdvancesTimerAndPPUTogetherWithCPU(t *testing.T) {
	c, err := New(nil, makeTestCartridgeROM())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.CPU.PC = 0x0150
	c.Bus.Write(0x0150, 0x00) // NOP
	startCycles := c.Timer.DIV
	for i := 0; i < 300; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("unexpected step error: %v", err)
		}
	}
	if c.Timer.DIV == startCycles {
		t.Fatal("expected timer to advance alongside CPU steps")
	}
	if c.PPU.LY == 0 {
		t.Fatal("expected PPU to advance alongside CPU steps")
	}
}
