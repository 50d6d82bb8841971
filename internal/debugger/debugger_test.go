package debugger

import (
	"bytes"
	"strings"
	"testing"

	"gameboy-emulator/internal/console"
)

func testROM() []byte {
	rom := make([]byte, 32*1024)
	copy(rom[0x0134:], "TEST")
	var sum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	rom[0x014D] = sum
	rom[0x0150] = 0x00 // NOP
	rom[0x0151] = 0x00 // NOP
	rom[0x0152] = 0x00 // NOP
	return rom
}

func newTestConsole(t *testing.T) *console.Console {
	t.Helper()
	c, err := console.New(nil, testROM())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.CPU.PC = 0x0150
	return c
}

func TestBreakpointPausesAndContinueResumes(t *testing.T) {
	c := newTestConsole(t)
	var out bytes.Buffer
	in := strings.NewReader("r\n")
	d := New(c, in, &out)
	d.AddBreakpoint(0x0150, "start")

	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "breakpoint \"start\" hit") {
		t.Fatalf("expected breakpoint message, got %q", out.String())
	}
}

func TestStepCommandKeepsSteppingActive(t *testing.T) {
	c := newTestConsole(t)
	var out bytes.Buffer
	in := strings.NewReader("s\nr\n")
	d := New(c, in, &out)
	d.AddBreakpoint(0x0150, "start")

	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.stepping {
		t.Fatal("expected stepping mode active after 's' command")
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.stepping {
		t.Fatal("expected 'r' to clear stepping mode")
	}
}

func TestRegisterDumpCommandPrintsRegisters(t *testing.T) {
	c := newTestConsole(t)
	var out bytes.Buffer
	in := strings.NewReader("d\nr\n")
	d := New(c, in, &out)
	d.AddBreakpoint(0x0150, "start")

	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "PC") {
		t.Fatalf("expected register dump to mention PC, got %q", out.String())
	}
}

func TestRemoveBreakpointByNameCommand(t *testing.T) {
	c := newTestConsole(t)
	var out bytes.Buffer
	in := strings.NewReader("x start\nr\n")
	d := New(c, in, &out)
	d.AddBreakpoint(0x0150, "start")

	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `removed breakpoint "start"`) {
		t.Fatalf("expected removal confirmation, got %q", out.String())
	}
	if _, ok := d.breakpoints[0x0150]; ok {
		t.Fatal("expected breakpoint at 0x0150 to be removed")
	}
}

func TestVerboseToggleCommand(t *testing.T) {
	c := newTestConsole(t)
	var out bytes.Buffer
	in := strings.NewReader("v\nr\n")
	d := New(c, in, &out)
	d.AddBreakpoint(0x0150, "start")

	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.verbose {
		t.Fatal("expected verbose mode enabled after 'v' command")
	}
	if !strings.Contains(out.String(), "verbose mode: true") {
		t.Fatalf("expected verbose status message, got %q", out.String())
	}
}
