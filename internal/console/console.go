// Package console wires the CPU, memory bus, PPU, interrupt controller,
// timer, and cartridge into a runnable Game Boy. It owns the boot
// sequence and the single-step/run loop a debugger or CLI drives.
package console

import (
	"fmt"
	"io"
	"log"

	"gameboy-emulator/internal/cartridge"
	"gameboy-emulator/internal/cpu"
	"gameboy-emulator/internal/interrupt"
	"gameboy-emulator/internal/memory"
	"gameboy-emulator/internal/ppu"
	"gameboy-emulator/internal/timer"
)

// maxBootROMSize is the largest boot ROM New accepts; the real
// DMG boot ROM is 256 bytes.
const maxBootROMSize = cartridge.BootROMMaxSize

// Console is a fully wired Game Boy: CPU, bus, PPU, timer, interrupt
// controller, and cartridge.
type Console struct {
	CPU       *cpu.CPU
	Bus       *memory.Bus
	PPU       *ppu.PPU
	Timer     *timer.Timer
	Interrupt *interrupt.Controller
	Cartridge *cartridge.Cartridge

	Logger *log.Logger
}

// vramAdapter exposes memory.Bus's raw VRAM/OAM accessors as ppu.VRAM,
// keeping the PPU's dependency on the bus to exactly the two methods it
// actually needs.
type vramAdapter struct{ bus *memory.Bus }

func (a vramAdapter) RawVRAM(addr uint16) uint8 { return a.bus.RawVRAM(addr) }
func (a vramAdapter) RawOAM(addr uint16) uint8  { return a.bus.RawOAM(addr) }

// New constructs a Console by copying bootROM into ROM[0x0000:] and a
// fixed 52-byte header template into ROM[0x0100:0x0134]; every other
// ROM byte comes from cartridgeROM. bootROM must be no larger than 256
// bytes.
func New(bootROM []byte, cartridgeROM []byte) (*Console, error) {
	if len(bootROM) > maxBootROMSize {
		return nil, fmt.Errorf("console: boot ROM too large: got %d bytes, max %d", len(bootROM), maxBootROMSize)
	}

	cart, err := cartridge.New(cartridgeROM)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	rom := make([]byte, len(cart.ROM))
	copy(rom, cart.ROM)
	copy(rom, bootROM)
	copy(rom[cartridge.HeaderTemplateStart:cartridge.HeaderTemplateEnd], cartridge.HeaderTemplate[:])
	cart.ROM = rom

	ic := interrupt.New()
	bus := memory.New(ic)
	bus.LoadCartridge(cart)

	tm := timer.New(ic)
	bus.Timer = tm

	gpu := ppu.New(vramAdapter{bus: bus}, ic)
	bus.PPU = gpu

	c := cpu.New(bus, ic)

	return &Console{
		CPU:       c,
		Bus:       bus,
		PPU:       gpu,
		Timer:     tm,
		Interrupt: ic,
		Cartridge: cart,
		Logger:    log.New(io.Discard, "", 0),
	}, nil
}

// Step runs one CPU instruction (or interrupt dispatch, or idle HALT
// cycle) and advances the timer and PPU by the same number of cycles,
// keeping every component's clock in lockstep.
func (c *Console) Step() (uint8, error) {
	cycles, err := c.CPU.Step()
	if err != nil {
		return 0, err
	}
	c.Timer.Step(cycles)
	c.PPU.Step(cycles)
	return cycles, nil
}

// RunFrame steps the console until the PPU reports a completed frame,
// returning the number of Step calls made (instructions, interrupt
// dispatches, and idle HALT/STOP cycles).
func (c *Console) RunFrame() (int, error) {
	steps := 0
	for !c.PPU.FrameReady {
		if _, err := c.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	c.PPU.ClearFrameReady()
	return steps, nil
}
