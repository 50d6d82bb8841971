// Package cpu interprets the Sharp LR35902 instruction set: block/field
// opcode decoding, the register file, ALU operations, and the interrupt
// and HALT/STOP state machine.
package cpu

import (
	"fmt"

	"gameboy-emulator/internal/bits"
	"gameboy-emulator/internal/interrupt"
)

// Bus is the memory interface the CPU reads instructions and operands
// through; implemented by *memory.Bus.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Observer receives a notification before every instruction fetch,
// letting a debugger inspect or pause execution. It is invoked with the
// program counter of the instruction about to execute.
type Observer interface {
	OnStep(pc uint16)
}

// DecodeError reports an opcode the decoder has no defined behavior for.
// The only byte values this can happen for are the Game Boy's eleven
// documented illegal opcodes (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC,
// 0xED, 0xF4, 0xFC, 0xFD).
type DecodeError struct {
	Opcode uint16 // CB-prefixed opcodes are encoded as 0xCB00|op
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// CPU interprets instructions against Bus and Interrupt, tracking HALT
// and the delayed-EI interrupt master enable.
type CPU struct {
	Registers

	Bus       Bus
	Interrupt *interrupt.Controller
	Observer  Observer

	Halted bool
	Stopped bool

	// pendingEI counts down the one-instruction delay between EI and
	// IME actually taking effect, per the Open Question resolution.
	pendingEI int

	// haltBug, when true, makes the next fetch not advance PC: the
	// documented HALT bug that fires when HALT executes with IME
	// clear and a pending interrupt already latched.
	haltBug bool

	Cycles uint64
}

// New returns a CPU wired to bus and ic, with PC at 0 as the bus's
// boot ROM entry point and SP at 0xFFFE.
func New(bus Bus, ic *interrupt.Controller) *CPU {
	return &CPU{Registers: Registers{SP: 0xFFFE}, Bus: bus, Interrupt: ic}
}

func (c *CPU) fetch8() uint8 {
	v := c.Bus.Read(c.PC)
	if !c.haltBug {
		c.PC++
	} else {
		c.haltBug = false
	}
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return hi<<8 | lo
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.Bus.Write(c.SP, uint8(v>>8))
	c.SP--
	c.Bus.Write(c.SP, uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.Bus.Read(c.SP))
	c.SP++
	hi := uint16(c.Bus.Read(c.SP))
	c.SP++
	return hi<<8 | lo
}

// Step executes one instruction (or services a pending interrupt, or
// idles one cycle while halted) and returns the number of T-states it
// consumed.
func (c *CPU) Step() (uint8, error) {
	if c.pendingEI > 0 {
		c.pendingEI--
		if c.pendingEI == 0 {
			c.Interrupt.IME = true
		}
	}

	if c.Stopped {
		if c.Interrupt.IF&(1<<uint8(interrupt.Joypad)) == 0 {
			c.Cycles += 4
			return 4, nil
		}
		c.Stopped = false
	}

	if cycles, handled := c.serviceInterrupt(); handled {
		c.Cycles += uint64(cycles)
		return cycles, nil
	}

	if c.Halted {
		c.Cycles += 4
		return 4, nil
	}

	if c.Observer != nil {
		c.Observer.OnStep(c.PC)
	}

	pc := c.PC
	op := c.fetch8()

	cycles, err := c.execute(op)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.PC = pc
		}
		return 0, err
	}
	c.Cycles += uint64(cycles)
	return cycles, nil
}

// serviceInterrupt delivers the highest-priority pending, enabled
// interrupt if IME is set (or wakes a halted CPU even with IME clear).
// It returns the cycle cost and whether an interrupt was serviced.
func (c *CPU) serviceInterrupt() (uint8, bool) {
	src, ok := c.Interrupt.Highest()
	if !ok {
		return 0, false
	}

	if c.Halted {
		c.Halted = false
		if !c.Interrupt.IME {
			return 0, false
		}
	}

	if !c.Interrupt.IME {
		return 0, false
	}

	c.Interrupt.IME = false
	c.Interrupt.Acknowledge(src)
	c.push16(c.PC)
	c.PC = interrupt.Vector(src)
	return 20, true
}

func (c *CPU) execute(op uint8) (uint8, error) {
	switch block(op) {
	case 0:
		return c.execBlock0(op)
	case 1:
		return c.execBlock1(op)
	case 2:
		return c.execBlock2(op)
	default:
		return c.execBlock3(op)
	}
}

// readR8 reads an 8-bit operand by field code, routing code r8HL
// through [HL] instead of the register file.
func (c *CPU) readR8(code uint8) uint8 {
	if code == r8HL {
		return c.Bus.Read(c.HL())
	}
	return c.GetR8(code)
}

func (c *CPU) writeR8(code uint8, v uint8) {
	if code == r8HL {
		c.Bus.Write(c.HL(), v)
		return
	}
	c.SetR8(code, v)
}

// add8 performs A = A + operand (+carryIn if withCarry), setting flags.
func (c *CPU) add8(operand uint8, withCarry bool) {
	var carryIn uint8
	if withCarry && c.Flag(FlagC) {
		carryIn = 1
	}
	result := c.A + operand + carryIn
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, bits.HalfCarryAdd8(c.A, operand, carryIn))
	c.SetFlag(FlagC, bits.CarryAdd8(c.A, operand, carryIn))
	c.A = result
}

func (c *CPU) sub8(operand uint8, withCarry bool, storeResult bool) {
	var carryIn uint8
	if withCarry && c.Flag(FlagC) {
		carryIn = 1
	}
	result := c.A - operand - carryIn
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, bits.HalfCarrySub8(c.A, operand, carryIn))
	c.SetFlag(FlagC, bits.CarrySub8(c.A, operand, carryIn))
	if storeResult {
		c.A = result
	}
}

func (c *CPU) and8(operand uint8) {
	c.A &= operand
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, true)
	c.SetFlag(FlagC, false)
}

func (c *CPU) xor8(operand uint8) {
	c.A ^= operand
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, false)
}

func (c *CPU) or8(operand uint8) {
	c.A |= operand
	c.SetFlag(FlagZ, c.A == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, false)
}

func (c *CPU) inc8(v uint8) uint8 {
	result := v + 1
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, bits.HalfCarryAdd8(v, 1, 0))
	return result
}

func (c *CPU) dec8(v uint8) uint8 {
	result := v - 1
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, bits.HalfCarrySub8(v, 1, 0))
	return result
}
