package cpu

import "gameboy-emulator/internal/bits"

// execBlock0 handles opcodes 0x00-0x3F: 16-bit loads and increments,
// 8-bit increment/decrement/immediate-load, the accumulator rotate and
// flag instructions, and the relative jumps.
func (c *CPU) execBlock0(op uint8) (uint8, error) {
	switch {
	case op == 0x00:
		return 4, nil

	case op == 0x10:
		c.Stopped = true
		c.fetch8() // STOP is followed by an ignored padding byte
		return 4, nil

	case op&0xCF == 0x01: // LD r16, imm16
		c.SetR16(r16Field(op), c.fetch16())
		return 12, nil

	case op&0xCF == 0x02: // LD [r16mem], A
		c.Bus.Write(c.r16memAddr(r16Field(op)), c.A)
		return 8, nil

	case op&0xCF == 0x0A: // LD A, [r16mem]
		c.A = c.Bus.Read(c.r16memAddr(r16Field(op)))
		return 8, nil

	case op == 0x08: // LD [imm16], SP
		addr := c.fetch16()
		c.Bus.Write(addr, uint8(c.SP))
		c.Bus.Write(addr+1, uint8(c.SP>>8))
		return 20, nil

	case op&0xCF == 0x03: // INC r16
		c.SetR16(r16Field(op), c.GetR16(r16Field(op))+1)
		return 8, nil

	case op&0xCF == 0x0B: // DEC r16
		c.SetR16(r16Field(op), c.GetR16(r16Field(op))-1)
		return 8, nil

	case op&0xCF == 0x09: // ADD HL, r16
		c.addHL(c.GetR16(r16Field(op)))
		return 8, nil

	case op&0xC7 == 0x04: // INC r8 / INC [HL]
		dst := r8Dst(op)
		v := c.inc8(c.readR8(dst))
		c.writeR8(dst, v)
		if dst == r8HL {
			return 12, nil
		}
		return 4, nil

	case op&0xC7 == 0x05: // DEC r8 / DEC [HL]
		dst := r8Dst(op)
		v := c.dec8(c.readR8(dst))
		c.writeR8(dst, v)
		if dst == r8HL {
			return 12, nil
		}
		return 4, nil

	case op&0xC7 == 0x06: // LD r8, imm8
		dst := r8Dst(op)
		c.writeR8(dst, c.fetch8())
		if dst == r8HL {
			return 12, nil
		}
		return 8, nil

	case op == 0x07: // RLCA
		c.A = c.rotateLeft(c.A, false)
		c.SetFlag(FlagZ, false)
		return 4, nil

	case op == 0x0F: // RRCA
		c.A = c.rotateRight(c.A, false)
		c.SetFlag(FlagZ, false)
		return 4, nil

	case op == 0x17: // RLA
		c.A = c.rotateLeftThroughCarry(c.A)
		c.SetFlag(FlagZ, false)
		return 4, nil

	case op == 0x1F: // RRA
		c.A = c.rotateRightThroughCarry(c.A)
		c.SetFlag(FlagZ, false)
		return 4, nil

	case op == 0x27: // DAA
		c.daa()
		return 4, nil

	case op == 0x2F: // CPL
		c.A = ^c.A
		c.SetFlag(FlagN, true)
		c.SetFlag(FlagH, true)
		return 4, nil

	case op == 0x37: // SCF
		c.SetFlag(FlagN, false)
		c.SetFlag(FlagH, false)
		c.SetFlag(FlagC, true)
		return 4, nil

	case op == 0x3F: // CCF
		c.SetFlag(FlagN, false)
		c.SetFlag(FlagH, false)
		c.SetFlag(FlagC, !c.Flag(FlagC))
		return 4, nil

	case op == 0x18: // JR e8
		c.jr(c.fetch8())
		return 12, nil

	case op&0xE7 == 0x20: // JR cc, e8
		e8 := c.fetch8()
		if c.CheckCondition(ccField(op)) {
			c.jr(e8)
			return 12, nil
		}
		return 8, nil

	default:
		return 0, &DecodeError{Opcode: uint16(op)}
	}
}

// r16memAddr resolves an r16mem field to an address, applying HL+/HL-
// auto-increment/decrement after the caller uses the returned address.
func (c *CPU) r16memAddr(code uint8) uint16 {
	switch code {
	case r16memBC:
		return c.BC()
	case r16memDE:
		return c.DE()
	case r16memHLInc:
		addr := c.HL()
		c.SetHL(addr + 1)
		return addr
	default:
		addr := c.HL()
		c.SetHL(addr - 1)
		return addr
	}
}

// jr applies a signed 8-bit displacement to PC, sign-extending e8 to
// 16 bits before adding so the destination wraps correctly for both
// forward and backward jumps.
func (c *CPU) jr(e8 uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(e8)))
}

func (c *CPU) addHL(operand uint16) {
	result := c.HL() + operand
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, bits.HalfCarryAdd16(c.HL(), operand))
	c.SetFlag(FlagC, bits.CarryAdd16(c.HL(), operand))
	c.SetHL(result)
}
