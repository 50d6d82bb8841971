package cpu

import "gameboy-emulator/internal/bits"

// rstVectors are the eight fixed reset targets RST's 3-bit field selects.
var rstVectors = [8]uint16{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38}

// execBlock3 handles opcodes 0xC0-0xFF: conditional and unconditional
// control flow, stack push/pop, the A,imm8 ALU forms, the high-page and
// absolute memory loads, SP-relative arithmetic, IME control, and the
// CB prefix.
func (c *CPU) execBlock3(op uint8) (uint8, error) {
	switch {
	case isIllegalOpcode(op):
		return 0, &DecodeError{Opcode: uint16(op)}

	case op == 0xCB:
		return c.execCB(c.fetch8())

	case op&0xE7 == 0xC0: // RET cc
		if c.CheckCondition(ccField(op)) {
			c.PC = c.pop16()
			return 20, nil
		}
		return 8, nil

	case op == 0xC9: // RET
		c.PC = c.pop16()
		return 16, nil

	case op == 0xD9: // RETI
		c.PC = c.pop16()
		c.Interrupt.IME = true
		return 16, nil

	case op&0xE7 == 0xC2: // JP cc, imm16
		addr := c.fetch16()
		if c.CheckCondition(ccField(op)) {
			c.PC = addr
			return 16, nil
		}
		return 12, nil

	case op == 0xC3: // JP imm16
		c.PC = c.fetch16()
		return 16, nil

	case op == 0xE9: // JP HL
		c.PC = c.HL()
		return 4, nil

	case op&0xE7 == 0xC4: // CALL cc, imm16
		addr := c.fetch16()
		if c.CheckCondition(ccField(op)) {
			c.push16(c.PC)
			c.PC = addr
			return 24, nil
		}
		return 12, nil

	case op == 0xCD: // CALL imm16
		addr := c.fetch16()
		c.push16(c.PC)
		c.PC = addr
		return 24, nil

	case op&0xC7 == 0xC7: // RST
		c.push16(c.PC)
		c.PC = rstVectors[tgt3(op)]
		return 16, nil

	case op&0xCF == 0xC5: // PUSH r16stk
		c.push16(c.GetR16Stk(r16Field(op)))
		return 16, nil

	case op&0xCF == 0xC1: // POP r16stk
		c.SetR16Stk(r16Field(op), c.pop16())
		return 12, nil

	case op&0xC7 == 0xC6: // ALU A, imm8
		c.applyALU(r8Dst(op), c.fetch8())
		return 8, nil

	case op == 0xE2: // LDH [C], A
		c.Bus.Write(0xFF00+uint16(c.C), c.A)
		return 8, nil

	case op == 0xF2: // LDH A, [C]
		c.A = c.Bus.Read(0xFF00 + uint16(c.C))
		return 8, nil

	case op == 0xE0: // LDH [imm8], A
		addr := 0xFF00 + uint16(c.fetch8())
		c.Bus.Write(addr, c.A)
		return 12, nil

	case op == 0xF0: // LDH A, [imm8]
		addr := 0xFF00 + uint16(c.fetch8())
		c.A = c.Bus.Read(addr)
		return 12, nil

	case op == 0xEA: // LD [imm16], A
		c.Bus.Write(c.fetch16(), c.A)
		return 16, nil

	case op == 0xFA: // LD A, [imm16]
		c.A = c.Bus.Read(c.fetch16())
		return 16, nil

	case op == 0xE8: // ADD SP, e8
		c.SP = c.addSPSigned(c.fetch8())
		return 16, nil

	case op == 0xF8: // LD HL, SP+e8
		c.SetHL(c.addSPSigned(c.fetch8()))
		return 12, nil

	case op == 0xF9: // LD SP, HL
		c.SP = c.HL()
		return 8, nil

	case op == 0xF3: // DI
		c.Interrupt.IME = false
		c.pendingEI = 0
		return 4, nil

	case op == 0xFB: // EI
		c.pendingEI = 2
		return 4, nil

	default:
		return 0, &DecodeError{Opcode: uint16(op)}
	}
}

func isIllegalOpcode(op uint8) bool {
	switch op {
	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return true
	default:
		return false
	}
}

// addSPSigned computes SP + sign-extend(e8), the shared arithmetic
// behind ADD SP,e8 and LD HL,SP+e8: both set flags from an 8-bit add
// between SP's low byte and e8, then propagate the carry into the
// 16-bit result.
func (c *CPU) addSPSigned(e8 uint8) uint16 {
	c.SetFlag(FlagZ, false)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, bits.HalfCarryAddSigned8(c.SP, e8))
	c.SetFlag(FlagC, bits.CarryAddSigned8(c.SP, e8))
	return uint16(int32(c.SP) + int32(int8(e8)))
}
