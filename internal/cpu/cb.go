package cpu

// execCB handles the 0xCB-prefixed instruction page: rotate/shift/swap,
// BIT, RES, and SET, each taking an r8 operand (register or [HL]) in
// the low 3 bits.
func (c *CPU) execCB(op uint8) (uint8, error) {
	group := block(op)
	reg := r8Src(op)
	operand := c.readR8(reg)

	memOperand := reg == r8HL

	switch group {
	case 0: // rotate/shift/swap, selected by the middle 3 bits
		sub := r8Dst(op)
		var result uint8
		switch sub {
		case 0:
			result = c.rotateLeft(operand, true)
		case 1:
			result = c.rotateRight(operand, true)
		case 2:
			result = c.rotateLeftThroughCarry(operand)
			c.SetFlag(FlagZ, result == 0)
		case 3:
			result = c.rotateRightThroughCarry(operand)
			c.SetFlag(FlagZ, result == 0)
		case 4:
			result = c.shiftLeftArithmetic(operand)
		case 5:
			result = c.shiftRightArithmetic(operand)
		case 6:
			result = c.swap(operand)
		default:
			result = c.shiftRightLogical(operand)
		}
		c.writeR8(reg, result)
		if memOperand {
			return 16, nil
		}
		return 8, nil

	case 1: // BIT b3, r8
		c.bitTest(operand, b3Field(op))
		if memOperand {
			return 12, nil
		}
		return 8, nil

	case 2: // RES b3, r8
		c.writeR8(reg, operand&^(1<<b3Field(op)))
		if memOperand {
			return 16, nil
		}
		return 8, nil

	default: // SET b3, r8
		c.writeR8(reg, operand|(1<<b3Field(op)))
		if memOperand {
			return 16, nil
		}
		return 8, nil
	}
}
