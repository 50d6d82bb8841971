package cpu

// execBlock2 handles opcodes 0x80-0xBF: ADD/ADC/SUB/SBC/AND/XOR/OR/CP
// against A, with the right-hand operand an 8-bit register or [HL].
func (c *CPU) execBlock2(op uint8) (uint8, error) {
	group := r8Dst(op)
	src := r8Src(op)
	operand := c.readR8(src)

	c.applyALU(group, operand)

	if src == r8HL {
		return 8, nil
	}
	return 4, nil
}

// applyALU dispatches one of the eight ALU operations against A by its
// 3-bit group code, shared by block 2's register form and block 3's
// immediate form.
func (c *CPU) applyALU(group uint8, operand uint8) {
	switch group {
	case 0: // ADD
		c.add8(operand, false)
	case 1: // ADC
		c.add8(operand, true)
	case 2: // SUB
		c.sub8(operand, false, true)
	case 3: // SBC
		c.sub8(operand, true, true)
	case 4: // AND
		c.and8(operand)
	case 5: // XOR
		c.xor8(operand)
	case 6: // OR
		c.or8(operand)
	case 7: // CP
		c.sub8(operand, false, false)
	}
}
