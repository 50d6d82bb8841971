package cpu

// Flag bit positions within F, the low byte of AF. The low nibble of F
// is always zero; POP AF and any other path that writes F must mask to
// FlagZ|FlagN|FlagH|FlagC.
const (
	FlagZ uint8 = 0x80
	FlagN uint8 = 0x40
	FlagH uint8 = 0x20
	FlagC uint8 = 0x10

	flagMask uint8 = FlagZ | FlagN | FlagH | FlagC
)

// Registers holds the Sharp LR35902's eight 8-bit registers (paired as
// AF/BC/DE/HL), the stack pointer, and the program counter.
type Registers struct {
	A, F    uint8
	B, C    uint8
	D, E    uint8
	H, L    uint8
	SP, PC  uint16
}

// AF, BC, DE, HL read the 16-bit register pairs, high byte first.
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetAF writes A and F, masking F to the four flag bits per the Open
// Question resolution: F's low nibble is hardwired to zero.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & flagMask
}

func (r *Registers) SetBC(v uint16) { r.B, r.C = uint8(v>>8), uint8(v) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = uint8(v>>8), uint8(v) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = uint8(v>>8), uint8(v) }

// Flag reports whether the given flag bit is set in F.
func (r *Registers) Flag(f uint8) bool { return r.F&f != 0 }

// SetFlag sets or clears a single flag bit in F.
func (r *Registers) SetFlag(f uint8, v bool) {
	if v {
		r.F |= f
	} else {
		r.F &^= f
	}
}

// r8 field codes, per the 3-bit operand encoding shared by blocks 0-2.
const (
	r8B = iota
	r8C
	r8D
	r8E
	r8H
	r8L
	r8HL // [HL] — not a register, handled specially by callers
	r8A
)

// r16 field codes, the 2-bit register-pair encoding used by 16-bit
// load/arithmetic instructions.
const (
	r16BC = iota
	r16DE
	r16HL
	r16SP
)

// r16stk field codes, the PUSH/POP pair encoding (SP's slot holds AF).
const (
	r16stkBC = iota
	r16stkDE
	r16stkHL
	r16stkAF
)

// r16mem field codes, the indirect-load pair encoding; HL+ and HL- also
// auto-increment/decrement HL after the access.
const (
	r16memBC = iota
	r16memDE
	r16memHLInc
	r16memHLDec
)

// Condition codes used by JR/JP/CALL/RET.
const (
	condNZ = iota
	condZ
	condNC
	condC
)

// GetR8 reads an 8-bit register by field code. r8HL must be handled by
// the caller via the bus; it is never valid to call GetR8 with it.
func (r *Registers) GetR8(code uint8) uint8 {
	switch code {
	case r8B:
		return r.B
	case r8C:
		return r.C
	case r8D:
		return r.D
	case r8E:
		return r.E
	case r8H:
		return r.H
	case r8L:
		return r.L
	case r8A:
		return r.A
	}
	panic("cpu: GetR8 called with [HL] code")
}

// SetR8 writes an 8-bit register by field code; see GetR8 for the [HL]
// restriction.
func (r *Registers) SetR8(code uint8, v uint8) {
	switch code {
	case r8B:
		r.B = v
	case r8C:
		r.C = v
	case r8D:
		r.D = v
	case r8E:
		r.E = v
	case r8H:
		r.H = v
	case r8L:
		r.L = v
	case r8A:
		r.A = v
	default:
		panic("cpu: SetR8 called with [HL] code")
	}
}

// GetR16 reads a register pair by its r16 field code.
func (r *Registers) GetR16(code uint8) uint16 {
	switch code {
	case r16BC:
		return r.BC()
	case r16DE:
		return r.DE()
	case r16HL:
		return r.HL()
	default:
		return r.SP
	}
}

// SetR16 writes a register pair by its r16 field code.
func (r *Registers) SetR16(code uint8, v uint16) {
	switch code {
	case r16BC:
		r.SetBC(v)
	case r16DE:
		r.SetDE(v)
	case r16HL:
		r.SetHL(v)
	default:
		r.SP = v
	}
}

// GetR16Stk reads a register pair by its r16stk field code.
func (r *Registers) GetR16Stk(code uint8) uint16 {
	switch code {
	case r16stkBC:
		return r.BC()
	case r16stkDE:
		return r.DE()
	case r16stkHL:
		return r.HL()
	default:
		return r.AF()
	}
}

// SetR16Stk writes a register pair by its r16stk field code.
func (r *Registers) SetR16Stk(code uint8, v uint16) {
	switch code {
	case r16stkBC:
		r.SetBC(v)
	case r16stkDE:
		r.SetDE(v)
	case r16stkHL:
		r.SetHL(v)
	default:
		r.SetAF(v)
	}
}

// CheckCondition evaluates a 2-bit condition code against the current flags.
func (r *Registers) CheckCondition(cc uint8) bool {
	switch cc {
	case condNZ:
		return !r.Flag(FlagZ)
	case condZ:
		return r.Flag(FlagZ)
	case condNC:
		return !r.Flag(FlagC)
	default:
		return r.Flag(FlagC)
	}
}
