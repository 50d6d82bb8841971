// Package bits implements the half-carry and carry predicates shared by
// every arithmetic instruction on the Sharp LR35902. They are pulled out
// of the CPU so the same carry-out logic backs 8-bit ALU ops, INC/DEC,
// and the 16-bit ADD HL/ADD SP forms without being copy-pasted at each
// call site.
package bits

// HalfCarryAdd8 reports whether adding addend and carryIn to base
// carries out of bit 3 (the nibble boundary used by ADD/ADC/INC).
func HalfCarryAdd8(base, addend, carryIn uint8) bool {
	return ((base&0xF)+(addend&0xF)+(carryIn&0xF))&0x10 != 0
}

// HalfCarrySub8 reports whether subtracting subtrahend and carryIn from
// base borrows out of bit 4 (the nibble boundary used by SUB/SBC/DEC/CP).
func HalfCarrySub8(base, subtrahend, carryIn uint8) bool {
	return ((base&0xF)-(subtrahend&0xF)-(carryIn&0xF))&0x10 != 0
}

// CarryAdd8 reports whether adding addend and carryIn to base carries
// out of bit 7.
func CarryAdd8(base, addend, carryIn uint8) bool {
	return (uint16(base)+uint16(addend)+uint16(carryIn))&0x100 != 0
}

// CarrySub8 reports whether subtracting subtrahend and carryIn from
// base borrows out of bit 7.
func CarrySub8(base, subtrahend, carryIn uint8) bool {
	return (uint16(base)-uint16(subtrahend)-uint16(carryIn))&0x100 != 0
}

// HalfCarryAdd16 reports whether adding addend to base carries out of
// bit 11, the half-carry boundary for 16-bit word arithmetic (ADD HL,r16).
func HalfCarryAdd16(base, addend uint16) bool {
	return ((base&0xFFF)+(addend&0xFFF))&0x1000 != 0
}

// CarryAdd16 reports whether adding addend to base carries out of bit 15.
func CarryAdd16(base, addend uint16) bool {
	return uint32(base)+uint32(addend) > 0xFFFF
}

// HalfCarryAddSigned8 computes the half-carry for ADD SP,e8 / LD HL,SP+e8,
// which is defined as an 8-bit add between the low byte of base and the
// unsigned byte representation of the signed displacement.
func HalfCarryAddSigned8(base uint16, e8 uint8) bool {
	return ((base&0xF)+(uint16(e8)&0xF))&0x10 != 0
}

// CarryAddSigned8 computes the carry for ADD SP,e8 / LD HL,SP+e8 from the
// low byte of base as an 8-bit add.
func CarryAddSigned8(base uint16, e8 uint8) bool {
	return ((base&0xFF)+uint16(e8))&0x100 != 0
}
