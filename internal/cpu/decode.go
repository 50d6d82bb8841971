package cpu

// The Sharp LR35902 opcode map splits cleanly into four 2-bit blocks
// (bits 7-6), each further subdivided by its own 3-bit fields rather
// than needing a 256-entry per-opcode table. block, r8Dst, r8Src,
// r16Field (shared by the r16, r16stk and r16mem encodings), tgt3,
// ccField, and b3Field pull those fields out of a raw opcode byte.

func block(op uint8) uint8 { return op >> 6 }

// r8Dst/r8Src pull the 3-bit destination/source register fields used by
// blocks 0-2 (bits 5-3 and bits 2-0 respectively).
func r8Dst(op uint8) uint8 { return (op >> 3) & 0x07 }
func r8Src(op uint8) uint8 { return op & 0x07 }

// r16Field pulls the 2-bit register-pair field at bits 5-4.
func r16Field(op uint8) uint8 { return (op >> 4) & 0x03 }

// tgt3 pulls the RST target field (bits 5-3), a literal 3-bit index
// into the eight fixed reset vectors 0x00,0x08,...,0x38.
func tgt3(op uint8) uint8 { return (op >> 3) & 0x07 }

// ccField pulls the 2-bit condition-code field at bits 4-3, used by the
// conditional JR/JP/CALL/RET forms in block 0 and block 3.
func ccField(op uint8) uint8 { return (op >> 3) & 0x03 }

// b3Field pulls the 3-bit bit-index field (bits 5-3) used by CB-prefixed
// BIT/RES/SET.
func b3Field(op uint8) uint8 { return (op >> 3) & 0x07 }
