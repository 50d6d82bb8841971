package bits

import "testing"

func TestHalfCarryAdd8(t *testing.T) {
	if !HalfCarryAdd8(0x0F, 0x01, 0) {
		t.Error("0x0F + 0x01 should half-carry")
	}
	if HalfCarryAdd8(0x0E, 0x01, 0) {
		t.Error("0x0E + 0x01 should not half-carry")
	}
	if !HalfCarryAdd8(0x0E, 0x01, 1) {
		t.Error("0x0E + 0x01 + carry should half-carry")
	}
}

func TestHalfCarrySub8(t *testing.T) {
	if !HalfCarrySub8(0x00, 0x01, 0) {
		t.Error("0x00 - 0x01 should half-borrow")
	}
	if HalfCarrySub8(0x1F, 0x01, 0) {
		t.Error("0x1F - 0x01 should not half-borrow")
	}
}

func TestCarryAdd8(t *testing.T) {
	if !CarryAdd8(0xFF, 0x01, 0) {
		t.Error("0xFF + 0x01 should carry")
	}
	if CarryAdd8(0xFE, 0x01, 0) {
		t.Error("0xFE + 0x01 should not carry")
	}
}

func TestCarrySub8(t *testing.T) {
	if !CarrySub8(0x00, 0x01, 0) {
		t.Error("0x00 - 0x01 should borrow")
	}
	if CarrySub8(0x01, 0x01, 0) {
		t.Error("0x01 - 0x01 should not borrow")
	}
}

func TestHalfCarryAdd16(t *testing.T) {
	if !HalfCarryAdd16(0x0FFF, 0x0001) {
		t.Error("0x0FFF + 0x0001 should half-carry out of bit 11")
	}
	if HalfCarryAdd16(0x0FFE, 0x0001) {
		t.Error("0x0FFE + 0x0001 should not half-carry")
	}
}

func TestCarryAdd16(t *testing.T) {
	if !CarryAdd16(0xFFFF, 0x0001) {
		t.Error("0xFFFF + 0x0001 should carry out of bit 15")
	}
	if CarryAdd16(0xFFFE, 0x0001) {
		t.Error("0xFFFE + 0x0001 should not carry")
	}
}
