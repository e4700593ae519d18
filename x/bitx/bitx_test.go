package bitx

import "testing"

func TestBitAndExtract(t *testing.T) {
	var v uint8 = 0b0110_0100
	cases := []struct {
		index uint8
		want  bool
	}{
		{0, false}, {1, false}, {2, true}, {3, false},
		{4, false}, {5, true}, {6, true}, {7, false},
	}
	for _, c := range cases {
		if got := Bit(v, c.index); got != c.want {
			t.Errorf("Bit(%#08b, %d) = %v, want %v", v, c.index, got, c.want)
		}
	}
	if got := Bits(v, 0b11, 5); got != 0b0110_0000 {
		t.Errorf("Bits non-shifted = %#08b, want 0b01100000", got)
	}
	if got := Extract(v, 0b11, 5); got != 0b11 {
		t.Errorf("Extract = %#08b, want 0b11", got)
	}
}

func TestSetClearIdempotent(t *testing.T) {
	// Clearing after setting must equal clearing directly, for every
	// (value, index) over a spread of values.
	values := []uint8{0x00, 0x01, 0x24, 0x55, 0xAA, 0xF0, 0xFF}
	for _, v := range values {
		for index := uint8(0); index < 8; index++ {
			viaSet := Set(Set(v, index, true), index, false)
			direct := Set(v, index, false)
			if viaSet != direct {
				t.Errorf("Set/clear not idempotent: v=%#02x index=%d got %#02x want %#02x",
					v, index, viaSet, direct)
			}
		}
	}
}

func TestSetN(t *testing.T) {
	var v uint8
	v = SetN(v, 0b111, 2, true)
	if v != 0b0001_1100 {
		t.Fatalf("SetN on = %#08b, want 0b00011100", v)
	}
	v = SetN(v, 0b11, 3, false)
	if v != 0b0000_0100 {
		t.Fatalf("SetN off = %#08b, want 0b00000100", v)
	}
}

func TestSetWidths(t *testing.T) {
	// The codec is generic; spot-check a wider register type.
	var v uint16 = 0x0100
	if got := Set(v, 15, true); got != 0x8100 {
		t.Fatalf("Set uint16 = %#04x, want 0x8100", got)
	}
	if !Bit(uint16(0x8000), 15) {
		t.Fatal("Bit uint16 high bit not seen")
	}
}
