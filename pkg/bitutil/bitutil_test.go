package bitutil_test

import (
	stdbits "math/bits"
	"testing"

	"github.com/kargakis/sboxlab/pkg/bitutil"
)

func TestWeightAgainstStdlib(t *testing.T) {
	for x := 0; x < 256; x++ {
		want := stdbits.OnesCount8(byte(x))
		got := bitutil.Weight(byte(x))
		if got != want {
			t.Errorf("Weight(%d): expected %d, got %d", x, want, got)
		}
	}
}

func TestParity(t *testing.T) {
	tests := []struct {
		name   string
		x      byte
		expect int
	}{
		{name: "zero", x: 0b00000000, expect: 0},
		{name: "one bit", x: 0b00000001, expect: 1},
		{name: "even bits", x: 0b00000011, expect: 0},
		{name: "all bits", x: 0b11111111, expect: 0},
		{name: "odd bits", x: 0b11111110, expect: 1},
	}

	for _, tt := range tests {
		got := bitutil.Parity(tt.x)
		if got != tt.expect {
			t.Errorf("%s: expected parity %d, got %d", tt.name, tt.expect, got)
		}
	}
}

func TestDotParity(t *testing.T) {
	tests := []struct {
		name       string
		a, x       byte
		expect     int
	}{
		{name: "disjoint masks", a: 0b1010, x: 0b0101, expect: 0},
		{name: "single shared bit", a: 0b1010, x: 0b1000, expect: 1},
		{name: "two shared bits", a: 0b1111, x: 0b0011, expect: 0},
	}

	for _, tt := range tests {
		got := bitutil.DotParity(tt.a, tt.x)
		if got != tt.expect {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.expect, got)
		}
	}
}

func TestSign(t *testing.T) {
	if bitutil.Sign(0) != 1 {
		t.Errorf("Sign(0): expected 1")
	}
	if bitutil.Sign(1) != -1 {
		t.Errorf("Sign(1): expected -1")
	}
	if bitutil.Sign(2) != 1 {
		t.Errorf("Sign(2): expected 1 (even)")
	}
}
