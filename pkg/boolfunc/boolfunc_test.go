package boolfunc

import (
	"testing"

	"github.com/kargakis/sboxlab/pkg/sbox"
)

func TestBitMatchesSBox(t *testing.T) {
	c := New(sbox.StandardAES())
	for i := 0; i < 8; i++ {
		bit := c.Bit(i)
		for x := 0; x < 256; x++ {
			want := (sbox.StandardAES().At(byte(x)) >> uint(i)) & 1
			if bit[x] != want {
				t.Fatalf("bit %d at x=%d: got %d, want %d", i, x, bit[x], want)
			}
		}
	}
}

func TestBitIsMemoized(t *testing.T) {
	c := New(sbox.StandardAES())
	a := c.Bit(3)
	b := c.Bit(3)
	if a != b {
		t.Error("expected repeated Bit calls to return the same table")
	}
}

func TestXORIsBitwise(t *testing.T) {
	c := New(sbox.StandardAES())
	xor := c.XOR(0, 1)
	b0, b1 := c.Bit(0), c.Bit(1)
	for x := 0; x < 256; x++ {
		if xor[x] != b0[x]^b1[x] {
			t.Fatalf("XOR mismatch at x=%d", x)
		}
	}
}

func TestIdentitySBoxBitZeroIsParityOfLSB(t *testing.T) {
	c := New(sbox.Identity())
	bit := c.Bit(0)
	for x := 0; x < 256; x++ {
		want := byte(x) & 1
		if bit[x] != want {
			t.Fatalf("identity bit 0 at x=%d: got %d, want %d", x, bit[x], want)
		}
	}
}
