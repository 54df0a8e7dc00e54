package analysis

import (
	"testing"

	"github.com/kargakis/sboxlab/pkg/sbox"
	"github.com/kargakis/sboxlab/pkg/security"
)

func TestAnalyzeStandardAESScenario(t *testing.T) {
	r := Analyze(sbox.StandardAES())

	if r.Nonlinearity != 112 {
		t.Errorf("nonlinearity: expected 112, got %d", r.Nonlinearity)
	}
	if r.DifferentialUnif != 4 {
		t.Errorf("differential uniformity: expected 4, got %d", r.DifferentialUnif)
	}
	if r.LAPMaxBias != 16 {
		t.Errorf("LAP max bias: expected 16, got %d", r.LAPMaxBias)
	}
	if r.AlgebraicDegree != 7 {
		t.Errorf("algebraic degree: expected 7, got %d", r.AlgebraicDegree)
	}
	if !r.Balanced || !r.Bijection {
		t.Error("expected standard AES S-box to be balanced and a bijection")
	}
	if r.Security.Level != security.High {
		t.Errorf("expected High security level, got %s", r.Security.Level)
	}
}

func TestAnalyzeIdentityIsLowSecurity(t *testing.T) {
	r := Analyze(sbox.Identity())
	if r.Security.Level != security.Low {
		t.Errorf("expected Low security level, got %s", r.Security.Level)
	}
}

func TestCompareReportsNonlinearityDelta(t *testing.T) {
	ra, rb, delta := Compare(sbox.Identity(), sbox.StandardAES())
	if ra.Nonlinearity != 0 {
		t.Errorf("identity nonlinearity: expected 0, got %d", ra.Nonlinearity)
	}
	if rb.Nonlinearity != 112 {
		t.Errorf("standard AES nonlinearity: expected 112, got %d", rb.Nonlinearity)
	}
	if delta != 112 {
		t.Errorf("delta: expected 112, got %d", delta)
	}
}

func TestEncryptTraceAndDecryptTraceRoundTrip(t *testing.T) {
	s := sbox.StandardAES()
	plaintext := [16]byte{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34}
	key := [16]byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}

	encRec, ct, err := EncryptTrace(plaintext, key, s)
	if err != nil {
		t.Fatalf("EncryptTrace: %v", err)
	}
	if encRec.Len() != 42 {
		t.Errorf("expected 42 steps, got %d", encRec.Len())
	}

	decRec, pt, err := DecryptTrace(ct, key, s)
	if err != nil {
		t.Fatalf("DecryptTrace: %v", err)
	}
	if decRec.Len() != 42 {
		t.Errorf("expected 42 steps, got %d", decRec.Len())
	}
	if pt != plaintext {
		t.Errorf("round trip mismatch: got %x, want %x", pt, plaintext)
	}
}
