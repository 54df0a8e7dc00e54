package trace

import (
	"testing"

	"github.com/kargakis/sboxlab/pkg/aes"
	"github.com/kargakis/sboxlab/pkg/sbox"
)

func TestEncryptProducesFullTrace(t *testing.T) {
	plaintext := [16]byte{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34}
	key := [16]byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
	want := [16]byte{0x39, 0x25, 0x84, 0x1d, 0x02, 0xdc, 0x09, 0xfb, 0xdc, 0x11, 0x85, 0x97, 0x19, 0x6a, 0x0b, 0x32}

	rec, ct, err := Encrypt(plaintext, key, sbox.StandardAES())
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if ct != want {
		t.Errorf("ciphertext: got %x, want %x", ct, want)
	}
	if rec.Len() != TotalSteps {
		t.Fatalf("expected %d steps, got %d", TotalSteps, rec.Len())
	}

	steps := rec.Steps()
	if steps[0].Operation != Init {
		t.Errorf("first step: expected Init, got %v", steps[0].Operation)
	}
	last := steps[len(steps)-1]
	if last.Operation != Final {
		t.Errorf("last step: expected Final, got %v", last.Operation)
	}
	if last.Progress != 100 {
		t.Errorf("last step progress: expected 100, got %d", last.Progress)
	}
	if last.State.Bytes() != want {
		t.Errorf("final step state: got %x, want %x", last.State.Bytes(), want)
	}
}

func TestDecryptIsInverseAndFullTrace(t *testing.T) {
	plaintext := [16]byte{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34}
	key := [16]byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
	s := sbox.StandardAES()

	_, ct, err := Encrypt(plaintext, key, s)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	rec, pt, err := Decrypt(ct, key, s)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if pt != plaintext {
		t.Errorf("decrypted plaintext: got %x, want %x", pt, plaintext)
	}
	if rec.Len() != TotalSteps {
		t.Fatalf("expected %d steps, got %d", TotalSteps, rec.Len())
	}
}

func TestRecorderSeekAndNavigation(t *testing.T) {
	var pt, key [16]byte
	rec, _, err := Encrypt(pt, key, sbox.StandardAES())
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	step, err := rec.Seek(5)
	if err != nil {
		t.Fatalf("Seek(5): %v", err)
	}
	if step != rec.Current() {
		t.Error("Current did not match the step returned by Seek")
	}

	if _, err := rec.Seek(-1); err == nil {
		t.Error("expected error seeking to -1")
	}
	if _, err := rec.Seek(TotalSteps); err == nil {
		t.Error("expected error seeking past the end")
	}

	prev, ok := rec.Prev()
	if !ok {
		t.Fatal("expected Prev to succeed from step 5")
	}
	if prev.Progress >= step.Progress {
		t.Errorf("expected Prev to move to an earlier step, got progress %d >= %d", prev.Progress, step.Progress)
	}

	next, ok := rec.Next()
	if !ok {
		t.Fatal("expected Next to succeed")
	}
	if next != step {
		t.Errorf("expected Next to return to step 5, got %+v want %+v", next, step)
	}
}

func TestKeyScheduleDependenceFirstSubBytesStepDiverges(t *testing.T) {
	var pt, key [16]byte

	std := sbox.StandardAES()
	table := std.Bytes()
	table[0], table[1] = table[1], table[0]
	shifted, err := sbox.FromBytes(table)
	if err != nil {
		t.Fatalf("sbox.FromBytes: %v", err)
	}

	recStd, ctStd, err := Encrypt(pt, key, std)
	if err != nil {
		t.Fatalf("Encrypt std: %v", err)
	}
	recShifted, ctShifted, err := Encrypt(pt, key, shifted)
	if err != nil {
		t.Fatalf("Encrypt shifted: %v", err)
	}

	if ctStd == ctShifted {
		t.Error("expected differing S-boxes to diverge on final ciphertext")
	}

	firstSubBytes := func(steps []Step) aes.State {
		for _, s := range steps {
			if s.Operation == OpSubBytes {
				return s.State
			}
		}
		t.Fatal("no SubBytes step found")
		return aes.State{}
	}

	if firstSubBytes(recStd.Steps()) == firstSubBytes(recShifted.Steps()) {
		t.Error("expected the first SubBytes step to diverge between the two S-boxes")
	}
}
