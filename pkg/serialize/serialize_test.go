package serialize

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/kargakis/sboxlab/pkg/sbox"
)

func TestParseFormatSBoxRoundTrip(t *testing.T) {
	id := sbox.Identity()

	text := FormatSBox(id)
	got, err := ParseSBox(text)
	if err != nil {
		t.Fatalf("cannot parse formatted sbox: %v", err)
	}
	if got.Bytes()[1] != 1 || got.Bytes()[255] != 255 {
		t.Fatalf("round trip mismatch: %v", got.Bytes())
	}
}

func TestParseSBoxHexAndDecimalMix(t *testing.T) {
	fields := make([]byte, 256)
	for i := range fields {
		fields[i] = byte(i)
	}
	s, err := sbox.FromBytes(fields)
	if err != nil {
		t.Fatal(err)
	}

	// Mix decimal and 0x-hex tokens for the first few entries.
	text := "0 0x01 2 0x03 " + FormatSBox(s)[12:]
	got, err := ParseSBox(text)
	if err != nil {
		t.Fatalf("cannot parse mixed tokens: %v", err)
	}
	if got.At(0) != 0 || got.At(1) != 1 || got.At(2) != 2 || got.At(3) != 3 {
		t.Fatalf("unexpected prefix: %v", got.Bytes()[:4])
	}
}

func TestParseSBoxWrongLength(t *testing.T) {
	_, err := ParseSBox("0 1 2 3")
	if _, ok := err.(sbox.LengthError); !ok {
		t.Fatalf("expected sbox.LengthError, got %v (%T)", err, err)
	}
}

func TestParseBlockRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "spaced pairs", input: "32 43 f6 a8 88 5a 30 8d 31 31 98 a2 e0 37 07 34"},
		{name: "contiguous", input: "3243f6a8885a308d313198a2e0370734"},
		{name: "0x prefixed contiguous", input: "0x3243f6a8885a308d313198a2e0370734"},
	}

	for _, tt := range tests {
		block, err := ParseBlock(tt.input)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if block[0] != 0x32 || block[15] != 0x34 {
			t.Fatalf("%s: unexpected block %v", tt.name, block)
		}
		if FormatBlock(block) != "32 43 f6 a8 88 5a 30 8d 31 31 98 a2 e0 37 07 34" {
			t.Fatalf("%s: unexpected format %q", tt.name, FormatBlock(block))
		}
	}
}

func TestParseBlockInvalidHex(t *testing.T) {
	_, err := ParseBlock("zz 43 f6 a8 88 5a 30 8d 31 31 98 a2 e0 37 07 34")
	if _, ok := err.(HexError); !ok {
		t.Fatalf("expected HexError, got %v (%T)", err, err)
	}
}

func TestSBoxFileRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := sbox.Identity()

	if err := WriteSBoxFile(fsys, "sbox.txt", s); err != nil {
		t.Fatalf("cannot write sbox file: %v", err)
	}
	got, err := ReadSBoxFile(fsys, "sbox.txt")
	if err != nil {
		t.Fatalf("cannot read sbox file: %v", err)
	}
	if got.Bytes()[42] != 42 {
		t.Fatalf("unexpected round trip: %v", got.Bytes())
	}
}

func TestBlockFileRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	var b [16]byte
	for i := range b {
		b[i] = byte(i * 17)
	}

	if err := WriteBlockFile(fsys, "pt.txt", b); err != nil {
		t.Fatalf("cannot write block file: %v", err)
	}
	got, err := ReadBlockFile(fsys, "pt.txt")
	if err != nil {
		t.Fatalf("cannot read block file: %v", err)
	}
	if got != b {
		t.Fatalf("expected %v, got %v", b, got)
	}
}
