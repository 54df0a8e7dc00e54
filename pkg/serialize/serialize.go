// Package serialize round-trips the hex/decimal text formats collaborators
// use to hand S-boxes and 16-byte blocks to the core (spec.md section 6).
// The core itself never parses or formats anything; these helpers sit
// between a file (or a bare string) and pkg/sbox.SBox /[16]byte values.
package serialize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/kargakis/sboxlab/pkg/parameters"
	"github.com/kargakis/sboxlab/pkg/sbox"
)

// HexError reports a boundary-only parse failure: a token that was supposed
// to be a byte (decimal or hex) did not parse as one.
type HexError struct {
	Token string
}

func (e HexError) Error() string {
	return fmt.Sprintf("serialize: cannot parse byte token %q", e.Token)
}

// ParseSBox parses a whitespace/comma/newline-separated sequence of 256
// byte tokens, each decimal or hex with an optional "0x" prefix. Tokens
// with a "0x" prefix are always hex. Tokens without one are read as hex if
// any unprefixed token in the input contains a hex letter (a-f), as the
// two-digit grid FormatSBox writes always does, and as decimal otherwise.
// The tokens may arrive as a flat list or row-major in a 16x16 grid;
// either way whitespace splitting flattens them identically.
func ParseSBox(input string) (sbox.SBox, error) {
	fields := splitFields(input)
	if len(fields) != parameters.TableSize {
		return sbox.SBox{}, sbox.LengthError(len(fields))
	}

	bareBase := 10
	for _, f := range fields {
		if !hasHexPrefix(f) && strings.ContainsAny(f, "abcdefABCDEF") {
			bareBase = 16
			break
		}
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := parseByteToken(f, bareBase)
		if err != nil {
			return sbox.SBox{}, err
		}
		values[i] = v
	}
	return sbox.New(values)
}

// FormatSBox renders s as a 16x16 grid of two-digit hex bytes, one row per
// line, matching the row-major grid format ParseSBox accepts back.
func FormatSBox(s sbox.SBox) string {
	table := s.Bytes()
	var b strings.Builder
	for row := 0; row < 16; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < 16; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%02x", table[row*16+col])
		}
	}
	return b.String()
}

// ParseBlock parses a 16-byte value given as hex, whitespace-separated
// pairs acceptable (e.g. "2b 7e 15 16 ..." or "2b7e1516...").
func ParseBlock(input string) ([parameters.BlockSize]byte, error) {
	var out [parameters.BlockSize]byte

	fields := splitFields(input)
	joined := strings.Join(fields, "")
	joined = strings.TrimPrefix(joined, "0x")
	joined = strings.TrimPrefix(joined, "0X")

	if len(joined) != parameters.BlockSize*2 {
		return out, fmt.Errorf("serialize: block has %d hex digits, want %d", len(joined), parameters.BlockSize*2)
	}

	for i := 0; i < parameters.BlockSize; i++ {
		pair := joined[i*2 : i*2+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return out, HexError{Token: pair}
		}
		out[i] = byte(v)
	}
	return out, nil
}

// FormatBlock renders b as whitespace-separated lowercase hex byte pairs.
func FormatBlock(b [parameters.BlockSize]byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}

func splitFields(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
}

func hasHexPrefix(tok string) bool {
	return strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X")
}

func parseByteToken(tok string, base int) (int, error) {
	t := tok
	if hasHexPrefix(t) {
		base = 16
		t = t[2:]
	}
	v, err := strconv.ParseInt(t, base, 32)
	if err != nil {
		return 0, HexError{Token: tok}
	}
	return int(v), nil
}

// WriteSBoxFile writes s to path on fsys in the grid format FormatSBox
// produces, the same shape as the teacher's afero.File-based Write.
func WriteSBoxFile(fsys afero.Fs, path string, s sbox.SBox) error {
	return afero.WriteFile(fsys, path, []byte(FormatSBox(s)+"\n"), 0o644)
}

// ReadSBoxFile reads and parses an S-box from path on fsys.
func ReadSBoxFile(fsys afero.Fs, path string) (sbox.SBox, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return sbox.SBox{}, fmt.Errorf("serialize: cannot read %s: %w", path, err)
	}
	return ParseSBox(string(data))
}

// WriteBlockFile writes b to path on fsys as a single hex line.
func WriteBlockFile(fsys afero.Fs, path string, b [parameters.BlockSize]byte) error {
	return afero.WriteFile(fsys, path, []byte(FormatBlock(b)+"\n"), 0o644)
}

// ReadBlockFile reads and parses a 16-byte block from path on fsys.
func ReadBlockFile(fsys afero.Fs, path string) ([parameters.BlockSize]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return [parameters.BlockSize]byte{}, fmt.Errorf("serialize: cannot read %s: %w", path, err)
	}
	return ParseBlock(string(data))
}
