// Package aes implements the AES-128 block cipher core (C7): a 4x4
// column-major state, the round transformations, and a key schedule, all
// parameterised by a caller-supplied S-box rather than the fixed FIPS-197
// one. pkg/trace drives this package one operation at a time to produce the
// step trace; pkg/analysis exposes the whole-block convenience wrappers.
package aes

import (
	"strconv"

	"github.com/kargakis/sboxlab/pkg/parameters"
)

// BlockSize is the AES block size in bytes.
const BlockSize = parameters.BlockSize

// State is the 4x4 byte matrix AES operates on, column-major: State[r][c]
// holds row r, column c.
type State [4][4]byte

// BlockSizeError reports an input that is not exactly BlockSize bytes.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes: invalid block size " + strconv.Itoa(int(b))
}

// LoadState reads a 16-byte block into column-major state: byte k lands at
// row k%4, column k/4 (spec.md section 4.9).
func LoadState(block []byte) (State, error) {
	var s State
	if len(block) != BlockSize {
		return s, BlockSizeError(len(block))
	}
	for k := 0; k < BlockSize; k++ {
		s[k%4][k/4] = block[k]
	}
	return s, nil
}

// Bytes reads the state back out in column-major order.
func (s State) Bytes() [BlockSize]byte {
	var out [BlockSize]byte
	for k := 0; k < BlockSize; k++ {
		out[k] = s[k%4][k/4]
	}
	return out
}
