package aes

import "github.com/kargakis/sboxlab/pkg/sbox"

// SubBytes applies s byte-wise to every cell of the state.
func SubBytes(state State, s sbox.SBox) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = s.At(state[r][c])
		}
	}
	return out
}

// InvSubBytes applies the inverse of s byte-wise.
func InvSubBytes(state State, s sbox.SBox) State {
	return SubBytes(state, s.Inverse())
}

// ShiftRows cyclically left-shifts row r by r positions.
func ShiftRows(state State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = state[r][(c+r)%4]
		}
	}
	return out
}

// InvShiftRows cyclically right-shifts row r by r positions.
func InvShiftRows(state State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][(c+r)%4] = state[r][c]
		}
	}
	return out
}

// MixColumns multiplies each column by the fixed AES MDS matrix over
// GF(2^8) (spec.md section 4.8).
func MixColumns(state State) State {
	var out State
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[0][c], state[1][c], state[2][c], state[3][c]
		out[0][c] = mul(a0, 2) ^ mul(a1, 3) ^ a2 ^ a3
		out[1][c] = a0 ^ mul(a1, 2) ^ mul(a2, 3) ^ a3
		out[2][c] = a0 ^ a1 ^ mul(a2, 2) ^ mul(a3, 3)
		out[3][c] = mul(a0, 3) ^ a1 ^ a2 ^ mul(a3, 2)
	}
	return out
}

// InvMixColumns multiplies each column by the inverse AES MDS matrix
// [[0x0e,0x0b,0x0d,0x09],[0x09,0x0e,0x0b,0x0d],[0x0d,0x09,0x0e,0x0b],
// [0x0b,0x0d,0x09,0x0e]].
func InvMixColumns(state State) State {
	var out State
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := state[0][c], state[1][c], state[2][c], state[3][c]
		out[0][c] = mul(a0, 0x0e) ^ mul(a1, 0x0b) ^ mul(a2, 0x0d) ^ mul(a3, 0x09)
		out[1][c] = mul(a0, 0x09) ^ mul(a1, 0x0e) ^ mul(a2, 0x0b) ^ mul(a3, 0x0d)
		out[2][c] = mul(a0, 0x0d) ^ mul(a1, 0x09) ^ mul(a2, 0x0e) ^ mul(a3, 0x0b)
		out[3][c] = mul(a0, 0x0b) ^ mul(a1, 0x0d) ^ mul(a2, 0x09) ^ mul(a3, 0x0e)
	}
	return out
}

// AddRoundKey XORs the 16-byte round key, loaded column-major, into state.
func AddRoundKey(state State, roundKey [16]byte) State {
	var out State
	rk, _ := LoadState(roundKey[:])
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = state[r][c] ^ rk[r][c]
		}
	}
	return out
}
