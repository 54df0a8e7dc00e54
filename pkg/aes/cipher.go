package aes

import (
	"strconv"

	"github.com/kargakis/sboxlab/pkg/sbox"
)

// KeySizeError reports an AES-128 key that is not exactly 16 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// EncryptBlock runs the full AES-128 forward cipher on one 16-byte block,
// parameterised by s (spec.md section 4.8): AddRoundKey(rk0); nine rounds
// of SubBytes->ShiftRows->MixColumns->AddRoundKey(rk_r); a final round of
// SubBytes->ShiftRows->AddRoundKey(rk10).
func EncryptBlock(plaintext, key [16]byte, s sbox.SBox) ([16]byte, error) {
	state, err := LoadState(plaintext[:])
	if err != nil {
		return [16]byte{}, err
	}
	rks := KeyExpansion(key, s)

	state = AddRoundKey(state, rks[0])
	for r := 1; r < Nr; r++ {
		state = SubBytes(state, s)
		state = ShiftRows(state)
		state = MixColumns(state)
		state = AddRoundKey(state, rks[r])
	}
	state = SubBytes(state, s)
	state = ShiftRows(state)
	state = AddRoundKey(state, rks[Nr])

	return state.Bytes(), nil
}

// DecryptBlock runs the full AES-128 inverse cipher (spec.md section 4.8):
// AddRoundKey(rk10); nine rounds of
// InvShiftRows->InvSubBytes->AddRoundKey(rk_r)->InvMixColumns; a final
// round of InvShiftRows->InvSubBytes->AddRoundKey(rk0).
func DecryptBlock(ciphertext, key [16]byte, s sbox.SBox) ([16]byte, error) {
	state, err := LoadState(ciphertext[:])
	if err != nil {
		return [16]byte{}, err
	}
	rks := KeyExpansion(key, s)

	state = AddRoundKey(state, rks[Nr])
	for r := Nr - 1; r >= 1; r-- {
		state = InvShiftRows(state)
		state = InvSubBytes(state, s)
		state = AddRoundKey(state, rks[r])
		state = InvMixColumns(state)
	}
	state = InvShiftRows(state)
	state = InvSubBytes(state, s)
	state = AddRoundKey(state, rks[0])

	return state.Bytes(), nil
}
