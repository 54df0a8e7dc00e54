package aes

import "github.com/kargakis/sboxlab/pkg/sbox"

// Nb, Nk, Nr are the AES-128 word counts from spec.md section 4.8.
const (
	Nb = 4
	Nk = 4
	Nr = 10
)

// RoundKeySchedule is the 11 round keys (Nr+1 * Nb words of 4 bytes each)
// produced by KeyExpansion.
type RoundKeySchedule [Nr + 1][16]byte

// rcon holds rc_1..rc_10 with rc_1 = 1 and rc_{k+1} = xtime(rc_k).
var rcon = func() [Nr + 1]byte {
	var r [Nr + 1]byte
	r[1] = 1
	for k := 1; k < Nr; k++ {
		r[k+1] = xtime(r[k])
	}
	return r
}()

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func subWord(w [4]byte, s sbox.SBox) [4]byte {
	return [4]byte{s.At(w[0]), s.At(w[1]), s.At(w[2]), s.At(w[3])}
}

// KeyExpansion derives the 11 AES-128 round keys from a 16-byte master key,
// using s for the SubWord step (spec.md section 4.8: the active S-box
// parameterises the key schedule, not just SubBytes).
func KeyExpansion(key [16]byte, s sbox.SBox) RoundKeySchedule {
	var w [Nb * (Nr + 1)][4]byte
	for i := 0; i < Nk; i++ {
		w[i] = [4]byte{key[4*i], key[4*i+1], key[4*i+2], key[4*i+3]}
	}
	for i := Nk; i < Nb*(Nr+1); i++ {
		temp := w[i-1]
		if i%Nk == 0 {
			temp = subWord(rotWord(temp), s)
			temp[0] ^= rcon[i/Nk]
		}
		for b := 0; b < 4; b++ {
			w[i][b] = w[i-Nk][b] ^ temp[b]
		}
	}

	var rks RoundKeySchedule
	for r := 0; r <= Nr; r++ {
		for c := 0; c < Nb; c++ {
			word := w[r*Nb+c]
			copy(rks[r][4*c:4*c+4], word[:])
		}
	}
	return rks
}
