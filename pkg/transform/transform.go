// Package transform implements the Walsh-Hadamard transform and the
// Mobius/ANF transform (C3), the two spectral kernels every metric in
// pkg/metrics is built from.
package transform

import (
	"github.com/kargakis/sboxlab/pkg/bitutil"
	"github.com/kargakis/sboxlab/pkg/boolfunc"
	"github.com/kargakis/sboxlab/pkg/parameters"
)

// Spectrum is a length-256 Walsh spectrum. Entry w is
// sum_x (-1)^(f(x) xor parity(w AND x)); every entry is an even integer in
// [-256, 256].
type Spectrum [parameters.TableSize]int

// Walsh computes the Walsh-Hadamard spectrum of the truth table f using the
// direct O(N^2) formulation (spec.md section 4.3: "a direct O(N^2)
// formulation is acceptable at N=256").
func Walsh(f boolfunc.Table) Spectrum {
	var w Spectrum
	for mask := 0; mask < parameters.TableSize; mask++ {
		sum := 0
		for x := 0; x < parameters.TableSize; x++ {
			bit := int(f[x]) ^ bitutil.DotParity(byte(mask), byte(x))
			sum += bitutil.Sign(bit)
		}
		w[mask] = sum
	}
	return w
}

// MaxAbsNonzero returns the maximum |W[w]| over all non-zero w.
func (w Spectrum) MaxAbsNonzero() int {
	max := 0
	for mask := 1; mask < len(w); mask++ {
		v := w[mask]
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// ANF is the algebraic normal form of a Boolean function: a 256-entry
// coefficient table indexed by monomial mask m, where f(x) is the XOR over
// all m of (a[m] AND (AND over bit j set in m of x_j)).
type ANF [parameters.TableSize]byte

// Mobius computes the ANF of truth table f via the standard in-place
// butterfly (spec.md section 4.4): for each input bit i, every mask with
// bit i set XORs in the value at the same mask with bit i cleared. This
// mirrors the XOR-accumulation shape of the teacher's table collation step
// (pkg/pos/collate.go's l.Xor(l, r)) but iterated bit-by-bit across the
// full 256-entry table instead of once across two big.Int operands.
func Mobius(f boolfunc.Table) ANF {
	var a ANF
	for x := range f {
		a[x] = f[x]
	}
	for i := 0; i < parameters.OutputBits; i++ {
		bit := 1 << uint(i)
		for m := 0; m < parameters.TableSize; m++ {
			if m&bit != 0 {
				a[m] ^= a[m^bit]
			}
		}
	}
	return a
}

// Degree returns the algebraic degree of f: the maximum Hamming weight of
// any monomial mask m with a[m] == 1. A non-constant function has degree in
// [1, 8]; Degree returns 0 only for a constant function's zero monomial.
func (a ANF) Degree() int {
	max := 0
	for m, coeff := range a {
		if coeff == 0 {
			continue
		}
		if w := bitutil.Weight(byte(m)); w > max {
			max = w
		}
	}
	return max
}
