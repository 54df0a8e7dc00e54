// Package tables builds the Linear Approximation Table and Difference
// Distribution Table of an S-box (C4). Both are O(2^16)-to-O(2^24) nested
// sweeps over input pairs, the same shape as the teacher's FindMatches
// (pkg/pos/match.go), which pairs every entry of a left bucket against
// every entry of a right bucket under a matching predicate — here the
// "predicate" accumulates a count instead of returning a bool.
package tables

import (
	"github.com/kargakis/sboxlab/pkg/bitutil"
	"github.com/kargakis/sboxlab/pkg/parameters"
	"github.com/kargakis/sboxlab/pkg/sbox"
)

// LAT is the 256x256 Linear Approximation Table. LAT[a][b] is the signed
// bias of the linear approximation "a . x == b . S[x]", in [-128, 128].
type LAT [parameters.TableSize][parameters.TableSize]int

// BuildLAT computes the LAT of s. Entry [a][b] counts the x for which
// parity(a AND x) == parity(b AND S[x]), minus 128 (spec.md section 4.5).
// Complexity O(2^24): 256 * 256 * 256 parity evaluations.
func BuildLAT(s sbox.SBox) LAT {
	var lat LAT
	for a := 0; a < parameters.TableSize; a++ {
		for b := 0; b < parameters.TableSize; b++ {
			count := 0
			for x := 0; x < parameters.TableSize; x++ {
				lhs := bitutil.DotParity(byte(a), byte(x))
				rhs := bitutil.DotParity(byte(b), s.At(byte(x)))
				if lhs == rhs {
					count++
				}
			}
			lat[a][b] = count - 128
		}
	}
	return lat
}

// MaxAbsBias returns the maximum |LAT[a][b]| over all (a, b) != (0, 0).
func (lat LAT) MaxAbsBias() int {
	max := 0
	for a := 0; a < parameters.TableSize; a++ {
		for b := 0; b < parameters.TableSize; b++ {
			if a == 0 && b == 0 {
				continue
			}
			v := lat[a][b]
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}

// DDT is the 256x256 Difference Distribution Table. DDT[alpha][beta] is
// the count of x such that S[x XOR alpha] XOR S[x] == beta.
type DDT [parameters.TableSize][parameters.TableSize]int

// BuildDDT computes the DDT of s (spec.md section 4.5). For each ordered
// pair (x1, x2), the input difference alpha = x1 XOR x2 and output
// difference beta = S[x1] XOR S[x2] are accumulated at DDT[alpha][beta] —
// the nested double loop over a pair of 256-element domains is the same
// shape as FindMatches pairing every left-bucket entry against every
// right-bucket entry (pkg/pos/match.go), with the matching predicate
// replaced by an always-true accumulation.
func BuildDDT(s sbox.SBox) DDT {
	var ddt DDT
	for x1 := 0; x1 < parameters.TableSize; x1++ {
		for x2 := 0; x2 < parameters.TableSize; x2++ {
			alpha := byte(x1) ^ byte(x2)
			beta := s.At(byte(x1)) ^ s.At(byte(x2))
			ddt[alpha][beta]++
		}
	}
	return ddt
}

// MaxNonTrivial returns the maximum DDT[alpha][beta] over alpha != 0,
// i.e. the differential uniformity of the S-box.
func (ddt DDT) MaxNonTrivial() int {
	max := 0
	for alpha := 1; alpha < parameters.TableSize; alpha++ {
		for beta := 0; beta < parameters.TableSize; beta++ {
			if ddt[alpha][beta] > max {
				max = ddt[alpha][beta]
			}
		}
	}
	return max
}
