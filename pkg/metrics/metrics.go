// Package metrics implements the ten cryptographic quality metrics of
// spec.md section 4.6 (C5): nonlinearity, SAC, BIC-NL, BIC-SAC, LAP, DAP /
// differential uniformity, algebraic degree, transparency order, and
// correlation immunity. Each metric is a method on Context, which caches
// the Boolean-function truth tables, the LAT, and the DDT the same way the
// teacher derives its F-functions once per key (pkg/pos/fx.go) rather than
// per call.
package metrics

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/kargakis/sboxlab/pkg/bitutil"
	"github.com/kargakis/sboxlab/pkg/boolfunc"
	"github.com/kargakis/sboxlab/pkg/parameters"
	"github.com/kargakis/sboxlab/pkg/sbox"
	"github.com/kargakis/sboxlab/pkg/tables"
	"github.com/kargakis/sboxlab/pkg/transform"
)

// Context bundles the caches every metric is built from. Build one per
// analysis with NewContext and call its metric methods; LAT and DDT are
// built at most once, lazily, on first use (spec.md section 5).
type Context struct {
	SBox sbox.SBox
	Bool *boolfunc.Cache

	latOnce sync.Once
	lat     tables.LAT

	ddtOnce sync.Once
	ddt     tables.DDT
}

// NewContext returns a Context over s.
func NewContext(s sbox.SBox) *Context {
	return &Context{SBox: s, Bool: boolfunc.New(s)}
}

// LAT returns the Linear Approximation Table, building it on first call.
func (c *Context) LAT() tables.LAT {
	c.latOnce.Do(func() { c.lat = tables.BuildLAT(c.SBox) })
	return c.lat
}

// DDT returns the Difference Distribution Table, building it on first call.
func (c *Context) DDT() tables.DDT {
	c.ddtOnce.Do(func() { c.ddt = tables.BuildDDT(c.SBox) })
	return c.ddt
}

// Nonlinearity returns NL = 2^7 - max_i(M_i)/2, where M_i is the maximum
// |Walsh coefficient| of output bit i over all non-zero masks.
func (c *Context) Nonlinearity() int {
	maxOverBits := 0
	for i := 0; i < parameters.OutputBits; i++ {
		w := transform.Walsh(c.Bool.Bit(i))
		if m := w.MaxAbsNonzero(); m > maxOverBits {
			maxOverBits = m
		}
	}
	return 128 - maxOverBits/2
}

// SACResult is the Strict Avalanche Criterion report: the 8x8 matrix of
// per-(input bit, output bit) flip probabilities, the mean absolute
// deviation from 0.5 (the SAC score), and the largest single deviation.
type SACResult struct {
	Matrix       [parameters.OutputBits][parameters.OutputBits]float64
	Score        float64
	MaxDeviation float64
}

// SAC computes the Strict Avalanche Criterion report (spec.md section 4.6).
func (c *Context) SAC() SACResult {
	var res SACResult
	var sumDev float64
	for i := 0; i < parameters.OutputBits; i++ {
		flipMask := byte(1) << uint(i)
		for j := 0; j < parameters.OutputBits; j++ {
			count := 0
			for x := 0; x < parameters.TableSize; x++ {
				diff := c.SBox.At(byte(x)) ^ c.SBox.At(byte(x)^flipMask)
				if (diff>>uint(j))&1 == 1 {
					count++
				}
			}
			p := float64(count) / float64(parameters.TableSize)
			res.Matrix[i][j] = p
			dev := math.Abs(p - 0.5)
			sumDev += dev
			if dev > res.MaxDeviation {
				res.MaxDeviation = dev
			}
		}
	}
	res.Score = sumDev / float64(parameters.OutputBits*parameters.OutputBits)
	return res
}

const outputBitPairs = parameters.OutputBits * (parameters.OutputBits - 1) / 2

// BICNLResult is the Bit-Independence-Criterion nonlinearity report: the
// nonlinearity of f_i XOR f_j for every unordered pair of output bits, plus
// the min and mean over the 28 pairs.
type BICNLResult struct {
	Vector [outputBitPairs]int
	Min    int
	Mean   float64
}

// BICNL computes the BIC-NL report.
func (c *Context) BICNL() BICNLResult {
	var res BICNLResult
	values := make([]float64, 0, outputBitPairs)
	idx := 0
	res.Min = parameters.TableSize
	for i := 0; i < parameters.OutputBits; i++ {
		for j := i + 1; j < parameters.OutputBits; j++ {
			g := c.Bool.XOR(i, j)
			w := transform.Walsh(g)
			nl := 128 - w.MaxAbsNonzero()/2
			res.Vector[idx] = nl
			values = append(values, float64(nl))
			if nl < res.Min {
				res.Min = nl
			}
			idx++
		}
	}
	res.Mean = stat.Mean(values, nil)
	return res
}

// BICSACResult is the Bit-Independence-Criterion SAC report: the absolute
// normalised correlation between every unordered pair of output-bit
// streams, plus the max and mean over the 28 pairs.
type BICSACResult struct {
	Vector [outputBitPairs]float64
	Max    float64
	Mean   float64
}

// BICSAC computes the BIC-SAC report.
func (c *Context) BICSAC() BICSACResult {
	var res BICSACResult
	values := make([]float64, 0, outputBitPairs)
	idx := 0
	for i := 0; i < parameters.OutputBits; i++ {
		fi := c.Bool.Bit(i)
		for j := i + 1; j < parameters.OutputBits; j++ {
			fj := c.Bool.Bit(j)
			sum := 0
			for x := 0; x < parameters.TableSize; x++ {
				sum += (2*int(fi[x]) - 1) * (2*int(fj[x]) - 1)
			}
			corr := math.Abs(float64(sum)) / float64(parameters.TableSize)
			res.Vector[idx] = corr
			values = append(values, corr)
			if corr > res.Max {
				res.Max = corr
			}
			idx++
		}
	}
	res.Mean = stat.Mean(values, nil)
	return res
}

// LAPResult is the Linear Approximation Probability report.
type LAPResult struct {
	MaxBias     int
	Probability float64
}

// LAP computes the Linear Approximation Probability report: the max bias
// L over the LAT and LAP = (L/128)^2.
func (c *Context) LAP() LAPResult {
	l := c.LAT().MaxAbsBias()
	p := float64(l) / 128
	return LAPResult{MaxBias: l, Probability: p * p}
}

// DifferentialResult is the Differential Approximation Probability /
// differential uniformity report.
type DifferentialResult struct {
	Uniformity  int
	Probability float64
}

// Differential computes differential uniformity D = max DDT[alpha][beta]
// (alpha != 0) and DAP = D/256.
func (c *Context) Differential() DifferentialResult {
	d := c.DDT().MaxNonTrivial()
	return DifferentialResult{Uniformity: d, Probability: float64(d) / float64(parameters.TableSize)}
}

// AlgebraicDegree returns the maximum algebraic degree over the eight
// output-bit ANFs.
func (c *Context) AlgebraicDegree() int {
	max := 0
	for i := 0; i < parameters.OutputBits; i++ {
		a := transform.Mobius(c.Bool.Bit(i))
		if d := a.Degree(); d > max {
			max = d
		}
	}
	return max
}

// TransparencyOrder reproduces the source dashboard's definition (spec.md
// sections 4.6 and 9): for every unordered pair {i<j} of input bits and
// every non-zero output mask beta, partition the 256 inputs into four
// classes by ((bit_i(x)<<1)|bit_j(x)) and within each class count the
// inputs with odd parity of (S[x] AND beta). The resulting 4x2 contingency
// table is scored against a uniform expected frequency of 32 per cell
// (spec.md section 9 notes this 32-per-cell divisor is the source's choice,
// not the textbook one, and must be kept for compatibility). TO is the max
// sqrt(chi-squared) over all (i, j, beta).
func (c *Context) TransparencyOrder() float64 {
	const expected = 32.0
	max := 0.0

	for i := 0; i < parameters.OutputBits; i++ {
		for j := i + 1; j < parameters.OutputBits; j++ {
			for beta := 1; beta < parameters.TableSize; beta++ {
				var onesPerClass, totalPerClass [4]int
				for x := 0; x < parameters.TableSize; x++ {
					class := (((x >> uint(i)) & 1) << 1) | ((x >> uint(j)) & 1)
					totalPerClass[class]++
					if bitutil.DotParity(byte(beta), c.SBox.At(byte(x))) == 1 {
						onesPerClass[class]++
					}
				}

				obs := make([]float64, 0, 8)
				exp := make([]float64, 0, 8)
				for class := 0; class < 4; class++ {
					ones := float64(onesPerClass[class])
					zeros := float64(totalPerClass[class] - onesPerClass[class])
					obs = append(obs, ones, zeros)
					exp = append(exp, expected, expected)
				}

				chi2 := stat.ChiSquare(obs, exp)
				if v := math.Sqrt(chi2); v > max {
					max = v
				}
			}
		}
	}
	return max
}

// TransparencyOrderProuff implements the autocorrelation-based definition
// published by Prouff (CHES 2005), offered alongside TransparencyOrder per
// spec.md section 9's invitation for "a separate, clearly named function"
// with an alternative definition:
//
//	TO(S) = max_{beta != 0} ( n - (1 / 2^(2n-2)) * sum_a |sum_x (-1)^(beta . (S(x) xor S(x xor a)))| )
//
// with n = 8. This does not feed the security summariser or any other
// metric; it exists purely as the literature-compatible alternative.
func (c *Context) TransparencyOrderProuff() float64 {
	const n = float64(parameters.OutputBits)
	const normaliser = 1 << (2*parameters.OutputBits - 2) // 2^(2n-2)

	max := -math.MaxFloat64
	for beta := 1; beta < parameters.TableSize; beta++ {
		var total int
		for a := 0; a < parameters.TableSize; a++ {
			sum := 0
			for x := 0; x < parameters.TableSize; x++ {
				diff := c.SBox.At(byte(x)) ^ c.SBox.At(byte(x)^byte(a))
				bit := bitutil.DotParity(byte(beta), diff)
				sum += bitutil.Sign(bit)
			}
			if sum < 0 {
				sum = -sum
			}
			total += sum
		}
		to := n - float64(total)/float64(normaliser)
		if to > max {
			max = to
		}
	}
	return max
}

// CorrelationImmunity returns the max, over the eight output bits, of the
// largest k such that the bit's Walsh spectrum vanishes at every non-zero
// mask of Hamming weight <= k, contiguous from weight 1 upward (spec.md
// section 4.6). A bit with a non-zero weight-1 Walsh coefficient
// contributes CI 0.
func (c *Context) CorrelationImmunity() int {
	max := 0
	for i := 0; i < parameters.OutputBits; i++ {
		w := transform.Walsh(c.Bool.Bit(i))
		if ci := correlationImmunityOfSpectrum(w); ci > max {
			max = ci
		}
	}
	return max
}

func correlationImmunityOfSpectrum(w transform.Spectrum) int {
	ci := 0
	for k := 1; k <= parameters.OutputBits; k++ {
		allZero := true
		for mask := 1; mask < parameters.TableSize; mask++ {
			if bitutil.Weight(byte(mask)) == k && w[mask] != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			break
		}
		ci = k
	}
	return ci
}
