// Package analysis is the orchestration façade (C9): it wires pkg/sbox
// validation, pkg/metrics, pkg/security, and pkg/trace into the two
// entry points an outer caller (cmd/analyze, cmd/encrypt, cmd/decrypt)
// actually needs: Analyze for a full cryptanalysis Report, and
// EncryptTrace/DecryptTrace for a full step recording. Grounded on the
// teacher's Prove/Verify façade shape (pkg/pos/prove.go, pkg/pos/verify.go):
// validate inputs up front, drive the core to completion, return one
// populated result or one error, never a partial one.
package analysis

import (
	"github.com/kargakis/sboxlab/pkg/metrics"
	"github.com/kargakis/sboxlab/pkg/sbox"
	"github.com/kargakis/sboxlab/pkg/security"
	"github.com/kargakis/sboxlab/pkg/trace"
)

// Report is the full cryptanalysis result for one S-box (spec.md section 3).
type Report struct {
	Nonlinearity       int
	SAC                metrics.SACResult
	DifferentialUnif   int
	DifferentialProb   float64
	LAPMaxBias         int
	LAPProbability     float64
	AlgebraicDegree    int
	TransparencyOrder  float64
	BICNL              metrics.BICNLResult
	BICSAC             metrics.BICSACResult
	CorrelationImmunity int
	Balanced           bool
	Bijection          bool
	Security           security.Summary
}

// Analyze runs every metric in spec.md section 4.6 over s and summarises
// the result via pkg/security. s is already a validated sbox.SBox (the
// InvalidSBoxLength / InvalidSBoxValue / NotAPermutation checks happen at
// construction time in pkg/sbox and pkg/serialize); Analyze itself cannot
// fail.
func Analyze(s sbox.SBox) Report {
	c := metrics.NewContext(s)

	diff := c.Differential()
	lap := c.LAP()

	return Report{
		Nonlinearity:        c.Nonlinearity(),
		SAC:                 c.SAC(),
		DifferentialUnif:    diff.Uniformity,
		DifferentialProb:    diff.Probability,
		LAPMaxBias:          lap.MaxBias,
		LAPProbability:      lap.Probability,
		AlgebraicDegree:     c.AlgebraicDegree(),
		TransparencyOrder:   c.TransparencyOrder(),
		BICNL:               c.BICNL(),
		BICSAC:              c.BICSAC(),
		CorrelationImmunity: c.CorrelationImmunity(),
		Balanced:            s.Balanced(),
		Bijection:           s.Bijection(),
		Security:            security.Summarize(c),
	}
}

// Compare analyses a and b independently and reports their nonlinearity
// delta, a supplemental convenience over two Analyze calls (no new metric
// math; see SPEC_FULL.md section 5).
func Compare(a, b sbox.SBox) (ra, rb Report, deltaNL int) {
	ra = Analyze(a)
	rb = Analyze(b)
	deltaNL = rb.Nonlinearity - ra.Nonlinearity
	return ra, rb, deltaNL
}

// EncryptTrace runs the AES-128 forward cipher one operation at a time and
// returns the full 42-step trace plus the resulting ciphertext.
func EncryptTrace(plaintext, key [16]byte, s sbox.SBox) (*trace.Recorder, [16]byte, error) {
	return trace.Encrypt(plaintext, key, s)
}

// DecryptTrace runs the AES-128 inverse cipher one operation at a time and
// returns the full 42-step trace plus the resulting plaintext.
func DecryptTrace(ciphertext, key [16]byte, s sbox.SBox) (*trace.Recorder, [16]byte, error) {
	return trace.Decrypt(ciphertext, key, s)
}
