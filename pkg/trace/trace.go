// Package trace implements the step recorder (C8): it drives pkg/aes one
// round transformation at a time and records every intermediate state, so
// a caller can step forward and backward through an encryption or
// decryption without re-running the cipher. Grounded on the teacher's
// multi-phase plotting pipeline (each phase a fixed, ordered sequence of
// table-building steps whose output feeds the next) but generalised here
// to a fully pre-computed, seekable trace rather than a forward-only run.
package trace

import (
	"fmt"

	"github.com/kargakis/sboxlab/pkg/aes"
	"github.com/kargakis/sboxlab/pkg/sbox"
)

// StepKind names the AES operation a Step was produced by.
type StepKind string

const (
	Init          StepKind = "Init"
	OpAddRoundKey StepKind = "AddRoundKey"
	OpSubBytes    StepKind = "SubBytes"
	OpShiftRows   StepKind = "ShiftRows"
	OpMixColumns  StepKind = "MixColumns"
	InvSubBytes   StepKind = "InvSubBytes"
	InvShiftRows  StepKind = "InvShiftRows"
	InvMixColumns StepKind = "InvMixColumns"
	Final         StepKind = "Final"
)

// TotalSteps is the fixed step count of a full encryption or decryption
// trace: 1 (Init) + 1 (AddRoundKey_0) + 9*4 (middle rounds) + 3 (final
// round) + 1 (Final) = 42 (spec.md section 4.9).
const TotalSteps = 1 + 1 + 9*4 + 3 + 1

// Step is one recorded point in the trace: the operation that was just
// applied, the round it belongs to, the resulting state snapshot, and the
// completion percentage.
type Step struct {
	Round     int
	Operation StepKind
	State     aes.State
	Progress  int
}

// Recorder holds a complete, pre-computed trace and a cursor into it,
// enabling back-navigation (SeekIndexError aside) without re-executing the
// cipher.
type Recorder struct {
	steps []Step
	pos   int
}

// SeekIndexError reports an out-of-range index passed to Recorder.Seek.
type SeekIndexError int

func (e SeekIndexError) Error() string {
	return fmt.Sprintf("trace: step index %d out of range [0, %d)", int(e), TotalSteps)
}

func newRecorder(steps []Step) *Recorder {
	return &Recorder{steps: steps, pos: 0}
}

// Len returns the number of recorded steps (always TotalSteps).
func (r *Recorder) Len() int { return len(r.steps) }

// Current returns the step at the cursor.
func (r *Recorder) Current() Step { return r.steps[r.pos] }

// Seek moves the cursor to index i and returns the step there.
func (r *Recorder) Seek(i int) (Step, error) {
	if i < 0 || i >= len(r.steps) {
		return Step{}, SeekIndexError(i)
	}
	r.pos = i
	return r.steps[i], nil
}

// Next advances the cursor by one step, reporting false if already at the
// last step.
func (r *Recorder) Next() (Step, bool) {
	if r.pos >= len(r.steps)-1 {
		return r.steps[r.pos], false
	}
	r.pos++
	return r.steps[r.pos], true
}

// Prev moves the cursor back by one step, reporting false if already at
// the first step.
func (r *Recorder) Prev() (Step, bool) {
	if r.pos <= 0 {
		return r.steps[r.pos], false
	}
	r.pos--
	return r.steps[r.pos], true
}

// Steps returns every recorded step, in order.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

func progress(index int) int {
	return 100 * index / (TotalSteps - 1)
}

func appendStep(steps []Step, round int, op StepKind, s aes.State) []Step {
	steps = append(steps, Step{Round: round, Operation: op, State: s, Progress: progress(len(steps))})
	return steps
}

// Encrypt runs the AES-128 forward cipher one operation at a time,
// recording every intermediate state, and returns the full trace plus the
// resulting ciphertext (spec.md sections 4.8-4.9).
func Encrypt(plaintext, key [16]byte, s sbox.SBox) (*Recorder, [16]byte, error) {
	state, err := aes.LoadState(plaintext[:])
	if err != nil {
		return nil, [16]byte{}, err
	}
	rks := aes.KeyExpansion(key, s)

	steps := make([]Step, 0, TotalSteps)
	steps = appendStep(steps, 0, Init, state)

	state = aes.AddRoundKey(state, rks[0])
	steps = appendStep(steps, 0, OpAddRoundKey, state)

	for r := 1; r < aes.Nr; r++ {
		state = aes.SubBytes(state, s)
		steps = appendStep(steps, r, OpSubBytes, state)
		state = aes.ShiftRows(state)
		steps = appendStep(steps, r, OpShiftRows, state)
		state = aes.MixColumns(state)
		steps = appendStep(steps, r, OpMixColumns, state)
		state = aes.AddRoundKey(state, rks[r])
		steps = appendStep(steps, r, OpAddRoundKey, state)
	}

	state = aes.SubBytes(state, s)
	steps = appendStep(steps, aes.Nr, OpSubBytes, state)
	state = aes.ShiftRows(state)
	steps = appendStep(steps, aes.Nr, OpShiftRows, state)
	state = aes.AddRoundKey(state, rks[aes.Nr])
	steps = appendStep(steps, aes.Nr, OpAddRoundKey, state)

	steps = appendStep(steps, aes.Nr, Final, state)

	return newRecorder(steps), state.Bytes(), nil
}

// Decrypt runs the AES-128 inverse cipher one operation at a time,
// recording every intermediate state, and returns the full trace plus the
// resulting plaintext (spec.md sections 4.8-4.9).
func Decrypt(ciphertext, key [16]byte, s sbox.SBox) (*Recorder, [16]byte, error) {
	state, err := aes.LoadState(ciphertext[:])
	if err != nil {
		return nil, [16]byte{}, err
	}
	rks := aes.KeyExpansion(key, s)

	steps := make([]Step, 0, TotalSteps)
	steps = appendStep(steps, aes.Nr, Init, state)

	state = aes.AddRoundKey(state, rks[aes.Nr])
	steps = appendStep(steps, aes.Nr, OpAddRoundKey, state)

	for r := aes.Nr - 1; r >= 1; r-- {
		state = aes.InvShiftRows(state)
		steps = appendStep(steps, r, InvShiftRows, state)
		state = aes.InvSubBytes(state, s)
		steps = appendStep(steps, r, InvSubBytes, state)
		state = aes.AddRoundKey(state, rks[r])
		steps = appendStep(steps, r, OpAddRoundKey, state)
		state = aes.InvMixColumns(state)
		steps = appendStep(steps, r, InvMixColumns, state)
	}

	state = aes.InvShiftRows(state)
	steps = appendStep(steps, 0, InvShiftRows, state)
	state = aes.InvSubBytes(state, s)
	steps = appendStep(steps, 0, InvSubBytes, state)
	state = aes.AddRoundKey(state, rks[0])
	steps = appendStep(steps, 0, OpAddRoundKey, state)

	steps = appendStep(steps, 0, Final, state)

	return newRecorder(steps), state.Bytes(), nil
}
