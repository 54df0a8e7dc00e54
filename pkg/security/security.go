// Package security maps the raw cryptographic metrics of pkg/metrics onto
// qualitative strengths, weaknesses, and an overall security level (C6),
// per the thresholds in spec.md section 4.7.
package security

import (
	"fmt"

	"github.com/kargakis/sboxlab/pkg/metrics"
	"github.com/kargakis/sboxlab/pkg/parameters"
)

// Level is the overall qualitative security rating.
type Level string

const (
	High   Level = "High"
	Medium Level = "Medium"
	Low    Level = "Low"
)

// Summary is the qualitative projection of a Context's metrics.
type Summary struct {
	Strengths  []string
	Weaknesses []string
	Level      Level
}

// Summarize evaluates c's nonlinearity, differential uniformity, LAP max
// bias, and SAC score against the fixed thresholds of spec.md section 4.7
// and classifies the result as High (zero weaknesses), Medium (<= 2), or
// Low (otherwise).
func Summarize(c *metrics.Context) Summary {
	var s Summary

	nl := c.Nonlinearity()
	if nl >= parameters.ThresholdNonlinearity {
		s.Strengths = append(s.Strengths, fmt.Sprintf("High nonlinearity (%d)", nl))
	} else {
		s.Weaknesses = append(s.Weaknesses, fmt.Sprintf("Low nonlinearity (%d)", nl))
	}

	du := c.Differential().Uniformity
	if du <= parameters.ThresholdDifferentialUnif {
		s.Strengths = append(s.Strengths, fmt.Sprintf("Low differential uniformity (%d)", du))
	} else {
		s.Weaknesses = append(s.Weaknesses, fmt.Sprintf("High differential uniformity (%d)", du))
	}

	lapBias := c.LAP().MaxBias
	if lapBias <= parameters.ThresholdLAPBias {
		s.Strengths = append(s.Strengths, fmt.Sprintf("Low linear approximation bias (%d)", lapBias))
	} else {
		s.Weaknesses = append(s.Weaknesses, fmt.Sprintf("High linear approximation bias (%d)", lapBias))
	}

	sacScore := c.SAC().Score
	if sacScore <= parameters.ThresholdSAC {
		s.Strengths = append(s.Strengths, fmt.Sprintf("Good SAC score (%.4f)", sacScore))
	} else {
		s.Weaknesses = append(s.Weaknesses, fmt.Sprintf("Poor SAC score (%.4f)", sacScore))
	}

	switch {
	case len(s.Weaknesses) == 0:
		s.Level = High
	case len(s.Weaknesses) <= 2:
		s.Level = Medium
	default:
		s.Level = Low
	}

	return s
}
