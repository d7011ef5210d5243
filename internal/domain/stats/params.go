package stats

import (
	"errors"
	"fmt"
)

// Default degree parameters: grades on a 30-point scale, the final degree
// score on a 110-point scale, and 180 credits for a three-year degree.
const (
	DefaultGradeScale   = 30
	DefaultFinalScale   = 110
	DefaultCreditTarget = 180
)

// ErrInvalidParams is returned when a Params value cannot be used.
var ErrInvalidParams = errors.New("invalid stats parameters")

// Params holds the scaling constants used by the projections.
type Params struct {
	// GradeScale is the top of the per-exam grading scale.
	GradeScale int
	// FinalScale is the top of the degree scoring scale.
	FinalScale int
	// CreditTarget is the number of credits needed to graduate.
	CreditTarget int
}

// NewDefaultParams returns the standard parameters.
func NewDefaultParams() *Params {
	return &Params{
		GradeScale:   DefaultGradeScale,
		FinalScale:   DefaultFinalScale,
		CreditTarget: DefaultCreditTarget,
	}
}

// Validate checks that every scale is positive.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil params", ErrInvalidParams)
	}
	if p.GradeScale <= 0 {
		return fmt.Errorf("%w: grade scale must be positive, got %d", ErrInvalidParams, p.GradeScale)
	}
	if p.FinalScale <= 0 {
		return fmt.Errorf("%w: final scale must be positive, got %d", ErrInvalidParams, p.FinalScale)
	}
	if p.CreditTarget <= 0 {
		return fmt.Errorf(
			"%w: credit target must be positive, got %d",
			ErrInvalidParams,
			p.CreditTarget,
		)
	}
	return nil
}

// ProjectionFactor is the multiplier from a grade-scale average to the
// final scale. With the defaults this is 110/30 = 11/3.
func (p *Params) ProjectionFactor() float64 {
	return float64(p.FinalScale) / float64(p.GradeScale)
}
