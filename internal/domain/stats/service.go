package stats

import (
	"github.com/phrazzld/gradebook/internal/domain"
)

// Summary is the set of derived statistics shown on the dashboard.
type Summary struct {
	Count                int     `json:"count"`
	GradedCount          int     `json:"graded_count"`
	PassFailCount        int     `json:"pass_fail_count"`
	TotalCredits         int     `json:"total_credits"`
	CreditTarget         int     `json:"credit_target"`
	WeightedAverage      float64 `json:"weighted_average"`
	ArithmeticAverage    float64 `json:"arithmetic_average"`
	GraduationProjection float64 `json:"graduation_projection"`
	CreditProgress       float64 `json:"credit_progress"`
	// DisplayProgress is CreditProgress clamped to [0, 1].
	DisplayProgress float64 `json:"display_progress"`
}

// Service computes statistics over a collection of grades.
type Service interface {
	// Summarize computes every statistic for grades.
	Summarize(grades []domain.Grade) Summary

	// Trend returns the chart series for grades.
	Trend(grades []domain.Grade) []TrendPoint

	// Params returns the parameters in use.
	Params() Params
}

// defaultService is the standard implementation of Service
type defaultService struct {
	params *Params
}

// NewDefaultService creates a Service with the standard parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a Service with custom parameters.
func NewServiceWithParams(params *Params) (Service, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	p := *params
	return &defaultService{params: &p}, nil
}

// Summarize implements Service.
func (s *defaultService) Summarize(grades []domain.Grade) Summary {
	summary := Summary{
		Count:        len(grades),
		CreditTarget: s.params.CreditTarget,
	}
	for i := range grades {
		if grades[i].HasNumericGrade() {
			summary.GradedCount++
		} else if grades[i].IsPassFail() {
			summary.PassFailCount++
		}
	}

	summary.TotalCredits = TotalCredits(grades)
	summary.WeightedAverage = WeightedAverage(grades)
	summary.ArithmeticAverage = ArithmeticAverage(grades)
	summary.GraduationProjection = GraduationProjection(summary.WeightedAverage, s.params)
	summary.CreditProgress = CreditProgress(summary.TotalCredits, s.params)
	summary.DisplayProgress = ClampUnit(summary.CreditProgress)
	return summary
}

// Trend implements Service.
func (s *defaultService) Trend(grades []domain.Grade) []TrendPoint {
	return Trend(grades)
}

// Params implements Service.
func (s *defaultService) Params() Params {
	return *s.params
}
