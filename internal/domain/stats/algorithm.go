package stats

import (
	"sort"
	"time"

	"github.com/phrazzld/gradebook/internal/domain"
)

// The functions in this file are pure: they never modify their input and
// give the same answer for the same slice.

// TotalCredits sums the credits of every record, pass/fail ones included.
func TotalCredits(grades []domain.Grade) int {
	total := 0
	for i := range grades {
		total += grades[i].Credits
	}
	return total
}

// WeightedAverage is the credit-weighted mean of the numeric grades.
// Records with grade 0 or below are skipped; the result is 0 when the remaining
// credits sum to 0. Sums are kept in float64 so large values cannot wrap.
func WeightedAverage(grades []domain.Grade) float64 {
	var weighted, credits float64
	for i := range grades {
		if !grades[i].HasNumericGrade() {
			continue
		}
		weighted += float64(grades[i].Grade) * float64(grades[i].Credits)
		credits += float64(grades[i].Credits)
	}
	if credits == 0 {
		return 0
	}
	return weighted / credits
}

// ArithmeticAverage is the plain mean of the numeric grades, 0 if there are none.
func ArithmeticAverage(grades []domain.Grade) float64 {
	var sum float64
	count := 0
	for i := range grades {
		if !grades[i].HasNumericGrade() {
			continue
		}
		sum += float64(grades[i].Grade)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// GraduationProjection rescales a weighted average to the final scale.
func GraduationProjection(weightedAverage float64, params *Params) float64 {
	return weightedAverage * params.ProjectionFactor()
}

// CreditProgress is the share of the credit target reached so far.
// It is not clamped: values above 1 mean the target was exceeded.
func CreditProgress(totalCredits int, params *Params) float64 {
	return float64(totalCredits) / float64(params.CreditTarget)
}

// ClampUnit limits v to [0, 1] for display.
func ClampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// TrendPoint is one point of the grade-over-time chart.
type TrendPoint struct {
	GradeID     string    `json:"grade_id"`
	SubjectName string    `json:"subject_name"`
	Date        time.Time `json:"date"`
	Grade       int       `json:"grade"`
}

// Trend returns every record except pass/fail ones as chart points ordered
// by date. Unlike the averages, out-of-range values below 0 are plotted.
// Records sharing a date keep their insertion order.
func Trend(grades []domain.Grade) []TrendPoint {
	points := make([]TrendPoint, 0, len(grades))
	for i := range grades {
		if grades[i].IsPassFail() {
			continue
		}
		points = append(points, TrendPoint{
			GradeID:     grades[i].ID.String(),
			SubjectName: grades[i].SubjectName,
			Date:        grades[i].Date,
			Grade:       grades[i].Grade,
		})
	}
	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Date.Before(points[b].Date)
	})
	return points
}
