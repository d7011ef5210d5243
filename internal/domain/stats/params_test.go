package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	assert.Equal(t, 30, params.GradeScale)
	assert.Equal(t, 110, params.FinalScale)
	assert.Equal(t, 180, params.CreditTarget)
	assert.NoError(t, params.Validate())
	assert.InDelta(t, 11.0/3.0, params.ProjectionFactor(), 1e-12)
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		params *Params
	}{
		{name: "nil", params: nil},
		{name: "zero grade scale", params: &Params{GradeScale: 0, FinalScale: 110, CreditTarget: 180}},
		{name: "negative final scale", params: &Params{GradeScale: 30, FinalScale: -1, CreditTarget: 180}},
		{name: "zero credit target", params: &Params{GradeScale: 30, FinalScale: 110, CreditTarget: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParams))
		})
	}
}
