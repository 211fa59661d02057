package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNewEaseFactor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name       string
		current    float64
		quality    Quality
		successful bool
		expected   float64
	}{
		{"perfect answer at maximum stays clamped", 2.5, QualityPerfect, true, 2.5},
		{"perfect answer raises ease", 2.0, QualityPerfect, true, 2.1},
		{"hesitation leaves ease unchanged", 2.2, QualityCorrectHesitation, true, 2.2},
		{"difficult answer lowers ease", 2.5, QualityCorrectDifficult, true, 2.36},
		{"difficult answer clamps at minimum", 1.4, QualityCorrectDifficult, true, 1.3},
		{"failure applies penalty", 2.5, QualityIncorrect, false, 2.3},
		{"failure clamps at minimum", 1.4, QualityBlackout, false, 1.3},
		{"failure at minimum stays", 1.3, QualityBlackout, false, 1.3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := calculateNewEaseFactor(tc.current, tc.quality, tc.successful, params)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name       string
		current    int
		newReps    int
		ef         float64
		successful bool
		expected   int
	}{
		{"first success", 0, 1, 2.5, true, 1},
		{"second success", 1, 2, 2.5, true, 6},
		{"third success multiplies by ease", 6, 3, 2.5, true, 15},
		{"rounds down", 6, 3, 2.36, true, 14},
		{"rounds half away from zero", 5, 4, 1.3, true, 7},
		{"failure resets", 40, 0, 2.5, false, 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := calculateNewInterval(tc.current, tc.newReps, tc.ef, tc.successful, params)
			assert.Equal(t, tc.expected, got)
		})
	}
}
