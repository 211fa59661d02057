package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMastery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reps     int
		ease     float64
		expected MasteryLevel
	}{
		{"no repetitions", 0, 2.5, MasteryNew},
		{"one repetition", 1, 1.3, MasteryLearning},
		{"two repetitions", 2, 2.5, MasteryLearning},
		{"familiar lower bound", 3, 2.0, MasteryFamiliar},
		{"familiar upper bound", 5, 2.5, MasteryFamiliar},
		{"proficient lower bound", 6, 2.2, MasteryProficient},
		{"proficient upper bound", 10, 2.5, MasteryProficient},
		{"mastered", 11, 2.4, MasteryMastered},
		{"mastered many reps", 40, 2.5, MasteryMastered},

		// Enough repetitions for a band but too little ease falls back to
		// Learning rather than the band below.
		{"familiar reps low ease", 4, 1.9, MasteryLearning},
		{"proficient reps low ease", 8, 2.1, MasteryLearning},
		{"proficient reps familiar ease", 6, 2.0, MasteryLearning},
		{"mastered reps low ease", 12, 2.3, MasteryLearning},
		{"mastered reps minimum ease", 15, 1.3, MasteryLearning},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ClassifyMastery(tc.reps, tc.ease))
		})
	}
}

func TestMasteryLevelPresentation(t *testing.T) {
	t.Parallel()

	expected := map[MasteryLevel][2]string{
		MasteryNew:        {"New", "#9E9E9E"},
		MasteryLearning:   {"Learning", "#FF9800"},
		MasteryFamiliar:   {"Familiar", "#FFEB3B"},
		MasteryProficient: {"Proficient", "#8BC34A"},
		MasteryMastered:   {"Mastered", "#4CAF50"},
	}

	require.Len(t, MasteryLevels(), len(expected))
	for _, level := range MasteryLevels() {
		assert.True(t, level.IsValid())
		assert.Equal(t, expected[level][0], level.DisplayName())
		assert.Equal(t, expected[level][1], level.Color())
	}
	assert.False(t, MasteryLevel("expert").IsValid())
}

func TestMasteryLevelJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(MasteryProficient)
	require.NoError(t, err)
	assert.JSONEq(t, `"proficient"`, string(data))

	var level MasteryLevel
	require.NoError(t, json.Unmarshal([]byte(`"mastered"`), &level))
	assert.Equal(t, MasteryMastered, level)

	err = json.Unmarshal([]byte(`"guru"`), &level)
	assert.ErrorIs(t, err, ErrValidation)
}
