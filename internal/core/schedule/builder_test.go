package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxlens/rxlens/internal/core/model"
)

func TestTwiceDaily(t *testing.T) {
	s := Build(model.MedicationCandidate{Frequency: "Twice daily"})

	assert.Equal(t, 2, s.FrequencyPerDay)
	assert.False(t, s.AsNeeded)
	assert.False(t, s.Uncertainty)
	assert.Equal(t, "Twice daily", s.Instructions)
	assert.Nil(t, s.DurationDays)
}

func TestEmptyFrequencyIsUncertainDefault(t *testing.T) {
	s := Build(model.MedicationCandidate{})

	assert.Equal(t, 0, s.FrequencyPerDay)
	assert.False(t, s.AsNeeded)
	assert.Nil(t, s.DurationDays)
	assert.Equal(t, "As directed", s.Instructions)
	assert.True(t, s.Uncertainty)
}

func TestDurationScaling(t *testing.T) {
	cases := []struct {
		duration string
		want     int
	}{
		{"For 7 days", 7},
		{"For 2 weeks", 14},
		{"For 1 month", 30},
		{"3 day", 3},
		{"For 2 months", 60},
	}
	for _, tc := range cases {
		s := Build(model.MedicationCandidate{Frequency: "Once daily", Duration: tc.duration})
		require.NotNil(t, s.DurationDays, "duration %q", tc.duration)
		assert.Equal(t, tc.want, *s.DurationDays, "duration %q", tc.duration)
	}
}

func TestFrequencyTable(t *testing.T) {
	cases := []struct {
		frequency string
		perDay    int
	}{
		{"Four times daily", 4},
		{"Three times daily", 3},
		{"Twice daily (morning + night)", 2},
		{"Once daily", 1},
		{"At bedtime", 1},
		{"As needed", 0},
		{"Every 6 hours", 0},
	}
	for _, tc := range cases {
		s := Build(model.MedicationCandidate{Frequency: tc.frequency})
		assert.Equal(t, tc.perDay, s.FrequencyPerDay, "frequency %q", tc.frequency)
		assert.False(t, s.Uncertainty, "frequency %q", tc.frequency)
	}
}

func TestAsNeededMarkers(t *testing.T) {
	for _, freq := range []string{"As needed", "PRN", "SOS basis"} {
		s := Build(model.MedicationCandidate{Frequency: freq})
		assert.True(t, s.AsNeeded, "frequency %q", freq)
	}

	s := Build(model.MedicationCandidate{Frequency: "Twice daily"})
	assert.False(t, s.AsNeeded)
}
