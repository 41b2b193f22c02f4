// Package schedule converts free-text frequency and duration strings
// into a structured dosing schedule.
package schedule

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rxlens/rxlens/internal/core/model"
)

// freqTable maps frequency phrasing to doses per day; first match wins.
var freqTable = []struct {
	substr string
	perDay int
}{
	{"four times", 4},
	{"three times", 3},
	{"twice", 2},
	{"once", 1},
	{"at bedtime", 1},
	{"as needed", 0},
}

var durationDaysRe = regexp.MustCompile(`(?i)(\d+)\s*(day|week|month)`)

// Build derives a schedule from a candidate's frequency and duration
// strings. It is a pure function: no lookup outside its inputs. An empty
// frequency yields a zero-dose, uncertain schedule with "As directed"
// instructions so a reviewer can see the guess was a default.
func Build(candidate model.MedicationCandidate) *model.DosageSchedule {
	freqLower := strings.ToLower(candidate.Frequency)

	perDay := 0
	for _, entry := range freqTable {
		if strings.Contains(freqLower, entry.substr) {
			perDay = entry.perDay
			break
		}
	}

	asNeeded := strings.Contains(freqLower, "needed") ||
		strings.Contains(freqLower, "prn") ||
		strings.Contains(freqLower, "sos")

	var durationDays *int
	if m := durationDaysRe.FindStringSubmatch(candidate.Duration); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			switch strings.ToLower(m[2]) {
			case "week":
				n *= 7
			case "month":
				n *= 30
			}
			durationDays = &n
		}
	}

	instructions := candidate.Frequency
	if instructions == "" {
		instructions = "As directed"
	}

	return &model.DosageSchedule{
		FrequencyPerDay: perDay,
		AsNeeded:        asNeeded,
		DurationDays:    durationDays,
		Instructions:    instructions,
		Uncertainty:     candidate.Frequency == "",
	}
}
