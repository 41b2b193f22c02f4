package fuzzymatch

import (
	"fmt"
	"regexp"
	"strings"
)

// freqPattern maps one frequency notation to its expanded label. First
// match wins, so shorthand outranks numeric notation, which outranks
// English phrases.
type freqPattern struct {
	re    *regexp.Regexp
	label string
	// interpolate substitutes the first capture group into the label.
	interpolate bool
}

var freqPatterns = []freqPattern{
	// Indian shorthand takes priority.
	{re: regexp.MustCompile(`(?i)\bqid\b`), label: "Four times daily"},
	{re: regexp.MustCompile(`(?i)\btds\b|\btid\b`), label: "Three times daily"},
	{re: regexp.MustCompile(`(?i)\bbd\b|\bbid\b`), label: "Twice daily"},
	{re: regexp.MustCompile(`(?i)\bod\b`), label: "Once daily"},
	{re: regexp.MustCompile(`(?i)\bhs\b|\bbedtime\b`), label: "At bedtime"},
	{re: regexp.MustCompile(`(?i)\bsos\b|\bprn\b|\bas\s+needed\b`), label: "As needed"},
	{re: regexp.MustCompile(`(?i)\bstat\b`), label: "Immediately"},
	// Numeric morning-afternoon-night notation.
	{re: regexp.MustCompile(`\b1\s*[-–]\s*1\s*[-–]\s*1\b`), label: "Three times daily"},
	{re: regexp.MustCompile(`\b1\s*[-–]\s*0\s*[-–]\s*1\b`), label: "Twice daily (morning + night)"},
	{re: regexp.MustCompile(`\b1\s*[-–]\s*1\s*[-–]\s*0\b`), label: "Twice daily (morning + afternoon)"},
	{re: regexp.MustCompile(`\b0\s*[-–]\s*0\s*[-–]\s*1\b`), label: "Once daily (at night)"},
	{re: regexp.MustCompile(`\b1\s*[-–]\s*0\s*[-–]\s*0\b`), label: "Once daily (morning)"},
	// English phrases.
	{re: regexp.MustCompile(`(?i)four\s+times?\s+(?:a\s+)?day`), label: "Four times daily"},
	{re: regexp.MustCompile(`(?i)three\s+times?\s+(?:a\s+)?day`), label: "Three times daily"},
	{re: regexp.MustCompile(`(?i)twice\s+(?:a\s+)?day|two\s+times`), label: "Twice daily"},
	{re: regexp.MustCompile(`(?i)once\s+(?:a\s+)?day|once\s+daily`), label: "Once daily"},
	{re: regexp.MustCompile(`(?i)every\s+(\d+)\s+hours?`), label: "Every %s hours", interpolate: true},
}

type routePattern struct {
	re    *regexp.Regexp
	label string
}

var routePatterns = []routePattern{
	{regexp.MustCompile(`(?i)\boral(?:ly)?\b|\bpo\b|\bby\s+mouth\b`), "Oral"},
	{regexp.MustCompile(`(?i)\biv\b|\bintravenous`), "Intravenous"},
	{regexp.MustCompile(`(?i)\bim\b|\bintramuscular`), "Intramuscular"},
	{regexp.MustCompile(`(?i)\bsc\b|\bsubcutaneous`), "Subcutaneous"},
	{regexp.MustCompile(`(?i)\binhaler?\b|\binhalation\b|\bpuffs?\b`), "Inhalation"},
	{regexp.MustCompile(`(?i)\btopical\b|\bcream\b|\bointment\b|\bgel\b`), "Topical"},
	{regexp.MustCompile(`(?i)\bpatch\b|\btransdermal\b`), "Transdermal"},
	{regexp.MustCompile(`(?i)\binjection\b|\binjectable\b|\bsi\b`), "Injection"},
	{regexp.MustCompile(`(?i)\bsublingual\b|\bsl\b`), "Sublingual"},
	{regexp.MustCompile(`(?i)\bdrops?\b|\beye\s+drop\b|\bear\s+drop\b`), "Drops"},
	{regexp.MustCompile(`(?i)\btab(?:let)?s?\b|\bcapsule?s?\b|\bcap\b`), "Oral"},
}

var dosageRe = regexp.MustCompile(
	`(?i)(\d+(?:\.\d+)?)\s*` +
		`(mg|mcg|µg|g\b|ml|l\b|iu|units?|u\b|tabs?|tablets?|caps?|capsules?|puffs?|drops?|mmol)`)

var durationRe = regexp.MustCompile(`(?i)(?:for\s+)?(\d+)\s*(days?|weeks?|months?)`)

// extractFrequency returns the expanded frequency label for the first
// matching pattern, or "" when nothing matches.
func extractFrequency(text string) string {
	for _, p := range freqPatterns {
		if p.interpolate {
			if m := p.re.FindStringSubmatch(text); m != nil {
				return fmt.Sprintf(p.label, m[1])
			}
			continue
		}
		if p.re.MatchString(text) {
			return p.label
		}
	}
	return ""
}

func extractRoute(text string) string {
	for _, p := range routePatterns {
		if p.re.MatchString(text) {
			return p.label
		}
	}
	return ""
}

func extractDosage(text string) string {
	if m := dosageRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s %s", m[1], strings.ToLower(m[2]))
	}
	return ""
}

func extractDuration(text string) string {
	if m := durationRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("For %s %s", m[1], m[2])
	}
	return ""
}
