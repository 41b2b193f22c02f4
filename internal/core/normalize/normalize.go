// Package normalize cleans common OCR artifacts out of handwritten
// prescription text before entity extraction.
package normalize

import (
	"math"
	"regexp"
	"strings"

	"github.com/rxlens/rxlens/internal/core/model"
)

const (
	charFixConfidence = 0.75
	abbrevConfidence  = 0.95
)

// charRule rewrites one OCR confusion. Pattern is the record label, not
// necessarily the executable expression.
type charRule struct {
	pattern   string
	corrected string
	apply     func(string) string
}

var (
	zeroInWordRe = regexp.MustCompile(`([A-Za-z])0([A-Za-z])`)
	oneInWordRe  = regexp.MustCompile(`([A-Za-z])1([A-Za-z])`)
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]`)
)

// charRules are applied in order. Substitutions inside alphabetic runs
// iterate to a fixed point so that adjacent artifacts ("c0l0ur") are all
// rewritten.
var charRules = []charRule{
	{"0 (inside word)", "o", func(s string) string { return rewriteStable(zeroInWordRe, s, "${1}o${2}") }},
	{"1 (inside word)", "l", func(s string) string { return rewriteStable(oneInWordRe, s, "${1}l${2}") }},
	{"|", "l", func(s string) string { return strings.ReplaceAll(s, "|", "l") }},
	{"rn", "m", fixRNLigature},
}

// abbrevRule detects clinical shorthand. Detections are recorded for
// observability but not substituted into the cleaned text; expansion
// happens later, inside frequency extraction.
type abbrevRule struct {
	re       *regexp.Regexp
	expanded string
}

var abbrevRules = []abbrevRule{
	{regexp.MustCompile(`(?i)\bBD\b`), "Twice daily"},
	{regexp.MustCompile(`(?i)\bOD\b`), "Once daily"},
	{regexp.MustCompile(`(?i)\bTDS\b`), "Three times daily"},
	{regexp.MustCompile(`(?i)\bQID\b`), "Four times daily"},
	{regexp.MustCompile(`(?i)\bHS\b`), "At bedtime"},
	{regexp.MustCompile(`(?i)\bSOS\b`), "As needed"},
	{regexp.MustCompile(`(?i)\bPRN\b`), "As needed"},
	{regexp.MustCompile(`(?i)\bStat\b`), "Immediately"},
}

// Normalize cleans raw OCR text and scores its quality. It never fails:
// empty input yields an empty cleaned text with floor confidence.
func Normalize(rawText string) *model.NormalizationResult {
	text := rawText
	corrections := []model.Correction{}

	for _, rule := range charRules {
		fixed := rule.apply(text)
		if fixed != text {
			corrections = append(corrections, model.Correction{
				Original:   rule.pattern,
				Corrected:  rule.corrected,
				Kind:       model.CorrectionOCRCharFix,
				Confidence: charFixConfidence,
				Source:     "pattern_match",
			})
			text = fixed
		}
	}

	for _, rule := range abbrevRules {
		if m := rule.re.FindString(text); m != "" {
			corrections = append(corrections, model.Correction{
				Original:   m,
				Corrected:  rule.expanded,
				Kind:       model.CorrectionAbbrevExpansion,
				Confidence: abbrevConfidence,
				Source:     "pattern_match",
			})
		}
	}

	wordCount := len(strings.Fields(text))
	confidence := math.Min(0.95, math.Max(0.4, float64(wordCount)/50))

	flags := []string{}
	if wordCount < 10 {
		flags = append(flags, model.FlagVeryShortText)
	}
	if nonASCIIRe.MatchString(text) {
		flags = append(flags, model.FlagNonASCIIChars)
	}

	return &model.NormalizationResult{
		CleanedText: strings.TrimSpace(text),
		Corrections: corrections,
		Confidence:  math.Round(confidence*1000) / 1000,
		Flags:       flags,
	}
}

// rewriteStable applies the replacement until the text stops changing.
// Capture-group rewrites consume the trailing letter, so a single pass
// misses overlapping artifacts.
func rewriteStable(re *regexp.Regexp, s, replacement string) string {
	for {
		next := re.ReplaceAllString(s, replacement)
		if next == s {
			return s
		}
		s = next
	}
}

// fixRNLigature rewrites the rn->m scanner artifact unless a digit sits
// directly on either side (dose strings like "30rn1" are left alone for
// the dosage patterns to reject).
func fixRNLigature(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 'r' && i+1 < len(s) && s[i+1] == 'n' {
			prevDigit := i > 0 && isDigit(s[i-1])
			nextDigit := i+2 < len(s) && isDigit(s[i+2])
			if !prevDigit && !nextDigit {
				b.WriteByte('m')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
