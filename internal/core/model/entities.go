package model

// Correction kinds recorded by the normalizer.
const (
	CorrectionOCRCharFix      = "ocr_char_fix"
	CorrectionAbbrevExpansion = "abbrev_expansion"
)

// Normalization flags.
const (
	FlagVeryShortText = "very_short_text"
	FlagNonASCIIChars = "non_ascii_chars"
)

// Candidate sources.
const (
	SourceFuzzy    = "fuzzy"
	SourceExternal = "external"
	SourceMerged   = "merged"
)

// Correction records one normalization rewrite or detection.
type Correction struct {
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Kind       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// NormalizationResult is the output of the OCR text normalizer.
// CleanedText carries character fixes only; abbreviation expansions are
// recorded in Corrections but applied later, during frequency extraction.
type NormalizationResult struct {
	CleanedText     string       `json:"cleaned_text"`
	Corrections     []Correction `json:"corrections"`
	Confidence      float64      `json:"confidence"`
	Flags           []string     `json:"flags"`
	NeedsTermReview bool         `json:"needs_term_review"`
}

func (r *NormalizationResult) HasFlag(flag string) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// MedicationCandidate is one extracted medication. Empty strings mean
// "not found in the text", never an error.
type MedicationCandidate struct {
	Name      string          `json:"name"`
	Dosage    string          `json:"dosage"`
	Frequency string          `json:"frequency"`
	Duration  string          `json:"duration"`
	Route     string          `json:"route"`
	Notes     string          `json:"notes,omitempty"`
	Source    string          `json:"source,omitempty"`
	Schedule  *DosageSchedule `json:"schedule,omitempty"`
}

// DosageSchedule is derived deterministically from a candidate's
// frequency and duration strings. Uncertainty marks a default guess
// made because no frequency pattern matched.
type DosageSchedule struct {
	FrequencyPerDay int    `json:"frequency_per_day"`
	AsNeeded        bool   `json:"as_needed"`
	DurationDays    *int   `json:"duration_days"`
	Instructions    string `json:"instructions"`
	Uncertainty     bool   `json:"uncertainty"`
}

// ExternalExtraction matches the JSON object the external model is
// instructed to return. Arrays are present-but-empty when nothing was
// found.
type ExternalExtraction struct {
	Medications []MedicationCandidate `json:"medications"`
	Conditions  []string              `json:"conditions"`
	Allergies   []string              `json:"allergies"`
}

// EntityBundle is the final per-request output.
type EntityBundle struct {
	Medications []MedicationCandidate `json:"medications"`
	Conditions  []string              `json:"conditions"`
	Allergies   []string              `json:"allergies"`
	LabValues   []any                 `json:"lab_values"`
}

// ExtractionDebug carries per-stage instrumentation, returned only when
// the caller asks for it.
type ExtractionDebug struct {
	ExternalMedCount int    `json:"external_med_count"`
	FuzzyMedCount    int    `json:"fuzzy_med_count"`
	MergedCount      int    `json:"merged_count"`
	ExternalOK       bool   `json:"external_ok"`
	CleanTextPreview string `json:"clean_text_preview"`
}

// Interaction is one drug-interaction finding. Severity is "unknown"
// whenever no knowledge source could confirm or rule out an interaction.
type Interaction struct {
	Severity  string     `json:"severity"`
	Summary   string     `json:"summary"`
	Mechanism string     `json:"mechanism"`
	Action    string     `json:"action"`
	Citations []Citation `json:"citations"`
}

// Citation points at the evidence behind an interaction finding.
type Citation struct {
	Title          string  `json:"title"`
	Snippet        string  `json:"snippet"`
	SourceURI      string  `json:"source_uri"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Interaction severities.
const (
	SeverityHigh    = "high"
	SeverityMedium  = "medium"
	SeverityLow     = "low"
	SeverityUnknown = "unknown"
)
