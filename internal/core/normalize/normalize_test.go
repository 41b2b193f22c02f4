package normalize

import (
	"testing"

	"github.com/rxlens/rxlens/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestCharFixes(t *testing.T) {
	res := Normalize("Paracetam0l 100mg BD")

	assert.Equal(t, "Paracetamol 100mg BD", res.CleanedText)

	var kinds []string
	for _, c := range res.Corrections {
		kinds = append(kinds, c.Kind)
	}
	assert.Contains(t, kinds, model.CorrectionOCRCharFix)
}

func TestAdjacentArtifactsAllFixed(t *testing.T) {
	// Capture-group rewriting consumes the following letter; the rule
	// must still catch a second artifact right after the first.
	res := Normalize("Parac0tam0l")
	assert.Equal(t, "Paracotamol", res.CleanedText)
}

func TestOneToLAndPipe(t *testing.T) {
	res := Normalize("Sa1butamol inha|er")
	assert.Equal(t, "Salbutamol inhaler", res.CleanedText)
}

func TestRNLigature(t *testing.T) {
	res := Normalize("Metforrnin 500mg")
	assert.Equal(t, "Metformin 500mg", res.CleanedText)

	// Digits adjacent to rn suppress the rewrite.
	res = Normalize("take 3rn1 dose")
	assert.Equal(t, "take 3rn1 dose", res.CleanedText)
}

func TestDigitsOutsideWordsUntouched(t *testing.T) {
	res := Normalize("Ibuprofen 200mg BD for 7 days")
	assert.Equal(t, "Ibuprofen 200mg BD for 7 days", res.CleanedText)
}

func TestAbbrevDetectedButNotRewritten(t *testing.T) {
	res := Normalize("Amoxicillin 500mg TDS for 5 days")

	assert.Contains(t, res.CleanedText, "TDS")

	var found *model.Correction
	for i, c := range res.Corrections {
		if c.Kind == model.CorrectionAbbrevExpansion {
			found = &res.Corrections[i]
			break
		}
	}
	if assert.NotNil(t, found) {
		assert.Equal(t, "TDS", found.Original)
		assert.Equal(t, "Three times daily", found.Corrected)
		assert.Equal(t, 0.95, found.Confidence)
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"Paracetam0l 100mg BD",
		"Ibuprofen 200mg BD for 7 days",
		"Sa1butamol inha|er 2 puffs",
		"Metforrnin 500mg OD",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once.CleanedText)
		assert.Equal(t, once.CleanedText, twice.CleanedText, "input %q", in)
	}
}

func TestConfidenceScaling(t *testing.T) {
	res := Normalize("one two three")
	assert.Equal(t, 0.4, res.Confidence)
	assert.True(t, res.HasFlag(model.FlagVeryShortText))

	long := ""
	for i := 0; i < 60; i++ {
		long += "word "
	}
	res = Normalize(long)
	assert.Equal(t, 0.95, res.Confidence)
	assert.False(t, res.HasFlag(model.FlagVeryShortText))

	// 25 words -> 0.5
	mid := ""
	for i := 0; i < 25; i++ {
		mid += "word "
	}
	res = Normalize(mid)
	assert.Equal(t, 0.5, res.Confidence)
}

func TestEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		res := Normalize(in)
		assert.Equal(t, "", res.CleanedText)
		assert.Equal(t, 0.4, res.Confidence)
		assert.True(t, res.HasFlag(model.FlagVeryShortText))
		assert.Empty(t, res.Corrections)
	}
}

func TestNonASCIIFlag(t *testing.T) {
	res := Normalize("Paracétamol 500mg once daily with water after meals")
	assert.True(t, res.HasFlag(model.FlagNonASCIIChars))
}
