package llmextract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceRe = regexp.MustCompile("```(?:json)?")

	pyNoneRe  = regexp.MustCompile(`\bNone\b`)
	pyTrueRe  = regexp.MustCompile(`\bTrue\b`)
	pyFalseRe = regexp.MustCompile(`\bFalse\b`)
)

// parseJSON cleans a model response and unmarshals the JSON object it
// contains into T. It tolerates markdown fences, prose before or after
// the object, and Python-style literals leaking out of the generator.
func parseJSON[T any](response string) (T, error) {
	var zero T

	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(response, ""))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || start > end {
		return zero, fmt.Errorf("no JSON object found in response")
	}
	jsonStr := cleaned[start : end+1]

	jsonStr = strings.ReplaceAll(jsonStr, "\n", " ")
	jsonStr = pyNoneRe.ReplaceAllString(jsonStr, "null")
	jsonStr = pyTrueRe.ReplaceAllString(jsonStr, "true")
	jsonStr = pyFalseRe.ReplaceAllString(jsonStr, "false")

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
