package reconcile

import (
	"regexp"
	"strings"
)

// conditionKeywords is the fixed vocabulary scanned when the external
// stage returns no conditions.
var conditionKeywords = []string{
	"hypertension", "diabetes", "asthma", "copd", "hypothyroidism",
	"hyperthyroidism", "depression", "anxiety", "epilepsy", "gerd",
	"gastritis", "uti", "infection", "fever", "pain", "arthritis",
	"gout", "anaemia", "anemia", "vertigo", "migraine",
}

var allergyRe = regexp.MustCompile(`(?i)allerg(?:ic|y)\s+to\s+([A-Za-z ,]+)`)

// FallbackConditions scans the text for known condition terms.
func FallbackConditions(text string) []string {
	found := []string{}
	textLower := strings.ToLower(text)
	for _, kw := range conditionKeywords {
		if strings.Contains(textLower, kw) {
			found = append(found, titleWord(kw))
		}
	}
	return found
}

// FallbackAllergies captures the allergen list after an "allergic to" or
// "allergy to" phrase.
func FallbackAllergies(text string) []string {
	allergens := []string{}
	if m := allergyRe.FindStringSubmatch(text); m != nil {
		for _, a := range strings.Split(m[1], ",") {
			if a = strings.TrimSpace(a); a != "" {
				allergens = append(allergens, a)
			}
		}
	}
	return allergens
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
