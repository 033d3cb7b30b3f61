package markers

import (
	"strings"
)

// Resolve maps a free-text span to the single best-matching marker type,
// or nil when nothing matches. Matching is purely lexical: an exact pass
// over every (type, keyword) pair in registry iteration order, then a
// substring pass in the same order. First match wins within each pass,
// so the exact pass always beats a substring hit on a longer keyword of
// a later type.
func (r *Registry) Resolve(text string) *MarkerTypeDefinition {
	normalized := normalizeText(text)
	if normalized == "" {
		return nil
	}

	for _, def := range r.ordered {
		for _, kw := range def.Keywords {
			if normalized == kw {
				return def
			}
		}
	}

	for _, def := range r.ordered {
		for _, kw := range def.Keywords {
			if strings.Contains(normalized, kw) {
				return def
			}
		}
	}

	return nil
}

// normalizeText lowercases, trims, and collapses internal whitespace.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// DetectLaterality sniffs a left/right/bilateral qualifier out of
// narrative text. Bilateral wins over either side; a text naming both
// sides is also treated as bilateral.
func DetectLaterality(text string) Laterality {
	normalized := normalizeText(text)
	if normalized == "" {
		return LateralityNone
	}
	left := containsWord(normalized, "left")
	right := containsWord(normalized, "right")
	switch {
	case containsWord(normalized, "bilateral"), containsWord(normalized, "both"):
		return LateralityBilateral
	case left && right:
		return LateralityBilateral
	case left:
		return LateralityLeft
	case right:
		return LateralityRight
	default:
		return LateralityNone
	}
}

func containsWord(normalized, word string) bool {
	for _, f := range strings.Fields(normalized) {
		if strings.Trim(f, ".,;:!?") == word {
			return true
		}
	}
	return false
}
