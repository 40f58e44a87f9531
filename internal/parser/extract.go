package parser

import (
	"github.com/spf13/cast"

	"github.com/genescope/core/internal/models"
)

// Candidate field names per logical attribute, tried in order. BioGRID uses
// the OFFICIAL_SYMBOL_* names; InteractorA/B cover the alternate convention.
var (
	InteractorAFields = []string{"OFFICIAL_SYMBOL_A", "InteractorA"}
	InteractorBFields = []string{"OFFICIAL_SYMBOL_B", "InteractorB"}
)

// QuantitationField is the only field quantitation is read from.
const QuantitationField = "QUANTITATION"

// ExtractInteractors returns both interactor identifiers and the raw
// quantitation value of rec. Missing identifiers are returned as "" and a
// missing quantitation as nil. No validation is performed.
func ExtractInteractors(rec models.InteractionRecord) (string, string, any) {
	a := firstPresent(rec, InteractorAFields)
	b := firstPresent(rec, InteractorBFields)
	return a, b, rec[QuantitationField]
}

// firstPresent returns the first truthy value among fields, rendered as a
// string. Falsy values fall through to the next candidate.
func firstPresent(rec models.InteractionRecord, fields []string) string {
	for _, field := range fields {
		v, ok := rec[field]
		if !ok || IsFalsy(v) {
			continue
		}

		s, err := cast.ToStringE(v)
		if err != nil || s == "" {
			continue
		}

		return s
	}

	return ""
}

// IsFalsy reports whether v is null, false, zero, an empty string or an
// empty collection as decoded from JSON.
func IsFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case float64:
		return val == 0
	case int:
		return val == 0
	case int64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
