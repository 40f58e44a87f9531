package parser

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/genescope/core/internal/models"
)

// missingQuantitation is the placeholder BioGRID uses for "no score".
const missingQuantitation = "-"

// ParseQuantitation coerces a raw quantitation value to a number. It reports
// false for nil, the "-" placeholder, blank strings and anything that is not
// numeric. It never panics.
func ParseQuantitation(v any) (float64, bool) {
	switch raw := v.(type) {
	case nil:
		return 0, false
	case string:
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == missingQuantitation {
			return 0, false
		}
		v = raw
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}

	return f, true
}

// QuantitationCategory classifies a parsed quantitation. Absent and zero
// scores are neutral, as is NaN since it compares neither above nor below 0.
func QuantitationCategory(q float64, ok bool) string {
	switch {
	case !ok:
		return models.CategoryNeutral
	case q > 0:
		return models.CategoryPositive
	case q < 0:
		return models.CategoryNegative
	default:
		return models.CategoryNeutral
	}
}

// NodeCategory decides the category of an edge endpoint. The queried gene is
// always queried; every other endpoint takes the category of the score.
func NodeCategory(id, gene string, q float64, ok bool) string {
	if id == gene {
		return models.CategoryQueried
	}
	return QuantitationCategory(q, ok)
}
