// Package report prints the console summary of fetched interactions.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cast"

	"github.com/genescope/core/internal/models"
	"github.com/genescope/core/internal/parser"
)

// DefaultLimit is how many records the summary lists.
const DefaultLimit = 10

// NotAvailable stands in for missing or empty values.
const NotAvailable = "N/A"

var (
	countColor = color.New(color.Bold)
	keyColor   = color.New(color.FgCyan)
)

// Summary writes the interaction count followed by the first limit records
// in response order.
func Summary(w io.Writer, interactions *models.Interactions, limit int) {
	countColor.Fprintf(w, "\nNumber of interactions found: %d\n\n", interactions.Len())

	for _, id := range interactions.Head(limit) {
		rec, _ := interactions.Get(id)
		a, b, q := parser.ExtractInteractors(rec)

		field(w, "Interaction ID", id)
		field(w, "Interactor A", display(a))
		field(w, "Interactor B", display(b))
		field(w, "Quantitation", display(q))
		fmt.Fprintln(w)
	}
}

func field(w io.Writer, name, value string) {
	keyColor.Fprintf(w, "%s:", name)
	fmt.Fprintf(w, " %s\n", value)
}

// display renders v, or NotAvailable when v is nil, empty, false or zero.
func display(v any) string {
	if parser.IsFalsy(v) {
		return NotAvailable
	}
	if val, ok := v.(bool); ok && val {
		return "True"
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
