// Package models defines the core data structures shared by the fetcher,
// the graph builder and the renderers.
package models

// Node categories. Each one maps to a single display color.
const (
	CategoryQueried  = "queried"
	CategoryPositive = "positive"
	CategoryNegative = "negative"
	CategoryNeutral  = "neutral"
)

// Display colors for the node categories.
const (
	ColorQueried  = "orange"
	ColorPositive = "springgreen"
	ColorNegative = "lightcoral"
	ColorNeutral  = "lightblue"
)

// Display sizes, expressed as marker area.
const (
	SizeQueried    = 1200
	SizeInteractor = 500
)

// Categories lists the node categories in legend order.
var Categories = []string{CategoryQueried, CategoryPositive, CategoryNegative, CategoryNeutral}

var categoryColors = map[string]string{
	CategoryQueried:  ColorQueried,
	CategoryPositive: ColorPositive,
	CategoryNegative: ColorNegative,
	CategoryNeutral:  ColorNeutral,
}

var categoryLabels = map[string]string{
	CategoryQueried:  "Queried Gene",
	CategoryPositive: "Positive Interaction (Quantitation > 0)",
	CategoryNegative: "Negative Interaction (Quantitation < 0)",
	CategoryNeutral:  "Neutral/Unknown Interaction (Quantitation = 0 or Missing)",
}

// CategoryColor returns the display color for category. Unknown categories
// fall back to the neutral color.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return ColorNeutral
}

// CategoryLabel returns the legend text for category.
func CategoryLabel(category string) string {
	return categoryLabels[category]
}

type Graph struct {
	Gene  string `json:"gene"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Size     int     `json:"size"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type Stats struct {
	TotalNodes      int            `json:"total_nodes"`
	TotalEdges      int            `json:"total_edges"`
	NodesByCategory map[string]int `json:"nodes_by_category,omitempty"`
}
