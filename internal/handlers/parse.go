package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/genescope/core/internal/layout"
	"github.com/genescope/core/internal/models"
	"github.com/genescope/core/internal/parser"
	"github.com/genescope/core/internal/render"
)

// ParseHandler builds the interaction graph from a BioGRID JSON response
// posted in the body. The queried gene comes from the gene query parameter.
func ParseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gene := r.URL.Query().Get("gene")
	if gene == "" {
		http.Error(w, "Missing gene parameter", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	interactions, err := parser.ParseInteractions(body)
	if err != nil {
		http.Error(w, "Invalid BioGRID response: "+err.Error(), http.StatusBadRequest)
		return
	}

	graph, err := render.Prepare(interactions, gene, layout.DefaultSeed)
	if errors.Is(err, render.ErrNoValidEdges) {
		http.Error(w, "No valid edges found in the interaction data", http.StatusUnprocessableEntity)
		return
	}

	writeGraph(w, r, graph)
}

func writeGraph(w http.ResponseWriter, r *http.Request, graph *models.Graph) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(graph); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
