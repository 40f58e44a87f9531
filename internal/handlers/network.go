package handlers

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/genescope/core/internal/models"
	"github.com/genescope/core/internal/render"
)

type Fetcher interface {
	FetchInteractions(ctx context.Context, gene string) (*models.Interactions, error)
}

// NetworkHandler answers live lookups against BioGRID.
type NetworkHandler struct {
	fetcher Fetcher
	seed    uint64
	options render.Options
}

func NewNetworkHandler(fetcher Fetcher, seed uint64, options render.Options) *NetworkHandler {
	return &NetworkHandler{fetcher: fetcher, seed: seed, options: options}
}

// JSON serves GET /network?gene=X with the laid-out graph.
func (h *NetworkHandler) JSON(w http.ResponseWriter, r *http.Request) {
	graph, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeGraph(w, r, graph)
}

// SVG serves GET /network.svg?gene=X with the rendered network.
func (h *NetworkHandler) SVG(w http.ResponseWriter, r *http.Request) {
	graph, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, graph, h.options); err != nil {
		log.Printf("Error rendering network for %s: %v", graph.Gene, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// lookup validates the request, fetches the interactions and builds the
// graph. It writes the error response itself and reports whether the caller
// should continue.
func (h *NetworkHandler) lookup(w http.ResponseWriter, r *http.Request) (*models.Graph, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	gene := r.URL.Query().Get("gene")
	if gene == "" {
		http.Error(w, "Missing gene parameter", http.StatusBadRequest)
		return nil, false
	}

	interactions, err := h.fetcher.FetchInteractions(r.Context(), gene)
	if err != nil {
		log.Printf("Error fetching interactions for %s: %v", gene, err)
		http.Error(w, "Failed to fetch interactions from BioGRID", http.StatusBadGateway)
		return nil, false
	}
	if interactions.Len() == 0 {
		http.Error(w, "No interaction data found for the given gene", http.StatusNotFound)
		return nil, false
	}

	graph, err := render.Prepare(interactions, gene, h.seed)
	if errors.Is(err, render.ErrNoValidEdges) {
		http.Error(w, "No valid edges found in the interaction data", http.StatusUnprocessableEntity)
		return nil, false
	}

	return graph, true
}
