package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genescope/core/internal/models"
)

const fimHResponse = `{
	"1": {"OFFICIAL_SYMBOL_A": "fimH", "OFFICIAL_SYMBOL_B": "fimG", "QUANTITATION": "3.5"},
	"2": {"OFFICIAL_SYMBOL_A": "fimH", "OFFICIAL_SYMBOL_B": "fimA", "QUANTITATION": "-1.2"},
	"3": {"OFFICIAL_SYMBOL_A": "fimA", "OFFICIAL_SYMBOL_B": "fimC", "QUANTITATION": "-"}
}`

func postParse(body io.Reader, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/parse"+query, body)
	w := httptest.NewRecorder()
	ParseHandler(w, req)
	return w
}

func TestParseHandler(t *testing.T) {
	t.Run("returns 200 OK for a valid response", func(t *testing.T) {
		w := postParse(strings.NewReader(fimHResponse), "?gene=fimH")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("returns the colored graph", func(t *testing.T) {
		w := postParse(strings.NewReader(fimHResponse), "?gene=fimH")

		var graph models.Graph
		err := json.NewDecoder(w.Body).Decode(&graph)
		require.NoError(t, err)

		assert.Equal(t, "fimH", graph.Gene)
		require.Len(t, graph.Nodes, 4)
		assert.Len(t, graph.Edges, 3)

		colors := map[string]string{}
		for _, n := range graph.Nodes {
			colors[n.ID] = n.Color
		}
		assert.Equal(t, models.ColorQueried, colors["fimH"])
		assert.Equal(t, models.ColorPositive, colors["fimG"])
		assert.Equal(t, models.ColorNeutral, colors["fimA"])
		assert.Equal(t, models.ColorNeutral, colors["fimC"])

		require.NotNil(t, graph.Stats)
		assert.Equal(t, 4, graph.Stats.TotalNodes)
		assert.Equal(t, 3, graph.Stats.TotalEdges)
	})

	t.Run("layout is deterministic", func(t *testing.T) {
		first := postParse(strings.NewReader(fimHResponse), "?gene=fimH")
		second := postParse(strings.NewReader(fimHResponse), "?gene=fimH")

		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("pretty output is indented", func(t *testing.T) {
		w := postParse(strings.NewReader(fimHResponse), "?gene=fimH&pretty=true")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\n  \"gene\": \"fimH\"")
	})

	t.Run("returns 400 when gene is missing", func(t *testing.T) {
		w := postParse(strings.NewReader(fimHResponse), "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing gene parameter")
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		w := postParse(strings.NewReader(`{invalid json}`), "?gene=fimH")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid BioGRID response")
	})

	t.Run("returns 400 for binary data", func(t *testing.T) {
		w := postParse(bytes.NewReader([]byte{0x00, 0x01, 0x02, 0xFF, 0xFE}), "?gene=fimH")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid BioGRID response")
	})

	t.Run("returns 422 for an empty body", func(t *testing.T) {
		w := postParse(strings.NewReader(""), "?gene=fimH")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("returns 422 when no record has both interactors", func(t *testing.T) {
		w := postParse(strings.NewReader(`{"1": {"OFFICIAL_SYMBOL_A": "fimH"}, "2": {"QUANTITATION": "1"}}`), "?gene=fimH")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "No valid edges found")
	})

	t.Run("returns 405 for GET request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/parse?gene=fimH", nil)
		w := httptest.NewRecorder()

		ParseHandler(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Contains(t, w.Body.String(), "Method not allowed")
	})

	t.Run("handles a large response", func(t *testing.T) {
		records := make([]string, 100)
		for i := range 100 {
			records[i] = fmt.Sprintf(`"%d": {"OFFICIAL_SYMBOL_A": "fimH", "OFFICIAL_SYMBOL_B": "gene%d", "QUANTITATION": "%d"}`, i, i, i-50)
		}

		w := postParse(strings.NewReader("{"+strings.Join(records, ",")+"}"), "?gene=fimH")

		assert.Equal(t, http.StatusOK, w.Code)

		var graph models.Graph
		err := json.NewDecoder(w.Body).Decode(&graph)
		require.NoError(t, err)

		assert.Len(t, graph.Nodes, 101)
		assert.Len(t, graph.Edges, 100)
		assert.Equal(t, 49, graph.Stats.NodesByCategory[models.CategoryPositive])
		assert.Equal(t, 50, graph.Stats.NodesByCategory[models.CategoryNegative])
		assert.Equal(t, 1, graph.Stats.NodesByCategory[models.CategoryNeutral])
	})

	t.Run("handles concurrent requests", func(t *testing.T) {
		numRequests := 10
		results := make(chan int, numRequests)

		for range numRequests {
			go func() {
				w := postParse(strings.NewReader(fimHResponse), "?gene=fimH")
				results <- w.Code
			}()
		}

		for range numRequests {
			code := <-results
			assert.Equal(t, http.StatusOK, code)
		}
	})
}
