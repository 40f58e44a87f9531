package parser

import (
	"github.com/genescope/core/internal/models"
)

// BuildGraph builds the interaction graph for gene. The queried gene is
// always the first node. Records missing either interactor are skipped.
// Nodes and edges are inserted idempotently: a node touched again takes the
// category of the latest record, and a repeated A->B edge is stored once.
func BuildGraph(interactions *models.Interactions, gene string) *models.Graph {
	graph := &models.Graph{
		Gene:  gene,
		Nodes: []models.Node{},
		Edges: []models.Edge{},
	}
	nodeIndex := make(map[string]int)
	edgeSet := make(map[models.Edge]bool)

	setNode(graph, nodeIndex, gene, models.CategoryQueried, models.SizeQueried)

	if interactions != nil {
		for _, id := range interactions.IDs {
			a, b, raw := ExtractInteractors(interactions.Records[id])
			if a == "" || b == "" {
				continue
			}

			q, ok := ParseQuantitation(raw)

			setNode(graph, nodeIndex, a, NodeCategory(a, gene, q, ok), nodeSize(a, gene))
			setNode(graph, nodeIndex, b, NodeCategory(b, gene, q, ok), nodeSize(b, gene))

			edge := models.Edge{Source: a, Target: b}
			if edgeSet[edge] {
				continue
			}
			edgeSet[edge] = true
			graph.Edges = append(graph.Edges, edge)
		}
	}

	graph.Stats = buildStats(graph)

	return graph
}

func setNode(graph *models.Graph, nodeIndex map[string]int, id, category string, size int) {
	node := models.Node{
		ID:       id,
		Category: category,
		Color:    models.CategoryColor(category),
		Size:     size,
	}

	if i, exists := nodeIndex[id]; exists {
		graph.Nodes[i] = node
		return
	}

	nodeIndex[id] = len(graph.Nodes)
	graph.Nodes = append(graph.Nodes, node)
}

func nodeSize(id, gene string) int {
	if id == gene {
		return models.SizeQueried
	}
	return models.SizeInteractor
}

func buildStats(graph *models.Graph) *models.Stats {
	stats := &models.Stats{
		TotalNodes:      len(graph.Nodes),
		TotalEdges:      len(graph.Edges),
		NodesByCategory: make(map[string]int),
	}

	for _, node := range graph.Nodes {
		stats.NodesByCategory[node.Category]++
	}

	return stats
}
