// Package layout positions the nodes of an interaction graph with a seeded,
// deterministic force-directed algorithm.
package layout

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/genescope/core/internal/models"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed uint64 = 42

// Eades parameters.
const (
	repulsion = 1
	rate      = 0.05
	updates   = 30
	theta     = 0.2
)

// Apply computes node coordinates for g in place. The same graph and seed
// always produce the same coordinates.
func Apply(g *models.Graph, seed uint64) {
	if g == nil || len(g.Nodes) == 0 {
		return
	}

	dg := newOrderedGraph(g)

	eades := layout.EadesR2{
		Repulsion: repulsion,
		Rate:      rate,
		Updates:   updates,
		Theta:     theta,
		Src:       rand.NewPCG(seed, seed),
	}
	optimizer := layout.NewOptimizerR2(dg, eades.Update)
	for optimizer.Update() {
	}

	for i := range g.Nodes {
		pos := optimizer.Coord2(int64(i))
		g.Nodes[i].X = pos.X
		g.Nodes[i].Y = pos.Y
	}
}

// orderedGraph wraps a simple directed graph so that node iteration follows
// node IDs. The Eades optimizer seeds positions in iteration order, so map
// ordering would otherwise make layouts vary between runs.
type orderedGraph struct {
	*simple.DirectedGraph
}

func newOrderedGraph(g *models.Graph) orderedGraph {
	dg := simple.NewDirectedGraph()
	index := make(map[string]int64, len(g.Nodes))

	for i, n := range g.Nodes {
		id := int64(i)
		index[n.ID] = id
		dg.AddNode(simple.Node(id))
	}

	for _, e := range g.Edges {
		from, okFrom := index[e.Source]
		to, okTo := index[e.Target]
		// Self loops do not affect placement and are rejected by simple graphs.
		if !okFrom || !okTo || from == to {
			continue
		}
		dg.SetEdge(dg.NewEdge(simple.Node(from), simple.Node(to)))
	}

	return orderedGraph{dg}
}

func (g orderedGraph) Nodes() graph.Nodes {
	return sortedNodes(g.DirectedGraph.Nodes())
}

func (g orderedGraph) From(id int64) graph.Nodes {
	return sortedNodes(g.DirectedGraph.From(id))
}

func (g orderedGraph) To(id int64) graph.Nodes {
	return sortedNodes(g.DirectedGraph.To(id))
}

func sortedNodes(it graph.Nodes) graph.Nodes {
	nodes := graph.NodesOf(it)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return iterator.NewOrderedNodes(nodes)
}
