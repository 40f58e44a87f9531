package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"github.com/genescope/core/internal/models"
)

// Options sets the canvas size in pixels. Zero values fall back to the
// defaults.
type Options struct {
	Width  int
	Height int
}

const (
	defaultWidth  = 1200
	defaultHeight = 1000

	margin     = 60
	plotTop    = 170
	loopRadius = 8

	legendWidth  = 390
	legendRow    = 24
	legendMargin = 20
)

const (
	edgeStyle   = "stroke:gray;stroke-width:1.2;fill:none"
	labelStyle  = "font-family:sans-serif;font-size:10px;text-anchor:middle"
	titleStyle  = "font-family:sans-serif;font-size:18px;text-anchor:middle"
	legendStyle = "font-family:sans-serif;font-size:12px"
)

// Title returns the heading drawn above the network.
func Title(gene string) string {
	return "Interaction Network for Gene: " + gene
}

// SVG writes graph as a standalone SVG document. Node positions are scaled
// into the canvas, so any coordinate range is accepted.
func SVG(w io.Writer, graph *models.Graph, opts Options) error {
	if graph == nil {
		return errors.New("nothing to render")
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(float64(width), float64(height))
	canvas.Title(Title(graph.Gene))
	canvas.Rect(0, 0, float64(width), float64(height), "fill:white")

	canvas.Def()
	canvas.Marker("arrow", 10, 5, 8, 8, `viewBox="0 0 10 10"`, `orient="auto"`)
	canvas.Path("M0,0 L10,5 L0,10 z", "fill:gray")
	canvas.MarkerEnd()
	canvas.DefEnd()

	canvas.Text(float64(width)/2, 36, Title(graph.Gene), titleStyle)

	pos := project(graph.Nodes, width, height)
	index := make(map[string]int, len(graph.Nodes))
	for i, n := range graph.Nodes {
		index[n.ID] = i
	}

	canvas.Gid("edges")
	for _, e := range graph.Edges {
		from, okFrom := index[e.Source]
		to, okTo := index[e.Target]
		if !okFrom || !okTo {
			continue
		}
		if from == to {
			p, r := pos[from], radius(graph.Nodes[from].Size)
			canvas.Circle(p.x, p.y-r-loopRadius, loopRadius, edgeStyle)
			continue
		}
		drawEdge(canvas, pos[from], pos[to], radius(graph.Nodes[from].Size), radius(graph.Nodes[to].Size))
	}
	canvas.Gend()

	canvas.Gid("nodes")
	for i, n := range graph.Nodes {
		canvas.Circle(pos[i].x, pos[i].y, radius(n.Size), "fill:"+models.CategoryColor(n.Category))
	}
	for i, n := range graph.Nodes {
		canvas.Text(pos[i].x, pos[i].y+3, n.ID, labelStyle)
	}
	canvas.Gend()

	drawLegend(canvas, width)
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

type point struct{ x, y float64 }

// radius converts a marker area into a circle radius.
func radius(size int) float64 {
	return math.Sqrt(float64(size)) / 2
}

// project maps layout coordinates onto the plot area below the title and
// legend. A degenerate axis is centered.
func project(nodes []models.Node, width, height int) []point {
	out := make([]point, len(nodes))
	if len(nodes) == 0 {
		return out
	}

	minX, maxX := nodes[0].X, nodes[0].X
	minY, maxY := nodes[0].Y, nodes[0].Y
	for _, n := range nodes[1:] {
		minX, maxX = math.Min(minX, n.X), math.Max(maxX, n.X)
		minY, maxY = math.Min(minY, n.Y), math.Max(maxY, n.Y)
	}

	left, right := float64(margin), float64(width-margin)
	top, bottom := float64(plotTop), float64(height-margin)
	if bottom < top {
		top, bottom = float64(margin), float64(height-margin)
	}

	for i, n := range nodes {
		out[i] = point{
			x: scale(n.X, minX, maxX, left, right),
			y: scale(n.Y, minY, maxY, top, bottom),
		}
	}
	return out
}

func scale(v, lo, hi, outLo, outHi float64) float64 {
	if hi-lo < 1e-9 {
		return (outLo + outHi) / 2
	}
	return outLo + (v-lo)/(hi-lo)*(outHi-outLo)
}

// drawEdge draws a line between the rims of the two circles so the arrow head
// stays visible.
func drawEdge(canvas *svg.SVG, from, to point, fromR, toR float64) {
	dx, dy := to.x-from.x, to.y-from.y
	dist := math.Hypot(dx, dy)
	if dist <= fromR+toR {
		canvas.Line(from.x, from.y, to.x, to.y, edgeStyle, `marker-end="url(#arrow)"`)
		return
	}
	ux, uy := dx/dist, dy/dist
	canvas.Line(
		from.x+ux*fromR, from.y+uy*fromR,
		to.x-ux*toR, to.y-uy*toR,
		edgeStyle, `marker-end="url(#arrow)"`,
	)
}

func drawLegend(canvas *svg.SVG, width int) {
	x := float64(width - legendWidth - legendMargin)
	y := float64(legendMargin)
	h := float64(len(models.Categories)*legendRow + 12)

	canvas.Gid("legend")
	canvas.Rect(x, y, legendWidth, h, "fill:white;stroke:lightgray")
	for i, category := range models.Categories {
		cy := y + 18 + float64(i*legendRow)
		canvas.Circle(x+16, cy, 7, "fill:"+models.CategoryColor(category))
		canvas.Text(x+32, cy+4, models.CategoryLabel(category), legendStyle)
	}
	canvas.Gend()
}
