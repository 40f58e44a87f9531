// Package render turns interaction records into a laid-out graph and draws it
// as an SVG document.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/genescope/core/internal/config"
	"github.com/genescope/core/internal/layout"
	"github.com/genescope/core/internal/models"
	"github.com/genescope/core/internal/parser"
)

var (
	// ErrNoValidEdges means no record named both interactors. Nothing is drawn.
	ErrNoValidEdges = errors.New("no valid edges found in the interaction data")
	// ErrDisplay means the SVG was written but the viewer could not be started.
	ErrDisplay = errors.New("failed to open the network viewer")
)

// Prepare builds the interaction graph for gene and lays it out with seed.
// A graph without edges is returned unpositioned together with
// ErrNoValidEdges.
func Prepare(interactions *models.Interactions, gene string, seed uint64) (*models.Graph, error) {
	graph := parser.BuildGraph(interactions, gene)
	if len(graph.Edges) == 0 {
		return graph, ErrNoValidEdges
	}

	layout.Apply(graph, seed)
	return graph, nil
}

// Opener shows a rendered file to the user.
type Opener func(path string) error

// Display hands path to the system viewer.
func Display(path string) error {
	return browser.OpenFile(path)
}

type Renderer struct {
	Options    Options
	OutputPath string
	Open       bool
	Seed       uint64

	opener Opener
}

type Option func(*Renderer)

// WithOpener replaces the viewer used after the file is written.
func WithOpener(o Opener) Option {
	return func(r *Renderer) { r.opener = o }
}

func NewRenderer(cfg config.Render, opts ...Option) *Renderer {
	r := &Renderer{
		Options:    Options{Width: cfg.Width, Height: cfg.Height},
		OutputPath: cfg.OutputPath,
		Open:       cfg.Open,
		Seed:       cfg.Seed,
		opener:     Display,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the network for gene into OutputPath and opens it when Open is
// set. It returns the written path. On ErrNoValidEdges no file is written; on
// ErrDisplay the path is still returned.
func (r *Renderer) Render(interactions *models.Interactions, gene string) (string, error) {
	graph, err := Prepare(interactions, gene, r.Seed)
	if err != nil {
		return "", err
	}

	if err := WriteFile(r.OutputPath, graph, r.Options); err != nil {
		return "", err
	}

	if !r.Open || r.opener == nil {
		return r.OutputPath, nil
	}
	if err := r.opener(r.OutputPath); err != nil {
		return r.OutputPath, fmt.Errorf("%w: %w", ErrDisplay, err)
	}

	return r.OutputPath, nil
}

// WriteFile renders graph to path, creating parent directories as needed.
func WriteFile(path string, graph *models.Graph, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := SVG(f, graph, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
