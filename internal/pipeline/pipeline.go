// Package pipeline runs one query end to end: prompt, fetch, summary and
// rendering.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/genescope/core/internal/logger"
	"github.com/genescope/core/internal/models"
	"github.com/genescope/core/internal/render"
	"github.com/genescope/core/internal/report"
)

// Prompt is shown when no gene was given on the command line.
const Prompt = "Enter the gene name (e.g., fimH): "

type Fetcher interface {
	FetchInteractions(ctx context.Context, gene string) (*models.Interactions, error)
}

type Renderer interface {
	Render(interactions *models.Interactions, gene string) (string, error)
}

type Pipeline struct {
	fetcher  Fetcher
	renderer Renderer
	out      io.Writer
	log      *slog.Logger
}

type Option func(*Pipeline)

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

func New(fetcher Fetcher, renderer Renderer, out io.Writer, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:  fetcher,
		renderer: renderer,
		out:      out,
		log:      logger.Default,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PromptGene asks for a gene name on out and reads one line from in. The
// answer is trimmed and otherwise passed through, so it may be empty.
func PromptGene(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, Prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read gene name: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Run fetches the interactions for gene, prints the summary and renders the
// network. Fetch failures, empty results and graphs without edges are
// reported on the output and are not errors. Only a failed render or a
// cancelled context is returned.
func (p *Pipeline) Run(ctx context.Context, gene string) error {
	p.log.Debug("querying interactions", "gene", gene)

	interactions, err := p.fetcher.FetchInteractions(ctx, gene)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		p.log.Debug("fetch returned no result", "gene", gene, "error", err)
	}
	if err != nil || interactions.Len() == 0 {
		fmt.Fprintln(p.out, "No interactions to display.")
		return nil
	}

	report.Summary(p.out, interactions, report.DefaultLimit)

	path, err := p.renderer.Render(interactions, gene)
	switch {
	case errors.Is(err, render.ErrNoValidEdges):
		fmt.Fprintln(p.out, "No valid edges found in the interaction data.")
		return nil
	case errors.Is(err, render.ErrDisplay):
		p.log.Warn("could not open the network viewer", "path", path, "error", err)
	case err != nil:
		return fmt.Errorf("failed to render interaction network: %w", err)
	}

	fmt.Fprintf(p.out, "Interaction network saved to %s\n", path)
	p.log.Info("rendered interaction network", "gene", gene, "records", interactions.Len(), "path", path)
	return nil
}
