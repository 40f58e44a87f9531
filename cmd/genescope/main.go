// Package main is the genescope command: it asks for a gene, fetches its
// interactions from BioGRID, prints a summary and draws the interaction
// network.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/genescope/core/internal/biogrid"
	"github.com/genescope/core/internal/config"
	"github.com/genescope/core/internal/logger"
	"github.com/genescope/core/internal/pipeline"
	"github.com/genescope/core/internal/render"
)

type options struct {
	gene       string
	configPath string
	output     string
	noOpen     bool
	seed       uint64
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "genescope",
		Short: "Draw the BioGRID interaction network of a gene",
		Long: `genescope queries BioGRID for the interactions of one gene, prints the
first records and writes the interaction network as an SVG file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.gene, "gene", "g", "", "gene to query; prompted for when omitted")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&opts.output, "output", "o", "", "where to write the SVG network")
	flags.BoolVar(&opts.noOpen, "no-open", false, "do not open the network in a viewer")
	flags.Uint64Var(&opts.seed, "seed", 0, "layout seed")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Render.OutputPath = opts.output
	}
	if opts.noOpen {
		cfg.Render.Open = false
	}
	if flags.Changed("seed") {
		cfg.Render.Seed = opts.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(opts.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	logger.SetDefault(log)
	logger.Debug("configuration loaded", "base_url", cfg.BioGRID.BaseURL,
		"output", cfg.Render.OutputPath, "open", cfg.Render.Open, "seed", cfg.Render.Seed)

	if cfg.BioGRID.AccessKey == "" {
		log.Warn("BIOGRID_ACCESS_KEY is not set; BioGRID will reject the request")
	}

	out := cmd.OutOrStdout()

	gene := strings.TrimSpace(opts.gene)
	if !flags.Changed("gene") {
		gene, err = pipeline.PromptGene(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
	}

	client := biogrid.NewClient(cfg.BioGRID.BaseURL, cfg.BioGRID.AccessKey, cfg.BioGRID.Timeout,
		biogrid.WithOutput(out))
	renderer := render.NewRenderer(cfg.Render)

	return pipeline.New(client, renderer, out, pipeline.WithLogger(log)).Run(cmd.Context(), gene)
}
