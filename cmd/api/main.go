// Package main starts the genescope HTTP API: health checks, graph building
// from posted BioGRID responses and live network lookups rendered as JSON or
// SVG.
package main

import (
	"io"
	"net/http"
	"os"

	"github.com/genescope/core/cmd/api/middleware"
	"github.com/genescope/core/internal/biogrid"
	"github.com/genescope/core/internal/config"
	"github.com/genescope/core/internal/handlers"
	"github.com/genescope/core/internal/logger"
	"github.com/genescope/core/internal/render"
)

const maxIdleUpstreamConns = 16

func main() {
	cfg, err := config.Load(os.Getenv("GENESCOPE_CONFIG"))
	if err != nil {
		logger.Error("error loading configuration", "error", err)
		os.Exit(1)
	}
	logger.SetDefault(logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stderr))

	if cfg.BioGRID.AccessKey == "" {
		logger.Warn("BIOGRID_ACCESS_KEY is not set; live lookups will be rejected by BioGRID")
	}

	handler := middleware.Cors(cfg.Server.CORSAllowedOrigin, newRouter(newBioGRIDClient(cfg.BioGRID), cfg.Render))

	logger.Info("server starting", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newBioGRIDClient builds the upstream client shared by concurrent lookups.
// Console output is discarded; failures surface as HTTP status codes.
func newBioGRIDClient(cfg config.BioGRID) *biogrid.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdleUpstreamConns

	return biogrid.NewClient(cfg.BaseURL, cfg.AccessKey, cfg.Timeout,
		biogrid.WithHTTPClient(&http.Client{Timeout: cfg.Timeout, Transport: transport}),
		biogrid.WithOutput(io.Discard))
}

func newRouter(fetcher handlers.Fetcher, cfg config.Render) *http.ServeMux {
	network := handlers.NewNetworkHandler(fetcher, cfg.Seed, render.Options{Width: cfg.Width, Height: cfg.Height})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/parse", handlers.ParseHandler)
	mux.HandleFunc("/network", network.JSON)
	mux.HandleFunc("/network.svg", network.SVG)
	return mux
}
