// Command heatmap-server loads the daily temperature dataset once, runs the
// aggregation pipeline, and serves the rendered year-by-month matrix over
// HTTP. POST /toggle flips the statistic driving cell colors between the
// monthly average maxima and minima.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/PeterChiang0101/CSCE679-Assignment1/internal/adapter/http"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/config"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/csvdata"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/observability"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/pipeline"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := csvdata.NewLoader(cfg.DataFile, logger)
	scale := domain.NewColorScale(cfg.TempMin, cfg.TempMax)
	p := pipeline.New(loader, cfg.YearStart, cfg.YearEnd, scale, logger, metrics)

	// The one async load boundary: everything after this runs against an
	// immutable dataset.
	if err := p.Run(ctx); err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		logger.Error("failed to build renderer", "error", err)
		os.Exit(1)
	}
	charts := render.NewChartCache(renderer, p.Dataset(), 4)
	modes := httpadapter.NewModeController(metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, charts, modes, p, logger, metrics)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
