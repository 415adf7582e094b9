// Command heatmap renders the year-by-month temperature matrix to a PNG
// file in one shot.
//
// Usage:
//
//	go run ./cmd/heatmap -data data/temperature_daily.csv -out matrix.png -mode max
//
// Flags override the corresponding environment variables; see
// internal/config for the full configuration surface.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

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

	dataFile := flag.String("data", cfg.DataFile, "path to the daily temperature CSV")
	outFile := flag.String("out", cfg.OutputFile, "output PNG path")
	modeStr := flag.String("mode", "max", "statistic driving cell colors: max or min")
	flag.Parse()

	logger := observability.NewLogger(cfg)

	mode, err := domain.ParseDisplayMode(*modeStr)
	if err != nil {
		logger.Error("invalid -mode flag", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger, *dataFile, *outFile, mode); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, dataFile, outFile string, mode domain.DisplayMode) error {
	metrics := observability.NewMetrics()

	loader := csvdata.NewLoader(dataFile, logger)
	scale := domain.NewColorScale(cfg.TempMin, cfg.TempMax)
	p := pipeline.New(loader, cfg.YearStart, cfg.YearEnd, scale, logger, metrics)

	if err := p.Run(context.Background()); err != nil {
		return err
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	charts := render.NewChartCache(renderer, p.Dataset(), 2)

	data, err := charts.PNG(mode)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return err
	}

	logger.Info("chart written",
		"output", outFile,
		"mode", mode.String(),
		"years", len(p.Dataset().Years),
		"summaries", len(p.Dataset().Summaries),
	)
	return nil
}
