package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mkovacevic/tube-hunter/internal/apperr"
	"github.com/mkovacevic/tube-hunter/internal/filter"
	"github.com/mkovacevic/tube-hunter/internal/pipeline"
	"github.com/mkovacevic/tube-hunter/internal/report"
	"github.com/mkovacevic/tube-hunter/internal/scorer"
	"github.com/mkovacevic/tube-hunter/internal/youtube"
	"github.com/mkovacevic/tube-hunter/pkg/config/env"
	"github.com/mkovacevic/tube-hunter/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var ce *apperr.ConfigError
		if errors.As(err, &ce) {
			slog.Error("❌ Configuration error", "error", err)
		} else {
			slog.Error("❌ Unexpected error", "error", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fl, err := parseFlags(args)
	if err != nil {
		return apperr.NewConfigWrap("invalid arguments", err)
	}

	if err := logger.Setup(fl.logLevel); err != nil {
		return apperr.NewConfigWrap("invalid log level", err)
	}

	env.LoadDotEnv(".env")

	cfg, err := LoadConfig(fl)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	searcher, err := youtube.NewClient(cfg.YouTubeAPIKey)
	if err != nil {
		return err
	}
	renderer := report.NewRenderer()

	opts := []pipeline.Option{}
	if cfg.FilterEnabled {
		scoringClient, err := scorer.NewClient(cfg.AnthropicAPIKey, scorer.WithModel(cfg.AnthropicModel))
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithFilter(filter.NewStage(scoringClient)))
	}

	p := pipeline.New(searcher, renderer, pipeline.Config{
		MaxResults:      cfg.MaxResults,
		OutputDir:       cfg.OutputDir,
		FilterThreshold: cfg.FilterThreshold,
	}, opts...)

	summary := p.Run(ctx, cfg.Topics)

	slog.Info("📁 Reports saved", "output_dir", cfg.OutputDir, "videos", summary.VideosSaved)

	return nil
}
