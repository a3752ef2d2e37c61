package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dnldd/tradesignal/fetch"
	"github.com/dnldd/tradesignal/metrics"
	"github.com/dnldd/tradesignal/params"
	"github.com/dnldd/tradesignal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// run computes the configured indicator or strategy over the input batch and
// writes the result as json to the provided writer.
func run(cfg *Config, out io.Writer) error {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger := log.With().Str("service", "tradesignal").Logger()
	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		logger = logger.Level(level)
	}

	batch, err := fetch.LoadBatch(cfg.Input)
	if err != nil {
		return fmt.Errorf("loading batch: %w", err)
	}
	err = batch.Validate()
	if err != nil {
		return fmt.Errorf("validating batch: %w", err)
	}

	tables, err := params.LoadTable(cfg.Params)
	if err != nil {
		return fmt.Errorf("loading parameter tables: %w", err)
	}

	guard, err := params.ParseGuard(cfg.ParamGuard)
	if err != nil {
		return fmt.Errorf("parsing parameter guard: %w", err)
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	pipelineLogger := logger.With().Str("component", "pipeline").Logger()
	p, err := pipeline.NewPipeline(&pipeline.PipelineConfig{
		Indicators: tables.Indicators,
		Strategies: tables.Strategies,
		Guard:      guard,
		Metrics:    m,
		Logger:     &pipelineLogger,
	})
	if err != nil {
		return fmt.Errorf("creating pipeline: %w", err)
	}

	req := &pipeline.Request{
		One:       batch.One,
		Two:       batch.Two,
		Timeframe: cfg.timeframe(),
	}

	var result any
	switch {
	case cfg.Indicator != "":
		req.Name = cfg.Indicator
		result = p.RunIndicator(req)
	default:
		req.Name = cfg.Strategy
		result = p.RunStrategy(req)
	}

	enc := json.NewEncoder(out)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	err = enc.Encode(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if cfg.MetricsFile != "" {
		err = prometheus.WriteToTextfile(cfg.MetricsFile, reg)
		if err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		logger.Debug().Msgf("metrics written to %s", cfg.MetricsFile)
	}

	return nil
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		os.Exit(1)
	}

	err = run(&cfg, os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("running pipeline")
		os.Exit(1)
	}
}
