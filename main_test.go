package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dnldd/tradesignal/pipeline"
	"github.com/dnldd/tradesignal/shared"
	"github.com/peterldowns/testy/assert"
)

const batchPath = "fetch/testdata/batch.json"

func TestRunIndicator(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "metrics.prom")
	cfg := &Config{
		Input:       batchPath,
		Indicator:   "sma",
		LogLevel:    "error",
		MetricsFile: metricsFile,
	}

	// Ensure an indicator run writes a json result.
	var out bytes.Buffer
	err := run(cfg, &out)
	assert.NoError(t, err)

	var result pipeline.IndicatorResult
	assert.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, len(result.SeriesOne), 3)
	assert.Equal(t, len(result.SeriesTwo), 1)
	assert.Equal(t, result.SeriesOne[0].Date, "2024-01-01")
	assert.Equal(t, result.SeriesOne[2].Date, "2024-01-03")
	assert.Equal(t, len(result.Warnings), 0)

	// Ensure metrics are written to the metrics file.
	b, err := os.ReadFile(metricsFile)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "tradesignal_computations_total"))
	assert.True(t, strings.Contains(string(b), "tradesignal_filled_days_total 1"))
}

func TestRunStrategy(t *testing.T) {
	cfg := &Config{
		Input:    batchPath,
		Strategy: "RSI2",
		LogLevel: "error",
		Pretty:   true,
	}

	// Ensure a strategy run writes indented actions.
	var out bytes.Buffer
	err := run(cfg, &out)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out.String(), "\n  \"seriesOne\""))

	var result pipeline.StrategyResult
	assert.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, len(result.SeriesOne), 3)
	for _, point := range result.SeriesOne {
		assert.Equal(t, point.Action, shared.Hold)
	}
}

func TestRunWarnings(t *testing.T) {
	cfg := &Config{
		Input:     batchPath,
		Indicator: "MACD",
		LogLevel:  "error",
	}

	// Ensure unknown names surface as warnings with empty series.
	var out bytes.Buffer
	err := run(cfg, &out)
	assert.NoError(t, err)

	var result pipeline.IndicatorResult
	assert.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, len(result.SeriesOne), 0)
	assert.Equal(t, len(result.SeriesTwo), 0)
	assert.Equal(t, len(result.Warnings), 1)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	same := filepath.Join(dir, "same.json")
	err := os.WriteFile(same, []byte(`{"data":[{"symbol":"KMB"}],"dataTwo":[{"symbol":"KMB"}]}`), 0o600)
	assert.NoError(t, err)

	badParams := filepath.Join(dir, "params.yaml")
	err = os.WriteFile(badParams, []byte("indicators:\n  SMA:\n    year:\n      period: 3\n"), 0o600)
	assert.NoError(t, err)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing input", Config{Input: filepath.Join(dir, "missing.json"), Indicator: "SMA"}},
		{"same instrument", Config{Input: same, Indicator: "SMA"}},
		{"bad parameter overlay", Config{Input: batchPath, Indicator: "SMA", Params: badParams}},
		{"bad guard", Config{Input: batchPath, Indicator: "SMA", ParamGuard: "strict"}},
	}

	for _, test := range tests {
		var out bytes.Buffer
		err := run(&test.cfg, &out)
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}
