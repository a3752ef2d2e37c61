package main

import (
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/dnldd/tradesignal/shared"
	"github.com/peterldowns/testy/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr []string
	}{
		{
			name: "valid indicator config",
			cfg: Config{
				Input:     "batch.json",
				Timeframe: "week",
				Indicator: "SMA",
			},
			wantErr: nil,
		},
		{
			name: "valid strategy config",
			cfg: Config{
				Input:      "batch.json",
				Strategy:   "RSI2",
				ParamGuard: "period",
				LogLevel:   "debug",
			},
			wantErr: nil,
		},
		{
			name: "missing input",
			cfg: Config{
				Indicator: "SMA",
			},
			wantErr: []string{"input filepath cannot be an empty string"},
		},
		{
			name: "missing indicator and strategy",
			cfg: Config{
				Input: "batch.json",
			},
			wantErr: []string{"no indicator or strategy provided"},
		},
		{
			name: "both indicator and strategy",
			cfg: Config{
				Input:     "batch.json",
				Indicator: "SMA",
				Strategy:  "RSI2",
			},
			wantErr: []string{"only one of indicator or strategy can be provided"},
		},
		{
			name: "missing input and computation",
			cfg:  Config{},
			wantErr: []string{
				"input filepath cannot be an empty string",
				"no indicator or strategy provided",
			},
		},
		{
			name: "bad log level",
			cfg: Config{
				Input:     "batch.json",
				Indicator: "SMA",
				LogLevel:  "loud",
			},
			wantErr: []string{"parsing log level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("expected no error, got: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error(s) %v, got none", tt.wantErr)
					return
				}
				for _, want := range tt.wantErr {
					if !strings.Contains(err.Error(), want) {
						t.Errorf("expected error to contain %q, got %v", want, err)
					}
				}
			}
		})
	}

	// Ensure unknown timeframes and guards error.
	cfg := Config{Input: "batch.json", Indicator: "SMA", Timeframe: "year"}
	assert.Error(t, cfg.Validate())
	cfg = Config{Input: "batch.json", Indicator: "SMA", ParamGuard: "strict"}
	assert.Error(t, cfg.Validate())
}

func TestConfigTimeframe(t *testing.T) {
	// Ensure the timeframe defaults to daily.
	cfg := Config{}
	assert.Equal(t, cfg.timeframe(), shared.Day)

	cfg.Timeframe = "month"
	assert.Equal(t, cfg.timeframe(), shared.Month)
}

func TestLoadConfig(t *testing.T) {
	// Save and restore original os.Args
	origArgs := os.Args
	defer func() {
		os.Args = origArgs
	}()

	tests := []struct {
		name        string
		env         map[string]string
		args        []string
		expectErr   bool
		expectInErr []string
		expectCfg   Config
	}{
		{
			name: "all from env",
			env: map[string]string{
				"input":     "batch.json",
				"timeframe": "week",
				"indicator": "EMA",
				"pretty":    "true",
			},
			args:      []string{"cmd"},
			expectErr: false,
			expectCfg: Config{
				Input:     "batch.json",
				Timeframe: "week",
				Indicator: "EMA",
				Pretty:    true,
			},
		},
		{
			name:      "all from flags",
			env:       map[string]string{},
			args:      []string{"cmd", "-input=batch.json", "-strategy=PSAR", "-paramguard=period", "-metricsfile=/tmp/metrics.prom"},
			expectErr: false,
			expectCfg: Config{
				Input:       "batch.json",
				Strategy:    "PSAR",
				ParamGuard:  "period",
				MetricsFile: "/tmp/metrics.prom",
			},
		},
		{
			name: "flags override env",
			env: map[string]string{
				"input":     "env.json",
				"indicator": "SMA",
			},
			args:      []string{"cmd", "-input=flag.json"},
			expectErr: false,
			expectCfg: Config{
				Input:     "flag.json",
				Indicator: "SMA",
			},
		},
		{
			name:        "missing input and computation",
			env:         map[string]string{},
			args:        []string{"cmd"},
			expectErr:   true,
			expectInErr: []string{"input filepath cannot be an empty string", "no indicator or strategy provided"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = tt.args

			var cfg Config
			err := loadConfig(&cfg, "testdata/missing.env")

			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				for _, want := range tt.expectInErr {
					if !strings.Contains(err.Error(), want) {
						t.Errorf("expected error to contain %q, got %v", want, err)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			assert.Equal(t, cfg.Input, tt.expectCfg.Input)
			assert.Equal(t, cfg.Timeframe, tt.expectCfg.Timeframe)
			assert.Equal(t, cfg.Indicator, tt.expectCfg.Indicator)
			assert.Equal(t, cfg.Strategy, tt.expectCfg.Strategy)
			assert.Equal(t, cfg.ParamGuard, tt.expectCfg.ParamGuard)
			assert.Equal(t, cfg.MetricsFile, tt.expectCfg.MetricsFile)
			assert.Equal(t, cfg.Pretty, tt.expectCfg.Pretty)
		})
	}
}

func TestRegisterFlag(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet("cmd", flag.ExitOnError)

	var cfg Config
	var count int

	// Ensure unsupported types and non-pointers error.
	assert.Error(t, cfg.registerFlag("count", &count, "a count"))
	assert.Error(t, cfg.registerFlag("input", cfg.Input, "the input"))

	// Ensure registering a flag twice is a no-op.
	assert.NoError(t, cfg.registerFlag("timeframe", &cfg.Timeframe, "the timeframe"))
	assert.NoError(t, cfg.registerFlag("timeframe", &cfg.Timeframe, "the timeframe"))
}
