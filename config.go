package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/dnldd/tradesignal/params"
	"github.com/dnldd/tradesignal/shared"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the configuration struct for the command.
type Config struct {
	// Input is the filepath to the raw record batch.
	Input string
	// Timeframe is the aggregation timeframe, one of day, week or month.
	Timeframe string
	// Indicator is the indicator to compute.
	Indicator string
	// Strategy is the strategy to compute.
	Strategy string
	// Params is the filepath to a parameter table overlay.
	Params string
	// ParamGuard is the parameter guard, one of legacy or period.
	ParamGuard string
	// MetricsFile is the filepath metrics are written to after a run.
	MetricsFile string
	// LogLevel is the minimum log level.
	LogLevel string
	// Pretty is the indented output flag.
	Pretty bool

	registeredFlags map[string]bool
}

// Validate asserts the config sane inputs.
func (cfg *Config) Validate() error {
	var errs error

	if cfg.Input == "" {
		errs = errors.Join(errs, fmt.Errorf("input filepath cannot be an empty string"))
	}

	switch {
	case cfg.Indicator == "" && cfg.Strategy == "":
		errs = errors.Join(errs, fmt.Errorf("no indicator or strategy provided"))
	case cfg.Indicator != "" && cfg.Strategy != "":
		errs = errors.Join(errs, fmt.Errorf("only one of indicator or strategy can be provided"))
	}

	if cfg.Timeframe != "" {
		_, err := shared.ParseTimeframe(cfg.Timeframe)
		if err != nil {
			errs = errors.Join(errs, err)
		}
	}

	_, err := params.ParseGuard(cfg.ParamGuard)
	if err != nil {
		errs = errors.Join(errs, err)
	}

	if cfg.LogLevel != "" {
		_, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("parsing log level: %w", err))
		}
	}

	return errs
}

// timeframe returns the configured timeframe, daily by default.
func (cfg *Config) timeframe() shared.Timeframe {
	if cfg.Timeframe == "" {
		return shared.Day
	}

	timeframe, err := shared.ParseTimeframe(cfg.Timeframe)
	if err != nil {
		return shared.Day
	}

	return timeframe
}

// registerFlag registers command line arguments of any type and tracks them to avoid reregistration.
func (cfg *Config) registerFlag(name string, value interface{}, usage string) error {
	if cfg.registeredFlags == nil {
		cfg.registeredFlags = make(map[string]bool)
	}

	if cfg.registeredFlags[name] {
		return nil
	}

	cfg.registeredFlags[name] = true

	defValue := os.Getenv(name)
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("%s: value must be a non-nil pointer", name)
	}

	switch val.Elem().Kind() {
	case reflect.String:
		flag.StringVar(value.(*string), name, defValue, usage)
	case reflect.Bool:
		var def bool
		if defValue != "" {
			def, _ = strconv.ParseBool(defValue)
		}
		flag.BoolVar(value.(*bool), name, def, usage)
	default:
		return fmt.Errorf("%s: unsupported type", name)
	}

	return nil
}

// loadConfig loads the configuration from environment variables and command line flags.
func loadConfig(cfg *Config, path string) error {
	if path == "" {
		path = ".env"
	}

	// Check if the expected .env file exists before loading it.
	_, err := os.Stat(path)
	if err == nil {
		err := godotenv.Load(path)
		if err != nil {
			return fmt.Errorf("loading .env file: %w", err)
		}
	}

	flags := []struct {
		name  string
		value any
		usage string
	}{
		{"input", &cfg.Input, "the raw record batch filepath"},
		{"timeframe", &cfg.Timeframe, "the aggregation timeframe (day, week, month)"},
		{"indicator", &cfg.Indicator, "the indicator to compute"},
		{"strategy", &cfg.Strategy, "the strategy to compute"},
		{"params", &cfg.Params, "the parameter table overlay filepath"},
		{"paramguard", &cfg.ParamGuard, "the parameter guard (legacy, period)"},
		{"metricsfile", &cfg.MetricsFile, "the metrics textfile filepath"},
		{"loglevel", &cfg.LogLevel, "the minimum log level"},
		{"pretty", &cfg.Pretty, "the indented output flag"},
	}

	// Register command line arguments using loaded environment variables as defaults.
	for _, f := range flags {
		err := cfg.registerFlag(f.name, f.value, f.usage)
		if err != nil {
			return err
		}
	}

	// Parse command-line flags.
	flag.Parse()

	return cfg.Validate()
}
