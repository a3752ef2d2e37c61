package pipeline

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dnldd/tradesignal/indicator"
	"github.com/dnldd/tradesignal/metrics"
	"github.com/dnldd/tradesignal/params"
	"github.com/dnldd/tradesignal/series"
	"github.com/dnldd/tradesignal/shared"
	"github.com/dnldd/tradesignal/strategy"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

const (
	// familyIndicator labels indicator computations.
	familyIndicator = "indicator"
	// familyStrategy labels strategy computations.
	familyStrategy = "strategy"
)

// PipelineConfig represents the configuration of the pipeline.
type PipelineConfig struct {
	// Indicators is the indicator parameter table.
	Indicators params.Table
	// Strategies is the strategy parameter table.
	Strategies params.Table
	// Guard validates looked up parameter sets before computing.
	Guard params.Guard
	// Metrics holds the pipeline metrics.
	Metrics *metrics.Metrics
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *PipelineConfig) Validate() error {
	var errs error

	if cfg.Indicators == nil {
		errs = errors.Join(errs, fmt.Errorf("indicator parameter table cannot be nil"))
	}
	if cfg.Strategies == nil {
		errs = errors.Join(errs, fmt.Errorf("strategy parameter table cannot be nil"))
	}
	if cfg.Guard != params.LegacyGuard && cfg.Guard != params.PeriodGuard {
		errs = errors.Join(errs, fmt.Errorf("unknown parameter guard: %d", int(cfg.Guard)))
	}
	if cfg.Metrics == nil {
		errs = errors.Join(errs, fmt.Errorf("metrics cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Request represents a computation over one or two instruments.
type Request struct {
	// One is the raw batch of the first instrument.
	One []shared.RawRecord
	// Two is the raw batch of the optional second instrument.
	Two []shared.RawRecord
	// Timeframe is the aggregation timeframe.
	Timeframe shared.Timeframe
	// Name is the indicator or strategy name.
	Name string
}

// IndicatorResult represents the aligned indicator series of a request.
type IndicatorResult struct {
	SeriesOne []shared.IndicatorPoint `json:"seriesOne"`
	SeriesTwo []shared.IndicatorPoint `json:"seriesTwo"`
	Warnings  []string                `json:"warnings"`
}

// StrategyResult represents the aligned strategy actions of a request.
type StrategyResult struct {
	SeriesOne []shared.StrategyPoint `json:"seriesOne"`
	SeriesTwo []shared.StrategyPoint `json:"seriesTwo"`
	Warnings  []string               `json:"warnings"`
}

// Pipeline cleans, aggregates and computes indicators and strategies over
// raw trading records.
type Pipeline struct {
	cfg  *PipelineConfig
	runs atomic.Uint64
}

// NewPipeline initializes a new pipeline.
func NewPipeline(cfg *PipelineConfig) (*Pipeline, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating pipeline config: %w", err)
	}

	return &Pipeline{cfg: cfg}, nil
}

// Runs returns the number of requests processed by the pipeline.
func (p *Pipeline) Runs() uint64 {
	return p.runs.Load()
}

// job tracks a single request through the pipeline.
type job struct {
	family   string
	label    string
	logger   zerolog.Logger
	counter  prometheus.Counter
	warnings []string
}

// warn records a warning for the request.
func (j *job) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	j.logger.Warn().Msg(msg)
	j.counter.Inc()
	j.warnings = append(j.warnings, msg)
}

// newJob creates a job for the provided request. The label names the
// computation in metrics.
func (p *Pipeline) newJob(family string, label string, req *Request) *job {
	p.runs.Inc()

	return &job{
		family: family,
		label:  label,
		logger: p.cfg.Logger.With().
			Str("run", uuid.New().String()).
			Str(family, req.Name).
			Str("timeframe", req.Timeframe.String()).
			Logger(),
		counter:  p.cfg.Metrics.Warnings,
		warnings: make([]string, 0),
	}
}

// prepare cleans and aggregates the provided raw batch.
func (p *Pipeline) prepare(j *job, instrument string, records []shared.RawRecord, timeframe shared.Timeframe) []shared.Entry {
	if len(records) == 0 {
		return []shared.Entry{}
	}

	cleaned, stats, err := series.CleanWithStats(records)
	if err != nil {
		j.warn("cleaning %s: %v", instrument, err)
		return []shared.Entry{}
	}

	p.cfg.Metrics.ObservedDays.Add(float64(stats.Observed))
	p.cfg.Metrics.FilledDays.Add(float64(stats.Filled))
	j.logger.Debug().Msgf("cleaned %s into %s days, %s forward-filled", instrument,
		humanize.Comma(int64(stats.Days)), humanize.Comma(int64(stats.Filled)))

	entries, err := series.Aggregate(cleaned, timeframe)
	if err != nil {
		j.warn("aggregating %s: %v", instrument, err)
		return []shared.Entry{}
	}

	p.cfg.Metrics.Buckets.WithLabelValues(timeframe.String()).Add(float64(len(entries)))

	return entries
}

// configure looks up and guards the parameter set of the request.
func (p *Pipeline) configure(j *job, table params.Table, req *Request) (params.Set, error) {
	set, err := table.Lookup(req.Name, req.Timeframe)
	if err != nil {
		return nil, err
	}

	err = p.cfg.Guard.Check(set)
	if err != nil {
		j.logger.Debug().Msgf("rejected parameters (%s guard):\n%s", p.cfg.Guard.String(), spew.Sdump(set))
		return nil, err
	}

	return set, nil
}

// execute runs a request through the pipeline. Both instruments are
// computed concurrently, configuration misses are reported as warnings and
// leave the series empty.
func execute[T any](p *Pipeline, j *job, req *Request, table params.Table, kindErr error,
	compute func([]shared.Entry, params.Set) ([]T, error)) ([]T, []T, []string) {
	batches := [2][]shared.RawRecord{req.One, req.Two}
	instruments := [2]string{"instrument one", "instrument two"}
	results := [2][]T{make([]T, 0), make([]T, 0)}

	var entries [2][]shared.Entry
	for idx := range batches {
		entries[idx] = p.prepare(j, instruments[idx], batches[idx], req.Timeframe)
	}

	skip := func(format string, args ...any) {
		j.warn(format, args...)
		p.cfg.Metrics.Computations.WithLabelValues(j.family, j.label, metrics.StatusSkipped).Inc()
	}

	if kindErr != nil {
		skip("%s %q skipped: %v", j.family, req.Name, kindErr)
		return results[0], results[1], j.warnings
	}

	set, err := p.configure(j, table, req)
	if err != nil {
		skip("%s %q skipped: %v", j.family, req.Name, err)
		return results[0], results[1], j.warnings
	}

	var wg sync.WaitGroup
	var errs [2]error
	for idx := range entries {
		if len(entries[idx]) == 0 {
			continue
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			start := time.Now()
			out, err := compute(entries[idx], set.Clone())
			p.cfg.Metrics.ComputeDuration.WithLabelValues(j.family).Observe(time.Since(start).Seconds())
			if err != nil {
				errs[idx] = err
				return
			}

			results[idx] = out
		}(idx)
	}
	wg.Wait()

	for idx := range errs {
		if len(entries[idx]) == 0 {
			continue
		}
		if errs[idx] != nil {
			skip("%s %q on %s skipped: %v", j.family, req.Name, instruments[idx], errs[idx])
			continue
		}

		p.cfg.Metrics.Computations.WithLabelValues(j.family, j.label, metrics.StatusOK).Inc()
	}

	return results[0], results[1], j.warnings
}

// RunIndicator computes the named indicator for the instruments of the
// provided request.
func (p *Pipeline) RunIndicator(req *Request) *IndicatorResult {
	kind, kindErr := indicator.ParseKind(req.Name)
	label := kind.String()
	if kindErr != nil {
		label = "unknown"
	}
	j := p.newJob(familyIndicator, label, req)

	one, two, warnings := execute(p, j, req, p.cfg.Indicators, kindErr,
		func(entries []shared.Entry, set params.Set) ([]shared.IndicatorPoint, error) {
			return indicator.Calculate(kind, entries, set)
		})

	return &IndicatorResult{SeriesOne: one, SeriesTwo: two, Warnings: warnings}
}

// RunStrategy computes the named strategy for the instruments of the
// provided request.
func (p *Pipeline) RunStrategy(req *Request) *StrategyResult {
	kind, kindErr := strategy.ParseKind(req.Name)
	label := kind.String()
	if kindErr != nil {
		label = "unknown"
	}
	j := p.newJob(familyStrategy, label, req)

	one, two, warnings := execute(p, j, req, p.cfg.Strategies, kindErr,
		func(entries []shared.Entry, set params.Set) ([]shared.StrategyPoint, error) {
			return strategy.Calculate(kind, entries, set)
		})

	return &StrategyResult{SeriesOne: one, SeriesTwo: two, Warnings: warnings}
}
