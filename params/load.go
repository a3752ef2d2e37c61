package params

import (
	"fmt"
	"os"

	"github.com/dnldd/tradesignal/shared"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk layout of a parameter table overlay:
//
//	indicators:
//	  SMA:
//	    day: {period: 10}
//	strategies:
//	  PSAR:
//	    day: {step: 0.02, max: 0.2}
type tableFile struct {
	Indicators map[string]map[string]Set `yaml:"indicators"`
	Strategies map[string]map[string]Set `yaml:"strategies"`
}

// Tables groups the indicator and strategy parameter tables.
type Tables struct {
	Indicators Table
	Strategies Table
}

// DefaultTables returns the default indicator and strategy tables.
func DefaultTables() *Tables {
	return &Tables{
		Indicators: DefaultIndicatorTable(),
		Strategies: DefaultStrategyTable(),
	}
}

// buildTable converts a decoded name to timeframe mapping to a table.
func buildTable(entries map[string]map[string]Set) (Table, error) {
	table := make(Table)
	for name, timeframes := range entries {
		for tf, set := range timeframes {
			timeframe, err := shared.ParseTimeframe(tf)
			if err != nil {
				return nil, fmt.Errorf("parsing timeframe of %s: %w", name, err)
			}
			if len(set) == 0 {
				return nil, fmt.Errorf("%w: %s/%s has no values", ErrNoParameters, name, tf)
			}

			table.Add(name, timeframe, set)
		}
	}

	return table, nil
}

// ParseTables decodes a YAML parameter overlay.
func ParseTables(data []byte) (*Tables, error) {
	var file tableFile
	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling parameter tables: %w", err)
	}

	indicators, err := buildTable(file.Indicators)
	if err != nil {
		return nil, fmt.Errorf("building indicator table: %w", err)
	}

	strategies, err := buildTable(file.Strategies)
	if err != nil {
		return nil, fmt.Errorf("building strategy table: %w", err)
	}

	return &Tables{Indicators: indicators, Strategies: strategies}, nil
}

// LoadTable reads the YAML overlay at the provided path and merges it over the
// default tables. An empty path returns the defaults.
func LoadTable(path string) (*Tables, error) {
	defaults := DefaultTables()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter tables: %w", err)
	}

	overlay, err := ParseTables(data)
	if err != nil {
		return nil, err
	}

	return &Tables{
		Indicators: defaults.Indicators.Merge(overlay.Indicators),
		Strategies: defaults.Strategies.Merge(overlay.Strategies),
	}, nil
}
