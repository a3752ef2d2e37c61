package params

import (
	"errors"
	"testing"

	"github.com/dnldd/tradesignal/shared"
	"github.com/peterldowns/testy/assert"
)

func TestLoadTable(t *testing.T) {
	// Ensure an empty path loads the defaults.
	tables, err := LoadTable("")
	assert.NoError(t, err)
	assert.Equal(t, len(tables.Indicators), len(DefaultIndicatorTable()))
	assert.Equal(t, len(tables.Strategies), len(DefaultStrategyTable()))

	// Ensure a missing file errors.
	_, err = LoadTable("testdata/missing.yaml")
	assert.Error(t, err)

	// Ensure overlays are merged over the defaults.
	tables, err = LoadTable("testdata/overlay.yaml")
	assert.NoError(t, err)

	set, err := tables.Indicators.Lookup("SMA", shared.Day)
	assert.NoError(t, err)
	assert.Equal(t, set["period"], float64(5))

	set, err = tables.Indicators.Lookup("SMA", shared.Week)
	assert.NoError(t, err)
	assert.Equal(t, set["period"], float64(50))

	set, err = tables.Indicators.Lookup("STOCH", shared.Week)
	assert.NoError(t, err)
	assert.Equal(t, set["kPeriod"], float64(21))
	assert.Equal(t, set["dPeriod"], float64(5))

	set, err = tables.Strategies.Lookup("PSAR", shared.Day)
	assert.NoError(t, err)
	assert.Equal(t, set["step"], float64(1))
	assert.NoError(t, LegacyGuard.Check(set))

	set, err = tables.Strategies.Lookup("PSAR", shared.Month)
	assert.NoError(t, err)
	assert.Equal(t, set["step"], 0.02)
}

func TestParseTables(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		errIs   error
	}{
		{"empty document", "", false, nil},
		{"valid", "indicators:\n  RSI:\n    day: {period: 7}\n", false, nil},
		{"unknown timeframe", "indicators:\n  RSI:\n    hour: {period: 7}\n", true, nil},
		{"empty set", "strategies:\n  VWMA:\n    day: {}\n", true, ErrNoParameters},
		{"malformed", "indicators: [", true, nil},
	}

	for _, test := range tests {
		_, err := ParseTables([]byte(test.data))
		if !test.wantErr {
			assert.NoError(t, err)
			continue
		}

		assert.Error(t, err)
		if test.errIs != nil {
			assert.True(t, errors.Is(err, test.errIs))
		}
	}
}
