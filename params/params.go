package params

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/dnldd/tradesignal/shared"
)

var (
	// ErrNoParameters is returned when a table has no parameter set for a
	// name and timeframe.
	ErrNoParameters = errors.New("no parameters configured")
	// ErrInvalidParameters is returned when a parameter set fails its guard.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrMissingParameter is returned when a required key is absent from a
	// parameter set.
	ErrMissingParameter = errors.New("missing parameter")
)

// Set represents the named numeric parameters of an indicator or strategy.
// Sets handed out by a table are clones, mutating them does not affect the
// table.
type Set map[string]float64

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}

	return maps.Clone(s)
}

// Float returns the value of the provided key.
func (s Set) Float(key string) (float64, error) {
	value, ok := s[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}

	return value, nil
}

// maxInt bounds integer parameters so index arithmetic cannot overflow.
const maxInt = math.MaxInt32

// Int returns the value of the provided key truncated to an integer. Non
// finite values and values beyond the int32 range are rejected.
func (s Set) Int(key string) (int, error) {
	value, err := s.Float(key)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, key)
	}
	if value > maxInt || value < -maxInt {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidParameters, key)
	}

	return int(value), nil
}

// Key identifies a parameter set in a table.
type Key struct {
	Name      string
	Timeframe shared.Timeframe
}

// NewKey creates a table key, names are case insensitive.
func NewKey(name string, timeframe shared.Timeframe) Key {
	return Key{
		Name:      strings.ToUpper(strings.TrimSpace(name)),
		Timeframe: timeframe,
	}
}

// Table maps an indicator or strategy name and a timeframe to a parameter set.
// Tables are built once at startup and are read only afterwards.
type Table map[Key]Set

// Lookup returns a clone of the parameter set configured for the provided
// name and timeframe.
func (t Table) Lookup(name string, timeframe shared.Timeframe) (Set, error) {
	set, ok := t[NewKey(name, timeframe)]
	if !ok || set == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoParameters, strings.ToUpper(name), timeframe.String())
	}

	return set.Clone(), nil
}

// Add sets the parameters of the provided name and timeframe.
func (t Table) Add(name string, timeframe shared.Timeframe, set Set) {
	t[NewKey(name, timeframe)] = set.Clone()
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for key, set := range t {
		clone[key] = set.Clone()
	}

	return clone
}

// Merge returns a new table holding the receiver's entries overridden by the
// entries of the provided overlay. Overlay sets replace sets whole, keys are
// not merged.
func (t Table) Merge(overlay Table) Table {
	merged := t.Clone()
	for key, set := range overlay {
		merged[key] = set.Clone()
	}

	return merged
}

// perTimeframe builds the day, week and month entries of a name.
func perTimeframe(table Table, name string, day Set, week Set, month Set) {
	table.Add(name, shared.Day, day)
	table.Add(name, shared.Week, week)
	table.Add(name, shared.Month, month)
}

// DefaultIndicatorTable returns the default indicator parameter table.
func DefaultIndicatorTable() Table {
	table := make(Table)

	perTimeframe(table, "SMA", Set{"period": 10}, Set{"period": 50}, Set{"period": 20})
	perTimeframe(table, "EMA", Set{"period": 12}, Set{"period": 60}, Set{"period": 24})
	perTimeframe(table, "RMA", Set{"period": 10}, Set{"period": 50}, Set{"period": 20})
	perTimeframe(table, "DEMA", Set{"period": 10}, Set{"period": 50}, Set{"period": 20})
	perTimeframe(table, "TRIMA", Set{"period": 10}, Set{"period": 50}, Set{"period": 20})
	perTimeframe(table, "RSI", Set{"period": 14}, Set{"period": 70}, Set{"period": 28})
	perTimeframe(table, "TRIX", Set{"period": 1}, Set{"period": 1}, Set{"period": 1})
	perTimeframe(table, "STOCH",
		Set{"kPeriod": 14, "dPeriod": 3},
		Set{"kPeriod": 70, "dPeriod": 3},
		Set{"kPeriod": 28, "dPeriod": 3})
	perTimeframe(table, "CCI", Set{"period": 14}, Set{"period": 70}, Set{"period": 28})
	perTimeframe(table, "WILLR", Set{"period": 14}, Set{"period": 70}, Set{"period": 28})

	return table
}

// DefaultStrategyTable returns the default strategy parameter table.
func DefaultStrategyTable() Table {
	table := make(Table)

	perTimeframe(table, "RSI2", Set{"period": 14}, Set{"period": 70}, Set{"period": 28})
	perTimeframe(table, "WILLR", Set{"period": 14}, Set{"period": 70}, Set{"period": 28})
	perTimeframe(table, "PSAR",
		Set{"step": 0.02, "max": 0.2},
		Set{"step": 0.02, "max": 0.2},
		Set{"step": 0.02, "max": 0.2})
	perTimeframe(table, "BBANDS",
		Set{"period": 20, "stdDev": 2},
		Set{"period": 50, "stdDev": 2},
		Set{"period": 20, "stdDev": 2})
	perTimeframe(table, "VWMA", Set{"period": 20}, Set{"period": 50}, Set{"period": 20})

	return table
}
