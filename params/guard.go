package params

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Guard represents a parameter set validation policy.
type Guard int

const (
	// LegacyGuard rejects a set when any of its values is below 1. This
	// rejects fractional parameters such as PSAR's step and max.
	LegacyGuard Guard = iota
	// PeriodGuard only requires period keys to be at least 1.
	PeriodGuard
)

// periodKeys are the integral window keys checked by PeriodGuard.
var periodKeys = []string{"period", "kPeriod", "dPeriod"}

// String stringifies the provided guard.
func (g Guard) String() string {
	switch g {
	case LegacyGuard:
		return "legacy"
	case PeriodGuard:
		return "period"
	default:
		return "unknown"
	}
}

// ParseGuard parses a guard from its name.
func ParseGuard(name string) (Guard, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "legacy":
		return LegacyGuard, nil
	case "period":
		return PeriodGuard, nil
	default:
		return LegacyGuard, fmt.Errorf("unknown parameter guard provided: %s", name)
	}
}

// Check asserts the provided set passes the guard.
func (g Guard) Check(set Set) error {
	keys := slices.Sorted(maps.Keys(set))
	for _, key := range keys {
		value := set[key]
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, key)
		}
	}

	switch g {
	case LegacyGuard:
		for _, key := range keys {
			if set[key] < 1 {
				return fmt.Errorf("%w: %s is %v, expected at least 1",
					ErrInvalidParameters, key, set[key])
			}
		}

	case PeriodGuard:
		for _, key := range periodKeys {
			value, ok := set[key]
			if !ok {
				continue
			}
			if value < 1 || value != math.Trunc(value) {
				return fmt.Errorf("%w: %s is %v, expected a whole number of at least 1",
					ErrInvalidParameters, key, value)
			}
		}

	default:
		return fmt.Errorf("%w: unknown guard %d", ErrInvalidParameters, int(g))
	}

	return nil
}
