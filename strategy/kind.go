package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned when a strategy name is not recognised.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Kind represents a supported strategy.
type Kind int

const (
	RSI2 Kind = iota
	BBANDS
	WILLR
	VWMA
	PSAR
)

// String stringifies the provided strategy kind.
func (k Kind) String() string {
	switch k {
	case RSI2:
		return "RSI2"
	case BBANDS:
		return "BBANDS"
	case WILLR:
		return "WILLR"
	case VWMA:
		return "VWMA"
	case PSAR:
		return "PSAR"
	default:
		return "unknown"
	}
}

// Kinds returns all supported strategy kinds.
func Kinds() []Kind {
	return []Kind{RSI2, BBANDS, WILLR, VWMA, PSAR}
}

// ParseKind parses a strategy kind from its name, case insensitively.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, kind := range Kinds() {
		if kind.String() == normalized {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
