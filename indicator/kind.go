package indicator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownIndicator is returned when an indicator name is not recognised.
var ErrUnknownIndicator = errors.New("unknown indicator")

// Kind represents a supported indicator.
type Kind int

const (
	SMA Kind = iota
	EMA
	RMA
	DEMA
	TRIMA
	RSI
	TRIX
	CCI
	WILLR
	STOCH
)

// String stringifies the provided indicator kind.
func (k Kind) String() string {
	switch k {
	case SMA:
		return "SMA"
	case EMA:
		return "EMA"
	case RMA:
		return "RMA"
	case DEMA:
		return "DEMA"
	case TRIMA:
		return "TRIMA"
	case RSI:
		return "RSI"
	case TRIX:
		return "TRIX"
	case CCI:
		return "CCI"
	case WILLR:
		return "WILLR"
	case STOCH:
		return "STOCH"
	default:
		return "unknown"
	}
}

// Kinds returns all supported indicator kinds.
func Kinds() []Kind {
	return []Kind{SMA, EMA, RMA, DEMA, TRIMA, RSI, TRIX, CCI, WILLR, STOCH}
}

// ParseKind parses an indicator kind from its name, case insensitively.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, kind := range Kinds() {
		if kind.String() == normalized {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
}
