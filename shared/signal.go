package shared

import (
	"github.com/guregu/null/v6"
)

// Action represents a discrete trading signal.
type Action int

const (
	Sell Action = -1
	Hold Action = 0
	Buy  Action = 1
)

// String stringifies the provided action.
func (a Action) String() string {
	switch a {
	case Sell:
		return "SELL"
	case Hold:
		return "HOLD"
	case Buy:
		return "BUY"
	default:
		return "unknown"
	}
}

// IndicatorPoint represents an indicator reading for a date. Value is null
// during warm-up. Signal carries the secondary line of two-line indicators
// (stochastic %D) and is null for everything else.
type IndicatorPoint struct {
	Date   string     `json:"date"`
	Value  null.Float `json:"value"`
	Signal null.Float `json:"signal"`
}

// StrategyPoint represents a strategy action for a date.
type StrategyPoint struct {
	Date   string `json:"date"`
	Action Action `json:"action"`
}
