package strategy

import (
	"github.com/dnldd/tradesignal/shared"
)

const (
	// rsiOversold is the RSI level below which RSI2 buys.
	rsiOversold = 10
	// rsiOverbought is the RSI level above which RSI2 sells.
	rsiOverbought = 90
	// willrOversold is the Williams %R level at or below which WILLR buys.
	willrOversold = -80
	// willrOverbought is the Williams %R level at or above which WILLR sells.
	willrOverbought = -20
)

// rsiAction classifies an RSI reading.
func rsiAction(rsi float64) shared.Action {
	switch {
	case rsi < rsiOversold:
		return shared.Buy
	case rsi > rsiOverbought:
		return shared.Sell
	default:
		return shared.Hold
	}
}

// bandsAction classifies a close against its bollinger bands.
func bandsAction(close float64, upper float64, lower float64) shared.Action {
	switch {
	case close > upper:
		return shared.Sell
	case close < lower:
		return shared.Buy
	default:
		return shared.Hold
	}
}

// willrAction classifies a Williams %R reading.
func willrAction(willr float64) shared.Action {
	switch {
	case willr <= willrOversold:
		return shared.Buy
	case willr >= willrOverbought:
		return shared.Sell
	default:
		return shared.Hold
	}
}

// vwmaAction compares the volume weighted and simple moving averages.
func vwmaAction(vwma float64, sma float64) shared.Action {
	switch {
	case vwma > sma:
		return shared.Buy
	case vwma < sma:
		return shared.Sell
	default:
		return shared.Hold
	}
}

// sarAction classifies the trend from the parabolic SAR and close. A SAR below
// price is a rising trend.
func sarAction(sar float64, close float64) shared.Action {
	switch {
	case sar < close:
		return shared.Buy
	case sar > close:
		return shared.Sell
	default:
		return shared.Hold
	}
}

// decide fills an action per position of an axis of the provided size. The
// positions before offset hold, position i applies rule to raw index
// i-offset while it is below count.
func decide(size int, offset int, count int, rule func(rawIdx int, idx int) shared.Action) []shared.Action {
	actions := make([]shared.Action, size)
	for idx := range actions {
		actions[idx] = shared.Hold
	}

	for idx := max(offset, 0); idx < size; idx++ {
		rawIdx := idx - offset
		if rawIdx < 0 {
			continue
		}
		if rawIdx >= count {
			break
		}

		actions[idx] = rule(rawIdx, idx)
	}

	return actions
}
