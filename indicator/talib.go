package indicator

import (
	talib "github.com/markcheno/go-talib"
)

// The talib functions return full length output with zeroed warm up values
// and index out of range on inputs shorter than their lookback. The wrappers
// below guard the input length and trim the warm up so every result has the
// raw length used throughout this package.

// talibSMA returns the simple moving average of values, len(values)-period+1
// long. Nil is returned when there are fewer values than the period.
func talibSMA(values []float64, period int) []float64 {
	if period < 1 || len(values) < period {
		return nil
	}

	if period == 1 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	return talib.Sma(values, period)[period-1:]
}

// talibEMA returns the SMA seeded exponential moving average of values,
// len(values)-period+1 long.
func talibEMA(values []float64, period int) []float64 {
	if period < 1 || len(values) < period {
		return nil
	}

	if period == 1 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	return talib.Ema(values, period)[period-1:]
}

// talibCCI returns the commodity channel index, first value at index period
// of the input.
func talibCCI(high []float64, low []float64, close []float64, period int) []float64 {
	if period < 2 || len(close) <= period || len(high) != len(close) || len(low) != len(close) {
		return nil
	}

	return talib.Cci(high, low, close, period)[period:]
}

// talibWillR returns the Williams %R, first value at index period of the
// input.
func talibWillR(high []float64, low []float64, close []float64, period int) []float64 {
	if period < 1 || len(close) <= period || len(high) != len(close) || len(low) != len(close) {
		return nil
	}

	return talib.WillR(high, low, close, period)[period:]
}
