package indicator

import (
	"math"
)

// RelativeStrengthIndex returns Wilder's RSI of values. The change of the
// first value is taken as zero, so the first RSI lands at index period-1.
// A window without losses reads 100, or 50 when it has no gains either.
func RelativeStrengthIndex(values []float64, period int) []float64 {
	if period < 1 || len(values) < period {
		return nil
	}

	gains := make([]float64, len(values))
	losses := make([]float64, len(values))
	for idx := 1; idx < len(values); idx++ {
		change := values[idx] - values[idx-1]
		if change > 0 {
			gains[idx] = change
		} else {
			losses[idx] = -change
		}
	}

	rsi := func(avgGain float64, avgLoss float64) float64 {
		switch {
		case avgLoss == 0 && avgGain == 0:
			return 50
		case avgLoss == 0:
			return 100
		default:
			return 100 - 100/(1+avgGain/avgLoss)
		}
	}

	out := make([]float64, 0, len(values)-period+1)
	avgGain := mean(gains[:period])
	avgLoss := mean(losses[:period])
	out = append(out, rsi(avgGain, avgLoss))

	n := float64(period)
	for idx := period; idx < len(values); idx++ {
		avgGain = (avgGain*(n-1) + gains[idx]) / n
		avgLoss = (avgLoss*(n-1) + losses[idx]) / n
		out = append(out, rsi(avgGain, avgLoss))
	}

	return out
}

// TripleExponentialAverage returns TRIX, the one bar percent change of a
// triple smoothed EMA of values. The first value is zero and lands at index
// period-1.
func TripleExponentialAverage(values []float64, period int) []float64 {
	first := talibEMA(values, period)
	if first == nil {
		return nil
	}

	third := runningEMA(runningEMA(first, period), period)
	out := make([]float64, len(third))
	for idx := 1; idx < len(third); idx++ {
		if third[idx-1] == 0 {
			continue
		}
		out[idx] = (third[idx] - third[idx-1]) / third[idx-1] * 100
	}

	return out
}

// CommodityChannelIndex returns the CCI of the provided series, first value
// at index period.
func CommodityChannelIndex(high []float64, low []float64, close []float64, period int) []float64 {
	return talibCCI(high, low, close, period)
}

// WilliamsR returns Williams %R of the provided series, first value at index
// period.
func WilliamsR(high []float64, low []float64, close []float64, period int) []float64 {
	return talibWillR(high, low, close, period)
}

// Stochastic returns the %K and %D lines of the stochastic oscillator. %K
// lands at index kPeriod-1 and %D, the SMA of %K, at kPeriod+dPeriod-2. A
// window with no range reads 0.
func Stochastic(high []float64, low []float64, close []float64, kPeriod int, dPeriod int) ([]float64, []float64) {
	if kPeriod < 1 || len(close) < kPeriod || len(high) != len(close) || len(low) != len(close) {
		return nil, nil
	}

	k := make([]float64, 0, len(close)-kPeriod+1)
	for idx := kPeriod - 1; idx < len(close); idx++ {
		highest := math.Inf(-1)
		lowest := math.Inf(1)
		for window := idx - kPeriod + 1; window <= idx; window++ {
			highest = math.Max(highest, high[window])
			lowest = math.Min(lowest, low[window])
		}

		if highest == lowest {
			k = append(k, 0)
			continue
		}

		k = append(k, 100*(close[idx]-lowest)/(highest-lowest))
	}

	return k, talibSMA(k, dPeriod)
}
