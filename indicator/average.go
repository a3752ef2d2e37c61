package indicator

// runningEMA smooths values exponentially with k = 2/(period+1), seeded with
// the first value. The output has the same length as values.
func runningEMA(values []float64, period int) []float64 {
	if len(values) == 0 {
		return nil
	}

	k := 2 / float64(period+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for idx := 1; idx < len(values); idx++ {
		out[idx] = out[idx-1] + k*(values[idx]-out[idx-1])
	}

	return out
}

// mean returns the arithmetic mean of values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, value := range values {
		sum += value
	}

	return sum / float64(len(values))
}

// SimpleMovingAverage returns the period window mean of values, first value
// at index period-1 of the input.
func SimpleMovingAverage(values []float64, period int) []float64 {
	return talibSMA(values, period)
}

// ExponentialMovingAverage returns the SMA seeded exponential moving average
// of values with k = 2/(period+1), first value at index period-1.
func ExponentialMovingAverage(values []float64, period int) []float64 {
	return talibEMA(values, period)
}

// RollingMovingAverage returns Wilder's moving average of values with
// alpha = 1/period, seeded with the mean of the first period values.
func RollingMovingAverage(values []float64, period int) []float64 {
	if period < 1 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	current := mean(values[:period])
	out = append(out, current)
	for idx := period; idx < len(values); idx++ {
		current += (values[idx] - current) / float64(period)
		out = append(out, current)
	}

	return out
}

// DoubleExponentialMovingAverage returns 2*EMA - EMA(EMA) of values. The
// inner average is seeded with the first outer value, so the first value
// lands at index period-1.
func DoubleExponentialMovingAverage(values []float64, period int) []float64 {
	outer := talibEMA(values, period)
	if outer == nil {
		return nil
	}

	inner := runningEMA(outer, period)
	out := make([]float64, len(outer))
	for idx := range outer {
		out[idx] = 2*outer[idx] - inner[idx]
	}

	return out
}

// TriangularMovingAverage returns the SMA of the SMA of values, the window
// lengths adding up to period+1 so the first value lands at index period-1.
func TriangularMovingAverage(values []float64, period int) []float64 {
	if period < 1 {
		return nil
	}

	first := (period + 2) / 2
	second := period + 1 - first

	return talibSMA(talibSMA(values, first), second)
}
