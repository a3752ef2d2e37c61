package indicator

import (
	"fmt"

	"github.com/dnldd/tradesignal/params"
	"github.com/dnldd/tradesignal/shared"
	"github.com/guregu/null/v6"
)

// points zips the provided lines with the series dates.
func points(dates []string, values []null.Float, signals []null.Float) []shared.IndicatorPoint {
	out := make([]shared.IndicatorPoint, len(dates))
	for idx := range dates {
		out[idx] = shared.IndicatorPoint{
			Date:  dates[idx],
			Value: values[idx],
		}
		if signals != nil {
			out[idx].Signal = signals[idx]
		}
	}

	return out
}

// Calculate computes the provided indicator over entries using the
// parameters of set. The result has one point per entry, null during warm up.
func Calculate(kind Kind, entries []shared.Entry, set params.Set) ([]shared.IndicatorPoint, error) {
	series := shared.NewSeries(entries)
	size := series.Len()

	single := func(fn func([]float64, int) []float64) ([]shared.IndicatorPoint, error) {
		period, err := set.Int("period")
		if err != nil {
			return nil, err
		}

		raw := fn(series.Close, period)
		return points(series.Dates, Align(raw, period-1, size), nil), nil
	}

	ranged := func(fn func([]float64, []float64, []float64, int) []float64) ([]shared.IndicatorPoint, error) {
		period, err := set.Int("period")
		if err != nil {
			return nil, err
		}

		raw := fn(series.High, series.Low, series.Close, period)
		return points(series.Dates, Align(raw, period, size), nil), nil
	}

	switch kind {
	case SMA:
		return single(SimpleMovingAverage)
	case EMA:
		return single(ExponentialMovingAverage)
	case RMA:
		return single(RollingMovingAverage)
	case DEMA:
		return single(DoubleExponentialMovingAverage)
	case TRIMA:
		return single(TriangularMovingAverage)
	case RSI:
		return single(RelativeStrengthIndex)
	case TRIX:
		return single(TripleExponentialAverage)
	case CCI:
		return ranged(CommodityChannelIndex)
	case WILLR:
		return ranged(WilliamsR)

	case STOCH:
		kPeriod, err := set.Int("kPeriod")
		if err != nil {
			return nil, err
		}
		dPeriod, err := set.Int("dPeriod")
		if err != nil {
			return nil, err
		}

		k, d := Stochastic(series.High, series.Low, series.Close, kPeriod, dPeriod)
		return points(series.Dates,
			Align(k, kPeriod-1, size),
			Align(d, kPeriod+dPeriod-2, size)), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownIndicator, int(kind))
	}
}
