package strategy

import (
	"fmt"

	"github.com/dnldd/tradesignal/indicator"
	"github.com/dnldd/tradesignal/params"
	"github.com/dnldd/tradesignal/shared"
	talib "github.com/markcheno/go-talib"
)

// RSI2Actions buys oversold and sells overbought RSI readings. Positions
// before period-1 hold.
func RSI2Actions(close []float64, period int) []shared.Action {
	rsi := indicator.RelativeStrengthIndex(close, period)
	return decide(len(close), period-1, len(rsi), func(rawIdx int, _ int) shared.Action {
		return rsiAction(rsi[rawIdx])
	})
}

// BollingerActions sells closes above the upper band and buys closes below the
// lower band, the bands sitting stdDev deviations around the period SMA.
// Positions before period-1 hold.
func BollingerActions(close []float64, period int, stdDev float64) []shared.Action {
	if period < 1 || len(close) < period {
		return decide(len(close), 0, 0, nil)
	}

	if period == 1 {
		// A single observation window has no deviation, the bands sit on the close.
		return decide(len(close), 0, len(close), func(_ int, idx int) shared.Action {
			return bandsAction(close[idx], close[idx], close[idx])
		})
	}

	upper, _, lower := talib.BBands(close, period, stdDev, stdDev, talib.SMA)
	return decide(len(close), period-1, len(close)-period+1, func(_ int, idx int) shared.Action {
		return bandsAction(close[idx], upper[idx], lower[idx])
	})
}

// WilliamsActions buys Williams %R readings at or below -80 and sells those
// at or above -20. Positions before period hold.
func WilliamsActions(high []float64, low []float64, close []float64, period int) []shared.Action {
	willr := indicator.WilliamsR(high, low, close, period)
	return decide(len(close), period, len(willr), func(rawIdx int, _ int) shared.Action {
		return willrAction(willr[rawIdx])
	})
}

// VWMAActions buys when the volume weighted moving average is above the simple
// moving average of the same period and sells when it is below. Positions
// before period-1 hold.
func VWMAActions(close []float64, volume []float64, period int) []shared.Action {
	sma, vwma := indicator.VolumeWeightedMovingAverage(close, volume, period)
	return decide(len(close), period-1, len(vwma), func(rawIdx int, _ int) shared.Action {
		return vwmaAction(vwma[rawIdx], sma[rawIdx])
	})
}

// PSARActions buys while the parabolic SAR trails below the close and sells
// while it sits above. The first position holds.
func PSARActions(high []float64, low []float64, close []float64, step float64, maximum float64) []shared.Action {
	if len(close) < 2 || len(high) != len(close) || len(low) != len(close) {
		return decide(len(close), 0, 0, nil)
	}

	sar := talib.Sar(high, low, step, maximum)
	return decide(len(close), 1, len(close)-1, func(_ int, idx int) shared.Action {
		return sarAction(sar[idx], close[idx])
	})
}

// Calculate runs the provided strategy over entries using the parameters of
// set. The result has one action per entry.
func Calculate(kind Kind, entries []shared.Entry, set params.Set) ([]shared.StrategyPoint, error) {
	series := shared.NewSeries(entries)

	var actions []shared.Action
	switch kind {
	case RSI2, WILLR, VWMA:
		period, err := set.Int("period")
		if err != nil {
			return nil, err
		}

		switch kind {
		case RSI2:
			actions = RSI2Actions(series.Close, period)
		case WILLR:
			actions = WilliamsActions(series.High, series.Low, series.Close, period)
		default:
			actions = VWMAActions(series.Close, series.Volume, period)
		}

	case BBANDS:
		period, err := set.Int("period")
		if err != nil {
			return nil, err
		}
		stdDev, err := set.Float("stdDev")
		if err != nil {
			return nil, err
		}

		actions = BollingerActions(series.Close, period, stdDev)

	case PSAR:
		step, err := set.Float("step")
		if err != nil {
			return nil, err
		}
		maximum, err := set.Float("max")
		if err != nil {
			return nil, err
		}

		actions = PSARActions(series.High, series.Low, series.Close, step, maximum)

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(kind))
	}

	points := make([]shared.StrategyPoint, series.Len())
	for idx := range points {
		points[idx] = shared.StrategyPoint{
			Date:   series.Dates[idx],
			Action: actions[idx],
		}
	}

	return points, nil
}
