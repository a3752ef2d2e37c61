package strategy

import (
	"math"
	"testing"

	"github.com/dnldd/tradesignal/shared"
	"github.com/peterldowns/testy/assert"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		got  shared.Action
		want shared.Action
	}{
		{"rsi oversold", rsiAction(8), shared.Buy},
		{"rsi overbought", rsiAction(95), shared.Sell},
		{"rsi neutral", rsiAction(50), shared.Hold},
		{"rsi at the lower threshold", rsiAction(10), shared.Hold},
		{"rsi at the upper threshold", rsiAction(90), shared.Hold},
		{"close above the upper band", bandsAction(12, 11, 9), shared.Sell},
		{"close below the lower band", bandsAction(8, 11, 9), shared.Buy},
		{"close inside the bands", bandsAction(10, 11, 9), shared.Hold},
		{"close on the upper band", bandsAction(11, 11, 9), shared.Hold},
		{"willr at the oversold threshold", willrAction(-80), shared.Buy},
		{"willr deeply oversold", willrAction(-95), shared.Buy},
		{"willr at the overbought threshold", willrAction(-20), shared.Sell},
		{"willr neutral", willrAction(-50), shared.Hold},
		{"vwma above sma", vwmaAction(3.75, 3.5), shared.Buy},
		{"vwma below sma", vwmaAction(4, 4.5), shared.Sell},
		{"vwma equal to sma", vwmaAction(2.5, 2.5), shared.Hold},
		{"sar below close", sarAction(9, 10), shared.Buy},
		{"sar above close", sarAction(11, 10), shared.Sell},
		{"sar at close", sarAction(10, 10), shared.Hold},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: expected %s, got %s", test.name, test.want, test.got)
		}
	}
}

func TestDecide(t *testing.T) {
	rule := func(rawIdx int, _ int) shared.Action {
		if rawIdx%2 == 0 {
			return shared.Buy
		}
		return shared.Sell
	}

	// Ensure warm up positions hold and raw values map from the offset.
	actions := decide(5, 2, 3, rule)
	assert.Equal(t, len(actions), 5)
	assert.Equal(t, actions[0], shared.Hold)
	assert.Equal(t, actions[1], shared.Hold)
	assert.Equal(t, actions[2], shared.Buy)
	assert.Equal(t, actions[3], shared.Sell)
	assert.Equal(t, actions[4], shared.Buy)

	// Ensure positions past the raw values hold.
	actions = decide(4, 1, 1, rule)
	assert.Equal(t, actions[1], shared.Buy)
	assert.Equal(t, actions[2], shared.Hold)
	assert.Equal(t, actions[3], shared.Hold)

	// Ensure offsets that overflow the raw index hold everywhere.
	actions = decide(3, math.MinInt, 2, rule)
	for idx := range actions {
		assert.Equal(t, actions[idx], shared.Hold)
	}

	// Ensure no raw values hold everywhere without invoking the rule.
	actions = decide(3, 0, 0, nil)
	for idx := range actions {
		assert.Equal(t, actions[idx], shared.Hold)
	}
}
