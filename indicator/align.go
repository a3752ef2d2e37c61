package indicator

import (
	"math"

	"github.com/guregu/null/v6"
)

// Align expands raw indicator output to a date axis of the provided size.
// Positions before offset are null, position i maps to raw[i-offset] and
// positions past the end of raw are null. NaN values are reported as null.
func Align(raw []float64, offset int, size int) []null.Float {
	aligned := make([]null.Float, size)
	if offset < 0 {
		offset = 0
	}

	for idx := offset; idx < size; idx++ {
		rawIdx := idx - offset
		if rawIdx >= len(raw) {
			break
		}

		value := raw[rawIdx]
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}

		aligned[idx] = null.FloatFrom(value)
	}

	return aligned
}
