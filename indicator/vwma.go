package indicator

import (
	"errors"
)

// VolumeWindow represents a fixed size rolling window of price and volume
// observations. Once full, every update overwrites the oldest observation.
type VolumeWindow struct {
	prices  []float64
	volumes []float64
	start   int
	count   int
	size    int
}

// NewVolumeWindow initializes a new volume window.
func NewVolumeWindow(size int) (*VolumeWindow, error) {
	if size < 0 {
		return nil, errors.New("window size cannot be negative")
	}
	if size == 0 {
		return nil, errors.New("window size cannot be zero")
	}

	window := &VolumeWindow{
		prices:  make([]float64, size),
		volumes: make([]float64, size),
		size:    size,
	}

	return window, nil
}

// Update adds the provided observation to the window.
func (w *VolumeWindow) Update(price float64, volume float64) {
	end := (w.start + w.count) % w.size
	w.prices[end] = price
	w.volumes[end] = volume

	if w.count == w.size {
		// Overwrite the oldest entry when the window is at capacity.
		w.start = (w.start + 1) % w.size
	} else {
		w.count++
	}
}

// Full returns whether the window holds size observations.
func (w *VolumeWindow) Full() bool {
	return w.count == w.size
}

// Averages returns the simple and the volume weighted average price of the
// window, oldest observation first. The weighted average falls back to the
// simple average when the window traded no volume.
func (w *VolumeWindow) Averages() (float64, float64) {
	if w.count == 0 {
		return 0, 0
	}

	var priceSum, priceVolume, volume float64
	for i := range w.count {
		idx := (w.start + i) % w.size
		priceSum += w.prices[idx]
		priceVolume += w.prices[idx] * w.volumes[idx]
		volume += w.volumes[idx]
	}

	sma := priceSum / float64(w.count)
	if volume == 0 {
		return sma, sma
	}

	return sma, priceVolume / volume
}

// VolumeWeightedMovingAverage returns the simple and volume weighted moving
// averages of close over period, both starting at index period-1.
func VolumeWeightedMovingAverage(close []float64, volume []float64, period int) ([]float64, []float64) {
	if period < 1 || len(close) < period || len(volume) != len(close) {
		return nil, nil
	}

	window, err := NewVolumeWindow(period)
	if err != nil {
		return nil, nil
	}

	sma := make([]float64, 0, len(close)-period+1)
	vwma := make([]float64, 0, len(close)-period+1)
	for idx := range close {
		window.Update(close[idx], volume[idx])
		if !window.Full() {
			continue
		}

		simple, weighted := window.Averages()
		sma = append(sma, simple)
		vwma = append(vwma, weighted)
	}

	return sma, vwma
}
