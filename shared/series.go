package shared

// Series holds entry data split into the columns indicator math consumes.
// Close is the last trade price, High and Low are the entry max and min.
type Series struct {
	Dates  []string
	Close  []float64
	High   []float64
	Low    []float64
	Volume []float64
}

// NewSeries splits the provided entries into columns, preserving order.
func NewSeries(entries []Entry) *Series {
	s := &Series{
		Dates:  make([]string, len(entries)),
		Close:  make([]float64, len(entries)),
		High:   make([]float64, len(entries)),
		Low:    make([]float64, len(entries)),
		Volume: make([]float64, len(entries)),
	}

	for idx := range entries {
		entry := &entries[idx]
		s.Dates[idx] = entry.Date
		s.Close[idx] = entry.LastTradePrice
		s.High[idx] = entry.Max
		s.Low[idx] = entry.Min
		s.Volume[idx] = entry.Volume
	}

	return s
}

// Len returns the number of data points in the series.
func (s *Series) Len() int {
	return len(s.Dates)
}
