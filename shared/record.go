package shared

// RawRecord represents a unit instrument-day as scraped from the exchange. All
// fields are locale formatted strings, max and min may be empty.
type RawRecord struct {
	Date           string `json:"date"`
	Symbol         string `json:"symbol"`
	AvgPrice       string `json:"avg_price"`
	LastTradePrice string `json:"last_trade_price"`
	Max            string `json:"max"`
	Min            string `json:"min"`
	PctChg         string `json:"pctchg"`
	TotalTurnover  string `json:"total_turnover_in_denars"`
	TurnoverBest   string `json:"turnover_in_best_in_denars"`
	Volume         string `json:"volume"`
}

// Entry represents a parsed instrument-day, or an aggregated bucket of them.
type Entry struct {
	Date           string  `json:"date"`
	Symbol         string  `json:"symbol"`
	AvgPrice       float64 `json:"avg_price"`
	LastTradePrice float64 `json:"last_trade_price"`
	Max            float64 `json:"max"`
	Min            float64 `json:"min"`
	PctChg         float64 `json:"pctchg"`
	TotalTurnover  float64 `json:"total_turnover_in_denars"`
	TurnoverBest   float64 `json:"turnover_in_best_in_denars"`
	Volume         float64 `json:"volume"`
}

// WithDate returns a copy of the entry dated the provided day.
func (e Entry) WithDate(date string) Entry {
	e.Date = date
	return e
}
