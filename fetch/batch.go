package fetch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dnldd/tradesignal/shared"
	"github.com/tidwall/gjson"
)

// ErrSameInstrument is returned when both instruments of a batch share a symbol.
var ErrSameInstrument = errors.New("second instrument matches the first")

// Batch represents the raw records of one or two instruments.
type Batch struct {
	// One is the raw batch of the first instrument.
	One []shared.RawRecord
	// Two is the raw batch of the optional second instrument.
	Two []shared.RawRecord
}

// parseRecords parses raw records from the provided json array.
func parseRecords(data []gjson.Result) []shared.RawRecord {
	records := make([]shared.RawRecord, 0, len(data))
	for idx := range data {
		item := data[idx]

		// Null and missing fields read as empty strings.
		records = append(records, shared.RawRecord{
			Date:           item.Get("date").String(),
			Symbol:         item.Get("symbol").String(),
			AvgPrice:       item.Get("avg_price").String(),
			LastTradePrice: item.Get("last_trade_price").String(),
			Max:            item.Get("max").String(),
			Min:            item.Get("min").String(),
			PctChg:         item.Get("pctchg").String(),
			TotalTurnover:  item.Get("total_turnover_in_denars").String(),
			TurnoverBest:   item.Get("turnover_in_best_in_denars").String(),
			Volume:         item.Get("volume").String(),
		})
	}

	return records
}

// ParseBatch parses a batch payload of the form {"data": [...], "dataTwo": [...]}.
// The second instrument is optional.
func ParseBatch(b []byte) (*Batch, error) {
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("invalid batch payload")
	}

	res := gjson.ParseBytes(b)
	if !res.IsObject() {
		return nil, fmt.Errorf("batch payload is not an object")
	}

	data := res.Get("data")
	if data.Exists() && !data.IsArray() && data.Type != gjson.Null {
		return nil, fmt.Errorf("batch data is not an array")
	}
	dataTwo := res.Get("dataTwo")
	if dataTwo.Exists() && !dataTwo.IsArray() && dataTwo.Type != gjson.Null {
		return nil, fmt.Errorf("batch second data is not an array")
	}

	return &Batch{
		One: parseRecords(data.Array()),
		Two: parseRecords(dataTwo.Array()),
	}, nil
}

// LoadBatch loads and parses the batch payload at the provided file path.
func LoadBatch(filepath string) (*Batch, error) {
	readb, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading batch from file with path '%s': %w", filepath, err)
	}

	batch, err := ParseBatch(readb)
	if err != nil {
		return nil, fmt.Errorf("parsing batch: %w", err)
	}

	return batch, nil
}

// symbol returns the first symbol found in the provided records.
func symbol(records []shared.RawRecord) string {
	for idx := range records {
		sym := strings.TrimSpace(records[idx].Symbol)
		if sym != "" {
			return sym
		}
	}

	return ""
}

// Validate asserts the batch does not pair an instrument with itself.
func (b *Batch) Validate() error {
	one := symbol(b.One)
	two := symbol(b.Two)
	if one != "" && strings.EqualFold(one, two) {
		return fmt.Errorf("%w: %s", ErrSameInstrument, one)
	}

	return nil
}
