package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used in the data file.
const DateFormat = "2006-01-02"

// Record is a single dated consumption measurement. The unit is implied
// by the category the record is filed under.
type Record struct {
	Date   time.Time
	Amount decimal.Decimal
}

// MarshalJSON encodes a record as {"date": "YYYY-MM-DD", "amount": <number>}.
// The amount is written as a bare JSON number, not a string.
func (r Record) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"date":%q,"amount":%s}`, r.Date.Format(DateFormat), r.Amount.String())), nil
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON. The amount
// is read through json.Number so no float precision is lost.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date   string      `json:"date"`
		Amount json.Number `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(DateFormat, raw.Date)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", raw.Date, err)
	}

	amount, err := decimal.NewFromString(raw.Amount.String())
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", raw.Amount.String(), err)
	}

	r.Date = date
	r.Amount = amount
	return nil
}
