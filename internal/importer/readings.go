package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReadingsParser parses the plain readings export: a header row followed by
// date,category,amount rows.
type ReadingsParser struct{}

const (
	readingsDateFormat = "2006-01-02"
	readingsNumFields  = 3
	readingsColDate    = 0
	readingsColCat     = 1
	readingsColAmount  = 2
)

// Format returns the parser name.
func (p *ReadingsParser) Format() string { return "readings" }

// Parse reads a readings CSV and returns its rows. Category names are not
// validated here; the store rejects unknown ones at append time.
func (p *ReadingsParser) Parse(r io.Reader) ([]Reading, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = readingsNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading consumption CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var readings []Reading
	for i, rec := range records[1:] {
		reading, err := parseReadingsRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		readings = append(readings, reading)
	}
	return readings, nil
}

func parseReadingsRow(rec []string) (Reading, error) {
	date, err := time.Parse(readingsDateFormat, strings.TrimSpace(rec[readingsColDate]))
	if err != nil {
		return Reading{}, fmt.Errorf("parsing date %q: %w", rec[readingsColDate], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[readingsColAmount]))
	if err != nil {
		return Reading{}, fmt.Errorf("parsing amount %q: %w", rec[readingsColAmount], err)
	}

	return Reading{
		Date:     date,
		Category: strings.TrimSpace(rec[readingsColCat]),
		Amount:   amount,
	}, nil
}
