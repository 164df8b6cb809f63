// Package store owns the in-memory consumption dataset and its single
// JSON-backed storage file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecotrack-dev/ecotrack/internal/model"
)

// ErrUnknownCategory is returned by Record when the named category key is
// not present in the dataset.
var ErrUnknownCategory = errors.New("unknown category")

// LoadOutcome describes what Load found at the storage path.
type LoadOutcome int

const (
	// OutcomeLoaded means an existing data file was parsed and adopted.
	OutcomeLoaded LoadOutcome = iota
	// OutcomeFreshStart means no data file exists yet.
	OutcomeFreshStart
	// OutcomeReset means the data file could not be read or decoded and
	// the store fell back to an empty dataset.
	OutcomeReset
)

// Store holds the dataset for the life of the process. It is the single
// owner: load once at startup, append via Record, overwrite via Save.
type Store struct {
	path string
	data *model.Dataset
}

// New creates a Store backed by the file at path. The dataset starts empty;
// call Load to adopt any persisted state.
func New(path string) *Store {
	return &Store{path: path, data: model.New()}
}

// Load reads the data file and adopts its contents verbatim. A missing or
// undecodable file is not an error: the store keeps an empty dataset and
// the outcome tells the caller which case it was.
func (s *Store) Load() LoadOutcome {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.data = model.New()
		return OutcomeFreshStart
	}
	if err != nil {
		s.data = model.New()
		return OutcomeReset
	}

	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		s.data = model.New()
		return OutcomeReset
	}

	s.data = &ds
	return OutcomeLoaded
}

// Dataset returns the store's in-memory dataset.
func (s *Store) Dataset() *model.Dataset {
	return s.data
}

// Record appends a measurement dated today (local calendar date). No sign
// or range validation is applied to the amount.
func (s *Store) Record(category string, amount decimal.Decimal) (model.Record, error) {
	return s.RecordOn(time.Now(), category, amount)
}

// RecordOn appends a measurement with an explicit date. The time of day is
// discarded; records carry calendar-date precision only.
func (s *Store) RecordOn(date time.Time, category string, amount decimal.Decimal) (model.Record, error) {
	y, m, d := date.Date()
	rec := model.Record{
		Date:   time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		Amount: amount,
	}
	if !s.data.Append(category, rec) {
		return model.Record{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return rec, nil
}

// CategoryTotal is the summed consumption for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Totals sums each category's amounts, in dataset key order. Empty
// sequences total zero.
func (s *Store) Totals() []CategoryTotal {
	var totals []CategoryTotal
	for _, cat := range s.data.Categories() {
		sum := decimal.Zero
		for _, rec := range s.data.Records(cat) {
			sum = sum.Add(rec.Amount)
		}
		totals = append(totals, CategoryTotal{Category: cat, Total: sum})
	}
	return totals
}

// Save serializes the dataset with 4-space indentation and overwrites the
// data file in place. There is no temp-file-and-rename step: a failure
// mid-write can truncate the file, matching the reference behavior.
func (s *Store) Save() error {
	compact, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "    "); err != nil {
		return fmt.Errorf("indenting dataset: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
