package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dataset holds every recorded measurement, keyed by category name. Key
// order is preserved: the fixed categories in declaration order for a fresh
// dataset, or the on-disk order for a loaded one. Unknown keys found in a
// loaded file are kept verbatim; Append refuses them only when absent.
type Dataset struct {
	order   []string
	records map[string][]Record
}

// New returns a Dataset seeded with the three fixed categories, each with
// an empty sequence.
func New() *Dataset {
	d := &Dataset{records: make(map[string][]Record, 3)}
	for _, c := range Categories() {
		d.order = append(d.order, string(c))
		d.records[string(c)] = []Record{}
	}
	return d
}

// Has reports whether a category key is present.
func (d *Dataset) Has(category string) bool {
	_, ok := d.records[category]
	return ok
}

// Categories returns the category keys in dataset order.
func (d *Dataset) Categories() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Records returns the record sequence for a category, in logging order.
func (d *Dataset) Records(category string) []Record {
	return d.records[category]
}

// Len returns the number of records filed under a category.
func (d *Dataset) Len(category string) int {
	return len(d.records[category])
}

// Append adds a record to the end of a category's sequence. It reports
// false, leaving the dataset untouched, when the category key is absent.
func (d *Dataset) Append(category string, rec Record) bool {
	if !d.Has(category) {
		return false
	}
	d.records[category] = append(d.records[category], rec)
	return true
}

// MarshalJSON encodes the dataset as a single JSON object whose keys appear
// in dataset order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		recs := d.records[key]
		if recs == nil {
			recs = []Record{}
		}
		v, err := json.Marshal(recs)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the dataset, adopting the file's
// key order and contents verbatim. Anything other than an object of record
// lists is an error.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	var order []string
	records := make(map[string][]Record)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var recs []Record
		if err := dec.Decode(&recs); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		if recs == nil {
			recs = []Record{}
		}
		order = append(order, key)
		records[key] = recs
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	d.order = order
	d.records = records
	return nil
}
