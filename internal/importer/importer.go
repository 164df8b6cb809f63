// Package importer parses consumption CSV exports for bulk logging.
package importer

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Reading is one parsed row of a consumption CSV export.
type Reading struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
}

// Parser converts a CSV export into Readings.
type Parser interface {
	Parse(r io.Reader) ([]Reading, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ReadingsParser{})
	return r
}
