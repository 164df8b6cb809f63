// Package advice maps per-category consumption totals to canned
// recommendation text.
package advice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecotrack-dev/ecotrack/internal/model"
)

// DefaultThreshold is the boundary between "within limits" and an advisory.
// It is unit-agnostic: the same value applies to kWh, liters, and kg alike.
// A global config override exists, but there are no per-category thresholds.
var DefaultThreshold = decimal.NewFromInt(100)

// Advice is the outcome of a threshold check for one category.
type Advice struct {
	OverThreshold bool
	Text          string
}

// Service performs threshold checks against a fixed recommendation table.
type Service struct {
	threshold decimal.Decimal
	tips      map[string]string
}

// NewService creates a Service with the built-in recommendation table.
func NewService(threshold decimal.Decimal) *Service {
	return &Service{threshold: threshold, tips: defaultTips()}
}

func defaultTips() map[string]string {
	return map[string]string{
		string(model.CategoryEnergy): "Consider using energy-efficient appliances or LED lighting.",
		string(model.CategoryWater):  "Consider shorter showers or fixing leaks.",
		string(model.CategoryWaste):  "Improve recycling efforts or compost organic waste.",
	}
}

// For returns the advice line for a category's total. Totals at or under
// the threshold report acceptable consumption; totals over it return the
// category's canned recommendation, or a generic line for categories the
// table does not know.
func (s *Service) For(category string, total decimal.Decimal) Advice {
	if total.GreaterThan(s.threshold) {
		tip, ok := s.tips[category]
		if !ok {
			tip = "No recommendation available."
		}
		return Advice{
			OverThreshold: true,
			Text:          fmt.Sprintf("Recommendation for %s: %s", category, tip),
		}
	}
	return Advice{
		Text: fmt.Sprintf("%s consumption is within acceptable limits.", model.Category(category).Label()),
	}
}
