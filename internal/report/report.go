// Package report renders consumption totals, recommendations, and history
// charts as plain text.
package report

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"github.com/ecotrack-dev/ecotrack/internal/advice"
	"github.com/ecotrack-dev/ecotrack/internal/model"
	"github.com/ecotrack-dev/ecotrack/internal/store"
)

const chartHeight = 10

// Render writes the consumption report: one total line and one advice line
// per category, in totals order.
func Render(w io.Writer, totals []store.CategoryTotal, adv *advice.Service) {
	fmt.Fprintln(w, "\n--- Consumption Report ---")
	for _, ct := range totals {
		fmt.Fprintf(w, "%s: Total consumption = %s\n", model.Category(ct.Category).Label(), ct.Total.String())
		fmt.Fprintln(w, adv.For(ct.Category, ct.Total).Text)
	}
}

// RenderChart draws a line chart of one category's amounts in logging
// order. Categories with no records get a short notice instead.
func RenderChart(w io.Writer, ds *model.Dataset, category string) {
	recs := ds.Records(category)
	if len(recs) == 0 {
		fmt.Fprintf(w, "%s: no recorded data to chart\n", model.Category(category).Label())
		return
	}

	series := make([]float64, len(recs))
	for i, rec := range recs {
		series[i], _ = rec.Amount.Float64()
	}

	caption := model.Category(category).Label()
	if unit := model.Category(category).Unit(); unit != "" {
		caption = fmt.Sprintf("%s (%s)", caption, unit)
	}

	fmt.Fprintln(w, asciigraph.Plot(series,
		asciigraph.Height(chartHeight),
		asciigraph.Caption(caption),
	))
}
