// Package renderer builds the markdown views of the goal ledger: goal
// cards, the per-goal climb chart, and the weekly progress overview. It
// produces plain markdown strings; the caller decides how to print them.
package renderer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// scorePlaces is the precision used to display progress scores.
const scorePlaces = 2

// score formats a progress score for display.
func score(d decimal.Decimal) string {
	return d.StringFixed(scorePlaces)
}

// badge maps a history change to its chart badge.
func badge(change decimal.Decimal) string {
	switch {
	case change.Equal(decimal.RequireFromString("0.01")):
		return "✅ +1%"
	case change.Equal(decimal.RequireFromString("0.005")):
		return "✔️ +0.5%"
	case change.IsZero():
		return "🌱 start"
	default:
		return "⚠️ -1%"
	}
}

// bar renders a horizontal bar of at most 'width' cells, scaled by
// value/max. A positive value always shows at least one cell.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}
