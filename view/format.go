package view

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/thingmaker/engine"
)

// FormatAmount renders the floor of v with thousands separators
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "?"
	}
	f := math.Floor(v)
	if f == 0 {
		return "0"
	}
	return humanize.Commaf(f)
}

// CostLabel renders "<amount> <label>" for a priced tier, "Free" otherwise
func CostLabel(rule engine.Rule) string {
	if !rule.HasCost {
		return "Free"
	}
	return FormatAmount(rule.Cost.Amount) + " " + engine.RuleFor(rule.Cost.Kind).Label
}
