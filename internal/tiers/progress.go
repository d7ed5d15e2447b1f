package tiers

import (
	"github.com/shopspring/decimal"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Progress summarises how far a presale has run.
type Progress struct {
	SoldPct float64 `json:"sold_pct"` // tokens_sold / total_supply, clamped to [0,100]
	TierPct float64 `json:"tier_pct"` // tokens_sold / next_tier_threshold, clamped to [0,100]
	Ended   bool    `json:"ended"`
}

// ComputeProgress derives percentages from the status decimal strings.
// Unparsable or non-positive denominators yield 0; sold > supply yields 100.
func ComputeProgress(status models.PresaleStatus) Progress {
	return Progress{
		SoldPct: percent(status.TokensSold, status.TotalSupply),
		TierPct: percent(status.TokensSold, status.NextTierThreshold),
		Ended:   status.TimeRemaining <= 0,
	}
}

func percent(part, whole string) float64 {
	p, err := decimal.NewFromString(part)
	if err != nil {
		return 0
	}
	w, err := decimal.NewFromString(whole)
	if err != nil || !w.IsPositive() {
		return 0
	}

	pct := p.Mul(hundred).Div(w)
	switch {
	case pct.IsNegative():
		return 0
	case pct.GreaterThan(hundred):
		return 100
	}
	return pct.Round(2).InexactFloat64()
}
