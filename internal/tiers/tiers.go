// Package tiers holds the presale benefit tier table and resolves a token
// balance to its tier.
package tiers

// Tier is one of five ordered membership levels.
type Tier struct {
	Ordinal                 int        `json:"tier"`
	Name                    string     `json:"name"`
	Multiplier              float64    `json:"multiplier"`
	MinTokens               int64      `json:"min_tokens"`
	EarlyAccessHours        int        `json:"early_access_hours"`
	AllocationPct           int        `json:"guaranteed_allocation"`
	MaxInvestmentMultiplier float64    `json:"max_investment_multiplier"`
	Benefits                []string   `json:"benefits"`
	Colors                  TierColors `json:"colors"`
}

// TierColors is presentation-only.
type TierColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

const (
	Bronze = iota
	Silver
	Gold
	Platinum
	Diamond
)

// table is ordered by ordinal and never mutated.
var table = [...]Tier{
	{
		Ordinal:                 Bronze,
		Name:                    "Bronze",
		Multiplier:              1.0,
		MinTokens:               0,
		EarlyAccessHours:        0,
		AllocationPct:           0,
		MaxInvestmentMultiplier: 1.0,
		Benefits: []string{
			"Access to public presale",
			"Community channel access",
		},
		Colors: TierColors{Primary: "#CD7F32", Secondary: "#8B4513", Accent: "#F4A460"},
	},
	{
		Ordinal:                 Silver,
		Name:                    "Silver",
		Multiplier:              1.25,
		MinTokens:               1000,
		EarlyAccessHours:        12,
		AllocationPct:           10,
		MaxInvestmentMultiplier: 1.5,
		Benefits: []string{
			"12h early access",
			"10% guaranteed allocation",
			"1.25x reward multiplier",
		},
		Colors: TierColors{Primary: "#C0C0C0", Secondary: "#808080", Accent: "#E8E8E8"},
	},
	{
		Ordinal:                 Gold,
		Name:                    "Gold",
		Multiplier:              1.5,
		MinTokens:               5000,
		EarlyAccessHours:        24,
		AllocationPct:           25,
		MaxInvestmentMultiplier: 2.0,
		Benefits: []string{
			"24h early access",
			"25% guaranteed allocation",
			"1.5x reward multiplier",
			"Governance voting",
		},
		Colors: TierColors{Primary: "#FFD700", Secondary: "#B8860B", Accent: "#FFF8DC"},
	},
	{
		Ordinal:                 Platinum,
		Name:                    "Platinum",
		Multiplier:              2.0,
		MinTokens:               15000,
		EarlyAccessHours:        48,
		AllocationPct:           50,
		MaxInvestmentMultiplier: 3.0,
		Benefits: []string{
			"48h early access",
			"50% guaranteed allocation",
			"2x reward multiplier",
			"Governance voting",
			"Private AMA sessions",
		},
		Colors: TierColors{Primary: "#E5E4E2", Secondary: "#A9A9A9", Accent: "#FFFFFF"},
	},
	{
		Ordinal:                 Diamond,
		Name:                    "Diamond",
		Multiplier:              3.0,
		MinTokens:               50000,
		EarlyAccessHours:        72,
		AllocationPct:           100,
		MaxInvestmentMultiplier: 5.0,
		Benefits: []string{
			"72h early access",
			"100% guaranteed allocation",
			"3x reward multiplier",
			"Governance voting",
			"Private AMA sessions",
			"Dedicated account manager",
		},
		Colors: TierColors{Primary: "#B9F2FF", Secondary: "#4FC3F7", Accent: "#E1F5FE"},
	},
}

// Count is the number of tiers.
const Count = len(table)

// All returns a copy of the tier table ordered by ordinal.
func All() []Tier {
	out := make([]Tier, 0, Count)
	for _, t := range table {
		out = append(out, clone(t))
	}
	return out
}

// ByOrdinal returns the tier with ordinal n, or Bronze when n is out of range.
func ByOrdinal(n int) Tier {
	if n < 0 || n >= Count {
		return clone(table[Bronze])
	}
	return clone(table[n])
}

// ByBalance returns the highest tier whose MinTokens is <= balance. A balance
// exactly on a threshold belongs to that higher tier.
func ByBalance(balance float64) Tier {
	for i := Count - 1; i > 0; i-- {
		if balance >= float64(table[i].MinTokens) {
			return clone(table[i])
		}
	}
	return clone(table[Bronze])
}

// Next returns the tier above t, if any.
func Next(t Tier) (Tier, bool) {
	if t.Ordinal < 0 || t.Ordinal+1 >= Count {
		return Tier{}, false
	}
	return clone(table[t.Ordinal+1]), true
}

func clone(t Tier) Tier {
	t.Benefits = append([]string(nil), t.Benefits...)
	return t
}
