package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/datasource"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/tiers"
)

const (
	unavailable = "⚠️ Data unavailable, please try again later."
	noAnswer    = "🤷 I don't know that one yet. Try /tiers or /presale."
)

const helpText = `🚀 XRPL.Sale presale bot

/presale - current presale status
/tier <balance> - tier for a token balance
/tiers - all tiers and their benefits
/projects - listed projects
/changelog - latest releases
/ask <question> - ask about the presale`

var tierEmoji = [...]string{"🥉", "🥈", "🥇", "💠", "💎"}

func emojiFor(t tiers.Tier) string {
	if t.Ordinal < 0 || t.Ordinal >= len(tierEmoji) {
		return "▫️"
	}
	return tierEmoji[t.Ordinal]
}

func formatPresale(o datasource.PresaleOverview, now time.Time) string {
	var b strings.Builder
	b.WriteString("🚀 XRPL.SALE PRESALE 🚀\n\n")

	if o.Status == nil {
		b.WriteString(unavailable)
	} else {
		s := o.Status
		state := "🟢 Live"
		if !s.IsActive || o.Progress.Ended {
			state = "🔴 Ended"
		}
		fmt.Fprintf(&b, "%s | %s Tier: %s\n", state, emojiFor(o.Tier), o.Tier.Name)
		fmt.Fprintf(&b, "💰 Price: %s XRP\n", formatPrice(s.CurrentPrice))
		fmt.Fprintf(&b, "📈 Sold: %s / %s (%.2f%%)\n", formatAmount(s.TokensSold), formatAmount(s.TotalSupply), o.Progress.SoldPct)
		fmt.Fprintf(&b, "%s\n", progressBar(o.Progress.SoldPct, 20))
		fmt.Fprintf(&b, "🎯 Next tier at %s (%.2f%%)\n", formatAmount(s.NextTierThreshold), o.Progress.TierPct)
		fmt.Fprintf(&b, "👥 Participants: %d\n", s.ParticipantsCount)
		fmt.Fprintf(&b, "⏳ Remaining: %s", formatRemaining(s.TimeRemaining))
	}

	if o.Demo {
		b.WriteString("\n\n🧪 Demo data")
	}
	fmt.Fprintf(&b, "\n\n📊 Updated: %s", now.UTC().Format("2006-01-02 15:04 UTC"))
	return b.String()
}

func formatTierLookup(args string) string {
	arg := strings.ReplaceAll(strings.TrimSpace(args), ",", "")
	if arg == "" {
		return "Usage: /tier <balance>"
	}
	balance, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(balance) || math.IsInf(balance, 0) {
		return "Balance must be a number, e.g. /tier 5000"
	}

	t := tiers.ByBalance(balance)
	msg := fmt.Sprintf("%s %s tier\n%s", emojiFor(t), t.Name, formatTierDetails(t))
	if next, ok := tiers.Next(t); ok {
		need := decimal.NewFromInt(next.MinTokens).Sub(decimal.NewFromFloat(balance))
		msg += fmt.Sprintf("\n\n⬆️ %s more tokens to reach %s", formatAmount(need.String()), next.Name)
	}
	return msg
}

func formatTierTable() string {
	var parts []string
	for _, t := range tiers.All() {
		threshold := "0"
		if t.MinTokens > 0 {
			threshold = formatAmount(strconv.FormatInt(t.MinTokens, 10))
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s+ tokens)\n%s", emojiFor(t), t.Name, threshold, formatTierDetails(t)))
	}
	return "🏆 PRESALE TIERS 🏆\n\n" + strings.Join(parts, "\n\n")
}

func formatTierDetails(t tiers.Tier) string {
	return fmt.Sprintf("✖️ %.2fx multiplier | ⏰ %dh early access | 🎟 %d%% guaranteed | 💼 %.1fx max investment",
		t.Multiplier, t.EarlyAccessHours, t.AllocationPct, t.MaxInvestmentMultiplier)
}

func formatProjects(projects []models.Project) string {
	if len(projects) == 0 {
		return "📭 No projects available right now."
	}
	lines := make([]string, 0, len(projects))
	for i, p := range projects {
		lines = append(lines, fmt.Sprintf("#%d %s (%s) | %s | Raised %s / %s",
			i+1, p.Name, p.TokenSymbol, strings.ToUpper(p.Status), formatAmount(p.Raised), formatAmount(p.TargetRaise)))
	}
	return "📋 PROJECTS\n\n" + strings.Join(lines, "\n")
}

var changelogEmoji = map[string]string{
	"major":    "🚀",
	"minor":    "✨",
	"patch":    "🔧",
	"security": "🔒",
}

func formatChangelog(page models.ChangelogPage) string {
	if len(page.Entries) == 0 {
		return unavailable
	}
	lines := make([]string, 0, len(page.Entries))
	for _, e := range page.Entries {
		emoji, ok := changelogEmoji[e.Type]
		if !ok {
			emoji = "▫️"
		}
		lines = append(lines, fmt.Sprintf("%s v%s (%s) %s", emoji, e.Version, e.Date, e.Title))
	}
	return "📝 CHANGELOG\n\n" + strings.Join(lines, "\n")
}

// formatAmount renders a decimal string with B/M/K suffixes.
func formatAmount(value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsZero() {
		return "N/A"
	}
	switch abs := d.Abs(); {
	case abs.GreaterThanOrEqual(decimal.New(1, 9)):
		return d.Shift(-9).StringFixed(2) + " B"
	case abs.GreaterThanOrEqual(decimal.New(1, 6)):
		return d.Shift(-6).StringFixed(2) + " M"
	case abs.GreaterThanOrEqual(decimal.New(1, 3)):
		return d.Shift(-3).StringFixed(2) + " K"
	}
	return d.StringFixed(2)
}

func formatPrice(value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsZero() {
		return "N/A"
	}
	return d.StringFixed(4)
}

func formatRemaining(seconds int64) string {
	if seconds <= 0 {
		return "ended"
	}
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func progressBar(pct float64, width int) string {
	filled := int(math.Round(pct / 100 * float64(width)))
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
