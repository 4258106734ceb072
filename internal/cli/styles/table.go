package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bangsearch/internal/domain/entity"
)

// StatsRenderer renders lookup statistics.
type StatsRenderer struct {
	theme *Theme
}

// NewStatsRenderer creates a new stats renderer.
func NewStatsRenderer(theme *Theme) *StatsRenderer {
	return &StatsRenderer{theme: theme}
}

// Render renders stats as a table: token, outcome, count, last seen.
func (r *StatsRenderer) Render(stats []*entity.LookupStat) string {
	t := r.theme
	if len(stats) == 0 {
		return t.Subtle.Render("  No lookups recorded yet.")
	}

	tokenWidth := len("Token")
	for _, s := range stats {
		tokenWidth = max(tokenWidth, lipgloss.Width(s.Token))
	}

	header := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", t.Highlight.Render(IconChart), t.Title.Render("Lookups")))
	b.WriteString(header.Render(fmt.Sprintf("  %-*s  %-10s  %8s  %s", tokenWidth, "Token", "Outcome", "Count", "Last seen")))
	b.WriteString("\n")

	for _, s := range stats {
		outcome := t.SuccessStyle
		switch s.Outcome {
		case entity.OutcomeFallback:
			outcome = t.WarningStyle
		case entity.OutcomeNotFound:
			outcome = t.ErrorStyle
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %8s  %s\n",
			t.Token.Render(fmt.Sprintf("%-*s", tokenWidth, s.Token)),
			outcome.Render(fmt.Sprintf("%-10s", s.Outcome)),
			formatInt(s.Count),
			t.Subtle.Render(s.LastSeenAt.Format("2006-01-02 15:04")),
		))
	}
	return b.String()
}

// formatInt formats a count for display.
func formatInt(n int64) string {
	switch {
	case n >= 1_000_000:
		return formatTenths(n, 1_000_000) + "M"
	case n >= 1_000:
		return formatTenths(n, 1_000) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func formatTenths(n, unit int64) string {
	tenths := n * 10 / unit
	if tenths%10 == 0 {
		return fmt.Sprintf("%d", tenths/10)
	}
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}
