package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bangsearch/internal/domain/build"
)

// AboutInfo is what the about screen shows besides build info.
type AboutInfo struct {
	Build          build.Info
	ConfigFile     string
	DatabaseFile   string
	SchemaVersion  int64
	ShortcutsCount int
}

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders the logo next to the styled info lines.
func (r *AboutRenderer) Render(info AboutInfo) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `██
██
██

██`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info AboutInfo) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	lines := []string{
		line(IconVersion, "Version", info.Build.Version),
		line(IconGitBranch, "Commit", info.Build.Commit),
		line(IconCalendar, "Built", info.Build.BuildDate),
		line(IconGo, "Go", info.Build.GoVersion),
		"",
		line(IconBolt, "Shortcuts", fmt.Sprintf("%d", info.ShortcutsCount)),
		line(IconConfig, "Config", info.ConfigFile),
		line(IconDatabase, "Database", fmt.Sprintf("%s (schema v%d)", info.DatabaseFile, info.SchemaVersion)),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconHeart),
			keyStyle.Render("Made with love by"),
			valStyle.Render(strings.Join(build.Contributors(), ", ")),
		),
	}

	return strings.Join(lines, "\n")
}
