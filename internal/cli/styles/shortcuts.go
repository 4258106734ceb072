package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bangsearch/internal/domain/bang"
)

// ShortcutsRenderer renders shortcut listings and resolve results.
type ShortcutsRenderer struct {
	theme *Theme
}

// NewShortcutsRenderer creates a renderer with the given theme.
func NewShortcutsRenderer(theme *Theme) *ShortcutsRenderer {
	return &ShortcutsRenderer{theme: theme}
}

// RenderList renders entries as aligned token/template rows. Tokens in
// custom are tagged as user overrides.
func (r *ShortcutsRenderer) RenderList(entries []bang.Shortcut, custom map[string]string) string {
	t := r.theme
	if len(entries) == 0 {
		return t.Subtle.Render("  No shortcuts.")
	}

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Token))
	}

	var b strings.Builder
	for _, e := range entries {
		token := t.Token.Width(width).Render(e.Token)
		line := fmt.Sprintf("  %s  %s", token, t.Template.Render(e.Template))
		if _, ok := custom[e.Token]; ok {
			line += " " + t.BadgeMuted.Render("custom")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(t.Subtle.Render(fmt.Sprintf("\n  %d shortcuts, %d custom", len(entries), len(custom))))
	return b.String()
}

// RenderResolved renders a successful match.
func (r *ShortcutsRenderer) RenderResolved(res bang.Result) string {
	t := r.theme
	return fmt.Sprintf("%s %s %s\n%s",
		t.Highlight.Render(IconSearch),
		t.Token.Render(res.Token),
		t.Normal.Render(res.Term),
		t.Normal.Render(res.URL),
	)
}

// RenderNoMatch renders the no-match line.
func (r *ShortcutsRenderer) RenderNoMatch(query string) string {
	return r.theme.WarningStyle.Render(fmt.Sprintf("%s no shortcut matches %q", IconWarning, query))
}

// RenderSaved renders the confirmation after an override write.
func (r *ShortcutsRenderer) RenderSaved(sc bang.Shortcut) string {
	t := r.theme
	return fmt.Sprintf("%s %s %s %s",
		t.SuccessStyle.Render(IconCheck),
		t.Token.Render(sc.Token),
		t.Subtle.Render(IconArrow),
		t.Template.Render(sc.Template),
	)
}

// RenderRemoved renders the confirmation after a delete.
func (r *ShortcutsRenderer) RenderRemoved(token string) string {
	t := r.theme
	return fmt.Sprintf("%s removed %s", t.SuccessStyle.Render(IconTrash), t.Token.Render(token))
}

// RenderImported renders the summary of an import.
func (r *ShortcutsRenderer) RenderImported(count int, merged bool) string {
	mode := "replaced"
	if merged {
		mode = "merged"
	}
	return r.theme.SuccessStyle.Render(fmt.Sprintf("%s %d shortcuts imported (%s)", IconCheck, count, mode))
}
