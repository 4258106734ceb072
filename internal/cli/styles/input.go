package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "> "
	return ti
}

// NewTokenInput creates the input for a bang token. The "!" is shown as the
// prompt and added on save.
func NewTokenInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "w")
	ti.Prompt = "!"
	ti.CharLimit = 32
	return ti
}

// NewTemplateInput creates the input for a URL template.
func NewTemplateInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "https://en.wikipedia.org/wiki/Special:Search?search=%s")
	ti.Prompt = IconArrow + " "
	ti.CharLimit = 2048
	return ti
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
