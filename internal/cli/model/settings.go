// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bangsearch/internal/application/usecase"
	"github.com/bnema/bangsearch/internal/cli/styles"
	"github.com/bnema/bangsearch/internal/domain/bang"
	"github.com/bnema/bangsearch/internal/logging"
)

type settingsMode int

const (
	modeList settingsMode = iota
	modeAdd
)

// SettingsModel is the Bubble Tea model for managing custom shortcuts.
type SettingsModel struct {
	help    help.Model
	keys    settingsKeyMap
	confirm *styles.ConfirmModel

	tokenInput    textinput.Model
	templateInput textinput.Model

	mode          settingsMode
	shortcuts     []bang.Shortcut
	selectedIdx   int
	width         int
	height        int
	err           error
	statusMessage string

	ctx       context.Context
	overrides *usecase.ManageOverridesUseCase
	theme     *styles.Theme
}

type settingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Next   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Delete},
		{k.Help, k.Quit},
	}
}

func defaultSettingsKeyMap() settingsKeyMap {
	return settingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d", "-"),
			key.WithHelp("x", "delete"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewSettingsModel creates the custom shortcuts editor.
func NewSettingsModel(ctx context.Context, theme *styles.Theme, overrides *usecase.ManageOverridesUseCase) SettingsModel {
	return SettingsModel{
		help:          styles.NewStyledHelp(theme),
		keys:          defaultSettingsKeyMap(),
		tokenInput:    styles.NewTokenInput(theme),
		templateInput: styles.NewTemplateInput(theme),
		width:         80,
		height:        24,
		ctx:           ctx,
		overrides:     overrides,
		theme:         theme,
	}
}

// Init implements tea.Model.
func (m SettingsModel) Init() tea.Cmd {
	return m.loadShortcuts
}

type shortcutsLoadedMsg struct {
	shortcuts []bang.Shortcut
	err       error
}

type shortcutSavedMsg struct {
	shortcut *bang.Shortcut
	err      error
}

type shortcutDeletedMsg struct {
	token string
	err   error
}

func (m SettingsModel) loadShortcuts() tea.Msg {
	if m.overrides == nil {
		return shortcutsLoadedMsg{err: fmt.Errorf("shortcut storage not available")}
	}

	list, err := m.overrides.List(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load shortcuts")
	}
	return shortcutsLoadedMsg{shortcuts: list, err: err}
}

// Update implements tea.Model.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.handleAddKey(msg)
		}
		return m.handleListKey(msg)

	case shortcutsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.shortcuts = msg.shortcuts
			m.selectedIdx = min(m.selectedIdx, max(len(m.shortcuts)-1, 0))
		}
		return m, nil

	case shortcutSavedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.mode = modeList
		m.resetInputs()
		m.statusMessage = fmt.Sprintf("Saved %s", msg.shortcut.Token)
		return m, m.loadShortcuts

	case shortcutDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("Deleted %s", msg.token)
		}
		return m, m.loadShortcuts
	}

	if m.mode == modeAdd {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m SettingsModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	if m.confirm.Result() && m.selectedIdx < len(m.shortcuts) {
		cmd = m.deleteShortcut(m.shortcuts[m.selectedIdx].Token)
	}
	m.confirm = nil
	return m, cmd
}

func (m SettingsModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.shortcuts)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.statusMessage = ""
		m.templateInput.Blur()
		return m, m.tokenInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		if m.selectedIdx < len(m.shortcuts) {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete %s?", m.shortcuts[m.selectedIdx].Token))
			m.confirm = &confirm
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m SettingsModel) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.resetInputs()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.tokenInput.Focused() {
			m.tokenInput.Blur()
			return m, m.templateInput.Focus()
		}
		m.templateInput.Blur()
		return m, m.tokenInput.Focus()

	case key.Matches(msg, m.keys.Save):
		token := strings.TrimSpace(m.tokenInput.Value())
		template := strings.TrimSpace(m.templateInput.Value())
		if token == "" || template == "" {
			m.statusMessage = "Both token and URL template are required"
			return m, nil
		}
		return m, m.saveShortcut(token, template)
	}

	return m.updateInputs(msg)
}

func (m SettingsModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var tokenCmd, templateCmd tea.Cmd
	m.tokenInput, tokenCmd = m.tokenInput.Update(msg)
	m.templateInput, templateCmd = m.templateInput.Update(msg)
	return m, tea.Batch(tokenCmd, templateCmd)
}

func (m *SettingsModel) resetInputs() {
	m.tokenInput.Reset()
	m.templateInput.Reset()
	m.tokenInput.Blur()
	m.templateInput.Blur()
}

func (m SettingsModel) saveShortcut(token, template string) tea.Cmd {
	return func() tea.Msg {
		if m.overrides == nil {
			return shortcutSavedMsg{err: fmt.Errorf("shortcut storage not available")}
		}
		sc, err := m.overrides.Add(m.ctx, usecase.AddShortcutInput{Token: token, Template: template})
		return shortcutSavedMsg{shortcut: sc, err: err}
	}
}

func (m SettingsModel) deleteShortcut(token string) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("token", token).Msg("deleting shortcut")
		if m.overrides == nil {
			return shortcutDeletedMsg{token: token, err: fmt.Errorf("shortcut storage not available")}
		}
		return shortcutDeletedMsg{token: token, err: m.overrides.Delete(m.ctx, token)}
	}
}

// View implements tea.Model.
func (m SettingsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if m.mode == modeAdd {
		b.WriteString(m.renderAddForm())
		b.WriteString("\n")
		b.WriteString(t.Subtle.Render("tab next field • enter save • esc cancel"))
		return b.String()
	}

	if len(m.shortcuts) == 0 {
		b.WriteString(t.Subtle.Render("  No custom shortcuts. Press a to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m SettingsModel) renderHeader() string {
	t := m.theme
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconBolt)
	title := t.Title.MarginLeft(1).Render("Custom shortcuts")
	count := t.Subtle.Render(fmt.Sprintf("  %d saved", len(m.shortcuts)))
	return icon + title + count
}

func (m SettingsModel) renderList() string {
	t := m.theme

	width := 0
	for _, sc := range m.shortcuts {
		width = max(width, lipgloss.Width(sc.Token))
	}

	// Keep the selection visible on short terminals.
	visible := max(m.height-8, 3)
	start := 0
	if m.selectedIdx >= visible {
		start = m.selectedIdx - visible + 1
	}
	end := min(start+visible, len(m.shortcuts))

	var b strings.Builder
	for i := start; i < end; i++ {
		sc := m.shortcuts[i]
		cursor := "  "
		tokenStyle := t.Token
		if i == m.selectedIdx {
			cursor = t.Highlight.Render(styles.IconCursor + " ")
			tokenStyle = t.Highlight
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			cursor,
			tokenStyle.Width(width).Render(sc.Token),
			t.Template.Render(sc.Template),
		))
	}
	return b.String()
}

func (m SettingsModel) renderAddForm() string {
	t := m.theme
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Subtitle.Render("Token"),
		t.InputBox(m.tokenInput.View(), m.tokenInput.Focused()),
		t.Subtitle.Render("URL template"),
		t.InputBox(m.templateInput.View(), m.templateInput.Focused()),
	)
}
