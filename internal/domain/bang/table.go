// Package bang recognizes bang tokens ("!w term") in free text and turns
// them into destination URLs.
package bang

import (
	"sort"
	"strings"
)

// Prefix is the conventional first character of a bang token.
const Prefix = "!"

// Shortcut is a single token to URL template pair.
type Shortcut struct {
	Token    string `json:"token"`
	Template string `json:"template"`
}

// Table maps bang tokens to URL templates.
// A Table is never mutated after construction: reloads build a new value
// and swap the reference. The nil *Table behaves as an empty table.
type Table struct {
	entries map[string]string
	tokens  []string // longest first, ties in lexical order
}

// NewTable builds a table from a token to template mapping.
// The input map is copied. Empty tokens are dropped.
func NewTable(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for token, template := range entries {
		if token == "" {
			continue
		}
		t.entries[token] = template
	}
	t.tokens = canonicalOrder(t.entries)
	return t
}

// EmptyTable returns a table with no entries.
func EmptyTable() *Table {
	return NewTable(nil)
}

// Merge overlays overrides onto defaults key by key. Override entries
// replace conflicting default entries.
func Merge(defaults, overrides map[string]string) *Table {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for token, template := range defaults {
		merged[token] = template
	}
	for token, template := range overrides {
		merged[token] = template
	}
	return NewTable(merged)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the template for an exact token.
func (t *Table) Lookup(token string) (string, bool) {
	if t == nil {
		return "", false
	}
	template, ok := t.entries[token]
	return template, ok
}

// Tokens returns the tokens in matching order: longest first, ties
// broken lexically.
func (t *Table) Tokens() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Entries returns all shortcuts sorted by token.
func (t *Table) Entries() []Shortcut {
	if t == nil {
		return nil
	}
	out := make([]Shortcut, 0, len(t.entries))
	for token, template := range t.entries {
		out = append(out, Shortcut{Token: token, Template: template})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Token < out[j].Token
	})
	return out
}

// Map returns a copy of the underlying mapping.
func (t *Table) Map() map[string]string {
	if t == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(t.entries))
	for token, template := range t.entries {
		out[token] = template
	}
	return out
}

// NormalizeToken trims s and prefixes it with "!" when missing.
// Returns "" for blank input.
func NormalizeToken(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == Prefix {
		return ""
	}
	if !strings.HasPrefix(s, Prefix) {
		s = Prefix + s
	}
	return s
}

func canonicalOrder(entries map[string]string) []string {
	tokens := make([]string, 0, len(entries))
	for token := range entries {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}
