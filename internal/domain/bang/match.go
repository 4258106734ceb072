package bang

import "strings"

// separator sits between a token and its term.
const separator = " "

// Result is the outcome of matching free text against a Table.
// The zero value is NoMatch.
type Result struct {
	Matched bool   `json:"matched"`
	Token   string `json:"token,omitempty"`
	Term    string `json:"term,omitempty"`
	URL     string `json:"url,omitempty"`
}

// NoMatch is the negative result.
var NoMatch = Result{}

// Match reports whether raw starts with a known token followed by a space
// and a non-empty term, and builds the destination URL when it does.
//
// Examples, with "!w" and "!wiki" in the table:
//
//	"!wiki moon"  → Matched("!wiki", "moon", ...)
//	"!w  moon "   → Matched("!w", "moon", ...)
//	"!w"          → NoMatch
//	"moon !w"     → NoMatch
func Match(raw string, table *Table) Result {
	input := strings.TrimSpace(raw)
	if input == "" || table.Len() == 0 {
		return NoMatch
	}

	for _, token := range table.tokens {
		if !strings.HasPrefix(input, token+separator) {
			continue
		}
		term := strings.TrimSpace(input[len(token)+len(separator):])
		if term == "" {
			continue
		}
		return Result{
			Matched: true,
			Token:   token,
			Term:    term,
			URL:     BuildURL(table.entries[token], term),
		}
	}

	return NoMatch
}

// HasBang reports whether raw, trimmed like Match trims it, starts with a
// known token followed by a separator. Used for live feedback while the
// user is typing: "!w moo" is highlighted, "!w " is not yet.
func HasBang(raw string, table *Table) (string, bool) {
	input := strings.TrimSpace(raw)
	if table.Len() == 0 {
		return "", false
	}
	for _, token := range table.tokens {
		if strings.HasPrefix(input, token+separator) {
			return token, true
		}
	}
	return "", false
}

// MatchSelection resolves a free-form text selection. The selection is
// split on any whitespace; the first field must be an exact token and the
// remaining fields, joined by single spaces, form the term.
func MatchSelection(text string, table *Table) Result {
	fields := strings.Fields(text)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], Prefix) {
		return NoMatch
	}

	token := fields[0]
	template, ok := table.Lookup(token)
	if !ok {
		return NoMatch
	}

	term := strings.Join(fields[1:], " ")
	return Result{
		Matched: true,
		Token:   token,
		Term:    term,
		URL:     BuildURL(template, term),
	}
}
