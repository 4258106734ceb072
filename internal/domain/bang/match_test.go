package bang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testTable = NewTable(map[string]string{
	"!w":    "https://en.wikipedia.org/w/index.php?search={q}",
	"!wiki": "https://wiki.example.org/search?q=%s",
	"!g":    "https://www.google.com/search?q=",
	"!gh":   "https://github.com/search?q={q}&type=code",
	"!ddg":  "https://duckduckgo.com/",
})

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{
			name:  "simple token",
			input: "!w moon",
			want: Result{
				Matched: true,
				Token:   "!w",
				Term:    "moon",
				URL:     "https://en.wikipedia.org/w/index.php?search=moon",
			},
		},
		{
			name:  "longest token wins",
			input: "!wiki moon",
			want: Result{
				Matched: true,
				Token:   "!wiki",
				Term:    "moon",
				URL:     "https://wiki.example.org/search?q=moon",
			},
		},
		{
			name:  "surrounding and inner whitespace trimmed",
			input: "   !g   hello world  ",
			want: Result{
				Matched: true,
				Token:   "!g",
				Term:    "hello world",
				URL:     "https://www.google.com/search?q=hello%20world",
			},
		},
		{
			name:  "implicit append point",
			input: "!ddg go generics",
			want: Result{
				Matched: true,
				Token:   "!ddg",
				Term:    "go generics",
				URL:     "https://duckduckgo.com/?q=go%20generics",
			},
		},
		{
			name:  "placeholder in the middle",
			input: "!gh bnema",
			want: Result{
				Matched: true,
				Token:   "!gh",
				Term:    "bnema",
				URL:     "https://github.com/search?q=bnema&type=code",
			},
		},
		{name: "empty input", input: "", want: NoMatch},
		{name: "whitespace only", input: "  \t ", want: NoMatch},
		{name: "bare token", input: "!w", want: NoMatch},
		{name: "token with trailing space", input: "!w ", want: NoMatch},
		{name: "unknown token", input: "!nope moon", want: NoMatch},
		{name: "token not at start", input: "moon !w", want: NoMatch},
		{name: "token glued to term", input: "!wmoon", want: NoMatch},
		{name: "tab is not a separator", input: "!w\tmoon", want: NoMatch},
		{name: "case sensitive", input: "!W moon", want: NoMatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Match(tc.input, testTable)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Match(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestMatch_EveryTokenWithTerm(t *testing.T) {
	terms := []string{"a", "hello world", "  padded  ", "ünïcode", "x=1&y=2"}
	for _, token := range testTable.Tokens() {
		for _, term := range terms {
			got := Match(token+" "+term, testTable)
			if !got.Matched {
				t.Fatalf("Match(%q) = NoMatch, want match", token+" "+term)
			}
			if got.Token != token {
				t.Fatalf("Match(%q).Token = %q, want %q", token+" "+term, got.Token, token)
			}
			if want := trimmed(term); got.Term != want {
				t.Fatalf("Match(%q).Term = %q, want %q", token+" "+term, got.Term, want)
			}
		}
	}
}

func TestMatch_LongestTokenIsStable(t *testing.T) {
	table := NewTable(map[string]string{
		"!w":    "A?q=",
		"!wiki": "B?q=",
	})
	for i := 0; i < 100; i++ {
		got := Match("!wiki moon", table)
		if got.Token != "!wiki" || got.URL != "B?q=moon" {
			t.Fatalf("run %d: got %+v, want !wiki → B", i, got)
		}
	}
}

func TestMatch_EmptyAndNilTable(t *testing.T) {
	if got := Match("!w moon", EmptyTable()); got != NoMatch {
		t.Fatalf("empty table: got %+v", got)
	}
	if got := Match("!w moon", nil); got != NoMatch {
		t.Fatalf("nil table: got %+v", got)
	}
}

func TestHasBang(t *testing.T) {
	tests := []struct {
		input     string
		wantToken string
		wantOK    bool
	}{
		{input: "!w m", wantToken: "!w", wantOK: true},
		{input: "!w ", wantOK: false},
		{input: "\u00a0!w moon", wantToken: "!w", wantOK: true},
		{input: "!wiki m", wantToken: "!wiki", wantOK: true},
		{input: "!w", wantOK: false},
		{input: "w moon", wantOK: false},
	}
	for _, tc := range tests {
		token, ok := HasBang(tc.input, testTable)
		if ok != tc.wantOK || token != tc.wantToken {
			t.Fatalf("HasBang(%q) = (%q, %v), want (%q, %v)", tc.input, token, ok, tc.wantToken, tc.wantOK)
		}
	}
}

func TestMatchSelection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Result
	}{
		{
			name: "collapses whitespace",
			text: "\n!g  rust\tasync \n",
			want: Result{Matched: true, Token: "!g", Term: "rust async", URL: "https://www.google.com/search?q=rust%20async"},
		},
		{name: "bang only", text: "!g", want: NoMatch},
		{name: "no bang", text: "rust async", want: NoMatch},
		{name: "unknown bang", text: "!zz rust", want: NoMatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, MatchSelection(tc.text, testTable)); diff != "" {
				t.Fatalf("MatchSelection(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
		})
	}
}

func trimmed(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] == ' ' {
		start++
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}
