package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/bnema/bangsearch/internal/domain/bang"
)

var shortcutTokenRE = regexp.MustCompile(`^![^\s!][^\s]{0,31}$`)

// ValidateShortcutToken checks a normalized token ("!w").
func ValidateShortcutToken(value string) []string {
	var errs []string
	value = strings.TrimSpace(value)
	if value == "" || value == bang.Prefix {
		errs = append(errs, "shortcut token cannot be empty")
		return errs
	}
	if !shortcutTokenRE.MatchString(value) {
		errs = append(errs, "shortcut token must be \"!\" followed by 1-32 non-space characters")
	}
	return errs
}

// ValidateShortcutTemplate checks that a template expands to an absolute URL.
// Templates without a placeholder are accepted: the term is appended.
func ValidateShortcutTemplate(value string) []string {
	var errs []string
	value = strings.TrimSpace(value)
	if value == "" {
		errs = append(errs, "shortcut template cannot be empty")
		return errs
	}
	if strings.ContainsAny(value, " \t\r\n") {
		errs = append(errs, "shortcut template must not contain whitespace")
		return errs
	}

	parsed, err := url.Parse(bang.BuildURL(value, "query"))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		errs = append(errs, "shortcut template must be a valid absolute URL")
	}

	return errs
}

// ValidateShortcut validates a token and template pair, prefixing every
// message with the token.
func ValidateShortcut(token, template string) []string {
	var errs []string
	for _, msg := range ValidateShortcutToken(token) {
		errs = append(errs, token+": "+msg)
	}
	for _, msg := range ValidateShortcutTemplate(template) {
		errs = append(errs, token+": "+msg)
	}
	return errs
}
