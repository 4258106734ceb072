package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateShortcutToken(t *testing.T) {
	assert.Empty(t, ValidateShortcutToken("!w"))
	assert.Empty(t, ValidateShortcutToken("!wiki-fr"))
	assert.NotEmpty(t, ValidateShortcutToken(""))
	assert.NotEmpty(t, ValidateShortcutToken("!"))
	assert.NotEmpty(t, ValidateShortcutToken("w"))
	assert.NotEmpty(t, ValidateShortcutToken("!two words"))
	assert.NotEmpty(t, ValidateShortcutToken("!!w"))
}

func TestValidateShortcutTemplate(t *testing.T) {
	valid := []string{
		"https://example.com/search?q={q}",
		"https://example.com/search?q=%s",
		"https://example.com/s?q=",
		"https://example.com/s?x=1",
		"https://example.com/search",
	}
	for _, v := range valid {
		assert.Empty(t, ValidateShortcutTemplate(v), v)
	}

	invalid := []string{
		"",
		"example.com/search?q={q}",
		"https://exa mple.com/?q={q}",
		"/relative?q=",
	}
	for _, v := range invalid {
		assert.NotEmpty(t, ValidateShortcutTemplate(v), v)
	}
}

func TestValidateShortcut_PrefixesMessages(t *testing.T) {
	errs := ValidateShortcut("!x", "")
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0], "!x: ")
	}
}
