package validation

import (
	"fmt"
	"regexp"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// PaletteColor is one TUI palette entry, keyed as in the config file.
type PaletteColor struct {
	Key   string
	Value string
}

// ValidatePalette checks every entry of the appearance.palette table.
// Messages read "<prefix>.<key>: ...", in the order the entries are given.
func ValidatePalette(prefix string, colors []PaletteColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, fmt.Sprintf("%s.%s: %q is not a #RRGGBB color", prefix, c.Key, c.Value))
		}
	}
	return errs
}
