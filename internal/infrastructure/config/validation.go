package config

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"

	domainvalidation "github.com/bnema/bangsearch/internal/domain/validation"
)

var schemeRE = regexp.MustCompile(`^[a-z][a-z0-9+.-]*$`)

// validateConfig performs comprehensive validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Server.ListenAddr); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"server.listen_addr must be host:port (got: %q)", config.Server.ListenAddr,
		))
	}
	if config.Server.BaseURL != "" {
		u, err := url.Parse(config.Server.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			validationErrors = append(validationErrors, "server.base_url must be an absolute http(s) URL")
		}
	}
	if config.Server.ShutdownTimeoutSec < 0 {
		validationErrors = append(validationErrors, "server.shutdown_timeout_sec must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateSearch(config *Config) []string {
	if config.Search.FallbackEngine == "" {
		return nil
	}
	var validationErrors []string
	for _, msg := range domainvalidation.ValidateShortcutTemplate(config.Search.FallbackEngine) {
		validationErrors = append(validationErrors, "search.fallback_engine: "+msg)
	}
	return validationErrors
}

func validateNavigation(config *Config) []string {
	var validationErrors []string
	if len(config.Navigation.AllowedSchemes) == 0 {
		validationErrors = append(validationErrors, "navigation.allowed_schemes cannot be empty")
	}
	for _, s := range config.Navigation.AllowedSchemes {
		if !schemeRE.MatchString(s) {
			validationErrors = append(validationErrors, fmt.Sprintf("navigation.allowed_schemes: invalid scheme %q", s))
		}
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidatePalette("appearance.palette", []domainvalidation.PaletteColor{
		{Key: "background", Value: p.Background},
		{Key: "surface", Value: p.Surface},
		{Key: "surface_variant", Value: p.SurfaceVariant},
		{Key: "text", Value: p.Text},
		{Key: "muted", Value: p.Muted},
		{Key: "accent", Value: p.Accent},
		{Key: "border", Value: p.Border},
	})
}
