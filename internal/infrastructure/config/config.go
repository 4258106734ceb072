// Package config loads, validates, watches and writes the bangsearch
// configuration file.
package config

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config is the complete bangsearch configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" toml:"server"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging"`
	Search     SearchConfig     `mapstructure:"search" toml:"search"`
	Shortcuts  ShortcutsConfig  `mapstructure:"shortcuts" toml:"shortcuts"`
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance"`
}

// ServerConfig configures the HTTP redirect service.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" toml:"listen_addr" comment:"Address the redirect service listens on"`
	// BaseURL is the externally visible URL used in opensearch.xml.
	// Empty derives it from ListenAddr.
	BaseURL            string `mapstructure:"base_url" toml:"base_url" comment:"Public URL of the service (empty = http://<listen_addr>)"`
	ShutdownTimeoutSec int    `mapstructure:"shutdown_timeout_sec" toml:"shutdown_timeout_sec"`
}

// DatabaseConfig configures the override and statistics store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" comment:"SQLite file (empty = XDG data dir)"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" comment:"trace, debug, info, warn, error"`
	Format string `mapstructure:"format" toml:"format" comment:"console or json"`
}

// SearchConfig configures what happens when no shortcut matches.
type SearchConfig struct {
	FallbackEngine string `mapstructure:"fallback_engine" toml:"fallback_engine" comment:"Template used when no bang matches (empty = 404)"`
	RecordStats    bool   `mapstructure:"record_stats" toml:"record_stats"`
}

// ShortcutsConfig configures the packaged shortcut definitions.
type ShortcutsConfig struct {
	PackagedFile string `mapstructure:"packaged_file" toml:"packaged_file" comment:"Alternative JSON definitions (empty = built-in list)"`
}

// NavigationConfig configures how destinations are opened locally.
type NavigationConfig struct {
	Command        string   `mapstructure:"command" toml:"command" comment:"Opener command (empty = xdg-open / open)"`
	AllowedSchemes []string `mapstructure:"allowed_schemes" toml:"allowed_schemes"`
}

// AppearanceConfig configures the terminal UI.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette"`
}

// ColorPalette holds the TUI colors as #RRGGBB strings.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background"`
	Surface        string `mapstructure:"surface" toml:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text"`
	Muted          string `mapstructure:"muted" toml:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent"`
	Border         string `mapstructure:"border" toml:"border"`
}

// ResolvedBaseURL returns BaseURL, or one derived from ListenAddr.
func (s ServerConfig) ResolvedBaseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return "http://" + s.ListenAddr
}
