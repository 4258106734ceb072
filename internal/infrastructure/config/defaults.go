package config

const (
	defaultListenAddr      = "127.0.0.1:7777"
	defaultShutdownTimeout = 5
	defaultFallbackEngine  = "https://duckduckgo.com/?q=%s"
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:         defaultListenAddr,
			ShutdownTimeoutSec: defaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Search: SearchConfig{
			FallbackEngine: defaultFallbackEngine,
			RecordStats:    true,
		},
		Navigation: NavigationConfig{
			AllowedSchemes: []string{"http", "https"},
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultPalette returns the dark TUI palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}
