package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/glintui/glint/styles"
	"github.com/glintui/glint/toast"
)

const appName = "glint"

type Config struct {
	Icons    string        `koanf:"icons"`    // "nerd", "unicode", or "ascii"
	Position string        `koanf:"position"` // "top" or "bottom"
	Duration time.Duration `koanf:"duration"` // e.g. "3s"; <=0 keeps the built-in default
	MaxWidth int           `koanf:"max_width"`

	LogLevel string `koanf:"log_level"` // debug, info, warn, error
	LogFile  string `koanf:"log_file"`  // empty means <state-dir>/glint/glint.log

	Theme ThemeConfig `koanf:"theme"`
}

// ThemeConfig overrides individual kind colors with hex values. Empty
// fields keep the built-in palette.
type ThemeConfig struct {
	Success string `koanf:"success"`
	Failure string `koanf:"failure"`
	Warning string `koanf:"warning"`
	Info    string `koanf:"info"`
	Surface string `koanf:"surface"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/glint/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// IconStyle maps the configured glyph set name, defaulting to unicode.
func (c *Config) IconStyle() styles.IconStyle {
	switch c.Icons {
	case "nerd":
		return styles.IconsNerd
	case "ascii":
		return styles.IconsASCII
	default:
		return styles.IconsUnicode
	}
}

// DefaultPosition returns the configured anchor edge, defaulting to
// bottom.
func (c *Config) DefaultPosition() toast.Position {
	if c.Position == "top" {
		return toast.PositionTop
	}
	return toast.PositionBottom
}

// DefaultDuration returns the configured display time with the built-in
// default applied.
func (c *Config) DefaultDuration() time.Duration {
	if c.Duration <= 0 {
		return toast.DefaultDuration
	}
	return c.Duration
}

// Options returns the toast options implied by the configured defaults,
// for callers building configs on top of them.
func (c *Config) Options() []toast.Option {
	opts := []toast.Option{
		toast.WithPosition(c.DefaultPosition()),
		toast.WithDuration(c.DefaultDuration()),
	}
	if c.MaxWidth > 0 {
		opts = append(opts, toast.WithMaxWidth(c.MaxWidth))
	}
	return opts
}

// BuildTheme applies the configured color overrides onto the default
// palette.
func (c *Config) BuildTheme() *styles.Theme {
	th := *styles.Default()
	apply := func(dst *lipgloss.Color, hex string) {
		if hex != "" {
			*dst = lipgloss.Color(hex)
		}
	}
	apply(&th.Success, c.Theme.Success)
	apply(&th.Failure, c.Theme.Failure)
	apply(&th.Warning, c.Theme.Warning)
	apply(&th.Info, c.Theme.Info)
	apply(&th.Surface, c.Theme.Surface)
	return &th
}

// DefaultLogPath resolves the log file location under the XDG state
// directory, creating parent directories as needed.
func DefaultLogPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, "glint.log"))
}
