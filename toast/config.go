package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/styles"
)

// Kind selects a toast's preset color scheme and icon.
type Kind = styles.Kind

const (
	KindSuccess = styles.KindSuccess
	KindFailure = styles.KindFailure
	KindWarning = styles.KindWarning
	KindInfo    = styles.KindInfo
	KindCustom  = styles.KindCustom
)

// Position anchors a toast to an edge of the surface.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

const (
	// DefaultDuration is how long a toast stays once settled.
	DefaultDuration = 3 * time.Second

	// DefaultMaxWidth is the box width at full scale, in cells.
	DefaultMaxWidth = 48
)

// Config describes one toast. It is immutable once normalized; the
// instance that consumes it owns it exclusively.
type Config struct {
	Title       string
	Message     string
	Kind        Kind
	Position    Position
	CustomColor lipgloss.Color
	Duration    time.Duration
	ShowIcon    bool
	Dismissible bool
	OnDismiss   func()
	MaxWidth    int
}

// Option configures a toast at construction.
type Option func(*Config)

// WithTitle adds a bold headline above the message.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithKind selects the preset color scheme and icon.
func WithKind(k Kind) Option {
	return func(c *Config) { c.Kind = k }
}

// WithPosition anchors the toast to the top or bottom edge.
func WithPosition(p Position) Option {
	return func(c *Config) { c.Position = p }
}

// WithDuration sets how long the toast stays once settled. Zero and
// negative values dismiss the toast as soon as its entrance completes.
func WithDuration(d time.Duration) Option {
	return func(c *Config) { c.Duration = d }
}

// WithCustomColor sets the background for KindCustom toasts.
func WithCustomColor(color lipgloss.Color) Option {
	return func(c *Config) {
		c.Kind = KindCustom
		c.CustomColor = color
	}
}

// WithIcon toggles the kind icon.
func WithIcon(show bool) Option {
	return func(c *Config) { c.ShowIcon = show }
}

// WithDismissible toggles tap-to-dismiss.
func WithDismissible(dismissible bool) Option {
	return func(c *Config) { c.Dismissible = dismissible }
}

// WithOnDismiss registers a completion callback. It fires exactly once,
// whichever removal path runs first.
func WithOnDismiss(fn func()) Option {
	return func(c *Config) { c.OnDismiss = fn }
}

// WithMaxWidth overrides the box width at full scale.
func WithMaxWidth(w int) Option {
	return func(c *Config) { c.MaxWidth = w }
}

// New builds a Config with the package defaults applied.
func New(message string, opts ...Option) Config {
	cfg := Config{
		Message:     message,
		Kind:        KindSuccess,
		Position:    PositionBottom,
		Duration:    DefaultDuration,
		ShowIcon:    true,
		Dismissible: true,
		MaxWidth:    DefaultMaxWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Normalized()
}

// Normalized clamps and defaults invalid fields instead of failing:
// negative durations become zero, unknown positions and kinds fall back
// to the defaults, and a non-positive width takes the package default.
func (c Config) Normalized() Config {
	if c.Duration < 0 {
		c.Duration = 0
	}
	if c.MaxWidth <= 0 {
		c.MaxWidth = DefaultMaxWidth
	}
	if c.Position != PositionTop && c.Position != PositionBottom {
		c.Position = PositionBottom
	}
	if c.Kind == "" {
		c.Kind = KindSuccess
	}
	return c
}
