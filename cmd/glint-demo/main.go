// glint-demo is an interactive showcase for the toast stage: keys fire
// toasts of every kind, the mouse dismisses them, and lifecycle events
// stream into a pane and a log file.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/glintui/glint"
	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/logging"
	"github.com/glintui/glint/render"
	"github.com/glintui/glint/styles"
	"github.com/glintui/glint/toast"
)

func main() {
	var (
		cfg       *config.Config
		logger    zerolog.Logger
		logCloser func()
	)

	var (
		logLevel string
		logFile  string
	)

	app := &cli.Command{
		Name:  "glint-demo",
		Usage: "Interactive showcase for glint toasts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal)",
				Sources:     cli.EnvVars("GLINT_LOG_LEVEL"),
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <state-dir>/glint/glint.log)",
				Sources:     cli.EnvVars("GLINT_LOG_FILE"),
				Destination: &logFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			file := logFile
			if file == "" {
				file = cfg.LogFile
			}
			if file == "" {
				if file, err = config.DefaultLogPath(); err != nil {
					return ctx, fmt.Errorf("resolve log path: %w", err)
				}
			}
			level := logLevel
			if cfg.LogLevel != "" && !c.IsSet("log-level") {
				level = cfg.LogLevel
			}

			logger, logCloser, err = logging.New(level, file)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}

			styles.SetIconStyle(cfg.IconStyle())
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(cfg, logger)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	stageLog := logging.Component(logger, "stage")
	buf := &eventBuffer{}

	theme := cfg.BuildTheme()
	stage := glint.New(
		glint.WithTheme(theme),
		glint.WithOnEvent(func(ev glint.Event) {
			buf.add(ev)
			stageLog.Info().
				Str("event", string(ev.Kind)).
				Int64("id", ev.ID).
				Str("kind", string(ev.Config.Kind)).
				Str("reason", string(ev.Reason)).
				Msg("toast lifecycle")
		}),
	)

	m := model{
		stage:  stage,
		cfg:    cfg,
		theme:  theme,
		events: buf,
		log:    logging.Component(logger, "demo"),
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	glint.Attach(p)
	defer glint.Detach()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// eventBuffer collects stage events for the on-screen pane. The observer
// and the view both run on the UI loop, so no locking is needed.
type eventBuffer struct {
	entries []eventEntry
}

type eventEntry struct {
	ev glint.Event
	at time.Time
}

const eventPaneSize = 8

func (b *eventBuffer) add(ev glint.Event) {
	b.entries = append(b.entries, eventEntry{ev: ev, at: time.Now()})
	if len(b.entries) > 64 {
		b.entries = b.entries[len(b.entries)-64:]
	}
}

// binding documents one demo key for the help pane.
type binding struct {
	key  string
	desc string
}

var bindings = []binding{
	{"s", "success"},
	{"f", "failure with title"},
	{"w", "warning"},
	{"i", "info"},
	{"c", "custom color"},
	{"t", "sticky top warning"},
	{"n", "zero duration"},
	{"b", "background job"},
	{"x", "dismiss newest"},
	{"q", "quit"},
}

type model struct {
	stage  glint.Model
	cfg    *config.Config
	theme  *styles.Theme
	events *eventBuffer
	log    zerolog.Logger

	newest glint.Handle
	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			return m.fire("Track saved to library")
		case "f":
			return m.fire("Could not reach the server",
				toast.WithKind(toast.KindFailure),
				toast.WithTitle("Sync failed"))
		case "w":
			return m.fire("Disk space is running low",
				toast.WithKind(toast.KindWarning))
		case "i":
			return m.fire("A new version is available",
				toast.WithKind(toast.KindInfo))
		case "c":
			return m.fire("Custom color, no icon",
				toast.WithCustomColor(m.theme.Primary),
				toast.WithIcon(false))
		case "t":
			return m.fire("Sticky until the timer runs out",
				toast.WithKind(toast.KindWarning),
				toast.WithPosition(toast.PositionTop),
				toast.WithDuration(5*time.Second),
				toast.WithDismissible(false))
		case "n":
			return m.fire("Blink and you miss it",
				toast.WithKind(toast.KindInfo),
				toast.WithDuration(0))
		case "b":
			// A worker thread reports back through the global dispatcher.
			go func() {
				time.Sleep(time.Second)
				glint.Successf("background job %s", "finished")
			}()
			m.log.Debug().Msg("background job started")
			return m, nil
		case "x":
			return m, m.newest.DismissCmd()
		}
	}

	var cmd tea.Cmd
	m.stage, cmd = m.stage.Update(msg)
	return m, cmd
}

// fire presents a toast with the configured defaults applied first, so
// per-key options override them.
func (m model) fire(message string, opts ...toast.Option) (tea.Model, tea.Cmd) {
	all := append(m.cfg.Options(), opts...)
	cmd, h := glint.Present(toast.New(message, all...))
	m.newest = h
	return m, cmd
}

func (m model) View() string {
	s := m.theme.S()

	var b strings.Builder
	left := "  " + styles.ApplyBoldGradient("glint", m.theme.Primary, m.theme.Secondary) +
		s.Muted.Render("  toast choreography demo")
	right := s.Muted.Render(fmt.Sprintf("live: %d  ", m.stage.Active()))
	b.WriteString(render.Row(left, right, m.width) + "\n")
	b.WriteString(s.Subtle.Render(render.Separator(max(m.width, 0))) + "\n\n")

	for _, k := range bindings {
		b.WriteString("  " + s.Title.Render(k.key) + "  " + s.Base.Render(k.desc) + "\n")
	}

	b.WriteString("\n  " + s.Subtle.Render("events") + "\n")

	// Shrink the pane on short terminals; everything above it is the
	// header, separator, blanks, bindings and the events heading.
	chrome := len(bindings) + 5
	pane := eventPaneSize
	if m.height > 0 && m.height-chrome < pane {
		pane = max(m.height-chrome, 0)
	}
	entries := m.events.entries
	start := len(entries) - pane
	if start < 0 {
		start = 0
	}
	for i := len(entries) - 1; i >= start; i-- {
		e := entries[i]
		line := fmt.Sprintf("#%d %-9s %s", e.ev.ID, e.ev.Kind, humanize.Time(e.at))
		if e.ev.Reason != "" {
			line += " (" + string(e.ev.Reason) + ")"
		}
		b.WriteString("  " + s.Muted.Render(line) + "\n")
	}

	return m.stage.Overlay(b.String())
}
