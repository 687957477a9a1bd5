package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/housebuilder/internal/config"
	"git.home.luguber.info/inful/housebuilder/internal/logfields"
	"git.home.luguber.info/inful/housebuilder/internal/metrics"
	"git.home.luguber.info/inful/housebuilder/internal/render"
)

// Global carries state shared by every subcommand.
type Global struct {
	Out io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (defaults are used when it does not exist)" default:"housebuilder.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Demo     DemoCmd     `cmd:"" default:"1" help:"Run the configured demonstration builds (default)"`
	Build    BuildCmd    `cmd:"" help:"Build a single house with one variant and profile"`
	Variants VariantsCmd `cmd:"" help:"List available builder variants and their material tables"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the root config file or falls back to defaults.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, found, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, err
	}
	if found {
		slog.Debug("Configuration loaded", logfields.Path(root.Config))
	}
	return cfg, nil
}

// resolveFormat applies the --format override on top of the configured format.
func resolveFormat(flag string, cfg *config.Config) (render.Format, error) {
	if flag == "" {
		return cfg.Format(), nil
	}
	return render.ParseFormat(flag)
}

// newRecorder returns a Prometheus recorder and its registry when enabled,
// or a NoopRecorder and nil otherwise.
func newRecorder(enabled bool) (metrics.Recorder, *prom.Registry) {
	if !enabled {
		return metrics.NoopRecorder{}, nil
	}
	reg := prom.NewRegistry()
	return metrics.NewPrometheusRecorder(reg), reg
}

// writeMetrics dumps reg after a run; a nil reg is a no-op.
func writeMetrics(w io.Writer, reg *prom.Registry) error {
	if reg == nil {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return metrics.WriteText(w, reg)
}
