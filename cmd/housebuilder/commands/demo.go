package commands

import (
	"context"

	"git.home.luguber.info/inful/housebuilder/internal/demo"
)

// DemoCmd implements the 'demo' command.
type DemoCmd struct {
	Format  string `short:"f" help:"Output format: text, markdown, html (overrides output.format)"`
	Metrics bool   `help:"Print Prometheus metrics after the run"`
}

func (d *DemoCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	format, err := resolveFormat(d.Format, cfg)
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	recorder, reg := newRecorder(d.Metrics)
	runner := demo.NewRunner(catalog, demo.WithFormat(format), demo.WithRecorder(recorder))
	if err := runner.Run(context.Background(), g.Out, cfg.Scenarios()); err != nil {
		return err
	}
	return writeMetrics(g.Out, reg)
}
