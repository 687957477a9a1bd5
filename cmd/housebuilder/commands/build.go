package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/housebuilder/internal/director"
	"git.home.luguber.info/inful/housebuilder/internal/house"
	"git.home.luguber.info/inful/housebuilder/internal/logfields"
	"git.home.luguber.info/inful/housebuilder/internal/render"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Variant string   `short:"b" help:"Builder variant" default:"wood"`
	Profile string   `short:"p" help:"Build profile: minimal or full" default:"full"`
	Steps   []string `name:"step" short:"s" help:"Explicit step sequence (walls, floor, roof); overrides --profile"`
	Format  string   `short:"f" help:"Output format: text, markdown, html (overrides output.format)"`
	Metrics bool     `help:"Print Prometheus metrics after the build"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	format, err := resolveFormat(b.Format, cfg)
	if err != nil {
		return err
	}
	profile, err := b.profile()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	recorder, reg := newRecorder(b.Metrics)
	builder, err := catalog.NewBuilder(b.Variant, house.WithRecorder(recorder))
	if err != nil {
		return err
	}
	d := director.New(director.WithRecorder(recorder))
	d.SetBuilder(builder)
	if err := d.Build(profile); err != nil {
		return err
	}

	result := render.Result{
		Variant:       b.Variant,
		Profile:       profile.Name,
		House:         builder.GetHouse(),
		Documentation: builder.GetDocumentation(),
	}
	slog.Info("House built",
		logfields.Variant(b.Variant),
		logfields.Profile(profile.Name),
		logfields.Parts(result.House.Len()),
		logfields.Format(string(format)))

	if err := render.Write(g.Out, format, result); err != nil {
		return err
	}
	return writeMetrics(g.Out, reg)
}

// profile resolves --step or --profile into a director profile.
func (b *BuildCmd) profile() (director.Profile, error) {
	if len(b.Steps) == 0 {
		return director.LookupProfile(b.Profile)
	}
	p := director.Profile{Name: "custom"}
	for _, name := range b.Steps {
		s, err := house.ParseStep(name)
		if err != nil {
			return director.Profile{}, err
		}
		p.Steps = append(p.Steps, s)
	}
	return p, nil
}
