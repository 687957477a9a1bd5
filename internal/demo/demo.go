// Package demo runs a fixed sequence of builds and prints each result.
package demo

import (
	"context"
	"io"
	"log/slog"

	"git.home.luguber.info/inful/housebuilder/internal/director"
	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/house"
	"git.home.luguber.info/inful/housebuilder/internal/logfields"
	"git.home.luguber.info/inful/housebuilder/internal/metrics"
	"git.home.luguber.info/inful/housebuilder/internal/render"
)

// Scenario is one titled build in a demonstration run.
type Scenario struct {
	Title   string
	Variant string
	Profile string
}

// DefaultScenarios is the classic three-house demonstration.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Title: "Building Wooden House:", Variant: house.Wood().Name, Profile: director.ProfileFull.Name},
		{Title: "Building Brick House:", Variant: house.Brick().Name, Profile: director.ProfileFull.Name},
		{Title: "Building Minimal Wooden House:", Variant: house.Wood().Name, Profile: director.ProfileMinimal.Name},
	}
}

// Runner executes scenarios with a single Director. Builders are created on
// first use per variant and reused by later scenarios of the same variant.
type Runner struct {
	catalog  *house.Catalog
	format   render.Format
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Runner.
type Option func(*Runner)

// WithFormat selects the output format. The default is plain text.
func WithFormat(f render.Format) Option {
	return func(r *Runner) { r.format = f }
}

// WithLogger sets the logger passed down to builders and the director.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder passed down to builders and the director.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// NewRunner returns a Runner that resolves variants from catalog.
func NewRunner(catalog *house.Catalog, opts ...Option) *Runner {
	r := &Runner{
		catalog:  catalog,
		format:   render.FormatText,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Validate resolves every scenario's variant and profile without building anything.
func (r *Runner) Validate(scenarios []Scenario) error {
	for _, sc := range scenarios {
		if _, err := r.catalog.Lookup(sc.Variant); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "scenario references unknown variant").
				WithContext("scenario", sc.Title).
				Build()
		}
		if _, err := director.LookupProfile(sc.Profile); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "scenario references unknown profile").
				WithContext("scenario", sc.Title).
				Build()
		}
	}
	return nil
}

// Run builds every scenario in order and writes its title and result to w.
// Scenarios are separated by a blank line.
func (r *Runner) Run(ctx context.Context, w io.Writer, scenarios []Scenario) error {
	if err := r.Validate(scenarios); err != nil {
		return err
	}

	d := director.New(director.WithLogger(r.logger), director.WithRecorder(r.recorder))
	builders := make(map[string]*house.VariantBuilder)

	for i, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, ok := builders[sc.Variant]
		if !ok {
			var err error
			b, err = r.catalog.NewBuilder(sc.Variant, house.WithLogger(r.logger), house.WithRecorder(r.recorder))
			if err != nil {
				return err
			}
			builders[sc.Variant] = b
		}
		profile, err := director.LookupProfile(sc.Profile)
		if err != nil {
			return err
		}

		prefix := ""
		if i > 0 {
			prefix = "\n"
		}
		if _, err := io.WriteString(w, prefix+sc.Title+"\n"); err != nil {
			return errors.WrapError(err, errors.CategoryRender, "write scenario title").Build()
		}

		d.SetBuilder(b)
		if err := d.Build(profile); err != nil {
			return err
		}
		result := render.Result{
			Variant:       sc.Variant,
			Profile:       profile.Name,
			House:         b.GetHouse(),
			Documentation: b.GetDocumentation(),
		}
		r.logger.Info("Scenario built",
			logfields.Scenario(sc.Title),
			logfields.Variant(sc.Variant),
			logfields.Profile(profile.Name),
			logfields.Parts(result.House.Len()))

		if err := render.Write(w, r.format, result); err != nil {
			return err
		}
	}
	return nil
}
