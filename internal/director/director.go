// Package director sequences builder steps into named build profiles.
package director

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/house"
	"git.home.luguber.info/inful/housebuilder/internal/logfields"
	"git.home.luguber.info/inful/housebuilder/internal/metrics"
)

// ErrNoBuilder is returned by every build method while no builder is registered.
var ErrNoBuilder = errors.InvalidStateError("no builder registered").Build()

// Director drives whichever Builder is currently registered. It does not own
// the builder: callers keep it and retrieve the results from it directly.
type Director struct {
	builder  house.Builder
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Director.
type Option func(*Director)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Director) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(d *Director) {
		if r != nil {
			d.recorder = r
		}
	}
}

// New returns a Director with no builder registered.
func New(opts ...Option) *Director {
	d := &Director{
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetBuilder registers b as the current builder, replacing any previous one.
// Passing nil, including a nil *house.VariantBuilder, unregisters the builder.
func (d *Director) SetBuilder(b house.Builder) {
	if vb, ok := b.(*house.VariantBuilder); ok && vb == nil {
		b = nil
	}
	d.builder = b
}

// Builder returns the currently registered builder, or nil.
func (d *Director) Builder() house.Builder {
	return d.builder
}

// BuildMinimalHouse builds walls only.
func (d *Director) BuildMinimalHouse() error {
	return d.Build(ProfileMinimal)
}

// BuildFullHouse builds walls, floor and roof, in that order.
func (d *Director) BuildFullHouse() error {
	return d.Build(ProfileFull)
}

// BuildStep applies a single step to the current builder.
func (d *Director) BuildStep(s house.Step) error {
	if d.builder == nil {
		return ErrNoBuilder.WithContext("step", s.String())
	}
	return house.Apply(d.builder, s)
}

// Build runs every step of p against the current builder. Steps are
// validated before any is applied, so a failing profile builds nothing.
func (d *Director) Build(p Profile) error {
	if d.builder == nil {
		d.recorder.IncProfileResult(p.Name, metrics.ResultFailed)
		return ErrNoBuilder.WithContext("profile", p.Name)
	}
	for _, s := range p.Steps {
		if !s.Valid() {
			d.recorder.IncProfileResult(p.Name, metrics.ResultFailed)
			return errors.ValidationError("profile contains an unknown step").
				WithContext("profile", p.Name).
				WithContext("step", int(s)).
				Build()
		}
	}

	buildID := uuid.NewString()
	start := time.Now()
	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "Building profile",
		logfields.BuildID(buildID),
		logfields.Profile(p.Name))

	for _, s := range p.Steps {
		if err := house.Apply(d.builder, s); err != nil {
			d.recorder.IncProfileResult(p.Name, metrics.ResultFailed)
			return err
		}
	}

	elapsed := time.Since(start)
	d.recorder.ObserveProfileDuration(p.Name, elapsed)
	d.recorder.IncProfileResult(p.Name, metrics.ResultSuccess)
	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "Profile built",
		logfields.BuildID(buildID),
		logfields.Profile(p.Name),
		slog.Int("steps", len(p.Steps)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return nil
}
