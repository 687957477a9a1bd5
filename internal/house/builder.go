package house

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/logfields"
	"git.home.luguber.info/inful/housebuilder/internal/metrics"
)

// Builder is the construction capability a director drives.
//
// Every step appends exactly one part to the in-progress House and one page to
// the in-progress Documentation. GetHouse and GetDocumentation hand over the
// accumulated value and replace it with an empty one.
type Builder interface {
	BuildWalls()
	BuildFloor()
	BuildRoof()
	GetHouse() *House
	GetDocumentation() *Documentation
}

// Apply runs the builder method that corresponds to step s.
func Apply(b Builder, s Step) error {
	switch s {
	case StepWalls:
		b.BuildWalls()
	case StepFloor:
		b.BuildFloor()
	case StepRoof:
		b.BuildRoof()
	default:
		return errors.ValidationError("unknown build step").WithContext("step", int(s)).Build()
	}
	return nil
}

// BuilderOption configures a VariantBuilder.
type BuilderOption func(*VariantBuilder)

// WithLogger sets the logger used for step and hand-off debug output.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *VariantBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) BuilderOption {
	return func(b *VariantBuilder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// VariantBuilder is a Builder whose step content comes from a Variant table.
// Builders for different variants share this structure and differ only in the table.
type VariantBuilder struct {
	variant       Variant
	house         *House
	documentation *Documentation
	logger        *slog.Logger
	recorder      metrics.Recorder
}

var _ Builder = (*VariantBuilder)(nil)

// NewVariantBuilder validates v and returns a builder with an empty in-progress build.
// The table is copied; later changes to v do not affect the builder.
func NewVariantBuilder(v Variant, opts ...BuilderOption) (*VariantBuilder, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	b := &VariantBuilder{
		variant:  v.clone(),
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.reset()
	return b, nil
}

// NewWoodBuilder returns a builder for the Wood variant.
func NewWoodBuilder(opts ...BuilderOption) *VariantBuilder {
	return mustBuilder(wood, opts...)
}

// NewBrickBuilder returns a builder for the Brick variant.
func NewBrickBuilder(opts ...BuilderOption) *VariantBuilder {
	return mustBuilder(brick, opts...)
}

func mustBuilder(v Variant, opts ...BuilderOption) *VariantBuilder {
	b, err := NewVariantBuilder(v, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Variant returns a copy of the builder's material table.
func (b *VariantBuilder) Variant() Variant {
	return b.variant.clone()
}

// Reset abandons the in-progress build and starts an empty one.
func (b *VariantBuilder) Reset() {
	b.reset()
	b.recorder.IncHandoff(b.variant.Name, metrics.HandoffReset)
	b.logger.Debug("Builder reset", logfields.Variant(b.variant.Name))
}

func (b *VariantBuilder) reset() {
	b.house = &House{}
	b.documentation = &Documentation{}
}

func (b *VariantBuilder) BuildWalls() { b.add(StepWalls) }
func (b *VariantBuilder) BuildFloor() { b.add(StepFloor) }
func (b *VariantBuilder) BuildRoof() { b.add(StepRoof) }

func (b *VariantBuilder) add(s Step) {
	e := b.variant.Table[s]
	b.house.Parts = append(b.house.Parts, e.Part)
	b.documentation.Pages = append(b.documentation.Pages, e.Page)
	b.recorder.IncStep(b.variant.Name, s.String())
	b.logger.LogAttrs(context.Background(), slog.LevelDebug, "Step applied",
		logfields.Variant(b.variant.Name),
		logfields.Step(s.String()),
		logfields.Parts(b.house.Len()),
		logfields.Pages(b.documentation.Len()))
}

// GetHouse hands over the accumulated House and starts a new empty one.
func (b *VariantBuilder) GetHouse() *House {
	result := b.house
	b.house = &House{}
	b.recorder.IncHandoff(b.variant.Name, metrics.HandoffHouse)
	b.logger.Debug("House handed over", logfields.Variant(b.variant.Name), logfields.Parts(result.Len()))
	return result
}

// GetDocumentation hands over the accumulated Documentation and starts a new empty one.
func (b *VariantBuilder) GetDocumentation() *Documentation {
	result := b.documentation
	b.documentation = &Documentation{}
	b.recorder.IncHandoff(b.variant.Name, metrics.HandoffDocumentation)
	b.logger.Debug("Documentation handed over", logfields.Variant(b.variant.Name), logfields.Pages(result.Len()))
	return result
}
