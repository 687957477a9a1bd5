package director

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/house"
	"git.home.luguber.info/inful/housebuilder/internal/metrics"
)

func TestDirector_FullWoodenHouse(t *testing.T) {
	b := house.NewWoodBuilder()
	d := New()
	d.SetBuilder(b)

	require.NoError(t, d.BuildFullHouse())

	require.Equal(t, []string{"Wooden Walls", "Wooden Floor", "Wooden Roof"}, b.GetHouse().Parts)
	require.Equal(t, []string{"Wooden Walls Description", "Wooden Floor Description", "Wooden Roof Description"}, b.GetDocumentation().Pages)
}

func TestDirector_FullBrickHouse(t *testing.T) {
	b := house.NewBrickBuilder()
	d := New()
	d.SetBuilder(b)

	require.NoError(t, d.BuildFullHouse())
	require.Equal(t, []string{"Brick Walls", "Concrete Floor", "Brick Roof"}, b.GetHouse().Parts)
}

func TestDirector_MinimalWoodenHouse(t *testing.T) {
	b := house.NewWoodBuilder()
	d := New()
	d.SetBuilder(b)

	require.NoError(t, d.BuildMinimalHouse())
	require.Equal(t, []string{"Wooden Walls"}, b.GetHouse().Parts)
	require.Equal(t, []string{"Wooden Walls Description"}, b.GetDocumentation().Pages)
}

func TestDirector_VariantIsolation(t *testing.T) {
	wood, brick := house.NewWoodBuilder(), house.NewBrickBuilder()
	d := New()

	d.SetBuilder(wood)
	require.NoError(t, d.BuildFullHouse())
	d.SetBuilder(brick)
	require.NoError(t, d.BuildFullHouse())

	woodParts := wood.GetHouse().Parts
	brickParts := brick.GetHouse().Parts
	require.Len(t, woodParts, 3)
	require.Len(t, brickParts, 3)
	for _, p := range woodParts {
		assert.NotContains(t, brickParts, p)
	}
}

func TestDirector_SwappingBuilderDoesNotTouchPrevious(t *testing.T) {
	wood, brick := house.NewWoodBuilder(), house.NewBrickBuilder()
	d := New()

	d.SetBuilder(wood)
	require.NoError(t, d.BuildMinimalHouse())
	d.SetBuilder(brick)
	require.NoError(t, d.BuildMinimalHouse())
	require.Equal(t, brick, d.Builder())

	require.Equal(t, []string{"Wooden Walls"}, wood.GetHouse().Parts)
	require.Equal(t, []string{"Brick Walls"}, brick.GetHouse().Parts)
}

func TestDirector_NoBuilderIsInvalidState(t *testing.T) {
	d := New()

	for name, call := range map[string]func() error{
		"minimal": d.BuildMinimalHouse,
		"full":    d.BuildFullHouse,
		"step":    func() error { return d.BuildStep(house.StepRoof) },
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrNoBuilder))
			require.True(t, ferrors.HasCategory(err, ferrors.CategoryInvalidState))
		})
	}
}

func TestDirector_UnregisterWithNil(t *testing.T) {
	d := New()
	d.SetBuilder(house.NewWoodBuilder())
	d.SetBuilder(nil)
	require.ErrorIs(t, d.BuildFullHouse(), ErrNoBuilder)
}

func TestDirector_TypedNilBuilderIsUnregistered(t *testing.T) {
	d := New()
	d.SetBuilder(house.NewWoodBuilder())

	var b *house.VariantBuilder
	d.SetBuilder(b)

	require.True(t, d.Builder() == nil)
	require.NotPanics(t, func() {
		require.ErrorIs(t, d.BuildMinimalHouse(), ErrNoBuilder)
		require.ErrorIs(t, d.BuildStep(house.StepWalls), ErrNoBuilder)
	})
}

func TestDirector_InvalidProfileBuildsNothing(t *testing.T) {
	b := house.NewWoodBuilder()
	d := New()
	d.SetBuilder(b)

	err := d.Build(Profile{Name: "broken", Steps: []house.Step{house.StepWalls, house.Step(9)}})
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	require.Empty(t, b.GetHouse().Parts)
}

func TestDirector_BuildStep(t *testing.T) {
	b := house.NewBrickBuilder()
	d := New()
	d.SetBuilder(b)

	require.NoError(t, d.BuildStep(house.StepFloor))
	require.NoError(t, d.BuildStep(house.StepFloor))
	require.Equal(t, []string{"Concrete Floor", "Concrete Floor"}, b.GetHouse().Parts)
}

func TestDirector_LogsBuildID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := New(WithLogger(logger))
	d.SetBuilder(house.NewWoodBuilder())

	require.NoError(t, d.BuildFullHouse())
	require.Contains(t, buf.String(), "build_id=")
	require.Contains(t, buf.String(), "profile=full")
}

func TestDirector_RecordsProfileOutcomes(t *testing.T) {
	reg := prom.NewRegistry()
	d := New(WithRecorder(metrics.NewPrometheusRecorder(reg)))

	require.Error(t, d.BuildFullHouse())
	d.SetBuilder(house.NewWoodBuilder())
	require.NoError(t, d.BuildFullHouse())

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	require.Contains(t, out, `housebuilder_profile_results_total{profile="full",result="failed"} 1`)
	require.Contains(t, out, `housebuilder_profile_results_total{profile="full",result="success"} 1`)
}

func TestLookupProfile(t *testing.T) {
	p, err := LookupProfile("full")
	require.NoError(t, err)
	require.Equal(t, ProfileFull, p)

	p.Steps[0] = house.StepRoof
	require.Equal(t, house.StepWalls, ProfileFull.Steps[0])

	_, err = LookupProfile("penthouse")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}
