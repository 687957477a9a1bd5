package house

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, []string{"brick", "wood"}, c.Names())

	v, err := c.Lookup("brick")
	require.NoError(t, err)
	require.Equal(t, "Concrete Floor", v.Table[StepFloor].Part)
}

func TestCatalog_LookupUnknown(t *testing.T) {
	_, err := DefaultCatalog().Lookup("straw")
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	_, err = DefaultCatalog().NewBuilder("straw")
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestCatalog_RegisterRejectsDuplicatesAndInvalid(t *testing.T) {
	c := DefaultCatalog()

	err := c.Register(Wood())
	require.True(t, errors.HasCategory(err, errors.CategoryAlreadyExists))

	err = c.Register(Variant{Name: ""})
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))

	_, err = NewCatalog(Wood(), Wood())
	require.Error(t, err)
}

func TestCatalog_LookupReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	v, err := c.Lookup("wood")
	require.NoError(t, err)
	v.Table[StepRoof] = Entry{Part: "Tin Roof", Page: "Tin Roof Description"}

	again, err := c.Lookup("wood")
	require.NoError(t, err)
	require.Equal(t, "Wooden Roof", again.Table[StepRoof].Part)
}

func TestVariantIsolation(t *testing.T) {
	labels := func(v Variant) map[string]bool {
		out := map[string]bool{}
		for _, e := range v.Table {
			out[e.Part] = true
			out[e.Page] = true
		}
		return out
	}
	woodLabels, brickLabels := labels(Wood()), labels(Brick())
	for l := range woodLabels {
		require.False(t, brickLabels[l], "label %q shared between variants", l)
	}
}

func TestParseStep(t *testing.T) {
	for _, s := range Steps() {
		got, err := ParseStep(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	got, err := ParseStep(" ROOF ")
	require.NoError(t, err)
	require.Equal(t, StepRoof, got)

	_, err = ParseStep("chimney")
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
	require.Equal(t, "unknown", Step(0).String())
	require.False(t, Step(0).Valid())
}

func TestBuiltinVariantsAreCopies(t *testing.T) {
	v := Wood()
	v.Table[StepWalls] = Entry{Part: "Tin Walls", Page: "Tin Walls Description"}
	Brick().Table[StepFloor] = Entry{Part: "Brick Floor", Page: "Brick Floor Description"}

	b := NewWoodBuilder()
	b.BuildWalls()
	require.Equal(t, []string{"Wooden Walls"}, b.GetHouse().Parts)
	require.Equal(t, "Wooden Walls", Wood().Table[StepWalls].Part)

	brick, err := DefaultCatalog().Lookup("brick")
	require.NoError(t, err)
	require.Equal(t, "Concrete Floor", brick.Table[StepFloor].Part)
}
