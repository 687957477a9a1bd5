package house

import (
	"maps"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
)

// Entry is the pair of labels a step contributes: one house part and one documentation page.
type Entry struct {
	Part string
	Page string
}

// Variant is the material table of a concrete builder.
type Variant struct {
	Name  string
	Table map[Step]Entry
}

// Entry returns the labels for step s.
func (v Variant) Entry(s Step) (Entry, bool) {
	e, ok := v.Table[s]
	return e, ok
}

// Validate checks that the variant is named and has non-empty labels for every step.
func (v Variant) Validate() error {
	if v.Name == "" {
		return errors.ValidationError("variant name is required").Build()
	}
	for _, s := range Steps() {
		e, ok := v.Table[s]
		if !ok {
			return errors.ValidationError("variant has no entry for step").
				WithContext("variant", v.Name).
				WithContext("step", s.String()).
				Build()
		}
		if e.Part == "" || e.Page == "" {
			return errors.ValidationError("variant entry has empty labels").
				WithContext("variant", v.Name).
				WithContext("step", s.String()).
				Build()
		}
	}
	return nil
}

func (v Variant) clone() Variant {
	return Variant{Name: v.Name, Table: maps.Clone(v.Table)}
}

var wood = Variant{
	Name: "wood",
	Table: map[Step]Entry{
		StepWalls: {Part: "Wooden Walls", Page: "Wooden Walls Description"},
		StepFloor: {Part: "Wooden Floor", Page: "Wooden Floor Description"},
		StepRoof:  {Part: "Wooden Roof", Page: "Wooden Roof Description"},
	},
}

var brick = Variant{
	Name: "brick",
	Table: map[Step]Entry{
		StepWalls: {Part: "Brick Walls", Page: "Brick Walls Description"},
		StepFloor: {Part: "Concrete Floor", Page: "Concrete Floor Description"},
		StepRoof:  {Part: "Brick Roof", Page: "Brick Roof Description"},
	},
}

// Wood returns the all-timber variant.
func Wood() Variant { return wood.clone() }

// Brick returns the masonry variant. Its floor is poured concrete, not brick.
func Brick() Variant { return brick.clone() }
