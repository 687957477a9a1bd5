package director

import (
	"slices"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/house"
)

// Profile is a named, ordered sequence of build steps.
type Profile struct {
	Name  string
	Steps []house.Step
}

var (
	// ProfileMinimal builds walls only.
	ProfileMinimal = Profile{Name: "minimal", Steps: []house.Step{house.StepWalls}}
	// ProfileFull builds walls, floor and roof in that order.
	ProfileFull = Profile{Name: "full", Steps: []house.Step{house.StepWalls, house.StepFloor, house.StepRoof}}
)

// Profiles returns the built-in profiles.
func Profiles() []Profile {
	return []Profile{ProfileMinimal, ProfileFull}
}

// LookupProfile returns the built-in profile called name.
func LookupProfile(name string) (Profile, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return Profile{Name: p.Name, Steps: slices.Clone(p.Steps)}, nil
		}
	}
	return Profile{}, errors.NotFoundError("unknown profile "+name).WithContext("profile", name).Build()
}
