package house

import "git.home.luguber.info/inful/housebuilder/internal/foundation"

// Step identifies one construction step of a builder.
type Step int

const (
	StepWalls Step = iota + 1
	StepFloor
	StepRoof
)

var stepNames = map[Step]string{
	StepWalls: "walls",
	StepFloor: "floor",
	StepRoof:  "roof",
}

var stepNormalizer = foundation.NewNormalizer("step", map[string]Step{
	"walls": StepWalls,
	"floor": StepFloor,
	"roof":  StepRoof,
}, 0)

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the known steps.
func (s Step) Valid() bool {
	_, ok := stepNames[s]
	return ok
}

// Steps returns every step in canonical build order.
func Steps() []Step {
	return []Step{StepWalls, StepFloor, StepRoof}
}

// ParseStep converts a step name (case-insensitive) to a Step.
func ParseStep(name string) (Step, error) {
	return stepNormalizer.NormalizeWithError(name)
}
