package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller on the shared math/rand source
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(spec Spec) (*Roll, error) {
	if spec.Faces < 1 {
		return nil, errors.New("invalid dice faces")
	}
	if spec.Repetitions < 1 {
		return nil, errors.New("invalid repetition count")
	}

	groups := make([][]int, spec.Repetitions)
	total := 0

	for i := range groups {
		count := spec.AdvantageDice
		if count < 1 {
			count = 1
		}

		draws := make([]int, count)
		for j := range draws {
			draws[j] = rand.Intn(spec.Faces) + 1
		}

		groups[i] = draws
		total += chosen(spec.Mode, draws)
	}

	return &Roll{
		Spec:   spec,
		Groups: groups,
		Total:  total + spec.Modifier,
	}, nil
}
