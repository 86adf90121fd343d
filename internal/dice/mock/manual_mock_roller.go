package mockdice

import (
	"fmt"
	"sync"

	"github.com/tavernbot/dicebot/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined draws
type ManualMockRoller struct {
	mu        sync.Mutex
	draws     []int
	drawIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		draws: []int{},
	}
}

// SetNextDraw appends the next draw result
func (m *ManualMockRoller) SetNextDraw(draw int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = append(m.draws, draw)
}

// SetDraws sets the full draw sequence
func (m *ManualMockRoller) SetDraws(draws []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = draws
	m.drawIndex = 0
}

// Reset clears all draws and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = []int{}
	m.drawIndex = 0
}

// getNextDraw returns the next predetermined draw
func (m *ManualMockRoller) getNextDraw() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drawIndex >= len(m.draws) {
		return 0, fmt.Errorf("no more predetermined draws available (used %d of %d)", m.drawIndex, len(m.draws))
	}

	draw := m.draws[m.drawIndex]
	m.drawIndex++
	return draw, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(spec dice.Spec) (*dice.Roll, error) {
	if spec.Faces < 1 {
		return nil, fmt.Errorf("invalid dice faces %d", spec.Faces)
	}
	if spec.Repetitions < 1 {
		return nil, fmt.Errorf("invalid repetition count %d", spec.Repetitions)
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
			draw, err := m.getNextDraw()
			if err != nil {
				return nil, err
			}
			if draw < 1 || draw > spec.Faces {
				return nil, fmt.Errorf("invalid draw %d for d%d", draw, spec.Faces)
			}
			draws[j] = draw
		}

		value := draws[0]
		for _, draw := range draws[1:] {
			switch spec.Mode {
			case dice.Advantage:
				if draw > value {
					value = draw
				}
			case dice.Disadvantage:
				if draw < value {
					value = draw
				}
			}
		}

		groups[i] = draws
		total += value
	}

	return &dice.Roll{
		Spec:   spec,
		Groups: groups,
		Total:  total + spec.Modifier,
	}, nil
}
