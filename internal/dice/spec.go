// Package dice implements the roll expression grammar, its evaluator and
// the chat-visible result formatting.
package dice

// AdvantageMode selects how simultaneous draws within one repetition
// collapse into a single value.
type AdvantageMode int

const (
	// AdvantageNone rolls a single die per repetition.
	AdvantageNone AdvantageMode = iota

	// Advantage throws several dice at once and keeps the highest.
	Advantage

	// Disadvantage throws several dice at once and keeps the lowest.
	Disadvantage
)

// Spec is one atomic roll request.
type Spec struct {
	// Repetitions is the number of independent roll events.
	Repetitions int

	// Faces is the die face count.
	Faces int

	// Modifier is added once to the summed result.
	Modifier int

	// Mode selects advantage/disadvantage handling.
	Mode AdvantageMode

	// AdvantageDice is the number of dice thrown at once per repetition.
	// Zero when Mode is AdvantageNone.
	AdvantageDice int
}

// Roll is the evaluated outcome of a single Spec.
type Roll struct {
	Spec Spec

	// Groups holds the raw draws, one inner slice per repetition.
	Groups [][]int

	// Total is the sum of each repetition's chosen value plus the modifier.
	Total int
}

// Outcome is the parse result for a full command body.
type Outcome struct {
	Specs []Spec

	// Leftover is the space-joined text of tokens that matched no grammar
	// rule, in input order.
	Leftover string
}

// chosen collapses one repetition's draws according to the advantage mode.
func chosen(mode AdvantageMode, draws []int) int {
	value := draws[0]
	for _, d := range draws[1:] {
		switch mode {
		case Advantage:
			if d > value {
				value = d
			}
		case Disadvantage:
			if d < value {
				value = d
			}
		}
	}
	return value
}
