package dice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavernbot/dicebot/internal/dice"
	mockdice "github.com/tavernbot/dicebot/internal/dice/mock"
)

func TestRoll_Detail(t *testing.T) {
	tests := []struct {
		name  string
		token string
		draws []int
		want  string
	}{
		{
			name:  "single plain roll",
			token: "d8",
			draws: []int{6},
			want:  "d8[ 6 ] = 6",
		},
		{
			name:  "repetitions with modifier",
			token: "2d20+3",
			draws: []int{12, 15},
			want:  "2(d20 +3)[ 12 | 15 ] +3 = 30",
		},
		{
			name:  "negative modifier",
			token: "4d6-2",
			draws: []int{3, 1, 6, 2},
			want:  "4(d6 -2)[ 3 | 1 | 6 | 2 ] -2 = 10",
		},
		{
			name:  "advantage shows the draw group and chosen value",
			token: "d20a2",
			draws: []int{12, 15},
			want:  "d20[ (12 15)=15 ] = 15",
		},
		{
			name:  "disadvantage across repetitions",
			token: "2d20p2",
			draws: []int{12, 15, 9, 4},
			want:  "2(d20)[ (12 15)=12 | (9 4)=4 ] = 16",
		},
		{
			name:  "advantage with modifier",
			token: "d20a3+5",
			draws: []int{7, 19, 11},
			want:  "d20 +5[ (7 19 11)=19 ] +5 = 24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := dice.ParseExpression(tt.token)
			require.NoError(t, err)

			roller := mockdice.NewManualMockRoller()
			roller.SetDraws(tt.draws)

			roll, err := roller.Roll(spec)
			require.NoError(t, err)

			assert.Equal(t, tt.want, roll.Detail())
		})
	}
}

// rollAll evaluates every spec of a command body against a fixed draw queue.
func rollAll(t *testing.T, body string, draws []int) ([]*dice.Roll, dice.Outcome) {
	t.Helper()

	outcome := dice.ParseCommand(body)
	roller := mockdice.NewManualMockRoller()
	roller.SetDraws(draws)

	rolls := make([]*dice.Roll, 0, len(outcome.Specs))
	for _, spec := range outcome.Specs {
		roll, err := roller.Roll(spec)
		require.NoError(t, err)
		rolls = append(rolls, roll)
	}
	return rolls, outcome
}

func TestFormatReply(t *testing.T) {
	t.Run("multiple rolls end with a grand total", func(t *testing.T) {
		rolls, outcome := rollAll(t, "2d20+3 d8", []int{12, 15, 6})

		require.Len(t, rolls, 2)
		assert.Equal(t, 30, rolls[0].Total)
		assert.Equal(t, 6, rolls[1].Total)

		reply := dice.FormatReply("Mira", rolls, outcome.Leftover)
		lines := strings.Split(reply, "\n")

		assert.Equal(t, "**Mira**", lines[0])
		assert.Equal(t, "2(d20 +3)[ 12 | 15 ] +3 = 30", lines[1])
		assert.Equal(t, "d8[ 6 ] = 6", lines[2])
		assert.Equal(t, "= 36", lines[len(lines)-1])
	})

	t.Run("single roll gets no extra total line", func(t *testing.T) {
		rolls, outcome := rollAll(t, "2d6 qux", []int{3, 5})

		require.Len(t, rolls, 1)
		assert.Equal(t, 8, rolls[0].Total)

		reply := dice.FormatReply("Mira", rolls, outcome.Leftover)

		assert.Equal(t, "**Mira**\n2(d6)[ 3 | 5 ] = 8\nqux", reply)
	})

	t.Run("total parse failure returns the help text", func(t *testing.T) {
		rolls, outcome := rollAll(t, "foo bar", nil)

		require.Empty(t, rolls)

		reply := dice.FormatReply("Mira", rolls, outcome.Leftover)

		assert.Contains(t, reply, "Invalid dice expression: foo bar")
		assert.Contains(t, reply, dice.HelpText)
	})

	t.Run("group expansion renders one line per copy", func(t *testing.T) {
		rolls, outcome := rollAll(t, "3(d4+2)", []int{1, 4, 2})

		require.Len(t, rolls, 3)

		reply := dice.FormatReply("Mira", rolls, outcome.Leftover)
		lines := strings.Split(reply, "\n")

		require.Len(t, lines, 5)
		assert.Equal(t, "d4 +2[ 1 ] +2 = 3", lines[1])
		assert.Equal(t, "d4 +2[ 4 ] +2 = 6", lines[2])
		assert.Equal(t, "d4 +2[ 2 ] +2 = 4", lines[3])
		assert.Equal(t, "= 13", lines[4])
	})
}
