package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// HelpText documents the roll grammar. It is returned verbatim for an
// explicit help request and whenever a command parses to nothing.
const HelpText = `Dice commands:
Format: .r [count]d<faces>[a|p][dice][+/-mod]
        .r <repeat>(<expression>)

Basics:
.r d100       - roll one d100
.r 2d6+3      - roll d6 twice and add 3
.r 4d6-2      - roll d6 four times and subtract 2

Advantage / disadvantage:
.r d20a3      - one d20, throwing 3 dice and keeping the highest
.r d20p3      - one d20, throwing 3 dice and keeping the lowest

Repetition groups:
.r 3(d4+2)    - roll (d4+2) three times
.r 2(d20a2)   - roll (d20 with advantage) twice

Combinations:
.r 2d20+3 d8
.r d20a3+5 2d6-1 d8
.r 3(d6+2) 2(d20a2)

Notes:
1. The number before d is how many times the die is rolled.
2. The number after a/p is how many dice are thrown at once:
   a keeps the highest, p keeps the lowest.
3. Advantage and disadvantage conventionally use at most 3 dice.
4. Separate multiple expressions with spaces.
5. <n>(<expression>) repeats the same expression n times.`

// Detail renders one evaluated roll in the chat-visible format, for example
//
//	2(d6 +3)[ 4 | 5 ] +3 = 12
//	d20[ (12 15)=15 ] = 15
func (r *Roll) Detail() string {
	base := "d" + strconv.Itoa(r.Spec.Faces)
	if r.Spec.Modifier != 0 {
		base += " " + signed(r.Spec.Modifier)
	}

	expr := base
	if r.Spec.Repetitions > 1 {
		expr = fmt.Sprintf("%d(%s)", r.Spec.Repetitions, base)
	}

	parts := make([]string, 0, len(r.Groups))
	for _, group := range r.Groups {
		if r.Spec.Mode != AdvantageNone && len(group) > 1 {
			draws := make([]string, len(group))
			for i, d := range group {
				draws[i] = strconv.Itoa(d)
			}
			parts = append(parts, fmt.Sprintf("(%s)=%d", strings.Join(draws, " "), chosen(r.Spec.Mode, group)))
		} else {
			parts = append(parts, strconv.Itoa(group[0]))
		}
	}

	out := fmt.Sprintf("%s[ %s ]", expr, strings.Join(parts, " | "))
	if r.Spec.Modifier != 0 {
		out += " " + signed(r.Spec.Modifier)
	}
	return out + " = " + strconv.Itoa(r.Total)
}

// FormatReply renders the full reply body for a command: a nickname header,
// one detail line per roll in parse order, a grand-total line when more
// than one spec parsed, and any leftover text on a trailing line. When
// nothing parsed at all the body is the failure message plus the help text.
func FormatReply(nickname string, rolls []*Roll, leftover string) string {
	var b strings.Builder
	b.WriteString("**")
	b.WriteString(nickname)
	b.WriteString("**\n")

	if len(rolls) == 0 {
		fmt.Fprintf(&b, "Invalid dice expression: %s\n%s", leftover, HelpText)
		return b.String()
	}

	lines := make([]string, 0, len(rolls))
	total := 0
	for _, roll := range rolls {
		lines = append(lines, roll.Detail())
		total += roll.Total
	}
	b.WriteString(strings.Join(lines, "\n"))

	if len(rolls) > 1 {
		fmt.Fprintf(&b, "\n= %d", total)
	}
	if leftover != "" {
		b.WriteString("\n")
		b.WriteString(leftover)
	}
	return b.String()
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
