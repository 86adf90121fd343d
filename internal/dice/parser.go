package dice

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnparseable is returned when a token does not match the roll grammar.
var ErrUnparseable = errors.New("not a dice expression")

// scanner walks a single token byte by byte. The grammar is ASCII only.
type scanner struct {
	s string
	i int
}

func (sc *scanner) accept(c byte) bool {
	if sc.i < len(sc.s) && sc.s[sc.i] == c {
		sc.i++
		return true
	}
	return false
}

// digits consumes a run of decimal digits. Returns false when no digit is
// present or the run overflows int.
func (sc *scanner) digits() (int, bool) {
	start := sc.i
	for sc.i < len(sc.s) && sc.s[sc.i] >= '0' && sc.s[sc.i] <= '9' {
		sc.i++
	}
	if sc.i == start {
		return 0, false
	}
	n, err := strconv.Atoi(sc.s[start:sc.i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (sc *scanner) done() bool {
	return sc.i == len(sc.s)
}

// ParseExpression matches one token against the plain roll grammar:
//
//	[count]d<faces>[{a|p}[dice]][{+|-}modifier]
//
// The count defaults to 1, the advantage dice count to 2 when a marker is
// present without digits. Zero faces and zero counts are rejected so a
// degenerate range never reaches the random source.
func ParseExpression(token string) (Spec, error) {
	sc := &scanner{s: token}
	spec := Spec{Repetitions: 1}

	if n, ok := sc.digits(); ok {
		if n < 1 {
			return Spec{}, ErrUnparseable
		}
		spec.Repetitions = n
	}

	if !sc.accept('d') {
		return Spec{}, ErrUnparseable
	}

	faces, ok := sc.digits()
	if !ok || faces < 1 {
		return Spec{}, ErrUnparseable
	}
	spec.Faces = faces

	switch {
	case sc.accept('a'):
		spec.Mode = Advantage
	case sc.accept('p'):
		spec.Mode = Disadvantage
	}
	if spec.Mode != AdvantageNone {
		spec.AdvantageDice = 2
		if n, ok := sc.digits(); ok {
			spec.AdvantageDice = n
		}
	}

	switch {
	case sc.accept('+'):
		n, ok := sc.digits()
		if !ok {
			return Spec{}, ErrUnparseable
		}
		spec.Modifier = n
	case sc.accept('-'):
		n, ok := sc.digits()
		if !ok {
			return Spec{}, ErrUnparseable
		}
		spec.Modifier = -n
	}

	if !sc.done() {
		return Spec{}, ErrUnparseable
	}
	return spec, nil
}

// ExpandGroup matches the repetition wrapper <repeat>(<expression>) and
// returns repeat copies of the inner spec. The inner expression must match
// the plain grammar; groups do not nest. Reports false when the token is
// not a valid group, including when only the wrapper matched.
func ExpandGroup(token string) ([]Spec, bool) {
	sc := &scanner{s: token}

	repeat, ok := sc.digits()
	if !ok || repeat < 1 {
		return nil, false
	}
	if !sc.accept('(') {
		return nil, false
	}
	if len(token) == sc.i || token[len(token)-1] != ')' {
		return nil, false
	}

	inner, err := ParseExpression(token[sc.i : len(token)-1])
	if err != nil {
		return nil, false
	}

	specs := make([]Spec, repeat)
	for i := range specs {
		specs[i] = inner
	}
	return specs, true
}

// ParseCommand splits a command body on whitespace and routes every token
// through the group grammar, then the plain grammar. Tokens matching
// neither are collected as leftover text in input order.
func ParseCommand(body string) Outcome {
	var out Outcome
	var leftover []string

	for _, token := range strings.Fields(body) {
		if specs, ok := ExpandGroup(token); ok {
			out.Specs = append(out.Specs, specs...)
			continue
		}
		if spec, err := ParseExpression(token); err == nil {
			out.Specs = append(out.Specs, spec)
			continue
		}
		leftover = append(leftover, token)
	}

	out.Leftover = strings.Join(leftover, " ")
	return out
}
