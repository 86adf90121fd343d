package roll

import (
	"github.com/tavernbot/dicebot/internal/dice"
	boterr "github.com/tavernbot/dicebot/internal/errors"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockroll -source=service.go

// Service runs the full roll pipeline: parse, evaluate, format.
type Service interface {
	// Execute handles one .r command body and returns the reply text.
	// Total parse failure is a normal reply (the help text), not an error.
	Execute(body, nickname string) (string, error)

	// Help returns the grammar help text.
	Help() string
}

// ServiceConfig holds configuration for the roll service
type ServiceConfig struct {
	Roller dice.Roller
}

type service struct {
	roller dice.Roller
}

// NewService creates a new roll service
func NewService(cfg *ServiceConfig) Service {
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	return &service{roller: roller}
}

// Execute implements Service.Execute
func (s *service) Execute(body, nickname string) (string, error) {
	outcome := dice.ParseCommand(body)

	rolls := make([]*dice.Roll, 0, len(outcome.Specs))
	for _, spec := range outcome.Specs {
		roll, err := s.roller.Roll(spec)
		if err != nil {
			// The parser never emits a degenerate spec, so this is a
			// programming error rather than bad user input.
			return "", boterr.Wrapf(err, "failed to evaluate d%d", spec.Faces)
		}
		rolls = append(rolls, roll)
	}

	return dice.FormatReply(nickname, rolls, outcome.Leftover), nil
}

// Help implements Service.Help
func (s *service) Help() string {
	return dice.HelpText
}
