package services

import (
	"github.com/tavernbot/dicebot/internal/dice"
	"github.com/tavernbot/dicebot/internal/repositories/fortunes"
	deckService "github.com/tavernbot/dicebot/internal/services/deck"
	fortuneService "github.com/tavernbot/dicebot/internal/services/fortune"
	loreService "github.com/tavernbot/dicebot/internal/services/lore"
	rollService "github.com/tavernbot/dicebot/internal/services/roll"
)

// Provider holds all service instances
type Provider struct {
	RollService    rollService.Service
	FortuneService fortuneService.Service
	DeckService    deckService.Service
	LoreService    loreService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Roller            dice.Roller
	FortuneRepository fortunes.Repository
	DecksDir          string
	RulesFile         string
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Use in-memory repository if none provided
	fortuneRepo := cfg.FortuneRepository
	if fortuneRepo == nil {
		fortuneRepo = fortunes.NewInMemoryRepository()
	}

	decks, err := deckService.NewService(&deckService.ServiceConfig{
		Dir: cfg.DecksDir,
	})
	if err != nil {
		return nil, err
	}

	lore, err := loreService.NewService(&loreService.ServiceConfig{
		File: cfg.RulesFile,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		RollService: rollService.NewService(&rollService.ServiceConfig{
			Roller: cfg.Roller,
		}),
		FortuneService: fortuneService.NewService(&fortuneService.ServiceConfig{
			Repository: fortuneRepo,
		}),
		DeckService: decks,
		LoreService: lore,
	}, nil
}
