// Package fortune implements the daily fortune draw: one deterministic
// value per user per calendar day.
package fortune

import (
	"context"
	"hash/fnv"
	"math/rand"

	boterr "github.com/tavernbot/dicebot/internal/errors"
	"github.com/tavernbot/dicebot/internal/repositories/fortunes"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockfortune -source=service.go

const dateLayout = "2006-01-02"

// Result is the outcome of a daily fortune query.
type Result struct {
	Value int
	Tier  string

	// AlreadyQueried is true when the user consulted the dice earlier
	// the same day.
	AlreadyQueried bool
}

// Service defines the daily fortune service interface
type Service interface {
	// GetDaily returns the user's fortune for today. The first query of
	// the day draws and stores the value; later queries only report that
	// the user already asked.
	GetDaily(ctx context.Context, userID string) (*Result, error)
}

// ServiceConfig holds configuration for the fortune service
type ServiceConfig struct {
	Repository   fortunes.Repository
	TimeProvider fortunes.TimeProvider
}

type service struct {
	repo  fortunes.Repository
	clock fortunes.TimeProvider
}

// NewService creates a new fortune service
func NewService(cfg *ServiceConfig) Service {
	repo := cfg.Repository
	if repo == nil {
		repo = fortunes.NewInMemoryRepository()
	}

	clock := cfg.TimeProvider
	if clock == nil {
		clock = &fortunes.RealTimeProvider{}
	}

	return &service{repo: repo, clock: clock}
}

// GetDaily implements Service.GetDaily
func (s *service) GetDaily(ctx context.Context, userID string) (*Result, error) {
	if userID == "" {
		return nil, boterr.InvalidArgument("user ID is required")
	}

	date := s.clock.Now().Format(dateLayout)

	existing, err := s.repo.Get(ctx, userID, date)
	if err == nil {
		return &Result{
			Value:          existing.Value,
			Tier:           Tier(existing.Value),
			AlreadyQueried: true,
		}, nil
	}
	if !boterr.IsNotFound(err) {
		return nil, boterr.Wrap(err, "failed to look up fortune")
	}

	value := dailyValue(userID, date)
	record := &fortunes.Fortune{
		UserID: userID,
		Date:   date,
		Value:  value,
	}
	if err := s.repo.Set(ctx, record); err != nil {
		return nil, boterr.Wrap(err, "failed to store fortune")
	}

	return &Result{Value: value, Tier: Tier(value)}, nil
}

// dailyValue derives the deterministic 1..100 value for a user and date.
// The seed hashes userID+date, so the value is stable for the whole day
// even if the stored record is lost.
func dailyValue(userID, date string) int {
	h := fnv.New64a()
	h.Write([]byte(userID))
	h.Write([]byte(date))

	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return rng.Intn(100) + 1
}

// Tier maps a fortune value to its label.
func Tier(value int) string {
	switch {
	case value == 1:
		return "Cursed"
	case value <= 19:
		return "Faint Fortune"
	case value <= 39:
		return "Small Fortune"
	case value <= 59:
		return "Middling Fortune"
	case value <= 79:
		return "Good Fortune"
	case value <= 99:
		return "Great Fortune"
	case value == 100:
		return "Perfect Fortune"
	}
	return "Unknown"
}
