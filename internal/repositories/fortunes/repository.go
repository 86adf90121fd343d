// Package fortunes stores one fortune record per user per calendar day.
package fortunes

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockfortunes -source=repository.go

// Fortune is one user's fortune record for a calendar day.
type Fortune struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"` // YYYY-MM-DD
	Value  int    `json:"value"`
}

// TimeProvider supplies the current time, so tests can pin the date
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider implements TimeProvider with the wall clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Repository defines storage for daily fortune records
type Repository interface {
	// Get retrieves a user's fortune for a given date. Returns a not
	// found error when the user has not queried that day yet.
	Get(ctx context.Context, userID, date string) (*Fortune, error)

	// Set stores a fortune record
	Set(ctx context.Context, fortune *Fortune) error
}
