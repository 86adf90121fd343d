package fortunes

import (
	"context"
	"fmt"
	"sync"

	boterr "github.com/tavernbot/dicebot/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage.
// Records are never evicted; keys include the date, so stale days are
// simply never read again. Fine for a single-process fallback.
type inMemoryRepository struct {
	mu       sync.RWMutex
	fortunes map[string]*Fortune
}

// NewInMemoryRepository creates a new in-memory fortune repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		fortunes: make(map[string]*Fortune),
	}
}

func memoryKey(userID, date string) string {
	return fmt.Sprintf("%s:%s", userID, date)
}

// Get retrieves a user's fortune for a given date
func (r *inMemoryRepository) Get(ctx context.Context, userID, date string) (*Fortune, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fortune, exists := r.fortunes[memoryKey(userID, date)]
	if !exists {
		return nil, boterr.NotFoundf("no fortune for user %s on %s", userID, date)
	}

	// Copy to avoid external modifications
	fortuneCopy := *fortune
	return &fortuneCopy, nil
}

// Set stores a fortune record
func (r *inMemoryRepository) Set(ctx context.Context, fortune *Fortune) error {
	if fortune == nil {
		return boterr.InvalidArgument("fortune cannot be nil")
	}
	if fortune.UserID == "" || fortune.Date == "" {
		return boterr.InvalidArgument("fortune user ID and date are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fortuneCopy := *fortune
	r.fortunes[memoryKey(fortune.UserID, fortune.Date)] = &fortuneCopy
	return nil
}
