// Package deck implements card drawing from JSON deck files.
package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	boterr "github.com/tavernbot/dicebot/internal/errors"
)

// maxNestingDepth bounds the flatten traversal so malformed deck files
// cannot recurse unboundedly.
const maxNestingDepth = 8

// Info describes one loaded deck.
type Info struct {
	Name string
	Size int
	File string
}

// Service defines the deck drawing interface
type Service interface {
	// Draw picks count distinct cards from the named deck. The count is
	// clamped to the deck size; the returned size is the full deck size.
	Draw(ctx context.Context, name string, count int) (cards []string, size int, err error)

	// List describes all loaded decks, sorted by name.
	List(ctx context.Context) []Info
}

// ServiceConfig holds configuration for the deck service
type ServiceConfig struct {
	// Dir is the directory scanned for *.json deck files. The deck name
	// is the file name without extension.
	Dir string
}

type loadedDeck struct {
	cards []string
	file  string
}

type service struct {
	mu    sync.RWMutex
	decks map[string]*loadedDeck
}

// NewService creates a deck service and loads every deck in cfg.Dir.
// Decks are cached for the process lifetime; editing a deck file requires
// a restart.
func NewService(cfg *ServiceConfig) (Service, error) {
	entries, err := filepath.Glob(filepath.Join(cfg.Dir, "*.json"))
	if err != nil {
		return nil, boterr.Wrapf(err, "failed to scan deck directory %s", cfg.Dir)
	}

	s := &service{decks: make(map[string]*loadedDeck, len(entries))}

	var g errgroup.Group
	for _, path := range entries {
		path := path
		g.Go(func() error {
			cards, err := loadDeckFile(path)
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(filepath.Base(path), ".json")
			s.mu.Lock()
			s.decks[name] = &loadedDeck{cards: cards, file: filepath.Base(path)}
			s.mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s, nil
}

// Draw implements Service.Draw
func (s *service) Draw(ctx context.Context, name string, count int) ([]string, int, error) {
	if count < 1 {
		return nil, 0, boterr.InvalidArgumentf("draw count must be positive, got %d", count)
	}

	s.mu.RLock()
	deck, exists := s.decks[name]
	s.mu.RUnlock()
	if !exists {
		return nil, 0, boterr.NotFoundf("unknown deck: %s", name)
	}

	size := len(deck.cards)
	if size == 0 {
		return nil, 0, boterr.NotFoundf("deck %s is empty", name)
	}
	if count > size {
		count = size
	}

	// Sample without replacement
	cards := make([]string, count)
	for i, idx := range rand.Perm(size)[:count] {
		cards[i] = deck.cards[idx]
	}
	return cards, size, nil
}

// List implements Service.List
func (s *service) List(ctx context.Context) []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]Info, 0, len(s.decks))
	for name, deck := range s.decks {
		infos = append(infos, Info{Name: name, Size: len(deck.cards), File: deck.file})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

func loadDeckFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, boterr.Wrapf(err, "failed to read deck file %s", path)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, boterr.Wrapf(err, "failed to parse deck file %s", path)
	}

	cards, err := flatten(raw, 0)
	if err != nil {
		return nil, boterr.Wrapf(err, "failed to flatten deck file %s", path)
	}
	return cards, nil
}

// flatten walks nested objects and arrays depth first, producing a flat
// ordered card list. Scalar object values become "key: value" entries;
// object keys are visited in sorted order so the card order is stable.
func flatten(v any, depth int) ([]string, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("deck nesting exceeds %d levels", maxNestingDepth)
	}

	switch val := v.(type) {
	case []any:
		var cards []string
		for _, item := range val {
			switch item.(type) {
			case []any, map[string]any:
				sub, err := flatten(item, depth+1)
				if err != nil {
					return nil, err
				}
				cards = append(cards, sub...)
			default:
				cards = append(cards, scalarString(item))
			}
		}
		return cards, nil

	case map[string]any:
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var cards []string
		for _, key := range keys {
			switch item := val[key].(type) {
			case []any, map[string]any:
				sub, err := flatten(item, depth+1)
				if err != nil {
					return nil, err
				}
				cards = append(cards, sub...)
			default:
				cards = append(cards, fmt.Sprintf("%s: %s", key, scalarString(item)))
			}
		}
		return cards, nil

	default:
		return []string{scalarString(v)}, nil
	}
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
