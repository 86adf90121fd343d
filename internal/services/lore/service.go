// Package lore implements keyword search over a static JSON rules document.
//
// The document is a JSON object of term -> content. Content may be a string
// or one more object of sub-term -> content; search matches term names, not
// content bodies, which mirrors how the source rulebook is indexed.
package lore

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	boterr "github.com/tavernbot/dicebot/internal/errors"
)

// maxResults caps how many entries one query returns.
const maxResults = 3

// Entry is one matched rules entry.
type Entry struct {
	Term    string
	Content string
}

// Service defines the rules lookup interface
type Service interface {
	// Search returns up to maxResults entries whose term name contains
	// the keyword, case insensitively. An empty result is not an error.
	Search(keyword string) []Entry
}

// ServiceConfig holds configuration for the lore service
type ServiceConfig struct {
	// File is the path of the rules JSON document. Ignored when Data is set.
	File string

	// Data is the parsed document, used directly when non-nil.
	Data map[string]any
}

type service struct {
	data map[string]any
}

// NewService creates a new lore service, loading the rules document when
// only a file path is given.
func NewService(cfg *ServiceConfig) (Service, error) {
	data := cfg.Data
	if data == nil {
		raw, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, boterr.Wrapf(err, "failed to read rules file %s", cfg.File)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, boterr.Wrapf(err, "failed to parse rules file %s", cfg.File)
		}
	}
	return &service{data: data}, nil
}

// Search implements Service.Search
func (s *service) Search(keyword string) []Entry {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}

	terms := make([]string, 0, len(s.data))
	for term := range s.data {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var results []Entry
	for _, term := range terms {
		if len(results) >= maxResults {
			break
		}

		switch content := s.data[term].(type) {
		case map[string]any:
			subTerms := make([]string, 0, len(content))
			for subTerm := range content {
				subTerms = append(subTerms, subTerm)
			}
			sort.Strings(subTerms)

			for _, subTerm := range subTerms {
				if len(results) >= maxResults {
					break
				}
				if strings.Contains(strings.ToLower(subTerm), keyword) {
					results = append(results, Entry{Term: subTerm, Content: contentString(content[subTerm])})
				}
			}
		default:
			if strings.Contains(strings.ToLower(term), keyword) {
				results = append(results, Entry{Term: term, Content: contentString(content)})
			}
		}
	}
	return results
}

func contentString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
