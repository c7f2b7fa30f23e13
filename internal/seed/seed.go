// Package seed provides the built-in vocabulary packs that decks can be
// bootstrapped from. Packs are grouped by language and difficulty level;
// cards created from a pack are tagged with the level name so re-imports
// can be detected.
package seed

import (
	"errors"
	"sort"
)

// Errors for unknown pack lookups.
var (
	// ErrLanguageUnknown is returned when no pack exists for a language.
	ErrLanguageUnknown = errors.New("no word pack for language")

	// ErrLevelUnknown is returned when a language pack has no such level.
	ErrLevelUnknown = errors.New("no such level in word pack")
)

// Pair is a single vocabulary entry in a pack.
type Pair struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Level is a named difficulty tier within a language pack.
type Level struct {
	Name  string `json:"name"`
	Words []Pair `json:"words"`
}

// Languages returns the language names that have built-in packs, sorted.
func Languages() []string {
	names := make([]string, 0, len(packs))
	for name := range packs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Levels returns the difficulty tiers for a language in pack order.
// Word slices are shared with the package data; callers must not mutate
// them.
func Levels(language string) ([]Level, error) {
	levels, ok := packs[language]
	if !ok {
		return nil, ErrLanguageUnknown
	}
	return levels, nil
}

// Words returns the entries for one level of a language pack.
func Words(language, level string) ([]Pair, error) {
	levels, ok := packs[language]
	if !ok {
		return nil, ErrLanguageUnknown
	}
	for _, l := range levels {
		if l.Name == level {
			return l.Words, nil
		}
	}
	return nil, ErrLevelUnknown
}
