package study

import "strings"

// parenOpeners are the characters that start a gloss annotation, covering
// both the ASCII and the full-width form used in CJK entries.
var parenOpeners = []string{"(", "（"}

// IsAnswerCorrect grades a typed answer against the expected card side.
// Matching is case and surrounding-whitespace insensitive, and a few
// forgiving variants of the expected text are accepted:
//
//   - the text with any parenthetical annotation removed, so "Watashi (私)"
//     accepts "watashi"
//   - the text with a leading "to " infinitive marker removed, so "to eat"
//     accepts "eat"
func IsAnswerCorrect(input, expected string) bool {
	cleanInput := strings.ToLower(strings.TrimSpace(input))
	if cleanInput == "" {
		return false
	}

	for _, v := range answerVariations(expected) {
		if cleanInput == v {
			return true
		}
	}
	return false
}

// answerVariations returns the normalized accepted forms of an expected
// answer.
func answerVariations(expected string) []string {
	clean := strings.ToLower(strings.TrimSpace(expected))

	seen := map[string]bool{clean: true}
	variations := []string{clean}

	for _, opener := range parenOpeners {
		if head, _, found := strings.Cut(clean, opener); found {
			head = strings.TrimSpace(head)
			if head != "" && !seen[head] {
				seen[head] = true
				variations = append(variations, head)
			}
		}
	}

	for _, v := range variations {
		if rest, found := strings.CutPrefix(v, "to "); found {
			rest = strings.TrimSpace(rest)
			if rest != "" && !seen[rest] {
				seen[rest] = true
				variations = append(variations, rest)
			}
		}
	}

	return variations
}
