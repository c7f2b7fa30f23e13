package lifecycle

import (
	"strings"

	"github.com/prasetyo/ingatkata/internal/seed"
)

// importSeparator splits a bulk-import line into its front and back side.
const importSeparator = "<>"

// ParseImportText extracts card pairs from pasted bulk-import text.
// Each line must be "front <> back" with both sides non-empty after
// trimming. Lines that do not parse are skipped without error; malformed
// input never aborts an import.
func ParseImportText(text string) []seed.Pair {
	lines := strings.Split(text, "\n")
	pairs := make([]seed.Pair, 0, len(lines))

	for _, line := range lines {
		parts := strings.Split(line, importSeparator)
		if len(parts) != 2 {
			continue
		}
		front := strings.TrimSpace(parts[0])
		back := strings.TrimSpace(parts[1])
		if front == "" || back == "" {
			continue
		}
		pairs = append(pairs, seed.Pair{Front: front, Back: back})
	}

	return pairs
}
