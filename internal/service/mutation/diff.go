package mutation

import (
	"strings"
	"unicode/utf8"
)

// StableIndex returns the character offset below which newSource is already
// covered by the previously persisted source:
//
//   - no previous source (empty string) → 0, everything is new;
//   - newSource literally starts with previousSource → len(previousSource)
//     in characters, only the appended suffix is new;
//   - anything else → 0, a non-append edit forces a full re-mutation.
//
// Only prefix growth is modeled; this is deliberately not a general diff.
func StableIndex(newSource, previousSource string) int {
	if previousSource == "" {
		return 0
	}
	if strings.HasPrefix(newSource, previousSource) {
		return utf8.RuneCountInString(previousSource)
	}
	return 0
}
