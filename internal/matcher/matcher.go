package matcher

import (
	"log"
	"unicode"
)

// Matcher is the fuzzy matching capability the search engine is built
// against. Implementations compile a pattern into a Session; the engine
// never sees the algorithm, only scores and positions.
type Matcher interface {
	Name() string
	NewSession(pattern string) Session
}

// Session scores candidate lines against one compiled pattern. A session
// belongs to a single search task: it may carry scratch buffers and
// pattern-compiled state, and must not be shared across queries or
// goroutines.
type Session interface {
	// Score returns the match score for the candidate and whether it
	// matched at all. Higher is better.
	Score(text string) (int, bool)

	// Positions returns the ascending rune offsets in the candidate that
	// the pattern matched. It may return nil even for a scored match;
	// callers degrade to an empty highlight set.
	Positions(text string) []int
}

// ForName returns the matcher registered under the given name, falling back
// to fzf for anything unrecognized.
func ForName(name string) Matcher {
	switch name {
	case "fzf", "":
		return NewFzf()
	case "sahilm":
		return NewSahilm()
	default:
		log.Printf("Unknown matcher %q, falling back to fzf", name)
		return NewFzf()
	}
}

// hasUpper reports whether the pattern contains an upper-case rune, which
// switches smart-case matching to case sensitive.
func hasUpper(pattern string) bool {
	for _, r := range pattern {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
