package matcher

import (
	"github.com/sahilm/fuzzy"
)

// sahilmMatcher matches with sahilm/fuzzy. Kept as an alternative scoring
// policy; it favors word-boundary and camel-case matches over fzf's
// gap-penalty model.
type sahilmMatcher struct{}

// NewSahilm returns the sahilm/fuzzy-backed matcher
func NewSahilm() Matcher {
	return sahilmMatcher{}
}

func (sahilmMatcher) Name() string { return "sahilm" }

func (sahilmMatcher) NewSession(pattern string) Session {
	return &sahilmSession{pattern: pattern}
}

type sahilmSession struct {
	pattern string
}

func (s *sahilmSession) match(text string) (fuzzy.Match, bool) {
	if s.pattern == "" {
		return fuzzy.Match{}, false
	}
	matches := fuzzy.Find(s.pattern, []string{text})
	if len(matches) == 0 {
		return fuzzy.Match{}, false
	}
	return matches[0], true
}

func (s *sahilmSession) Score(text string) (int, bool) {
	m, ok := s.match(text)
	if !ok {
		return 0, false
	}
	return m.Score, true
}

func (s *sahilmSession) Positions(text string) []int {
	m, ok := s.match(text)
	if !ok || len(m.MatchedIndexes) == 0 {
		return nil
	}
	// MatchedIndexes are byte offsets; the engine contract is rune offsets
	return bytesToRuneOffsets(text, m.MatchedIndexes)
}

// bytesToRuneOffsets converts ascending byte offsets into rune offsets for
// the same string. Offsets that do not land on a rune boundary are skipped.
func bytesToRuneOffsets(text string, byteOffsets []int) []int {
	runeAt := make(map[int]int, len(text))
	runeIndex := 0
	for byteIndex := range text {
		runeAt[byteIndex] = runeIndex
		runeIndex++
	}

	out := make([]int, 0, len(byteOffsets))
	for _, b := range byteOffsets {
		if r, ok := runeAt[b]; ok {
			out = append(out, r)
		}
	}
	return out
}
