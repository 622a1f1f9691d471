package matcher

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// fzfMatcher matches with the fzf v2 algorithm. This is the default: the
// scoring policy users know from fzf itself, with smart case.
type fzfMatcher struct{}

// NewFzf returns the fzf-backed matcher
func NewFzf() Matcher {
	return fzfMatcher{}
}

func (fzfMatcher) Name() string { return "fzf" }

func (fzfMatcher) NewSession(pattern string) Session {
	caseSensitive := hasUpper(pattern)
	if !caseSensitive {
		// fzf expects a pre-lowered pattern for insensitive matching
		pattern = strings.ToLower(pattern)
	}
	return &fzfSession{
		pattern:       []rune(pattern),
		caseSensitive: caseSensitive,
		slab:          util.MakeSlab(64, 4096),
	}
}

// fzfSession holds the compiled pattern and the slab scratch arena for one
// search task. The slab is reused across every line of the scan and is why
// sessions must stay single-goroutine.
type fzfSession struct {
	pattern       []rune
	caseSensitive bool
	slab          *util.Slab
}

func (s *fzfSession) Score(text string) (int, bool) {
	if len(s.pattern) == 0 {
		return 0, false
	}
	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(s.caseSensitive, true, true, &chars, s.pattern, false, s.slab)
	if result.Score <= 0 {
		return 0, false
	}
	return result.Score, true
}

func (s *fzfSession) Positions(text string) []int {
	if len(s.pattern) == 0 {
		return nil
	}
	chars := util.ToChars([]byte(text))
	_, pos := algo.FuzzyMatchV2(s.caseSensitive, true, true, &chars, s.pattern, true, s.slab)
	if pos == nil || len(*pos) == 0 {
		return nil
	}
	// fzf reports positions back-to-front
	out := make([]int, len(*pos))
	copy(out, *pos)
	sort.Ints(out)
	return out
}
