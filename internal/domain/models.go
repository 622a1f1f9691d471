package domain

// Line is one captured scrollback row
type Line struct {
	Index int    // ordinal position in the corpus, stable for the session
	Text  string
}

// Corpus is the immutable ordered snapshot of scrollback lines that one
// search session runs against. It is captured once and never mutated.
type Corpus struct {
	lines []Line
}

// NewCorpus creates a corpus from captured lines. The slice is copied so
// later mutation by the caller cannot reach the corpus.
func NewCorpus(lines []Line) *Corpus {
	copied := make([]Line, len(lines))
	copy(copied, lines)
	return &Corpus{lines: copied}
}

// Len returns the number of lines in the corpus
func (c *Corpus) Len() int {
	return len(c.lines)
}

// Line returns the line at the given corpus index
func (c *Corpus) Line(i int) Line {
	return c.lines[i]
}

// MatchResult is one scored line within a published result set
type MatchResult struct {
	LineIndex    int
	Text         string
	Score        int
	AnchorOffset int   // rune offset used to seat a cursor on accept
	Positions    []int // rune offsets in Text that matched the query
}

// ResultSet is the ranked, capped list of matches for one completed search
// generation. It is replaced wholesale on publish, never patched.
type ResultSet struct {
	Generation uint64
	Query      string
	Matches    []MatchResult
}

// Empty reports whether the result set has no matches
func (rs ResultSet) Empty() bool {
	return len(rs.Matches) == 0
}
