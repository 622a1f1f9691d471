package search

import (
	"sort"
	"sync/atomic"

	"scrollseek/internal/domain"
	"scrollseek/internal/matcher"
)

// task is one query execution against the full corpus. It carries its
// generation from birth; the publish step re-validates it.
type task struct {
	generation uint64
	query      string
	session    matcher.Session
	cancel     *atomic.Bool
}

// scoredLine is a scan hit before ranking. slot is the corpus position, so
// highlight extraction can re-read the line without a search.
type scoredLine struct {
	score     int
	lineIndex int
	slot      int
}

// run scans, ranks, caps, extracts highlights and publishes. The cancel
// flag is polled at line granularity and again before publish, so a
// superseded task wastes bounded work. Abandoning is silent: the previous
// published results stay visible until a current generation replaces them.
func (e *Engine) run(t *task) {
	defer e.wg.Done()

	var hits []scoredLine
	for i := 0; i < e.corpus.Len(); i++ {
		if t.cancel.Load() {
			return
		}
		line := e.corpus.Line(i)
		if score, ok := t.session.Score(line.Text); ok {
			hits = append(hits, scoredLine{score: score, lineIndex: line.Index, slot: i})
		}
	}

	// Rank by score, equal scores keep corpus order. Line indexes are
	// unique, so the ordering is total and repeat runs agree.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].lineIndex < hits[j].lineIndex
	})
	if len(hits) > e.limit {
		hits = hits[:e.limit]
	}

	// Positions are extracted only for the survivors of the cap; the
	// discarded matches never pay for highlight extraction.
	matches := make([]domain.MatchResult, 0, len(hits))
	for _, hit := range hits {
		if t.cancel.Load() {
			return
		}
		line := e.corpus.Line(hit.slot)
		positions := t.session.Positions(line.Text)
		anchor := 0
		if len(positions) > 0 {
			anchor = positions[len(positions)-1]
		}
		matches = append(matches, domain.MatchResult{
			LineIndex:    hit.lineIndex,
			Text:         line.Text,
			Score:        hit.score,
			AnchorOffset: anchor,
			Positions:    positions,
		})
	}

	if t.cancel.Load() {
		return
	}
	e.publish(domain.ResultSet{
		Generation: t.generation,
		Query:      t.query,
		Matches:    matches,
	})
}
