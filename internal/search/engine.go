package search

import (
	"log"
	"sync"
	"sync/atomic"

	"scrollseek/internal/domain"
	"scrollseek/internal/eventbus"
	"scrollseek/internal/matcher"
)

// maxResults is the hard cap on a published result set. Config may lower
// the engine's limit but never raise it past this.
const maxResults = 100

// Engine runs fuzzy searches over an immutable corpus with single-flight
// semantics: each Submit supersedes the previous one, stale tasks abandon
// cooperatively, and only the task carrying the current generation may
// publish. Submit and Shutdown are meant for a single producer (the UI
// control thread); Results is safe from any goroutine.
type Engine struct {
	corpus  *domain.Corpus
	matcher matcher.Matcher
	bus     eventbus.EventBus
	limit   int

	// generation identifies the most recent submission. A task must find
	// its own generation still current, under mu, to publish.
	generation atomic.Uint64

	// cancelFlag is the in-flight task's cancellation signal. The engine
	// is its only writer, the task its only reader.
	cancelFlag atomic.Pointer[atomic.Bool]

	mu      sync.RWMutex // guards results; held for the publish decision
	results domain.ResultSet

	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewEngine creates an engine over a corpus snapshot. The corpus is owned
// by the engine for the life of the search session and never mutated.
func NewEngine(corpus *domain.Corpus, m matcher.Matcher, bus eventbus.EventBus, limit int) *Engine {
	if limit <= 0 || limit > maxResults {
		limit = maxResults
	}
	return &Engine{
		corpus:  corpus,
		matcher: m,
		bus:     bus,
		limit:   limit,
	}
}

// Submit starts a new search generation for the query. It never blocks on
// the scan: work happens on a worker goroutine. An empty query clears the
// published results synchronously and starts no worker.
func (e *Engine) Submit(query string) {
	if e.closed.Load() {
		return
	}

	g := e.generation.Add(1)

	// Supersede whatever is in flight before this generation starts
	if prev := e.cancelFlag.Swap(nil); prev != nil {
		prev.Store(true)
	}

	if query == "" {
		e.mu.Lock()
		e.results = domain.ResultSet{Generation: g}
		e.mu.Unlock()
		e.bus.Publish(domain.SearchClearedEvent{})
		return
	}

	t := &task{
		generation: g,
		query:      query,
		session:    e.matcher.NewSession(query),
		cancel:     &atomic.Bool{},
	}
	e.cancelFlag.Store(t.cancel)

	e.wg.Add(1)
	go e.run(t)

	e.bus.Publish(domain.SearchStartedEvent{Query: query, Generation: g})
}

// Results returns a point-in-time copy of the published result set. It may
// be stale relative to an in-flight Submit.
func (e *Engine) Results() domain.ResultSet {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rs := e.results
	matches := make([]domain.MatchResult, len(rs.Matches))
	copy(matches, rs.Matches)
	rs.Matches = matches
	return rs
}

// Generation returns the most recently submitted generation. A result set
// whose Generation is older means a search is still in flight.
func (e *Engine) Generation() uint64 {
	return e.generation.Load()
}

// Shutdown cancels any in-flight task and blocks until the worker has
// stopped. The engine accepts no submissions afterwards.
func (e *Engine) Shutdown() {
	if e.closed.Swap(true) {
		return
	}

	// Bump the generation so a task already past its cancel polls still
	// fails the publish check
	e.generation.Add(1)
	if prev := e.cancelFlag.Swap(nil); prev != nil {
		prev.Store(true)
	}
	e.wg.Wait()
	log.Printf("Search engine shut down after generation %d", e.generation.Load())
}

// publish commits a completed generation's result set, or abandons it if a
// newer generation was submitted meanwhile. The generation re-check happens
// under the same lock as the write: this is what keeps a slow stale task
// from overwriting fresher results. The invalidation event fires after the
// lock is released.
func (e *Engine) publish(rs domain.ResultSet) {
	e.mu.Lock()
	if rs.Generation != e.generation.Load() {
		e.mu.Unlock()
		return
	}
	e.results = rs
	e.mu.Unlock()

	e.bus.Publish(domain.ResultsPublishedEvent{
		Query:      rs.Query,
		Generation: rs.Generation,
		MatchCount: len(rs.Matches),
	})
}
