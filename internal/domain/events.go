package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted     EventType = "SearchStarted"
	EventSearchCleared     EventType = "SearchCleared"
	EventResultsPublished  EventType = "ResultsPublished"
	EventSelectionAccepted EventType = "SelectionAccepted"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a new search generation begins
type SearchStartedEvent struct {
	Query      string
	Generation uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchClearedEvent is emitted when an empty query clears the results
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ResultsPublishedEvent is emitted after a generation publishes its result
// set. Consumers re-read the engine's current results on receipt; the event
// itself carries only enough to log and to invalidate.
type ResultsPublishedEvent struct {
	Query      string
	Generation uint64
	MatchCount int
}

func (e ResultsPublishedEvent) Type() EventType { return EventResultsPublished }

// SelectionAcceptedEvent is emitted when the user accepts a result. The
// coordinates are what a copy/selection collaborator needs to seat a cursor.
type SelectionAcceptedEvent struct {
	LineIndex    int
	AnchorOffset int
	Text         string
}

func (e SelectionAcceptedEvent) Type() EventType { return EventSelectionAccepted }

// ErrorEvent is emitted when an operational error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
