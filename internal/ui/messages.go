package ui

import (
	"scrollseek/internal/eventbus"
)

// EventMsg wraps a domain event for the UI. Main forwards bus events into
// the program with tea.Program.Send.
type EventMsg struct {
	Event eventbus.DomainEvent
}

// CursorSeeker is the capability a host surface offers for seating a cursor
// at an accepted match. Any surface that can seek is treated uniformly; the
// UI never asks for a concrete surface type.
type CursorSeeker interface {
	SeekTo(lineIndex, offset int)
}
