package scrollback

import (
	"fmt"
	"log"

	"scrollseek/internal/domain"
)

// Snapshot captures the pane's full line range into an immutable corpus.
// Called exactly once per search session; a pane with zero lines yields an
// empty corpus, which is valid and searches cleanly.
func Snapshot(pane Pane) (*domain.Corpus, error) {
	count := pane.LineCount()
	if count == 0 {
		return domain.NewCorpus(nil), nil
	}

	lines, err := pane.Lines(0, count)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot scrollback: %w", err)
	}

	log.Printf("Captured %d scrollback lines", len(lines))
	return domain.NewCorpus(lines), nil
}
