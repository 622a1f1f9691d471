package scrollback

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"scrollseek/internal/domain"
)

// Pane supplies scrollback lines for a corpus snapshot. It mirrors what a
// terminal pane exposes: a line count and a range read.
type Pane interface {
	LineCount() int
	Lines(start, end int) ([]domain.Line, error)
}

// bufferPane serves lines from an in-memory capture. All pane sources in
// this package reduce to one of these once their input is drained.
type bufferPane struct {
	lines []string
}

func (p *bufferPane) LineCount() int {
	return len(p.lines)
}

func (p *bufferPane) Lines(start, end int) ([]domain.Line, error) {
	if start < 0 || end > len(p.lines) || start > end {
		return nil, fmt.Errorf("line range [%d, %d) out of bounds for %d lines", start, end, len(p.lines))
	}
	out := make([]domain.Line, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, domain.Line{Index: i, Text: p.lines[i]})
	}
	return out, nil
}

// NewReaderPane drains the reader and serves its lines as scrollback
func NewReaderPane(r io.Reader) (Pane, error) {
	scanner := bufio.NewScanner(r)
	// Scrollback rows can be far wider than the default scanner token size
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scrollback: %w", err)
	}

	return &bufferPane{lines: trimTrailingBlank(lines)}, nil
}

// NewFilePane serves a captured scrollback dump (e.g. tmux capture-pane
// output) as a pane
func NewFilePane(path string) (Pane, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scrollback file: %w", err)
	}
	defer f.Close()
	return NewReaderPane(f)
}

// trimTrailingBlank drops the run of empty lines at the bottom of a capture.
// Terminals pad the viewport with blank rows; they are noise to a search.
func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
