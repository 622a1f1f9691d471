package scrollback

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

// NewCommandPane runs a command under a pty, waits for it to exit, and
// serves the captured output as scrollback. The pty (rather than a pipe)
// keeps programs in their interactive output mode, so what gets searched is
// what a terminal would have shown.
func NewCommandPane(name string, args ...string) (Pane, error) {
	cmd := exec.Command(name, args...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start %s under pty: %w", name, err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		_, copyErr := io.Copy(&buf, ptmx)
		if copyErr != nil && !isPtyClosed(copyErr) {
			return fmt.Errorf("failed to drain pty: %w", copyErr)
		}
		return nil
	})

	// Non-zero exit still produced scrollback worth searching; only log it
	if waitErr := cmd.Wait(); waitErr != nil {
		log.Printf("Command %s exited with error: %v", name, waitErr)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewReaderPane(&buf)
}

// isPtyClosed reports whether the read error is the EIO a pty master
// returns once the child side hangs up. That is the normal end of stream,
// not a failure.
func isPtyClosed(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, io.EOF)
}
