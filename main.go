package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scrollseek/internal/config"
	"scrollseek/internal/eventbus"
	"scrollseek/internal/matcher"
	"scrollseek/internal/scrollback"
	"scrollseek/internal/search"
	"scrollseek/internal/ui"
)

// copyModeSeeker stands in for the host terminal's copy-mode collaborator.
// It records where the cursor should be seated; main reports it on exit.
type copyModeSeeker struct {
	sought    bool
	lineIndex int
	offset    int
}

func (s *copyModeSeeker) SeekTo(lineIndex, offset int) {
	s.sought = true
	s.lineIndex = lineIndex
	s.offset = offset
	log.Printf("Seek requested: line %d, offset %d", lineIndex, offset)
}

func main() {
	var filePath string
	var matcherName string
	var limit int
	flag.StringVar(&filePath, "file", "", "Scrollback capture file to search")
	flag.StringVar(&filePath, "f", "", "Scrollback capture file to search (shorthand)")
	flag.StringVar(&matcherName, "matcher", "", "Fuzzy matcher: fzf or sahilm")
	flag.IntVar(&limit, "limit", 0, "Maximum results to publish (hard cap 100)")
	flag.Parse()

	// Set up logging; the TUI owns stdout
	logFile, err := os.OpenFile("scrollseek.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration; flags override
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if matcherName != "" {
		cfg.Matcher = matcherName
	}
	if limit > 0 && limit <= config.MaxResultsCeiling {
		cfg.MaxResults = limit
	}

	// Pick the scrollback source and snapshot it once
	pane, fromStdin, err := buildPane(filePath, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrollseek: %v\n", err)
		os.Exit(1)
	}
	corpus, err := scrollback.Snapshot(pane)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrollseek: %v\n", err)
		os.Exit(1)
	}
	if corpus.Len() == 0 {
		log.Printf("Scrollback is empty; searches will yield no results")
	}

	// Create event bus and engine
	bus := eventbus.New()
	engine := search.NewEngine(corpus, matcher.ForName(cfg.Matcher), bus, cfg.MaxResults)

	// Create UI model
	seeker := &copyModeSeeker{}
	uiModel := ui.NewModel(engine, bus, cfg, seeker)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if fromStdin {
		// Stdin carried the corpus, so key input needs the terminal itself
		tty, err := os.Open("/dev/tty")
		if err != nil {
			fmt.Fprintf(os.Stderr, "scrollseek: cannot open terminal for input: %v\n", err)
			os.Exit(1)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}
	p := tea.NewProgram(uiModel, opts...)

	// Forward engine events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventResultsPublished, forward)
	bus.Subscribe(eventbus.EventSearchCleared, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	finalModel, err := p.Run()

	// Teardown: stop the worker before the bus so nothing publishes into a
	// closed dispatcher
	engine.Shutdown()
	bus.Close()
	close(eventChan)

	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "scrollseek: %v\n", err)
		os.Exit(1)
	}

	// Report the accepted selection in a scriptable form
	if m, ok := finalModel.(*ui.Model); ok {
		if match := m.Accepted(); match != nil && seeker.sought {
			fmt.Printf("%d:%d:%s\n", seeker.lineIndex, seeker.offset, match.Text)
		}
	}
}

// buildPane selects the scrollback source: an explicit capture file, a
// command to run under a pty, or piped stdin.
func buildPane(filePath string, args []string) (scrollback.Pane, bool, error) {
	if filePath != "" {
		pane, err := scrollback.NewFilePane(filePath)
		return pane, false, err
	}
	if len(args) > 0 {
		pane, err := scrollback.NewCommandPane(args[0], args[1:]...)
		return pane, false, err
	}

	info, err := os.Stdin.Stat()
	if err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		pane, err := scrollback.NewReaderPane(os.Stdin)
		return pane, true, err
	}

	return nil, false, fmt.Errorf("no scrollback source: pipe input, pass -file, or name a command to run")
}
