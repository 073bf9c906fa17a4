package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"usersearch/internal/config"
	"usersearch/internal/directory"
	"usersearch/internal/eventbus"
	"usersearch/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program; it returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	// Parse command line arguments
	var (
		configPath  string
		endpoint    string
		debounceMs  int
		query       string
		writeConfig bool
	)
	fs := flag.NewFlagSet("usersearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "Path to the config file (default: "+config.DefaultPath()+")")
	fs.StringVar(&endpoint, "endpoint", "", "User directory URL (overrides the config file)")
	fs.IntVar(&debounceMs, "debounce", -1, "Quiet period in milliseconds before a query is sent (overrides the config file)")
	fs.StringVar(&query, "query", "", "Print the names matching this query and exit instead of starting the UI")
	fs.BoolVar(&writeConfig, "write-config", false, "Write the effective configuration to the config file and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Load configuration. The log file location comes from it, so nothing
	// may publish on the bus yet.
	cfg, err := config.NewConfigService(configPath).Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if debounceMs >= 0 {
		cfg.DebounceMs = debounceMs
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	// Set up logging
	restoreLog := setupLogging(cfg.LogFile)
	defer restoreLog()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	subscribeLoggers(bus)

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: configSvc.Path(), Endpoint: cfg.Endpoint})

	if writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Error writing config: %v", err)
			fmt.Fprintf(stderr, "Error writing config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Config written to %s\n", configSvc.Path())
		return 0
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	opts := []directory.Option{directory.WithTimeout(cfg.RequestTimeout())}
	if cfg.QueryParam != "" {
		opts = append(opts, directory.WithQueryParam(cfg.QueryParam))
	}
	client := directory.NewClient(cfg.Endpoint, opts...)

	if query != "" {
		if err := runHeadless(ctx, client, cfg, query, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	// Create UI model
	uiModel := ui.NewModel(ctx, cfg, client, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Run the UI
	log.Printf("Starting UI against %s", cfg.Endpoint)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")
	return 0
}

// setupLogging sends the standard logger to path. The returned func puts
// the logger back on stderr and closes the file.
func setupLogging(path string) func() {
	if path == "" {
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		_ = logFile.Close()
	}
}

// subscribeLoggers records fetch outcomes in the log file
func subscribeLoggers(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventFetchSucceeded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchSucceededEvent); ok {
			log.Printf("Fetch #%d for %q: %d of %d records match", event.Seq, event.Query, event.Matches, event.Total)
		}
	})
	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.FetchFailedEvent)
		if !ok {
			return
		}
		var statusErr *directory.StatusError
		if errors.As(event.Err, &statusErr) {
			log.Printf("Fetch #%d for %q rejected by directory with HTTP %d", event.Seq, event.Query, statusErr.StatusCode)
			return
		}
		log.Printf("Fetch #%d for %q failed: %v", event.Seq, event.Query, event.Err)
	})
}
