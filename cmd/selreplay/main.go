// Command selreplay applies a script of selection gestures to a configured
// collection and prints the selection after each step.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"selectkit/internal/config"
	"selectkit/internal/eventbus"
	"selectkit/internal/replay"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one replay and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("selreplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var configPath, scriptPath string
	var verbose bool
	fs.StringVar(&configPath, "config", "", "Collection and selection settings (default: built-in sample)")
	fs.StringVar(&scriptPath, "script", "", "Gesture script (default: stdin)")
	fs.BoolVar(&verbose, "v", false, "Log domain events to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.SetOutput(io.Discard)
	if verbose {
		log.SetOutput(stderr)
	}

	bus := eventbus.New()
	if verbose {
		logEvent := func(e eventbus.DomainEvent) { log.Printf("%s: %+v", e.Type(), e) }
		bus.Subscribe(eventbus.EventSelectionChanged, logEvent)
		bus.Subscribe(eventbus.EventSelectionBehaviorChanged, logEvent)
		bus.Subscribe(eventbus.EventFocusedKeyChanged, logEvent)
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.NewConfigServiceWithBus(bus).LoadFromPath(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	in := stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error opening script: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	if err := replay.Run(cfg.NewManager(bus), in, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
