package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/config"
	"selectkit/internal/eventbus"
	"selectkit/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "selectkit.toml", "Collection and selection settings")
	flag.StringVar(&configPath, "c", "selectkit.toml", "Collection and selection settings (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("selectkit.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadOrCreateConfig(configSvc, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	mgr := cfg.NewManager(bus)
	uiModel := ui.NewModel(bus, mgr, cfg)
	uiModel.SetConfigTarget(configSvc, configPath)
	defer uiModel.Close()

	log.Printf("Starting UI...")
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config at path, writing the default one when
// the file does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	cfg, err := configSvc.LoadFromPath(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	log.Printf("Creating new config at %s", path)
	cfg = config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, nil
}
