package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectkit/internal/collection"
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/manager"
	"selectkit/internal/selection"
	"selectkit/internal/state"
)

// ErrInvalidValue is returned when a setting holds an unknown value
var ErrInvalidValue = errors.New("invalid config value")

// Config represents the selection settings and the collection to select from
type Config struct {
	Version   int               `toml:"version"`
	Selection SelectionSettings `toml:"selection"`
	Items     []ItemConfig      `toml:"items"`
}

// SelectionSettings maps onto state.Props and manager.Options
type SelectionSettings struct {
	Mode                string   `toml:"mode"`
	Behavior            string   `toml:"behavior"`
	DisallowEmpty       bool     `toml:"disallow_empty"`
	AllowDuplicates     bool     `toml:"allow_duplicate_events"`
	DisabledBehavior    string   `toml:"disabled_behavior"`
	AllowsCellSelection bool     `toml:"allows_cell_selection"`
	DisabledKeys        []string `toml:"disabled_keys,omitempty"`
	SelectedKeys        []string `toml:"selected_keys,omitempty"` // ["*"] selects all
}

// ItemConfig describes one collection node; Type defaults to "item"
type ItemConfig struct {
	Key      string       `toml:"key"`
	Title    string       `toml:"title"`
	Type     string       `toml:"type,omitempty"`
	Disabled bool         `toml:"disabled,omitempty"`
	Href     string       `toml:"href,omitempty"`
	Children []ItemConfig `toml:"children,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus eventbus.EventBus
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{bus: eventbus.NullBus{}}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	if bus != nil {
		cs.bus = bus
	}
	return cs
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded config from %s", path)
	cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

// Parse decodes and validates a TOML document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings and key uniqueness
func (c *Config) Validate() error {
	s := c.Selection
	switch domain.SelectionMode(s.Mode) {
	case "", domain.SelectionNone, domain.SelectionSingle, domain.SelectionMultiple:
	default:
		return fmt.Errorf("selection.mode %q: %w", s.Mode, ErrInvalidValue)
	}
	switch domain.SelectionBehavior(s.Behavior) {
	case "", domain.BehaviorToggle, domain.BehaviorReplace:
	default:
		return fmt.Errorf("selection.behavior %q: %w", s.Behavior, ErrInvalidValue)
	}
	switch domain.DisabledBehavior(s.DisabledBehavior) {
	case "", domain.DisabledAll, domain.DisabledSelection:
	default:
		return fmt.Errorf("selection.disabled_behavior %q: %w", s.DisabledBehavior, ErrInvalidValue)
	}

	seen := make(map[string]bool)
	var check func(items []ItemConfig) error
	check = func(items []ItemConfig) error {
		for _, it := range items {
			if it.Key == "" {
				return fmt.Errorf("item %q has no key: %w", it.Title, ErrInvalidValue)
			}
			if seen[it.Key] {
				return fmt.Errorf("duplicate item key %q: %w", it.Key, ErrInvalidValue)
			}
			seen[it.Key] = true
			switch domain.NodeType(it.Type) {
			case "", domain.NodeItem, domain.NodeCell, domain.NodeSection, domain.NodeHeader, domain.NodeSeparator:
			default:
				return fmt.Errorf("item %q type %q: %w", it.Key, it.Type, ErrInvalidValue)
			}
			if err := check(it.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return check(c.Items)
}

// Props converts the selection settings into state props
func (c *Config) Props() state.Props {
	s := c.Selection
	props := state.Props{
		SelectionMode:                 domain.SelectionMode(s.Mode),
		SelectionBehavior:             domain.SelectionBehavior(s.Behavior),
		DisallowEmptySelection:        s.DisallowEmpty,
		AllowDuplicateSelectionEvents: s.AllowDuplicates,
		DisabledBehavior:              domain.DisabledBehavior(s.DisabledBehavior),
		DisabledKeys:                  toKeys(s.DisabledKeys),
	}
	if len(s.SelectedKeys) == 1 && s.SelectedKeys[0] == "*" {
		props.DefaultSelectedKeys = selection.All
	} else if len(s.SelectedKeys) > 0 {
		props.DefaultSelectedKeys = selection.New(toKeys(s.SelectedKeys))
	}
	return props
}

// ManagerOptions returns the manager settings
func (c *Config) ManagerOptions() manager.Options {
	return manager.Options{AllowsCellSelection: c.Selection.AllowsCellSelection}
}

// NewManager builds the state and manager described by the config
func (c *Config) NewManager(bus eventbus.EventBus) *manager.Manager {
	st := state.New(c.Props(), state.WithBus(bus))
	return manager.New(c.Collection(), st, c.ManagerOptions())
}

// Collection builds the in-memory collection described by Items
func (c *Config) Collection() *collection.List {
	return collection.NewList(toEntries(c.Items)...)
}

func toEntries(items []ItemConfig) []collection.Entry {
	entries := make([]collection.Entry, 0, len(items))
	for _, it := range items {
		e := collection.Entry{
			Type:     domain.NodeType(it.Type),
			Key:      it.Key,
			Text:     it.Title,
			Children: toEntries(it.Children),
		}
		if it.Disabled {
			e = e.Disabled()
		}
		if it.Href != "" {
			e = e.Link(it.Href)
		}
		entries = append(entries, e)
	}
	return entries
}

func toKeys(ss []string) []domain.Key {
	if len(ss) == 0 {
		return nil
	}
	out := make([]domain.Key, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// DefaultConfig returns a small grouped collection in multiple mode
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Selection: SelectionSettings{
			Mode:             string(domain.SelectionMultiple),
			Behavior:         string(domain.BehaviorReplace),
			DisabledBehavior: string(domain.DisabledAll),
		},
		Items: []ItemConfig{
			{Key: "fruit", Title: "Fruit", Type: string(domain.NodeSection), Children: []ItemConfig{
				{Key: "apple", Title: "Apple"},
				{Key: "banana", Title: "Banana"},
				{Key: "cherry", Title: "Cherry", Disabled: true},
			}},
			{Key: "veg", Title: "Vegetables", Type: string(domain.NodeSection), Children: []ItemConfig{
				{Key: "carrot", Title: "Carrot"},
				{Key: "leek", Title: "Leek"},
			}},
			{Key: "docs", Title: "Documentation", Href: "https://example.com/docs"},
		},
	}
}
