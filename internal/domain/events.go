package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged         EventType = "SelectionChanged"
	EventSelectionBehaviorChanged EventType = "SelectionBehaviorChanged"
	EventFocusChanged             EventType = "FocusChanged"
	EventFocusedKeyChanged        EventType = "FocusedKeyChanged"
	EventConfigLoaded             EventType = "ConfigLoaded"
	EventConfigSaved              EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when the selected keys change. Selection
// holds the new value; it is either the "all" sentinel or a concrete selection.
type SelectionChangedEvent struct {
	Selection any
	All       bool
	Count     int // -1 when All is set
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionBehaviorChangedEvent is emitted when the gesture behavior switches
type SelectionBehaviorChangedEvent struct {
	Behavior SelectionBehavior
}

func (e SelectionBehaviorChangedEvent) Type() EventType { return EventSelectionBehaviorChanged }

// FocusChangedEvent is emitted when the collection gains or loses focus
type FocusChangedEvent struct {
	Focused bool
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// FocusedKeyChangedEvent is emitted when the focused item moves
type FocusedKeyChangedEvent struct {
	Key      Key
	Strategy FocusStrategy
}

func (e FocusedKeyChangedEvent) Type() EventType { return EventFocusedKeyChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
