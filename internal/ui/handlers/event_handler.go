package handlers

import (
	"fmt"

	"selectkit/internal/eventbus"
)

// EventHandler turns domain events into status line text
type EventHandler struct {
	status  string
	changes int
	history []string
	unsubs  []func()
}

// NewEventHandler subscribes to the selection events on bus
func NewEventHandler(bus eventbus.EventBus) *EventHandler {
	h := &EventHandler{}
	for _, t := range []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventSelectionBehaviorChanged,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		h.unsubs = append(h.unsubs, bus.Subscribe(t, h.HandleEvent))
	}
	return h
}

// HandleEvent records a status message for event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SelectionChangedEvent:
		h.changes++
		if e.All {
			h.status = "Selected all"
		} else {
			h.status = fmt.Sprintf("Selection changed (%d)", e.Count)
		}
	case eventbus.SelectionBehaviorChangedEvent:
		h.status = fmt.Sprintf("Behavior: %s", e.Behavior)
	case eventbus.ConfigLoadedEvent:
		h.status = fmt.Sprintf("Loaded %s", e.Path)
	case eventbus.ConfigSavedEvent:
		h.status = fmt.Sprintf("Saved %s", e.Path)
	default:
		return
	}
	h.history = append(h.history, fmt.Sprintf("%s  %s", event.Type(), h.status))
}

// SetStatus overrides the status message
func (h *EventHandler) SetStatus(s string) {
	h.status = s
}

// Status returns the latest status message
func (h *EventHandler) Status() string {
	return h.status
}

// History lists one line per handled event, oldest first
func (h *EventHandler) History() []string {
	return h.history
}

// Changes counts selection change notifications seen so far
func (h *EventHandler) Changes() int {
	return h.changes
}

// Close unsubscribes from the bus
func (h *EventHandler) Close() {
	for _, u := range h.unsubs {
		u()
	}
	h.unsubs = nil
}
