package state

import (
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/selection"
)

// Props configures a MultipleSelectionState. Zero values fall back to the
// defaults: mode none, behavior toggle, disabled behavior all.
type Props struct {
	SelectionMode                 domain.SelectionMode
	SelectionBehavior             domain.SelectionBehavior
	DisallowEmptySelection        bool
	AllowDuplicateSelectionEvents bool

	// SelectedKeys makes the selection controlled when non-nil: writes are
	// reported through OnSelectionChange and the owner feeds the new value
	// back with UpdateProps.
	SelectedKeys        selection.Value
	DefaultSelectedKeys selection.Value
	OnSelectionChange   func(selection.Value)

	DisabledKeys     []domain.Key
	DisabledBehavior domain.DisabledBehavior
}

func (p Props) withDefaults() Props {
	if p.SelectionMode == "" {
		p.SelectionMode = domain.SelectionNone
	}
	if p.SelectionBehavior == "" {
		p.SelectionBehavior = domain.BehaviorToggle
	}
	if p.DisabledBehavior == "" {
		p.DisabledBehavior = domain.DisabledAll
	}
	return p
}

// Option configures optional collaborators
type Option func(*MultipleSelectionState)

// WithBus publishes state changes on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *MultipleSelectionState) {
		if bus != nil {
			s.bus = bus
		}
	}
}

// focus holds the focus sub-state
type focus struct {
	isFocused bool
	key       domain.Key
	strategy  domain.FocusStrategy
}
