// Package state holds the selection state shared by every manager bound to
// the same widget.
package state

import (
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/selection"
)

// MultipleSelectionState is the possibly controlled holder of selection mode,
// behavior, selected keys, disabled keys and focus.
type MultipleSelectionState struct {
	props    Props
	bus      eventbus.EventBus
	behavior domain.SelectionBehavior
	selected selection.Value // uncontrolled value
	focus    focus
	revision uint64
}

// New creates a state from props
func New(props Props, opts ...Option) *MultipleSelectionState {
	props = props.withDefaults()
	s := &MultipleSelectionState{
		props:    props,
		bus:      eventbus.NullBus{},
		behavior: props.SelectionBehavior,
		selected: convert(props.DefaultSelectedKeys),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func convert(v selection.Value) selection.Value {
	if v == nil {
		return selection.New(nil)
	}
	if selection.IsAll(v) {
		return selection.All
	}
	return selection.AsSelection(v)
}

// UpdateProps applies a new set of props, as when the owning component
// re-renders. A changed behavior prop overrides the live behavior and a
// controlled value is taken over without notification.
func (s *MultipleSelectionState) UpdateProps(props Props) {
	props = props.withDefaults()
	if props.SelectionBehavior != s.props.SelectionBehavior {
		s.setBehavior(props.SelectionBehavior)
	}
	s.props = props
	s.revision++
	s.resetBehaviorIfEmpty()
}

// Revision counts UpdateProps calls. Values derived from mode or disabled
// keys stay valid while it is unchanged.
func (s *MultipleSelectionState) Revision() uint64 {
	return s.revision
}

func (s *MultipleSelectionState) SelectionMode() domain.SelectionMode {
	return s.props.SelectionMode
}

func (s *MultipleSelectionState) DisallowEmptySelection() bool {
	return s.props.DisallowEmptySelection
}

func (s *MultipleSelectionState) DisabledBehavior() domain.DisabledBehavior {
	return s.props.DisabledBehavior
}

// DisabledKeys returns a fresh set built from the configured disabled keys
func (s *MultipleSelectionState) DisabledKeys() map[domain.Key]struct{} {
	out := make(map[domain.Key]struct{}, len(s.props.DisabledKeys))
	for _, k := range s.props.DisabledKeys {
		out[k] = struct{}{}
	}
	return out
}

// IsDisabledKey reports membership in the configured disabled keys without
// allocating a set
func (s *MultipleSelectionState) IsDisabledKey(key domain.Key) bool {
	for _, k := range s.props.DisabledKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *MultipleSelectionState) SelectionBehavior() domain.SelectionBehavior {
	return s.behavior
}

// SetSelectionBehavior switches the live gesture behavior. An explicit
// switch to toggle holds even while the selection is empty; the reset to
// the replace prop only follows selection writes and UpdateProps.
func (s *MultipleSelectionState) SetSelectionBehavior(b domain.SelectionBehavior) {
	s.setBehavior(b)
}

func (s *MultipleSelectionState) setBehavior(b domain.SelectionBehavior) {
	if b == s.behavior {
		return
	}
	s.behavior = b
	s.bus.Publish(eventbus.SelectionBehaviorChangedEvent{Behavior: b})
}

// resetBehaviorIfEmpty leaves a temporary toggle behavior (entered with a
// long press on touch devices) once the selection is empty again
func (s *MultipleSelectionState) resetBehaviorIfEmpty() {
	if s.props.SelectionBehavior == domain.BehaviorReplace &&
		s.behavior == domain.BehaviorToggle &&
		selection.Size(s.SelectedKeys()) == 0 {
		s.setBehavior(domain.BehaviorReplace)
	}
}

// IsControlled reports whether the selected keys are owned by the caller
func (s *MultipleSelectionState) IsControlled() bool {
	return s.props.SelectedKeys != nil
}

// SelectedKeys returns the current value: selection.All or a *Selection
func (s *MultipleSelectionState) SelectedKeys() selection.Value {
	if s.IsControlled() {
		return convert(s.props.SelectedKeys)
	}
	return s.selected
}

// SetSelectedKeys writes a new value. Values equal to the current one are
// dropped unless AllowDuplicateSelectionEvents is set, so repeated identical
// writes never notify.
func (s *MultipleSelectionState) SetSelectedKeys(v selection.Value) {
	v = convert(v)
	if !s.props.AllowDuplicateSelectionEvents && selection.Equal(v, s.SelectedKeys()) {
		return
	}
	if !s.IsControlled() {
		s.selected = v
	}
	if s.props.OnSelectionChange != nil {
		s.props.OnSelectionChange(v)
	}
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Selection: v,
		All:       selection.IsAll(v),
		Count:     selection.Size(v),
	})
	s.resetBehaviorIfEmpty()
}

func (s *MultipleSelectionState) IsFocused() bool {
	return s.focus.isFocused
}

func (s *MultipleSelectionState) SetFocused(f bool) {
	if f == s.focus.isFocused {
		return
	}
	s.focus.isFocused = f
	s.bus.Publish(eventbus.FocusChangedEvent{Focused: f})
}

func (s *MultipleSelectionState) FocusedKey() domain.Key {
	return s.focus.key
}

func (s *MultipleSelectionState) ChildFocusStrategy() domain.FocusStrategy {
	return s.focus.strategy
}

// SetFocusedKey moves focus to key. An empty strategy means FocusFirst. The
// key is not checked against any collection; managers do that.
func (s *MultipleSelectionState) SetFocusedKey(key domain.Key, strategy domain.FocusStrategy) {
	if strategy == domain.FocusNone {
		strategy = domain.FocusFirst
	}
	if key == s.focus.key && strategy == s.focus.strategy {
		return
	}
	s.focus.key = key
	s.focus.strategy = strategy
	s.bus.Publish(eventbus.FocusedKeyChangedEvent{Key: key, Strategy: strategy})
}
