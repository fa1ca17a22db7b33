// Package manager implements the selection operations used by list, grid,
// tree and menu widgets. A Manager binds one collection to one shared
// MultipleSelectionState; it keeps only caches of its own, so managers are
// cheap to create and discard.
package manager

import (
	"selectkit/internal/collection"
	"selectkit/internal/domain"
	"selectkit/internal/selection"
	"selectkit/internal/state"
)

// LayoutDelegate lets virtualized layouts compute a key range without a
// linear walk of the collection
type LayoutDelegate interface {
	GetKeyRange(from, to domain.Key) []domain.Key
}

// Options configures a Manager
type Options struct {
	AllowsCellSelection bool
	LayoutDelegate      LayoutDelegate
}

// Manager is the selection operation surface
type Manager struct {
	collection domain.Collection
	state      *state.MultipleSelectionState
	opts       Options

	order     *collection.OrderIndex
	selectAll selectAllCache
}

// selectAllCache remembers IsSelectAll for one raw selection value under
// one revision of the state props
type selectAllCache struct {
	raw    *selection.Selection
	rev    uint64
	result bool
}

// New creates a manager over c and st
func New(c domain.Collection, st *state.MultipleSelectionState, opts Options) *Manager {
	return &Manager{
		collection: c,
		state:      st,
		opts:       opts,
	}
}

// WithCollection returns a manager over c that shares this manager's state
// and options, so replacing the collection keeps selection and focus.
func (m *Manager) WithCollection(c domain.Collection) *Manager {
	return New(c, m.state, m.opts)
}

// Collection returns the bound collection
func (m *Manager) Collection() domain.Collection {
	return m.collection
}

// State returns the shared state
func (m *Manager) State() *state.MultipleSelectionState {
	return m.state
}

func (m *Manager) AllowsCellSelection() bool {
	return m.opts.AllowsCellSelection
}

func (m *Manager) SelectionMode() domain.SelectionMode {
	return m.state.SelectionMode()
}

func (m *Manager) DisallowEmptySelection() bool {
	return m.state.DisallowEmptySelection()
}

func (m *Manager) SelectionBehavior() domain.SelectionBehavior {
	return m.state.SelectionBehavior()
}

func (m *Manager) SetSelectionBehavior(b domain.SelectionBehavior) {
	m.state.SetSelectionBehavior(b)
}

func (m *Manager) DisabledKeys() map[domain.Key]struct{} {
	return m.state.DisabledKeys()
}

func (m *Manager) DisabledBehavior() domain.DisabledBehavior {
	return m.state.DisabledBehavior()
}

func (m *Manager) IsFocused() bool {
	return m.state.IsFocused()
}

func (m *Manager) SetFocused(f bool) {
	m.state.SetFocused(f)
}

func (m *Manager) FocusedKey() domain.Key {
	return m.state.FocusedKey()
}

func (m *Manager) ChildFocusStrategy() domain.FocusStrategy {
	return m.state.ChildFocusStrategy()
}

// SetFocusedKey moves focus to key. Keys no longer in the collection are
// ignored; nil clears the focused key.
func (m *Manager) SetFocusedKey(key domain.Key, strategy domain.FocusStrategy) {
	if key == nil || m.collection.GetItem(key) != nil {
		m.state.SetFocusedKey(key, strategy)
	}
}

// RawSelection returns the stored value without expanding selection.All.
// It is an empty selection in "none" mode.
func (m *Manager) RawSelection() selection.Value {
	if m.isNone() {
		return selection.New(nil)
	}
	return m.state.SelectedKeys()
}

func (m *Manager) isNone() bool {
	return m.state.SelectionMode() == domain.SelectionNone
}

// orderIndex is built on first use; the collection is a snapshot for the
// lifetime of the manager.
func (m *Manager) orderIndex() *collection.OrderIndex {
	if m.order == nil {
		m.order = collection.NewOrderIndex(m.collection)
	}
	return m.order
}

// commit writes next unless it would empty a selection that must not be empty
func (m *Manager) commit(next selection.Value) {
	if m.state.DisallowEmptySelection() && selection.Size(next) == 0 {
		return
	}
	m.state.SetSelectedKeys(next)
}
