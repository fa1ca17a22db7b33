package manager

import (
	"selectkit/internal/collection"
	"selectkit/internal/domain"
	"selectkit/internal/selection"
)

// SelectedKeys returns the selection as explicit keys. selection.All is
// expanded to the selectable keys of the collection. Nothing is selected in
// "none" mode, whatever the state holds.
func (m *Manager) SelectedKeys() *selection.Selection {
	if m.isNone() {
		return selection.New(nil)
	}
	raw := m.state.SelectedKeys()
	if selection.IsAll(raw) {
		return selection.New(m.GetSelectAllKeys())
	}
	return selection.AsSelection(raw)
}

// IsSelected reports whether key (after GetKey mapping) is selected
func (m *Manager) IsSelected(key domain.Key) bool {
	if m.isNone() {
		return false
	}
	mapped := m.GetKey(key)
	if mapped == nil {
		return false
	}
	raw := m.state.SelectedKeys()
	if selection.IsAll(raw) {
		return m.CanSelectItem(mapped)
	}
	return selection.AsSelection(raw).Has(mapped)
}

// IsEmpty reports whether nothing is selected. It is never true for
// selection.All, even over an empty collection.
func (m *Manager) IsEmpty() bool {
	if m.isNone() {
		return true
	}
	raw := m.state.SelectedKeys()
	return !selection.IsAll(raw) && selection.AsSelection(raw).Len() == 0
}

// IsSelectAll reports whether every selectable item is selected. For a
// concrete selection the answer is computed once per stored value and
// state revision.
func (m *Manager) IsSelectAll() bool {
	if m.isNone() || m.IsEmpty() {
		return false
	}
	raw := m.state.SelectedKeys()
	if selection.IsAll(raw) {
		return true
	}
	current := selection.AsSelection(raw)
	rev := m.state.Revision()
	if m.selectAll.raw == current && m.selectAll.rev == rev {
		return m.selectAll.result
	}
	result := true
	for _, k := range m.GetSelectAllKeys() {
		if !current.Has(k) {
			result = false
			break
		}
	}
	m.selectAll = selectAllCache{raw: current, rev: rev, result: result}
	return result
}

// FirstSelectedKey returns the selected key that comes first in collection
// order. It scans the whole selection.
func (m *Manager) FirstSelectedKey() domain.Key {
	return m.edgeSelectedKey(-1)
}

// LastSelectedKey returns the selected key that comes last in collection
// order. It scans the whole selection.
func (m *Manager) LastSelectedKey() domain.Key {
	return m.edgeSelectedKey(1)
}

func (m *Manager) edgeSelectedKey(dir int) domain.Key {
	if m.isNone() {
		return nil
	}
	raw := m.state.SelectedKeys()
	if selection.IsAll(raw) {
		if dir < 0 {
			return m.collection.GetFirstKey()
		}
		return collection.GetLastKey(m.collection)
	}
	order := m.orderIndex()
	var best *domain.Node
	selection.AsSelection(raw).Each(func(k domain.Key) bool {
		item := m.collection.GetItem(k)
		if item == nil {
			return true
		}
		if best == nil || order.Compare(item, best) == dir {
			best = item
		}
		return true
	})
	if best == nil {
		return nil
	}
	return best.Key
}

// IsSelectionEqual compares other against the explicit selected keys. In
// "none" mode only an empty selection compares equal.
func (m *Manager) IsSelectionEqual(other *selection.Selection) bool {
	if m.isNone() {
		return other.Len() == 0
	}
	if raw, ok := m.state.SelectedKeys().(*selection.Selection); ok && raw == other {
		return true
	}
	return m.SelectedKeys().Equal(other)
}
