package manager

import (
	"selectkit/internal/domain"
	"selectkit/internal/selection"
)

// ExtendSelection extends the range from the anchor to toKey, as on
// shift-click. Keys of the previous range [anchor, current] are removed before
// the new range [toKey, anchor] is added, so moving back toward the anchor
// shrinks the range.
func (m *Manager) ExtendSelection(toKey domain.Key) {
	switch m.state.SelectionMode() {
	case domain.SelectionNone:
		return
	case domain.SelectionSingle:
		m.ReplaceSelection(toKey)
		return
	}

	mappedTo := m.GetKey(toKey)
	if mappedTo == nil {
		return
	}

	raw := m.state.SelectedKeys()
	if selection.IsAll(raw) {
		m.commit(selection.New([]domain.Key{mappedTo},
			selection.WithAnchorKey(mappedTo), selection.WithCurrentKey(mappedTo)))
		return
	}

	current := selection.AsSelection(raw)
	anchor := current.AnchorKey()
	if anchor == nil {
		anchor = mappedTo
	}
	oldCurrent := current.CurrentKey()
	if oldCurrent == nil {
		oldCurrent = mappedTo
	}

	b := current.Edit().SetAnchorKey(anchor).SetCurrentKey(mappedTo)
	for _, k := range m.GetKeyRange(anchor, oldCurrent) {
		b.Delete(k)
	}
	for _, k := range m.GetKeyRange(mappedTo, anchor) {
		if m.CanSelectItem(k) {
			b.Add(k)
		}
	}
	m.commit(b.Build())
}

// ToggleSelection adds or removes key, as on ctrl-click. Adding moves the
// anchor to key. In single mode an unselected key replaces the selection.
func (m *Manager) ToggleSelection(key domain.Key) {
	if m.isNone() {
		return
	}
	if m.state.SelectionMode() == domain.SelectionSingle && !m.IsSelected(key) {
		m.ReplaceSelection(key)
		return
	}

	mapped := m.GetKey(key)
	if mapped == nil {
		return
	}

	b := m.SelectedKeys().Edit()
	if b.Has(mapped) {
		b.Delete(mapped)
	} else if m.CanSelectItem(mapped) {
		b.Add(mapped).SetAnchorKey(mapped).SetCurrentKey(mapped)
	}
	m.commit(b.Build())
}

// ReplaceSelection makes key the only selected key and the new anchor. A key
// that cannot be selected clears the selection.
func (m *Manager) ReplaceSelection(key domain.Key) {
	if m.isNone() {
		return
	}
	mapped := m.GetKey(key)
	if mapped == nil {
		return
	}
	if !m.CanSelectItem(mapped) {
		m.commit(selection.New(nil))
		return
	}
	m.commit(selection.New([]domain.Key{mapped},
		selection.WithAnchorKey(mapped), selection.WithCurrentKey(mapped)))
}

// SetSelectedKeys replaces the selection with keys, mapped through GetKey.
// Single mode keeps only the first mappable key.
func (m *Manager) SetSelectedKeys(keys []domain.Key) {
	if m.isNone() {
		return
	}
	b := selection.NewBuilder()
	for _, k := range keys {
		mapped := m.GetKey(k)
		if mapped == nil {
			continue
		}
		b.Add(mapped)
		if m.state.SelectionMode() == domain.SelectionSingle {
			break
		}
	}
	m.commit(b.Build())
}

// SelectAll stores selection.All without enumerating the collection
func (m *Manager) SelectAll() {
	if m.state.SelectionMode() != domain.SelectionMultiple || m.IsSelectAll() {
		return
	}
	m.commit(selection.All)
}

// ClearSelection empties the selection unless empty selection is disallowed
func (m *Manager) ClearSelection() {
	if m.isNone() || m.state.DisallowEmptySelection() || m.IsEmpty() {
		return
	}
	m.commit(selection.New(nil))
}

// ToggleSelectAll clears a full selection and selects all otherwise
func (m *Manager) ToggleSelectAll() {
	if m.IsSelectAll() {
		m.ClearSelection()
	} else {
		m.SelectAll()
	}
}

// pointerForcesToggle is the rule that touch and virtual (screen reader,
// keyboard-synthesized) presses toggle in multiple mode even when the
// behavior is replace.
func pointerForcesToggle(e *domain.PressEvent) bool {
	return e != nil && (e.PointerType == domain.PointerTouch || e.PointerType == domain.PointerVirtual)
}

// Select applies a press on key. Single mode toggles a selected key off when
// empty selection is allowed and replaces otherwise. Multiple mode toggles
// with toggle behavior or when pointerForcesToggle holds, and replaces
// otherwise.
func (m *Manager) Select(key domain.Key, e *domain.PressEvent) {
	switch m.state.SelectionMode() {
	case domain.SelectionNone:
		return
	case domain.SelectionSingle:
		if m.IsSelected(key) && !m.state.DisallowEmptySelection() {
			m.ToggleSelection(key)
		} else {
			m.ReplaceSelection(key)
		}
	default:
		if m.state.SelectionBehavior() == domain.BehaviorToggle || pointerForcesToggle(e) {
			m.ToggleSelection(key)
		} else {
			m.ReplaceSelection(key)
		}
	}
}
