package manager

import "selectkit/internal/domain"

// GetKey maps an interacted key to the key that selection applies to. Cells
// map to their row unless cell selection is allowed; sections and other
// wrappers map up to the nearest item. Keys unknown to the collection are
// returned unchanged and nil means there is no selectable representative.
func (m *Manager) GetKey(key domain.Key) domain.Key {
	item := m.collection.GetItem(key)
	if item == nil {
		return key
	}
	if item.Type == domain.NodeCell && m.opts.AllowsCellSelection {
		return key
	}
	for item != nil && item.Type != domain.NodeItem && item.ParentKey != nil {
		item = m.collection.GetItem(item.ParentKey)
	}
	if item == nil || item.Type != domain.NodeItem {
		return nil
	}
	return item.Key
}

// CanSelectItem reports whether key may become selected
func (m *Manager) CanSelectItem(key domain.Key) bool {
	if m.isNone() || key == nil || m.state.IsDisabledKey(key) {
		return false
	}
	item := m.collection.GetItem(key)
	if item == nil || item.Props.Disabled() {
		return false
	}
	if item.Type == domain.NodeCell && !m.opts.AllowsCellSelection {
		return false
	}
	return true
}

// IsDisabled reports whether key is disabled for all interaction. With
// DisabledSelection behavior items stay interactive (focus, actions) and only
// their selection is blocked, which CanSelectItem handles.
func (m *Manager) IsDisabled(key domain.Key) bool {
	if m.state.DisabledBehavior() != domain.DisabledAll {
		return false
	}
	if m.state.IsDisabledKey(key) {
		return true
	}
	item := m.collection.GetItem(key)
	return item != nil && item.Props.Disabled()
}

// IsLink reports whether the item carries an href
func (m *Manager) IsLink(key domain.Key) bool {
	item := m.collection.GetItem(key)
	return item != nil && item.Props.Href() != ""
}

// GetItemProps returns the props of the item, nil if it does not exist
func (m *Manager) GetItemProps(key domain.Key) domain.Props {
	item := m.collection.GetItem(key)
	if item == nil {
		return nil
	}
	return item.Props
}
