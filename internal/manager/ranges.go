package manager

import (
	"selectkit/internal/collection"
	"selectkit/internal/domain"
)

// GetKeyRange returns the selectable-type keys between from and to inclusive,
// in collection order whichever end comes first. It returns nil if either end
// is not in the collection.
func (m *Manager) GetKeyRange(from, to domain.Key) []domain.Key {
	fromItem := m.collection.GetItem(from)
	toItem := m.collection.GetItem(to)
	if fromItem == nil || toItem == nil {
		return nil
	}
	if m.orderIndex().Compare(fromItem, toItem) <= 0 {
		return m.keyRange(from, to)
	}
	return m.keyRange(to, from)
}

func (m *Manager) keyRange(from, to domain.Key) []domain.Key {
	if m.opts.LayoutDelegate != nil {
		return m.opts.LayoutDelegate.GetKeyRange(from, to)
	}

	var keys []domain.Key
	for key := from; key != nil; key = m.collection.GetKeyAfter(key) {
		if item := m.collection.GetItem(key); item != nil && m.isRangeType(item) {
			keys = append(keys, key)
		}
		if key == to {
			return keys
		}
	}
	return nil
}

func (m *Manager) isRangeType(item *domain.Node) bool {
	return item.Type == domain.NodeItem || (item.Type == domain.NodeCell && m.opts.AllowsCellSelection)
}

// GetSelectAllKeys returns every selectable item key in collection order.
// Sections and other containers are descended into; items are descended into
// only when cell selection is allowed. Subtrees whose root cannot be selected
// are not entered.
func (m *Manager) GetSelectAllKeys() []domain.Key {
	var keys []domain.Key
	seen := make(map[domain.Key]struct{})

	var addKeys func(key domain.Key)
	addKeys = func(key domain.Key) {
		for key != nil {
			// Flattened collections reach children again through
			// GetKeyAfter; everything after a seen key was already walked.
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}

			if m.CanSelectItem(key) {
				item := m.collection.GetItem(key)
				if item.Type == domain.NodeItem {
					keys = append(keys, key)
				}
				if item.HasChildNodes && (m.opts.AllowsCellSelection || item.Type != domain.NodeItem) {
					if first := collection.GetFirstItem(collection.GetChildNodes(item, m.collection)); first != nil {
						addKeys(first.Key)
					}
				}
			}
			key = m.collection.GetKeyAfter(key)
		}
	}
	addKeys(m.collection.GetFirstKey())
	return keys
}
