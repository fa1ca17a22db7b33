package collection

import "selectkit/internal/domain"

// GetChildNodes returns the direct children of item
func GetChildNodes(item *domain.Node, c domain.Collection) []*domain.Node {
	if item == nil || c == nil {
		return nil
	}
	return c.GetChildren(item.Key)
}

// GetFirstItem returns the first node or nil
func GetFirstItem(nodes []*domain.Node) *domain.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// CompareNodeOrder returns -1, 0 or 1 depending on whether a comes before,
// at, or after b in the collection order. It walks the whole collection on
// every call; use an OrderIndex when comparing repeatedly.
func CompareNodeOrder(c domain.Collection, a, b *domain.Node) int {
	return NewOrderIndex(c).Compare(a, b)
}

// GetLastKey returns the last key of the collection order, using the
// collection's own answer when it has one
func GetLastKey(c domain.Collection) domain.Key {
	if lk, ok := c.(domain.LastKeyer); ok {
		return lk.GetLastKey()
	}
	var last domain.Key
	seen := make(map[domain.Key]struct{})
	for key := c.GetFirstKey(); key != nil; key = c.GetKeyAfter(key) {
		if _, ok := seen[key]; ok {
			break
		}
		seen[key] = struct{}{}
		last = key
	}
	return last
}

// OrderIndex maps every key of a collection to its position in the order.
// It is a snapshot: build a new one when the collection is replaced.
type OrderIndex struct {
	index map[domain.Key]int
}

// NewOrderIndex walks c once from its first key
func NewOrderIndex(c domain.Collection) *OrderIndex {
	o := &OrderIndex{index: make(map[domain.Key]int)}
	if c == nil {
		return o
	}
	i := 0
	for key := c.GetFirstKey(); key != nil; key = c.GetKeyAfter(key) {
		if _, ok := o.index[key]; ok {
			break // cycle
		}
		o.index[key] = i
		i++
	}
	return o
}

// Index returns the position of key
func (o *OrderIndex) Index(key domain.Key) (int, bool) {
	i, ok := o.index[key]
	return i, ok
}

// Len returns the number of indexed keys
func (o *OrderIndex) Len() int {
	return len(o.index)
}

// Compare orders two nodes; nodes missing from the index compare equal
func (o *OrderIndex) Compare(a, b *domain.Node) int {
	if a == nil || b == nil {
		return 0
	}
	ai, aok := o.index[a.Key]
	bi, bok := o.index[b.Key]
	if !aok || !bok {
		return 0
	}
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}
