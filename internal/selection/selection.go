// Package selection holds the immutable selection value shared by list, grid
// and tree selection state.
package selection

import "selectkit/internal/domain"

// Selection is an immutable ordered set of keys plus the anchor and current
// keys of the most recent range extension. Transitions go through Edit, which
// returns a Builder working on a copy.
type Selection struct {
	keys       []domain.Key
	index      map[domain.Key]struct{}
	anchorKey  domain.Key
	currentKey domain.Key
}

// Option overrides a field while constructing a Selection
type Option func(*Selection)

// WithAnchorKey sets the range anchor
func WithAnchorKey(k domain.Key) Option {
	return func(s *Selection) { s.anchorKey = k }
}

// WithCurrentKey sets the range endpoint
func WithCurrentKey(k domain.Key) Option {
	return func(s *Selection) { s.currentKey = k }
}

// New creates a selection from keys. Duplicates keep their first position.
func New(keys []domain.Key, opts ...Option) *Selection {
	s := &Selection{
		keys:  make([]domain.Key, 0, len(keys)),
		index: make(map[domain.Key]struct{}, len(keys)),
	}
	for _, k := range keys {
		s.add(k)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// From copies other, keeping its anchor and current key unless opts override
// them. A nil other yields an empty selection.
func From(other *Selection, opts ...Option) *Selection {
	if other == nil {
		return New(nil, opts...)
	}
	s := New(other.keys)
	s.anchorKey = other.anchorKey
	s.currentKey = other.currentKey
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Selection) add(k domain.Key) {
	if _, ok := s.index[k]; ok {
		return
	}
	s.index[k] = struct{}{}
	s.keys = append(s.keys, k)
}

func (s *Selection) remove(k domain.Key) {
	if _, ok := s.index[k]; !ok {
		return
	}
	delete(s.index, k)
	for i, item := range s.keys {
		if item == k {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

func (*Selection) isSelectionValue() {}

// Has reports whether k is selected
func (s *Selection) Has(k domain.Key) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[k]
	return ok
}

// Len returns the number of selected keys
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the selected keys in insertion order
func (s *Selection) Keys() []domain.Key {
	if s == nil {
		return nil
	}
	out := make([]domain.Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Each calls fn for every key in insertion order until fn returns false
func (s *Selection) Each(fn func(domain.Key) bool) {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		if !fn(k) {
			return
		}
	}
}

func (s *Selection) AnchorKey() domain.Key {
	if s == nil {
		return nil
	}
	return s.anchorKey
}

func (s *Selection) CurrentKey() domain.Key {
	if s == nil {
		return nil
	}
	return s.currentKey
}

// Equal reports whether both selections hold the same keys. Anchor and
// current key are not compared.
func (s *Selection) Equal(other *Selection) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == other || s.Len() == 0 {
		return true
	}
	for _, k := range s.keys {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Edit starts a transition from s
func (s *Selection) Edit() *Builder {
	return &Builder{s: From(s)}
}

// Builder accumulates changes for the next Selection. It must not be used
// after Build.
type Builder struct {
	s *Selection
}

// NewBuilder starts from an empty selection
func NewBuilder() *Builder {
	return &Builder{s: New(nil)}
}

func (b *Builder) Add(k domain.Key) *Builder {
	b.s.add(k)
	return b
}

func (b *Builder) Delete(k domain.Key) *Builder {
	b.s.remove(k)
	return b
}

func (b *Builder) SetAnchorKey(k domain.Key) *Builder {
	b.s.anchorKey = k
	return b
}

func (b *Builder) SetCurrentKey(k domain.Key) *Builder {
	b.s.currentKey = k
	return b
}

func (b *Builder) Has(k domain.Key) bool { return b.s.Has(k) }

func (b *Builder) Len() int { return b.s.Len() }

// Build returns the finished selection
func (b *Builder) Build() *Selection {
	s := b.s
	b.s = nil
	return s
}
