package collection

import "selectkit/internal/domain"

// Entry describes one node when building a List
type Entry struct {
	Type     domain.NodeType
	Key      domain.Key
	Text     string
	Props    domain.Props
	Children []Entry
}

// Item returns an item entry
func Item(key domain.Key, text string, children ...Entry) Entry {
	return Entry{Type: domain.NodeItem, Key: key, Text: text, Children: children}
}

// Cell returns a cell entry
func Cell(key domain.Key, text string) Entry {
	return Entry{Type: domain.NodeCell, Key: key, Text: text}
}

// Section returns a section entry
func Section(key domain.Key, text string, children ...Entry) Entry {
	return Entry{Type: domain.NodeSection, Key: key, Text: text, Children: children}
}

// Disabled marks the entry disabled through its props
func (e Entry) Disabled() Entry {
	e.Props = withProp(e.Props, domain.PropDisabled, true)
	return e
}

// Link gives the entry an href
func (e Entry) Link(href string) Entry {
	e.Props = withProp(e.Props, domain.PropHref, href)
	return e
}

func withProp(p domain.Props, name string, v any) domain.Props {
	out := make(domain.Props, len(p)+1)
	for k, val := range p {
		out[k] = val
	}
	out[name] = v
	return out
}

// List is an immutable in-memory collection. Its order is the depth-first
// flattening of the entries: a parent comes before its children and the
// children before the parent's next sibling.
type List struct {
	nodes    map[domain.Key]*domain.Node
	order    []domain.Key
	next     map[domain.Key]domain.Key
	children map[domain.Key][]*domain.Node
	roots    []*domain.Node
}

// NewList builds a List. Later entries with a duplicate key are dropped.
func NewList(entries ...Entry) *List {
	l := &List{
		nodes:    make(map[domain.Key]*domain.Node),
		next:     make(map[domain.Key]domain.Key),
		children: make(map[domain.Key][]*domain.Node),
	}
	for _, e := range entries {
		if n := l.add(e, nil, 0); n != nil {
			l.roots = append(l.roots, n)
		}
	}
	for i := 0; i+1 < len(l.order); i++ {
		l.next[l.order[i]] = l.order[i+1]
	}
	return l
}

func (l *List) add(e Entry, parent domain.Key, level int) *domain.Node {
	if e.Key == nil {
		return nil
	}
	if _, exists := l.nodes[e.Key]; exists {
		return nil
	}
	typ := e.Type
	if typ == "" {
		typ = domain.NodeItem
	}
	n := &domain.Node{
		Type:      typ,
		Key:       e.Key,
		ParentKey: parent,
		TextValue: e.Text,
		Level:     level,
		Props:     e.Props,
	}
	if n.Props == nil {
		n.Props = domain.Props{}
	}
	l.nodes[e.Key] = n
	l.order = append(l.order, e.Key)

	var kids []*domain.Node
	for _, c := range e.Children {
		if child := l.add(c, e.Key, level+1); child != nil {
			kids = append(kids, child)
		}
	}
	if len(kids) > 0 {
		n.HasChildNodes = true
		n.FirstChildKey = kids[0].Key
		n.LastChildKey = kids[len(kids)-1].Key
		l.children[e.Key] = kids
	}
	return n
}

func (l *List) GetItem(key domain.Key) *domain.Node {
	if key == nil {
		return nil
	}
	return l.nodes[key]
}

func (l *List) GetFirstKey() domain.Key {
	if len(l.order) == 0 {
		return nil
	}
	return l.order[0]
}

func (l *List) GetLastKey() domain.Key {
	if len(l.order) == 0 {
		return nil
	}
	return l.order[len(l.order)-1]
}

func (l *List) GetKeyAfter(key domain.Key) domain.Key {
	if key == nil {
		return nil
	}
	return l.next[key]
}

// GetChildren returns a copy of the direct children of key
func (l *List) GetChildren(key domain.Key) []*domain.Node {
	kids := l.children[key]
	if len(kids) == 0 {
		return nil
	}
	out := make([]*domain.Node, len(kids))
	copy(out, kids)
	return out
}

// Roots returns the top-level nodes
func (l *List) Roots() []*domain.Node {
	out := make([]*domain.Node, len(l.roots))
	copy(out, l.roots)
	return out
}

// Keys returns every key in collection order
func (l *List) Keys() []domain.Key {
	out := make([]domain.Key, len(l.order))
	copy(out, l.order)
	return out
}

// Size returns the number of nodes
func (l *List) Size() int {
	return len(l.order)
}

// Filter returns a new List keeping the entries for which keep returns true.
// A dropped parent drops its subtree.
func (l *List) Filter(keep func(*domain.Node) bool) *List {
	var rebuild func(nodes []*domain.Node) []Entry
	rebuild = func(nodes []*domain.Node) []Entry {
		var out []Entry
		for _, n := range nodes {
			if !keep(n) {
				continue
			}
			out = append(out, Entry{
				Type:     n.Type,
				Key:      n.Key,
				Text:     n.TextValue,
				Props:    n.Props,
				Children: rebuild(l.children[n.Key]),
			})
		}
		return out
	}
	return NewList(rebuild(l.roots)...)
}
