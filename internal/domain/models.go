package domain

// Key identifies an item within a collection. Keys must be comparable values
// (strings or integers in practice); nil means "no key".
type Key any

// NodeType is the kind of a collection node
type NodeType string

const (
	NodeItem      NodeType = "item"
	NodeCell      NodeType = "cell"
	NodeSection   NodeType = "section"
	NodeHeader    NodeType = "header"
	NodeSeparator NodeType = "separator"
)

// Props is the opaque property bag attached to a node
type Props map[string]any

// Prop names the selection model reads
const (
	PropDisabled = "isDisabled"
	PropHref     = "href"
)

// Disabled reports whether the node props mark it disabled
func (p Props) Disabled() bool {
	v, _ := p[PropDisabled].(bool)
	return v
}

// Href returns the link target, "" if none
func (p Props) Href() string {
	v, _ := p[PropHref].(string)
	return v
}

// Node represents one collection entry
type Node struct {
	Type          NodeType
	Key           Key
	ParentKey     Key
	FirstChildKey Key
	LastChildKey  Key
	HasChildNodes bool
	TextValue     string // label used by hosts, ignored by selection
	Level         int    // nesting depth, 0 for top level
	Props         Props
}

// Collection is a read-only ordered view over nodes. The total order is the
// sequence produced by repeated GetKeyAfter starting from GetFirstKey.
type Collection interface {
	GetItem(key Key) *Node
	GetFirstKey() Key
	GetKeyAfter(key Key) Key
	GetChildren(key Key) []*Node
}

// LastKeyer is implemented by collections that can answer GetLastKey without
// walking the whole order
type LastKeyer interface {
	GetLastKey() Key
}

// SelectionMode controls how many items may be selected
type SelectionMode string

const (
	SelectionNone     SelectionMode = "none"
	SelectionSingle   SelectionMode = "single"
	SelectionMultiple SelectionMode = "multiple"
)

// SelectionBehavior controls how pointer gestures change the selection
type SelectionBehavior string

const (
	BehaviorToggle  SelectionBehavior = "toggle"
	BehaviorReplace SelectionBehavior = "replace"
)

// DisabledBehavior controls what disabling an item blocks
type DisabledBehavior string

const (
	DisabledAll       DisabledBehavior = "all"
	DisabledSelection DisabledBehavior = "selection"
)

// FocusStrategy tells a focused parent which child should receive focus
type FocusStrategy string

const (
	FocusNone  FocusStrategy = ""
	FocusFirst FocusStrategy = "first"
	FocusLast  FocusStrategy = "last"
)

// PointerType is the input device that originated a press
type PointerType string

const (
	PointerMouse    PointerType = "mouse"
	PointerPen      PointerType = "pen"
	PointerTouch    PointerType = "touch"
	PointerKeyboard PointerType = "keyboard"
	PointerVirtual  PointerType = "virtual"
)

// PressEvent carries the metadata of a selection gesture
type PressEvent struct {
	PointerType PointerType
	ShiftKey    bool
	CtrlKey     bool
	MetaKey     bool
}
