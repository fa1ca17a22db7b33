package selection

// Value is either All or a *Selection
type Value interface {
	isSelectionValue()
}

type allValue struct{}

func (allValue) isSelectionValue() {}

func (allValue) String() string { return "all" }

// All means every currently selectable item is selected. It is never expanded
// into explicit keys by the value itself.
var All Value = allValue{}

// IsAll reports whether v is the "all" sentinel
func IsAll(v Value) bool {
	_, ok := v.(allValue)
	return ok
}

// AsSelection returns the concrete selection held by v. It returns nil for
// All and an empty selection for a nil value.
func AsSelection(v Value) *Selection {
	switch t := v.(type) {
	case *Selection:
		if t == nil {
			return New(nil)
		}
		return t
	case nil:
		return New(nil)
	default:
		return nil
	}
}

// Equal compares two values: All equals only All, concrete selections are
// equal when they have the same size and membership. Nil counts as empty.
func Equal(a, b Value) bool {
	if IsAll(a) || IsAll(b) {
		return IsAll(a) && IsAll(b)
	}
	return AsSelection(a).Equal(AsSelection(b))
}

// Size returns the number of keys in v, or -1 for All
func Size(v Value) int {
	if IsAll(v) {
		return -1
	}
	return AsSelection(v).Len()
}
