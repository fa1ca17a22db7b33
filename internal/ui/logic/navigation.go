package logic

// Navigator handles cursor movement over rows and viewport management.
// Rows that cannot take focus (section headers) are skipped.
type Navigator struct {
	focusable      []bool
	selectedIndex  int
	viewportOffset int
	viewportHeight int
}

// NewNavigator creates a navigator positioned on the first focusable row
func NewNavigator(focusable []bool) *Navigator {
	n := &Navigator{focusable: focusable, selectedIndex: -1, viewportHeight: 20}
	n.selectedIndex = n.next(-1, 1)
	return n
}

// GetSelectedIndex returns the cursor row, -1 when no row can take focus
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetViewportHeight returns the number of visible rows
func (n *Navigator) GetViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight resizes the viewport, keeping the cursor visible
func (n *Navigator) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	n.viewportHeight = h
	n.ensureSelectedVisible()
}

// SetSelectedIndex moves the cursor to index if that row can take focus
func (n *Navigator) SetSelectedIndex(index int) bool {
	if index < 0 || index >= len(n.focusable) || !n.focusable[index] {
		return false
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return true
}

// Move steps the cursor by delta focusable rows and reports whether it moved
func (n *Navigator) Move(delta int) bool {
	if delta == 0 || n.selectedIndex < 0 {
		return false
	}
	step := 1
	if delta < 0 {
		step, delta = -1, -delta
	}
	idx := n.selectedIndex
	for ; delta > 0; delta-- {
		next := n.next(idx, step)
		if next < 0 {
			break
		}
		idx = next
	}
	if idx == n.selectedIndex {
		return false
	}
	n.selectedIndex = idx
	n.ensureSelectedVisible()
	return true
}

// Home moves to the first focusable row
func (n *Navigator) Home() bool {
	return n.SetSelectedIndex(n.next(-1, 1))
}

// End moves to the last focusable row
func (n *Navigator) End() bool {
	return n.SetSelectedIndex(n.next(len(n.focusable), -1))
}

func (n *Navigator) next(from, step int) int {
	for i := from + step; i >= 0 && i < len(n.focusable); i += step {
		if n.focusable[i] {
			return i
		}
	}
	return -1
}

func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < 0 {
		return
	}
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
		// Keep a section header above its first item in view
		if n.viewportOffset > 0 && !n.focusable[n.viewportOffset-1] {
			n.viewportOffset--
		}
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	if maxOffset := len(n.focusable) - n.viewportHeight; n.viewportOffset > maxOffset && maxOffset >= 0 {
		n.viewportOffset = maxOffset
	}
}
