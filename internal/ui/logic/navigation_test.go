package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorSkipsUnfocusableRows(t *testing.T) {
	n := NewNavigator([]bool{false, true, true, false, true})
	assert.Equal(t, 1, n.GetSelectedIndex())

	assert.True(t, n.Move(2))
	assert.Equal(t, 4, n.GetSelectedIndex())

	assert.False(t, n.Move(1))
	assert.Equal(t, 4, n.GetSelectedIndex())

	assert.True(t, n.Move(-1))
	assert.Equal(t, 2, n.GetSelectedIndex())

	assert.False(t, n.SetSelectedIndex(3))
	assert.True(t, n.Home())
	assert.Equal(t, 1, n.GetSelectedIndex())
	assert.True(t, n.End())
	assert.Equal(t, 4, n.GetSelectedIndex())
}

func TestNavigatorWithoutFocusableRows(t *testing.T) {
	n := NewNavigator([]bool{false, false})
	assert.Equal(t, -1, n.GetSelectedIndex())
	assert.False(t, n.Move(1))
	assert.False(t, n.End())
}

func TestNavigatorViewport(t *testing.T) {
	rows := []bool{false, true, true, true, false, true, true, true}
	n := NewNavigator(rows)
	n.SetViewportHeight(2)

	n.End()
	assert.Equal(t, 7, n.GetSelectedIndex())
	assert.Equal(t, 6, n.GetViewportOffset())

	// Scrolling back up reveals the section header above the item
	n.Move(-2)
	assert.Equal(t, 5, n.GetSelectedIndex())
	assert.Equal(t, 4, n.GetViewportOffset())

	n.Home()
	assert.Equal(t, 0, n.GetViewportOffset())
}
