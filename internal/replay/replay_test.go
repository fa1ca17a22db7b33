package replay

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/collection"
	"selectkit/internal/domain"
	"selectkit/internal/manager"
	"selectkit/internal/state"
)

func newManager(props state.Props) *manager.Manager {
	c := collection.NewList(
		collection.Item("a", "A"),
		collection.Item("b", "B"),
		collection.Item("c", "C"),
		collection.Item("d", "D"),
	)
	return manager.New(c, state.New(props), manager.Options{})
}

func TestRunRangeScript(t *testing.T) {
	m := newManager(state.Props{SelectionMode: domain.SelectionMultiple, SelectionBehavior: domain.BehaviorReplace})
	script := `
# click, shift-click forward then back
select a mouse
extend c
extend b
select d touch
all
toggle b
clear
`
	var out bytes.Buffer
	require.NoError(t, Run(m, strings.NewReader(script), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "select     [a] anchor=a current=a", lines[0])
	assert.Equal(t, "extend     [a b c] anchor=a current=c", lines[1])
	assert.Equal(t, "extend     [a b] anchor=a current=b", lines[2])
	assert.Equal(t, "select     [a b d] anchor=d current=d", lines[3])
	assert.Equal(t, "all        all", lines[4])
	assert.Equal(t, "toggle     [a c d]", lines[5])
	assert.Equal(t, "clear      []", lines[6])
}

func TestRunFocus(t *testing.T) {
	m := newManager(state.Props{SelectionMode: domain.SelectionSingle})

	var out bytes.Buffer
	require.NoError(t, Run(m, strings.NewReader("focus b\nfocus ghost\nfocus -\nblur\n"), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "focus      [] focus=b", lines[0])
	assert.Equal(t, "focus      [] focus=b", lines[1])
	assert.Equal(t, "focus      [] focus=-", lines[2])
	assert.Equal(t, "blur       []", lines[3])
}

func TestRunStopsOnBadLine(t *testing.T) {
	m := newManager(state.Props{SelectionMode: domain.SelectionMultiple})

	var out bytes.Buffer
	err := Run(m, strings.NewReader("toggle a\nwiggle b\ntoggle b\n"), &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Contains(t, err.Error(), "line 2")
	assert.True(t, m.IsSelected("a"))
	assert.False(t, m.IsSelected("b"))
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Action
		err  error
	}{
		{"", nil, nil},
		{"  # note", nil, nil},
		{"select a", SelectAction{Key: "a"}, nil},
		{"select a virtual", SelectAction{Key: "a", Pointer: domain.PointerVirtual}, nil},
		{"toggle x", ToggleAction{Key: "x"}, nil},
		{"replace x", ReplaceAction{Key: "x"}, nil},
		{"extend x", ExtendAction{Key: "x"}, nil},
		{"set a b", SetAction{Keys: []domain.Key{"a", "b"}}, nil},
		{"toggle-all", ToggleAllAction{}, nil},
		{"focus a last", FocusAction{Key: "a", Strategy: domain.FocusLast}, nil},
		{"behavior replace", BehaviorAction{Behavior: domain.BehaviorReplace}, nil},
		{"extend", nil, ErrMissingArgs},
		{"jump a", nil, ErrUnknownCommand},
		{"behavior", nil, ErrMissingArgs},
		{"behavior foo", nil, ErrInvalidValue},
		{"select a stylus", nil, ErrInvalidValue},
		{"focus a middle", nil, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBehaviorSwitch(t *testing.T) {
	m := newManager(state.Props{SelectionMode: domain.SelectionMultiple, SelectionBehavior: domain.BehaviorReplace})

	var out bytes.Buffer
	require.NoError(t, Run(m, strings.NewReader("select a\nbehavior toggle\nselect b\n"), &out))

	assert.True(t, m.IsSelected("a"))
	assert.True(t, m.IsSelected("b"))
}
