// Package replay runs scripted selection gestures against a manager and
// prints the resulting selection after every step.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"selectkit/internal/domain"
	"selectkit/internal/manager"
	"selectkit/internal/selection"
)

// Run reads one gesture per line from r, applies it to m and writes a
// snapshot line to w. It stops at the first malformed line.
func Run(m *manager.Manager, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		action, err := ParseLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if action == nil {
			continue
		}
		action.Apply(m)
		if _, err := fmt.Fprintf(w, "%-10s %s\n", action.Type(), Snapshot(m)); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

// Snapshot formats the selection and focus of m in collection order
func Snapshot(m *manager.Manager) string {
	var b strings.Builder
	raw := m.RawSelection()
	if selection.IsAll(raw) {
		b.WriteString("all")
	} else {
		sel := selection.AsSelection(raw)
		b.WriteString("[")
		b.WriteString(joinKeys(ordered(m, sel)))
		b.WriteString("]")
		if a := sel.AnchorKey(); a != nil {
			fmt.Fprintf(&b, " anchor=%v current=%v", a, sel.CurrentKey())
		}
	}
	if m.IsFocused() {
		fmt.Fprintf(&b, " focus=%v", keyString(m.FocusedKey()))
	}
	return b.String()
}

// ordered lists the selected keys in collection order; keys the collection
// no longer has go last in insertion order
func ordered(m *manager.Manager, sel *selection.Selection) []domain.Key {
	c := m.Collection()
	out := make([]domain.Key, 0, sel.Len())
	for k := c.GetFirstKey(); k != nil; k = c.GetKeyAfter(k) {
		if sel.Has(k) {
			out = append(out, k)
		}
		if len(out) == sel.Len() {
			return out
		}
	}
	sel.Each(func(k domain.Key) bool {
		if c.GetItem(k) == nil {
			out = append(out, k)
		}
		return true
	})
	return out
}

func joinKeys(keys []domain.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = keyString(k)
	}
	return strings.Join(parts, " ")
}

func keyString(k domain.Key) string {
	if k == nil {
		return "-"
	}
	return fmt.Sprint(k)
}
