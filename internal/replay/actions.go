package replay

import (
	"errors"
	"fmt"
	"strings"

	"selectkit/internal/domain"
	"selectkit/internal/manager"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
	ErrInvalidValue   = errors.New("invalid argument")
)

// Action is one scripted gesture
type Action interface {
	Type() string
	Apply(m *manager.Manager)
}

type SelectAction struct {
	Key     domain.Key
	Pointer domain.PointerType
}

func (a SelectAction) Type() string { return "select" }
func (a SelectAction) Apply(m *manager.Manager) {
	var e *domain.PressEvent
	if a.Pointer != "" {
		e = &domain.PressEvent{PointerType: a.Pointer}
	}
	m.Select(a.Key, e)
}

type ToggleAction struct{ Key domain.Key }

func (a ToggleAction) Type() string { return "toggle" }
func (a ToggleAction) Apply(m *manager.Manager) { m.ToggleSelection(a.Key) }

type ReplaceAction struct{ Key domain.Key }

func (a ReplaceAction) Type() string { return "replace" }
func (a ReplaceAction) Apply(m *manager.Manager) { m.ReplaceSelection(a.Key) }

type ExtendAction struct{ Key domain.Key }

func (a ExtendAction) Type() string { return "extend" }
func (a ExtendAction) Apply(m *manager.Manager) { m.ExtendSelection(a.Key) }

type SetAction struct{ Keys []domain.Key }

func (a SetAction) Type() string { return "set" }
func (a SetAction) Apply(m *manager.Manager) { m.SetSelectedKeys(a.Keys) }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "all" }
func (a SelectAllAction) Apply(m *manager.Manager) { m.SelectAll() }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }
func (a ClearAction) Apply(m *manager.Manager) { m.ClearSelection() }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle-all" }
func (a ToggleAllAction) Apply(m *manager.Manager) { m.ToggleSelectAll() }

type FocusAction struct {
	Key      domain.Key
	Strategy domain.FocusStrategy
}

func (a FocusAction) Type() string { return "focus" }
func (a FocusAction) Apply(m *manager.Manager) {
	m.SetFocused(true)
	m.SetFocusedKey(a.Key, a.Strategy)
}

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }
func (a BlurAction) Apply(m *manager.Manager) { m.SetFocused(false) }

type BehaviorAction struct{ Behavior domain.SelectionBehavior }

func (a BehaviorAction) Type() string { return "behavior" }
func (a BehaviorAction) Apply(m *manager.Manager) { m.SetSelectionBehavior(a.Behavior) }

// ParseLine turns one script line into an action. Blank lines and lines
// starting with '#' yield a nil action.
func ParseLine(line string) (Action, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s: %w", cmd, ErrMissingArgs)
		}
		return nil
	}

	switch cmd {
	case "select":
		if err := need(1); err != nil {
			return nil, err
		}
		a := SelectAction{Key: args[0]}
		if len(args) > 1 {
			a.Pointer = domain.PointerType(args[1])
			switch a.Pointer {
			case domain.PointerMouse, domain.PointerPen, domain.PointerTouch,
				domain.PointerKeyboard, domain.PointerVirtual:
			default:
				return nil, fmt.Errorf("%s: pointer %q: %w", cmd, args[1], ErrInvalidValue)
			}
		}
		return a, nil
	case "toggle", "replace", "extend":
		if err := need(1); err != nil {
			return nil, err
		}
		switch cmd {
		case "toggle":
			return ToggleAction{Key: args[0]}, nil
		case "replace":
			return ReplaceAction{Key: args[0]}, nil
		default:
			return ExtendAction{Key: args[0]}, nil
		}
	case "set":
		keys := make([]domain.Key, len(args))
		for i, a := range args {
			keys[i] = a
		}
		return SetAction{Keys: keys}, nil
	case "all":
		return SelectAllAction{}, nil
	case "clear":
		return ClearAction{}, nil
	case "toggle-all":
		return ToggleAllAction{}, nil
	case "focus":
		if err := need(1); err != nil {
			return nil, err
		}
		a := FocusAction{Key: args[0]}
		if args[0] == "-" {
			a.Key = nil
		}
		if len(args) > 1 {
			a.Strategy = domain.FocusStrategy(args[1])
			if a.Strategy != domain.FocusFirst && a.Strategy != domain.FocusLast {
				return nil, fmt.Errorf("%s: strategy %q: %w", cmd, args[1], ErrInvalidValue)
			}
		}
		return a, nil
	case "blur":
		return BlurAction{}, nil
	case "behavior":
		if err := need(1); err != nil {
			return nil, err
		}
		b := domain.SelectionBehavior(args[0])
		if b != domain.BehaviorToggle && b != domain.BehaviorReplace {
			return nil, fmt.Errorf("%s %q: %w", cmd, args[0], ErrInvalidValue)
		}
		return BehaviorAction{Behavior: b}, nil
	default:
		return nil, fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
}
