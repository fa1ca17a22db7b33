package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/config"
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/manager"
	"selectkit/internal/selection"
	"selectkit/internal/ui/handlers"
	"selectkit/internal/ui/logic"
	"selectkit/internal/ui/views"
)

// Model is the interactive list demo over one selection manager
type Model struct {
	manager *manager.Manager
	config  *config.Config

	// Save target, optional
	configSvc  config.ConfigService
	configPath string

	pager *PagerOps

	keys     keyMap
	help     help.Model
	rowKeys  []domain.Key
	nav      *logic.Navigator
	renderer *views.Renderer
	events   *handlers.EventHandler

	width  int
	height int
}

// NewModel creates a UI model over mgr. cfg is updated in place on save.
func NewModel(bus eventbus.EventBus, mgr *manager.Manager, cfg *config.Config) *Model {
	m := &Model{
		manager:  mgr,
		config:   cfg,
		keys:     newKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(),
		events:   handlers.NewEventHandler(bus),
	}

	c := mgr.Collection()
	var focusable []bool
	for k := c.GetFirstKey(); k != nil; k = c.GetKeyAfter(k) {
		node := c.GetItem(k)
		m.rowKeys = append(m.rowKeys, k)
		focusable = append(focusable, node.Type == domain.NodeItem || node.Type == domain.NodeCell)
	}
	m.nav = logic.NewNavigator(focusable)

	mgr.SetFocused(true)
	if idx := m.indexOf(mgr.FocusedKey()); idx < 0 || !m.nav.SetSelectedIndex(idx) {
		m.syncFocus()
	}
	return m
}

// SetConfigTarget enables saving the current selection back to path
func (m *Model) SetConfigTarget(svc config.ConfigService, path string) {
	m.configSvc = svc
	m.configPath = path
}

// SetProgram enables the event log pager, which needs terminal control
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

// Close releases the bus subscriptions
func (m *Model) Close() {
	m.events.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.nav.SetViewportHeight(msg.Height - 10)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Event log pager failed: %v", msg.err)
			m.events.SetStatus(fmt.Sprintf("Error: %v", msg.err))
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.nav.Move(-1) {
			m.syncFocus()
		}
	case key.Matches(msg, m.keys.Down):
		if m.nav.Move(1) {
			m.syncFocus()
		}
	case key.Matches(msg, m.keys.Home):
		if m.nav.Home() {
			m.syncFocus()
		}
	case key.Matches(msg, m.keys.End):
		if m.nav.End() {
			m.syncFocus()
		}

	case key.Matches(msg, m.keys.ExtendUp):
		m.extend(-1)
	case key.Matches(msg, m.keys.ExtendDown):
		m.extend(1)

	case key.Matches(msg, m.keys.Toggle):
		if k := m.focusedKey(); k != nil {
			m.manager.ToggleSelection(k)
		}
	case key.Matches(msg, m.keys.Press):
		m.press(domain.PointerKeyboard)
	case key.Matches(msg, m.keys.TouchPress):
		m.press(domain.PointerTouch)

	case key.Matches(msg, m.keys.SelectAll):
		m.manager.ToggleSelectAll()
	case key.Matches(msg, m.keys.Clear):
		m.manager.ClearSelection()
	case key.Matches(msg, m.keys.SwitchMode):
		if m.manager.SelectionBehavior() == domain.BehaviorToggle {
			m.manager.SetSelectionBehavior(domain.BehaviorReplace)
		} else {
			m.manager.SetSelectionBehavior(domain.BehaviorToggle)
		}
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.EventLog):
		return m, m.showEventLog()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) extend(delta int) {
	if !m.nav.Move(delta) {
		return
	}
	m.syncFocus()
	m.manager.ExtendSelection(m.focusedKey())
}

func (m *Model) press(pointer domain.PointerType) {
	k := m.focusedKey()
	if k == nil {
		return
	}
	if m.manager.IsDisabled(k) {
		m.events.SetStatus(fmt.Sprintf("%v is disabled", k))
		return
	}
	if m.manager.IsLink(k) {
		m.events.SetStatus(fmt.Sprintf("Open %s", m.manager.GetItemProps(k).Href()))
		return
	}
	m.manager.Select(k, &domain.PressEvent{PointerType: pointer})
}

func (m *Model) showEventLog() tea.Cmd {
	if m.pager == nil {
		m.events.SetStatus("Event log needs a terminal")
		return nil
	}
	content := strings.Join(m.events.History(), "\n")
	if content == "" {
		content = "No events yet"
	}
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{err: pager.Show(content)}
	}
}

func (m *Model) save() {
	if m.configSvc == nil || m.config == nil {
		m.events.SetStatus("No config file to save to")
		return
	}
	m.config.Selection.Behavior = string(m.manager.SelectionBehavior())
	m.config.Selection.SelectedKeys = selectedKeyStrings(m.manager)
	if err := m.configSvc.SaveToPath(m.config, m.configPath); err != nil {
		log.Printf("Failed to save config: %v", err)
		m.events.SetStatus(fmt.Sprintf("Error: %v", err))
	}
}

func selectedKeyStrings(mgr *manager.Manager) []string {
	raw := mgr.RawSelection()
	if selection.IsAll(raw) {
		return []string{"*"}
	}
	var out []string
	selection.AsSelection(raw).Each(func(k domain.Key) bool {
		out = append(out, fmt.Sprint(k))
		return true
	})
	return out
}

func (m *Model) syncFocus() {
	if k := m.focusedKey(); k != nil {
		m.manager.SetFocusedKey(k, "")
	}
}

// focusedKey is the key under the cursor
func (m *Model) focusedKey() domain.Key {
	idx := m.nav.GetSelectedIndex()
	if idx < 0 {
		return nil
	}
	return m.rowKeys[idx]
}

func (m *Model) indexOf(k domain.Key) int {
	if k == nil {
		return -1
	}
	for i, rk := range m.rowKeys {
		if rk == k {
			return i
		}
	}
	return -1
}

// View renders the UI
func (m *Model) View() string {
	c := m.manager.Collection()
	focused := m.focusedKey()
	rows := make([]views.Row, 0, len(m.rowKeys))
	for _, k := range m.rowKeys {
		node := c.GetItem(k)
		rows = append(rows, views.Row{
			Key:      fmt.Sprint(k),
			Text:     node.TextValue,
			Level:    node.Level,
			Header:   node.Type != domain.NodeItem && node.Type != domain.NodeCell,
			Selected: m.manager.IsSelected(k),
			Focused:  k == focused,
			Disabled: m.manager.IsDisabled(k),
			Href:     node.Props.Href(),
		})
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Rows:           rows,
		ViewportOffset: m.nav.GetViewportOffset(),
		ViewportHeight: m.nav.GetViewportHeight(),
		Mode:           string(m.manager.SelectionMode()),
		Behavior:       string(m.manager.SelectionBehavior()),
		Summary:        m.summary(),
		StatusMessage:  m.events.Status(),
		Help:           m.help.View(m.keys),
	})
}

func (m *Model) summary() string {
	switch {
	case m.manager.IsSelectAll():
		return "All selected"
	case m.manager.IsEmpty():
		return "Nothing selected"
	default:
		return fmt.Sprintf("%d selected", m.manager.SelectedKeys().Len())
	}
}
