package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one rendered line of the collection
type Row struct {
	Key      string
	Text     string
	Level    int
	Header   bool
	Selected bool
	Focused  bool
	Disabled bool
	Href     string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Rows           []Row
	ViewportOffset int
	ViewportHeight int
	Mode           string
	Behavior       string
	Summary        string
	StatusMessage  string
	Help           string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := r.styles.Title.Render("selectkit")
	badge := r.styles.Badge.Render(fmt.Sprintf("%s · %s", state.Mode, state.Behavior))
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", badge))
	content.WriteString("\n")

	end := len(state.Rows)
	if state.ViewportHeight > 0 && state.ViewportOffset+state.ViewportHeight < end {
		end = state.ViewportOffset + state.ViewportHeight
	}
	if state.ViewportOffset > 0 {
		content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.ViewportOffset)))
		content.WriteString("\n")
	}
	for _, row := range state.Rows[state.ViewportOffset:end] {
		content.WriteString(r.renderRow(row, state.Width))
		content.WriteString("\n")
	}
	if rest := len(state.Rows) - end; rest > 0 {
		content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", rest)))
		content.WriteString("\n")
	}

	status := state.Summary
	if state.StatusMessage != "" {
		status += "  " + state.StatusMessage
	}
	content.WriteString(r.styles.Status.Render(status))
	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderRow(row Row, width int) string {
	indent := strings.Repeat("  ", row.Level)
	if row.Header {
		return indent + r.styles.Section.Render(row.Text)
	}

	marker := "[ ]"
	if row.Selected {
		marker = r.styles.StatusSuccess.Render("[x]")
	}
	cursor := "  "
	if row.Focused {
		cursor = r.styles.Highlight.Render("> ")
	}

	text := row.Text
	switch {
	case row.Disabled:
		text = r.styles.Dim.Render(text + " (disabled)")
	case row.Href != "":
		text = r.styles.Link.Render(text) + r.styles.Dim.Render(" → "+row.Href)
	}

	line := fmt.Sprintf("%s%s%s %s", cursor, indent, marker, text)
	if row.Focused && width > 0 {
		line = r.styles.SelectionBg.Width(width - 4).Render(line)
	}
	return line
}
