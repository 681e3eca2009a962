// Package rawview shows a response value as indented JSON in a scrollable
// viewport.
package rawview

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/styles"
)

// View wraps a bubbles viewport.
type View struct {
	viewport viewport.Model
	styles   *styles.Styles
	content  string
}

// New creates an empty raw response view.
func New(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{viewport: viewport.New(80, 10), styles: s}
}

// SetValue renders value as indented JSON and scrolls to the top.
func (v *View) SetValue(value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		v.content = fmt.Sprintf("%v", value)
	} else {
		v.content = string(data)
	}
	v.viewport.SetContent(v.content)
	v.viewport.GotoTop()
}

// Content returns the rendered JSON text.
func (v *View) Content() string {
	return v.content
}

// Update forwards scrolling keys to the viewport.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the framed viewport.
func (v *View) View() string {
	if v.content == "" {
		return v.styles.Muted.Render("No response yet")
	}
	return v.styles.Panel.Render(v.viewport.View())
}

// SetDimensions sizes the viewport inside its border.
func (v *View) SetDimensions(width, height int) {
	v.viewport.Width = max(width-2, 10)
	v.viewport.Height = max(height-2, 3)
}

// ScrollPercent reports how far the viewport is scrolled.
func (v *View) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}
