package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewResourceList
	ViewTaskList
	ViewAlternativeList
	ViewAlternativeDetail
	ViewCompare
	ViewStats
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that own a focused text input and
// need all key events, bypassing global shortcuts like q and esc.
type inputCapturer interface {
	capturesInput() bool
}

// viewCapturesInput reports whether the active view should receive raw keys.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.capturesInput()
	}
	return false
}
