package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayStyle defines the style for the help overlay container.
var HelpOverlayStyle lipgloss.Style

// HelpModel wraps the bubbles help component.
type HelpModel struct {
	help   help.Model
	keymap help.KeyMap
}

// NewHelpModel creates a new help overlay model.
func NewHelpModel(keymap help.KeyMap) HelpModel {
	h := help.New()
	h.ShowAll = true

	return HelpModel{
		help:   h,
		keymap: keymap,
	}
}

// View renders the help overlay.
func (m HelpModel) View(width int) string {
	m.help.Width = width - 8 // Account for padding and border
	helpView := m.help.View(m.keymap)
	return HelpOverlayStyle.Render(helpView)
}

// ShortView renders the one-line key hint shown under a screen.
func (m HelpModel) ShortView(width int) string {
	m.help.ShowAll = false
	m.help.Width = width
	return m.help.View(m.keymap)
}
