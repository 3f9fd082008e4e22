package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/h0rv/widgets/internal/domain"
)

// palette holds the colours a theme is built from.
type palette struct {
	Accent   lipgloss.Color
	Selected lipgloss.Color
	Text     lipgloss.Color
	Dim      lipgloss.Color
	Error    lipgloss.Color
	Prompt   lipgloss.Color
	Inverse  lipgloss.Color
}

var palettes = map[string]palette{
	domain.ThemeDark: {
		Accent:   lipgloss.Color("62"),  // Purple
		Selected: lipgloss.Color("170"), // Light purple
		Text:     lipgloss.Color("252"), // Light gray
		Dim:      lipgloss.Color("241"), // Dark gray
		Error:    lipgloss.Color("196"), // Red
		Prompt:   lipgloss.Color("99"),  // Light blue
		Inverse:  lipgloss.Color("0"),
	},
	domain.ThemeLight: {
		Accent:   lipgloss.Color("25"),
		Selected: lipgloss.Color("127"),
		Text:     lipgloss.Color("235"),
		Dim:      lipgloss.Color("245"),
		Error:    lipgloss.Color("160"),
		Prompt:   lipgloss.Color("31"),
		Inverse:  lipgloss.Color("255"),
	},
}

var (
	// TitleStyle is used for screen titles.
	TitleStyle lipgloss.Style

	// SelectedItemStyle is used for highlighted/selected items.
	SelectedItemStyle lipgloss.Style

	// NormalItemStyle is used for non-selected items.
	NormalItemStyle lipgloss.Style

	// ErrorStyle is used for error messages.
	ErrorStyle lipgloss.Style

	// PromptStyle is used for prompt text.
	PromptStyle lipgloss.Style

	// HelpStyle is used for help text.
	HelpStyle lipgloss.Style

	dimStyle       lipgloss.Style
	completedStyle lipgloss.Style
	statusBarStyle lipgloss.Style
	badgeStyle     lipgloss.Style
	panelStyle     lipgloss.Style
	displayStyle   lipgloss.Style
)

func init() {
	SetTheme(domain.ThemeDark)
}

// SetTheme rebuilds every style from the named theme. Unknown names select dark.
func SetTheme(name string) {
	p, ok := palettes[name]
	if !ok {
		p = palettes[domain.ThemeDark]
	}

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		MarginBottom(1)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(p.Selected).
		Bold(true)

	NormalItemStyle = lipgloss.NewStyle().
		Foreground(p.Text)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	PromptStyle = lipgloss.NewStyle().
		Foreground(p.Prompt).
		MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Dim).
		MarginTop(1)

	dimStyle = lipgloss.NewStyle().
		Foreground(p.Dim)

	completedStyle = lipgloss.NewStyle().
		Foreground(p.Dim).
		Strikethrough(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(p.Dim)

	badgeStyle = lipgloss.NewStyle().
		Background(p.Selected).
		Foreground(p.Inverse).
		Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)

	displayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Foreground(p.Text).
		Bold(true).
		Align(lipgloss.Right).
		Padding(0, 1)

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2).
		MarginTop(2)
}
