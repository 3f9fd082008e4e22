// Package tui provides Bubble Tea models for the interactive TUI.
package tui

// ScreenSelectedMsg is emitted when the user picks a widget from the menu.
type ScreenSelectedMsg struct {
	Screen AppScreen
}

// BackToMenuMsg is emitted when a widget hands control back to the menu.
type BackToMenuMsg struct{}

// ToggleThemeMsg asks the app to switch between the dark and light themes.
type ToggleThemeMsg struct{}

// ErrorMsg is emitted when an error occurs.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}

// storageChangedMsg signals that another process rewrote the storage file.
type storageChangedMsg struct{}

// itemsReloadedMsg tells the todo screen to rebuild from the store.
type itemsReloadedMsg struct{}

// themeChangedMsg tells screens the active theme name.
type themeChangedMsg struct {
	theme string
}

// exportDoneMsg reports the result of a PNG export.
type exportDoneMsg struct {
	path string
	err  error
}
