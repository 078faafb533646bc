package components

import "github.com/charmbracelet/lipgloss"

// Alert is a blocking message box. While it is shown the app ignores every
// other input until the user dismisses it.
type Alert struct {
	message string
}

// Show displays message.
func (a *Alert) Show(message string) { a.message = message }

// Dismiss hides the alert.
func (a *Alert) Dismiss() { a.message = "" }

// Active reports whether the alert is shown.
func (a *Alert) Active() bool { return a.message != "" }

// Message returns the current message.
func (a *Alert) Message() string { return a.message }

// View renders the alert centred in a width x height area.
func (a *Alert) View(width, height int) string {
	box := ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		ModalTitleStyle.Render(a.message),
		"",
		HintStyle.Render("press Enter to continue"),
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
