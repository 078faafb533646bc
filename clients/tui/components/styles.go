// Package components provides the task list TUI widgets and their styles.
package components

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette - Single Source of Truth
// =============================================================================

const (
	ColorPrimary   = "#7C3AED" // Violet - prompt, cursor, title
	ColorSecondary = "#10B981" // Green/Emerald - completed marker
	ColorAccent    = "#60A5FA" // Blue - edit control
	ColorWarning   = "#F59E0B" // Amber - alerts
	ColorError     = "#EF4444" // Red - delete control, errors

	ColorMuted      = "#6B7280" // Gray - hints, completed text
	ColorBorder     = "#374151" // Dark gray - separators
	ColorBackground = "#1F2937" // Dark slate - status bar
	ColorSurface    = "#1E293B" // Slightly lighter - header

	ColorText    = "#E5E7EB" // Light gray - base text
	ColorTextDim = "#9CA3AF" // Dim gray - secondary text
)

var (
	Primary   = lipgloss.Color(ColorPrimary)
	Secondary = lipgloss.Color(ColorSecondary)
	Accent    = lipgloss.Color(ColorAccent)
	Warning   = lipgloss.Color(ColorWarning)
	Error     = lipgloss.Color(ColorError)
	Muted     = lipgloss.Color(ColorMuted)
	Border    = lipgloss.Color(ColorBorder)
	Surface   = lipgloss.Color(ColorSurface)
	Text      = lipgloss.Color(ColorText)
	TextDim   = lipgloss.Color(ColorTextDim)
)

// =============================================================================
// Task List Styles
// =============================================================================

var (
	CursorStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	CheckboxStyle     = lipgloss.NewStyle().Foreground(TextDim)
	CheckboxDoneStyle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	TaskTextStyle = lipgloss.NewStyle().Foreground(Text)

	// Completed tasks are dimmed and struck through.
	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	SelectedRowStyle = lipgloss.NewStyle().Bold(true)

	EditControlStyle   = lipgloss.NewStyle().Foreground(Accent)
	DeleteControlStyle = lipgloss.NewStyle().Foreground(Error)

	EmptyListStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// =============================================================================
// Input Styles
// =============================================================================

var (
	InputSeparatorStyle  = lipgloss.NewStyle().Foreground(Border)
	InputPromptCharStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	InputBlurredStyle    = lipgloss.NewStyle().Foreground(Muted)
	AddButtonStyle       = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
)

// =============================================================================
// Layout Styles
// =============================================================================

var (
	HeaderStyle = lipgloss.NewStyle().
			Background(Surface).
			Foreground(Text).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(Secondary)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBackground)).
			Foreground(TextDim).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorBackground)).
				Foreground(Error).
				Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Warning).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)
)
