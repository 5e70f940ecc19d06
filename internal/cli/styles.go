// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spendwise-app/spendwise/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#34A853")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#F9AB00")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#D93025")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

// tierStyles maps a budget tier to its display style: grey for unset,
// green under 80%, orange under 100%, red at or over.
var tierStyles = map[model.BudgetTier]lipgloss.Style{
	model.TierUnset: SubtleStyle,
	model.TierOK:    SuccessStyle,
	model.TierWarn:  WarningStyle,
	model.TierOver:  ErrorStyle,
}

// TierStyle returns the style for a budget tier.
func TierStyle(tier model.BudgetTier) lipgloss.Style {
	if style, ok := tierStyles[tier]; ok {
		return style
	}
	return SubtleStyle
}
