package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // identifiers
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // hidden sub-lists
	colorRed    = lipgloss.Color("167") // errors
	colorDim    = lipgloss.Color("240") // tree branches
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLayer   = lipgloss.NewStyle().Foreground(colorCyan)
	styleHidden  = lipgloss.NewStyle().Foreground(colorYellow)
	styleBranch  = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)
