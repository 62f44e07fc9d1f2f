package cli

import "github.com/charmbracelet/lipgloss"

// Phosphor colour palette
// Shared CRT-terminal theme colours for consistent branding across CLI and TUI
var (
	// Core phosphor colours (dim to bright)
	PhosphorGreen = lipgloss.Color("#33FF33") // Classic green phosphor
	PhosphorAmber = lipgloss.Color("#FFB000") // Amber monitor
	PhosphorCyan  = lipgloss.Color("#00FFFF") // Cyan accent
	PhosphorWhite = lipgloss.Color("#E8E8E8") // Paper white

	// Accent colours
	ScanlineGray = lipgloss.Color("#5F875F") // Dim green-gray for subtle text
)
