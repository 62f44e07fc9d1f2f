package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#33FF33") // Terminal green
	successColor   = lipgloss.Color("#00AA00") // Green
	errorColor     = lipgloss.Color("#FF4040") // Red
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#FFFF00") // Yellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold green
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintBanner prints the application banner
func PrintBanner() {
	banner := TitleStyle.Render("asciiwebcam ▓▒░")
	subtitle := SubtitleStyle.Render("Watch your webcam as live colored ASCII art, right in the terminal.")
	fmt.Println(banner)
	fmt.Println(subtitle)
	fmt.Println()
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("asciiwebcam ▓▒░"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational message
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// PrintPresets prints the built-in character palettes and color schemes
// in a styled box.
func PrintPresets() {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Character Palettes"))
	b.WriteString("\n\n")
	for _, name := range ascii.PaletteNames() {
		b.WriteString(KeyStyle.Render(fmt.Sprintf("%-10s", name)))
		b.WriteString(ValueStyle.Render(ascii.PaletteRamp(name)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HighlightStyle.Render("Color Schemes"))
	b.WriteString("\n\n")
	for _, name := range ascii.SchemeNames() {
		b.WriteString(KeyStyle.Render(fmt.Sprintf("%-10s", name)))
		b.WriteString(ValueStyle.Render(schemeBlurb(name)))
		b.WriteString("\n")
	}

	PrintBox(strings.TrimRight(b.String(), "\n"))
}

func schemeBlurb(name string) string {
	switch name {
	case "true":
		return "unmodified camera colors"
	case "matrix":
		return "green phosphor"
	case "neon":
		return "boosted saturation"
	case "vintage":
		return "warm sepia"
	case "cyberpunk":
		return "swapped magenta/teal"
	default:
		return ""
	}
}
