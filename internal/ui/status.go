package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
	"github.com/The-Focus-AI/asciiwebcam/internal/cli"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(cli.PhosphorGreen)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(cli.PhosphorGreen).
			Bold(true)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.PhosphorGreen).
			Padding(1, 3)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PhosphorGreen)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PhosphorAmber)

	helpTextStyle = lipgloss.NewStyle().
			Foreground(cli.PhosphorWhite)
)

// statusLine renders the bottom status bar, truncated to the terminal width.
func (m *App) statusLine(cols int) string {
	var b strings.Builder

	b.WriteString(statusKeyStyle.Render(" " + m.sourceStatus() + " "))
	b.WriteString(statusBarStyle.Render("│ "))
	b.WriteString(statusBarStyle.Render(fmt.Sprintf("palette:%s ", m.palette.Name())))
	b.WriteString(statusBarStyle.Render(fmt.Sprintf("scheme:%s ", m.scheme.Name())))
	b.WriteString(statusBarStyle.Render(fmt.Sprintf("│ %s %.1f fps ", m.sched.Mode(), m.sched.Rate())))
	b.WriteString(statusBarStyle.Render(fmt.Sprintf("│ %s/frame ", cli.FormatDuration(m.sched.LastDuration()))))
	if skipped := m.sched.Skipped(); skipped > 0 {
		b.WriteString(statusBarStyle.Render(fmt.Sprintf("│ %d skipped ", skipped)))
	}
	b.WriteString(statusBarStyle.Render("│ ? help "))

	line := b.String()
	if pad := cols - lipgloss.Width(line); pad > 0 {
		line += statusBarStyle.Render(strings.Repeat(" ", pad))
	}
	return lipgloss.NewStyle().MaxWidth(cols).Render(line)
}

// drawHelp paints the key-binding overlay centered over the video.
func (m *App) drawHelp(geom ascii.Geometry) {
	bindings := []struct {
		key  string
		desc string
	}{
		{"p", "next character palette"},
		{"c", "next color scheme"},
		{"f", "fast refresh (15 fps)"},
		{"s", "slow refresh (5 fps)"},
		{"t", "toggle status bar"},
		{"r", "repaint, retry camera"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("asciiwebcam keys"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(helpKeyStyle.Render(bind.key))
		b.WriteString("  ")
		b.WriteString(helpTextStyle.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpTextStyle.Render("press any key to close"))

	box := helpBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
	lines := strings.Split(box, "\n")

	top := (geom.Rows - len(lines)) / 2
	left := (geom.Cols - lipgloss.Width(box)) / 2
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}
	for i, line := range lines {
		if top+i >= geom.Rows {
			break
		}
		m.term.WriteAt(top+i, left, line)
	}
}
