package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles - phosphor theme
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PhosphorGreen).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(PhosphorAmber).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(PhosphorAmber).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(PhosphorGreen).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(PhosphorCyan).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(ScanlineGray).
				Italic(true)
)

// Interactive key bindings shown at the bottom of the help text.
var helpKeys = []struct {
	key  string
	desc string
}{
	{"p", "next character palette"},
	{"c", "next color scheme"},
	{"f", "fast refresh (15 fps)"},
	{"s", "slow refresh (5 fps)"},
	{"t", "toggle status bar"},
	{"r", "repaint, retry camera"},
	{"?", "help overlay"},
	{"q", "quit"},
}

// StyledHelpPrinter creates a custom help printer with Lipgloss styling
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		// Title and description
		sb.WriteString(helpTitleStyle.Render("asciiwebcam ▓▒░"))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render("Watch your webcam as live colored ASCII art, right in the terminal."))
		sb.WriteString("\n")

		// Usage
		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s [flags]", ctx.Model.Name))
		sb.WriteString("\n")

		// Flags section
		flags := getFlags(ctx)
		if len(flags) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Flags:"))
			sb.WriteString("\n")
			for _, flag := range flags {
				sb.WriteString("  ")
				sb.WriteString(helpFlagStyle.Render(flag.flags))
				if flag.help != "" {
					sb.WriteString("  ")
					sb.WriteString(flag.help)
				}
				if flag.defaultVal != "" {
					sb.WriteString(" ")
					sb.WriteString(helpDefaultStyle.Render("(default: " + flag.defaultVal + ")"))
				}
				sb.WriteString("\n")
			}
		}

		// Keys section
		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Keys:"))
		sb.WriteString("\n")
		for _, k := range helpKeys {
			sb.WriteString("  ")
			sb.WriteString(helpKeyStyle.Render(k.key))
			sb.WriteString("  ")
			sb.WriteString(k.desc)
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

type flag struct {
	flags      string
	help       string
	defaultVal string
}

func getFlags(ctx *kong.Context) []flag {
	var flags []flag

	// Always include help flag
	flags = append(flags, flag{
		flags: "-h, --help",
		help:  "Show context-sensitive help.",
	})

	// Parse flags from the model
	for _, f := range ctx.Model.Node.Flags {
		if f.Name == "help" {
			continue // Already added
		}

		flagStr := ""
		if f.Short != 0 {
			flagStr = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		} else {
			flagStr = fmt.Sprintf("--%s", f.Name)
		}

		if !f.IsBool() && f.PlaceHolder != "" {
			flagStr += "=" + strings.ToUpper(f.PlaceHolder)
		}

		// Only show default if it's a meaningful value (not empty, not type placeholder)
		defaultVal := ""
		if f.HasDefault && !f.IsBool() {
			val := f.Default
			if val != "" && val != "STRING" && val != "BOOL" {
				defaultVal = val
			}
		}

		flags = append(flags, flag{
			flags:      flagStr,
			help:       f.Help,
			defaultVal: defaultVal,
		})
	}

	return flags
}
