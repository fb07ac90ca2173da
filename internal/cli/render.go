package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// messageStyle dims commit message blocks. ANSI 8 keeps them readable on
// both dark and light terminals.
var messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// labelStyle marks the section headings printed between flow stages.
var labelStyle = lipgloss.NewStyle().Bold(true)

// renderMessage indents each line of a message four spaces and dims it,
// mirroring how git log presents message bodies. A single trailing newline
// does not produce a blank line.
func renderMessage(msg string) string {
	if msg == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(msg, "\n"), "\n") {
		b.WriteString("    ")
		b.WriteString(messageStyle.Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}
