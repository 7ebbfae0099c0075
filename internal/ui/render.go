package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	pathStyle  = lipgloss.NewStyle().Faint(true)
	capStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	eventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(8)
)

// Row renders a computed label next to the path it names.
func Row(label, path string, width int) string {
	padded := label
	if n := width - lipgloss.Width(label); n > 0 {
		padded += strings.Repeat(" ", n)
	}
	return fmt.Sprintf("%s  %s", labelStyle.Render(padded), pathStyle.Render(path))
}

// ResolveRow renders a resolved root and the capability that found it.
func ResolveRow(path, root, capability string) string {
	if root == "" {
		return fmt.Sprintf("%s  %s", pathStyle.Render(path), warnStyle.Render("(no root)"))
	}
	if capability == "" {
		capability = "fallback"
	}
	return fmt.Sprintf("%s  %s %s", pathStyle.Render(path),
		labelStyle.Render(root), capStyle.Render("("+capability+")"))
}

// EventRow renders a watch event and the label of the affected file.
func EventRow(event, label string) string {
	return fmt.Sprintf("%s %s", eventStyle.Render(strings.ToUpper(event)), labelStyle.Render(label))
}

// Warnf prints a styled warning line.
func Warnf(format string, args ...interface{}) string {
	return warnStyle.Render(fmt.Sprintf(format, args...))
}
