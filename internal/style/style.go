// Package style colors gate prefixes for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/control-theory/chanlog"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prefix is a chanlog.Decorator that colors the prefix by severity: info
// green, errors red and bold, debug dim. The prefix text itself is left
// untouched.
func Prefix(kind chanlog.Kind, prefix string) string {
	switch kind {
	case chanlog.KindError:
		return errorStyle.Render(prefix)
	case chanlog.KindDebug:
		return debugStyle.Render(prefix)
	default:
		return infoStyle.Render(prefix)
	}
}
