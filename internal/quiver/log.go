package quiver

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log/v2"
)

// width is the rendered width of the level names, wide enough that
// none get cut off.
const width = 5

// defaultLogStyles returns the default styles for the application logger.
func defaultLogStyles() *log.Styles {
	levelStyle := func(level log.Level, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(strings.ToUpper(level.String())).
			Bold(true).
			MaxWidth(width).
			Foreground(lipgloss.Color(color))
	}

	return &log.Styles{
		Timestamp: lipgloss.NewStyle(),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Faint(true),
		Message:   lipgloss.NewStyle(),
		Key:       lipgloss.NewStyle().Faint(true),
		Value:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: levelStyle(log.DebugLevel, "63"),
			log.InfoLevel:  levelStyle(log.InfoLevel, "86"),
			log.WarnLevel:  levelStyle(log.WarnLevel, "192"),
			log.ErrorLevel: levelStyle(log.ErrorLevel, "204"),
			log.FatalLevel: levelStyle(log.FatalLevel, "134"),
		},
		Keys:   map[string]lipgloss.Style{},
		Values: map[string]lipgloss.Style{},
	}
}
