package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styler decorates console output. A plain Styler returns text unchanged.
type Styler struct {
	enabled bool
	heading lipgloss.Style
	loop    lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
}

// NewStyler returns a Styler that colours output only when enabled.
func NewStyler(enabled bool) *Styler {
	return &Styler{
		enabled: enabled,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		loop:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}

func (s *Styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Heading styles a section heading.
func (s *Styler) Heading(text string) string { return s.render(s.heading, text) }

// Muted styles secondary text such as file paths.
func (s *Styler) Muted(text string) string { return s.render(s.muted, text) }

// Warn styles a warning line.
func (s *Styler) Warn(text string) string { return s.render(s.warn, text) }

// Summary styles a rendered range summary: the "---" framing lines as
// headings and the loop lists in each "Loop:" line.
func (s *Styler) Summary(summary string) string {
	if !s.enabled {
		return summary
	}

	lines := strings.Split(summary, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"):
			lines[i] = s.Heading(line)
		case strings.HasPrefix(line, "  Loop: "):
			rest := strings.TrimPrefix(line, "  Loop: ")
			if idx := strings.Index(rest, "  <-  "); idx >= 0 {
				lines[i] = "  Loop: " + s.render(s.loop, rest[:idx]) + s.Muted(rest[idx:])
			}
		}
	}
	return strings.Join(lines, "\n")
}
