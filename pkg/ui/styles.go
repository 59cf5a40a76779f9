package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the semantic styles used by the text layouts.
type Styles struct {
	Header  lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFD7"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
)

// NewStyles returns colored styles bound to a lipgloss renderer for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header:  r.NewStyle().Bold(true).Foreground(colorAccent),
		Path:    r.NewStyle().Foreground(colorAccent),
		Success: r.NewStyle().Bold(true).Foreground(colorSuccess),
		Warning: r.NewStyle().Foreground(colorWarning),
		Error:   r.NewStyle().Bold(true).Foreground(colorError),
		Muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:  plain,
		Path:    plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Muted:   plain,
	}
}
