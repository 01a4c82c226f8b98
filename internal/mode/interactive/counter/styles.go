// ABOUTME: Lipgloss palette for the counter view
// ABOUTME: Accent comes from settings; muted and disabled tones follow the background mode

package counter

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the counter view uses.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Entry    lipgloss.Style
	Current  lipgloss.Style
	Group    lipgloss.Style
	Key      lipgloss.Style
	Enabled  lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
	Prompt   lipgloss.Style
}

// NewStyles builds the palette around accent, a lipgloss color spec such
// as "212" or "#ff87d7".
func NewStyles(accent string, light bool) Styles {
	muted, faint := lipgloss.Color("245"), lipgloss.Color("240")
	if light {
		muted, faint = lipgloss.Color("240"), lipgloss.Color("250")
	}
	acc := lipgloss.Color(accent)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(acc),
		Label:    lipgloss.NewStyle().Foreground(muted),
		Value:    lipgloss.NewStyle().Bold(true),
		Entry:    lipgloss.NewStyle(),
		Current:  lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(acc),
		Group:    lipgloss.NewStyle().Bold(true).Width(15),
		Key:      lipgloss.NewStyle().Foreground(acc),
		Enabled:  lipgloss.NewStyle(),
		Disabled: lipgloss.NewStyle().Foreground(faint).Faint(true),
		Status:   lipgloss.NewStyle().Italic(true).Foreground(muted),
		Prompt:   lipgloss.NewStyle().Foreground(acc).Bold(true),
	}
}
