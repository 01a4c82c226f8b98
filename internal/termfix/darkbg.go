// ABOUTME: Pins the lipgloss background mode from the environment instead of the terminal's reply
// ABOUTME: STATEHISTORY_LIGHT=1 selects the light palette; Light reports the choice to the counter

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// EnvLight switches the counter palette to light-background colors.
const EnvLight = "STATEHISTORY_LIGHT"

func init() {
	// bubbletea's own init has already asked the terminal by now. This
	// overrides the detected mode so the palette follows STATEHISTORY_LIGHT.
	lipgloss.SetHasDarkBackground(!Light())
}

// Light reports whether the light palette was requested.
func Light() bool {
	v := os.Getenv(EnvLight)
	return v != "" && v != "0" && v != "false"
}
