package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// withProfile switches the global color profile for one test.
func withProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestStyles_Colors(t *testing.T) {
	withProfile(t, termenv.TrueColor)

	assert.Contains(t, errorStyle.Render("Error Message"), "196")
	assert.Contains(t, successStyle.Render("Done"), "46")

	// #7D56F4 = RGB(125, 86, 244)
	assert.Contains(t, headerStyle.Render("Raw Data"), "48;2;125;86;244")
	assert.True(t, ColorEnabled())
}

func TestDisableColor(t *testing.T) {
	withProfile(t, termenv.TrueColor)

	DisableColor()

	assert.False(t, ColorEnabled())
	out := errorStyle.Render("Error Message")
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, "Error Message", strings.TrimSpace(out))
}
