package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	s := NewStyles(lipgloss.NewRenderer(&bytes.Buffer{}))

	assert.True(t, s.Banner.GetBold())
	assert.True(t, s.Category.GetBold())
	assert.Equal(t, ColorCyan, s.Category.GetForeground())
	assert.Equal(t, ColorYellow, s.Ordinal.GetForeground())
	assert.Equal(t, ColorDimGray, s.Path.GetForeground())
}

func TestNewStyles_PlainForNonTerminal(t *testing.T) {
	s := NewStyles(lipgloss.NewRenderer(&bytes.Buffer{}))

	assert.Equal(t, "code", s.Category.Render("code"))
	assert.Equal(t, "templates/a.md", s.Path.Render("templates/a.md"))
}

func TestNewStyles_NoTabConversion(t *testing.T) {
	s := NewStyles(lipgloss.NewRenderer(&bytes.Buffer{}))

	for _, style := range []lipgloss.Style{s.Banner, s.Category, s.Ordinal, s.Path} {
		assert.Equal(t, lipgloss.NoTabConversion, style.GetTabWidth())
		assert.Equal(t, "a\tb", style.Render("a\tb"))
	}
}
