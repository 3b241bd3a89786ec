package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for all ANSI 256 colors used in the CLI.
// Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for category names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for result ordinals.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for paths and other secondary text.
	ColorDimGray = lipgloss.Color("240")
)

// Styles maps catalog concepts to visual presentation.
type Styles struct {
	// Banner styles the library heading and result summaries.
	Banner lipgloss.Style

	// Category styles category headers and bracketed category names.
	Category lipgloss.Style

	// Ordinal styles the 1-based result numbers.
	Ordinal lipgloss.Style

	// Path styles template paths.
	Path lipgloss.Style
}

// NewStyles returns the catalog styles bound to renderer r. The renderer
// decides the color profile, so writers that are not terminals get plain text.
//
// Tabs are kept as-is so a printed path can be passed back to view.
func NewStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Banner:   base.Bold(true),
		Category: base.Bold(true).Foreground(ColorCyan),
		Ordinal:  base.Foreground(ColorYellow),
		Path:     base.Foreground(ColorDimGray),
	}
}
