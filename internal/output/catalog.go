package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// libraryBanner heads the full template listing.
	libraryBanner = "=== Prompt Template Library ==="

	// categoryIcon prefixes each category header in the listing.
	categoryIcon = "📁"

	// MsgNoTemplates is printed by the listing when the index is empty.
	MsgNoTemplates = "No templates found"

	// MsgNoMatches is printed when a search has no results.
	MsgNoMatches = "No matching templates found"
)

// CategoryEntry is one category of the listing with its template names in
// display order.
type CategoryEntry struct {
	Name      string
	Templates []string
}

// MatchEntry is one search result.
type MatchEntry struct {
	Category string
	Name     string
	Path     string
}

// Catalog renders template listings and search results to a writer.
type Catalog struct {
	out    io.Writer
	styles Styles
}

// NewCatalog returns a Catalog writing to w, styled for w's color profile.
func NewCatalog(w io.Writer) *Catalog {
	return &Catalog{
		out:    w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// WriteListing writes the grouped listing. Categories are written in the
// order given; callers sort them.
func (c *Catalog) WriteListing(categories []CategoryEntry) error {
	if len(categories) == 0 {
		_, err := fmt.Fprintln(c.out, MsgNoTemplates)
		return err
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(c.styles.Banner.Render(libraryBanner))
	sb.WriteString("\n\n")

	for _, cat := range categories {
		sb.WriteString(categoryIcon + " " + c.styles.Category.Render(cat.Name))
		sb.WriteString("\n")
		for _, name := range cat.Templates {
			sb.WriteString("  - ")
			sb.WriteString(name)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(c.out, sb.String())
	return err
}

// WriteMatches writes numbered search results.
func (c *Catalog) WriteMatches(matches []MatchEntry) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(c.out, MsgNoMatches)
		return err
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(c.styles.Banner.Render(foundSummary(len(matches))))
	sb.WriteString("\n\n")

	for i, m := range matches {
		ordinal := c.styles.Ordinal.Render(fmt.Sprintf("%d.", i+1))
		category := c.styles.Category.Render("[" + m.Category + "]")
		fmt.Fprintf(&sb, "%s %s %s\n", ordinal, category, m.Name)
		fmt.Fprintf(&sb, "   Path: %s\n\n", c.styles.Path.Render(m.Path))
	}

	_, err := io.WriteString(c.out, sb.String())
	return err
}

func foundSummary(n int) string {
	if n == 1 {
		return "Found 1 matching template:"
	}
	return fmt.Sprintf("Found %d matching templates:", n)
}
