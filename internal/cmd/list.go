package cmd

import (
	"io"

	perrors "github.com/promptlib/cli/internal/errors"
	"github.com/promptlib/cli/internal/output"
	"github.com/promptlib/cli/internal/templates"
)

// runList indexes root and writes every template grouped by category.
func runList(out io.Writer, root string) error {
	idx := templates.Load(root)

	groups := idx.Groups()
	entries := make([]output.CategoryEntry, 0, len(groups))
	for _, g := range groups {
		names := make([]string, 0, len(g.Records))
		for _, rec := range g.Records {
			names = append(names, rec.Name)
		}
		entries = append(entries, output.CategoryEntry{Name: g.Category, Templates: names})
	}

	if err := output.NewCatalog(out).WriteListing(entries); err != nil {
		return NewExitError(perrors.Wrap(err, "writing listing"), ExitGeneralError)
	}
	return nil
}
