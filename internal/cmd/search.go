package cmd

import (
	"io"

	perrors "github.com/promptlib/cli/internal/errors"
	"github.com/promptlib/cli/internal/output"
	"github.com/promptlib/cli/internal/templates"
)

// runSearch indexes root and writes the templates matching keyword.
func runSearch(out io.Writer, root, keyword string) error {
	idx := templates.Load(root)
	results := idx.Search(keyword)

	matches := make([]output.MatchEntry, 0, len(results))
	for _, rec := range results {
		matches = append(matches, output.MatchEntry{
			Category: rec.Category,
			Name:     rec.Name,
			Path:     rec.Path,
		})
	}

	if err := output.NewCatalog(out).WriteMatches(matches); err != nil {
		return NewExitError(perrors.Wrap(err, "writing search results"), ExitGeneralError)
	}
	return nil
}
