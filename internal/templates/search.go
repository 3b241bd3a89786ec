package templates

import (
	"strings"

	"github.com/promptlib/cli/internal/output"
)

// Search returns the records matching keyword, case-insensitively, in index
// order. A record matches when the keyword occurs in its category, its name,
// or its content; content is read only when category and name do not match.
// Unreadable files are reported and treated as non-matching.
func (idx *Index) Search(keyword string) []Record {
	results := make([]Record, 0)
	if keyword == "" || idx.Empty() {
		return results
	}

	needle := strings.ToLower(keyword)
	for _, rec := range idx.Records {
		if matchesMeta(rec, needle) {
			results = append(results, rec)
			continue
		}

		res := ReadTemplate(rec.Path)
		if !res.OK() {
			output.Warn("failed to read template", "path", rec.Path, "error", res.Err)
			continue
		}
		if strings.Contains(strings.ToLower(res.Text()), needle) {
			results = append(results, rec)
		}
	}

	output.Debug("search finished", "keyword", keyword, "matches", len(results), "scanned", idx.Len())
	return results
}

// matchesMeta reports whether the lowercased needle occurs in the record's
// category or name.
func matchesMeta(rec Record, needle string) bool {
	return strings.Contains(strings.ToLower(rec.Category), needle) ||
		strings.Contains(strings.ToLower(rec.Name), needle)
}
