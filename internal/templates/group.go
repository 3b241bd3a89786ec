package templates

import "sort"

// Group is one category with its records in index order.
type Group struct {
	Category string
	Records  []Record
}

// Groups returns the index grouped by category, categories sorted
// ascending. The index itself is not reordered.
func (idx *Index) Groups() []Group {
	byCategory := make(map[string]int)
	groups := make([]Group, 0)

	for _, rec := range idx.Records {
		i, ok := byCategory[rec.Category]
		if !ok {
			i = len(groups)
			byCategory[rec.Category] = i
			groups = append(groups, Group{Category: rec.Category})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}
