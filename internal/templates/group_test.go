package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroups_SortsCategoriesKeepsRecordOrder(t *testing.T) {
	idx := &Index{Records: []Record{
		{Category: "writing", Name: "zeta"},
		{Category: "code", Name: "review"},
		{Category: "writing", Name: "alpha"},
		{Category: "analysis", Name: "report"},
	}}
	original := append([]Record(nil), idx.Records...)

	groups := idx.Groups()

	assert.Equal(t, []Group{
		{Category: "analysis", Records: []Record{{Category: "analysis", Name: "report"}}},
		{Category: "code", Records: []Record{{Category: "code", Name: "review"}}},
		{Category: "writing", Records: []Record{
			{Category: "writing", Name: "zeta"},
			{Category: "writing", Name: "alpha"},
		}},
	}, groups)
	assert.Equal(t, original, idx.Records, "grouping must not reorder the index")
}

func TestGroups_Empty(t *testing.T) {
	idx := &Index{}

	assert.Empty(t, idx.Groups())
}
