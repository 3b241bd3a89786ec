package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlib/cli/internal/testutil"
)

func names(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Category+"/"+rec.Name)
	}
	return out
}

func TestSearch_Scenario(t *testing.T) {
	idx := Load(testutil.ScenarioTree(t))

	tests := []struct {
		keyword string
		want    []string
	}{
		{keyword: "code", want: []string{"code/review"}},
		{keyword: "outline", want: []string{"writing/essay"}},
		{keyword: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, names(idx.Search(tt.keyword)))
		})
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	idx := Load(testutil.TemplateTree(t, map[string]string{
		"Writing/Essay.md": "Draft OUTLINE",
		"misc/note.md":     "nothing here",
	}))

	assert.Equal(t, []string{"Writing/Essay"}, names(idx.Search("writing")))
	assert.Equal(t, []string{"Writing/Essay"}, names(idx.Search("ESSAY")))
	assert.Equal(t, []string{"Writing/Essay"}, names(idx.Search("Outline")))
}

func TestSearch_MetaMatchSkipsContent(t *testing.T) {
	logs := testutil.CaptureLog(t)
	root := testutil.TemplateTree(t, map[string]string{
		"code/review.md": "gone before search",
	})

	idx := Load(root)
	require.NoError(t, os.Remove(filepath.Join(root, "code", "review.md")))

	assert.Equal(t, []string{"code/review"}, names(idx.Search("code")))
	assert.Equal(t, []string{"code/review"}, names(idx.Search("view")))
	assert.Empty(t, logs.String(), "content must not be read when category or name matches")
}

func TestSearch_ContentOnlyMatch(t *testing.T) {
	idx := Load(testutil.TemplateTree(t, map[string]string{
		"alpha/one.md": "mentions widgets",
		"beta/two.md":  "mentions gadgets",
	}))

	assert.Equal(t, []string{"alpha/one"}, names(idx.Search("widget")))
}

func TestSearch_PreservesIndexOrder(t *testing.T) {
	idx := Load(testutil.TemplateTree(t, map[string]string{
		"b/zeta.md":  "shared",
		"a/omega.md": "shared",
		"a/alpha.md": "shared",
		"c/beta.md":  "other",
	}))

	assert.Equal(t, []string{"a/alpha", "a/omega", "b/zeta"}, names(idx.Search("shared")))
}

func TestSearch_ReadFailureContinues(t *testing.T) {
	logs := testutil.CaptureLog(t)
	root := testutil.TemplateTree(t, map[string]string{
		"a/broken.md": "keyword",
		"b/fine.md":   "keyword",
	})
	idx := Load(root)
	broken := filepath.Join(root, "a", "broken.md")
	require.NoError(t, os.Remove(broken))

	results := idx.Search("keyword")

	assert.Equal(t, []string{"b/fine"}, names(results))
	assert.Contains(t, logs.String(), "failed to read template")
	assert.Contains(t, logs.String(), broken)
}

func TestSearch_InvalidUTF8IsNonMatching(t *testing.T) {
	logs := testutil.CaptureLog(t)
	root := testutil.TemplateTree(t, map[string]string{
		"a/ok.md": "needle",
	})
	testutil.WriteFile(t, root, filepath.Join("a", "binary.md"), "needle\xff\xfe")

	results := Load(root).Search("needle")

	assert.Equal(t, []string{"a/ok"}, names(results))
	assert.Contains(t, logs.String(), "not valid UTF-8")
}

func TestSearch_EmptyKeyword(t *testing.T) {
	idx := Load(testutil.ScenarioTree(t))

	assert.Empty(t, idx.Search(""))
}

func TestSearch_EmptyIndex(t *testing.T) {
	idx := &Index{Root: "templates"}

	assert.Empty(t, idx.Search("anything"))
}
