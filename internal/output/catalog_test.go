package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteListing_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCatalog(&buf).WriteListing(nil))
	assert.Equal(t, MsgNoTemplates+"\n", buf.String())
}

func TestWriteListing_Grouped(t *testing.T) {
	var buf bytes.Buffer
	err := NewCatalog(&buf).WriteListing([]CategoryEntry{
		{Name: "code", Templates: []string{"review", "refactor"}},
		{Name: "writing", Templates: []string{"essay"}},
	})
	require.NoError(t, err)

	want := "\n" +
		"=== Prompt Template Library ===\n" +
		"\n" +
		"📁 code\n" +
		"  - review\n" +
		"  - refactor\n" +
		"\n" +
		"📁 writing\n" +
		"  - essay\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCatalog(&buf).WriteMatches(nil))
	assert.Equal(t, MsgNoMatches+"\n", buf.String())
}

func TestWriteMatches_Numbered(t *testing.T) {
	var buf bytes.Buffer
	err := NewCatalog(&buf).WriteMatches([]MatchEntry{
		{Category: "code", Name: "review", Path: "templates/code/review.md"},
		{Category: "writing", Name: "essay", Path: "templates/writing/essay.md"},
	})
	require.NoError(t, err)

	want := "\n" +
		"Found 2 matching templates:\n" +
		"\n" +
		"1. [code] review\n" +
		"   Path: templates/code/review.md\n" +
		"\n" +
		"2. [writing] essay\n" +
		"   Path: templates/writing/essay.md\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMatches_SingleSummary(t *testing.T) {
	var buf bytes.Buffer
	err := NewCatalog(&buf).WriteMatches([]MatchEntry{
		{Category: "code", Name: "review", Path: "templates/code/review.md"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Found 1 matching template:\n")
}

func TestIsTTY_Buffer(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestWriteMatches_KeepsTabs(t *testing.T) {
	var buf bytes.Buffer
	err := NewCatalog(&buf).WriteMatches([]MatchEntry{
		{Category: "my\tcat", Name: "essay", Path: "templates/my\tcat/essay.md"},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "1. [my\tcat] essay\n   Path: templates/my\tcat/essay.md\n")
}

func TestWriteListing_KeepsTabs(t *testing.T) {
	var buf bytes.Buffer
	err := NewCatalog(&buf).WriteListing([]CategoryEntry{
		{Name: "my\tcat", Templates: []string{"essay"}},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "📁 my\tcat\n")
}
