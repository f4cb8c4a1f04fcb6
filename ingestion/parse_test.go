package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote_MarkdownHeading(t *testing.T) {
	modTime := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	content := "# Sourdough Starter\n\nFeed twice a day with flour and water.\n"

	note, err := ParseNote(content, modTime)
	require.NoError(t, err)

	assert.Equal(t, "Sourdough Starter", note.Title)
	assert.Equal(t, "Feed twice a day with flour and water.", note.Body)
	assert.True(t, note.UpdatedAt.Equal(modTime))
	assert.True(t, note.CreatedAt.IsZero())
}

func TestParseNote_FirstLineAsTitle(t *testing.T) {
	content := "Meeting notes\nDiscussed the quarterly roadmap.\nFollow up next week.\n"

	note, err := ParseNote(content, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Meeting notes", note.Title)
	assert.Equal(t, "Discussed the quarterly roadmap.\nFollow up next week.", note.Body)
}

func TestParseNote_HashtagsAndTagsLine(t *testing.T) {
	content := `# Deploy Checklist

tags: ops, release
Run migrations before rollout. #deploy #ops
`

	note, err := ParseNote(content, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{"ops", "release", "deploy"}, note.Tags)
	assert.NotContains(t, note.Body, "tags:")
}

func TestParseNote_TagsCaseInsensitive(t *testing.T) {
	content := "# Title\n\nBody with #Go and #go and #GO tags.\n"

	note, err := ParseNote(content, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{"go"}, note.Tags)
}

func TestParseNote_HeadingMarkersNotTags(t *testing.T) {
	content := "## Nested Heading\n\nPlain body text.\n"

	note, err := ParseNote(content, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Nested Heading", note.Title)
	assert.Empty(t, note.Tags)
}

func TestParseNote_Empty(t *testing.T) {
	_, err := ParseNote("", time.Now())
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ParseNote("   \n\n  \n", time.Now())
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParseNote_TitleOnly(t *testing.T) {
	note, err := ParseNote("# Just a title\n", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Just a title", note.Title)
	assert.Empty(t, note.Body)
}
