package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "capitalized words",
			text: "Learn Python with Guido at Dropbox",
			want: []string{"Learn", "Python", "Guido", "Dropbox"},
		},
		{
			name: "punctuation trimmed before matching",
			text: "Visit Paris, then (Rome)!",
			want: []string{"Visit", "Paris", "Rome"},
		},
		{
			name: "all caps and mixed case rejected",
			text: "NASA launched the iPhone eXperiment",
			want: nil,
		},
		{
			name: "duplicates removed",
			text: "Paris is Paris",
			want: []string{"Paris"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEntities(tt.text))
		})
	}
}

func TestExtractTopics(t *testing.T) {
	t.Run("keeps sentences longer than three words", func(t *testing.T) {
		text := "Too short. This sentence has enough words to qualify. Nope."
		got := ExtractTopics(text)
		assert.Equal(t, []string{"This sentence has enough words to qualify"}, got)
	})

	t.Run("caps at three topics", func(t *testing.T) {
		text := "One two three four five. Six seven eight nine ten. " +
			"Alpha beta gamma delta epsilon. Zeta eta theta iota kappa."
		assert.Len(t, ExtractTopics(text), 3)
	})

	t.Run("no terminal punctuation still yields a topic", func(t *testing.T) {
		got := ExtractTopics("a trailing span with plenty of words")
		assert.Len(t, got, 1)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, ExtractTopics(""))
	})
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"how do I configure logging", IntentQuestion},
		{"what is a goroutine", IntentQuestion},
		{"why does this fail", IntentQuestion},
		{"find my meeting notes", IntentSearch},
		{"search for recipes", IntentSearch},
		{"look up that article", IntentSearch},
		{"create a new note", IntentCreate},
		{"add reminder", IntentCreate},
		{"golang concurrency patterns", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.text))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First one. Second one! Third one? Tail")
	assert.Equal(t, []string{"First one", "Second one", "Third one", "Tail"}, got)
}
