package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/noteseek/core"
)

func TestSemanticSearch_SharedTermsScore(t *testing.T) {
	engine := newTestEngine(t)
	notes := []*core.Note{
		{Id: 1, Title: "Python Tutorial", Body: "Python programming tutorial for beginners."},
		{Id: 2, Title: "Sourdough Starter", Body: "Flour and water, fed twice daily."},
	}

	results := engine.SemanticSearch("python programming tutorial", notes, nil)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, core.ID(1), r.Note.Id)
	assert.Equal(t, core.MatchSemantic, r.MatchType)
	assert.GreaterOrEqual(t, r.Score, semanticFloor)
	assert.NotEmpty(t, r.Highlights)
}

func TestSemanticSearch_FloorExcludesWeakMatches(t *testing.T) {
	engine := newTestEngine(t)
	notes := []*core.Note{
		{Id: 1, Title: "Gardening", Body: "Tomatoes need sunlight and regular watering."},
	}

	assert.Empty(t, engine.SemanticSearch("quantum entanglement", notes, nil))
}

func TestSemanticSearch_QuestionIntentBonus(t *testing.T) {
	engine := newTestEngine(t)
	withTopics := []*core.Note{
		{Id: 1, Title: "Channels", Body: "Channels let goroutines exchange values safely. Buffered channels decouple sender and receiver."},
	}

	question := engine.SemanticSearch("how do channels work", withTopics, nil)
	plain := engine.SemanticSearch("channels work", withTopics, nil)

	require.NotEmpty(t, question)
	require.NotEmpty(t, plain)
	assert.Greater(t, question[0].Score, plain[0].Score)
}

func TestSemanticSearch_EntityOverlap(t *testing.T) {
	engine := newTestEngine(t)
	notes := []*core.Note{
		{Id: 1, Title: "Trip Notes", Body: "Visited Paris in the spring of 2019 with friends."},
		{Id: 2, Title: "Trip Notes", Body: "Visited nowhere in particular that year, sadly."},
	}

	results := engine.SemanticSearch("Paris trip notes", notes, nil)
	require.NotEmpty(t, results)

	scores := make(map[core.ID]float64)
	for _, r := range results {
		scores[r.Note.Id] = r.Score
	}
	assert.Greater(t, scores[1], scores[2])
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b TermVector
		want float64
	}{
		{
			name: "identical vectors",
			a:    TermVector{"go": 2, "channels": 1},
			b:    TermVector{"go": 2, "channels": 1},
			want: 1,
		},
		{
			name: "orthogonal vectors",
			a:    TermVector{"go": 1},
			b:    TermVector{"rust": 1},
			want: 0,
		},
		{
			name: "empty vector",
			a:    TermVector{},
			b:    TermVector{"go": 1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}

	t.Run("symmetric", func(t *testing.T) {
		a := TermVector{"go": 3, "channels": 1, "select": 2}
		b := TermVector{"go": 1, "select": 5}
		assert.InDelta(t, Cosine(a, b), Cosine(b, a), 1e-12)
	})
}

func TestBuildVector(t *testing.T) {
	vec := BuildVector("Go go GO channels")
	assert.InDelta(t, 0.0, vec["go"], 1e-9) // two-char tokens are dropped
	assert.InDelta(t, 1.0, vec["channels"], 1e-9)

	vec = BuildVector("alpha alpha beta")
	assert.InDelta(t, 2.0, vec["alpha"], 1e-9)
	assert.InDelta(t, 1.0, vec["beta"], 1e-9)
}
