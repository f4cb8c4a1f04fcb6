// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"sort"
	"strings"

	"github.com/poiesic/noteseek/analysis"
	"github.com/poiesic/noteseek/core"
)

const (
	// semanticFloor discards semantic results with a blended score below it.
	semanticFloor = 0.1

	contextEntityWeight  = 0.4
	contextTopicWeight   = 0.3
	contextQuestionBonus = 0.3
)

// SemanticSearch scores notes by cosine similarity of sparse term-frequency
// vectors, blended with a heuristic context similarity built from shared
// entities, shared topics, and question intent. The context signals are
// capitalization- and keyword-based guesses, not a trained model.
func (e *Engine) SemanticSearch(query string, notes []*core.Note, opts *Options) []*core.SearchResult {
	opts = withDefaults(opts)
	if strings.TrimSpace(query) == "" {
		return nil
	}

	qVec := BuildVector(query)
	qEntities := analysis.ExtractEntities(query)
	qTopics := analysis.ExtractTopics(query)
	questionIntent := analysis.DetectIntent(query) == analysis.IntentQuestion

	var results []*core.SearchResult
	for _, note := range notes {
		if note == nil {
			continue
		}

		nVec := BuildVector(note.Text())
		cos := Cosine(qVec, nVec)

		noteText := note.Title + " " + note.Body
		nTopics := analysis.ExtractTopics(noteText)
		ctx := contextSimilarity(qEntities, qTopics, questionIntent, noteText, nTopics)

		score := opts.SemanticCosineWeight*cos + opts.SemanticContextWeight*ctx
		if score < semanticFloor {
			continue
		}

		results = append(results, &core.SearchResult{
			Note:       note,
			Score:      score,
			Highlights: sharedTerms(qVec, nVec),
			Context:    semanticContext(note, qVec, nVec, opts.ContextWindow),
			MatchType:  core.MatchSemantic,
		})
	}
	return results
}

// contextSimilarity blends entity overlap (0.4 per shared entity), topic
// overlap (0.3 per overlapping topic), and a flat 0.3 bonus for question
// queries against notes that carry topics. Capped at 1.
func contextSimilarity(qEntities, qTopics []string, questionIntent bool, noteText string, nTopics []string) float64 {
	var sim float64

	if len(qEntities) > 0 {
		nEntities := analysis.ExtractEntities(noteText)
		sim += contextEntityWeight * float64(sharedEntityCount(qEntities, nEntities))
	}

	for _, qt := range qTopics {
		for _, nt := range nTopics {
			if topicsOverlap(qt, nt) {
				sim += contextTopicWeight
				break
			}
		}
	}

	if questionIntent && len(nTopics) > 0 {
		sim += contextQuestionBonus
	}

	if sim > 1 {
		sim = 1
	}
	return sim
}

func sharedEntityCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(b))
	for _, e := range b {
		set[e] = true
	}
	count := 0
	for _, e := range a {
		if set[e] {
			count++
		}
	}
	return count
}

func topicsOverlap(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// sharedTerms returns the terms common to both vectors, strongest first,
// capped at five. They serve as semantic highlights.
func sharedTerms(qVec, nVec TermVector) []string {
	type weighted struct {
		term string
		w    float64
	}
	var shared []weighted
	for term, qw := range qVec {
		if nw, ok := nVec[term]; ok {
			shared = append(shared, weighted{term, qw * nw})
		}
	}
	if len(shared) == 0 {
		return nil
	}
	sort.Slice(shared, func(i, j int) bool {
		if shared[i].w != shared[j].w {
			return shared[i].w > shared[j].w
		}
		return shared[i].term < shared[j].term
	})

	limit := len(shared)
	if limit > 5 {
		limit = 5
	}
	terms := make([]string, limit)
	for i := 0; i < limit; i++ {
		terms[i] = shared[i].term
	}
	return terms
}

// semanticContext returns a body snippet around the strongest shared term,
// falling back to the title.
func semanticContext(note *core.Note, qVec, nVec TermVector, window int) string {
	terms := sharedTerms(qVec, nVec)
	body := strings.ToLower(note.Body)
	for _, term := range terms {
		if strings.Contains(body, term) {
			return snippet(note.Body, term, window)
		}
	}
	return snippet(note.Title, "", window)
}
