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
	"strings"

	"github.com/poiesic/noteseek/analysis"
	"github.com/poiesic/noteseek/core"
)

// NLP sub-score weights and blend.
const (
	nlpKeywordWeight  = 0.3
	nlpEntityWeight   = 0.4
	nlpTagWeight      = 0.2
	nlpQuestionBonus  = 0.1
	nlpSubBlend       = 0.5
	nlpEntityBlend    = 0.3
	nlpIntentBlend    = 0.2
	nlpShortBodyLimit = 200
)

// NLPSearch scores notes with heuristic language signals: keyword overlap,
// capitalized-entity overlap, tag containment, and an intent table. All the
// signals are regex and keyword guesses; they make no claim of linguistic
// correctness. Notes with no overlap signal at all are excluded, so the
// intent table alone never matches the whole corpus.
func (e *Engine) NLPSearch(query string, notes []*core.Note) []*core.SearchResult {
	qKeywords := analysis.Keywords(query)
	qEntities := analysis.ExtractEntities(query)
	intent := analysis.DetectIntent(query)
	if len(qKeywords) == 0 && len(qEntities) == 0 {
		return nil
	}

	var results []*core.SearchResult
	for _, note := range notes {
		if note == nil {
			continue
		}
		if r := e.nlpMatch(qKeywords, qEntities, intent, note); r != nil {
			results = append(results, r)
		}
	}
	return results
}

func (e *Engine) nlpMatch(qKeywords, qEntities []string, intent analysis.Intent, note *core.Note) *core.SearchResult {
	nKeywords := analysis.Keywords(note.Text())
	nTopics := analysis.ExtractTopics(note.Title + " " + note.Body)

	keywordOverlap, shared := overlapFraction(qKeywords, nKeywords)

	var entityOverlap float64
	if len(qEntities) > 0 {
		nEntities := analysis.ExtractEntities(note.Title + " " + note.Body)
		entityOverlap, _ = overlapFraction(qEntities, nEntities)
	}

	tagOverlap := tagContainment(qKeywords, note.Tags)

	sub := nlpKeywordWeight*keywordOverlap +
		nlpEntityWeight*entityOverlap +
		nlpTagWeight*tagOverlap
	if intent == analysis.IntentQuestion && len(nTopics) > 0 {
		sub += nlpQuestionBonus
	}
	if sub == 0 {
		return nil
	}

	score := nlpSubBlend*sub +
		nlpEntityBlend*entityOverlap +
		nlpIntentBlend*intentScore(intent, note, nTopics)

	var context string
	if len(nTopics) > 0 {
		context = snippet(nTopics[0], "", DefaultContextWindow)
	} else {
		context = snippet(note.Title, "", DefaultContextWindow)
	}

	return &core.SearchResult{
		Note:       note,
		Score:      score,
		Highlights: shared,
		Context:    context,
		MatchType:  core.MatchNLP,
	}
}

// intentScore is a fixed table keyed by the query intent.
func intentScore(intent analysis.Intent, note *core.Note, nTopics []string) float64 {
	switch intent {
	case analysis.IntentQuestion:
		if len(nTopics) > 0 {
			return 0.8
		}
		return 0.2
	case analysis.IntentSearch:
		return 0.6
	case analysis.IntentCreate:
		if len(note.Body) < nlpShortBodyLimit {
			return 0.4
		}
		return 0.8
	default:
		return 0.5
	}
}

// overlapFraction returns the fraction of query terms present in the note
// terms, along with the shared terms in query order.
func overlapFraction(qTerms, nTerms []string) (float64, []string) {
	if len(qTerms) == 0 || len(nTerms) == 0 {
		return 0, nil
	}
	set := make(map[string]bool, len(nTerms))
	for _, term := range nTerms {
		set[term] = true
	}
	var shared []string
	for _, term := range qTerms {
		if set[term] {
			shared = append(shared, term)
		}
	}
	return float64(len(shared)) / float64(len(qTerms)), shared
}

// tagContainment returns the fraction of query keywords contained in at
// least one tag, case-insensitively.
func tagContainment(qKeywords []string, tags []string) float64 {
	if len(qKeywords) == 0 || len(tags) == 0 {
		return 0
	}
	lowered := make([]string, len(tags))
	for i, tag := range tags {
		lowered[i] = strings.ToLower(tag)
	}
	hits := 0
	for _, keyword := range qKeywords {
		for _, tag := range lowered {
			if strings.Contains(tag, keyword) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(qKeywords))
}
