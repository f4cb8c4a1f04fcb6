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
	"github.com/poiesic/noteseek/analysis"
	"github.com/poiesic/noteseek/core"
)

// Field weights for fuzzy matching. Weights are renormalized over the
// fields a note actually has, so a title-only note can still reach a high
// threshold.
const (
	fuzzyTitleWeight = 0.4
	fuzzyBodyWeight  = 0.4
	fuzzyTagWeight   = 0.2
)

// FuzzySearch tolerates typos: each query token is matched against the
// tokens of every field by Levenshtein similarity, averaged per field, and
// the weighted field scores must reach threshold for a note to qualify.
func (e *Engine) FuzzySearch(query string, notes []*core.Note, threshold float64) []*core.SearchResult {
	qTokens := analysis.Tokenize(query)
	if len(qTokens) == 0 {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	var results []*core.SearchResult
	for _, note := range notes {
		if note == nil {
			continue
		}
		score := e.fuzzyScore(qTokens, note)
		if score < threshold {
			continue
		}
		results = append(results, &core.SearchResult{
			Note:       note,
			Score:      score,
			Highlights: []string{note.Title},
			Context:    snippet(note.Body, qTokens[0], DefaultContextWindow),
			MatchType:  core.MatchFuzzy,
		})
	}
	return results
}

func (e *Engine) fuzzyScore(qTokens []string, note *core.Note) float64 {
	var score, weight float64

	if titleTokens := analysis.Tokenize(note.Title); len(titleTokens) > 0 {
		score += fuzzyTitleWeight * e.fieldSimilarity(qTokens, titleTokens)
		weight += fuzzyTitleWeight
	}

	if bodyTokens := analysis.Tokenize(note.Body); len(bodyTokens) > 0 {
		score += fuzzyBodyWeight * e.fieldSimilarity(qTokens, bodyTokens)
		weight += fuzzyBodyWeight
	}

	var bestTag float64
	var hasTag bool
	for _, tag := range note.Tags {
		tagTokens := analysis.Tokenize(tag)
		if len(tagTokens) == 0 {
			continue
		}
		hasTag = true
		if s := e.fieldSimilarity(qTokens, tagTokens); s > bestTag {
			bestTag = s
		}
	}
	if hasTag {
		score += fuzzyTagWeight * bestTag
		weight += fuzzyTagWeight
	}

	if weight == 0 {
		return 0
	}
	return score / weight
}

// fieldSimilarity averages, over the query tokens, the best Levenshtein
// similarity against any field token.
func (e *Engine) fieldSimilarity(qTokens, fieldTokens []string) float64 {
	var sum float64
	for _, qt := range qTokens {
		var best float64
		for _, ft := range fieldTokens {
			if s := tokenSimilarity(e.distance, qt, ft); s > best {
				best = s
				if best == 1 {
					break
				}
			}
		}
		sum += best
	}
	return sum / float64(len(qTokens))
}
