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
	"context"
	"sort"
	"strings"

	"github.com/poiesic/noteseek/analysis"
	"github.com/poiesic/noteseek/core"
)

const (
	maxTopWords = 10

	// effectivenessSaturation is the hit count at which a query counts as
	// fully effective.
	effectivenessSaturation = 10
)

// WordCount is a word and its frequency across a query history.
type WordCount struct {
	Word  string
	Count int
}

// QueryStat describes how a single historical query performs against the
// current corpus.
type QueryStat struct {
	Query         string
	Hits          int
	TopScore      float64
	Effectiveness float64
}

// Analytics aggregates statistics over a query history. It never affects
// ranking state.
type Analytics struct {
	TotalQueries         int
	UniqueQueries        int
	AverageQueryLength   float64 // in characters
	TopWords             []WordCount
	Queries              []QueryStat
	AverageEffectiveness float64
}

// Analytics measures a query history against a corpus: query counts and
// lengths, stem-normalized word frequencies, and per-query effectiveness
// obtained by re-running the combined search with default options. The
// engine only consumes the history; persisting it belongs to the caller.
func (e *Engine) Analytics(ctx context.Context, queries []string, notes []*core.Note) (*Analytics, error) {
	a := &Analytics{TotalQueries: len(queries)}
	if len(queries) == 0 {
		return a, nil
	}

	unique := make(map[string]bool, len(queries))
	wordFreq := make(map[string]int)
	var totalLength int

	for _, query := range queries {
		unique[strings.ToLower(strings.TrimSpace(query))] = true
		totalLength += len(query)
		for _, stem := range analysis.StemmedKeywords(query) {
			wordFreq[stem]++
		}
	}
	a.UniqueQueries = len(unique)
	a.AverageQueryLength = float64(totalLength) / float64(len(queries))
	a.TopWords = topWords(wordFreq, maxTopWords)

	var totalEffectiveness float64
	a.Queries = make([]QueryStat, 0, len(queries))
	for _, query := range queries {
		results, err := e.Search(ctx, query, notes, nil)
		if err != nil {
			return nil, err
		}

		stat := QueryStat{Query: query, Hits: len(results)}
		if len(results) > 0 {
			stat.TopScore = results[0].Score
		}
		stat.Effectiveness = float64(stat.Hits) / effectivenessSaturation
		if stat.Effectiveness > 1 {
			stat.Effectiveness = 1
		}

		totalEffectiveness += stat.Effectiveness
		a.Queries = append(a.Queries, stat)
	}
	a.AverageEffectiveness = totalEffectiveness / float64(len(queries))

	return a, nil
}

func topWords(freq map[string]int, limit int) []WordCount {
	words := make([]WordCount, 0, len(freq))
	for word, count := range freq {
		words = append(words, WordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
