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

const (
	maxSuggestions        = 15
	maxContextualPhrases  = 5
	maxPhraseWords        = 6
	minPhraseWords        = 3
	minSuggestionWordSize = 4
)

// Suggestions returns autocomplete candidates for a partial query: matching
// note titles, tags (prefixed with #), corpus words, and short contextual
// phrases from notes that already match lexically. De-duplicated
// case-insensitively, first-seen order, capped at fifteen.
func (e *Engine) Suggestions(query string, notes []*core.Note) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(s)
		if seen[key] || len(out) >= maxSuggestions {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	// Titles containing the query.
	for _, note := range notes {
		if note == nil {
			continue
		}
		if note.Title != "" && strings.Contains(strings.ToLower(note.Title), q) {
			add(note.Title)
		}
	}

	// Tags containing the query.
	for _, note := range notes {
		if note == nil {
			continue
		}
		for _, tag := range note.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				add("#" + tag)
			}
		}
	}

	// Corpus words containing the query.
	for _, note := range notes {
		if note == nil {
			continue
		}
		for _, word := range analysis.Tokenize(note.Text()) {
			if len(word) >= minSuggestionWordSize && strings.Contains(word, q) {
				add(word)
			}
		}
	}

	// Contextual phrases from lexically matching notes.
	phrases := 0
	for _, note := range notes {
		if phrases >= maxContextualPhrases {
			break
		}
		if note == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(note.Title), q) &&
			!strings.Contains(strings.ToLower(note.Body), q) {
			continue
		}
		for _, sentence := range analysis.SplitSentences(note.Body) {
			if phrases >= maxContextualPhrases {
				break
			}
			if !strings.Contains(strings.ToLower(sentence), q) {
				continue
			}
			if phrase := phraseAround(sentence, q); phrase != "" {
				add(phrase)
				phrases++
			}
		}
	}

	return out
}

// phraseAround extracts a 3-6 word phrase from a sentence, starting at the
// word containing the query when possible.
func phraseAround(sentence, q string) string {
	words := strings.Fields(sentence)
	if len(words) < minPhraseWords {
		return ""
	}

	start := 0
	for i, word := range words {
		if strings.Contains(strings.ToLower(word), q) {
			start = i
			break
		}
	}
	// Shift back so the phrase still has at least three words.
	if start > len(words)-minPhraseWords {
		start = len(words) - minPhraseWords
	}

	end := start + maxPhraseWords
	if end > len(words) {
		end = len(words)
	}
	return strings.Join(words[start:end], " ")
}
