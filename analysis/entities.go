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


package analysis

import (
	"regexp"
	"strings"
)

// Intent classifies the rough purpose of a free-text query.
type Intent string

const (
	// IntentQuestion marks queries phrased as questions (how/what/why).
	IntentQuestion Intent = "question"
	// IntentSearch marks queries that look like lookups (find/search/look).
	IntentSearch Intent = "search"
	// IntentCreate marks queries about making something (create/add/new).
	IntentCreate Intent = "create"
	// IntentGeneral is the fallback intent.
	IntentGeneral Intent = "general"
)

const (
	maxTopics      = 3
	minTopicWords  = 4
	wordTrimCutset = ".,!?;:'\"-()[]{}"
)

var entityPattern = regexp.MustCompile(`^[A-Z][a-z]+$`)

// ExtractEntities returns the capitalized words of text, in order of first
// appearance with duplicates removed. This is a heuristic stand-in for named
// entity recognition and makes no linguistic guarantees.
func ExtractEntities(text string) []string {
	var entities []string
	seen := make(map[string]bool)

	for _, word := range strings.Fields(text) {
		cleaned := strings.Trim(word, wordTrimCutset)
		if !entityPattern.MatchString(cleaned) || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		entities = append(entities, cleaned)
	}

	return entities
}

// ExtractTopics returns up to three sentences of text longer than three
// words, trimmed of surrounding whitespace. Sentences are topic stand-ins;
// the extraction is heuristic.
func ExtractTopics(text string) []string {
	var topics []string
	for _, sentence := range SplitSentences(text) {
		if len(strings.Fields(sentence)) < minTopicWords {
			continue
		}
		topics = append(topics, sentence)
		if len(topics) == maxTopics {
			break
		}
	}
	return topics
}

// DetectIntent classifies a query by keyword heuristics. The result is a
// best-effort guess, never ground truth.
func DetectIntent(text string) Intent {
	lowered := strings.ToLower(text)
	switch {
	case containsAnyWord(lowered, "how", "what", "why"):
		return IntentQuestion
	case containsAnyWord(lowered, "find", "search", "look"):
		return IntentSearch
	case containsAnyWord(lowered, "create", "add", "new"):
		return IntentCreate
	default:
		return IntentGeneral
	}
}

// SplitSentences splits text on sentence-ending punctuation, dropping empty
// spans.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if s := strings.TrimSpace(text[start:i]); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func containsAnyWord(text string, words ...string) bool {
	fields := strings.Fields(text)
	for _, field := range fields {
		cleaned := strings.Trim(field, wordTrimCutset)
		for _, word := range words {
			if cleaned == word {
				return true
			}
		}
	}
	return false
}
