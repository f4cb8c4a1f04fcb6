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
	"unicode/utf8"

	"github.com/poiesic/noteseek/core"
)

// Field weights for exact substring matches.
const (
	exactTitleWeight = 1.0
	exactBodyWeight  = 0.8
	exactTagWeight   = 0.6
)

// ExactSearch tests case-insensitive containment of the raw query in each
// note's title, body, and tags. The query is deliberately not tokenized so
// multi-word phrases are honored. Notes that match no field are excluded.
func (e *Engine) ExactSearch(query string, notes []*core.Note, opts *Options) []*core.SearchResult {
	opts = withDefaults(opts)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []*core.SearchResult
	for _, note := range notes {
		if note == nil {
			continue
		}
		if r := exactMatch(q, note, opts); r != nil {
			results = append(results, r)
		}
	}
	return results
}

func exactMatch(q string, note *core.Note, opts *Options) *core.SearchResult {
	var score float64
	var highlights []string
	var context string

	if opts.IncludeTitle && strings.Contains(strings.ToLower(note.Title), q) {
		score += exactTitleWeight
		highlights = append(highlights, note.Title)
		context = snippet(note.Title, q, opts.ContextWindow)
	}

	if opts.IncludeContent && strings.Contains(strings.ToLower(note.Body), q) {
		score += exactBodyWeight
		excerpt := snippet(note.Body, q, opts.ContextWindow)
		highlights = append(highlights, excerpt)
		if context == "" {
			context = excerpt
		}
	}

	if opts.IncludeTags {
		for _, tag := range note.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score += exactTagWeight
				highlights = append(highlights, tag)
				if context == "" {
					context = tag
				}
				break
			}
		}
	}

	if score == 0 {
		return nil
	}
	return &core.SearchResult{
		Note:       note,
		Score:      score,
		Highlights: highlights,
		Context:    context,
		MatchType:  core.MatchExact,
	}
}

// snippet returns a window-bounded substring of text centered on the first
// case-insensitive occurrence of q. When q is absent the head of text is
// returned. Boundaries are adjusted to rune starts.
func snippet(text, q string, window int) string {
	if window <= 0 || len(text) <= window {
		return text
	}

	idx := strings.Index(strings.ToLower(text), q)
	if idx < 0 {
		idx = 0
	}

	start := idx - (window-len(q))/2
	if start > idx {
		start = idx
	}
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(text) {
		end = len(text)
		start = end - window
	}

	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	return text[start:end]
}
