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
	"strings"
	"unicode"
)

const (
	// MaxTokenLength bounds the length of a single token. Longer tokens are
	// truncated so edit-distance and vector computations stay tractable on
	// adversarial input.
	MaxTokenLength = 64

	// minTokenLength is the shortest token kept by Tokenize.
	minTokenLength = 3

	// minKeywordLength is the shortest token kept by Keywords.
	minKeywordLength = 4
)

// Tokenize normalizes text into comparable terms: lowercases, strips
// non-word characters, splits on whitespace, and discards tokens shorter
// than three characters. It is pure and deterministic.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(fields))
	var b strings.Builder

	for _, field := range fields {
		b.Reset()
		for _, r := range field {
			if !isWordRune(r) {
				continue
			}
			b.WriteRune(r)
			if b.Len() >= MaxTokenLength {
				break
			}
		}
		if b.Len() >= minTokenLength {
			tokens = append(tokens, b.String())
		}
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Keywords returns the significant tokens of text: tokens longer than three
// characters with stop words removed.
func Keywords(text string) []string {
	tokens := Tokenize(text)
	keywords := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) < minKeywordLength || stopWords[token] {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}
