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
	snowballeng "github.com/kljensen/snowball/english"
)

// Stem reduces an already-lowercased word to its English root form
// ("running" -> "run"). Stemming is used only by the analytics aggregation
// paths; the scoring tokenizer never stems, so search scores are unaffected.
func Stem(word string) string {
	return snowballeng.Stem(word, false)
}

// StemmedKeywords tokenizes text, removes stop words, and stems each
// surviving token so inflected forms aggregate under one term.
func StemmedKeywords(text string) []string {
	keywords := Keywords(text)
	stemmed := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		stemmed = append(stemmed, Stem(keyword))
	}
	return stemmed
}
