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
	"math"

	"github.com/poiesic/noteseek/analysis"
)

// MaxVectorTerms bounds how many tokens of a document contribute to its
// term-frequency vector, keeping cosine cost bounded on pathological input.
const MaxVectorTerms = 4096

// TermVector is a sparse term-frequency vector: token -> occurrence count.
type TermVector map[string]float64

// BuildVector builds the term-frequency vector of a text.
func BuildVector(text string) TermVector {
	tokens := analysis.Tokenize(text)
	if len(tokens) > MaxVectorTerms {
		tokens = tokens[:MaxVectorTerms]
	}
	vec := make(TermVector, len(tokens))
	for _, token := range tokens {
		vec[token]++
	}
	return vec
}

// Cosine computes the cosine similarity of two sparse vectors over the
// union of their terms. Returns 0 when either vector is empty.
func Cosine(a, b TermVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller vector for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, av := range a {
		if bv, ok := b[term]; ok {
			dot += av * bv
		}
	}
	if dot == 0 {
		return 0
	}

	var normA, normB float64
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
