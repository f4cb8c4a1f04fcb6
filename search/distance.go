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

// EditDistanceStrategy computes the edit distance between two tokens.
// It is an explicit strategy so an indexed implementation (BK-tree or
// similar) can replace the dynamic-programming default without changing
// the fuzzy search contract.
type EditDistanceStrategy interface {
	Distance(a, b string) int
}

// Levenshtein is the classic O(n*m) dynamic-programming edit distance.
// Tokens reaching it are already capped at analysis.MaxTokenLength, which
// bounds the cost per comparison.
type Levenshtein struct{}

var _ EditDistanceStrategy = Levenshtein{}

// Distance returns the minimum number of single-rune insertions, deletions,
// and substitutions needed to turn a into b.
func (Levenshtein) Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// tokenSimilarity maps an edit distance to a similarity in [0,1]:
// 1 - distance/max(len(a), len(b)). Identical tokens score 1.
func tokenSimilarity(d EditDistanceStrategy, a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(d.Distance(a, b))/float64(maxLen)
}
