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


package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or supplied by the caller.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MatchType identifies which search strategy produced a result.
type MatchType string

const (
	// MatchExact indicates a case-insensitive substring match.
	MatchExact MatchType = "exact"
	// MatchFuzzy indicates an edit-distance tolerant match.
	MatchFuzzy MatchType = "fuzzy"
	// MatchSemantic indicates a term-frequency cosine similarity match.
	MatchSemantic MatchType = "semantic"
	// MatchNLP indicates a heuristic keyword/entity/intent match.
	MatchNLP MatchType = "nlp"
)

// Note is a single document in the search corpus.
// Notes are owned by the caller and read-only to the search engine;
// the identifier must be unique within a call's corpus.
type Note struct {
	Id        ID
	Title     string
	Body      string
	Tags      []string
	CreatedAt time.Time // When the note was first created
	UpdatedAt time.Time // When the note content was last changed
}

// Text returns the searchable text of the note: title, body, and tags.
func (n *Note) Text() string {
	text := n.Title + " " + n.Body
	for _, tag := range n.Tags {
		text += " " + tag
	}
	return text
}

// SearchResult is a scored match for a single note.
// A final ranked list contains exactly one SearchResult per distinct note;
// per-strategy partial results for the same note are merged, never duplicated.
type SearchResult struct {
	Note       *Note
	Score      float64   // Unbounded positive; higher is more relevant
	Highlights []string  // Literal field excerpts, concatenated across strategies
	Context    string    // Bounded-length snippet surrounding the best match
	MatchType  MatchType // Strategy that contributed the most to the score
	Relevance  float64   // Fraction of query tokens present in the note, [0,1]
	Freshness  float64   // Recency signal, [0,1]
	Popularity float64   // Access-count signal, [0,1]
	ClusterID  ID        // 0 when the result is unclustered
}

// SearchCluster is a greedily formed group of mutually similar results.
// A cluster holds at least one member and every note belongs to at most
// one cluster within a ranked list.
type SearchCluster struct {
	Id       ID
	Name     string // Seeded from the first member's title
	Results  []*SearchResult
	Centroid map[string]float64 // Mean term-frequency vector of the members
	Keywords []string           // Strongest centroid terms
}
