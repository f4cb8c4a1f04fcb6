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


// Package search scores free-text queries against an in-memory note corpus
// using four independent strategies and merges them into one ranked list.
//
// The Engine type implements the multi-strategy algorithm:
//   - Exact search using case-insensitive substring containment
//   - Fuzzy search using Levenshtein distance over tokens
//   - Semantic search using sparse term-frequency vectors and cosine similarity
//   - NLP search using heuristic keyword, entity, and intent overlap
//
// Merged results are re-weighted by relevance, freshness, and popularity
// signals, optionally boosted, and optionally grouped into similarity
// clusters. The engine holds no corpus: notes are supplied by the caller on
// every call, and the only state that outlives a call is the access-count
// map fed by TrackNoteAccess.
package search
