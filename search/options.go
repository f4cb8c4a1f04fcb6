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

// Options configures a single search call. A nil *Options means defaults;
// zero-valued numeric fields are back-filled with their defaults so partial
// literals behave predictably.
//
// The rank and semantic-blend weights were fixed constants in earlier
// revisions; they are exposed here as configuration, with defaults that
// preserve the historical scoring exactly.
type Options struct {
	// FuzzyThreshold is the minimum fuzzy similarity a note must reach to
	// qualify. Default 0.7.
	FuzzyThreshold float64

	// Per-strategy merge weights. Defaults 0.3/0.4/0.3/0.2.
	SemanticWeight float64
	FuzzyWeight    float64
	ExactWeight    float64
	NLPWeight      float64

	// MaxResults truncates the final ranked list. Default 50.
	MaxResults int

	// Field inclusion for exact search. All default to true.
	IncludeTitle   bool
	IncludeContent bool
	IncludeTags    bool

	// BoostRecent multiplies scores of recently updated notes.
	BoostRecent bool
	// BoostPopular multiplies scores of frequently accessed notes.
	BoostPopular bool

	// EnableClustering annotates the ranked list with cluster identifiers.
	EnableClustering bool

	// ContextWindow bounds the length of context snippets. Default 200.
	ContextWindow int

	// Final re-weighting applied after merging. Defaults 0.5/0.3/0.1/0.1.
	RankMergedWeight     float64
	RankRelevanceWeight  float64
	RankFreshnessWeight  float64
	RankPopularityWeight float64

	// Semantic score blend. Defaults 0.7 cosine, 0.3 context similarity.
	SemanticCosineWeight  float64
	SemanticContextWeight float64
}

// Default option values. Changing these changes every caller that relies on
// zero-value back-filling.
const (
	DefaultFuzzyThreshold = 0.7
	DefaultSemanticWeight = 0.3
	DefaultFuzzyWeight    = 0.4
	DefaultExactWeight    = 0.3
	DefaultNLPWeight      = 0.2
	DefaultMaxResults     = 50
	DefaultContextWindow  = 200

	defaultRankMergedWeight     = 0.5
	defaultRankRelevanceWeight  = 0.3
	defaultRankFreshnessWeight  = 0.1
	defaultRankPopularityWeight = 0.1

	defaultSemanticCosineWeight  = 0.7
	defaultSemanticContextWeight = 0.3
)

// DefaultOptions returns the default search configuration.
func DefaultOptions() *Options {
	return &Options{
		FuzzyThreshold:        DefaultFuzzyThreshold,
		SemanticWeight:        DefaultSemanticWeight,
		FuzzyWeight:           DefaultFuzzyWeight,
		ExactWeight:           DefaultExactWeight,
		NLPWeight:             DefaultNLPWeight,
		MaxResults:            DefaultMaxResults,
		IncludeTitle:          true,
		IncludeContent:        true,
		IncludeTags:           true,
		ContextWindow:         DefaultContextWindow,
		RankMergedWeight:      defaultRankMergedWeight,
		RankRelevanceWeight:   defaultRankRelevanceWeight,
		RankFreshnessWeight:   defaultRankFreshnessWeight,
		RankPopularityWeight:  defaultRankPopularityWeight,
		SemanticCosineWeight:  defaultSemanticCosineWeight,
		SemanticContextWeight: defaultSemanticContextWeight,
	}
}

// withDefaults returns a copy of opts with zero-valued fields back-filled.
// A nil opts yields DefaultOptions.
//
// The Include* booleans cannot be distinguished from "unset" when false.
// All three false means "unset" and enables every field: excluding all
// fields would make exact search trivially empty, so the ambiguity is
// harmless in practice.
func withDefaults(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	out := *opts
	if !out.IncludeTitle && !out.IncludeContent && !out.IncludeTags {
		out.IncludeTitle = true
		out.IncludeContent = true
		out.IncludeTags = true
	}
	if out.FuzzyThreshold == 0 {
		out.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if out.SemanticWeight == 0 {
		out.SemanticWeight = DefaultSemanticWeight
	}
	if out.FuzzyWeight == 0 {
		out.FuzzyWeight = DefaultFuzzyWeight
	}
	if out.ExactWeight == 0 {
		out.ExactWeight = DefaultExactWeight
	}
	if out.NLPWeight == 0 {
		out.NLPWeight = DefaultNLPWeight
	}
	if out.MaxResults == 0 {
		out.MaxResults = DefaultMaxResults
	}
	if out.ContextWindow == 0 {
		out.ContextWindow = DefaultContextWindow
	}
	if out.RankMergedWeight == 0 && out.RankRelevanceWeight == 0 &&
		out.RankFreshnessWeight == 0 && out.RankPopularityWeight == 0 {
		out.RankMergedWeight = defaultRankMergedWeight
		out.RankRelevanceWeight = defaultRankRelevanceWeight
		out.RankFreshnessWeight = defaultRankFreshnessWeight
		out.RankPopularityWeight = defaultRankPopularityWeight
	}
	if out.SemanticCosineWeight == 0 && out.SemanticContextWeight == 0 {
		out.SemanticCosineWeight = defaultSemanticCosineWeight
		out.SemanticContextWeight = defaultSemanticContextWeight
	}
	return &out
}
