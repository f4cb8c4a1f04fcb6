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
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/noteseek/analysis"
	"github.com/poiesic/noteseek/core"
)

// Boost and signal constants applied by the merger.
const (
	freshnessHorizonDays = 365
	recencyBoostDays     = 30
	recencyBoostFactor   = 0.2
	popularityBoostCap   = 0.3
	popularityBoostStep  = 0.01
	popularityNormCount  = 100
)

// Engine runs multi-strategy searches over caller-supplied note corpora.
//
// The engine is explicit, caller-owned state: it holds the access-count map
// fed by TrackNoteAccess, a worker pool the four strategies run on, and the
// pluggable edit-distance and clustering strategies. Everything else is a
// pure function of (query, notes, options), so two identical calls with no
// intervening TrackNoteAccess yield identical rankings.
type Engine struct {
	mu           sync.RWMutex
	accessCounts map[core.ID]uint32

	pool      *ants.Pool
	distance  EditDistanceStrategy
	clusterer ClusteringStrategy
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent strategy execution.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithEditDistance replaces the Levenshtein default, e.g. with an indexed
// implementation.
func WithEditDistance(d EditDistanceStrategy) Option {
	return func(e *Engine) error {
		if d == nil {
			return ErrEditDistanceRequired
		}
		e.distance = d
		return nil
	}
}

// WithClustering replaces the greedy cosine clusterer.
func WithClustering(c ClusteringStrategy) Option {
	return func(e *Engine) error {
		if c == nil {
			return ErrClusteringRequired
		}
		e.clusterer = c
		return nil
	}
}

// NewEngine creates a new search engine.
func NewEngine(opts ...Option) (*Engine, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		accessCounts: make(map[core.ID]uint32),
		pool:         pool,
		distance:     Levenshtein{},
		clusterer:    &GreedyClusterer{Threshold: DefaultClusterThreshold},
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.pool.Release()
			return nil, err
		}
	}

	return e, nil
}

// Close releases the worker pool.
func (e *Engine) Close() {
	e.pool.Release()
}

// TrackNoteAccess increments the popularity counter for a note. It is the
// only mutation of engine state; search itself never changes the counters.
// Counters live for the lifetime of the engine and are never persisted.
func (e *Engine) TrackNoteAccess(id core.ID) {
	e.mu.Lock()
	e.accessCounts[id]++
	e.mu.Unlock()
}

// AccessCount returns the number of recorded accesses for a note.
func (e *Engine) AccessCount(id core.ID) uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.accessCounts[id]
}

// Search runs all four strategies, merges their scores with the configured
// weights, applies relevance/freshness/popularity re-weighting and optional
// boosts, and returns the ranked, truncated result list.
func (e *Engine) Search(ctx context.Context, query string, notes []*core.Note, opts *Options) ([]*core.SearchResult, error) {
	return e.SearchWithMonitor(ctx, query, notes, opts, nil)
}

// SearchWithMonitor is Search with observation hooks; the monitor receives
// callbacks at each stage of the pipeline.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, notes []*core.Note, opts *Options, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	opts = withDefaults(opts)
	monitor.Start(query)

	if strings.TrimSpace(query) == "" || len(notes) == 0 {
		monitor.Finish(nil)
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The strategies are pure functions of (query, notes); the access-count
	// map is read-only during search. Run them in parallel and join.
	strategies := []struct {
		matchType core.MatchType
		weight    float64
		run       func() []*core.SearchResult
	}{
		{core.MatchExact, opts.ExactWeight, func() []*core.SearchResult {
			return e.ExactSearch(query, notes, opts)
		}},
		{core.MatchFuzzy, opts.FuzzyWeight, func() []*core.SearchResult {
			return e.FuzzySearch(query, notes, opts.FuzzyThreshold)
		}},
		{core.MatchSemantic, opts.SemanticWeight, func() []*core.SearchResult {
			return e.SemanticSearch(query, notes, opts)
		}},
		{core.MatchNLP, opts.NLPWeight, func() []*core.SearchResult {
			return e.NLPSearch(query, notes)
		}},
	}

	partials := make([][]*core.SearchResult, len(strategies))
	var wg sync.WaitGroup
	for i := range strategies {
		wg.Add(1)
		s := strategies[i]
		idx := i
		if err := e.pool.Submit(func() {
			defer wg.Done()
			partials[idx] = s.run()
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, s := range strategies {
		monitor.AfterStrategy(s.matchType, partials[i])
	}

	// Merge: one result per note, weighted score sum, highlights
	// concatenated in strategy order without de-duplication.
	merged := make(map[core.ID]*core.SearchResult, len(notes))
	bestContribution := make(map[core.ID]float64)
	for i, s := range strategies {
		for _, partial := range partials[i] {
			id := partial.Note.Id
			contribution := partial.Score * s.weight

			result, ok := merged[id]
			if !ok {
				result = &core.SearchResult{
					Note:      partial.Note,
					MatchType: partial.MatchType,
				}
				merged[id] = result
				bestContribution[id] = contribution
			} else if contribution > bestContribution[id] {
				result.MatchType = partial.MatchType
				bestContribution[id] = contribution
			}

			result.Score += contribution
			result.Highlights = append(result.Highlights, partial.Highlights...)
			if result.Context == "" {
				result.Context = partial.Context
			}
		}
	}

	// Assemble in corpus order so ties rank deterministically.
	results := make([]*core.SearchResult, 0, len(merged))
	seen := make(map[core.ID]bool, len(merged))
	for _, note := range notes {
		if note == nil || seen[note.Id] {
			continue
		}
		seen[note.Id] = true
		if result, ok := merged[note.Id]; ok {
			results = append(results, result)
		}
	}
	monitor.AfterMerge(results)

	e.rankResults(query, results, opts, time.Now())
	monitor.AfterBoost(results)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}

	if opts.EnableClustering {
		e.ApplyClustering(results)
		monitor.AfterClustering(results)
	}

	e.logger.Debug("search complete", "query", query, "corpus", len(notes), "results", len(results))
	monitor.Finish(results)
	return results, nil
}

// rankResults attaches the relevance, freshness, and popularity signals and
// rescales every score with the configured rank weights and boosts.
func (e *Engine) rankResults(query string, results []*core.SearchResult, opts *Options, now time.Time) {
	qTokens := analysis.Tokenize(query)

	for _, result := range results {
		note := result.Note

		result.Relevance = relevance(qTokens, note)
		result.Freshness = freshness(note, now)
		access := e.AccessCount(note.Id)
		result.Popularity = float64(access) / popularityNormCount
		if result.Popularity > 1 {
			result.Popularity = 1
		}

		score := opts.RankMergedWeight*result.Score +
			opts.RankRelevanceWeight*result.Relevance +
			opts.RankFreshnessWeight*result.Freshness +
			opts.RankPopularityWeight*result.Popularity

		if opts.BoostRecent {
			age := ageInDays(note, now)
			recency := 1 - age/recencyBoostDays
			if recency < 0 {
				recency = 0
			}
			score *= 1 + recencyBoostFactor*recency
		}
		if opts.BoostPopular {
			boost := popularityBoostStep * float64(access)
			if boost > popularityBoostCap {
				boost = popularityBoostCap
			}
			score *= 1 + boost
		}

		result.Score = score
	}
}

// relevance is the fraction of query tokens present in the note's text.
func relevance(qTokens []string, note *core.Note) float64 {
	if len(qTokens) == 0 {
		return 0
	}
	noteTokens := analysis.Tokenize(note.Text())
	set := make(map[string]bool, len(noteTokens))
	for _, token := range noteTokens {
		set[token] = true
	}
	hits := 0
	for _, token := range qTokens {
		if set[token] {
			hits++
		}
	}
	return float64(hits) / float64(len(qTokens))
}

// freshness decays linearly from 1 to 0 over a year since the last update.
func freshness(note *core.Note, now time.Time) float64 {
	f := 1 - ageInDays(note, now)/freshnessHorizonDays
	if f < 0 {
		return 0
	}
	return f
}

func ageInDays(note *core.Note, now time.Time) float64 {
	ts := note.UpdatedAt
	if ts.IsZero() {
		ts = note.CreatedAt
	}
	if ts.IsZero() {
		// Undated notes are treated as stale, never negative-aged.
		return freshnessHorizonDays
	}
	age := now.Sub(ts).Hours() / 24
	if age < 0 {
		return 0
	}
	return age
}
