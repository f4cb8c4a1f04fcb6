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
	"fmt"
	"sort"

	"github.com/poiesic/noteseek/core"
)

const (
	// DefaultClusterThreshold is the cosine similarity a result must exceed
	// to join a cluster seed.
	DefaultClusterThreshold = 0.6

	// minClusterInput is the result-count floor below which clustering is a
	// no-op.
	minClusterInput = 3

	maxClusterKeywords = 5
)

// ClusteringStrategy groups ranked results into similarity clusters.
// It is an explicit strategy so an indexed approach (HNSW or similar) can
// replace the greedy default without changing the public contract.
type ClusteringStrategy interface {
	// Cluster returns the clusters of results, or nil when the input is too
	// small to group. Implementations must assign every result to at most
	// one cluster and must be deterministic for a given input order.
	Cluster(results []*core.SearchResult) []*core.SearchCluster
}

// GreedyClusterer is a single-pass, order-dependent clusterer: each
// unprocessed result seeds a cluster that absorbs all later unprocessed
// results whose cosine similarity to the seed exceeds Threshold. O(n^2) by
// construction; simplicity is preferred over global optimality.
type GreedyClusterer struct {
	Threshold float64
}

var _ ClusteringStrategy = (*GreedyClusterer)(nil)

// Cluster implements ClusteringStrategy.
func (g *GreedyClusterer) Cluster(results []*core.SearchResult) []*core.SearchCluster {
	if len(results) < minClusterInput {
		return nil
	}
	threshold := g.Threshold
	if threshold <= 0 {
		threshold = DefaultClusterThreshold
	}

	vectors := make([]TermVector, len(results))
	for i, result := range results {
		vectors[i] = BuildVector(result.Note.Text())
	}

	var clusters []*core.SearchCluster
	processed := make([]bool, len(results))

	for i, seed := range results {
		if processed[i] {
			continue
		}
		processed[i] = true

		cluster := &core.SearchCluster{
			Id:      clusterID(seed.Note),
			Name:    seed.Note.Title,
			Results: []*core.SearchResult{seed},
		}

		for j := i + 1; j < len(results); j++ {
			if processed[j] {
				continue
			}
			if Cosine(vectors[i], vectors[j]) > threshold {
				processed[j] = true
				cluster.Results = append(cluster.Results, results[j])
			}
		}

		cluster.Centroid = centroid(cluster.Results)
		cluster.Keywords = centroidKeywords(cluster.Centroid)
		clusters = append(clusters, cluster)
	}

	return clusters
}

// ApplyClustering annotates results with cluster identifiers. Lists shorter
// than three results are returned unchanged, with no identifiers assigned.
func (e *Engine) ApplyClustering(results []*core.SearchResult) []*core.SearchResult {
	for _, cluster := range e.clusterer.Cluster(results) {
		for _, member := range cluster.Results {
			member.ClusterID = cluster.Id
		}
	}
	return results
}

// Clusters groups ranked results into named clusters with centroid vectors
// and keyword summaries. Lists shorter than three results yield no clusters.
func (e *Engine) Clusters(results []*core.SearchResult) []*core.SearchCluster {
	clusters := e.clusterer.Cluster(results)
	for _, cluster := range clusters {
		for _, member := range cluster.Results {
			member.ClusterID = cluster.Id
		}
	}
	return clusters
}

// clusterID derives a deterministic identifier from the seed note, so the
// same ranked list always produces the same cluster IDs.
func clusterID(seed *core.Note) core.ID {
	return core.IDFromContent(fmt.Sprintf("cluster:%d:%s", seed.Id, seed.Title))
}

// centroid is the mean term-frequency vector of the member notes.
func centroid(members []*core.SearchResult) map[string]float64 {
	sum := make(map[string]float64)
	for _, member := range members {
		for term, v := range BuildVector(member.Note.Text()) {
			sum[term] += v
		}
	}
	n := float64(len(members))
	for term := range sum {
		sum[term] /= n
	}
	return sum
}

// centroidKeywords returns the strongest centroid terms, highest weight
// first with alphabetical tie-breaks.
func centroidKeywords(centroid map[string]float64) []string {
	type weighted struct {
		term string
		w    float64
	}
	terms := make([]weighted, 0, len(centroid))
	for term, w := range centroid {
		terms = append(terms, weighted{term, w})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].w != terms[j].w {
			return terms[i].w > terms[j].w
		}
		return terms[i].term < terms[j].term
	})

	limit := len(terms)
	if limit > maxClusterKeywords {
		limit = maxClusterKeywords
	}
	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = terms[i].term
	}
	return keywords
}
