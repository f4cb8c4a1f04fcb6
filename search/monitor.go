package search

import (
	"github.com/poiesic/noteseek/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterStrategy(matchType core.MatchType, results []*core.SearchResult)
	AfterMerge(results []*core.SearchResult)
	AfterBoost(results []*core.SearchResult)
	AfterClustering(results []*core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                         {}
func (n *noopMonitor) AfterStrategy(_ core.MatchType, _ []*core.SearchResult) {}
func (n *noopMonitor) AfterMerge(_ []*core.SearchResult)                      {}
func (n *noopMonitor) AfterBoost(_ []*core.SearchResult)                      {}
func (n *noopMonitor) AfterClustering(_ []*core.SearchResult)                 {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                          {}
