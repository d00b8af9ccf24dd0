// Package metrics holds the Prometheus instruments exposed by the solver
// engine: nodes expanded, heap operations, cache hit rate, mesh build time
// and search duration.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	attrMode = "mode"
)

// SearchMetrics holds the Prometheus instruments for one solver invocation
// site (search.Run/search.Async).
type SearchMetrics struct {
	nodesExpanded  *prometheus.CounterVec
	heapPushes     *prometheus.CounterVec
	heapPops       *prometheus.CounterVec
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	meshBuildTime  prometheus.Histogram
	searchDuration *prometheus.HistogramVec
}

// durationBucketBoundaries covers 1ms to 60s, the range a board-size-14
// admissible search is expected to fall within.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60}

// NewSearchMetrics creates and registers the solver's instruments against
// reg. Passing prometheus.NewRegistry() keeps metrics isolated per test or
// per server instance; passing prometheus.DefaultRegisterer wires them into
// the process-wide registry.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	sm := &SearchMetrics{
		nodesExpanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floodit_search_nodes_expanded_total",
			Help: "Total A* nodes expanded, by heuristic mode.",
		}, []string{attrMode}),
		heapPushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floodit_heap_pushes_total",
			Help: "Total min-heap push operations, by heuristic mode.",
		}, []string{attrMode}),
		heapPops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floodit_heap_pops_total",
			Help: "Total min-heap pop operations, by heuristic mode.",
		}, []string{attrMode}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floodit_cache_hits_total",
			Help: "Total board-query cache hits, by cache name.",
		}, []string{"cache"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "floodit_cache_misses_total",
			Help: "Total board-query cache misses, by cache name.",
		}, []string{"cache"}),
		meshBuildTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "floodit_mesh_build_seconds",
			Help:    "Wall time to build one hard-corner navigation mesh.",
			Buckets: durationBucketBoundaries,
		}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "floodit_search_duration_seconds",
			Help:    "Wall time for a complete solveBoard call, by heuristic mode.",
			Buckets: durationBucketBoundaries,
		}, []string{attrMode}),
	}

	reg.MustRegister(
		sm.nodesExpanded,
		sm.heapPushes,
		sm.heapPops,
		sm.cacheHits,
		sm.cacheMisses,
		sm.meshBuildTime,
		sm.searchDuration,
	)

	return sm
}

// RecordNodeExpanded increments the node-expansion counter for mode.
func (sm *SearchMetrics) RecordNodeExpanded(mode string) {
	if sm == nil {
		return
	}
	sm.nodesExpanded.WithLabelValues(mode).Inc()
}

// RecordHeapPush increments the heap-push counter for mode.
func (sm *SearchMetrics) RecordHeapPush(mode string) {
	if sm == nil {
		return
	}
	sm.heapPushes.WithLabelValues(mode).Inc()
}

// RecordHeapPop increments the heap-pop counter for mode.
func (sm *SearchMetrics) RecordHeapPop(mode string) {
	if sm == nil {
		return
	}
	sm.heapPops.WithLabelValues(mode).Inc()
}

// RecordCacheAccess increments the hit or miss counter for the named cache.
func (sm *SearchMetrics) RecordCacheAccess(cache string, hit bool) {
	if sm == nil {
		return
	}
	if hit {
		sm.cacheHits.WithLabelValues(cache).Inc()
		return
	}
	sm.cacheMisses.WithLabelValues(cache).Inc()
}

// RecordMeshBuild observes how long one hard-corner mesh build took.
func (sm *SearchMetrics) RecordMeshBuild(d time.Duration) {
	if sm == nil {
		return
	}
	sm.meshBuildTime.Observe(d.Seconds())
}

// RecordSearch observes a complete solveBoard call's duration under mode.
func (sm *SearchMetrics) RecordSearch(mode string, d time.Duration) {
	if sm == nil {
		return
	}
	sm.searchDuration.WithLabelValues(mode).Observe(d.Seconds())
}
