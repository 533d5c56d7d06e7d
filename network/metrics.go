// SPDX-License-Identifier: MIT

package network

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ntwrk_network_builds_total",
		Help: "Network builds by mode and result",
	}, []string{"mode", "result"})

	buildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ntwrk_network_build_duration_seconds",
		Help:    "Network build duration",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"mode"})

	pairsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ntwrk_network_pairs_scanned_total",
		Help: "Distance evaluations performed by pairwise workers",
	})

	edgesKept = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ntwrk_network_edges_total",
		Help: "Edges emitted after merge",
	}, []string{"mode"})

	duplicatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ntwrk_network_duplicates_dropped_total",
		Help: "Duplicate pairs removed while merging partial tables",
	})
)

func observeResult(mode string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	buildTotal.WithLabelValues(mode, result).Inc()
}
