package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProfileRequests counts public profile hits by classified client.
	ProfileRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkbio_profile_requests_total",
		Help: "Public profile requests by client classification.",
	}, []string{"client"})

	// Resolutions counts resolution outcomes.
	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkbio_resolutions_total",
		Help: "Profile resolutions by outcome.",
	}, []string{"outcome"})

	// PreviewCacheHits counts redis preview cache hits.
	PreviewCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkbio_preview_cache_hits_total",
		Help: "Crawler documents served from the preview cache.",
	})
)
