package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	photosSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imagestore_photos_submitted_total",
		Help: "Photos received from users.",
	})

	photosTaggedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imagestore_tag_requests_total",
		Help: "Tag requests handled, including ones that matched no untagged photo.",
	})

	photoLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imagestore_photo_lookups_total",
		Help: "Lookups of approved photos by tag (by result).",
	}, []string{"result"})

	reviewDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "imagestore_review_decisions_total",
		Help: "Admin review decisions (by decision).",
	}, []string{"decision"})

	archiveFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "imagestore_archive_failures_total",
		Help: "Approved photos that could not be copied to object storage.",
	})
)
