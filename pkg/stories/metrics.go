package stories

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storiesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stories",
		Name:      "created_total",
		Help:      "Stories created.",
	})

	storiesPurged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stories",
		Name:      "purged_total",
		Help:      "Expired stories purged.",
	})

	viewsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stories",
		Name:      "views_recorded_total",
		Help:      "First views recorded.",
	})

	mutesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stories",
		Name:      "mutes_toggled_total",
		Help:      "Mute toggles by resulting state.",
	}, []string{"state"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stories",
		Name:      "request_duration_seconds",
		Help:      "Latency of story API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)
