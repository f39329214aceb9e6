package newsportal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	viewsCounted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newscms",
		Name:      "article_views_counted_total",
		Help:      "Article views that incremented the counters.",
	})

	viewsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newscms",
		Name:      "article_views_skipped_total",
		Help:      "Article views suppressed by the session marker.",
	})

	bannerClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newscms",
		Name:      "banner_clicks_total",
		Help:      "Recorded banner clicks by position.",
	}, []string{"position"})

	bannerImpressions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newscms",
		Name:      "banner_impressions_total",
		Help:      "Recorded banner impressions.",
	})

	sideChannelFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newscms",
		Name:      "side_channel_failures_total",
		Help:      "Best-effort writes that failed and were swallowed.",
	}, []string{"channel"})
)
