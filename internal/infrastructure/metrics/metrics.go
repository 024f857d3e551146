package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inflo_feed_cache_requests_total",
		Help: "Feed cache lookups by result.",
	}, []string{"result"})

	cacheLookupSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inflo_feed_cache_lookup_seconds",
		Help:    "Feed cache lookup latency by result.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"result"})

	reactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inflo_reaction_toggles_total",
		Help: "Reaction toggles by requested kind and resulting state.",
	}, []string{"requested", "result"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inflo_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inflo_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

func IncFeedHit()  { feedCacheRequests.WithLabelValues("hit").Inc() }
func IncFeedMiss() { feedCacheRequests.WithLabelValues("miss").Inc() }

func AddHitDuration(seconds float64)  { cacheLookupSeconds.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheLookupSeconds.WithLabelValues("miss").Observe(seconds) }

// IncReactionToggle records a toggle; result is the resulting reaction or "none".
func IncReactionToggle(requested, result string) {
	reactionToggles.WithLabelValues(requested, result).Inc()
}

// GinMiddleware records request counts and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
