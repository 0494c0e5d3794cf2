package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipeas_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// RecipeAPIRequests counts outbound recipe API calls by endpoint and outcome.
	RecipeAPIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipeas_recipe_api_requests_total",
		Help: "Total number of external recipe API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	// RecipeAPILatency records outbound recipe API latency by endpoint.
	RecipeAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recipeas_recipe_api_latency_seconds",
		Help:    "External recipe API request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)
