package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillbarter_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ExchangeTransitions counts exchange state transitions.
	ExchangeTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillbarter_exchange_transitions_total",
		Help: "Total exchange lifecycle transitions by resulting status",
	}, []string{"status"})

	// MessagesSent counts messages sent, split by whether they carry an attachment.
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillbarter_messages_sent_total",
		Help: "Total messages sent in exchange chats",
	}, []string{"kind"})

	// RatingsSubmitted counts submitted ratings by star value.
	RatingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillbarter_ratings_submitted_total",
		Help: "Total ratings submitted by star value",
	}, []string{"value"})
)
