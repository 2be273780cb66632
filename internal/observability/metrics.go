package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advocates_http_requests_total", Help: "HTTP requests by route and status"},
		[]string{"route", "status"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "advocates_rate_limited_total", Help: "Requests rejected by the local rate limiter"},
	)
	StoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "advocates_store_latency_seconds", Help: "Postgres call latency"},
		[]string{"op"},
	)
	BreakerRejects = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advocates_breaker_rejects_total", Help: "Calls rejected by an open circuit breaker"},
		[]string{"breaker"},
	)
	DirectoryLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advocates_directory_loads_total", Help: "View data source loads"},
		[]string{"result"},
	)
	DirectoryRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "advocates_directory_records", Help: "Advocates held by the view"},
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advocates_searches_total", Help: "Rendered searches by outcome"},
		[]string{"outcome"},
	)
	Ingested = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advocates_ingested_total", Help: "Advocate upsert jobs by result"},
		[]string{"result"},
	)
	Enqueues = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advocates_enqueue_total", Help: "SQS enqueue results"},
		[]string{"result"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequests, RateLimited, StoreLatency, BreakerRejects,
		DirectoryLoads, DirectoryRecords, Searches, Ingested, Enqueues,
	)
}
