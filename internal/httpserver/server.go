package httpserver

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	Mux *mux.Router
}

// New returns a router with request logging and per-route counters installed.
func New(requests *prometheus.CounterVec) *Server {
	m := mux.NewRouter()
	m.Use(Logging)
	if requests != nil {
		m.Use(Metrics(requests))
	}
	return &Server{Mux: m}
}
