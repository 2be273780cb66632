package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"golang.org/x/time/rate"

	"advocates/internal/domain"
)

type listerFunc func(ctx context.Context) ([]domain.Advocate, error)

func (f listerFunc) List(ctx context.Context) ([]domain.Advocate, error) { return f(ctx) }

func newTestServer(l AdvocateLister, limiter *rate.Limiter) (*Server, *prometheus.CounterVec) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_requests_total"}, []string{"route", "status"})
	s := New(requests)
	s.Mux.Use(RateLimit(limiter))
	(&Advocates{Svc: l}).Register(s.Mux)
	s.RegisterHealth()
	return s, requests
}

func TestListAdvocates(t *testing.T) {
	s, _ := newTestServer(listerFunc(func(ctx context.Context) ([]domain.Advocate, error) {
		return []domain.Advocate{{ID: "1", FirstName: "Jane", LastName: "Doe", Specialties: []string{"Anxiety"}, YearsOfExperience: 5, PhoneNumber: domain.NewPhone(5551234567)}}, nil
	}), nil)

	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/advocates", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("expected one advocate, got %d", len(body.Data))
	}
	if body.Data[0]["phoneNumber"] != "5551234567" || body.Data[0]["firstName"] != "Jane" {
		t.Fatalf("unexpected payload: %v", body.Data[0])
	}
}

func TestListAdvocatesEmptyIsArray(t *testing.T) {
	s, _ := newTestServer(listerFunc(func(ctx context.Context) ([]domain.Advocate, error) {
		return []domain.Advocate{}, nil
	}), nil)
	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/advocates", nil))
	if got := rec.Body.String(); got != "{\"data\":[]}\n" {
		t.Fatalf("body = %q", got)
	}
}

func TestListAdvocatesDependencyError(t *testing.T) {
	s, requests := newTestServer(listerFunc(func(ctx context.Context) ([]domain.Advocate, error) {
		return nil, errors.New("db down")
	}), nil)

	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/advocates", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := counterValue(t, requests, "/api/advocates", "502"); got != 1 {
		t.Fatalf("expected one 502 counted, got %v", got)
	}
}

func TestRateLimitSparesHealthChecks(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0), 1)
	s, _ := newTestServer(listerFunc(func(ctx context.Context) ([]domain.Advocate, error) {
		return nil, nil
	}), limiter)

	codes := []int{}
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		s.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/advocates", nil))
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}

	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz limited: %d", rec.Code)
	}
}

func TestReadyzFailingCheck(t *testing.T) {
	h := Readyz(0, func(ctx context.Context) error { return errors.New("nope") })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func counterValue(t *testing.T, c *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	m, err := c.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("metric: %v", err)
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return out.GetCounter().GetValue()
}
