package service

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"advocates/internal/domain"
	"advocates/internal/observability"
)

type Store interface {
	ListAdvocates(ctx context.Context) ([]domain.Advocate, error)
}

// AdvocateService backs GET /api/advocates. The endpoint has no filtering,
// sorting or paging parameters; it always returns the full list.
type AdvocateService struct {
	Store   Store
	Breaker *gobreaker.CircuitBreaker
}

func NewBreaker(name string, maxFailures uint32, openTimeout time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= maxFailures },
	})
}

func (s *AdvocateService) List(ctx context.Context) ([]domain.Advocate, error) {
	call := func() (any, error) {
		start := time.Now()
		defer func() { observability.StoreLatency.WithLabelValues("list_advocates").Observe(time.Since(start).Seconds()) }()
		return s.Store.ListAdvocates(ctx)
	}

	var (
		res any
		err error
	)
	if s.Breaker == nil {
		res, err = call()
	} else {
		res, err = s.Breaker.Execute(call)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		observability.BreakerRejects.WithLabelValues(s.Breaker.Name()).Inc()
	}
	if err != nil {
		return nil, err
	}

	out, _ := res.([]domain.Advocate)
	if out == nil {
		out = []domain.Advocate{}
	}
	return out, nil
}
