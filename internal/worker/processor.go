package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"advocates/internal/observability"
	sqsqueue "advocates/internal/queue/sqs"
	"advocates/internal/store"
	"advocates/internal/util"
)

type Store interface {
	UpsertAdvocate(ctx context.Context, in store.AdvocateUpsert) error
}

// Processor applies advocate upsert jobs to the store.
type Processor struct {
	Store   Store
	Limiter *rate.Limiter
	Breaker *gobreaker.CircuitBreaker
	Now     func() time.Time
}

// Process returns nil for jobs that should be deleted (done or invalid) and
// an error for anything SQS should redeliver.
func (p *Processor) Process(ctx context.Context, job sqsqueue.AdvocateJob) error {
	a := job.Advocate
	if err := a.Validate(); err != nil || a.ID == "" {
		observability.Ingested.WithLabelValues("invalid").Inc()
		slog.Warn("dropping invalid advocate job", "job_id", job.JobID, "advocate_id", a.ID, "err", err)
		return nil
	}

	if p.Limiter != nil {
		waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := p.Limiter.Wait(waitCtx)
		cancel()
		if err != nil {
			observability.Ingested.WithLabelValues("rate_limited_local").Inc()
			return err
		}
	}

	now := util.NowUTC
	if p.Now != nil {
		now = p.Now
	}
	in := store.NewAdvocateUpsert(a, now())

	err := p.executeWithBreaker(ctx, in)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		observability.BreakerRejects.WithLabelValues(p.Breaker.Name()).Inc()
		return err
	}
	if err != nil {
		observability.Ingested.WithLabelValues("error").Inc()
		return err
	}
	observability.Ingested.WithLabelValues("ok").Inc()
	return nil
}

func (p *Processor) executeWithBreaker(ctx context.Context, in store.AdvocateUpsert) error {
	call := func() (any, error) {
		dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		start := time.Now()
		err := p.Store.UpsertAdvocate(dbCtx, in)
		observability.StoreLatency.WithLabelValues("upsert_advocate").Observe(time.Since(start).Seconds())
		return nil, err
	}
	if p.Breaker == nil {
		_, err := call()
		return err
	}
	_, err := p.Breaker.Execute(call)
	return err
}
