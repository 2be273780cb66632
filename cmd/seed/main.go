package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"advocates/internal/awsutil"
	"advocates/internal/config"
	"advocates/internal/domain"
	"advocates/internal/logging"
	sqsqueue "advocates/internal/queue/sqs"
	"advocates/internal/store"
	"advocates/internal/store/pg"
	"advocates/internal/util"
)

type sink func(ctx context.Context, a domain.Advocate) error

func main() {
	cfg := config.LoadSeed()
	logging.Init("seed", cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	put, closeFn, err := newSink(ctx, cfg)
	if err != nil {
		slog.Error("seed init failed", "err", err)
		os.Exit(1)
	}
	defer closeFn()

	n, err := seed(ctx, seedAdvocates(), put)
	if err != nil {
		slog.Error("seed failed", "err", err, "written", n)
		os.Exit(1)
	}
	slog.Info("seed done", "advocates", n, "direct", cfg.Direct)
}

func newSink(ctx context.Context, cfg config.SeedConfig) (sink, func(), error) {
	if cfg.Direct {
		if cfg.DBDSN == "" {
			return nil, nil, fmt.Errorf("SEED_DIRECT requires DB_DSN")
		}
		db, err := pg.NewPool(ctx, cfg.DBDSN, pg.PoolOptions{MaxConns: 2})
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		st := pg.New(db)
		return func(ctx context.Context, a domain.Advocate) error {
			return st.UpsertAdvocate(ctx, store.NewAdvocateUpsert(a, util.NowUTC()))
		}, db.Close, nil
	}

	if cfg.AWSRegion == "" || cfg.SQSQueueURL == "" {
		return nil, nil, fmt.Errorf("queue seeding requires AWS_REGION and SQS_QUEUE_URL")
	}
	client, err := awsutil.NewSQSClient(ctx, cfg.AWSRegion, cfg.LocalstackEndpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("sqs client: %w", err)
	}
	producer := &sqsqueue.Producer{SQS: client, QueueURL: cfg.SQSQueueURL}
	return func(ctx context.Context, a domain.Advocate) error {
		return producer.EnqueueAdvocate(ctx, sqsqueue.AdvocateJob{
			JobID:      util.NewJobID(),
			Advocate:   a,
			EnqueuedAt: util.NowUTC(),
		})
	}, func() {}, nil
}

func seed(ctx context.Context, advocates []domain.Advocate, put sink) (int, error) {
	for i, a := range advocates {
		if err := put(ctx, a); err != nil {
			return i, fmt.Errorf("seed %s %s: %w", a.FirstName, a.LastName, err)
		}
	}
	return len(advocates), nil
}
