package pg

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestApplyPoolOptions(t *testing.T) {
	cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/advocates")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defaultIdle := cfg.MaxConnIdleTime

	applyPoolOptions(cfg, PoolOptions{
		MaxConns:        7,
		MaxConnLifetime: 30 * time.Minute,
	})

	if cfg.MaxConns != 7 {
		t.Fatalf("MaxConns = %d", cfg.MaxConns)
	}
	if cfg.MaxConnLifetime != 30*time.Minute {
		t.Fatalf("MaxConnLifetime = %s", cfg.MaxConnLifetime)
	}
	if cfg.MaxConnIdleTime != defaultIdle {
		t.Fatalf("zero option should keep default idle time, got %s", cfg.MaxConnIdleTime)
	}
}
