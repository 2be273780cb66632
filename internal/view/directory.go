package view

import (
	"context"
	"errors"
	"sync"

	"advocates/internal/domain"
)

// Status is where the one-time directory load stands.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Source is the one read the directory performs.
type Source interface {
	List(ctx context.Context) ([]domain.Advocate, error)
}

// ErrAlreadyLoaded is returned by every Load after the first.
var ErrAlreadyLoaded = errors.New("directory load already attempted")

// Directory holds the full advocate list fetched at startup. The list is set
// once and never mutated; sessions derive their displayed rows from it.
type Directory struct {
	mu      sync.RWMutex
	started bool
	status  Status
	records []domain.Advocate
	err     error
}

// NewDirectory returns an empty directory in StatusLoading.
func NewDirectory() *Directory { return &Directory{} }

// Load reads the source exactly once. A failed read leaves the directory in
// StatusFailed; there is no retry.
func (d *Directory) Load(ctx context.Context, src Source) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return ErrAlreadyLoaded
	}
	d.started = true
	d.mu.Unlock()

	records, err := src.List(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.status = StatusFailed
		d.err = err
		return err
	}
	if records == nil {
		records = []domain.Advocate{}
	}
	d.records = records
	d.status = StatusReady
	return nil
}

func (d *Directory) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Err is the load failure, nil unless the status is StatusFailed.
func (d *Directory) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// Len counts the loaded records.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}

// Session starts a fresh interaction over the current snapshot with an empty search term.
func (d *Directory) Session() *Session {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return &Session{status: d.status, records: d.records}
}
