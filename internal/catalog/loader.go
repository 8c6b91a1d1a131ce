// Package catalog loads both datasets into an immutable Snapshot and tracks
// the load state the UI renders from.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ngmaloney/charter-terminal/internal/logging"
	"github.com/ngmaloney/charter-terminal/internal/models"
	"github.com/ngmaloney/charter-terminal/internal/normalize"
	"github.com/ngmaloney/charter-terminal/internal/sheets"
)

// State is the observable load state
type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is one consistent pair of datasets. It is never mutated after
// publication; a reload replaces it wholesale.
type Snapshot struct {
	Boats    []models.Boat
	Listings []models.TripListing
	LoadedAt time.Time
	LoadID   string
}

// Status is a point-in-time view of the loader
type Status struct {
	State    State
	Err      error // set in StateError
	Snapshot *Snapshot
}

// Loader fetches both sheets and publishes snapshots.
// Safe for concurrent use.
type Loader struct {
	source  sheets.Source
	limiter *rate.Limiter
	now     func() time.Time

	mu       sync.Mutex
	state    State
	err      error
	snapshot *Snapshot
}

// NewLoader creates a loader in StateLoading
func NewLoader(source sheets.Source) *Loader {
	return &Loader{
		source:  source,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
		now:     time.Now,
		state:   StateLoading,
	}
}

// Status returns the current state
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{State: l.state, Err: l.err, Snapshot: l.snapshot}
}

// Load fetches both datasets concurrently. The loader reports StateLoading
// while fetches are in flight. If either fetch fails the other is canceled,
// the previous snapshot is discarded and the loader enters StateError.
// When loads overlap, the last one to resolve wins.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	l.mu.Lock()
	l.state = StateLoading
	l.err = nil
	l.mu.Unlock()

	loadID := uuid.NewString()
	log := logging.WithLoad(loadID)
	start := l.now()

	var boatRows, listingRows [][]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := l.source.FetchBoatRows(gctx)
		if err != nil {
			return err
		}
		boatRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := l.source.FetchListingRows(gctx)
		if err != nil {
			return err
		}
		listingRows = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("loading catalog: %w", err)
		log.Errorw("catalog load failed", "error", err)

		l.mu.Lock()
		l.state = StateError
		l.err = err
		l.snapshot = nil
		l.mu.Unlock()
		return nil, err
	}

	snap := &Snapshot{
		Boats:    normalize.Boats(normalize.DropHeader(boatRows)),
		Listings: normalize.Listings(normalize.DropHeader(listingRows)),
		LoadedAt: l.now(),
		LoadID:   loadID,
	}
	log.Infow("catalog loaded",
		"boats", len(snap.Boats),
		"listings", len(snap.Listings),
		"duration", snap.LoadedAt.Sub(start),
	)

	l.mu.Lock()
	l.state = StateReady
	l.err = nil
	l.snapshot = snap
	l.mu.Unlock()
	return snap, nil
}

// Retry resets to StateLoading and reloads
func (l *Loader) Retry(ctx context.Context) (*Snapshot, error) {
	l.Reset()
	return l.Load(ctx)
}

// Reset returns the loader to StateLoading, discarding any snapshot
func (l *Loader) Reset() {
	l.mu.Lock()
	l.state = StateLoading
	l.err = nil
	l.snapshot = nil
	l.mu.Unlock()
}

// AllowRetry reports whether a manual refetch may start now.
// At most one refetch every two seconds is allowed.
func (l *Loader) AllowRetry() bool {
	return l.limiter.Allow()
}
