package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ngmaloney/charter-terminal/internal/models"
	"github.com/ngmaloney/charter-terminal/internal/sheets"
)

func fixtureSource() *sheets.StaticSource {
	return &sheets.StaticSource{
		BoatRows: [][]string{
			{"shipname", "url", "phonenumber", "address", "departure_port"},
			{"Seabird", "https://seabird.example", "090", "神奈川県三浦市", "三崎港"},
			{"", "", "", "", ""},
		},
		ListingRows: [][]string{
			{"shipname", "date", "category", "status", "capacity", "note"},
			{"Seabird", "2026/3/10", "ジギング", "open", "4", ""},
			{"Seabird", "2026/3/11", "タイラバ", "full", "", ""},
		},
	}
}

func TestNewLoader_StartsLoading(t *testing.T) {
	l := NewLoader(fixtureSource())
	st := l.Status()
	if st.State != StateLoading {
		t.Errorf("State = %v, want loading", st.State)
	}
	if st.Snapshot != nil {
		t.Error("Snapshot should be nil before Load")
	}
}

func TestLoad_Success(t *testing.T) {
	l := NewLoader(fixtureSource())
	fixed := time.Date(2026, 3, 5, 9, 0, 0, 0, time.Local)
	l.now = func() time.Time { return fixed }

	snap, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(snap.Boats) != 1 {
		t.Errorf("len(Boats) = %d, want 1", len(snap.Boats))
	}
	if len(snap.Listings) != 2 {
		t.Fatalf("len(Listings) = %d, want 2", len(snap.Listings))
	}
	if snap.Listings[0].Status != models.StatusAvailable || snap.Listings[0].Capacity != 4 {
		t.Errorf("Listings[0] = %+v, want available with capacity 4", snap.Listings[0])
	}
	if snap.LoadID == "" {
		t.Error("LoadID should be set")
	}
	if !snap.LoadedAt.Equal(fixed) {
		t.Errorf("LoadedAt = %v, want %v", snap.LoadedAt, fixed)
	}

	st := l.Status()
	if st.State != StateReady || st.Snapshot != snap || st.Err != nil {
		t.Errorf("Status() = %+v, want ready with snapshot", st)
	}
}

func TestLoad_FailureIsAllOrNothing(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		mutate func(s *sheets.StaticSource)
	}{
		{"boats fail", func(s *sheets.StaticSource) { s.BoatErr = boom }},
		{"listings fail", func(s *sheets.StaticSource) { s.ListingErr = boom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fixtureSource()
			l := NewLoader(src)
			if _, err := l.Load(context.Background()); err != nil {
				t.Fatalf("initial Load() error = %v", err)
			}

			tt.mutate(src)
			snap, err := l.Load(context.Background())
			if !errors.Is(err, boom) {
				t.Fatalf("Load() error = %v, want wrapping boom", err)
			}
			if snap != nil {
				t.Error("Load() should not return a partial snapshot")
			}

			st := l.Status()
			if st.State != StateError {
				t.Errorf("State = %v, want error", st.State)
			}
			if st.Snapshot != nil {
				t.Error("previous snapshot should be discarded on error")
			}
		})
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	l := NewLoader(fixtureSource())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
	if l.Status().State != StateError {
		t.Errorf("State = %v, want error", l.Status().State)
	}
}

// gatedSource blocks listing fetches until release is closed
type gatedSource struct {
	*sheets.StaticSource
	started chan struct{}
	release chan struct{}
}

func (g *gatedSource) FetchListingRows(ctx context.Context) ([][]string, error) {
	close(g.started)
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.StaticSource.FetchListingRows(ctx)
}

func TestLoad_ReportsLoadingWhileInFlight(t *testing.T) {
	src := fixtureSource()
	src.ListingErr = errors.New("unpublished")
	l := NewLoader(src)
	if _, err := l.Load(context.Background()); err == nil {
		t.Fatal("expected error on first load")
	}

	src.ListingErr = nil
	gated := &gatedSource{
		StaticSource: src,
		started:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	l.source = gated

	done := make(chan error, 1)
	go func() {
		_, err := l.Load(context.Background())
		done <- err
	}()

	<-gated.started
	if st := l.Status(); st.State != StateLoading {
		t.Errorf("State while fetching = %v, want loading", st.State)
	}

	close(gated.release)
	if err := <-done; err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st := l.Status(); st.State != StateReady {
		t.Errorf("State after fetch = %v, want ready", st.State)
	}
}

func TestRetry_RecoversFromError(t *testing.T) {
	src := fixtureSource()
	src.ListingErr = errors.New("unpublished")
	l := NewLoader(src)

	if _, err := l.Load(context.Background()); err == nil {
		t.Fatal("expected error on first load")
	}

	src.ListingErr = nil
	snap, err := l.Retry(context.Background())
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if l.Status().State != StateReady || len(snap.Listings) != 2 {
		t.Errorf("Retry() did not produce a ready snapshot: %+v", l.Status())
	}
}

func TestReset(t *testing.T) {
	l := NewLoader(fixtureSource())
	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	l.Reset()

	st := l.Status()
	if st.State != StateLoading || st.Snapshot != nil {
		t.Errorf("Status() after Reset = %+v, want loading without snapshot", st)
	}
}

func TestLoad_Concurrent(t *testing.T) {
	l := NewLoader(fixtureSource())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Load(context.Background())
		}()
	}
	wg.Wait()

	st := l.Status()
	if st.State != StateReady || st.Snapshot == nil {
		t.Errorf("Status() = %+v, want ready", st)
	}
}

func TestAllowRetry_Throttles(t *testing.T) {
	l := NewLoader(fixtureSource())

	if !l.AllowRetry() {
		t.Fatal("first AllowRetry() should be allowed")
	}
	if l.AllowRetry() {
		t.Error("immediate second AllowRetry() should be throttled")
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateLoading, "loading"},
		{StateError, "error"},
		{StateReady, "ready"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}
