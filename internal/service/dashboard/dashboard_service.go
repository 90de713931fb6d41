package dashboard

import (
	"context"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/envelope"
	"github.com/Travel-Muslim/Frontend-sub000/internal/normalize"
)

type API interface {
	GetJSON(ctx context.Context, path string, query url.Values) (interface{}, error)
}

// Reader fetches the admin dashboard aggregate. It always has something to
// hand out: the built-in seed dataset before the first successful fetch, and
// afterwards the last good snapshot with field-wise overlay of whatever the
// latest response did carry. A timed-out backend means stale numbers, never
// a blank dashboard.
type Reader struct {
	api API

	mu      sync.Mutex
	current domain.DashboardStats
}

func NewReader(api API) *Reader {
	return &Reader{
		api:     api,
		current: domain.SeedDashboard(),
	}
}

// Fetch refreshes the snapshot from the backend and returns it. On any
// failure the previous snapshot is returned unchanged.
func (r *Reader) Fetch(ctx context.Context) domain.DashboardStats {
	raw, err := r.api.GetJSON(ctx, "/admin/dashboard", nil)
	if err != nil {
		log.Printf("fetch dashboard: %v", err)
		return r.Snapshot()
	}

	obj := envelope.UnwrapObject(raw)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = normalize.Dashboard(obj, r.current)
	return r.current
}

// Snapshot returns the current in-memory payload without touching the backend.
func (r *Reader) Snapshot() domain.DashboardStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Poll fetches immediately and then on every interval tick until ctx is
// canceled. The interval is the caller's policy, not the reader's. A response
// that lands after cancellation is discarded instead of being applied to a
// torn-down view.
func (r *Reader) Poll(ctx context.Context, interval time.Duration, apply func(domain.DashboardStats)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		stats := r.Fetch(ctx)
		select {
		case <-ctx.Done():
			return
		default:
		}
		if apply != nil {
			apply(stats)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
