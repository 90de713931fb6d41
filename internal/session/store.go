package session

import (
	"context"
	"sync"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
)

const recentlyViewedLimit = 3

// Store is the process-wide session state: auth token, cached profile,
// wishlist, recently viewed destinations and locally saved review drafts.
// Implementations must make Clear atomic with respect to every key.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error

	Profile(ctx context.Context) (*domain.User, error)
	SetProfile(ctx context.Context, user *domain.User) error

	WishlistAdd(ctx context.Context, packageID string) error
	WishlistRemove(ctx context.Context, packageID string) error
	WishlistContains(ctx context.Context, packageID string) (bool, error)
	Wishlist(ctx context.Context) ([]string, error)

	// RecordViewed pushes a destination id to the front of the
	// recently-viewed list, bounded to the 3 most recent, deduplicated.
	RecordViewed(ctx context.Context, destinationID string) error
	RecentlyViewed(ctx context.Context) ([]string, error)

	SaveDraft(ctx context.Context, draft domain.ReviewDraft) error
	Draft(ctx context.Context, destinationID string) (*domain.ReviewDraft, error)

	// Clear removes every session key (logout).
	Clear(ctx context.Context) error
}

// MemoryStore keeps session state in process memory. Used in tests and as the
// default backend when no redis is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	profile  *domain.User
	wishlist map[string]struct{}
	recent   []string
	drafts   map[string]domain.ReviewDraft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		wishlist: make(map[string]struct{}),
		drafts:   make(map[string]domain.ReviewDraft),
	}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Profile(ctx context.Context) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, nil
	}
	cp := *s.profile
	return &cp, nil
}

func (s *MemoryStore) SetProfile(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.profile = nil
		return nil
	}
	cp := *user
	s.profile = &cp
	return nil
}

func (s *MemoryStore) WishlistAdd(ctx context.Context, packageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist[packageID] = struct{}{}
	return nil
}

func (s *MemoryStore) WishlistRemove(ctx context.Context, packageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlist, packageID)
	return nil
}

func (s *MemoryStore) WishlistContains(ctx context.Context, packageID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.wishlist[packageID]
	return ok, nil
}

func (s *MemoryStore) Wishlist(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.wishlist))
	for id := range s.wishlist {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MemoryStore) RecordViewed(ctx context.Context, destinationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = pushRecent(s.recent, destinationID)
	return nil
}

func (s *MemoryStore) RecentlyViewed(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out, nil
}

func (s *MemoryStore) SaveDraft(ctx context.Context, draft domain.ReviewDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.DestinationID] = draft
	return nil
}

func (s *MemoryStore) Draft(ctx context.Context, destinationID string) (*domain.ReviewDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[destinationID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	s.wishlist = make(map[string]struct{})
	s.recent = nil
	s.drafts = make(map[string]domain.ReviewDraft)
	return nil
}

func pushRecent(recent []string, id string) []string {
	out := make([]string, 0, recentlyViewedLimit)
	out = append(out, id)
	for _, v := range recent {
		if v == id {
			continue
		}
		out = append(out, v)
		if len(out) == recentlyViewedLimit {
			break
		}
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
