package catalog

import (
	"context"
	"log"
	"net/url"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/envelope"
	"github.com/Travel-Muslim/Frontend-sub000/internal/normalize"
	"github.com/Travel-Muslim/Frontend-sub000/internal/session"
)

type API interface {
	GetJSON(ctx context.Context, path string, query url.Values) (interface{}, error)
}

// CatalogService covers the browse side of the site: packages, destinations,
// articles and the community feed, plus the session-backed wishlist,
// recently-viewed list and locally saved review drafts. Reads follow the same
// degrade-to-empty policy as the booking lists.
type CatalogService struct {
	api      API
	sessions session.Store
}

func NewCatalogService(api API, sessions session.Store) *CatalogService {
	return &CatalogService{api: api, sessions: sessions}
}

func (s *CatalogService) Packages(ctx context.Context) []domain.Package {
	raw, err := s.api.GetJSON(ctx, "/packages", nil)
	if err != nil {
		log.Printf("list packages: %v", err)
		return []domain.Package{}
	}
	return normalize.Packages(envelope.UnwrapList(raw))
}

func (s *CatalogService) PackageDetail(ctx context.Context, packageID string) *domain.Package {
	raw, err := s.api.GetJSON(ctx, "/packages/"+packageID, nil)
	if err != nil {
		log.Printf("fetch package %s: %v", packageID, err)
		return nil
	}
	obj := envelope.UnwrapObject(raw)
	if obj == nil {
		return nil
	}
	p := normalize.Package(obj)
	return &p
}

func (s *CatalogService) Destinations(ctx context.Context) []domain.Destination {
	raw, err := s.api.GetJSON(ctx, "/destinations", nil)
	if err != nil {
		log.Printf("list destinations: %v", err)
		return []domain.Destination{}
	}
	return normalize.Destinations(envelope.UnwrapList(raw))
}

// DestinationDetail also records the visit in the recently-viewed list.
func (s *CatalogService) DestinationDetail(ctx context.Context, destinationID string) *domain.Destination {
	raw, err := s.api.GetJSON(ctx, "/destinations/"+destinationID, nil)
	if err != nil {
		log.Printf("fetch destination %s: %v", destinationID, err)
		return nil
	}
	obj := envelope.UnwrapObject(raw)
	if obj == nil {
		return nil
	}
	d := normalize.Destination(obj)
	if err := s.sessions.RecordViewed(ctx, d.DestinationID); err != nil {
		log.Printf("record viewed destination %s: %v", d.DestinationID, err)
	}
	return &d
}

// Profile returns the cached user profile, refreshing from the backend only
// when the session has none yet.
func (s *CatalogService) Profile(ctx context.Context) *domain.User {
	if cached, err := s.sessions.Profile(ctx); err == nil && cached != nil {
		return cached
	}

	raw, err := s.api.GetJSON(ctx, "/auth/me", nil)
	if err != nil {
		log.Printf("fetch profile: %v", err)
		return nil
	}
	obj := envelope.UnwrapObject(raw)
	if obj == nil {
		return nil
	}

	u := normalize.User(obj)
	if err := s.sessions.SetProfile(ctx, &u); err != nil {
		log.Printf("cache profile: %v", err)
	}
	return &u
}

func (s *CatalogService) RecentlyViewed(ctx context.Context) []string {
	ids, err := s.sessions.RecentlyViewed(ctx)
	if err != nil {
		log.Printf("recently viewed: %v", err)
		return []string{}
	}
	return ids
}

func (s *CatalogService) Articles(ctx context.Context) []domain.Article {
	raw, err := s.api.GetJSON(ctx, "/articles", nil)
	if err != nil {
		log.Printf("list articles: %v", err)
		return []domain.Article{}
	}
	return normalize.Articles(envelope.UnwrapList(raw))
}

func (s *CatalogService) ArticleDetail(ctx context.Context, articleID string) *domain.Article {
	raw, err := s.api.GetJSON(ctx, "/articles/"+articleID, nil)
	if err != nil {
		log.Printf("fetch article %s: %v", articleID, err)
		return nil
	}
	obj := envelope.UnwrapObject(raw)
	if obj == nil {
		return nil
	}
	a := normalize.Article(obj)
	return &a
}

func (s *CatalogService) CommunityPosts(ctx context.Context) []domain.CommunityPost {
	raw, err := s.api.GetJSON(ctx, "/community/posts", nil)
	if err != nil {
		log.Printf("list community posts: %v", err)
		return []domain.CommunityPost{}
	}
	return normalize.CommunityPosts(envelope.UnwrapList(raw))
}

// ToggleWishlist flips membership and reports the new state.
func (s *CatalogService) ToggleWishlist(ctx context.Context, packageID string) (bool, error) {
	present, err := s.sessions.WishlistContains(ctx, packageID)
	if err != nil {
		return false, err
	}
	if present {
		return false, s.sessions.WishlistRemove(ctx, packageID)
	}
	return true, s.sessions.WishlistAdd(ctx, packageID)
}

func (s *CatalogService) Wishlist(ctx context.Context) ([]string, error) {
	return s.sessions.Wishlist(ctx)
}

func (s *CatalogService) SaveReviewDraft(ctx context.Context, draft domain.ReviewDraft) error {
	return s.sessions.SaveDraft(ctx, draft)
}

func (s *CatalogService) ReviewDraft(ctx context.Context, destinationID string) (*domain.ReviewDraft, error) {
	return s.sessions.Draft(ctx, destinationID)
}
