package session

import (
	"context"
	"encoding/json"

	"github.com/Travel-Muslim/Frontend-sub000/config"
	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists session state in redis so it survives restarts.
// Hydration is implicit: the keys are read on demand from the same backing.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, tokenKey()).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	return s.client.Set(ctx, tokenKey(), token, 0).Err()
}

func (s *RedisStore) Profile(ctx context.Context) (*domain.User, error) {
	data, err := s.client.Get(ctx, profileKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisStore) SetProfile(ctx context.Context, user *domain.User) error {
	if user == nil {
		return s.client.Del(ctx, profileKey()).Err()
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, profileKey(), payload, 0).Err()
}

func (s *RedisStore) WishlistAdd(ctx context.Context, packageID string) error {
	return s.client.SAdd(ctx, wishlistKey(), packageID).Err()
}

func (s *RedisStore) WishlistRemove(ctx context.Context, packageID string) error {
	return s.client.SRem(ctx, wishlistKey(), packageID).Err()
}

func (s *RedisStore) WishlistContains(ctx context.Context, packageID string) (bool, error) {
	return s.client.SIsMember(ctx, wishlistKey(), packageID).Result()
}

func (s *RedisStore) Wishlist(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, wishlistKey()).Result()
}

func (s *RedisStore) RecordViewed(ctx context.Context, destinationID string) error {
	pipe := s.client.TxPipeline()
	pipe.LRem(ctx, recentKey(), 0, destinationID)
	pipe.LPush(ctx, recentKey(), destinationID)
	pipe.LTrim(ctx, recentKey(), 0, recentlyViewedLimit-1)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) RecentlyViewed(ctx context.Context) ([]string, error) {
	return s.client.LRange(ctx, recentKey(), 0, recentlyViewedLimit-1).Result()
}

func (s *RedisStore) SaveDraft(ctx context.Context, draft domain.ReviewDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, draftsKey(), draft.DestinationID, payload).Err()
}

func (s *RedisStore) Draft(ctx context.Context, destinationID string) (*domain.ReviewDraft, error) {
	data, err := s.client.HGet(ctx, draftsKey(), destinationID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var draft domain.ReviewDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, tokenKey(), profileKey(), wishlistKey(), recentKey(), draftsKey()).Err()
}

func tokenKey() string    { return "session:token" }
func profileKey() string  { return "session:profile" }
func wishlistKey() string { return "session:wishlist" }
func recentKey() string   { return "session:recent" }
func draftsKey() string   { return "session:drafts" }

var _ Store = (*RedisStore)(nil)
