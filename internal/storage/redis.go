package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the refresh-token allow-list and short-lived reconciliation
// markers in Redis.
type TokenStore struct {
	Client     *redis.Client
	RefreshTTL time.Duration
	MarkerTTL  time.Duration
}

func NewTokenStore(client *redis.Client, refreshTTL time.Duration) *TokenStore {
	return &TokenStore{
		Client:     client,
		RefreshTTL: refreshTTL,
		MarkerTTL:  24 * time.Hour,
	}
}

func refreshKey(userID int) string {
	return "refresh:" + strconv.Itoa(userID)
}

func (s *TokenStore) SaveRefreshToken(ctx context.Context, userID int, token string) error {
	return s.Client.Set(ctx, refreshKey(userID), token, s.RefreshTTL).Err()
}

func (s *TokenStore) GetRefreshToken(ctx context.Context, userID int) (string, error) {
	token, err := s.Client.Get(ctx, refreshKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

func (s *TokenStore) DeleteRefreshToken(ctx context.Context, userID int) error {
	return s.Client.Del(ctx, refreshKey(userID)).Err()
}

// ReconcileMarkerKey marks orders whose payment outcome has already been
// applied, so duplicate webhook deliveries return before hitting Postgres.
// The database CAS stays authoritative; this is only a short-circuit.
func (s *TokenStore) ReconcileMarkerKey(orderID int) string {
	return "reconcile:" + strconv.Itoa(orderID)
}

func (s *TokenStore) Exists(ctx context.Context, key string) (bool, error) {
	res, err := s.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (s *TokenStore) SetMarker(ctx context.Context, key string) error {
	return s.Client.Set(ctx, key, "1", s.MarkerTTL).Err()
}
