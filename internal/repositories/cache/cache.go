// Package cache provides an optional redis read-through cache for hot
// lookups (user and wallet by id). Repositories treat a nil *Service as
// "caching disabled" and go straight to the store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ysfrando/SQLOtter/internal/models"
)

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Service caches JSON-encoded records with a fixed TTL.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, ttl time.Duration) *Service {
	return &Service{client: client, ttl: ttl}
}

func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	val, err := s.client.Get(ctx, userKey(id)).Result()
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) SetUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, s.ttl).Err()
}

func (s *Service) InvalidateUser(ctx context.Context, id string) error {
	return s.client.Del(ctx, userKey(id)).Err()
}

func (s *Service) GetWallet(ctx context.Context, id string) (*models.Wallet, error) {
	val, err := s.client.Get(ctx, walletKey(id)).Result()
	if err != nil {
		return nil, err
	}
	var wallet models.Wallet
	if err := json.Unmarshal([]byte(val), &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *Service) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, walletKey(wallet.ID), data, s.ttl).Err()
}

func (s *Service) InvalidateWallet(ctx context.Context, id string) error {
	return s.client.Del(ctx, walletKey(id)).Err()
}

func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func userKey(id string) string   { return "user:" + id }
func walletKey(id string) string { return "wallet:" + id }
