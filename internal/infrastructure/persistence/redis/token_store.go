package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/promobandhu/admin-backend/internal/domain/ports"
	"github.com/promobandhu/admin-backend/internal/infrastructure/config"
)

const refreshKeyPrefix = "pb:admin:refresh:"

// TokenStore implementa ports.TokenStore sobre Redis.
// Cada refresh token vira uma chave com TTL; logout revoga deletando.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore cria um novo TokenStore conectado ao Redis
func NewTokenStore(cfg *config.RedisConfig) (*TokenStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &TokenStore{client: client}, nil
}

// NewTokenStoreWithClient cria um TokenStore com um client existente
// (usado em testes)
func NewTokenStoreWithClient(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, token, memberID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKeyPrefix+token, memberID, ttl).Err()
}

func (s *TokenStore) Get(ctx context.Context, token string) (string, error) {
	memberID, err := s.client.Get(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return memberID, nil
}

func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshKeyPrefix+token).Err()
}

// Close encerra a conexão com o Redis
func (s *TokenStore) Close() error {
	return s.client.Close()
}

var _ ports.TokenStore = (*TokenStore)(nil)
