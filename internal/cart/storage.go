package cart

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage est la dépendance de persistance injectée dans le Store.
// Read retourne "" (sans erreur) quand la clé n'existe pas.
type Storage interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, payload string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Publish(ctx context.Context, channel, message string) error
}

// RedisStorage persiste le panier sous une seule clé Redis et diffuse les
// notifications de changement via pub/sub.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Read(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return data, err
}

func (s *RedisStorage) Write(ctx context.Context, key, payload string, ttl time.Duration) error {
	return s.client.Set(ctx, key, payload, ttl).Err()
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStorage) Publish(ctx context.Context, channel, message string) error {
	return s.client.Publish(ctx, channel, message).Err()
}
