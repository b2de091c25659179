// Package redis guarda la última posición conocida de cada rider con TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/pkg/config"
)

var _ repository.LocationStore = (*LocationStore)(nil)

// KeyPrefixLocation prefijo de las claves de posición.
const KeyPrefixLocation = "rider:location"

// LocationStore implementación de repository.LocationStore sobre Redis.
type LocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect abre el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*LocationStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewLocationStore(rdb, cfg.LocationTTL), nil
}

// NewLocationStore construye el store sobre un cliente existente. ttl <= 0 = sin expiración.
func NewLocationStore(client *redis.Client, ttl time.Duration) *LocationStore {
	if ttl < 0 {
		ttl = 0
	}
	return &LocationStore{client: client, ttl: ttl}
}

// Key clave de la posición de un rider.
func Key(riderID string) string {
	return fmt.Sprintf("%s:%s", KeyPrefixLocation, riderID)
}

// Save guarda la posición serializada en JSON.
func (s *LocationStore) Save(ctx context.Context, loc repository.RiderLocation) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("marshal location: %w", err)
	}
	if err := s.client.Set(ctx, Key(loc.RiderID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", Key(loc.RiderID), err)
	}
	return nil
}

// Get devuelve (nil, nil) si la clave no existe o expiró.
func (s *LocationStore) Get(ctx context.Context, riderID string) (*repository.RiderLocation, error) {
	val, err := s.client.Get(ctx, Key(riderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", Key(riderID), err)
	}
	var loc repository.RiderLocation
	if err := json.Unmarshal(val, &loc); err != nil {
		return nil, fmt.Errorf("unmarshal location %s: %w", Key(riderID), err)
	}
	return &loc, nil
}

func (s *LocationStore) Delete(ctx context.Context, riderID string) error {
	if err := s.client.Del(ctx, Key(riderID)).Err(); err != nil {
		return fmt.Errorf("del %s: %w", Key(riderID), err)
	}
	return nil
}

// Ping health check.
func (s *LocationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (s *LocationStore) Close() error {
	return s.client.Close()
}
