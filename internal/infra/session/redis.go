// Package session хранилище сессионного контекста диалога
// Каждая сессия хранится целиком как JSON-значение с TTL
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

const keyPrefix = "assistant:session:"

// RedisStore хранилище сессий в Redis
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище сессий поверх Redis
// Проверяет соединение через PING, чтобы ошибка конфигурации всплыла на старте
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to connect to redis at %s: %v", ErrStore, addr, err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get возвращает сессию по ID
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis error: %v", ErrStore, err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal session: %v", ErrStore, err)
	}

	return &session, nil
}

// Save сохраняет сессию, продлевая TTL
func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal session: %v", ErrStore, err)
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - redis error: %v", ErrStore, err)
	}

	return nil
}

// Delete удаляет сессию
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis error: %v", ErrStore, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (s *RedisStore) Close() error {
	return s.client.Close()
}
