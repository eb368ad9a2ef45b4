package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// Store хранилище состояния флоу записи в redis.
// Состояние живет под ключом сессии с TTL: брошенный флоу исчезает сам,
// завершенный очищается явно через Delete.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает новое хранилище сессий
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает состояние сессии.
// Отсутствующая или истекшая сессия - это новый, пустой флоу, а не ошибка.
func (s *Store) Get(ctx context.Context, sessionID string) (*domain.FlowSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domain.FlowSession{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var flowSession domain.FlowSession
	if err := json.Unmarshal(data, &flowSession); err != nil {
		// Испорченную сессию не восстановить - начинаем флоу заново
		return &domain.FlowSession{}, nil
	}

	return &flowSession, nil
}

// Save сохраняет состояние сессии, продлевая ее срок жизни
func (s *Store) Save(ctx context.Context, sessionID string, flowSession *domain.FlowSession) error {
	payload, err := json.Marshal(flowSession)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет состояние сессии (завершение или отказ от флоу)
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
