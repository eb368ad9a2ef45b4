package centers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// cacheKey единственный ключ кэша: список центров один на организацию
const cacheKey = "cache:service-centers"

// Cache кэш отфильтрованного списка сервисных центров в redis.
// Срок жизни записи проверяет сам redis через TTL при каждом чтении;
// по истечении чтение дает промах, и вызывающая сторона перезапрашивает
// список у API и кладет его заново.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает новый экземпляр кэша сервисных центров
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Read возвращает закэшированный список или ErrCacheMiss
func (c *Cache) Read(ctx context.Context) ([]domain.ServiceCenter, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var centers []domain.ServiceCenter
	if err := json.Unmarshal(data, &centers); err != nil {
		// Испорченная запись равносильна промаху
		return nil, ErrCacheMiss
	}

	return centers, nil
}

// Write сохраняет список вместе со сроком жизни
func (c *Cache) Write(ctx context.Context, centers []domain.ServiceCenter) error {
	payload, err := json.Marshal(centers)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := c.client.Set(ctx, cacheKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return nil
}
