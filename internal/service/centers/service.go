package centers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	cacheStore "github.com/m04kA/CNAP-BookingService/internal/infra/cache/centers"
)

// Service сервис списка сервисных центров.
// Список берется из кэша, пока тот жив; иначе запрашивается у API,
// фильтруется по allow-list и кладется в кэш заново.
type Service struct {
	client     QueueServiceClient
	cache      CentersCache
	allowedIDs map[int64]struct{}
	logger     Logger
}

// NewService создает новый экземпляр сервиса сервисных центров
func NewService(client QueueServiceClient, cache CentersCache, allowedIDs []int64, logger Logger) *Service {
	allowed := make(map[int64]struct{}, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = struct{}{}
	}

	return &Service{
		client:     client,
		cache:      cache,
		allowedIDs: allowed,
		logger:     logger,
	}
}

// List возвращает доступные центры, опционально отфильтрованные поиском.
// Поиск - чисто клиентская фильтрация, повторный запрос к API не делается.
func (s *Service) List(ctx context.Context, search string) ([]domain.ServiceCenter, error) {
	centers, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return centers, nil
	}

	filtered := make([]domain.ServiceCenter, 0, len(centers))
	for _, center := range centers {
		if center.MatchesSearch(search) {
			filtered = append(filtered, center)
		}
	}
	return filtered, nil
}

// Get возвращает центр по ID.
// Центры вне allow-list недоступны для выбора независимо от ответа API.
func (s *Service) Get(ctx context.Context, id int64) (*domain.ServiceCenter, error) {
	centers, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range centers {
		if centers[i].ID == id {
			return &centers[i], nil
		}
	}

	s.logger.Warn("Get: center id=%d is not in the allowed list", id)
	return nil, ErrCenterNotAllowed
}

func (s *Service) load(ctx context.Context) ([]domain.ServiceCenter, error) {
	cached, err := s.cache.Read(ctx)
	if err == nil {
		s.logger.Info("load: serving %d centers from cache", len(cached))
		return cached, nil
	}
	if !errors.Is(err, cacheStore.ErrCacheMiss) {
		// Недоступный кэш не роняет листинг - просто лишний поход к API
		s.logger.Warn("load: cache read failed, falling back to API: %v", err)
	}

	wireCenters, err := s.client.GetServiceCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch service centers: %v", ErrInternal, err)
	}

	centers := make([]domain.ServiceCenter, 0, len(wireCenters))
	for _, wc := range wireCenters {
		if _, ok := s.allowedIDs[wc.ServiceCenterId]; !ok {
			continue
		}
		centers = append(centers, domain.ServiceCenter{
			ID:           wc.ServiceCenterId,
			BranchName:   wc.BranchName,
			Name:         wc.ServiceCenterName,
			LocationName: wc.LocationName,
			Preliminary:  wc.Preliminary,
		})
	}

	if err := s.cache.Write(ctx, centers); err != nil {
		s.logger.Warn("load: cache write failed: %v", err)
	}

	s.logger.Info("load: fetched %d centers from API (%d allowed)", len(wireCenters), len(centers))
	return centers, nil
}
