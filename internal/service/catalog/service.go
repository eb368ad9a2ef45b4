package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
)

// Service каталог групп и услуг выбранного сервисного центра
type Service struct {
	client QueueServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client QueueServiceClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Groups возвращает группы услуг верхнего уровня для центра
func (s *Service) Groups(ctx context.Context, serviceCenterID int64) ([]domain.ServiceGroup, error) {
	wireGroups, err := s.client.GetGroups(ctx, serviceCenterID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch groups: %v", ErrInternal, err)
	}

	groups := make([]domain.ServiceGroup, 0, len(wireGroups))
	for _, wg := range wireGroups {
		groups = append(groups, domain.ServiceGroup{
			ID:          wg.GroupId,
			Description: wg.Description,
			Guid:        wg.GroupGuid,
			Active:      wg.IsActive == 1,
		})
	}

	s.logger.Info("Groups: fetched %d groups for center=%d", len(groups), serviceCenterID)
	return groups, nil
}

// Services возвращает услуги центра.
// Выбор группы сужает список до услуг этой группы; nil groupID дает
// полный список (возврат из группы или поиск по всем услугам).
// Поиск - клиентская фильтрация поверх уже полученного списка.
func (s *Service) Services(ctx context.Context, serviceCenterID int64, groupID *int64, search string) ([]domain.Service, error) {
	var (
		wireServices []queueservice.Service
		err          error
	)

	if groupID != nil {
		wireServices, err = s.client.GetServices(ctx, serviceCenterID, *groupID)
	} else {
		wireServices, err = s.client.GetAllServices(ctx, serviceCenterID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch services: %v", ErrInternal, err)
	}

	services := make([]domain.Service, 0, len(wireServices))
	for _, ws := range wireServices {
		service := domain.Service{
			ID:              ws.ServiceId,
			Description:     ws.Description,
			ServiceCenterID: ws.ServiceCenterId,
			GroupID:         ws.GroupId,
		}
		if !service.MatchesSearch(search) {
			continue
		}
		services = append(services, service)
	}

	s.logger.Info("Services: fetched %d services for center=%d", len(services), serviceCenterID)
	return services, nil
}

// Get возвращает услугу центра по ID (для выбора услуги во флоу)
func (s *Service) Get(ctx context.Context, serviceCenterID, serviceID int64) (*domain.Service, error) {
	services, err := s.Services(ctx, serviceCenterID, nil, "")
	if err != nil {
		return nil, err
	}

	for i := range services {
		if services[i].ID == serviceID {
			return &services[i], nil
		}
	}

	s.logger.Warn("Get: service id=%d not found in center=%d", serviceID, serviceCenterID)
	return nil, ErrServiceNotFound
}
