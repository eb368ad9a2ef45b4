package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/pkg/ukrdate"
)

// Service расписание записи: доступные даты и слоты времени по услуге
type Service struct {
	client QueueServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(client QueueServiceClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Dates возвращает даты, открытые для записи.
// Даты с IsAllow=0 отбрасываются и наружу не попадают.
func (s *Service) Dates(ctx context.Context, serviceCenterID, serviceID int64) ([]domain.AvailableDate, error) {
	wireDates, err := s.client.GetAvailableDates(ctx, serviceCenterID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch dates: %v", ErrInternal, err)
	}

	dates := make([]domain.AvailableDate, 0, len(wireDates))
	for _, wd := range wireDates {
		if wd.IsAllow != 1 {
			continue
		}
		formatted := ukrdate.FormatDate(wd.DatePart)
		dates = append(dates, domain.AvailableDate{
			Label: formatted.Label,
			ISO:   formatted.ISO,
		})
	}

	s.logger.Info("Dates: %d of %d dates available for center=%d, service=%d",
		len(dates), len(wireDates), serviceCenterID, serviceID)
	return dates, nil
}

// FindDate проверяет, что дата входит в список доступных, и возвращает ее
func (s *Service) FindDate(ctx context.Context, serviceCenterID, serviceID int64, iso string) (*domain.AvailableDate, error) {
	dates, err := s.Dates(ctx, serviceCenterID, serviceID)
	if err != nil {
		return nil, err
	}

	for i := range dates {
		if dates[i].ISO == iso {
			return &dates[i], nil
		}
	}

	s.logger.Warn("FindDate: date %s is not available for center=%d, service=%d", iso, serviceCenterID, serviceID)
	return nil, ErrDateNotAvailable
}

// Times возвращает слоты времени на дату.
// Недоступные слоты не отбрасываются: UI показывает их отключенными.
func (s *Service) Times(ctx context.Context, serviceCenterID, serviceID int64, isoDate string) ([]domain.AvailableTime, error) {
	wireTimes, err := s.client.GetAvailableTimes(ctx, serviceCenterID, serviceID, isoDate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch times: %v", ErrInternal, err)
	}

	times := make([]domain.AvailableTime, 0, len(wireTimes))
	for _, wt := range wireTimes {
		times = append(times, domain.AvailableTime{
			Time:        ukrdate.ParseTime(wt.StartTime),
			IsAvailable: wt.IsAllow == 1,
		})
	}

	s.logger.Info("Times: %d slots for center=%d, service=%d, date=%s",
		len(times), serviceCenterID, serviceID, isoDate)
	return times, nil
}
