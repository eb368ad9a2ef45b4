package receipt

import "context"

// Service получение HTML-чека по завершенной регистрации
type Service struct {
	client           QueueServiceClient
	organisationGuid string
	logger           Logger
}

// NewService создает новый экземпляр сервиса чеков
func NewService(client QueueServiceClient, organisationGuid string, logger Logger) *Service {
	return &Service{
		client:           client,
		organisationGuid: organisationGuid,
		logger:           logger,
	}
}

// Fetch возвращает HTML-фрагмент чека.
// Недоступный чек - пустая строка: страница чека показывает остальные
// данные регистрации и без него.
func (s *Service) Fetch(ctx context.Context, serviceCenterID int64, orderGuid string) string {
	markup := s.client.GetReceipt(ctx, s.organisationGuid, serviceCenterID, orderGuid)
	if markup == "" {
		s.logger.Warn("Fetch: empty receipt markup for center=%d, order=%s", serviceCenterID, orderGuid)
	}
	return markup
}
