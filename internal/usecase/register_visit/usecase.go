package register_visit

import (
	"context"
	"fmt"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
	"github.com/m04kA/CNAP-BookingService/pkg/ukrdate"
)

// UseCase use case регистрации визита на выбранный слот
type UseCase struct {
	client QueueServiceClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client QueueServiceClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет регистрацию визита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterVisit: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RegisterVisit: center=%d, service=%d, date=%s, time=%s",
		req.Center.ID, req.Service.ID, req.Date.ISO, req.Time)

	// 2. Дата для API: сохраненная ISO-форма; если ее нет,
	// восстанавливаем из локализованной метки
	isoDate := req.Date.ISO
	if isoDate == "" {
		restored, err := ukrdate.ReformatDate(req.Date.Label)
		if err != nil {
			uc.logger.Warn("RegisterVisit: failed to reformat date label %q: %v", req.Date.Label, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		isoDate = restored
	}

	// 3. Регистрируем заявителя
	result, err := uc.client.RegisterCustomer(ctx, queueservice.RegisterCustomerParams{
		ServiceCenterID: req.Center.ID,
		ServiceID:       req.Service.ID,
		Date:            isoDate,
		Time:            req.Time,
		Name:            req.Profile.FullName(),
		Phone:           req.Profile.Phone,
		Email:           req.Profile.Email,
		CompanyName:     req.Profile.CompanyName,
	})
	if err != nil {
		uc.logger.Error("RegisterVisit: registration failed for center=%d, service=%d: %v",
			req.Center.ID, req.Service.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	// 4. Ответ без order guid непригоден: по нему запрашивается чек
	if result.CustOrderGuid == "" {
		uc.logger.Error("RegisterVisit: registration response has no order guid")
		return nil, fmt.Errorf("%w: empty order guid in response", ErrRegistrationFailed)
	}

	uc.logger.Info("RegisterVisit: registered, receipt=%s", result.CustReceiptNum)

	return &Response{
		Result: domain.RegistrationResult{
			OrderGuid:  result.CustOrderGuid,
			ReceiptNum: result.CustReceiptNum,
		},
	}, nil
}
