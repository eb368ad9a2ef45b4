package register_visit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type MockClient struct {
	mock.Mock
}

func (m *MockClient) RegisterCustomer(ctx context.Context, params queueservice.RegisterCustomerParams) (*queueservice.RegistrationResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueservice.RegistrationResponse), args.Error(1)
}

func validRequest() *Request {
	return &Request{
		Center:  &domain.ServiceCenter{ID: 1, Name: "ЦНАП м. Ужгород"},
		Service: &domain.Service{ID: 42, ServiceCenterID: 1, Description: "Видача довідки"},
		Date:    &domain.AvailableDate{Label: "27 січня", ISO: "2025-01-27"},
		Time:    "10:00",
		Profile: domain.RegistrantProfile{
			LastName:  "Шевченко",
			FirstName: "Тарас",
			Phone:     "0501234567",
		},
	}
}

func TestExecute_Success(t *testing.T) {
	client := &MockClient{}
	uc := NewUseCase(client, nopLogger{})

	ctx := context.Background()
	client.On("RegisterCustomer", ctx, mock.MatchedBy(func(p queueservice.RegisterCustomerParams) bool {
		return p.ServiceCenterID == 1 &&
			p.ServiceID == 42 &&
			p.Date == "2025-01-27" &&
			p.Time == "10:00" &&
			p.Name == "Шевченко Тарас" &&
			p.Phone == "0501234567" &&
			p.Email == "" &&
			p.CompanyName == ""
	})).Return(&queueservice.RegistrationResponse{
		CustOrderGuid:  "abc-123",
		CustReceiptNum: "A017",
	}, nil)

	resp, err := uc.Execute(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Result.OrderGuid)
	assert.Equal(t, "A017", resp.Result.ReceiptNum)
}

func TestExecute_RestoresISOFromLabel(t *testing.T) {
	client := &MockClient{}
	uc := NewUseCase(client, nopLogger{})

	req := validRequest()
	req.Date = &domain.AvailableDate{Label: "27 січня"}

	ctx := context.Background()
	client.On("RegisterCustomer", ctx, mock.MatchedBy(func(p queueservice.RegisterCustomerParams) bool {
		// Год берется текущий, день и месяц - из метки
		return len(p.Date) == 10 && p.Date[5:] == "01-27"
	})).Return(&queueservice.RegistrationResponse{CustOrderGuid: "abc-123", CustReceiptNum: "A017"}, nil)

	_, err := uc.Execute(ctx, req)

	require.NoError(t, err)
}

func TestExecute_InvalidMonthName(t *testing.T) {
	client := &MockClient{}
	uc := NewUseCase(client, nopLogger{})

	req := validRequest()
	req.Date = &domain.AvailableDate{Label: "27 january"}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	client.AssertNotCalled(t, "RegisterCustomer", mock.Anything, mock.Anything)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"no center", func(r *Request) { r.Center = nil }},
		{"no service", func(r *Request) { r.Service = nil }},
		{"no date", func(r *Request) { r.Date = nil }},
		{"no time", func(r *Request) { r.Time = "" }},
		{"malformed time", func(r *Request) { r.Time = "9 ранку" }},
		{"malformed iso date", func(r *Request) { r.Date.ISO = "27.01.2025" }},
		{"no last name", func(r *Request) { r.Profile.LastName = "  " }},
		{"no first name", func(r *Request) { r.Profile.FirstName = "" }},
		{"no phone", func(r *Request) { r.Profile.Phone = "" }},
		{"phone with letters", func(r *Request) { r.Profile.Phone = "050abc4567" }},
		{"bad email", func(r *Request) { r.Profile.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockClient{}
			uc := NewUseCase(client, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			client.AssertNotCalled(t, "RegisterCustomer", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_OptionalFieldsPassedThrough(t *testing.T) {
	client := &MockClient{}
	uc := NewUseCase(client, nopLogger{})

	req := validRequest()
	req.Profile.MiddleName = "Григорович"
	req.Profile.Email = "taras@example.com"
	req.Profile.CompanyName = "ТОВ Кобзар"

	ctx := context.Background()
	client.On("RegisterCustomer", ctx, mock.MatchedBy(func(p queueservice.RegisterCustomerParams) bool {
		return p.Name == "Шевченко Тарас Григорович" &&
			p.Email == "taras@example.com" &&
			p.CompanyName == "ТОВ Кобзар"
	})).Return(&queueservice.RegistrationResponse{CustOrderGuid: "abc-123", CustReceiptNum: "A017"}, nil)

	_, err := uc.Execute(ctx, req)

	require.NoError(t, err)
}

func TestExecute_RemoteFailure(t *testing.T) {
	client := &MockClient{}
	uc := NewUseCase(client, nopLogger{})

	ctx := context.Background()
	client.On("RegisterCustomer", ctx, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := uc.Execute(ctx, validRequest())

	assert.ErrorIs(t, err, ErrRegistrationFailed)
}

func TestExecute_EmptyOrderGuid(t *testing.T) {
	client := &MockClient{}
	uc := NewUseCase(client, nopLogger{})

	ctx := context.Background()
	client.On("RegisterCustomer", ctx, mock.Anything).Return(&queueservice.RegistrationResponse{}, nil)

	_, err := uc.Execute(ctx, validRequest())

	assert.ErrorIs(t, err, ErrRegistrationFailed)
}
