package catalog

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

func (m *MockClient) GetGroups(ctx context.Context, serviceCenterID int64) ([]queueservice.ServiceGroup, error) {
	args := m.Called(ctx, serviceCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queueservice.ServiceGroup), args.Error(1)
}

func (m *MockClient) GetServices(ctx context.Context, serviceCenterID, groupID int64) ([]queueservice.Service, error) {
	args := m.Called(ctx, serviceCenterID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queueservice.Service), args.Error(1)
}

func (m *MockClient) GetAllServices(ctx context.Context, serviceCenterID int64) ([]queueservice.Service, error) {
	args := m.Called(ctx, serviceCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queueservice.Service), args.Error(1)
}

func TestGroups_MapsWireModel(t *testing.T) {
	client := &MockClient{}
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	client.On("GetGroups", ctx, int64(1)).Return([]queueservice.ServiceGroup{
		{GroupId: 5, Description: "Реєстрація", GroupGuid: "guid-5", IsActive: 1},
		{GroupId: 6, Description: "Паспортні послуги", GroupGuid: "guid-6", IsActive: 0},
	}, nil)

	groups, err := svc.Groups(ctx, 1)

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.True(t, groups[0].Active)
	assert.False(t, groups[1].Active)
}

func TestServices_ScopedToGroup(t *testing.T) {
	client := &MockClient{}
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	groupID := int64(5)
	client.On("GetServices", ctx, int64(1), groupID).Return([]queueservice.Service{
		{ServiceId: 42, Description: "Видача довідки", ServiceCenterId: 1, GroupId: 5},
	}, nil)

	services, err := svc.Services(ctx, 1, &groupID, "")

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, int64(42), services[0].ID)
	client.AssertNotCalled(t, "GetAllServices", mock.Anything, mock.Anything)
}

func TestServices_UnscopedUsesFullList(t *testing.T) {
	client := &MockClient{}
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	client.On("GetAllServices", ctx, int64(1)).Return([]queueservice.Service{
		{ServiceId: 42, Description: "Видача довідки", ServiceCenterId: 1, GroupId: 5},
		{ServiceId: 43, Description: "Реєстрація місця проживання", ServiceCenterId: 1, GroupId: domain.UngroupedGroupID},
	}, nil)

	services, err := svc.Services(ctx, 1, nil, "")

	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestServices_SearchFiltersByDescription(t *testing.T) {
	client := &MockClient{}
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	client.On("GetAllServices", ctx, int64(1)).Return([]queueservice.Service{
		{ServiceId: 42, Description: "Видача довідки"},
		{ServiceId: 43, Description: "Реєстрація місця проживання"},
	}, nil)

	services, err := svc.Services(ctx, 1, nil, "довідки")

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, int64(42), services[0].ID)
}

func TestGet_ServiceNotFound(t *testing.T) {
	client := &MockClient{}
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	client.On("GetAllServices", ctx, int64(1)).Return([]queueservice.Service{
		{ServiceId: 42, Description: "Видача довідки"},
	}, nil)

	_, err := svc.Get(ctx, 1, 777)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGroups_FailurePropagates(t *testing.T) {
	client := &MockClient{}
	svc := NewService(client, nopLogger{})

	ctx := context.Background()
	client.On("GetGroups", ctx, int64(1)).Return(nil, errors.New("timeout"))

	_, err := svc.Groups(ctx, 1)

	assert.ErrorIs(t, err, ErrInternal)
}
