package centers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
	cacheStore "github.com/m04kA/CNAP-BookingService/internal/infra/cache/centers"
	"github.com/m04kA/CNAP-BookingService/internal/integrations/queueservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetServiceCenters(ctx context.Context) ([]queueservice.ServiceCenter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queueservice.ServiceCenter), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Read(ctx context.Context) ([]domain.ServiceCenter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceCenter), args.Error(1)
}

func (m *MockCache) Write(ctx context.Context, centers []domain.ServiceCenter) error {
	args := m.Called(ctx, centers)
	return args.Error(0)
}

func wireCenters() []queueservice.ServiceCenter {
	return []queueservice.ServiceCenter{
		{ServiceCenterId: 1, ServiceCenterName: "ЦНАП м. Ужгород", BranchName: "Центральний"},
		{ServiceCenterId: 2, ServiceCenterName: "Територіальний підрозділ", BranchName: "Підрозділ"},
		{ServiceCenterId: 99, ServiceCenterName: "Чужий центр", BranchName: "Інший"},
	}
}

func TestList_CacheMiss_FiltersAllowList(t *testing.T) {
	client := &MockClient{}
	cache := &MockCache{}
	svc := NewService(client, cache, []int64{1, 2}, nopLogger{})

	ctx := context.Background()
	cache.On("Read", ctx).Return(nil, cacheStore.ErrCacheMiss)
	client.On("GetServiceCenters", ctx).Return(wireCenters(), nil)
	cache.On("Write", ctx, mock.Anything).Return(nil)

	centers, err := svc.List(ctx, "")

	require.NoError(t, err)
	require.Len(t, centers, 2)
	assert.Equal(t, int64(1), centers[0].ID)
	assert.Equal(t, int64(2), centers[1].ID)

	// Центр 99 вне allow-list не попал и в кэш
	cache.AssertCalled(t, "Write", ctx, mock.MatchedBy(func(list []domain.ServiceCenter) bool {
		return len(list) == 2
	}))
}

func TestList_CacheHit_SkipsAPI(t *testing.T) {
	client := &MockClient{}
	cache := &MockCache{}
	svc := NewService(client, cache, []int64{1, 2}, nopLogger{})

	ctx := context.Background()
	cached := []domain.ServiceCenter{{ID: 1, Name: "ЦНАП м. Ужгород"}}
	cache.On("Read", ctx).Return(cached, nil)

	centers, err := svc.List(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, cached, centers)
	client.AssertNotCalled(t, "GetServiceCenters", mock.Anything)
}

func TestList_SearchIsClientSideFilter(t *testing.T) {
	client := &MockClient{}
	cache := &MockCache{}
	svc := NewService(client, cache, []int64{1, 2}, nopLogger{})

	ctx := context.Background()
	cached := []domain.ServiceCenter{
		{ID: 1, Name: "ЦНАП м. Ужгород"},
		{ID: 2, Name: "Територіальний підрозділ"},
	}
	cache.On("Read", ctx).Return(cached, nil)

	centers, err := svc.List(ctx, "ужгород")

	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, int64(1), centers[0].ID)
	client.AssertNotCalled(t, "GetServiceCenters", mock.Anything)
}

func TestList_APIFailurePropagates(t *testing.T) {
	client := &MockClient{}
	cache := &MockCache{}
	svc := NewService(client, cache, []int64{1}, nopLogger{})

	ctx := context.Background()
	cache.On("Read", ctx).Return(nil, cacheStore.ErrCacheMiss)
	client.On("GetServiceCenters", ctx).Return(nil, errors.New("connection refused"))

	_, err := svc.List(ctx, "")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGet_AllowedCenter(t *testing.T) {
	client := &MockClient{}
	cache := &MockCache{}
	svc := NewService(client, cache, []int64{1, 2}, nopLogger{})

	ctx := context.Background()
	cache.On("Read", ctx).Return([]domain.ServiceCenter{{ID: 1, Name: "ЦНАП м. Ужгород"}}, nil)

	center, err := svc.Get(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "ЦНАП м. Ужгород", center.Name)
}

func TestGet_NotAllowedCenter(t *testing.T) {
	client := &MockClient{}
	cache := &MockCache{}
	svc := NewService(client, cache, []int64{1, 2}, nopLogger{})

	ctx := context.Background()
	cache.On("Read", ctx).Return(nil, cacheStore.ErrCacheMiss)
	client.On("GetServiceCenters", ctx).Return(wireCenters(), nil)
	cache.On("Write", ctx, mock.Anything).Return(nil)

	_, err := svc.Get(ctx, 99)

	assert.ErrorIs(t, err, ErrCenterNotAllowed)
}

func TestList_CacheWriteFailureDoesNotFail(t *testing.T) {
	client := &MockClient{}
	cache := &MockCache{}
	svc := NewService(client, cache, []int64{1, 2}, nopLogger{})

	ctx := context.Background()
	cache.On("Read", ctx).Return(nil, cacheStore.ErrCacheMiss)
	client.On("GetServiceCenters", ctx).Return(wireCenters(), nil)
	cache.On("Write", ctx, mock.Anything).Return(errors.New("redis down"))

	centers, err := svc.List(ctx, "")

	require.NoError(t, err)
	assert.Len(t, centers, 2)
}
