package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/benyxxxxx/globalconnector-service/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p CreateParams) (*Booking, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockRepository) HasConflict(ctx context.Context, userID, serviceID string, scheduledAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, serviceID, scheduledAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatalogRepository is a mock implementation of catalog.Repository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Create(ctx context.Context, ownerID string, req catalog.CreateServiceRequest) (*catalog.Service, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id string) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]catalog.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockCatalogRepository) ListByOwner(ctx context.Context, ownerID string) ([]catalog.Service, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockCatalogRepository) ListByBusiness(ctx context.Context, businessID string) ([]catalog.Service, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockCatalogRepository) NameExistsForOwner(ctx context.Context, name, ownerID string) (bool, error) {
	args := m.Called(ctx, name, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) Update(ctx context.Context, id string, req catalog.UpdateServiceRequest) (*catalog.Service, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func flatService() *catalog.Service {
	return &catalog.Service{
		ID:           "svc-1",
		BusinessID:   "biz-1",
		OwnerID:      "owner-1",
		Name:         "Deep Tissue Massage",
		PricingModel: catalog.PricingFlat,
		Currency:     "USD",
		BasePrice:    dec("25.50"),
	}
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCatalog := new(MockCatalogRepository)
	service := NewService(mockRepo, mockCatalog)

	scheduledAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc := flatService()

	mockCatalog.On("GetByID", mock.Anything, "svc-1").Return(svc, nil)
	mockRepo.On("HasConflict", mock.Anything, "user-1", "svc-1", scheduledAt).Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p CreateParams) bool {
		return p.ServiceID == "svc-1" &&
			p.UserID == "user-1" &&
			p.BasePrice.Equal(decimal.RequireFromString("25.50")) &&
			p.TotalPrice.Equal(decimal.RequireFromString("25.50")) &&
			!p.Force
	})).Return(&Booking{ID: "bk-1", ServiceID: "svc-1", UserID: "user-1", Status: StatusPending}, nil)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		ServiceID:   "svc-1",
		ScheduledAt: scheduledAt,
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "bk-1", b.ID)
	assert.Equal(t, StatusPending, b.Status)
	mockRepo.AssertExpectations(t)
	mockCatalog.AssertExpectations(t)
}

func TestService_Create_SnapshotPinsServiceState(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCatalog := new(MockCatalogRepository)
	service := NewService(mockRepo, mockCatalog)

	scheduledAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc := flatService()

	mockCatalog.On("GetByID", mock.Anything, "svc-1").Return(svc, nil)
	mockRepo.On("HasConflict", mock.Anything, "user-1", "svc-1", scheduledAt).Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p CreateParams) bool {
		var snap catalog.Service
		if err := json.Unmarshal(p.ServiceSnapshot, &snap); err != nil {
			return false
		}
		return snap.ID == "svc-1" && snap.Name == "Deep Tissue Massage" && snap.Currency == "USD"
	})).Return(&Booking{ID: "bk-1"}, nil)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ServiceID:   "svc-1",
		ScheduledAt: scheduledAt,
	}, "user-1")

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_ServiceNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCatalog := new(MockCatalogRepository)
	service := NewService(mockRepo, mockCatalog)

	mockCatalog.On("GetByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ServiceID:   "missing",
		ScheduledAt: time.Now(),
	}, "user-1")

	assert.ErrorIs(t, err, catalog.ErrServiceNotFound)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Conflict(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCatalog := new(MockCatalogRepository)
	service := NewService(mockRepo, mockCatalog)

	scheduledAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockCatalog.On("GetByID", mock.Anything, "svc-1").Return(flatService(), nil)
	mockRepo.On("HasConflict", mock.Anything, "user-1", "svc-1", scheduledAt).Return(true, nil)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ServiceID:   "svc-1",
		ScheduledAt: scheduledAt,
	}, "user-1")

	assert.ErrorIs(t, err, ErrBookingConflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ForceAddBypassesConflict(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCatalog := new(MockCatalogRepository)
	service := NewService(mockRepo, mockCatalog)

	scheduledAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mockCatalog.On("GetByID", mock.Anything, "svc-1").Return(flatService(), nil)
	mockRepo.On("HasConflict", mock.Anything, "user-1", "svc-1", scheduledAt).Return(true, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p CreateParams) bool {
		return p.Force
	})).Return(&Booking{ID: "bk-2"}, nil)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		ServiceID:   "svc-1",
		ScheduledAt: scheduledAt,
		ForceAdd:    true,
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "bk-2", b.ID)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_TimeBasedRequiresDuration(t *testing.T) {
	mockRepo := new(MockRepository)
	mockCatalog := new(MockCatalogRepository)
	service := NewService(mockRepo, mockCatalog)

	scheduledAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc := &catalog.Service{
		ID:           "svc-2",
		PricingModel: catalog.PricingTimeBased,
		BasePrice:    dec("10.00"),
		TimeUnit:     strPtr(catalog.UnitHour),
	}

	mockCatalog.On("GetByID", mock.Anything, "svc-2").Return(svc, nil)
	mockRepo.On("HasConflict", mock.Anything, "user-1", "svc-2", scheduledAt).Return(false, nil)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ServiceID:   "svc-2",
		ScheduledAt: scheduledAt,
	}, "user-1")

	assert.ErrorIs(t, err, ErrInvalidDuration)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Get_OwnershipEnforced(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockCatalogRepository))

	mockRepo.On("GetByID", mock.Anything, "bk-1").Return(&Booking{ID: "bk-1", UserID: "owner"}, nil)

	_, err := service.Get(context.Background(), "bk-1", "someone-else")
	assert.ErrorIs(t, err, ErrUnauthorized)

	b, err := service.Get(context.Background(), "bk-1", "owner")
	require.NoError(t, err)
	assert.Equal(t, "bk-1", b.ID)
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockCatalogRepository))

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	_, err := service.Get(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Update_OwnershipEnforced(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockCatalogRepository))

	mockRepo.On("GetByID", mock.Anything, "bk-1").Return(&Booking{ID: "bk-1", UserID: "owner"}, nil)

	_, err := service.Update(context.Background(), "bk-1", UpdateBookingRequest{}, "intruder")
	assert.ErrorIs(t, err, ErrUnauthorized)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockCatalogRepository))

	mockRepo.On("GetByID", mock.Anything, "bk-1").Return(&Booking{ID: "bk-1", UserID: "owner"}, nil)
	mockRepo.On("Delete", mock.Anything, "bk-1").Return(nil)

	err := service.Delete(context.Background(), "bk-1", "owner")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
