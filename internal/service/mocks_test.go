package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"selfstorage-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) HasOpenByBox(ctx context.Context, boxID, excludeID int32) (bool, error) {
	args := m.Called(ctx, boxID, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ListActiveEndingOn(ctx context.Context, day time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockBoxRepo
type MockBoxRepo struct {
	mock.Mock
}

func (m *MockBoxRepo) GetByID(ctx context.Context, id int32) (*domain.Box, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}
func (m *MockBoxRepo) ListActiveByWarehouse(ctx context.Context, warehouseID int32) ([]domain.Box, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Box), args.Error(1)
}
func (m *MockBoxRepo) ListOccupiedIDs(ctx context.Context) ([]int32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

// MockWarehouseRepo
type MockWarehouseRepo struct {
	mock.Mock
}

func (m *MockWarehouseRepo) GetByID(ctx context.Context, id int32) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) ListActive(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

// MockPromoRepo
type MockPromoRepo struct {
	mock.Mock
}

func (m *MockPromoRepo) GetByID(ctx context.Context, id int32) (*domain.PromoCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}
func (m *MockPromoRepo) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoCode), args.Error(1)
}

// MockCampaignRepo
type MockCampaignRepo struct {
	mock.Mock
}

func (m *MockCampaignRepo) GetByCode(ctx context.Context, code string) (*domain.AdCampaign, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdCampaign), args.Error(1)
}

// MockDocRepo
type MockDocRepo struct {
	mock.Mock
}

func (m *MockDocRepo) GetByID(ctx context.Context, id int32) (*domain.ConsentDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsentDocument), args.Error(1)
}
func (m *MockDocRepo) GetActive(ctx context.Context) (*domain.ConsentDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsentDocument), args.Error(1)
}

// MockDeliveryRepo
type MockDeliveryRepo struct {
	mock.Mock
}

func (m *MockDeliveryRepo) Create(ctx context.Context, task *domain.DeliveryTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockDeliveryRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.DeliveryTask, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryTask), args.Error(1)
}
