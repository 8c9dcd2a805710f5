package repository

import (
	"context"
	"time"

	"selfstorage-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type WarehouseRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Warehouse, error)
	ListActive(ctx context.Context) ([]domain.Warehouse, error)
}

type BoxRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Box, error)
	ListActiveByWarehouse(ctx context.Context, warehouseID int32) ([]domain.Box, error)
	// ListOccupiedIDs returns ids of boxes carrying an active-or-overdue rental.
	ListOccupiedIDs(ctx context.Context) ([]int32, error)
}

type PromoCodeRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

type AdCampaignRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.AdCampaign, error)
}

type ConsentDocumentRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.ConsentDocument, error)
	GetActive(ctx context.Context) (*domain.ConsentDocument, error)
}

type StorageRuleRepository interface {
	ListActive(ctx context.Context) ([]domain.StorageRule, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, task *domain.DeliveryTask) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.DeliveryTask, error)
}

type RentalRepository interface {
	// Create persists a new rental. It returns domain.ErrBoxOccupied when the
	// box already carries an open rental.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	// HasOpenByBox reports whether the box carries an active-or-overdue rental
	// other than excludeID (0 to consider all).
	HasOpenByBox(ctx context.Context, boxID, excludeID int32) (bool, error)
	// ListActiveEndingOn returns active rentals whose end date falls exactly
	// on the given calendar day.
	ListActiveEndingOn(ctx context.Context, day time.Time) ([]domain.Rental, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
}

type EmailLogRepository interface {
	Create(ctx context.Context, n *domain.EmailNotification) error
	// Exists reports whether a log row for (rental, kind) is present,
	// regardless of month index.
	Exists(ctx context.Context, rentalID int32, kind domain.NotificationKind) (bool, error)
	// ExistsForMonth reports whether a log row for
	// (rental, kind, month_index) is present.
	ExistsForMonth(ctx context.Context, rentalID int32, kind domain.NotificationKind, monthIndex int32) (bool, error)
	ListByRental(ctx context.Context, rentalID int32) ([]domain.EmailNotification, error)
}
