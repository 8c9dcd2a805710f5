package service

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"selfstorage-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// WarehouseSummary is a warehouse with its box availability stats.
type WarehouseSummary struct {
	Warehouse       domain.Warehouse `json:"warehouse"`
	TotalBoxes      int              `json:"total_boxes"`
	FreeBoxes       int              `json:"free_boxes"`
	MinMonthlyPrice *decimal.Decimal `json:"min_monthly_price,omitempty"`
}

// BoxOffer is a box with its derived volume, price and availability.
type BoxOffer struct {
	Box           domain.Box      `json:"box"`
	VolumeM3      decimal.Decimal `json:"volume_m3"`
	PricePerMonth decimal.Decimal `json:"price_per_month"`
	IsFree        bool            `json:"is_free"`
}

type WarehouseService interface {
	ListWarehouses(ctx context.Context) ([]WarehouseSummary, error)
	ListBoxes(ctx context.Context, warehouseID int32) (*domain.Warehouse, []BoxOffer, error)
	ListStorageRules(ctx context.Context) (allowed, forbidden []domain.StorageRule, err error)
}

type PromoService interface {
	// CheckCode resolves a promo code, returning ErrPromoNotFound or
	// ErrPromoExpired when it cannot be applied at the given moment.
	CheckCode(ctx context.Context, code string, now time.Time) (*domain.PromoCode, error)
}

// CreateRentalInput carries a rent submission from the web layer.
type CreateRentalInput struct {
	UserID              int32
	BoxID               int32
	StartDate           time.Time
	EndDate             time.Time // zero means "default to one month"
	PickupFromHome      bool
	PickupAddress       string
	ContactName         string
	ContactPhone        string
	PersonalDataConsent bool
	PromoCode           string
	AdCampaignCode      string
}

type RentalService interface {
	// CreateRental validates and persists a new rental. now supplies both the
	// calendar day for status derivation and the moment for promo validity.
	CreateRental(ctx context.Context, input CreateRentalInput, now time.Time) (*domain.Rental, error)
	GetRental(ctx context.Context, userID, rentalID int32) (*domain.Rental, error)
	ListUserRentals(ctx context.Context, userID int32) ([]domain.Rental, error)
	CloseRental(ctx context.Context, userID, rentalID int32) (*domain.Rental, error)
	// SaveRental re-runs the save pipeline (end-date default, price
	// recomputation, status re-derivation) and persists the result.
	SaveRental(ctx context.Context, rental *domain.Rental, now time.Time) error
}

type DocumentService interface {
	// ActiveConsentDocument returns the current consent PDF and a reader over
	// its bytes. The caller closes the reader.
	ActiveConsentDocument(ctx context.Context) (*domain.ConsentDocument, io.ReadCloser, error)
}

type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
}
