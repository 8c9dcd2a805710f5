package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/logger"
	"selfstorage-backend/internal/repository"
	"selfstorage-backend/internal/utils"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	boxRepo       repository.BoxRepository
	warehouseRepo repository.WarehouseRepository
	promoRepo     repository.PromoCodeRepository
	docRepo       repository.ConsentDocumentRepository
	campaignRepo  repository.AdCampaignRepository
	deliveryRepo  repository.DeliveryRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	boxRepo repository.BoxRepository,
	warehouseRepo repository.WarehouseRepository,
	promoRepo repository.PromoCodeRepository,
	docRepo repository.ConsentDocumentRepository,
	campaignRepo repository.AdCampaignRepository,
	deliveryRepo repository.DeliveryRepository,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		boxRepo:       boxRepo,
		warehouseRepo: warehouseRepo,
		promoRepo:     promoRepo,
		docRepo:       docRepo,
		campaignRepo:  campaignRepo,
		deliveryRepo:  deliveryRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput, now time.Time) (*domain.Rental, error) {
	box, err := s.boxRepo.GetByID(ctx, input.BoxID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}
	if !box.IsActive {
		return nil, ErrBoxInactive
	}

	if !input.PersonalDataConsent {
		return nil, ErrConsentRequired
	}
	doc, err := s.docRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConsentDocumentMissing
		}
		return nil, err
	}

	if input.PickupFromHome && input.PickupAddress == "" {
		return nil, ErrPickupAddressRequired
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = now
	}
	if !input.EndDate.IsZero() && domain.DaysBetween(startDate, input.EndDate) < 0 {
		return nil, ErrEndBeforeStart
	}

	var promo *domain.PromoCode
	if input.PromoCode != "" {
		promo, err = s.promoRepo.GetByCode(ctx, input.PromoCode)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrPromoNotFound
			}
			return nil, err
		}
		if !promo.ValidAt(now) {
			return nil, ErrPromoExpired
		}
	}

	rental := &domain.Rental{
		UserID:              input.UserID,
		BoxID:               box.ID,
		StartDate:           startDate,
		EndDate:             input.EndDate,
		Status:              domain.RentalStatusActive,
		PickupFromHome:      input.PickupFromHome,
		PickupAddress:       input.PickupAddress,
		ContactName:         input.ContactName,
		ContactPhone:        input.ContactPhone,
		PersonalDataConsent: true,
		ConsentDocumentID:   &doc.ID,
		AccessToken:         uuid.New(),
		OverdueGraceMonths:  domain.DefaultOverdueGraceMonths,
	}
	if promo != nil {
		rental.PromoCodeID = &promo.ID
	}
	if input.AdCampaignCode != "" {
		// Attribution only; an unknown campaign code never blocks the rental.
		campaign, err := s.campaignRepo.GetByCode(ctx, input.AdCampaignCode)
		if err == nil {
			rental.AdCampaignID = &campaign.ID
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	s.refreshDerived(rental, box, promo, now)

	// The availability check narrows the race window; the partial unique
	// index behind rentalRepo.Create closes it.
	occupied, err := s.rentalRepo.HasOpenByBox(ctx, box.ID, 0)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, domain.ErrBoxOccupied
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	if rental.PickupFromHome {
		warehouse, err := s.warehouseRepo.GetByID(ctx, box.WarehouseID)
		toAddress := ""
		if err == nil {
			toAddress = warehouse.City + ", " + warehouse.Address
		}
		task := &domain.DeliveryTask{
			RentalID:    rental.ID,
			Status:      domain.DeliveryStatusNew,
			FromAddress: rental.PickupAddress,
			ToAddress:   toAddress,
			PlannedDate: rental.StartDate,
		}
		if err := s.deliveryRepo.Create(ctx, task); err != nil {
			logger.Error("Failed to create delivery task", "rental_id", rental.ID, "error", err)
		}
	}

	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, userID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	if rt.UserID != userID {
		return nil, ErrRentalNotFound
	}
	return rt, nil
}

func (s *rentalService) ListUserRentals(ctx context.Context, userID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByUser(ctx, userID)
}

func (s *rentalService) CloseRental(ctx context.Context, userID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.GetRental(ctx, userID, rentalID)
	if err != nil {
		return nil, err
	}
	if !rt.Status.Open() {
		return nil, ErrRentalNotOpen
	}

	rt.Status = domain.RentalStatusClosed
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// SaveRental re-runs the save pipeline on an existing rental: end-date
// defaulting, price recomputation against current promo validity, and status
// re-derivation for the given moment.
func (s *rentalService) SaveRental(ctx context.Context, rt *domain.Rental, now time.Time) error {
	box, err := s.boxRepo.GetByID(ctx, rt.BoxID)
	if err != nil {
		return err
	}

	var promo *domain.PromoCode
	if rt.PromoCodeID != nil {
		promo, err = s.promoRepo.GetByID(ctx, *rt.PromoCodeID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}

	s.refreshDerived(rt, box, promo, now)
	return s.rentalRepo.Update(ctx, rt)
}

// refreshDerived keeps price and status consistent with the calendar and the
// promo's current validity. Runs on every save.
func (s *rentalService) refreshDerived(rt *domain.Rental, box *domain.Box, promo *domain.PromoCode, now time.Time) {
	if rt.EndDate.IsZero() {
		rt.EndDate = rt.DefaultEndDate()
	}
	rt.BasePricePerMonth = utils.BoxMonthlyPrice(box.LengthM, box.WidthM, box.HeightM)
	rt.FinalPricePerMonth = utils.FinalMonthlyPrice(rt.BasePricePerMonth, promo, now)
	rt.Status = domain.NextStatus(rt.Status, now, rt.EndDate, rt.OverdueGraceMonths)
}
