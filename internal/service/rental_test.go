package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/service"
)

type rentalMocks struct {
	rentals    *MockRentalRepo
	boxes      *MockBoxRepo
	warehouses *MockWarehouseRepo
	promos     *MockPromoRepo
	docs       *MockDocRepo
	campaigns  *MockCampaignRepo
	deliveries *MockDeliveryRepo
}

func newRentalService() (service.RentalService, *rentalMocks) {
	m := &rentalMocks{
		rentals:    new(MockRentalRepo),
		boxes:      new(MockBoxRepo),
		warehouses: new(MockWarehouseRepo),
		promos:     new(MockPromoRepo),
		docs:       new(MockDocRepo),
		campaigns:  new(MockCampaignRepo),
		deliveries: new(MockDeliveryRepo),
	}
	svc := service.NewRentalService(
		m.rentals, m.boxes, m.warehouses, m.promos, m.docs, m.campaigns, m.deliveries,
	)
	return svc, m
}

func testBox() *domain.Box {
	return &domain.Box{
		ID:          5,
		WarehouseID: 2,
		Code:        "A-05",
		LengthM:     decimal.RequireFromString("2"),
		WidthM:      decimal.RequireFromString("2"),
		HeightM:     decimal.RequireFromString("2"),
		IsActive:    true,
	}
}

func testConsentDoc() *domain.ConsentDocument {
	return &domain.ConsentDocument{ID: 7, Title: "Personal Data Consent", IsActive: true}
}

var testNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func baseInput() service.CreateRentalInput {
	return service.CreateRentalInput{
		UserID:              3,
		BoxID:               5,
		ContactName:         "Ann Customer",
		ContactPhone:        "+15550100",
		PersonalDataConsent: true,
	}
}

func TestCreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)
		m.rentals.On("HasOpenByBox", ctx, int32(5), int32(0)).Return(false, nil)
		m.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Rental).ID = 11
			}).Return(nil)

		rental, err := svc.CreateRental(ctx, baseInput(), testNow)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
		assert.Equal(t, "6000.00", rental.BasePricePerMonth.StringFixed(2))
		assert.Equal(t, "6000.00", rental.FinalPricePerMonth.StringFixed(2))
		// Start defaults to today, end to one billing month later
		assert.Equal(t, testNow, rental.StartDate)
		assert.Equal(t, testNow.AddDate(0, 0, 30), rental.EndDate)
		assert.Equal(t, int32(7), *rental.ConsentDocumentID)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", rental.AccessToken.String())
		m.deliveries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AppliesValidPromo", func(t *testing.T) {
		svc, m := newRentalService()
		promo := &domain.PromoCode{
			ID:              9,
			Code:            "SALE10",
			DiscountPercent: 10,
			StartsAt:        testNow.AddDate(0, 0, -10),
			EndsAt:          testNow.AddDate(0, 0, 10),
			IsActive:        true,
		}
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)
		m.promos.On("GetByCode", ctx, "SALE10").Return(promo, nil)
		m.rentals.On("HasOpenByBox", ctx, int32(5), int32(0)).Return(false, nil)
		m.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		input := baseInput()
		input.PromoCode = "SALE10"
		rental, err := svc.CreateRental(ctx, input, testNow)
		assert.NoError(t, err)
		assert.Equal(t, "5400.00", rental.FinalPricePerMonth.StringFixed(2))
		assert.Equal(t, int32(9), *rental.PromoCodeID)
	})

	t.Run("ExpiredPromoRejected", func(t *testing.T) {
		svc, m := newRentalService()
		promo := &domain.PromoCode{
			Code:            "OLD",
			DiscountPercent: 10,
			StartsAt:        testNow.AddDate(0, 0, -60),
			EndsAt:          testNow.AddDate(0, 0, -30),
			IsActive:        true,
		}
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)
		m.promos.On("GetByCode", ctx, "OLD").Return(promo, nil)

		input := baseInput()
		input.PromoCode = "OLD"
		_, err := svc.CreateRental(ctx, input, testNow)
		assert.ErrorIs(t, err, service.ErrPromoExpired)
	})

	t.Run("ConsentRequired", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)

		input := baseInput()
		input.PersonalDataConsent = false
		_, err := svc.CreateRental(ctx, input, testNow)
		assert.ErrorIs(t, err, service.ErrConsentRequired)
		m.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NoActiveConsentDocument", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(nil, sql.ErrNoRows)

		_, err := svc.CreateRental(ctx, baseInput(), testNow)
		assert.ErrorIs(t, err, service.ErrConsentDocumentMissing)
	})

	t.Run("BoxInactive", func(t *testing.T) {
		svc, m := newRentalService()
		box := testBox()
		box.IsActive = false
		m.boxes.On("GetByID", ctx, int32(5)).Return(box, nil)

		_, err := svc.CreateRental(ctx, baseInput(), testNow)
		assert.ErrorIs(t, err, service.ErrBoxInactive)
	})

	t.Run("BoxOccupied", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)
		m.rentals.On("HasOpenByBox", ctx, int32(5), int32(0)).Return(true, nil)

		_, err := svc.CreateRental(ctx, baseInput(), testNow)
		assert.ErrorIs(t, err, domain.ErrBoxOccupied)
		m.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)

		input := baseInput()
		input.StartDate = testNow
		input.EndDate = testNow.AddDate(0, 0, -1)
		_, err := svc.CreateRental(ctx, input, testNow)
		assert.ErrorIs(t, err, service.ErrEndBeforeStart)
	})

	t.Run("PickupAddressRequired", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)

		input := baseInput()
		input.PickupFromHome = true
		_, err := svc.CreateRental(ctx, input, testNow)
		assert.ErrorIs(t, err, service.ErrPickupAddressRequired)
	})

	t.Run("HomePickupCreatesDeliveryTask", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)
		m.rentals.On("HasOpenByBox", ctx, int32(5), int32(0)).Return(false, nil)
		m.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Rental).ID = 11
			}).Return(nil)
		m.warehouses.On("GetByID", ctx, int32(2)).
			Return(&domain.Warehouse{ID: 2, City: "Springfield", Address: "1 Storage Way"}, nil)
		m.deliveries.On("Create", ctx, mock.AnythingOfType("*domain.DeliveryTask")).Return(nil)

		input := baseInput()
		input.PickupFromHome = true
		input.PickupAddress = "12 Elm St"
		rental, err := svc.CreateRental(ctx, input, testNow)
		assert.NoError(t, err)

		m.deliveries.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(task *domain.DeliveryTask) bool {
			return task.RentalID == rental.ID &&
				task.Status == domain.DeliveryStatusNew &&
				task.FromAddress == "12 Elm St" &&
				task.PlannedDate.Equal(rental.StartDate)
		}))
	})

	t.Run("UnknownAdCampaignIgnored", func(t *testing.T) {
		svc, m := newRentalService()
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.docs.On("GetActive", ctx).Return(testConsentDoc(), nil)
		m.campaigns.On("GetByCode", ctx, "nope").Return(nil, sql.ErrNoRows)
		m.rentals.On("HasOpenByBox", ctx, int32(5), int32(0)).Return(false, nil)
		m.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		input := baseInput()
		input.AdCampaignCode = "nope"
		rental, err := svc.CreateRental(ctx, input, testNow)
		assert.NoError(t, err)
		assert.Nil(t, rental.AdCampaignID)
	})
}

func TestCloseRental(t *testing.T) {
	ctx := context.Background()

	t.Run("ClosesOpenRental", func(t *testing.T) {
		svc, m := newRentalService()
		rt := &domain.Rental{ID: 11, UserID: 3, Status: domain.RentalStatusOverdue}
		m.rentals.On("GetByID", ctx, int32(11)).Return(rt, nil)
		m.rentals.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		closed, err := svc.CloseRental(ctx, 3, 11)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusClosed, closed.Status)
	})

	t.Run("AlreadyClosed", func(t *testing.T) {
		svc, m := newRentalService()
		rt := &domain.Rental{ID: 11, UserID: 3, Status: domain.RentalStatusClosed}
		m.rentals.On("GetByID", ctx, int32(11)).Return(rt, nil)

		_, err := svc.CloseRental(ctx, 3, 11)
		assert.ErrorIs(t, err, service.ErrRentalNotOpen)
		m.rentals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ForeignRentalHidden", func(t *testing.T) {
		svc, m := newRentalService()
		rt := &domain.Rental{ID: 11, UserID: 99, Status: domain.RentalStatusActive}
		m.rentals.On("GetByID", ctx, int32(11)).Return(rt, nil)

		_, err := svc.CloseRental(ctx, 3, 11)
		assert.ErrorIs(t, err, service.ErrRentalNotFound)
	})
}

func TestSaveRental(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputesPriceWhenPromoLapses", func(t *testing.T) {
		svc, m := newRentalService()
		promoID := int32(9)
		rt := &domain.Rental{
			ID:                 11,
			UserID:             3,
			BoxID:              5,
			StartDate:          testNow.AddDate(0, 0, -10),
			EndDate:            testNow.AddDate(0, 0, 20),
			Status:             domain.RentalStatusActive,
			PromoCodeID:        &promoID,
			OverdueGraceMonths: domain.DefaultOverdueGraceMonths,
		}
		lapsed := &domain.PromoCode{
			ID:              9,
			DiscountPercent: 10,
			StartsAt:        testNow.AddDate(0, 0, -40),
			EndsAt:          testNow.AddDate(0, 0, -5),
			IsActive:        true,
		}
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.promos.On("GetByID", ctx, int32(9)).Return(lapsed, nil)
		m.rentals.On("Update", ctx, rt).Return(nil)

		err := svc.SaveRental(ctx, rt, testNow)
		assert.NoError(t, err)
		assert.Equal(t, "6000.00", rt.FinalPricePerMonth.StringFixed(2))
	})

	t.Run("DerivesOverdueStatus", func(t *testing.T) {
		svc, m := newRentalService()
		rt := &domain.Rental{
			ID:                 11,
			BoxID:              5,
			StartDate:          testNow.AddDate(0, 0, -40),
			EndDate:            testNow.AddDate(0, 0, -3),
			Status:             domain.RentalStatusActive,
			OverdueGraceMonths: domain.DefaultOverdueGraceMonths,
		}
		m.boxes.On("GetByID", ctx, int32(5)).Return(testBox(), nil)
		m.rentals.On("Update", ctx, rt).Return(nil)

		err := svc.SaveRental(ctx, rt, testNow)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusOverdue, rt.Status)
	})
}
