package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"selfstorage-backend/internal/domain"
)

// RatePerCubicMeterMonth is the fixed monthly storage rate per cubic meter.
var RatePerCubicMeterMonth = decimal.RequireFromString("750.00")

// OverdueTariffMultiplier is the surcharge applied to the monthly price while
// a rental is overdue.
var OverdueTariffMultiplier = decimal.RequireFromString("1.10")

// BoxVolume returns l*w*h in cubic meters, rounded to 2 decimals.
// Inputs are assumed positive; dimension validation happens upstream.
func BoxVolume(length, width, height decimal.Decimal) decimal.Decimal {
	return length.Mul(width).Mul(height).Round(2)
}

// BoxMonthlyPrice returns the base monthly price for a box of the given
// dimensions: l*w*h * rate, rounded to 2 decimals.
func BoxMonthlyPrice(length, width, height decimal.Decimal) decimal.Decimal {
	return length.Mul(width).Mul(height).Mul(RatePerCubicMeterMonth).Round(2)
}

// FinalMonthlyPrice applies the promo discount to the base price when the
// promo is valid at the given moment; otherwise the base price is returned
// unchanged. The result never exceeds the base price.
func FinalMonthlyPrice(base decimal.Decimal, promo *domain.PromoCode, now time.Time) decimal.Decimal {
	if promo == nil || !promo.ValidAt(now) {
		return base
	}
	discount := decimal.NewFromInt32(promo.DiscountPercent).Div(decimal.NewFromInt(100))
	return base.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2)
}

// OverdueMonthlyPrice returns the surcharged monthly price quoted to
// customers whose rental has passed its end date.
func OverdueMonthlyPrice(finalPrice decimal.Decimal) decimal.Decimal {
	return finalPrice.Mul(OverdueTariffMultiplier).Round(2)
}
