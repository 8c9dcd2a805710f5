package domain

import "time"

// PromoCode is a time-bounded percentage discount applicable to a rental's
// monthly price. DiscountPercent is constrained to 1..90 at the storage layer.
type PromoCode struct {
	ID              int32     `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int32     `json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	IsActive        bool      `json:"is_active"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}

// ValidAt reports whether the code may be applied at the given moment.
func (p *PromoCode) ValidAt(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartsAt) && !now.After(p.EndsAt)
}

// AdCampaign attributes rentals to an advertising source by code.
type AdCampaign struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	CreatedOn time.Time `json:"created_on"`
}
