package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusActive  RentalStatus = "active"
	RentalStatusOverdue RentalStatus = "overdue"
	RentalStatusClosed  RentalStatus = "closed"
	RentalStatusLost    RentalStatus = "lost"
)

const (
	// DaysPerMonth is the billing-month length used for end-date defaulting
	// and overdue accounting. Calendar months are deliberately not used.
	DaysPerMonth = 30

	// DefaultRentalDays is the rental length when no end date is supplied.
	DefaultRentalDays = 30

	// DefaultOverdueGraceMonths is how many billing months a box is held
	// past its end date before the rental is marked lost.
	DefaultOverdueGraceMonths = 6
)

// Terminal reports whether the status admits no further automatic transitions.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusClosed || s == RentalStatusLost
}

// Open reports whether the rental still occupies its box.
func (s RentalStatus) Open() bool {
	return s == RentalStatusActive || s == RentalStatusOverdue
}

type Rental struct {
	ID                  int32        `json:"id"`
	UserID              int32        `json:"user_id"`
	BoxID               int32        `json:"box_id"`
	StartDate           time.Time    `json:"start_date"`
	EndDate             time.Time    `json:"end_date"`
	Status              RentalStatus `json:"status"`
	PickupFromHome      bool         `json:"pickup_from_home"`
	PickupAddress       string       `json:"pickup_address"`
	ContactName         string       `json:"contact_name"`
	ContactPhone        string       `json:"contact_phone"`
	PersonalDataConsent bool         `json:"personal_data_consent"`
	ConsentDocumentID   *int32       `json:"consent_document_id,omitempty"`
	PromoCodeID         *int32       `json:"promo_code_id,omitempty"`
	AdCampaignID        *int32       `json:"ad_campaign_id,omitempty"`
	AccessToken         uuid.UUID    `json:"access_token"`
	OverdueGraceMonths  int32        `json:"overdue_grace_months"`
	BasePricePerMonth   decimal.Decimal `json:"base_price_per_month"`
	FinalPricePerMonth  decimal.Decimal `json:"final_price_per_month"`
	CreatedOn           time.Time    `json:"created_on"`
	UpdatedOn           time.Time    `json:"updated_on"`
}

// NextStatus derives the status a rental should carry on the given calendar
// day. Terminal statuses never change. Past the end date the rental is
// overdue; past the end date plus the grace window it is lost. The function
// is pure and idempotent: feeding its own result back with the same inputs
// yields the same status.
func NextStatus(current RentalStatus, today, endDate time.Time, graceMonths int32) RentalStatus {
	if current.Terminal() || endDate.IsZero() {
		return current
	}
	if !dateAfter(today, endDate) {
		return current
	}
	lostAfter := endDate.AddDate(0, 0, DaysPerMonth*int(graceMonths))
	if dateAfter(today, lostAfter) {
		return RentalStatusLost
	}
	return RentalStatusOverdue
}

// DefaultEndDate returns start date plus one billing month.
func (r *Rental) DefaultEndDate() time.Time {
	return r.StartDate.AddDate(0, 0, DefaultRentalDays)
}

// DaysOverdue returns whole calendar days elapsed since the end date,
// negative if the end date is still ahead.
func (r *Rental) DaysOverdue(today time.Time) int {
	return DaysBetween(r.EndDate, today)
}

// DaysBetween counts calendar days from one date to another, ignoring any
// time-of-day component on either side.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}

func dateAfter(a, b time.Time) bool {
	return DaysBetween(b, a) > 0
}
