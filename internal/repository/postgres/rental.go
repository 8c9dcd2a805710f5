package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, user_id, box_id, start_date, end_date, status,
	pickup_from_home, pickup_address, contact_name, contact_phone,
	personal_data_consent, consent_document_id, promo_code_id, ad_campaign_id,
	access_token, overdue_grace_months, base_price_per_month, final_price_per_month,
	created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (user_id, box_id, start_date, end_date, status,
	            pickup_from_home, pickup_address, contact_name, contact_phone,
	            personal_data_consent, consent_document_id, promo_code_id, ad_campaign_id,
	            access_token, overdue_grace_months, base_price_per_month, final_price_per_month,
	            created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	          RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		rt.UserID, rt.BoxID, rt.StartDate, nullDate(rt.EndDate), rt.Status,
		rt.PickupFromHome, rt.PickupAddress, rt.ContactName, rt.ContactPhone,
		rt.PersonalDataConsent, nullInt32(rt.ConsentDocumentID), nullInt32(rt.PromoCodeID), nullInt32(rt.AdCampaignID),
		rt.AccessToken, rt.OverdueGraceMonths, rt.BasePricePerMonth, rt.FinalPricePerMonth,
		now, now,
	).Scan(&rt.ID)
	if isOpenBoxConflict(err) {
		return domain.ErrBoxOccupied
	}
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET end_date=$1, status=$2, pickup_address=$3,
	            promo_code_id=$4, base_price_per_month=$5, final_price_per_month=$6, updated_on=$7
	          WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		nullDate(rt.EndDate), rt.Status, rt.PickupAddress,
		nullInt32(rt.PromoCodeID), rt.BasePricePerMonth, rt.FinalPricePerMonth, time.Now(), rt.ID)
	if isOpenBoxConflict(err) {
		return domain.ErrBoxOccupied
	}
	return err
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, userID)
}

func (r *rentalRepository) HasOpenByBox(ctx context.Context, boxID, excludeID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM rentals
	          WHERE box_id = $1 AND id <> $2 AND status IN ('active', 'overdue'))`
	err := r.db.QueryRowContext(ctx, query, boxID, excludeID).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) ListActiveEndingOn(ctx context.Context, day time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'active' AND end_date = $1`
	return r.list(ctx, query, day.Format("2006-01-02"))
}

func (r *rentalRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 ORDER BY id`
	return r.list(ctx, query, status)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var (
		endDate    sql.NullTime
		consentDoc sql.NullInt32
		promo      sql.NullInt32
		campaign   sql.NullInt32
	)
	err := row.Scan(&rt.ID, &rt.UserID, &rt.BoxID, &rt.StartDate, &endDate, &rt.Status,
		&rt.PickupFromHome, &rt.PickupAddress, &rt.ContactName, &rt.ContactPhone,
		&rt.PersonalDataConsent, &consentDoc, &promo, &campaign,
		&rt.AccessToken, &rt.OverdueGraceMonths, &rt.BasePricePerMonth, &rt.FinalPricePerMonth,
		&rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		rt.EndDate = endDate.Time
	}
	rt.ConsentDocumentID = int32Ptr(consentDoc)
	rt.PromoCodeID = int32Ptr(promo)
	rt.AdCampaignID = int32Ptr(campaign)
	return rt, nil
}

// isOpenBoxConflict matches the partial unique index that allows at most one
// active-or-overdue rental per box.
func isOpenBoxConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == "uniq_rentals_open_box"
	}
	return false
}

func nullDate(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullInt32(p *int32) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *p, Valid: true}
}

func int32Ptr(n sql.NullInt32) *int32 {
	if !n.Valid {
		return nil
	}
	v := n.Int32
	return &v
}
