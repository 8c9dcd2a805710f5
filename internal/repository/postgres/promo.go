package postgres

import (
	"context"
	"database/sql"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type promoCodeRepository struct {
	db *sql.DB
}

func NewPromoCodeRepository(db *sql.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{db: db}
}

func (r *promoCodeRepository) GetByID(ctx context.Context, id int32) (*domain.PromoCode, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *promoCodeRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	return r.get(ctx, `WHERE code = $1`, code)
}

func (r *promoCodeRepository) get(ctx context.Context, where string, arg interface{}) (*domain.PromoCode, error) {
	p := &domain.PromoCode{}
	query := `SELECT id, code, discount_percent, starts_at, ends_at, is_active, created_on, updated_on
	          FROM promo_codes ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&p.ID, &p.Code, &p.DiscountPercent, &p.StartsAt, &p.EndsAt, &p.IsActive, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

type adCampaignRepository struct {
	db *sql.DB
}

func NewAdCampaignRepository(db *sql.DB) repository.AdCampaignRepository {
	return &adCampaignRepository{db: db}
}

func (r *adCampaignRepository) GetByCode(ctx context.Context, code string) (*domain.AdCampaign, error) {
	c := &domain.AdCampaign{}
	query := `SELECT id, title, code, created_on FROM ad_campaigns WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&c.ID, &c.Title, &c.Code, &c.CreatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}
