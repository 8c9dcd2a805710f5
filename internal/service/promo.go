package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type promoService struct {
	promoRepo repository.PromoCodeRepository
}

func NewPromoService(promoRepo repository.PromoCodeRepository) PromoService {
	return &promoService{promoRepo: promoRepo}
}

func (s *promoService) CheckCode(ctx context.Context, code string, now time.Time) (*domain.PromoCode, error) {
	promo, err := s.promoRepo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}
	if !promo.ValidAt(now) {
		return nil, ErrPromoExpired
	}
	return promo, nil
}
