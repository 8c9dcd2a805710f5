package service

import (
	"context"
	"database/sql"
	"errors"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
	"selfstorage-backend/internal/utils"
)

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
	boxRepo       repository.BoxRepository
	ruleRepo      repository.StorageRuleRepository
}

func NewWarehouseService(
	warehouseRepo repository.WarehouseRepository,
	boxRepo repository.BoxRepository,
	ruleRepo repository.StorageRuleRepository,
) WarehouseService {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
		boxRepo:       boxRepo,
		ruleRepo:      ruleRepo,
	}
}

func (s *warehouseService) ListWarehouses(ctx context.Context) ([]WarehouseSummary, error) {
	warehouses, err := s.warehouseRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := s.occupiedSet(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]WarehouseSummary, 0, len(warehouses))
	for _, w := range warehouses {
		boxes, err := s.boxRepo.ListActiveByWarehouse(ctx, w.ID)
		if err != nil {
			return nil, err
		}

		summary := WarehouseSummary{Warehouse: w, TotalBoxes: len(boxes)}
		for _, b := range boxes {
			if occupied[b.ID] {
				continue
			}
			summary.FreeBoxes++
			price := utils.BoxMonthlyPrice(b.LengthM, b.WidthM, b.HeightM)
			if summary.MinMonthlyPrice == nil || price.LessThan(*summary.MinMonthlyPrice) {
				p := price
				summary.MinMonthlyPrice = &p
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *warehouseService) ListBoxes(ctx context.Context, warehouseID int32) (*domain.Warehouse, []BoxOffer, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrWarehouseNotFound
		}
		return nil, nil, err
	}

	boxes, err := s.boxRepo.ListActiveByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, nil, err
	}

	occupied, err := s.occupiedSet(ctx)
	if err != nil {
		return nil, nil, err
	}

	offers := make([]BoxOffer, 0, len(boxes))
	for _, b := range boxes {
		offers = append(offers, BoxOffer{
			Box:           b,
			VolumeM3:      utils.BoxVolume(b.LengthM, b.WidthM, b.HeightM),
			PricePerMonth: utils.BoxMonthlyPrice(b.LengthM, b.WidthM, b.HeightM),
			IsFree:        !occupied[b.ID],
		})
	}
	return warehouse, offers, nil
}

func (s *warehouseService) ListStorageRules(ctx context.Context) ([]domain.StorageRule, []domain.StorageRule, error) {
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	var allowed, forbidden []domain.StorageRule
	for _, r := range rules {
		if r.RuleType == domain.RuleTypeAllowed {
			allowed = append(allowed, r)
		} else {
			forbidden = append(forbidden, r)
		}
	}
	return allowed, forbidden, nil
}

func (s *warehouseService) occupiedSet(ctx context.Context) (map[int32]bool, error) {
	ids, err := s.boxRepo.ListOccupiedIDs(ctx)
	if err != nil {
		return nil, err
	}
	occupied := make(map[int32]bool, len(ids))
	for _, id := range ids {
		occupied[id] = true
	}
	return occupied, nil
}
