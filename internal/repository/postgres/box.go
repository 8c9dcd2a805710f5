package postgres

import (
	"context"
	"database/sql"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type boxRepository struct {
	db *sql.DB
}

func NewBoxRepository(db *sql.DB) repository.BoxRepository {
	return &boxRepository{db: db}
}

func (r *boxRepository) GetByID(ctx context.Context, id int32) (*domain.Box, error) {
	b := &domain.Box{}
	query := `SELECT id, warehouse_id, code, length_m, width_m, height_m, is_active, created_on, updated_on
	          FROM boxes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.WarehouseID, &b.Code, &b.LengthM, &b.WidthM, &b.HeightM, &b.IsActive, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *boxRepository) ListActiveByWarehouse(ctx context.Context, warehouseID int32) ([]domain.Box, error) {
	query := `SELECT id, warehouse_id, code, length_m, width_m, height_m, is_active, created_on, updated_on
	          FROM boxes WHERE warehouse_id = $1 AND is_active ORDER BY code`
	rows, err := r.db.QueryContext(ctx, query, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boxes []domain.Box
	for rows.Next() {
		var b domain.Box
		if err := rows.Scan(&b.ID, &b.WarehouseID, &b.Code, &b.LengthM, &b.WidthM, &b.HeightM, &b.IsActive, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, rows.Err()
}

func (r *boxRepository) ListOccupiedIDs(ctx context.Context) ([]int32, error) {
	query := `SELECT DISTINCT box_id FROM rentals WHERE status IN ('active', 'overdue')`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
