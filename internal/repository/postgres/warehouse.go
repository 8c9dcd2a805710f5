package postgres

import (
	"context"
	"database/sql"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type warehouseRepository struct {
	db *sql.DB
}

func NewWarehouseRepository(db *sql.DB) repository.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) GetByID(ctx context.Context, id int32) (*domain.Warehouse, error) {
	w := &domain.Warehouse{}
	query := `SELECT id, title, city, address, phone, work_hours, is_active, created_on, updated_on
	          FROM warehouses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Title, &w.City, &w.Address, &w.Phone, &w.WorkHours, &w.IsActive, &w.CreatedOn, &w.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *warehouseRepository) ListActive(ctx context.Context) ([]domain.Warehouse, error) {
	query := `SELECT id, title, city, address, phone, work_hours, is_active, created_on, updated_on
	          FROM warehouses WHERE is_active ORDER BY city, title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Title, &w.City, &w.Address, &w.Phone, &w.WorkHours, &w.IsActive, &w.CreatedOn, &w.UpdatedOn); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}
