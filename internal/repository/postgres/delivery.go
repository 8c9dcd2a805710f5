package postgres

import (
	"context"
	"database/sql"
	"time"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type deliveryRepository struct {
	db *sql.DB
}

func NewDeliveryRepository(db *sql.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, t *domain.DeliveryTask) error {
	query := `INSERT INTO delivery_tasks (rental_id, status, from_address, to_address, planned_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, t.RentalID, t.Status, t.FromAddress, t.ToAddress, t.PlannedDate, now, now).Scan(&t.ID)
}

func (r *deliveryRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.DeliveryTask, error) {
	query := `SELECT id, rental_id, status, from_address, to_address, planned_date, created_on, updated_on
	          FROM delivery_tasks WHERE rental_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.DeliveryTask
	for rows.Next() {
		var t domain.DeliveryTask
		if err := rows.Scan(&t.ID, &t.RentalID, &t.Status, &t.FromAddress, &t.ToAddress, &t.PlannedDate, &t.CreatedOn, &t.UpdatedOn); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
