package postgres

import (
	"context"
	"database/sql"
	"time"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type emailLogRepository struct {
	db *sql.DB
}

func NewEmailLogRepository(db *sql.DB) repository.EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) Create(ctx context.Context, n *domain.EmailNotification) error {
	query := `INSERT INTO email_notifications (rental_id, kind, to_email, subject, body, month_index, is_sent, sent_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		n.RentalID, n.Kind, n.ToEmail, n.Subject, n.Body, n.MonthIndex, n.IsSent, n.SentAt, time.Now()).Scan(&n.ID)
}

func (r *emailLogRepository) Exists(ctx context.Context, rentalID int32, kind domain.NotificationKind) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM email_notifications WHERE rental_id = $1 AND kind = $2)`
	err := r.db.QueryRowContext(ctx, query, rentalID, kind).Scan(&exists)
	return exists, err
}

func (r *emailLogRepository) ExistsForMonth(ctx context.Context, rentalID int32, kind domain.NotificationKind, monthIndex int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM email_notifications
	          WHERE rental_id = $1 AND kind = $2 AND month_index = $3)`
	err := r.db.QueryRowContext(ctx, query, rentalID, kind, monthIndex).Scan(&exists)
	return exists, err
}

func (r *emailLogRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.EmailNotification, error) {
	query := `SELECT id, rental_id, kind, to_email, subject, body, month_index, is_sent, sent_at, created_on
	          FROM email_notifications WHERE rental_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.EmailNotification
	for rows.Next() {
		var n domain.EmailNotification
		var sentAt sql.NullTime
		if err := rows.Scan(&n.ID, &n.RentalID, &n.Kind, &n.ToEmail, &n.Subject, &n.Body, &n.MonthIndex, &n.IsSent, &sentAt, &n.CreatedOn); err != nil {
			return nil, err
		}
		if sentAt.Valid {
			n.SentAt = sentAt.Time
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
