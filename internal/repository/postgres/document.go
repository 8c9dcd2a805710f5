package postgres

import (
	"context"
	"database/sql"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type consentDocumentRepository struct {
	db *sql.DB
}

func NewConsentDocumentRepository(db *sql.DB) repository.ConsentDocumentRepository {
	return &consentDocumentRepository{db: db}
}

func (r *consentDocumentRepository) GetByID(ctx context.Context, id int32) (*domain.ConsentDocument, error) {
	d := &domain.ConsentDocument{}
	query := `SELECT id, title, file_key, is_active, created_on FROM consent_documents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Title, &d.FileKey, &d.IsActive, &d.CreatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetActive returns the newest active consent document.
func (r *consentDocumentRepository) GetActive(ctx context.Context) (*domain.ConsentDocument, error) {
	d := &domain.ConsentDocument{}
	query := `SELECT id, title, file_key, is_active, created_on FROM consent_documents
	          WHERE is_active ORDER BY created_on DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&d.ID, &d.Title, &d.FileKey, &d.IsActive, &d.CreatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}
