package postgres

import (
	"context"
	"database/sql"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
)

type storageRuleRepository struct {
	db *sql.DB
}

func NewStorageRuleRepository(db *sql.DB) repository.StorageRuleRepository {
	return &storageRuleRepository{db: db}
}

func (r *storageRuleRepository) ListActive(ctx context.Context) ([]domain.StorageRule, error) {
	query := `SELECT id, rule_type, title, is_active, sort_order FROM storage_rules
	          WHERE is_active ORDER BY sort_order, rule_type, title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.StorageRule
	for rows.Next() {
		var sr domain.StorageRule
		if err := rows.Scan(&sr.ID, &sr.RuleType, &sr.Title, &sr.IsActive, &sr.SortOrder); err != nil {
			return nil, err
		}
		rules = append(rules, sr)
	}
	return rules, rows.Err()
}
