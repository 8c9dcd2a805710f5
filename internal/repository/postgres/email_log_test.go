package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository/postgres"
)

func TestEmailLogRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewEmailLogRepository(db)
	ctx := context.Background()

	entry := &domain.EmailNotification{
		RentalID:   11,
		Kind:       domain.KindOverdueMonthly,
		ToEmail:    "ann@example.com",
		Subject:    "Overdue storage reminder: month 2",
		Body:       "body",
		MonthIndex: 2,
		IsSent:     true,
		SentAt:     time.Now(),
	}

	mock.ExpectQuery("INSERT INTO email_notifications").
		WithArgs(entry.RentalID, entry.Kind, entry.ToEmail, entry.Subject, entry.Body,
			entry.MonthIndex, entry.IsSent, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(ctx, entry)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), entry.ID)
}

func TestEmailLogRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewEmailLogRepository(db)
	ctx := context.Background()

	t.Run("ByKind", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(11), domain.KindOverdueInfo).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		found, err := repo.Exists(ctx, 11, domain.KindOverdueInfo)
		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("ByKindAndMonth", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(11), domain.KindOverdueMonthly, int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		found, err := repo.ExistsForMonth(ctx, 11, domain.KindOverdueMonthly, 2)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
