package jobs

import (
	"context"
	"time"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/logger"
)

// RefreshRentalStatuses walks every open rental and re-derives its status for
// the current calendar day: active rentals past their end date become
// overdue, overdue rentals past the grace window become lost.
func (jr *JobRunner) RefreshRentalStatuses() error {
	return jr.runWithRecovery("RefreshRentalStatuses", func() error {
		return jr.refreshStatuses(context.Background(), time.Now())
	})
}

func (jr *JobRunner) refreshStatuses(ctx context.Context, today time.Time) error {
	counts := map[domain.RentalStatus]int{}

	for _, status := range []domain.RentalStatus{domain.RentalStatusActive, domain.RentalStatusOverdue} {
		rentals, err := jr.rentalRepo.ListByStatus(ctx, status)
		if err != nil {
			return err
		}

		for i := range rentals {
			rt := &rentals[i]
			next := domain.NextStatus(rt.Status, today, rt.EndDate, rt.OverdueGraceMonths)
			if next == rt.Status {
				continue
			}

			rt.Status = next
			if err := jr.rentalRepo.Update(ctx, rt); err != nil {
				return err
			}
			counts[next]++
			logger.Debug("Rental status refreshed",
				"rental_id", rt.ID,
				"status", next,
				"end_date", rt.EndDate.Format("2006-01-02"))
		}
	}

	logger.Info("Rental statuses refreshed",
		"marked_overdue", counts[domain.RentalStatusOverdue],
		"marked_lost", counts[domain.RentalStatusLost])
	return nil
}
