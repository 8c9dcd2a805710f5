package jobs

import (
	"context"
	"fmt"
	"time"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/logger"
)

// SendRentalReminders runs the daily reminder pass: pre-expiry reminders for
// active rentals approaching their end date, a one-shot notice when a rental
// turns overdue, and a monthly notice for each full overdue month.
//
// Every reminder is recorded in the email log before the delivery attempt, so
// a crash mid-send never causes a duplicate on the next run. A delivery
// failure aborts the whole invocation.
func (jr *JobRunner) SendRentalReminders() error {
	return jr.runWithRecovery("SendRentalReminders", func() error {
		return jr.sendReminders(context.Background(), time.Now())
	})
}

func (jr *JobRunner) sendReminders(ctx context.Context, today time.Time) error {
	if err := jr.sendPreExpiryReminders(ctx, today); err != nil {
		return err
	}
	return jr.sendOverdueReminders(ctx, today)
}

func (jr *JobRunner) sendPreExpiryReminders(ctx context.Context, today time.Time) error {
	count := 0
	for _, offset := range domain.ReminderOffsets {
		kind, ok := domain.BeforeKind(offset)
		if !ok {
			continue
		}

		rentals, err := jr.rentalRepo.ListActiveEndingOn(ctx, today.AddDate(0, 0, offset))
		if err != nil {
			return err
		}

		for i := range rentals {
			rt := &rentals[i]
			sent, err := jr.notifyOnce(ctx, rt, kind, 0, today, func(user *domain.User, box *domain.Box) (string, string) {
				return preExpirySubject(offset), preExpiryBody(user, box, rt, offset)
			})
			if err != nil {
				return err
			}
			if sent {
				count++
			}
		}
	}

	logger.Info("Pre-expiry reminders sent", "count", count)
	return nil
}

func (jr *JobRunner) sendOverdueReminders(ctx context.Context, today time.Time) error {
	rentals, err := jr.rentalRepo.ListByStatus(ctx, domain.RentalStatusOverdue)
	if err != nil {
		return err
	}

	infoCount, monthlyCount := 0, 0
	for i := range rentals {
		rt := &rentals[i]
		daysOverdue := rt.DaysOverdue(today)
		if daysOverdue <= 0 {
			continue
		}

		sent, err := jr.notifyOnce(ctx, rt, domain.KindOverdueInfo, 0, today, func(user *domain.User, box *domain.Box) (string, string) {
			return overdueInfoSubject(), overdueInfoBody(user, box, rt)
		})
		if err != nil {
			return err
		}
		if sent {
			infoCount++
		}

		if daysOverdue%domain.DaysPerMonth != 0 {
			continue
		}
		monthIndex := int32(daysOverdue / domain.DaysPerMonth)
		sent, err = jr.notifyOnce(ctx, rt, domain.KindOverdueMonthly, monthIndex, today, func(user *domain.User, box *domain.Box) (string, string) {
			return overdueMonthlySubject(monthIndex), overdueMonthlyBody(user, box, rt, monthIndex)
		})
		if err != nil {
			return err
		}
		if sent {
			monthlyCount++
		}
	}

	logger.Info("Overdue reminders sent", "info_count", infoCount, "monthly_count", monthlyCount)
	return nil
}

// notifyOnce sends one reminder if it has not gone out before. monthIndex is
// zero for one-shot kinds; a positive value keys the dedup check to that
// overdue month. Users without an email address are skipped without a log
// row, so the reminder fires as soon as an address appears.
func (jr *JobRunner) notifyOnce(
	ctx context.Context,
	rt *domain.Rental,
	kind domain.NotificationKind,
	monthIndex int32,
	now time.Time,
	compose func(user *domain.User, box *domain.Box) (subject, body string),
) (bool, error) {
	var already bool
	var err error
	if monthIndex > 0 {
		already, err = jr.emailLogRepo.ExistsForMonth(ctx, rt.ID, kind, monthIndex)
	} else {
		already, err = jr.emailLogRepo.Exists(ctx, rt.ID, kind)
	}
	if err != nil {
		return false, err
	}
	if already {
		return false, nil
	}

	user, err := jr.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		return false, err
	}
	if user.Email == "" {
		logger.Debug("Skipping reminder, user has no email",
			"rental_id", rt.ID, "user_id", user.ID, "kind", kind)
		return false, nil
	}

	box, err := jr.boxRepo.GetByID(ctx, rt.BoxID)
	if err != nil {
		return false, err
	}

	subject, body := compose(user, box)
	entry := &domain.EmailNotification{
		RentalID:   rt.ID,
		Kind:       kind,
		ToEmail:    user.Email,
		Subject:    subject,
		Body:       body,
		MonthIndex: monthIndex,
		IsSent:     true,
		SentAt:     now,
	}
	if err := jr.emailLogRepo.Create(ctx, entry); err != nil {
		return false, err
	}

	if err := jr.email.Send(ctx, user.Email, subject, body); err != nil {
		return false, fmt.Errorf("failed to send %s reminder for rental %d: %w", kind, rt.ID, err)
	}

	logger.Debug("Sent reminder",
		"rental_id", rt.ID, "kind", kind, "month_index", monthIndex, "email", user.Email)
	return true, nil
}
