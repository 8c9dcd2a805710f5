package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStatus(t *testing.T) {
	endDate := date(2026, 3, 1)

	t.Run("ActiveBeforeEndDate", func(t *testing.T) {
		got := NextStatus(RentalStatusActive, date(2026, 2, 15), endDate, DefaultOverdueGraceMonths)
		assert.Equal(t, RentalStatusActive, got)
	})

	t.Run("ActiveOnEndDate", func(t *testing.T) {
		got := NextStatus(RentalStatusActive, endDate, endDate, DefaultOverdueGraceMonths)
		assert.Equal(t, RentalStatusActive, got)
	})

	t.Run("OverdueDayAfterEndDate", func(t *testing.T) {
		got := NextStatus(RentalStatusActive, endDate.AddDate(0, 0, 1), endDate, DefaultOverdueGraceMonths)
		assert.Equal(t, RentalStatusOverdue, got)
	})

	t.Run("OverdueOnLastGraceDay", func(t *testing.T) {
		// Grace window is 6 billing months of 30 days, 180 days total.
		got := NextStatus(RentalStatusActive, endDate.AddDate(0, 0, 180), endDate, DefaultOverdueGraceMonths)
		assert.Equal(t, RentalStatusOverdue, got)
	})

	t.Run("LostPastGraceWindow", func(t *testing.T) {
		got := NextStatus(RentalStatusOverdue, endDate.AddDate(0, 0, 181), endDate, DefaultOverdueGraceMonths)
		assert.Equal(t, RentalStatusLost, got)
	})

	t.Run("ActiveJumpsStraightToLost", func(t *testing.T) {
		// A rental never swept while overdue still lands in the right state.
		got := NextStatus(RentalStatusActive, endDate.AddDate(0, 0, 200), endDate, DefaultOverdueGraceMonths)
		assert.Equal(t, RentalStatusLost, got)
	})

	t.Run("TerminalStatusesNeverChange", func(t *testing.T) {
		today := endDate.AddDate(0, 0, 500)
		assert.Equal(t, RentalStatusClosed, NextStatus(RentalStatusClosed, today, endDate, DefaultOverdueGraceMonths))
		assert.Equal(t, RentalStatusLost, NextStatus(RentalStatusLost, today, endDate, DefaultOverdueGraceMonths))
	})

	t.Run("Idempotent", func(t *testing.T) {
		today := endDate.AddDate(0, 0, 10)
		first := NextStatus(RentalStatusActive, today, endDate, DefaultOverdueGraceMonths)
		second := NextStatus(first, today, endDate, DefaultOverdueGraceMonths)
		assert.Equal(t, first, second)
	})

	t.Run("ZeroEndDateStaysPut", func(t *testing.T) {
		got := NextStatus(RentalStatusActive, date(2026, 3, 1), time.Time{}, DefaultOverdueGraceMonths)
		assert.Equal(t, RentalStatusActive, got)
	})
}

func TestDaysBetween(t *testing.T) {
	t.Run("IgnoresTimeOfDay", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
		to := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 1, DaysBetween(from, to))
	})

	t.Run("NegativeWhenReversed", func(t *testing.T) {
		assert.Equal(t, -5, DaysBetween(date(2026, 3, 10), date(2026, 3, 5)))
	})

	t.Run("SameDayIsZero", func(t *testing.T) {
		assert.Equal(t, 0, DaysBetween(date(2026, 3, 10), date(2026, 3, 10)))
	})
}

func TestRentalDaysOverdue(t *testing.T) {
	rt := &Rental{EndDate: date(2026, 3, 1)}
	assert.Equal(t, 30, rt.DaysOverdue(date(2026, 3, 31)))
	assert.Equal(t, -1, rt.DaysOverdue(date(2026, 2, 28)))
}

func TestDefaultEndDate(t *testing.T) {
	rt := &Rental{StartDate: date(2026, 1, 15)}
	assert.Equal(t, date(2026, 2, 14), rt.DefaultEndDate())
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, RentalStatusActive.Open())
	assert.True(t, RentalStatusOverdue.Open())
	assert.False(t, RentalStatusClosed.Open())
	assert.False(t, RentalStatusLost.Open())

	assert.True(t, RentalStatusClosed.Terminal())
	assert.True(t, RentalStatusLost.Terminal())
	assert.False(t, RentalStatusActive.Terminal())
	assert.False(t, RentalStatusOverdue.Terminal())
}
