package domain

import "time"

// NotificationKind is the category of a scheduled reminder email.
type NotificationKind string

const (
	KindBefore30        NotificationKind = "before_30"
	KindBefore14        NotificationKind = "before_14"
	KindBefore7         NotificationKind = "before_7"
	KindBefore3         NotificationKind = "before_3"
	KindOverdueInfo     NotificationKind = "overdue_info"
	KindOverdueMonthly  NotificationKind = "overdue_monthly"
	KindPickupQR        NotificationKind = "pickup_qr"
	KindPartialPickupOK NotificationKind = "partial_pickup_ok"
)

// ReminderOffsets are the day counts before a rental's end date at which a
// pre-expiry reminder goes out, largest first.
var ReminderOffsets = []int{30, 14, 7, 3}

// BeforeKind maps a pre-expiry offset to its notification kind.
func BeforeKind(days int) (NotificationKind, bool) {
	switch days {
	case 30:
		return KindBefore30, true
	case 14:
		return KindBefore14, true
	case 7:
		return KindBefore7, true
	case 3:
		return KindBefore3, true
	}
	return "", false
}

// EmailNotification is one row of the append-only reminder log. For one-shot
// kinds uniqueness is (rental, kind); for overdue_monthly it is
// (rental, kind, month_index).
type EmailNotification struct {
	ID         int32            `json:"id"`
	RentalID   int32            `json:"rental_id"`
	Kind       NotificationKind `json:"kind"`
	ToEmail    string           `json:"to_email"`
	Subject    string           `json:"subject"`
	Body       string           `json:"body"`
	MonthIndex int32            `json:"month_index"`
	IsSent     bool             `json:"is_sent"`
	SentAt     time.Time        `json:"sent_at"`
	CreatedOn  time.Time        `json:"created_on"`
}
