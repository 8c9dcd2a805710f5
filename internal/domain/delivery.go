package domain

import "time"

type DeliveryStatus string

const (
	DeliveryStatusNew        DeliveryStatus = "new"
	DeliveryStatusInProgress DeliveryStatus = "in_progress"
	DeliveryStatusDone       DeliveryStatus = "done"
	DeliveryStatusCanceled   DeliveryStatus = "canceled"
)

// DeliveryTask tells a courier where to collect a customer's belongings for a
// home-pickup rental.
type DeliveryTask struct {
	ID          int32          `json:"id"`
	RentalID    int32          `json:"rental_id"`
	Status      DeliveryStatus `json:"status"`
	FromAddress string         `json:"from_address"`
	ToAddress   string         `json:"to_address"`
	PlannedDate time.Time      `json:"planned_date"`
	CreatedOn   time.Time      `json:"created_on"`
	UpdatedOn   time.Time      `json:"updated_on"`
}
