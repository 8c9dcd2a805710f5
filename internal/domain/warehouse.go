package domain

import "time"

type Warehouse struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	WorkHours string    `json:"work_hours"`
	IsActive  bool      `json:"is_active"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
