package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Box is a physical storage unit with fixed dimensions, rented as a whole.
type Box struct {
	ID          int32           `json:"id"`
	WarehouseID int32           `json:"warehouse_id"`
	Code        string          `json:"code"`
	LengthM     decimal.Decimal `json:"length_m"`
	WidthM      decimal.Decimal `json:"width_m"`
	HeightM     decimal.Decimal `json:"height_m"`
	IsActive    bool            `json:"is_active"`
	CreatedOn   time.Time       `json:"created_on"`
	UpdatedOn   time.Time       `json:"updated_on"`
}
