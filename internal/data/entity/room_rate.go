package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RateType string

const (
	RateTypeBase     RateType = "BASE"
	RateTypeSeasonal RateType = "SEASONAL"
	RateTypeWeekend  RateType = "WEEKEND"
	RateTypeSpecial  RateType = "SPECIAL"
)

// Rate tax and service fee ratios applied over the subtotal.
var (
	RateTaxRatio        = decimal.NewFromFloat(0.16)
	RateServiceFeeRatio = decimal.NewFromFloat(0.04)
)

// RoomRate prices a room under validity constraints. Tax, service fee and
// total are derived from the subtotal on write, never stored independently
// by callers.
type RoomRate struct {
	Base
	RoomID     uuid.UUID       `db:"room_id"`
	Name       string          `db:"name"`
	Type       RateType        `db:"type"`
	Subtotal   decimal.Decimal `db:"subtotal"`
	Tax        decimal.Decimal `db:"tax"`
	ServiceFee decimal.Decimal `db:"service_fee"`
	Total      decimal.Decimal `db:"total"`
	ValidFrom  *time.Time      `db:"valid_from"`
	ValidTo    *time.Time      `db:"valid_to"`
	ValidDays  []string        `db:"valid_days"`
	MinNights  *int            `db:"min_nights"`
	MaxNights  *int            `db:"max_nights"`
	IsActive   bool            `db:"is_active"`
	IsDefault  bool            `db:"is_default"`
}

// DeriveAmounts recomputes tax, service fee and total from the subtotal.
func (r *RoomRate) DeriveAmounts() {
	r.Tax = r.Subtotal.Mul(RateTaxRatio).Round(2)
	r.ServiceFee = r.Subtotal.Mul(RateServiceFeeRatio).Round(2)
	r.Total = r.Subtotal.Add(r.Tax).Add(r.ServiceFee).Round(2)
}
