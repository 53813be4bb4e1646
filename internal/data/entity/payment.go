package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is a settled charge against a booking. Unlike BookingMovement it
// never stores a subtotal breakdown; reporting always back-computes it.
type Payment struct {
	Base
	BookingID *uuid.UUID      `db:"booking_id"`
	TurnoID   *uuid.UUID      `db:"turno_id"`
	UserID    *uuid.UUID      `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	Currency  string          `db:"currency"`
	Method    string          `db:"method"`
	Concept   string          `db:"concept"`
	Status    PaymentStatus   `db:"status"`
	PaidAt    time.Time       `db:"paid_at"`
}

// PaymentRecord is a Payment with reporting joins resolved.
type PaymentRecord struct {
	Payment
	TurnoNumero *int    `db:"turno_numero"`
	TurnoNombre *string `db:"turno_nombre"`
	UserName    *string `db:"user_name"`
	BookingCode *string `db:"booking_code"`
	GuestName   *string `db:"guest_name"`
}
