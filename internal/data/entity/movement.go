package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementPayment        MovementType = "PAYMENT"
	MovementLodgingPayment MovementType = "LODGING_PAYMENT"
	MovementCashPayment    MovementType = "CASH_PAYMENT"
	MovementCardPayment    MovementType = "CARD_PAYMENT"
	MovementExtraCharge    MovementType = "EXTRA_CHARGE"
	MovementServiceCharge  MovementType = "SERVICE_CHARGE"
	MovementExtension      MovementType = "EXTENSION"
	MovementDiscount       MovementType = "DISCOUNT"
	MovementRefund         MovementType = "REFUND"
	MovementCancellation   MovementType = "CANCELLATION"
	MovementOther          MovementType = "OTHER"
)

// BookingMovement is an immutable financial ledger entry, optionally tied to
// a booking, a turno and the user who registered it. Subtotal, tax and
// service fee are stored when the source system computed them; reporting
// back-computes them otherwise.
type BookingMovement struct {
	BaseSimple
	BookingID     *uuid.UUID       `db:"booking_id"`
	TurnoID       *uuid.UUID       `db:"turno_id"`
	UserID        *uuid.UUID       `db:"user_id"`
	Type          MovementType     `db:"type"`
	Concept       string           `db:"concept"`
	Amount        decimal.Decimal  `db:"amount"`
	Currency      string           `db:"currency"`
	PaymentMethod *string          `db:"payment_method"`
	Subtotal      *decimal.Decimal `db:"subtotal"`
	Tax           *decimal.Decimal `db:"tax"`
	ServiceFee    *decimal.Decimal `db:"service_fee"`
	Date          time.Time        `db:"date"`
}

// MovementRecord is a BookingMovement with reporting joins resolved.
type MovementRecord struct {
	BookingMovement
	TurnoNumero *int    `db:"turno_numero"`
	TurnoNombre *string `db:"turno_nombre"`
	UserName    *string `db:"user_name"`
	BookingCode *string `db:"booking_code"`
	GuestName   *string `db:"guest_name"`
}
