package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyTotals always carries MXN, USD and EUR keys, zero when unused.
type CurrencyTotals map[string]decimal.Decimal

type ReportMovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Concept     string          `json:"concept"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PaymentType string          `json:"payment_type"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	IsIncome    bool            `json:"is_income"`
	Date        string          `json:"date"`
	TurnoNumero int             `json:"turno_numero"`
	TurnoNombre string          `json:"turno_nombre"`
	User        string          `json:"user,omitempty"`
	BookingCode string          `json:"booking_code,omitempty"`
	Customer    string          `json:"customer,omitempty"`
}

type ReportTotalsResponse struct {
	Income        CurrencyTotals            `json:"income"`
	Expenses      CurrencyTotals            `json:"expenses"`
	Net           CurrencyTotals            `json:"net"`
	ByPaymentType map[string]CurrencyTotals `json:"by_payment_type"`
	MovementCount int                       `json:"movement_count"`
	PaymentCount  int                       `json:"payment_count"`
	RefundCount   int                       `json:"refund_count"`
}

type TurnoGroupResponse struct {
	TurnoNumero int                  `json:"turno_numero"`
	TurnoNombre string               `json:"turno_nombre"`
	Totals      ReportTotalsResponse `json:"totals"`
}

type ReportMetadata struct {
	DateFrom    string    `json:"date_from"`
	DateTo      string    `json:"date_to"`
	GroupBy     string    `json:"group_by"`
	Currency    string    `json:"currency,omitempty"`
	PaymentType string    `json:"payment_type,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

type TurnConceptsReportResponse struct {
	Summary     []TurnoGroupResponse     `json:"summary"`
	Movements   []ReportMovementResponse `json:"movements"`
	GrandTotals ReportTotalsResponse     `json:"grand_totals"`
	Metadata    ReportMetadata           `json:"metadata"`
}

// ReportConfigResponse describes the filter values the report accepts, for
// the front-end configuration form.
type ReportConfigResponse struct {
	Currencies    []string `json:"currencies"`
	MovementTypes []string `json:"movement_types"`
	PaymentTypes  []string `json:"payment_types"`
	GroupBy       []string `json:"group_by"`
	Formats       []string `json:"formats"`
}

type TurnoResponse struct {
	ID     string `json:"id"`
	Numero int    `json:"numero"`
	Nombre string `json:"nombre"`
}
