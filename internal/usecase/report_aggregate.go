package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotel-pms/internal/data/entity"
)

// Currencies every report bucket carries, present even when zero.
var ReportCurrencies = []string{"MXN", "USD", "EUR"}

const NoTurnoLabel = "Sin Turno"

// Back-computation ratios for rows that do not store a breakdown. The paid
// total is assumed to already embed 16% tax and a 3% fee, so the subtotal is
// recovered as total / 1.2076.
var (
	backSubtotalDivisor = decimal.NewFromFloat(1.2076)
	backTaxRatio        = decimal.NewFromFloat(0.16)
	backFeeRatio        = decimal.NewFromFloat(0.03)
)

// incomeTypes classifies BookingMovement types; anything absent counts as an
// expense. Payment-sourced rows bypass this table entirely.
var incomeTypes = map[entity.MovementType]bool{
	entity.MovementPayment:        true,
	entity.MovementLodgingPayment: true,
	entity.MovementCashPayment:    true,
	entity.MovementCardPayment:    true,
	entity.MovementExtraCharge:    true,
	entity.MovementServiceCharge:  true,
	entity.MovementExtension:      true,
	entity.MovementOther:          true,
}

// Movement is the normalized reporting row, sourced from either a
// BookingMovement or a Payment.
type Movement struct {
	ID          uuid.UUID
	Type        entity.MovementType
	Concept     string
	Amount      decimal.Decimal
	Currency    string
	PaymentType string
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	ServiceFee  decimal.Decimal
	TotalPaid   decimal.Decimal
	IsIncome    bool
	Date        time.Time
	TurnoNumero int
	TurnoNombre string
	User        string
	BookingCode string
	Customer    string
}

// ReportTotals is one aggregation bucket. Map keys are currencies.
type ReportTotals struct {
	Income        map[string]decimal.Decimal
	Expenses      map[string]decimal.Decimal
	Net           map[string]decimal.Decimal
	ByPaymentType map[string]map[string]decimal.Decimal
	MovementCount int
	PaymentCount  int
	RefundCount   int
}

// TurnoGroup holds the totals of one shift.
type TurnoGroup struct {
	TurnoNumero int
	TurnoNombre string
	Totals      ReportTotals
}

func backComputeBreakdown(total decimal.Decimal) (subtotal, tax, fee decimal.Decimal) {
	subtotal = total.Div(backSubtotalDivisor).Round(2)
	tax = subtotal.Mul(backTaxRatio).Round(2)
	fee = subtotal.Mul(backFeeRatio).Round(2)
	return subtotal, tax, fee
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NormalizeBookingMovement maps a ledger row into the common Movement shape.
// Stored breakdown fields win over back-computation.
func NormalizeBookingMovement(rec *entity.MovementRecord) Movement {
	m := Movement{
		ID:          rec.ID,
		Type:        rec.Type,
		Concept:     rec.Concept,
		Amount:      rec.Amount,
		Currency:    rec.Currency,
		PaymentType: deref(rec.PaymentMethod),
		TotalPaid:   rec.Amount,
		IsIncome:    incomeTypes[rec.Type],
		Date:        rec.Date,
		TurnoNombre: NoTurnoLabel,
		User:        deref(rec.UserName),
		BookingCode: deref(rec.BookingCode),
		Customer:    deref(rec.GuestName),
	}
	if m.Currency == "" {
		m.Currency = "MXN"
	}
	if rec.TurnoNumero != nil {
		m.TurnoNumero = *rec.TurnoNumero
		m.TurnoNombre = deref(rec.TurnoNombre)
	}

	subtotal, tax, fee := backComputeBreakdown(rec.Amount)
	if rec.Subtotal != nil {
		subtotal = *rec.Subtotal
	}
	if rec.Tax != nil {
		tax = *rec.Tax
	}
	if rec.ServiceFee != nil {
		fee = *rec.ServiceFee
	}
	m.Subtotal, m.Tax, m.ServiceFee = subtotal, tax, fee

	return m
}

// NormalizePayment maps a settled payment into the common Movement shape.
// Payments carry no stored breakdown and always count as income.
func NormalizePayment(rec *entity.PaymentRecord) Movement {
	m := Movement{
		ID:          rec.ID,
		Type:        entity.MovementPayment,
		Concept:     rec.Concept,
		Amount:      rec.Amount,
		Currency:    rec.Currency,
		PaymentType: rec.Method,
		TotalPaid:   rec.Amount,
		IsIncome:    true,
		Date:        rec.PaidAt,
		TurnoNombre: NoTurnoLabel,
		User:        deref(rec.UserName),
		BookingCode: deref(rec.BookingCode),
		Customer:    deref(rec.GuestName),
	}
	if m.Currency == "" {
		m.Currency = "MXN"
	}
	if rec.TurnoNumero != nil {
		m.TurnoNumero = *rec.TurnoNumero
		m.TurnoNombre = deref(rec.TurnoNombre)
	}

	m.Subtotal, m.Tax, m.ServiceFee = backComputeBreakdown(rec.Amount)

	return m
}

// FilterMovements drops rows not matching the currency or payment type.
// Empty filters match everything. The input slice is not modified.
func FilterMovements(movements []Movement, currency, paymentType string) []Movement {
	out := make([]Movement, 0, len(movements))
	for _, m := range movements {
		if currency != "" && m.Currency != currency {
			continue
		}
		if paymentType != "" && m.PaymentType != paymentType {
			continue
		}
		out = append(out, m)
	}
	return out
}

func newReportTotals() ReportTotals {
	t := ReportTotals{
		Income:        make(map[string]decimal.Decimal, len(ReportCurrencies)),
		Expenses:      make(map[string]decimal.Decimal, len(ReportCurrencies)),
		Net:           make(map[string]decimal.Decimal, len(ReportCurrencies)),
		ByPaymentType: make(map[string]map[string]decimal.Decimal),
	}
	for _, cur := range ReportCurrencies {
		t.Income[cur] = decimal.Zero
		t.Expenses[cur] = decimal.Zero
		t.Net[cur] = decimal.Zero
	}
	return t
}

func (t *ReportTotals) add(m Movement) {
	if _, ok := t.Income[m.Currency]; !ok {
		t.Income[m.Currency] = decimal.Zero
		t.Expenses[m.Currency] = decimal.Zero
		t.Net[m.Currency] = decimal.Zero
	}

	if m.IsIncome {
		t.Income[m.Currency] = t.Income[m.Currency].Add(m.Amount)
	} else {
		t.Expenses[m.Currency] = t.Expenses[m.Currency].Add(m.Amount)
	}
	t.Net[m.Currency] = t.Income[m.Currency].Sub(t.Expenses[m.Currency])

	if m.PaymentType != "" {
		byCur, ok := t.ByPaymentType[m.PaymentType]
		if !ok {
			byCur = make(map[string]decimal.Decimal)
			t.ByPaymentType[m.PaymentType] = byCur
		}
		byCur[m.Currency] = byCur[m.Currency].Add(m.Amount)
	}

	t.MovementCount++
	switch m.Type {
	case entity.MovementPayment:
		t.PaymentCount++
	case entity.MovementRefund, entity.MovementCancellation:
		t.RefundCount++
	}
}

// AggregateByTurno buckets movements by shift number, ascending, with
// unassigned rows under shift 0.
func AggregateByTurno(movements []Movement) []TurnoGroup {
	byNumero := make(map[int]*TurnoGroup)
	for _, m := range movements {
		group, ok := byNumero[m.TurnoNumero]
		if !ok {
			group = &TurnoGroup{
				TurnoNumero: m.TurnoNumero,
				TurnoNombre: m.TurnoNombre,
				Totals:      newReportTotals(),
			}
			byNumero[m.TurnoNumero] = group
		}
		group.Totals.add(m)
	}

	groups := make([]TurnoGroup, 0, len(byNumero))
	for _, group := range byNumero {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].TurnoNumero < groups[j].TurnoNumero
	})
	return groups
}

// GrandTotals aggregates the whole filtered set, ungrouped.
func GrandTotals(movements []Movement) ReportTotals {
	totals := newReportTotals()
	for _, m := range movements {
		totals.add(m)
	}
	return totals
}
