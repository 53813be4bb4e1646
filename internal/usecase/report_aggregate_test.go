package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms/internal/data/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func paymentRecord(amount, currency, method string, turnoNumero *int) *entity.PaymentRecord {
	return &entity.PaymentRecord{
		Payment: entity.Payment{
			Base:     entity.Base{ID: uuid.New()},
			Amount:   dec(amount),
			Currency: currency,
			Method:   method,
			Concept:  "Pago de hospedaje",
			Status:   entity.PaymentStatusCompleted,
			PaidAt:   time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		},
		TurnoNumero: turnoNumero,
	}
}

func movementRecord(movType entity.MovementType, amount, currency string, turnoNumero *int) *entity.MovementRecord {
	return &entity.MovementRecord{
		BookingMovement: entity.BookingMovement{
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			Type:       movType,
			Concept:    "Movimiento",
			Amount:     dec(amount),
			Currency:   currency,
			Date:       time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		TurnoNumero: turnoNumero,
	}
}

func TestNormalizePayment_BackComputesBreakdown(t *testing.T) {
	m := NormalizePayment(paymentRecord("1207.60", "MXN", "EFECTIVO", nil))

	// subtotal = total / 1.2076, tax = 16%, fee = 3%
	assertDecEqual(t, "1000.00", m.Subtotal)
	assertDecEqual(t, "160.00", m.Tax)
	assertDecEqual(t, "30.00", m.ServiceFee)
	assertDecEqual(t, "1207.60", m.TotalPaid)
	assert.True(t, m.IsIncome)
	assert.Equal(t, entity.MovementPayment, m.Type)
	assert.Equal(t, 0, m.TurnoNumero)
	assert.Equal(t, NoTurnoLabel, m.TurnoNombre)
}

func TestNormalizeBookingMovement_StoredBreakdownWins(t *testing.T) {
	rec := movementRecord(entity.MovementExtraCharge, "500.00", "MXN", nil)
	subtotal := dec("400.00")
	tax := dec("64.00")
	rec.Subtotal = &subtotal
	rec.Tax = &tax

	m := NormalizeBookingMovement(rec)

	assertDecEqual(t, "400.00", m.Subtotal)
	assertDecEqual(t, "64.00", m.Tax)
	// service fee missing in storage still falls back to the computed ratio:
	// 500.00 / 1.2076 = 414.04, 3% of that is 12.42
	assertDecEqual(t, "12.42", m.ServiceFee)
	assert.True(t, m.IsIncome)
}

func TestNormalizeBookingMovement_IncomeTable(t *testing.T) {
	income := []entity.MovementType{
		entity.MovementPayment, entity.MovementLodgingPayment, entity.MovementCashPayment,
		entity.MovementCardPayment, entity.MovementExtraCharge, entity.MovementServiceCharge,
		entity.MovementExtension, entity.MovementOther,
	}
	expense := []entity.MovementType{
		entity.MovementDiscount, entity.MovementRefund, entity.MovementCancellation,
	}

	for _, movType := range income {
		m := NormalizeBookingMovement(movementRecord(movType, "100.00", "MXN", nil))
		assert.True(t, m.IsIncome, "type %s should be income", movType)
	}
	for _, movType := range expense {
		m := NormalizeBookingMovement(movementRecord(movType, "100.00", "MXN", nil))
		assert.False(t, m.IsIncome, "type %s should be expense", movType)
	}
}

func TestNormalize_EmptyCurrencyDefaultsToMXN(t *testing.T) {
	m := NormalizeBookingMovement(movementRecord(entity.MovementPayment, "100.00", "", nil))
	assert.Equal(t, "MXN", m.Currency)
}

func TestFilterMovements(t *testing.T) {
	movements := []Movement{
		{Currency: "MXN", PaymentType: "EFECTIVO"},
		{Currency: "USD", PaymentType: "EFECTIVO"},
		{Currency: "MXN", PaymentType: "TARJETA"},
	}

	assert.Len(t, FilterMovements(movements, "MXN", ""), 2)
	assert.Len(t, FilterMovements(movements, "", "EFECTIVO"), 2)
	assert.Len(t, FilterMovements(movements, "MXN", "EFECTIVO"), 1)
	assert.Len(t, FilterMovements(movements, "", ""), 3)
	assert.Len(t, movements, 3)
}

func TestAggregateByTurno_GroupsAndNoTurnoBucket(t *testing.T) {
	one, two := 1, 2
	movements := []Movement{
		NormalizePayment(paymentRecord("100.00", "MXN", "EFECTIVO", &one)),
		NormalizePayment(paymentRecord("200.00", "MXN", "TARJETA", &one)),
		NormalizePayment(paymentRecord("50.00", "USD", "EFECTIVO", &two)),
		NormalizePayment(paymentRecord("75.00", "MXN", "EFECTIVO", nil)),
	}
	refund := NormalizeBookingMovement(movementRecord(entity.MovementRefund, "30.00", "MXN", &one))
	movements = append(movements, refund)

	groups := AggregateByTurno(movements)
	require.Len(t, groups, 3)

	// sorted ascending, unassigned movements under shift 0
	assert.Equal(t, 0, groups[0].TurnoNumero)
	assert.Equal(t, NoTurnoLabel, groups[0].TurnoNombre)
	assert.Equal(t, 1, groups[1].TurnoNumero)
	assert.Equal(t, 2, groups[2].TurnoNumero)

	turno1 := groups[1].Totals
	assertDecEqual(t, "300.00", turno1.Income["MXN"])
	assertDecEqual(t, "30.00", turno1.Expenses["MXN"])
	assertDecEqual(t, "270.00", turno1.Net["MXN"])
	assert.Equal(t, 3, turno1.MovementCount)
	assert.Equal(t, 2, turno1.PaymentCount)
	assert.Equal(t, 1, turno1.RefundCount)

	// all three currencies present even when unused
	for _, group := range groups {
		for _, cur := range ReportCurrencies {
			_, ok := group.Totals.Income[cur]
			assert.True(t, ok, "income missing %s", cur)
			_, ok = group.Totals.Expenses[cur]
			assert.True(t, ok, "expenses missing %s", cur)
			_, ok = group.Totals.Net[cur]
			assert.True(t, ok, "net missing %s", cur)
		}
	}

	// payment-type matrix
	assertDecEqual(t, "100.00", turno1.ByPaymentType["EFECTIVO"]["MXN"])
	assertDecEqual(t, "200.00", turno1.ByPaymentType["TARJETA"]["MXN"])
}

func TestGrandTotals_EqualSumOfGroups(t *testing.T) {
	one, two := 1, 2
	movements := []Movement{
		NormalizePayment(paymentRecord("100.00", "MXN", "EFECTIVO", &one)),
		NormalizePayment(paymentRecord("250.50", "USD", "TARJETA", &two)),
		NormalizePayment(paymentRecord("80.00", "EUR", "EFECTIVO", nil)),
		NormalizeBookingMovement(movementRecord(entity.MovementDiscount, "40.00", "MXN", &one)),
		NormalizeBookingMovement(movementRecord(entity.MovementCancellation, "10.00", "USD", &two)),
	}

	groups := AggregateByTurno(movements)
	grand := GrandTotals(movements)

	for _, cur := range ReportCurrencies {
		income := decimal.Zero
		expenses := decimal.Zero
		for _, group := range groups {
			income = income.Add(group.Totals.Income[cur])
			expenses = expenses.Add(group.Totals.Expenses[cur])
		}
		assert.True(t, grand.Income[cur].Equal(income), "income %s: grand %s vs sum %s", cur, grand.Income[cur], income)
		assert.True(t, grand.Expenses[cur].Equal(expenses), "expenses %s", cur)
		assert.True(t, grand.Net[cur].Equal(income.Sub(expenses)), "net %s", cur)
	}

	movementCount := 0
	for _, group := range groups {
		movementCount += group.Totals.MovementCount
	}
	assert.Equal(t, grand.MovementCount, movementCount)
	assert.Equal(t, len(movements), grand.MovementCount)
}
