package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
)

type fakeMovementRepo struct {
	repository.MovementRepository
	records []*entity.MovementRecord
}

func (f *fakeMovementRepo) FindForReport(_ context.Context, _, _ time.Time, _ []int, _ []entity.MovementType) ([]*entity.MovementRecord, error) {
	return f.records, nil
}

type fakePaymentRepo struct {
	repository.PaymentRepository
	records []*entity.PaymentRecord
}

func (f *fakePaymentRepo) FindForReport(_ context.Context, _, _ time.Time, _ []int) ([]*entity.PaymentRecord, error) {
	return f.records, nil
}

func newReportFixture(movements *fakeMovementRepo, payments *fakePaymentRepo) ReportService {
	repo := &repository.Repository{
		Movement: movements,
		Payment:  payments,
	}
	return NewReportService(repo, zap.NewNop())
}

func reportRequest() *request.TurnConceptsReportRequest {
	return &request.TurnConceptsReportRequest{
		DateFrom: "2026-02-01",
		DateTo:   "2026-02-28",
		Format:   "JSON",
	}
}

func TestGenerateTurnConcepts_RejectsPDF(t *testing.T) {
	svc := newReportFixture(&fakeMovementRepo{}, &fakePaymentRepo{})

	req := reportRequest()
	req.Format = "PDF"

	_, err := svc.GenerateTurnConcepts(context.Background(), req)
	assert.ErrorIs(t, err, ErrPDFNotSupported)
}

func TestGenerateTurnConcepts_RejectsInvertedRange(t *testing.T) {
	svc := newReportFixture(&fakeMovementRepo{}, &fakePaymentRepo{})

	req := reportRequest()
	req.DateFrom = "2026-02-28"
	req.DateTo = "2026-02-01"

	_, err := svc.GenerateTurnConcepts(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date_to must not be before date_from")
}

func TestGenerateTurnConcepts_MergesLedgerAndPayments(t *testing.T) {
	one := 1
	movements := &fakeMovementRepo{records: []*entity.MovementRecord{
		movementRecord(entity.MovementExtraCharge, "300.00", "MXN", &one),
		movementRecord(entity.MovementRefund, "50.00", "MXN", &one),
	}}
	payments := &fakePaymentRepo{records: []*entity.PaymentRecord{
		paymentRecord("1207.60", "MXN", "EFECTIVO", nil),
	}}
	svc := newReportFixture(movements, payments)

	report, err := svc.GenerateTurnConcepts(context.Background(), reportRequest())
	require.NoError(t, err)

	assert.Len(t, report.Movements, 3)
	require.Len(t, report.Summary, 2)
	assert.Equal(t, 0, report.Summary[0].TurnoNumero)
	assert.Equal(t, NoTurnoLabel, report.Summary[0].TurnoNombre)
	assert.Equal(t, 1, report.Summary[1].TurnoNumero)

	grand := report.GrandTotals
	assert.True(t, grand.Income["MXN"].Equal(dec("1507.60")), "income %s", grand.Income["MXN"])
	assert.True(t, grand.Expenses["MXN"].Equal(dec("50.00")), "expenses %s", grand.Expenses["MXN"])
	assert.True(t, grand.Net["MXN"].Equal(dec("1457.60")), "net %s", grand.Net["MXN"])
	assert.Equal(t, 3, grand.MovementCount)
	assert.Equal(t, 1, grand.PaymentCount)
	assert.Equal(t, 1, grand.RefundCount)

	assert.Equal(t, "turno", report.Metadata.GroupBy)
	assert.Equal(t, "2026-02-01", report.Metadata.DateFrom)
}

func TestGenerateTurnConcepts_CurrencyFilter(t *testing.T) {
	one := 1
	payments := &fakePaymentRepo{records: []*entity.PaymentRecord{
		paymentRecord("100.00", "MXN", "EFECTIVO", &one),
		paymentRecord("60.00", "USD", "TARJETA", &one),
	}}
	svc := newReportFixture(&fakeMovementRepo{}, payments)

	req := reportRequest()
	req.Currency = "USD"

	report, err := svc.GenerateTurnConcepts(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, report.Movements, 1)
	assert.Equal(t, "USD", report.Movements[0].Currency)
	assert.True(t, report.GrandTotals.Income["MXN"].IsZero())
}

func TestReportConfig(t *testing.T) {
	svc := newReportFixture(&fakeMovementRepo{}, &fakePaymentRepo{})

	cfg, err := svc.Config(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"MXN", "USD", "EUR"}, cfg.Currencies)
	assert.Equal(t, []string{"JSON"}, cfg.Formats)
	assert.Equal(t, []string{"turno"}, cfg.GroupBy)
	assert.Contains(t, cfg.PaymentTypes, "EFECTIVO")
	assert.Len(t, cfg.MovementTypes, 11)
}
