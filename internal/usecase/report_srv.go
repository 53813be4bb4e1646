package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/dto/response"
	"hotel-pms/pkg/utils"

	"go.uber.org/zap"
)

// ErrPDFNotSupported rejects report requests asking for rendered output.
var ErrPDFNotSupported = errors.New("PDF format is not supported, use JSON")

type ReportService interface {
	GenerateTurnConcepts(ctx context.Context, req *request.TurnConceptsReportRequest) (*response.TurnConceptsReportResponse, error)
	Config(ctx context.Context) (*response.ReportConfigResponse, error)
	Turnos(ctx context.Context) ([]response.TurnoResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) GenerateTurnConcepts(ctx context.Context, req *request.TurnConceptsReportRequest) (*response.TurnConceptsReportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Report validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.Format == "PDF" {
		return nil, ErrPDFNotSupported
	}

	from, err := utils.ParseDateStrict(req.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	to, err := utils.ParseDateStrict(req.DateTo)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("validation failed: date_to must not be before date_from")
	}

	movementTypes := make([]entity.MovementType, len(req.MovementTypes))
	for i, t := range req.MovementTypes {
		movementTypes[i] = entity.MovementType(t)
	}

	report, err := s.buildReport(ctx, from, to, req, movementTypes)
	if err != nil {
		s.log.Error("Failed to generate turn-concepts report",
			zap.Error(err),
			zap.String("date_from", req.DateFrom),
			zap.String("date_to", req.DateTo),
		)
		return nil, fmt.Errorf("report could not be generated")
	}

	return report, nil
}

func (s *reportService) buildReport(ctx context.Context, from, to time.Time, req *request.TurnConceptsReportRequest, movementTypes []entity.MovementType) (*response.TurnConceptsReportResponse, error) {
	movementRecords, err := s.repo.Movement.FindForReport(ctx, from, to, req.TurnoNumbers, movementTypes)
	if err != nil {
		return nil, fmt.Errorf("fetch movements: %w", err)
	}
	paymentRecords, err := s.repo.Payment.FindForReport(ctx, from, to, req.TurnoNumbers)
	if err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}

	movements := make([]Movement, 0, len(movementRecords)+len(paymentRecords))
	for _, rec := range movementRecords {
		movements = append(movements, NormalizeBookingMovement(rec))
	}
	for _, rec := range paymentRecords {
		movements = append(movements, NormalizePayment(rec))
	}

	movements = FilterMovements(movements, req.Currency, req.PaymentType)
	groups := AggregateByTurno(movements)
	grand := GrandTotals(movements)

	report := &response.TurnConceptsReportResponse{
		Summary:     make([]response.TurnoGroupResponse, len(groups)),
		Movements:   make([]response.ReportMovementResponse, len(movements)),
		GrandTotals: totalsToResponse(grand),
		Metadata: response.ReportMetadata{
			DateFrom:    req.DateFrom,
			DateTo:      req.DateTo,
			GroupBy:     "turno",
			Currency:    req.Currency,
			PaymentType: req.PaymentType,
			GeneratedAt: time.Now(),
		},
	}
	for i, group := range groups {
		report.Summary[i] = response.TurnoGroupResponse{
			TurnoNumero: group.TurnoNumero,
			TurnoNombre: group.TurnoNombre,
			Totals:      totalsToResponse(group.Totals),
		}
	}
	for i, m := range movements {
		report.Movements[i] = movementToResponse(m)
	}

	s.log.Info("Turn-concepts report generated",
		zap.Int("movements", len(movements)),
		zap.Int("groups", len(groups)),
		zap.String("date_from", req.DateFrom),
		zap.String("date_to", req.DateTo),
	)

	return report, nil
}

func (s *reportService) Config(ctx context.Context) (*response.ReportConfigResponse, error) {
	return &response.ReportConfigResponse{
		Currencies: ReportCurrencies,
		MovementTypes: []string{
			string(entity.MovementPayment),
			string(entity.MovementLodgingPayment),
			string(entity.MovementCashPayment),
			string(entity.MovementCardPayment),
			string(entity.MovementExtraCharge),
			string(entity.MovementServiceCharge),
			string(entity.MovementExtension),
			string(entity.MovementDiscount),
			string(entity.MovementRefund),
			string(entity.MovementCancellation),
			string(entity.MovementOther),
		},
		PaymentTypes: []string{"EFECTIVO", "TARJETA", "TRANSFERENCIA", "OTRO"},
		GroupBy:      []string{"turno"},
		Formats:      []string{"JSON"},
	}, nil
}

func (s *reportService) Turnos(ctx context.Context) ([]response.TurnoResponse, error) {
	turnos, err := s.repo.Turno.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list turnos", zap.Error(err))
		return nil, fmt.Errorf("list turnos: %w", err)
	}

	out := make([]response.TurnoResponse, len(turnos))
	for i, turno := range turnos {
		out[i] = response.TurnoResponse{
			ID:     turno.ID.String(),
			Numero: turno.Numero,
			Nombre: turno.Nombre,
		}
	}
	return out, nil
}

func totalsToResponse(t ReportTotals) response.ReportTotalsResponse {
	resp := response.ReportTotalsResponse{
		Income:        response.CurrencyTotals(t.Income),
		Expenses:      response.CurrencyTotals(t.Expenses),
		Net:           response.CurrencyTotals(t.Net),
		ByPaymentType: make(map[string]response.CurrencyTotals, len(t.ByPaymentType)),
		MovementCount: t.MovementCount,
		PaymentCount:  t.PaymentCount,
		RefundCount:   t.RefundCount,
	}
	for paymentType, byCurrency := range t.ByPaymentType {
		resp.ByPaymentType[paymentType] = response.CurrencyTotals(byCurrency)
	}
	return resp
}

func movementToResponse(m Movement) response.ReportMovementResponse {
	return response.ReportMovementResponse{
		ID:          m.ID.String(),
		Type:        string(m.Type),
		Concept:     m.Concept,
		Amount:      m.Amount,
		Currency:    m.Currency,
		PaymentType: m.PaymentType,
		Subtotal:    m.Subtotal,
		Tax:         m.Tax,
		ServiceFee:  m.ServiceFee,
		TotalPaid:   m.TotalPaid,
		IsIncome:    m.IsIncome,
		Date:        m.Date.Format("2006-01-02"),
		TurnoNumero: m.TurnoNumero,
		TurnoNombre: m.TurnoNombre,
		User:        m.User,
		BookingCode: m.BookingCode,
		Customer:    m.Customer,
	}
}
