package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"
	"hotel-pms/internal/dto/request"
	"hotel-pms/internal/dto/response"
	"hotel-pms/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RateService interface {
	CreateRate(ctx context.Context, req *request.CreateRateRequest) (*response.RateResponse, error)
	GetRateByID(ctx context.Context, rateID string) (*response.RateResponse, error)
	ListRates(ctx context.Context, roomID string) ([]response.RateResponse, error)
	UpdateRate(ctx context.Context, rateID string, req *request.UpdateRateRequest) (*response.RateResponse, error)
	DeleteRate(ctx context.Context, rateID string) error
}

type rateService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRateService(repo *repository.Repository, log *zap.Logger) RateService {
	return &rateService{
		repo: repo,
		log:  log.With(zap.String("service", "rate")),
	}
}

func (s *rateService) CreateRate(ctx context.Context, req *request.CreateRateRequest) (*response.RateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rate validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomUUID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}

	subtotal, err := decimal.NewFromString(req.Subtotal)
	if err != nil || subtotal.IsNegative() {
		return nil, fmt.Errorf("validation failed: subtotal must be a non-negative decimal")
	}

	validFrom, validTo, err := parseRateWindow(req.ValidFrom, req.ValidTo)
	if err != nil {
		return nil, err
	}
	if req.MinNights != nil && req.MaxNights != nil && *req.MaxNights < *req.MinNights {
		return nil, fmt.Errorf("validation failed: max_nights must not be below min_nights")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	isDefault := false
	if req.IsDefault != nil {
		isDefault = *req.IsDefault
	}

	now := time.Now()
	rate := &entity.RoomRate{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:    roomUUID,
		Name:      req.Name,
		Type:      entity.RateType(req.Type),
		Subtotal:  subtotal,
		ValidFrom: validFrom,
		ValidTo:   validTo,
		ValidDays: req.ValidDays,
		MinNights: req.MinNights,
		MaxNights: req.MaxNights,
		IsActive:  isActive,
		IsDefault: isDefault,
	}
	rate.DeriveAmounts()

	// Create unsets any sibling default inside the same transaction
	if err := s.repo.Rate.Create(ctx, rate); err != nil {
		s.log.Error("Failed to create rate", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("create rate: %w", err)
	}

	s.log.Info("Rate created",
		zap.String("rate_id", rate.ID.String()),
		zap.String("room_id", req.RoomID),
		zap.Bool("is_default", isDefault))

	resp := response.RateToResponse(rate)
	return &resp, nil
}

func (s *rateService) GetRateByID(ctx context.Context, rateID string) (*response.RateResponse, error) {
	rate, err := s.findRate(ctx, rateID)
	if err != nil {
		return nil, err
	}

	resp := response.RateToResponse(rate)
	return &resp, nil
}

func (s *rateService) ListRates(ctx context.Context, roomID string) ([]response.RateResponse, error) {
	var rates []*entity.RoomRate
	var err error

	if roomID != "" {
		roomUUID, parseErr := uuid.Parse(roomID)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, parseErr)
		}
		rates, err = s.repo.Rate.FindByRoomID(ctx, roomUUID)
	} else {
		rates, err = s.repo.Rate.FindAll(ctx)
	}
	if err != nil {
		s.log.Error("Failed to list rates", zap.Error(err))
		return nil, fmt.Errorf("list rates: %w", err)
	}

	out := make([]response.RateResponse, len(rates))
	for i, rate := range rates {
		out[i] = response.RateToResponse(rate)
	}
	return out, nil
}

func (s *rateService) UpdateRate(ctx context.Context, rateID string, req *request.UpdateRateRequest) (*response.RateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rate validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rate, err := s.findRate(ctx, rateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rate.Name = *req.Name
	}
	if req.Type != nil {
		rate.Type = entity.RateType(*req.Type)
	}
	if req.Subtotal != nil {
		subtotal, err := decimal.NewFromString(*req.Subtotal)
		if err != nil || subtotal.IsNegative() {
			return nil, fmt.Errorf("validation failed: subtotal must be a non-negative decimal")
		}
		rate.Subtotal = subtotal
	}
	if req.ValidFrom != nil || req.ValidTo != nil {
		validFrom, validTo, err := parseRateWindow(req.ValidFrom, req.ValidTo)
		if err != nil {
			return nil, err
		}
		if req.ValidFrom != nil {
			rate.ValidFrom = validFrom
		}
		if req.ValidTo != nil {
			rate.ValidTo = validTo
		}
	}
	if req.ValidDays != nil {
		rate.ValidDays = req.ValidDays
	}
	if req.MinNights != nil {
		rate.MinNights = req.MinNights
	}
	if req.MaxNights != nil {
		rate.MaxNights = req.MaxNights
	}
	if rate.MinNights != nil && rate.MaxNights != nil && *rate.MaxNights < *rate.MinNights {
		return nil, fmt.Errorf("validation failed: max_nights must not be below min_nights")
	}
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}
	if req.IsDefault != nil {
		rate.IsDefault = *req.IsDefault
	}
	rate.DeriveAmounts()
	rate.UpdatedAt = time.Now()

	// Update unsets any sibling default inside the same transaction
	if err := s.repo.Rate.Update(ctx, rate); err != nil {
		s.log.Error("Failed to update rate", zap.Error(err), zap.String("rate_id", rateID))
		return nil, fmt.Errorf("update rate: %w", err)
	}

	s.log.Info("Rate updated", zap.String("rate_id", rateID))

	resp := response.RateToResponse(rate)
	return &resp, nil
}

func (s *rateService) DeleteRate(ctx context.Context, rateID string) error {
	rate, err := s.findRate(ctx, rateID)
	if err != nil {
		return err
	}

	if err := s.repo.Rate.Delete(ctx, rate.ID); err != nil {
		s.log.Error("Failed to delete rate", zap.Error(err), zap.String("rate_id", rateID))
		return fmt.Errorf("delete rate: %w", err)
	}

	s.log.Info("Rate deleted", zap.String("rate_id", rateID))
	return nil
}

func (s *rateService) findRate(ctx context.Context, rateID string) (*entity.RoomRate, error) {
	rateUUID, err := uuid.Parse(rateID)
	if err != nil {
		return nil, fmt.Errorf("invalid rate ID format %s: %w", rateID, err)
	}

	rate, err := s.repo.Rate.FindByID(ctx, rateUUID)
	if err != nil {
		s.log.Error("Failed to find rate", zap.Error(err), zap.String("rate_id", rateID))
		return nil, fmt.Errorf("find rate: %w", err)
	}
	if rate == nil {
		return nil, fmt.Errorf("rate %s not found", rateID)
	}
	return rate, nil
}

func parseRateWindow(from, to *string) (*time.Time, *time.Time, error) {
	var validFrom, validTo *time.Time
	if from != nil {
		parsed, err := utils.ParseDateStrict(*from)
		if err != nil {
			return nil, nil, fmt.Errorf("validation failed: %w", err)
		}
		validFrom = &parsed
	}
	if to != nil {
		parsed, err := utils.ParseDateStrict(*to)
		if err != nil {
			return nil, nil, fmt.Errorf("validation failed: %w", err)
		}
		validTo = &parsed
	}
	if validFrom != nil && validTo != nil && validTo.Before(*validFrom) {
		return nil, nil, fmt.Errorf("validation failed: valid_to must not be before valid_from")
	}
	return validFrom, validTo, nil
}
