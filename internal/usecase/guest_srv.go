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
	"go.uber.org/zap"
)

type GuestService interface {
	CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error)
	ListGuests(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error)
}

type guestService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGuestService(repo *repository.Repository, log *zap.Logger) GuestService {
	return &guestService{
		repo: repo,
		log:  log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create guest validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Guest.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check guest email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check guest email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("guest email %s: %w", req.Email, repository.ErrDuplicate)
	}

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		s.log.Error("Failed to create guest", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create guest: %w", err)
	}

	s.log.Info("Guest created",
		zap.String("guest_id", guest.ID.String()),
		zap.String("email", guest.Email))

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error) {
	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("invalid guest ID format %s: %w", guestID, err)
	}

	guest, err := s.repo.Guest.FindByID(ctx, guestUUID)
	if err != nil {
		s.log.Error("Failed to get guest", zap.Error(err), zap.String("guest_id", guestID))
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %s not found", guestID)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) ListGuests(ctx context.Context, search string, page request.PaginatedRequest) (*response.PaginatedResponse[response.GuestResponse], error) {
	limit := page.Limit()
	offset := utils.CalculateOffset(page.Page, limit)

	// Search filters in memory, so it pages over the filtered set
	if search != "" {
		guests, err := s.repo.Guest.FindAll(ctx)
		if err != nil {
			s.log.Error("Failed to list guests", zap.Error(err))
			return nil, fmt.Errorf("list guests: %w", err)
		}
		guests = SearchGuests(guests, search)

		total := int64(len(guests))
		if offset > len(guests) {
			offset = len(guests)
		}
		end := offset + limit
		if end > len(guests) {
			end = len(guests)
		}
		guests = guests[offset:end]

		out := make([]response.GuestResponse, len(guests))
		for i, guest := range guests {
			out[i] = response.GuestToResponse(guest)
		}
		return response.NewPaginatedResponse(out, page.Page, limit, total), nil
	}

	total, err := s.repo.Guest.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count guests", zap.Error(err))
		return nil, fmt.Errorf("count guests: %w", err)
	}

	guests, err := s.repo.Guest.FindPage(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list guests", zap.Error(err))
		return nil, fmt.Errorf("list guests: %w", err)
	}

	out := make([]response.GuestResponse, len(guests))
	for i, guest := range guests {
		out[i] = response.GuestToResponse(guest)
	}
	return response.NewPaginatedResponse(out, page.Page, limit, total), nil
}
