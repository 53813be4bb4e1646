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

// StaffListFilters narrows the staff listing. Zero values mean "no filter".
type StaffListFilters struct {
	Search     string
	Department string
	Status     string
}

type StaffService interface {
	CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error)
	GetStaffByID(ctx context.Context, staffID string) (*response.StaffResponse, error)
	ListStaff(ctx context.Context, filters StaffListFilters) ([]response.StaffResponse, error)
	UpdateStaff(ctx context.Context, staffID string, req *request.UpdateStaffRequest) (*response.StaffResponse, error)
	DeleteStaff(ctx context.Context, staffID string) error
	ResetPassword(ctx context.Context, staffID string) error
	Stats(ctx context.Context) (*response.StaffStatsResponse, error)
}

type staffService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewStaffService(repo *repository.Repository, config *utils.Config, log *zap.Logger) StaffService {
	return &staffService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "staff")),
	}
}

func (s *staffService) CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create staff validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check staff email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check staff email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("staff email %s: %w", req.Email, repository.ErrDuplicate)
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check staff username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check staff username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("staff username %s: %w", req.Username, repository.ErrDuplicate)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	hireDate, err := utils.ParseDateStrict(req.HireDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     hashedPassword,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Role:             entity.UserRole(req.Role),
		Department:       req.Department,
		Position:         req.Position,
		EmploymentStatus: entity.EmploymentActive,
		HireDate:         hireDate,
		IsActive:         true,
	}

	attendance := &entity.Attendance{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: user.ID,
		Date:   now,
		Status: entity.AttendancePresent,
	}

	// Staff record and its first attendance row land together or not at all
	if err := s.repo.User.CreateWithAttendance(ctx, user, attendance); err != nil {
		s.log.Error("Failed to create staff", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create staff: %w", err)
	}

	s.log.Info("Staff created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", req.Role))

	resp := response.StaffToResponse(user)
	return &resp, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, staffID string) (*response.StaffResponse, error) {
	user, err := s.findStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	resp := response.StaffToResponse(user)
	return &resp, nil
}

func (s *staffService) ListStaff(ctx context.Context, filters StaffListFilters) ([]response.StaffResponse, error) {
	staff, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list staff", zap.Error(err))
		return nil, fmt.Errorf("list staff: %w", err)
	}

	staff = SearchStaff(staff, filters.Search)
	if filters.Department != "" {
		staff = FilterStaffByDepartment(staff, filters.Department)
	}
	if filters.Status != "" {
		staff = FilterStaffByStatus(staff, entity.EmploymentStatus(filters.Status))
	}

	out := make([]response.StaffResponse, len(staff))
	for i, user := range staff {
		out[i] = response.StaffToResponse(user)
	}
	return out, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, staffID string, req *request.UpdateStaffRequest) (*response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update staff validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.Department != nil {
		user.Department = req.Department
	}
	if req.Position != nil {
		user.Position = req.Position
	}
	if req.EmploymentStatus != nil {
		user.EmploymentStatus = entity.EmploymentStatus(*req.EmploymentStatus)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update staff", zap.Error(err), zap.String("user_id", staffID))
		return nil, fmt.Errorf("update staff: %w", err)
	}

	s.log.Info("Staff updated", zap.String("user_id", staffID))

	resp := response.StaffToResponse(user)
	return &resp, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, staffID string) error {
	user, err := s.findStaff(ctx, staffID)
	if err != nil {
		return err
	}

	if err := s.repo.User.Delete(ctx, user.ID); err != nil {
		s.log.Error("Failed to delete staff", zap.Error(err), zap.String("user_id", staffID))
		return fmt.Errorf("delete staff: %w", err)
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions of deleted staff", zap.Error(err), zap.String("user_id", staffID))
	}

	s.log.Info("Staff deleted", zap.String("user_id", staffID))
	return nil
}

func (s *staffService) ResetPassword(ctx context.Context, staffID string) error {
	user, err := s.findStaff(ctx, staffID)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(s.config.Staff.DefaultPassword)
	if err != nil {
		s.log.Error("Failed to hash default password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", staffID))
		return fmt.Errorf("reset password: %w", err)
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions after password reset", zap.Error(err), zap.String("user_id", staffID))
	}

	s.log.Info("Staff password reset", zap.String("user_id", staffID))
	return nil
}

func (s *staffService) Stats(ctx context.Context) (*response.StaffStatsResponse, error) {
	stats, err := s.repo.User.Stats(ctx)
	if err != nil {
		s.log.Error("Failed to load staff stats", zap.Error(err))
		return nil, fmt.Errorf("load staff stats: %w", err)
	}

	return &response.StaffStatsResponse{
		Total:        stats.Total,
		ByRole:       stats.ByRole,
		ByDepartment: stats.ByDepartment,
		ByStatus:     stats.ByStatus,
	}, nil
}

func (s *staffService) findStaff(ctx context.Context, staffID string) (*entity.User, error) {
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		return nil, fmt.Errorf("invalid staff ID format %s: %w", staffID, err)
	}

	user, err := s.repo.User.FindByID(ctx, staffUUID)
	if err != nil {
		s.log.Error("Failed to find staff", zap.Error(err), zap.String("user_id", staffID))
		return nil, fmt.Errorf("find staff: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("staff %s not found", staffID)
	}
	return user, nil
}
