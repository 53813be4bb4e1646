package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type StaffResponse struct {
	ID               string                  `json:"id"`
	Username         string                  `json:"username"`
	Email            string                  `json:"email"`
	FirstName        string                  `json:"first_name"`
	LastName         string                  `json:"last_name"`
	FullName         string                  `json:"full_name"`
	Phone            *string                 `json:"phone,omitempty"`
	Role             entity.UserRole         `json:"role"`
	Department       *string                 `json:"department,omitempty"`
	Position         *string                 `json:"position,omitempty"`
	EmploymentStatus entity.EmploymentStatus `json:"employment_status"`
	HireDate         string                  `json:"hire_date"`
	IsActive         bool                    `json:"is_active"`
	CreatedAt        time.Time               `json:"created_at"`
}

type StaffStatsResponse struct {
	Total        int64            `json:"total"`
	ByRole       map[string]int64 `json:"by_role"`
	ByDepartment map[string]int64 `json:"by_department"`
	ByStatus     map[string]int64 `json:"by_status"`
}

func StaffToResponse(user *entity.User) StaffResponse {
	return StaffResponse{
		ID:               user.ID.String(),
		Username:         user.Username,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		FullName:         user.FullName(),
		Phone:            user.Phone,
		Role:             user.Role,
		Department:       user.Department,
		Position:         user.Position,
		EmploymentStatus: user.EmploymentStatus,
		HireDate:         user.HireDate.Format("2006-01-02"),
		IsActive:         user.IsActive,
		CreatedAt:        user.CreatedAt,
	}
}
