package request

type CreateStaffRequest struct {
	Username   string  `json:"username" validate:"required,min=3,max=50"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6"`
	FirstName  string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string  `json:"last_name" validate:"max=100"`
	Phone      *string `json:"phone,omitempty"`
	Role       string  `json:"role" validate:"required,oneof=SUPERADMIN ADMIN MANAGER RECEPTIONIST HOUSEKEEPING"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	HireDate   string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
}

type UpdateStaffRequest struct {
	Username         *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName        *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName         *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Phone            *string `json:"phone,omitempty"`
	Role             *string `json:"role,omitempty" validate:"omitempty,oneof=SUPERADMIN ADMIN MANAGER RECEPTIONIST HOUSEKEEPING"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE ON_LEAVE TERMINATED"`
	IsActive         *bool   `json:"is_active,omitempty"`
}
