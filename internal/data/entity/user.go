package entity

import "time"

type UserRole string

const (
	RoleSuperAdmin   UserRole = "SUPERADMIN"
	RoleAdmin        UserRole = "ADMIN"
	RoleManager      UserRole = "MANAGER"
	RoleReceptionist UserRole = "RECEPTIONIST"
	RoleHousekeeping UserRole = "HOUSEKEEPING"
)

type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "ACTIVE"
	EmploymentInactive   EmploymentStatus = "INACTIVE"
	EmploymentOnLeave    EmploymentStatus = "ON_LEAVE"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
)

// User is a staff member.
type User struct {
	Base
	Username         string           `db:"username"`
	Email            string           `db:"email"`
	PasswordHash     string           `db:"password"`
	FirstName        string           `db:"first_name"`
	LastName         string           `db:"last_name"`
	Phone            *string          `db:"phone"`
	Role             UserRole         `db:"role"`
	Department       *string          `db:"department"`
	Position         *string          `db:"position"`
	EmploymentStatus EmploymentStatus `db:"employment_status"`
	HireDate         time.Time        `db:"hire_date"`
	IsActive         bool             `db:"is_active"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user can manage rates and staff.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
