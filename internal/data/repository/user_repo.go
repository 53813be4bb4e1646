package repository

import (
	"context"
	"fmt"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// StaffStats aggregates staff counts for the admin dashboard.
type StaffStats struct {
	Total        int64
	ByRole       map[string]int64
	ByDepartment map[string]int64
	ByStatus     map[string]int64
}

type UserRepository interface {
	CreateWithAttendance(ctx context.Context, user *entity.User, attendance *entity.Attendance) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*StaffStats, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, username, email, password, first_name, last_name, phone, role, department, position, employment_status, hire_date, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Role,
		&user.Department,
		&user.Position,
		&user.EmploymentStatus,
		&user.HireDate,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateWithAttendance writes the staff record and its seeded attendance row
// in one transaction.
func (r *userRepository) CreateWithAttendance(ctx context.Context, user *entity.User, attendance *entity.Attendance) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin staff transaction", zap.Error(err))
		return fmt.Errorf("begin staff transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, username, email, password, first_name, last_name, phone, role, department, position, employment_status, hire_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.Department,
		user.Position,
		user.EmploymentStatus,
		user.HireDate,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, mapPgError(err))
	}

	if attendance != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO attendances (id, user_id, date, status, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`,
			attendance.ID,
			attendance.UserID,
			attendance.Date,
			attendance.Status,
			attendance.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to seed attendance",
				zap.Error(err),
				zap.String("user_id", user.ID.String()),
			)
			return fmt.Errorf("seed attendance for user %s: %w", user.ID.String(), mapPgError(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit staff transaction", zap.Error(err))
		return fmt.Errorf("commit user %s: %w", user.Email, mapPgError(err))
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, last_name = $5, phone = $6,
		    role = $7, department = $8, position = $9, employment_status = $10,
		    hire_date = $11, is_active = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.Department,
		user.Position,
		user.EmploymentStatus,
		user.HireDate,
		user.IsActive,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), mapPgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to update user password",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update user %s password: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), mapPgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	r.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (r *userRepository) Stats(ctx context.Context) (*StaffStats, error) {
	stats := &StaffStats{
		ByRole:       make(map[string]int64),
		ByDepartment: make(map[string]int64),
		ByStatus:     make(map[string]int64),
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.Total); err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	groupings := []struct {
		query  string
		target map[string]int64
	}{
		{`SELECT role, COUNT(*) FROM users GROUP BY role`, stats.ByRole},
		{`SELECT COALESCE(department, 'SIN_DEPARTAMENTO'), COUNT(*) FROM users GROUP BY department`, stats.ByDepartment},
		{`SELECT employment_status, COUNT(*) FROM users GROUP BY employment_status`, stats.ByStatus},
	}

	for _, grouping := range groupings {
		rows, err := r.db.Query(ctx, grouping.query)
		if err != nil {
			r.log.Error("Failed to query staff stats", zap.Error(err))
			return nil, fmt.Errorf("query staff stats: %w", err)
		}

		for rows.Next() {
			var key string
			var count int64
			if err := rows.Scan(&key, &count); err != nil {
				rows.Close()
				r.log.Error("Failed to scan staff stats row", zap.Error(err))
				return nil, fmt.Errorf("scan staff stats row: %w", err)
			}
			grouping.target[key] = count
		}
		rows.Close()
	}

	return stats, nil
}
