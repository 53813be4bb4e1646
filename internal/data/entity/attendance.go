package entity

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLeave   AttendanceStatus = "LEAVE"
)

// Attendance rows are seeded together with the staff record and appended
// daily afterwards.
type Attendance struct {
	BaseSimple
	UserID uuid.UUID        `db:"user_id"`
	Date   time.Time        `db:"date"`
	Status AttendanceStatus `db:"status"`
}
