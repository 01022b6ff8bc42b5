package attendance

import (
	"context"
	"time"
)

// AttendanceRepository persists attendance sessions. The backing table holds
// a unique index on (employee_id, date); Create translates the resulting
// conflict to ErrAlreadyCheckedIn so concurrent check-ins on the same day
// cannot produce a duplicate row.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the session for the given local day, or
	// ErrAttendanceNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// Update writes the check-out mutation. It only matches rows still in
	// checked_in status; zero rows affected reports ErrAlreadyCheckedOut.
	Update(ctx context.Context, att Attendance) error

	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
}
