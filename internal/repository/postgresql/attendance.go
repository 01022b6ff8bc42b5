package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/attendance"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, department, date, check_in, check_out,
	work_location, location_details, off_site_reason, customer_details,
	is_late, late_reason,
	is_overtime, overtime_reason, overtime_hours, overtime_minutes, late_checkout_reason,
	policy_check_in_hour, policy_check_in_minute, policy_check_out_hour, policy_check_out_minute,
	status, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Department, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.WorkLocation, &att.LocationDetails, &att.OffSiteReason, &att.CustomerDetails,
		&att.IsLate, &att.LateReason,
		&att.IsOvertime, &att.OvertimeReason, &att.OvertimeHours, &att.OvertimeMinutes, &att.LateCheckoutReason,
		&att.PolicyCheckIn.Hour, &att.PolicyCheckIn.Minute, &att.PolicyCheckOut.Hour, &att.PolicyCheckOut.Minute,
		&att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. A unique index on
// (employee_id, date) makes the second of two racing check-ins fail; that
// conflict is reported as ErrAlreadyCheckedIn, never as a storage error.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.ID == "" {
		att.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, department, date, check_in,
			work_location, location_details, off_site_reason, customer_details,
			is_late, late_reason,
			policy_check_in_hour, policy_check_in_minute, policy_check_out_hour, policy_check_out_minute,
			status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		string(att.Department),
		att.Date,
		att.CheckIn,
		string(att.WorkLocation),
		att.LocationDetails,
		att.OffSiteReason,
		att.CustomerDetails,
		att.IsLate,
		att.LateReason,
		att.PolicyCheckIn.Hour,
		att.PolicyCheckIn.Minute,
		att.PolicyCheckOut.Hour,
		att.PolicyCheckOut.Minute,
		string(att.Status),
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository. Only the check-out
// mutation exists; the status guard makes it a compare-and-set so a record
// cannot be checked out twice.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $2,
			is_overtime = $3,
			overtime_reason = $4,
			overtime_hours = $5,
			overtime_minutes = $6,
			late_checkout_reason = $7,
			status = $8,
			updated_at = NOW()
		WHERE id = $1
		  AND status = $9
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.CheckOut,
		att.IsOvertime,
		att.OvertimeReason,
		att.OvertimeHours,
		att.OvertimeMinutes,
		att.LateCheckoutReason,
		string(attendance.StatusCheckedOut),
		string(attendance.StatusCheckedIn),
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}

	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := `WHERE employee_id = $1`
	args := []interface{}{employeeID}

	if filter.Month != "" {
		where += ` AND to_char(date, 'YYYY-MM') = $2`
		args = append(args, filter.Month)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances
		%s
		ORDER BY date DESC
		LIMIT %d OFFSET %d
	`, attendanceColumns, where, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}
