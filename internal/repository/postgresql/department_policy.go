package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

// GetByDepartment implements policy.PolicyRepository.
func (r *policyRepository) GetByDepartment(ctx context.Context, department policy.Department) (policy.DepartmentPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, check_in_hour, check_in_minute, check_out_hour, check_out_minute,
			   allow_off_site, allow_overtime, max_monthly_permission_hours, max_monthly_casual_days,
			   updated_by, created_at, updated_at
		FROM department_policies
		WHERE department = $1
	`

	var p policy.DepartmentPolicy
	err := q.QueryRow(ctx, query, string(department)).Scan(
		&p.Department,
		&p.CheckInTime.Hour, &p.CheckInTime.Minute,
		&p.CheckOutTime.Hour, &p.CheckOutTime.Minute,
		&p.AllowOffSite, &p.AllowOvertime,
		&p.MaxMonthlyPermissionHours, &p.MaxMonthlyCasualDays,
		&p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.DepartmentPolicy{}, policy.ErrPolicyNotFound
		}
		return policy.DepartmentPolicy{}, fmt.Errorf("failed to get department policy: %w", err)
	}

	return p, nil
}

// List implements policy.PolicyRepository.
func (r *policyRepository) List(ctx context.Context) ([]policy.DepartmentPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, check_in_hour, check_in_minute, check_out_hour, check_out_minute,
			   allow_off_site, allow_overtime, max_monthly_permission_hours, max_monthly_casual_days,
			   updated_by, created_at, updated_at
		FROM department_policies
		ORDER BY department
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list department policies: %w", err)
	}
	defer rows.Close()

	var policies []policy.DepartmentPolicy
	for rows.Next() {
		var p policy.DepartmentPolicy
		if err := rows.Scan(
			&p.Department,
			&p.CheckInTime.Hour, &p.CheckInTime.Minute,
			&p.CheckOutTime.Hour, &p.CheckOutTime.Minute,
			&p.AllowOffSite, &p.AllowOvertime,
			&p.MaxMonthlyPermissionHours, &p.MaxMonthlyCasualDays,
			&p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan department policy: %w", err)
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}

// Upsert implements policy.PolicyRepository.
func (r *policyRepository) Upsert(ctx context.Context, p policy.DepartmentPolicy) (policy.DepartmentPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO department_policies (
			department, check_in_hour, check_in_minute, check_out_hour, check_out_minute,
			allow_off_site, allow_overtime, max_monthly_permission_hours, max_monthly_casual_days,
			updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (department) DO UPDATE SET
			check_in_hour = EXCLUDED.check_in_hour,
			check_in_minute = EXCLUDED.check_in_minute,
			check_out_hour = EXCLUDED.check_out_hour,
			check_out_minute = EXCLUDED.check_out_minute,
			allow_off_site = EXCLUDED.allow_off_site,
			allow_overtime = EXCLUDED.allow_overtime,
			max_monthly_permission_hours = EXCLUDED.max_monthly_permission_hours,
			max_monthly_casual_days = EXCLUDED.max_monthly_casual_days,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		string(p.Department),
		p.CheckInTime.Hour, p.CheckInTime.Minute,
		p.CheckOutTime.Hour, p.CheckOutTime.Minute,
		p.AllowOffSite, p.AllowOvertime,
		p.MaxMonthlyPermissionHours, p.MaxMonthlyCasualDays,
		p.UpdatedBy,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return policy.DepartmentPolicy{}, fmt.Errorf("failed to upsert department policy: %w", err)
	}

	return p, nil
}
