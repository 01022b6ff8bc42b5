package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/calendar"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/leave"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
)

// undecidedOrApproved are the statuses that consume quota: approved requests
// and requests still travelling the ladder (escalated is pending at a higher
// rung, not a decision).
var undecidedOrApproved = []leave.Status{
	leave.StatusPending,
	leave.StatusApproved,
	leave.StatusEscalated,
}

type EligibilityServiceImpl struct {
	policyService   policy.PolicyService
	calendarService calendar.CalendarService
	leave.LeaveRequestRepository

	now func() time.Time
}

func NewEligibilityService(
	policyService policy.PolicyService,
	calendarService calendar.CalendarService,
	requestRepo leave.LeaveRequestRepository,
) *EligibilityServiceImpl {
	return &EligibilityServiceImpl{
		policyService:          policyService,
		calendarService:        calendarService,
		LeaveRequestRepository: requestRepo,
	}
}

func (s *EligibilityServiceImpl) refTime() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// RemainingCasualDays implements leave.EligibilityService.
func (s *EligibilityServiceImpl) RemainingCasualDays(ctx context.Context, emp employee.Employee) (int, error) {
	pol, _, err := s.policyService.Resolve(ctx, emp.Department)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve department policy: %w", err)
	}

	used, err := s.casualDaysUsed(ctx, emp.ID)
	if err != nil {
		return 0, err
	}

	remaining := pol.MaxMonthlyCasualDays - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (s *EligibilityServiceImpl) casualDaysUsed(ctx context.Context, employeeID string) (int, error) {
	ref := s.refTime()
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	requests, err := s.LeaveRequestRepository.ListOverlappingMonth(ctx, employeeID, leave.LeaveTypeCasual, undecidedOrApproved, ref)
	if err != nil {
		return 0, fmt.Errorf("failed to list casual leave requests: %w", err)
	}

	used := 0
	for _, req := range requests {
		// Only the slice of the request inside the current month counts
		// against this month's quota.
		start := req.StartAt
		if start.Before(monthStart) {
			start = monthStart
		}
		end := req.EndAt
		if end.After(monthEnd) {
			end = monthEnd
		}

		days, err := s.calendarService.BusinessDaysBetween(ctx, start, end)
		if err != nil {
			return 0, fmt.Errorf("failed to count business days: %w", err)
		}
		used += days
	}

	return used, nil
}

// RemainingPermissionHours implements leave.EligibilityService.
func (s *EligibilityServiceImpl) RemainingPermissionHours(ctx context.Context, emp employee.Employee) (int, error) {
	pol, _, err := s.policyService.Resolve(ctx, emp.Department)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve department policy: %w", err)
	}

	used, err := s.permissionHoursUsed(ctx, emp.ID)
	if err != nil {
		return 0, err
	}

	remaining := pol.MaxMonthlyPermissionHours - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (s *EligibilityServiceImpl) permissionHoursUsed(ctx context.Context, employeeID string) (int, error) {
	ref := s.refTime()
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	requests, err := s.LeaveRequestRepository.ListOverlappingMonth(ctx, employeeID, leave.LeaveTypePermission, undecidedOrApproved, ref)
	if err != nil {
		return 0, fmt.Errorf("failed to list permission requests: %w", err)
	}

	used := 0
	for _, req := range requests {
		// Permission quota is charged to the month the absence starts in.
		if req.StartAt.Before(monthStart) || !req.StartAt.Before(monthEnd) {
			continue
		}
		used += req.DurationHours()
	}

	return used, nil
}

// CheckEligibility implements leave.EligibilityService. Departments without
// a configured policy row answer eligible (fail-open); sick and vacation
// leave carry no monthly quota at all.
func (s *EligibilityServiceImpl) CheckEligibility(ctx context.Context, emp employee.Employee, leaveType leave.LeaveType) (leave.EligibilityResult, error) {
	if !leaveType.HasMonthlyQuota() {
		return leave.EligibilityResult{Eligible: true}, nil
	}

	pol, configured, err := s.policyService.Resolve(ctx, emp.Department)
	if err != nil {
		return leave.EligibilityResult{}, fmt.Errorf("failed to resolve department policy: %w", err)
	}
	if !configured {
		return leave.EligibilityResult{Eligible: true}, nil
	}

	switch leaveType {
	case leave.LeaveTypeCasual:
		remaining, err := s.RemainingCasualDays(ctx, emp)
		if err != nil {
			return leave.EligibilityResult{}, err
		}
		if remaining <= 0 {
			return leave.EligibilityResult{
				Eligible: false,
				Reason:   fmt.Sprintf("monthly casual leave limit of %d day(s) is exhausted", pol.MaxMonthlyCasualDays),
			}, nil
		}

	case leave.LeaveTypePermission:
		remaining, err := s.RemainingPermissionHours(ctx, emp)
		if err != nil {
			return leave.EligibilityResult{}, err
		}
		if remaining <= 0 {
			return leave.EligibilityResult{
				Eligible: false,
				Reason:   fmt.Sprintf("monthly permission limit of %d hour(s) is exhausted", pol.MaxMonthlyPermissionHours),
			}, nil
		}
	}

	return leave.EligibilityResult{Eligible: true}, nil
}
