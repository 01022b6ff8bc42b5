package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/leave"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
)

// March 2026: the 1st, 8th, 15th, 22nd and 29th are Sundays.
var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func salesPolicy() policy.DepartmentPolicy {
	return policy.DepartmentPolicy{
		Department:                policy.DepartmentSales,
		CheckInTime:               policy.NewClock(9, 0),
		CheckOutTime:              policy.NewClock(18, 0),
		MaxMonthlyPermissionHours: 2,
		MaxMonthlyCasualDays:      1,
	}
}

func salesEmployee() employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		Name:       "Asha Verma",
		Department: policy.DepartmentSales,
		Role:       employee.RoleEmployee,
	}
}

func newTestEligibility(repo *mockLeaveRequestRepo) *EligibilityServiceImpl {
	svc := NewEligibilityService(newStubPolicyService(salesPolicy()), newStubCalendarService(), repo)
	svc.now = func() time.Time { return testNow }
	return svc
}

func seedRequest(repo *mockLeaveRequestRepo, leaveType leave.LeaveType, status leave.Status, start, end time.Time) {
	repo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: "emp-1",
		Type:       leaveType,
		StartAt:    start,
		EndAt:      end,
		Status:     status,
	})
}

func TestCasualQuotaExhaustedByApprovedDay(t *testing.T) {
	repo := newMockLeaveRequestRepo()
	seedRequest(repo, leave.LeaveTypeCasual, leave.StatusApproved,
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC))

	svc := newTestEligibility(repo)

	remaining, err := svc.RemainingCasualDays(context.Background(), salesEmployee())
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	result, err := svc.CheckEligibility(context.Background(), salesEmployee(), leave.LeaveTypeCasual)
	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Contains(t, result.Reason, "1 day(s)")
}

func TestPendingRequestsConsumeQuota(t *testing.T) {
	repo := newMockLeaveRequestRepo()
	seedRequest(repo, leave.LeaveTypeCasual, leave.StatusPending,
		time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 18, 18, 0, 0, 0, time.UTC))

	svc := newTestEligibility(repo)

	result, err := svc.CheckEligibility(context.Background(), salesEmployee(), leave.LeaveTypeCasual)
	require.NoError(t, err)
	assert.False(t, result.Eligible)
}

func TestPermissionHoursExhausted(t *testing.T) {
	repo := newMockLeaveRequestRepo()
	seedRequest(repo, leave.LeaveTypePermission, leave.StatusApproved,
		time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 11, 0, 0, 0, time.UTC))

	svc := newTestEligibility(repo)

	remaining, err := svc.RemainingPermissionHours(context.Background(), salesEmployee())
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	result, err := svc.CheckEligibility(context.Background(), salesEmployee(), leave.LeaveTypePermission)
	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Contains(t, result.Reason, "2 hour(s)")
}

func TestEligibilityFailsOpenWithoutPolicy(t *testing.T) {
	repo := newMockLeaveRequestRepo()
	seedRequest(repo, leave.LeaveTypeCasual, leave.StatusApproved,
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC))

	svc := newTestEligibility(repo)

	// No configured row for technical: the engine answers eligible rather
	// than guessing a limit.
	technical := salesEmployee()
	technical.Department = policy.DepartmentTechnical

	result, err := svc.CheckEligibility(context.Background(), technical, leave.LeaveTypeCasual)
	require.NoError(t, err)
	assert.True(t, result.Eligible)
}

func TestSickLeaveHasNoQuota(t *testing.T) {
	repo := newMockLeaveRequestRepo()
	seedRequest(repo, leave.LeaveTypeCasual, leave.StatusApproved,
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC))

	svc := newTestEligibility(repo)

	result, err := svc.CheckEligibility(context.Background(), salesEmployee(), leave.LeaveTypeSick)
	require.NoError(t, err)
	assert.True(t, result.Eligible)
}

func TestCasualUsageClampedToCurrentMonth(t *testing.T) {
	repo := newMockLeaveRequestRepo()
	// Spans February into March; only March 2-3 (working days inside this
	// month) count against March's quota.
	seedRequest(repo, leave.LeaveTypeCasual, leave.StatusApproved,
		time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC))

	svc := newTestEligibility(repo)

	remaining, err := svc.RemainingCasualDays(context.Background(), salesEmployee())
	require.NoError(t, err)

	// Two used days against a quota of one still floors at zero.
	assert.Equal(t, 0, remaining)
}

func TestRejectedRequestsReleaseQuota(t *testing.T) {
	repo := newMockLeaveRequestRepo()
	seedRequest(repo, leave.LeaveTypeCasual, leave.StatusRejected,
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC))

	svc := newTestEligibility(repo)

	remaining, err := svc.RemainingCasualDays(context.Background(), salesEmployee())
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
