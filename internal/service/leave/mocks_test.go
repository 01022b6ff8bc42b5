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

// ── Mock LeaveRequestRepository ──

type mockLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
	seq      int
}

func newMockLeaveRequestRepo() *mockLeaveRequestRepo {
	return &mockLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (m *mockLeaveRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.seq++
	req.ID = fmt.Sprintf("lr-%d", m.seq)
	m.requests[req.ID] = req
	return req, nil
}

func (m *mockLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	if req, ok := m.requests[id]; ok {
		return req, nil
	}
	return leave.LeaveRequest{}, leave.ErrRequestNotFound
}

func (m *mockLeaveRequestRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range m.requests {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (m *mockLeaveRequestRepo) ListAwaiting(_ context.Context, approverID string) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range m.requests {
		if req.CurrentApproverID == approverID && !req.Status.Decided() {
			result = append(result, req)
		}
	}
	return result, nil
}

func (m *mockLeaveRequestRepo) ListOverlappingMonth(_ context.Context, employeeID string, leaveType leave.LeaveType, statuses []leave.Status, ref time.Time) ([]leave.LeaveRequest, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var result []leave.LeaveRequest
	for _, req := range m.requests {
		if req.EmployeeID != employeeID || req.Type != leaveType {
			continue
		}
		statusMatch := false
		for _, s := range statuses {
			if req.Status == s {
				statusMatch = true
				break
			}
		}
		if !statusMatch {
			continue
		}
		if req.StartAt.Before(monthEnd) && !req.EndAt.Before(monthStart) {
			result = append(result, req)
		}
	}
	return result, nil
}

func (m *mockLeaveRequestRepo) Decide(_ context.Context, req leave.LeaveRequest, expected leave.Status, entry leave.HistoryEntry) error {
	existing, ok := m.requests[req.ID]
	if !ok {
		return leave.ErrRequestNotFound
	}
	if existing.Status != expected {
		return leave.ErrAlreadyProcessed
	}

	entry.CreatedAt = time.Now()
	req.History = append(existing.History, entry)
	m.requests[req.ID] = req
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]employee.Employee
	approvers map[string]string
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[string]employee.Employee),
		approvers: make(map[string]string),
	}
}

func (m *mockEmployeeRepo) add(emp employee.Employee, approverID string) {
	m.employees[emp.ID] = emp
	if approverID != "" {
		m.approvers[emp.ID] = approverID
	}
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := m.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) GetApprover(_ context.Context, employeeID string) (employee.Employee, error) {
	approverID, ok := m.approvers[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrApproverNotFound
	}
	approver, ok := m.employees[approverID]
	if !ok {
		return employee.Employee{}, employee.ErrApproverNotFound
	}
	return approver, nil
}

func (m *mockEmployeeRepo) ListByRole(_ context.Context, role employee.Role) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range m.employees {
		if emp.Role == role {
			result = append(result, emp)
		}
	}
	return result, nil
}

// ── Stub CalendarService ──

// stubCalendarService answers working-day questions from a fixed rest
// weekday and holiday set, without a store behind it.
type stubCalendarService struct {
	restWeekday time.Weekday
	holidays    map[string]bool // "2006-01-02"
}

func newStubCalendarService() *stubCalendarService {
	return &stubCalendarService{
		restWeekday: time.Sunday,
		holidays:    make(map[string]bool),
	}
}

func (s *stubCalendarService) IsNonWorkingDay(_ context.Context, date time.Time) (bool, error) {
	if date.Weekday() == s.restWeekday {
		return true, nil
	}
	return s.holidays[date.Format("2006-01-02")], nil
}

func (s *stubCalendarService) BusinessDaysBetween(ctx context.Context, start, end time.Time) (int, error) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	if last.Before(day) {
		return 0, calendar.ErrInvalidRange
	}

	count := 0
	for !day.After(last) {
		nonWorking, _ := s.IsNonWorkingDay(ctx, day)
		if !nonWorking {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count, nil
}

func (s *stubCalendarService) CreateHoliday(_ context.Context, _ calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	return calendar.HolidayResponse{}, nil
}

func (s *stubCalendarService) ListHolidays(_ context.Context) ([]calendar.HolidayResponse, error) {
	return nil, nil
}

func (s *stubCalendarService) DeleteHoliday(_ context.Context, _ string) error {
	return nil
}

func (s *stubCalendarService) GetSettings(_ context.Context) (calendar.SettingsResponse, error) {
	return calendar.SettingsResponse{}, nil
}

func (s *stubCalendarService) UpdateSettings(_ context.Context, _ calendar.UpdateSettingsRequest, _ string) (calendar.SettingsResponse, error) {
	return calendar.SettingsResponse{}, nil
}

// ── Stub PolicyService ──

type stubPolicyService struct {
	policies map[policy.Department]policy.DepartmentPolicy
}

func newStubPolicyService(policies ...policy.DepartmentPolicy) *stubPolicyService {
	s := &stubPolicyService{policies: make(map[policy.Department]policy.DepartmentPolicy)}
	for _, p := range policies {
		s.policies[p.Department] = p
	}
	return s
}

func (s *stubPolicyService) Resolve(_ context.Context, department policy.Department) (policy.DepartmentPolicy, bool, error) {
	if p, ok := s.policies[department]; ok {
		return p, true, nil
	}
	return policy.DefaultPolicy(department), false, nil
}

func (s *stubPolicyService) List(_ context.Context) ([]policy.PolicyResponse, error) {
	return nil, nil
}

func (s *stubPolicyService) Get(_ context.Context, _ policy.Department) (policy.PolicyResponse, error) {
	return policy.PolicyResponse{}, nil
}

func (s *stubPolicyService) Upsert(_ context.Context, _ policy.UpsertPolicyRequest, _ string) (policy.PolicyResponse, error) {
	return policy.PolicyResponse{}, nil
}
