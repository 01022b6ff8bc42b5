package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/attendance"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
)

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := attKey(att.EmployeeID, att.Date)
	if _, ok := m.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	m.seq++
	att.ID = fmt.Sprintf("att-%d", m.seq)
	m.records[key] = att
	return att, nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	if att, ok := m.records[attKey(employeeID, date)]; ok {
		return att, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *mockAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	key := attKey(att.EmployeeID, att.Date)
	existing, ok := m.records[key]
	if !ok || existing.Status != attendance.StatusCheckedIn {
		return attendance.ErrAlreadyCheckedOut
	}
	m.records[key] = att
	return nil
}

func (m *mockAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _ attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var result []attendance.Attendance
	for _, att := range m.records {
		if att.EmployeeID == employeeID {
			result = append(result, att)
		}
	}
	return result, int64(len(result)), nil
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
