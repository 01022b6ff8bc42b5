package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
)

// ── Mock PolicyRepository ──

type mockPolicyRepo struct {
	policies map[policy.Department]policy.DepartmentPolicy
}

func newMockPolicyRepo() *mockPolicyRepo {
	return &mockPolicyRepo{policies: make(map[policy.Department]policy.DepartmentPolicy)}
}

func (m *mockPolicyRepo) GetByDepartment(_ context.Context, department policy.Department) (policy.DepartmentPolicy, error) {
	if p, ok := m.policies[department]; ok {
		return p, nil
	}
	return policy.DepartmentPolicy{}, policy.ErrPolicyNotFound
}

func (m *mockPolicyRepo) List(_ context.Context) ([]policy.DepartmentPolicy, error) {
	var result []policy.DepartmentPolicy
	for _, p := range m.policies {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPolicyRepo) Upsert(_ context.Context, p policy.DepartmentPolicy) (policy.DepartmentPolicy, error) {
	m.policies[p.Department] = p
	return p, nil
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	svc := NewPolicyService(newMockPolicyRepo())

	p, configured, err := svc.Resolve(context.Background(), policy.DepartmentTechnical)
	require.NoError(t, err)

	assert.False(t, configured)
	assert.Equal(t, "09:00", p.CheckInTime.String())
	assert.Equal(t, "18:00", p.CheckOutTime.String())
	assert.False(t, p.AllowOffSite)
	assert.False(t, p.AllowOvertime)
	assert.Equal(t, 2, p.MaxMonthlyPermissionHours)
	assert.Equal(t, 1, p.MaxMonthlyCasualDays)
}

func TestUpsertThenResolve(t *testing.T) {
	svc := NewPolicyService(newMockPolicyRepo())

	_, err := svc.Upsert(context.Background(), policy.UpsertPolicyRequest{
		Department:                "technical",
		CheckInTime:               "08:30",
		CheckOutTime:              "17:30",
		AllowOvertime:             true,
		MaxMonthlyPermissionHours: 4,
		MaxMonthlyCasualDays:      2,
	}, "admin-1")
	require.NoError(t, err)

	p, configured, err := svc.Resolve(context.Background(), policy.DepartmentTechnical)
	require.NoError(t, err)
	assert.True(t, configured)
	assert.Equal(t, "08:30", p.CheckInTime.String())
	assert.True(t, p.AllowOvertime)
	assert.Equal(t, 4, p.MaxMonthlyPermissionHours)
	assert.Equal(t, "admin-1", *p.UpdatedBy)
}

func TestUpsertRejectsBadClock(t *testing.T) {
	svc := NewPolicyService(newMockPolicyRepo())

	_, err := svc.Upsert(context.Background(), policy.UpsertPolicyRequest{
		Department:   "technical",
		CheckInTime:  "25:00",
		CheckOutTime: "18:00",
	}, "admin-1")
	assert.Error(t, err)
}

func TestListFillsDefaultsForUnconfigured(t *testing.T) {
	repo := newMockPolicyRepo()
	svc := NewPolicyService(repo)

	_, err := svc.Upsert(context.Background(), policy.UpsertPolicyRequest{
		Department:                "sales",
		CheckInTime:               "10:00",
		CheckOutTime:              "19:00",
		AllowOffSite:              true,
		MaxMonthlyPermissionHours: 2,
		MaxMonthlyCasualDays:      1,
	}, "admin-1")
	require.NoError(t, err)

	responses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, len(policy.Departments))

	byDept := make(map[string]policy.PolicyResponse)
	for _, r := range responses {
		byDept[r.Department] = r
	}

	assert.True(t, byDept["sales"].Configured)
	assert.Equal(t, "10:00", byDept["sales"].CheckInTime)
	assert.False(t, byDept["technical"].Configured)
	assert.Equal(t, "09:00", byDept["technical"].CheckInTime)
}
