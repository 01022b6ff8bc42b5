package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
}

func NewPolicyService(policyRepo policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{PolicyRepository: policyRepo}
}

// Resolve implements policy.PolicyService. Departments without a configured
// row get the system defaults, so callers always receive a fully populated
// policy.
func (s *PolicyServiceImpl) Resolve(ctx context.Context, department policy.Department) (policy.DepartmentPolicy, bool, error) {
	p, err := s.PolicyRepository.GetByDepartment(ctx, department)
	if err != nil {
		if errors.Is(err, policy.ErrPolicyNotFound) {
			return policy.DefaultPolicy(department), false, nil
		}
		return policy.DepartmentPolicy{}, false, fmt.Errorf("failed to resolve department policy: %w", err)
	}

	return p, true, nil
}

// List implements policy.PolicyService.
func (s *PolicyServiceImpl) List(ctx context.Context) ([]policy.PolicyResponse, error) {
	configured, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list department policies: %w", err)
	}

	byDepartment := make(map[policy.Department]policy.DepartmentPolicy, len(configured))
	for _, p := range configured {
		byDepartment[p.Department] = p
	}

	responses := make([]policy.PolicyResponse, 0, len(policy.Departments))
	for _, d := range policy.Departments {
		if p, ok := byDepartment[d]; ok {
			responses = append(responses, mapPolicyToResponse(p, true))
			continue
		}
		responses = append(responses, mapPolicyToResponse(policy.DefaultPolicy(d), false))
	}

	return responses, nil
}

// Get implements policy.PolicyService.
func (s *PolicyServiceImpl) Get(ctx context.Context, department policy.Department) (policy.PolicyResponse, error) {
	p, configured, err := s.Resolve(ctx, department)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	return mapPolicyToResponse(p, configured), nil
}

// Upsert implements policy.PolicyService.
func (s *PolicyServiceImpl) Upsert(ctx context.Context, req policy.UpsertPolicyRequest, editorID string) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	department, _ := policy.ParseDepartment(req.Department)
	inHour, inMinute, _ := validator.ParseClock(req.CheckInTime)
	outHour, outMinute, _ := validator.ParseClock(req.CheckOutTime)

	p := policy.DepartmentPolicy{
		Department:                department,
		CheckInTime:               policy.NewClock(inHour, inMinute),
		CheckOutTime:              policy.NewClock(outHour, outMinute),
		AllowOffSite:              req.AllowOffSite,
		AllowOvertime:             req.AllowOvertime,
		MaxMonthlyPermissionHours: req.MaxMonthlyPermissionHours,
		MaxMonthlyCasualDays:      req.MaxMonthlyCasualDays,
		UpdatedBy:                 &editorID,
	}

	saved, err := s.PolicyRepository.Upsert(ctx, p)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to upsert department policy: %w", err)
	}

	return mapPolicyToResponse(saved, true), nil
}

func mapPolicyToResponse(p policy.DepartmentPolicy, configured bool) policy.PolicyResponse {
	resp := policy.PolicyResponse{
		Department:                string(p.Department),
		CheckInTime:               p.CheckInTime.String(),
		CheckOutTime:              p.CheckOutTime.String(),
		AllowOffSite:              p.AllowOffSite,
		AllowOvertime:             p.AllowOvertime,
		MaxMonthlyPermissionHours: p.MaxMonthlyPermissionHours,
		MaxMonthlyCasualDays:      p.MaxMonthlyCasualDays,
		Configured:                configured,
		UpdatedBy:                 p.UpdatedBy,
	}
	if configured && !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt.Format("2006-01-02 15:04:05")
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
