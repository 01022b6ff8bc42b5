package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/calendar"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/leave"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"
)

type WorkflowServiceImpl struct {
	leave.LeaveRequestRepository
	employeeRepo    employee.EmployeeRepository
	eligibility     leave.EligibilityService
	calendarService calendar.CalendarService
	policyService   policy.PolicyService
	location        *time.Location

	// now is injectable for tests; production wiring leaves it nil.
	now func() time.Time
}

func NewWorkflowService(
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	eligibility leave.EligibilityService,
	calendarService calendar.CalendarService,
	policyService policy.PolicyService,
	location *time.Location,
) leave.WorkflowService {
	return &WorkflowServiceImpl{
		LeaveRequestRepository: requestRepo,
		employeeRepo:           employeeRepo,
		eligibility:            eligibility,
		calendarService:        calendarService,
		policyService:          policyService,
		location:               location,
	}
}

func (s *WorkflowServiceImpl) localNow() time.Time {
	if s.now != nil {
		return s.now().In(s.location)
	}
	return time.Now().In(s.location)
}

// Submit implements leave.WorkflowService.
func (s *WorkflowServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	leaveType, _ := leave.ParseLeaveType(req.Type)

	startAt, err := time.ParseInLocation("2006-01-02 15:04", req.StartAt, s.location)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start_at: %w", err)
	}
	endAt, err := time.ParseInLocation("2006-01-02 15:04", req.EndAt, s.location)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end_at: %w", err)
	}

	if endAt.Before(startAt) {
		return leave.LeaveResponse{}, leave.ErrInvalidRange
	}

	// Day-granular leave must not span rest days or holidays. Permission
	// leave is hour-granular and exempt: a two-hour absence on a working
	// morning is fine even when the range brushes a holiday boundary.
	if leaveType != leave.LeaveTypePermission {
		if err := s.checkWorkingDays(ctx, startAt, endAt); err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.Actor.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	result, err := s.eligibility.CheckEligibility(ctx, emp, leaveType)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !result.Eligible {
		return leave.LeaveResponse{}, fmt.Errorf("%w: %s", leave.ErrNotEligible, result.Reason)
	}

	approver, err := s.employeeRepo.GetApprover(ctx, req.Actor.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	data := leave.LeaveRequest{
		EmployeeID:        req.Actor.EmployeeID,
		Type:              leaveType,
		StartAt:           startAt,
		EndAt:             endAt,
		Reason:            req.Reason,
		AttachmentURL:     req.AttachmentURL,
		Status:            leave.StatusPending,
		CurrentApproverID: approver.ID,
		SubmittedAt:       s.localNow(),
	}

	created, err := s.LeaveRequestRepository.Create(ctx, data)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.mapLeaveToResponse(ctx, created)
}

func (s *WorkflowServiceImpl) checkWorkingDays(ctx context.Context, startAt, endAt time.Time) error {
	day := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, s.location)
	last := time.Date(endAt.Year(), endAt.Month(), endAt.Day(), 0, 0, 0, 0, s.location)

	for !day.After(last) {
		nonWorking, err := s.calendarService.IsNonWorkingDay(ctx, day)
		if err != nil {
			return fmt.Errorf("failed to check working day: %w", err)
		}
		if nonWorking {
			return leave.ErrIncludesNonWorkingDay
		}
		day = day.AddDate(0, 0, 1)
	}

	return nil
}

// decisionGuard enforces who may act on a request right now. Only the
// current approver of an undecided request gets past it.
func decisionGuard(req leave.LeaveRequest, actor employee.Actor) error {
	if req.Status.Decided() {
		return leave.ErrAlreadyProcessed
	}
	if req.Status != leave.StatusPending && req.Status != leave.StatusEscalated {
		return leave.ErrNotPending
	}
	if req.CurrentApproverID != actor.EmployeeID {
		return leave.ErrForbidden
	}
	return nil
}

// escalationMandatory reports whether the acting approver lacks authority
// over the requester. Equal or higher rank on the ladder cannot be decided
// sideways or downwards; it must go up.
func escalationMandatory(requester employee.Employee, actor employee.Actor) bool {
	return employee.Level(requester.Role) >= employee.Level(actor.Role)
}

// Approve implements leave.WorkflowService.
func (s *WorkflowServiceImpl) Approve(ctx context.Context, requestID string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, requestID, req, leave.StatusApproved, leave.ActionApproved)
}

// Reject implements leave.WorkflowService. Rejections always carry notes so
// the employee learns why.
func (s *WorkflowServiceImpl) Reject(ctx context.Context, requestID string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	if validator.IsEmpty(req.Notes) {
		return leave.LeaveResponse{}, leave.ErrReasonRequired
	}
	return s.decide(ctx, requestID, req, leave.StatusRejected, leave.ActionRejected)
}

func (s *WorkflowServiceImpl) decide(ctx context.Context, requestID string, req leave.DecisionRequest, status leave.Status, action leave.HistoryAction) (leave.LeaveResponse, error) {
	lr, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := decisionGuard(lr, req.Actor); err != nil {
		return leave.LeaveResponse{}, err
	}

	requester, err := s.employeeRepo.GetByID(ctx, lr.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load requester: %w", err)
	}
	if escalationMandatory(requester, req.Actor) {
		return leave.LeaveResponse{}, leave.ErrEscalationRequired
	}

	expected := lr.Status
	lr.Status = status
	lr.ApproverNotes = optional(req.Notes)

	entry := leave.HistoryEntry{
		RequestID: lr.ID,
		ActorID:   req.Actor.EmployeeID,
		ActorName: req.Actor.Name,
		Action:    action,
		Notes:     optional(req.Notes),
	}

	if err := s.LeaveRequestRepository.Decide(ctx, lr, expected, entry); err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.LeaveRequestRepository.GetByID(ctx, lr.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return s.mapLeaveToResponse(ctx, decided)
}

// Escalate implements leave.WorkflowService. The request moves exactly one
// rung up the ladder to a named target holding the next role.
func (s *WorkflowServiceImpl) Escalate(ctx context.Context, requestID string, req leave.EscalateRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	lr, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := decisionGuard(lr, req.Actor); err != nil {
		return leave.LeaveResponse{}, err
	}

	nextRole, ok := employee.NextEscalation(req.Actor.Role)
	if !ok {
		return leave.LeaveResponse{}, leave.ErrCannotEscalateFurther
	}

	target, err := s.employeeRepo.GetByID(ctx, req.TargetID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load escalation target: %w", err)
	}
	if target.Role != nextRole {
		return leave.LeaveResponse{}, leave.ErrInvalidEscalationTarget
	}

	expected := lr.Status
	actorID := req.Actor.EmployeeID
	targetID := target.ID

	lr.Status = leave.StatusEscalated
	lr.EscalatedFrom = &actorID
	lr.EscalatedTo = &targetID
	lr.CurrentApproverID = target.ID

	entry := leave.HistoryEntry{
		RequestID: lr.ID,
		ActorID:   req.Actor.EmployeeID,
		ActorName: req.Actor.Name,
		Action:    leave.ActionEscalated,
		Notes:     optional(req.Notes),
	}

	if err := s.LeaveRequestRepository.Decide(ctx, lr, expected, entry); err != nil {
		return leave.LeaveResponse{}, err
	}

	escalated, err := s.LeaveRequestRepository.GetByID(ctx, lr.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return s.mapLeaveToResponse(ctx, escalated)
}

// Get implements leave.WorkflowService.
func (s *WorkflowServiceImpl) Get(ctx context.Context, requestID string, actor employee.Actor) (leave.LeaveResponse, error) {
	lr, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !canView(lr, actor) {
		return leave.LeaveResponse{}, leave.ErrForbidden
	}

	return s.mapLeaveToResponse(ctx, lr)
}

// canView admits the requester, the current approver, anyone who has acted
// on the request, and the master admin.
func canView(req leave.LeaveRequest, actor employee.Actor) bool {
	if actor.Role == employee.RoleMasterAdmin {
		return true
	}
	if req.EmployeeID == actor.EmployeeID || req.CurrentApproverID == actor.EmployeeID {
		return true
	}
	for _, entry := range req.History {
		if entry.ActorID == actor.EmployeeID {
			return true
		}
	}
	return false
}

// ListMine implements leave.WorkflowService.
func (s *WorkflowServiceImpl) ListMine(ctx context.Context, actor employee.Actor) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return s.mapLeaveList(ctx, requests)
}

// ListApprovals implements leave.WorkflowService.
func (s *WorkflowServiceImpl) ListApprovals(ctx context.Context, actor employee.Actor) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListAwaiting(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list awaiting requests: %w", err)
	}
	return s.mapLeaveList(ctx, requests)
}

// Balance implements leave.WorkflowService.
func (s *WorkflowServiceImpl) Balance(ctx context.Context, actor employee.Actor) (leave.BalanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	casual, err := s.eligibility.RemainingCasualDays(ctx, emp)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	permission, err := s.eligibility.RemainingPermissionHours(ctx, emp)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	pol, _, err := s.policyService.Resolve(ctx, emp.Department)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to resolve department policy: %w", err)
	}

	return leave.BalanceResponse{
		Month:                     s.localNow().Format("2006-01"),
		RemainingCasualDays:       casual,
		RemainingPermissionHours:  permission,
		MaxMonthlyCasualDays:      pol.MaxMonthlyCasualDays,
		MaxMonthlyPermissionHours: pol.MaxMonthlyPermissionHours,
	}, nil
}

func (s *WorkflowServiceImpl) mapLeaveList(ctx context.Context, requests []leave.LeaveRequest) ([]leave.LeaveResponse, error) {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		resp, err := s.mapLeaveToResponse(ctx, req)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *WorkflowServiceImpl) mapLeaveToResponse(ctx context.Context, req leave.LeaveRequest) (leave.LeaveResponse, error) {
	duration, err := s.formatDuration(ctx, req)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	resp := leave.LeaveResponse{
		ID:                req.ID,
		EmployeeID:        req.EmployeeID,
		EmployeeName:      req.EmployeeName,
		Type:              string(req.Type),
		StartAt:           req.StartAt.Format("2006-01-02 15:04"),
		EndAt:             req.EndAt.Format("2006-01-02 15:04"),
		Reason:            req.Reason,
		AttachmentURL:     req.AttachmentURL,
		Status:            string(req.Status),
		CurrentApproverID: req.CurrentApproverID,
		ApproverNotes:     req.ApproverNotes,
		EscalatedFrom:     req.EscalatedFrom,
		EscalatedTo:       req.EscalatedTo,
		SubmittedAt:       req.SubmittedAt.Format(time.RFC3339),
		Duration:          duration,
	}

	for _, entry := range req.History {
		resp.History = append(resp.History, leave.HistoryEntryResponse{
			ActorID:   entry.ActorID,
			ActorName: entry.ActorName,
			Action:    string(entry.Action),
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}

// formatDuration renders permission leave in hours and everything else in
// business days, matching how each type is quota-charged.
func (s *WorkflowServiceImpl) formatDuration(ctx context.Context, req leave.LeaveRequest) (string, error) {
	if req.Type == leave.LeaveTypePermission {
		return fmt.Sprintf("%d hour(s)", req.DurationHours()), nil
	}

	days, err := s.calendarService.BusinessDaysBetween(ctx, req.StartAt, req.EndAt)
	if err != nil {
		return "", fmt.Errorf("failed to count business days: %w", err)
	}
	return fmt.Sprintf("%d day(s)", days), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
