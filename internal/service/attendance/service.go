package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/attendance"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/validator"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	policyService policy.PolicyService
	location      *time.Location

	// now is injectable for tests; production wiring leaves it nil.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	policyService policy.PolicyService,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		policyService:        policyService,
		location:             location,
	}
}

func (a *AttendanceServiceImpl) localNow() time.Time {
	if a.now != nil {
		return a.now().In(a.location)
	}
	return time.Now().In(a.location)
}

func localDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := a.localNow()
	today := localDay(nowLocal)

	// Fast-path duplicate guard. The unique (employee_id, date) index in the
	// store closes the remaining race: a concurrent insert surfaces as
	// ErrAlreadyCheckedIn out of Create.
	_, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.Actor.EmployeeID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	pol, _, err := a.policyService.Resolve(ctx, req.Actor.Department)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve department policy: %w", err)
	}

	workLocation := attendance.WorkLocation(req.WorkLocation)

	if workLocation == attendance.WorkLocationOffSite {
		// Sales and marketing are always off-site eligible regardless of the
		// policy flag. This carve-out is intentional, not a fallback.
		if !pol.AllowOffSite && !req.Actor.Department.AlwaysOffSiteEligible() {
			return attendance.AttendanceResponse{}, attendance.ErrOffSiteNotPermitted
		}

		// Field departments must document where, why and for which customer.
		if req.Actor.Department.AlwaysOffSiteEligible() {
			if validator.IsEmpty(req.LocationDetails) ||
				validator.IsEmpty(req.OffSiteReason) ||
				validator.IsEmpty(req.CustomerDetails) {
				return attendance.AttendanceResponse{}, attendance.ErrMissingRequiredFields
			}
		}
	}

	isLate := nowLocal.After(pol.CheckInTime.On(nowLocal))
	if isLate && validator.IsEmpty(req.LateReason) {
		return attendance.AttendanceResponse{}, attendance.ErrLateReasonRequired
	}

	data := attendance.Attendance{
		EmployeeID:   req.Actor.EmployeeID,
		Department:   req.Actor.Department,
		Date:         today,
		CheckIn:      nowLocal,
		WorkLocation: workLocation,
		IsLate:       isLate,

		// The policy clocks are snapshotted so later policy edits do not
		// change how this record reads.
		PolicyCheckIn:  pol.CheckInTime,
		PolicyCheckOut: pol.CheckOutTime,

		Status: attendance.StatusCheckedIn,
	}
	if workLocation == attendance.WorkLocationOffSite {
		data.LocationDetails = optional(req.LocationDetails)
		data.OffSiteReason = optional(req.OffSiteReason)
		data.CustomerDetails = optional(req.CustomerDetails)
	}
	if isLate {
		data.LateReason = optional(req.LateReason)
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	nowLocal := a.localNow()
	today := localDay(nowLocal)

	att, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.Actor.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if att.Status == attendance.StatusCheckedOut {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	// Lateness is judged against the clock snapshotted at check-in, so a
	// policy edit between check-in and check-out cannot move the bar.
	requiredOut := att.PolicyCheckOut.On(nowLocal)
	isLateCheckout := nowLocal.After(requiredOut)

	if isLateCheckout {
		pol, _, err := a.policyService.Resolve(ctx, req.Actor.Department)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve department policy: %w", err)
		}

		if pol.AllowOvertime {
			if validator.IsEmpty(req.OvertimeReason) {
				return attendance.AttendanceResponse{}, attendance.ErrOvertimeReasonRequired
			}

			// Truncate to the minute before splitting.
			totalMinutes := int(math.Floor(nowLocal.Sub(requiredOut).Minutes()))
			hours := totalMinutes / 60
			minutes := totalMinutes % 60

			att.IsOvertime = true
			att.OvertimeReason = optional(req.OvertimeReason)
			att.OvertimeHours = &hours
			att.OvertimeMinutes = &minutes
		} else {
			if validator.IsEmpty(req.LateReason) {
				return attendance.AttendanceResponse{}, attendance.ErrLateReasonRequired
			}
			att.LateCheckoutReason = optional(req.LateReason)
		}
	}

	// Back-office departments close their day at the office.
	if req.Actor.Department.RequiresOfficeCheckout() && att.WorkLocation == attendance.WorkLocationOffSite {
		return attendance.AttendanceResponse{}, attendance.ErrOfficeCheckoutRequired
	}

	att.CheckOut = &nowLocal
	att.Status = attendance.StatusCheckedOut

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context, actor employee.Actor) (attendance.AttendanceResponse, error) {
	today := localDay(a.localNow())

	att, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context, actor employee.Actor, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 31
	}

	records, total, err := a.AttendanceRepository.ListByEmployee(ctx, actor.EmployeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var checkOut *string
	if att.CheckOut != nil {
		formatted := att.CheckOut.Format("2006-01-02 15:04:05")
		checkOut = &formatted
	}

	return attendance.AttendanceResponse{
		ID:              att.ID,
		EmployeeID:      att.EmployeeID,
		Department:      string(att.Department),
		Date:            att.Date.Format("2006-01-02"),
		CheckInTime:     att.CheckIn.Format("2006-01-02 15:04:05"),
		CheckOutTime:    checkOut,
		WorkLocation:    string(att.WorkLocation),
		LocationDetails: att.LocationDetails,
		OffSiteReason:   att.OffSiteReason,
		CustomerDetails: att.CustomerDetails,
		IsLate:          att.IsLate,
		LateReason:      att.LateReason,
		IsOvertime:      att.IsOvertime,
		OvertimeReason:  att.OvertimeReason,
		OvertimeHours:   att.OvertimeHours,
		OvertimeMinutes: att.OvertimeMinutes,
		RequiredCheckIn: att.PolicyCheckIn.String(),
		RequiredOut:     att.PolicyCheckOut.String(),
		Status:          string(att.Status),
	}
}
