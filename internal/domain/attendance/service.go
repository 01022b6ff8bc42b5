package attendance

import (
	"context"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
)

// AttendanceService owns the per-employee, per-day session lifecycle.
type AttendanceService interface {
	// CheckIn opens today's session after validating department policy:
	// off-site permission, required off-site fields and lateness.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's session, deriving the late-checkout or
	// overtime outcome from the policy clocks snapshotted at check-in.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Today returns the caller's session for the current day, if any.
	Today(ctx context.Context, actor employee.Actor) (AttendanceResponse, error)

	ListMine(ctx context.Context, actor employee.Actor, filter MyAttendanceFilter) (ListAttendanceResponse, error)
}
