package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/leave"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	lr.id, lr.employee_id, lr.type, lr.start_at, lr.end_at, lr.reason, lr.attachment_url,
	lr.status, lr.current_approver_id, lr.approver_notes, lr.escalated_from, lr.escalated_to,
	lr.submitted_at, lr.created_at, lr.updated_at, e.name`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.Type, &lr.StartAt, &lr.EndAt, &lr.Reason, &lr.AttachmentURL,
		&lr.Status, &lr.CurrentApproverID, &lr.ApproverNotes, &lr.EscalatedFrom, &lr.EscalatedTo,
		&lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, type, start_at, end_at, reason, attachment_url,
			status, current_approver_id, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		string(req.Type),
		req.StartAt,
		req.EndAt,
		req.Reason,
		req.AttachmentURL,
		string(req.Status),
		req.CurrentApproverID,
	).Scan(&req.ID, &req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	history, err := r.listHistory(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.History = history

	return lr, nil
}

func (r *leaveRequestRepository) listHistory(ctx context.Context, requestID string) ([]leave.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, request_id, actor_id, actor_name, action, notes, created_at
		FROM leave_approval_history
		WHERE request_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval history: %w", err)
	}
	defer rows.Close()

	var entries []leave.HistoryEntry
	for rows.Next() {
		var e leave.HistoryEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.ActorID, &e.ActorName, &e.Action, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan approval history entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.employee_id = $1
		ORDER BY lr.submitted_at DESC
	`
	return r.queryRequests(ctx, query, employeeID)
}

// ListAwaiting implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListAwaiting(ctx context.Context, approverID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.current_approver_id = $1
		  AND lr.status IN ('pending', 'escalated')
		ORDER BY lr.submitted_at
	`
	return r.queryRequests(ctx, query, approverID)
}

// ListOverlappingMonth implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListOverlappingMonth(ctx context.Context, employeeID string, leaveType leave.LeaveType, statuses []leave.Status, ref time.Time) ([]leave.LeaveRequest, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.employee_id = $1
		  AND lr.type = $2
		  AND lr.status = ANY($3)
		  AND lr.start_at < $5
		  AND lr.end_at >= $4
		ORDER BY lr.start_at
	`
	return r.queryRequests(ctx, query, employeeID, string(leaveType), statusStrings, monthStart, monthEnd)
}

func (r *leaveRequestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

// Decide implements leave.LeaveRequestRepository. The status column is the
// compare-and-set guard: the UPDATE only matches while the request still
// holds the status the approver saw, so the second of two concurrent
// decisions affects zero rows and surfaces ErrAlreadyProcessed. The history
// entry lands in the same transaction.
func (r *leaveRequestRepository) Decide(ctx context.Context, req leave.LeaveRequest, expected leave.Status, entry leave.HistoryEntry) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE leave_requests
			SET status = $2,
				current_approver_id = $3,
				approver_notes = $4,
				escalated_from = $5,
				escalated_to = $6,
				updated_at = NOW()
			WHERE id = $1
			  AND status = $7
		`

		tag, err := tx.Exec(ctx, query,
			req.ID,
			string(req.Status),
			req.CurrentApproverID,
			req.ApproverNotes,
			req.EscalatedFrom,
			req.EscalatedTo,
			string(expected),
		)
		if err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return leave.ErrAlreadyProcessed
		}

		historyQuery := `
			INSERT INTO leave_approval_history (request_id, actor_id, actor_name, action, notes)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, historyQuery,
			req.ID, entry.ActorID, entry.ActorName, string(entry.Action), entry.Notes,
		); err != nil {
			return fmt.Errorf("failed to append approval history: %w", err)
		}

		return nil
	})
}
