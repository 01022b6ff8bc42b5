package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/leave"
	"github.com/sunvolt-energy/erp-backend-go/internal/repository/postgresql"
)

func TestLeaveDecideIsCompareAndSet(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	createTestEmployee(t, db, "tl-lv-1", "Meera", "sales", "team_lead", nil)
	approverID := "tl-lv-1"
	createTestEmployee(t, db, "emp-lv-1", "Kiran", "sales", "employee", &approverID)

	repo := postgresql.NewLeaveRequestRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID:        "emp-lv-1",
		Type:              leave.LeaveTypeCasual,
		StartAt:           time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		EndAt:             time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC),
		Reason:            "family function",
		Status:            leave.StatusPending,
		CurrentApproverID: "tl-lv-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	notes := "enjoy"
	created.Status = leave.StatusApproved
	created.ApproverNotes = &notes
	entry := leave.HistoryEntry{
		RequestID: created.ID,
		ActorID:   "tl-lv-1",
		ActorName: "Meera",
		Action:    leave.ActionApproved,
		Notes:     &notes,
	}

	require.NoError(t, repo.Decide(ctx, created, leave.StatusPending, entry))

	// A second decision against the already-consumed pending status must
	// lose the compare-and-set and leave no extra history behind.
	err = repo.Decide(ctx, created, leave.StatusPending, entry)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.Status)
	require.Len(t, got.History, 1)
	assert.Equal(t, leave.ActionApproved, got.History[0].Action)
	assert.Equal(t, "tl-lv-1", got.History[0].ActorID)
	require.NotNil(t, got.EmployeeName)
	assert.Equal(t, "Kiran", *got.EmployeeName)
}

func TestLeaveListAwaiting(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db)
	createTestEmployee(t, db, "tl-lv-2", "Meera", "sales", "team_lead", nil)
	approverID := "tl-lv-2"
	createTestEmployee(t, db, "emp-lv-2", "Kiran", "sales", "employee", &approverID)

	repo := postgresql.NewLeaveRequestRepository(db)
	ctx := context.Background()

	pending, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID:        "emp-lv-2",
		Type:              leave.LeaveTypeSick,
		StartAt:           time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		EndAt:             time.Date(2026, 3, 17, 18, 0, 0, 0, time.UTC),
		Reason:            "fever",
		Status:            leave.StatusPending,
		CurrentApproverID: "tl-lv-2",
	})
	require.NoError(t, err)

	awaiting, err := repo.ListAwaiting(ctx, "tl-lv-2")
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	assert.Equal(t, pending.ID, awaiting[0].ID)

	pending.Status = leave.StatusApproved
	require.NoError(t, repo.Decide(ctx, pending, leave.StatusPending, leave.HistoryEntry{
		RequestID: pending.ID,
		ActorID:   "tl-lv-2",
		ActorName: "Meera",
		Action:    leave.ActionApproved,
	}))

	awaiting, err = repo.ListAwaiting(ctx, "tl-lv-2")
	require.NoError(t, err)
	assert.Empty(t, awaiting)
}
