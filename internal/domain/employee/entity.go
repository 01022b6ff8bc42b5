package employee

import (
	"time"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
)

// Employee is the identity snapshot the engine works with. The record is
// maintained by the identity service; this module only reads it.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Department policy.Department
	Role       Role
	ApproverID *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
