package employee

type Role string

const (
	RoleEmployee         Role = "employee"
	RoleTeamLead         Role = "team_lead"
	RoleHRManager        Role = "hr_manager"
	RoleGeneralManager   Role = "general_manager"
	RoleManagingDirector Role = "managing_director"

	// RoleMasterAdmin sits outside the escalation ladder. It gates policy,
	// calendar and office administration but never receives leave requests.
	RoleMasterAdmin Role = "master_admin"
)

// roleLadder is the fixed escalation order, lowest authority first. A leave
// request escalates one rung at a time and cannot pass the last entry.
var roleLadder = []Role{
	RoleEmployee,
	RoleTeamLead,
	RoleHRManager,
	RoleGeneralManager,
	RoleManagingDirector,
}

// Level returns the position of role on the ladder. Unknown roles and
// master_admin report -1: they hold no approval authority.
func Level(role Role) int {
	for i, r := range roleLadder {
		if r == role {
			return i
		}
	}
	return -1
}

// NextEscalation returns the rung directly above role. The second return is
// false when the role is at the top of the ladder or not on it at all.
func NextEscalation(role Role) (Role, bool) {
	level := Level(role)
	if level < 0 || level >= len(roleLadder)-1 {
		return "", false
	}
	return roleLadder[level+1], true
}

// ParseRole validates a role string coming from claims or the store.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleTeamLead, RoleHRManager, RoleGeneralManager,
		RoleManagingDirector, RoleMasterAdmin:
		return Role(s), true
	}
	return "", false
}
