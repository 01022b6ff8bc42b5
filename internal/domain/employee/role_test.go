package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, Level(RoleEmployee), Level(RoleTeamLead))
	assert.Less(t, Level(RoleTeamLead), Level(RoleHRManager))
	assert.Less(t, Level(RoleHRManager), Level(RoleGeneralManager))
	assert.Less(t, Level(RoleGeneralManager), Level(RoleManagingDirector))
}

func TestLevelOffLadder(t *testing.T) {
	assert.Equal(t, -1, Level(RoleMasterAdmin))
	assert.Equal(t, -1, Level(Role("intern")))
}

func TestNextEscalation(t *testing.T) {
	next, ok := NextEscalation(RoleEmployee)
	assert.True(t, ok)
	assert.Equal(t, RoleTeamLead, next)

	next, ok = NextEscalation(RoleGeneralManager)
	assert.True(t, ok)
	assert.Equal(t, RoleManagingDirector, next)

	_, ok = NextEscalation(RoleManagingDirector)
	assert.False(t, ok)

	_, ok = NextEscalation(RoleMasterAdmin)
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("hr_manager")
	assert.True(t, ok)
	assert.Equal(t, RoleHRManager, role)

	_, ok = ParseRole("ceo")
	assert.False(t, ok)
}
