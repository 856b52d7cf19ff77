package board

import (
	"task-board-system.com/task-board-system/internal/constants"
	model "task-board-system.com/task-board-system/internal/models"
)

// Actions lists what a member may do with a task. It drives both the HTTP
// boundary checks and the affordances exposed in the board view, so the two
// can never drift apart.
type Actions struct {
	View         bool `json:"view"`
	Edit         bool `json:"edit"`
	Delete       bool `json:"delete"`
	ChangeStatus bool `json:"change_status"`
}

func elevated(m model.Member) bool {
	return m.Role == constants.RoleAdmin || m.Role == constants.RoleManager
}

// CanView reports task visibility. Members with the plain "member" role only
// see tasks they created or are assigned to; the repository applies the same
// rule in its list query so the restriction cannot be bypassed client-side.
func CanView(m model.Member, t model.Task) bool {
	if elevated(m) {
		return true
	}
	return t.CreatedBy == m.ID || t.AssigneeID == m.ID
}

func CanEdit(m model.Member, t model.Task) bool {
	return elevated(m) || t.CreatedBy == m.ID || t.AssigneeID == m.ID
}

func CanDelete(m model.Member, t model.Task) bool {
	return elevated(m) || t.CreatedBy == m.ID
}

func CanChangeStatus(m model.Member, t model.Task) bool {
	return CanEdit(m, t)
}

func AllowedActions(m model.Member, t model.Task) Actions {
	return Actions{
		View:         CanView(m, t),
		Edit:         CanEdit(m, t),
		Delete:       CanDelete(m, t),
		ChangeStatus: CanChangeStatus(m, t),
	}
}

// CanEditMember applies the team-management matrix: admins may edit anyone,
// managers may edit plain members only, members may edit nobody.
func CanEditMember(actor, target model.Member) bool {
	switch actor.Role {
	case constants.RoleAdmin:
		return true
	case constants.RoleManager:
		return target.Role == constants.RoleMember
	}
	return false
}

// CanGrantRole reports whether actor may assign the given role. Only an
// admin may grant the admin role.
func CanGrantRole(actor model.Member, role constants.Role) bool {
	if role == constants.RoleAdmin {
		return actor.Role == constants.RoleAdmin
	}
	return elevated(actor)
}

// CanDeleteMember: admin accounts can never be deleted through this pathway.
func CanDeleteMember(actor, target model.Member) bool {
	if target.Role == constants.RoleAdmin {
		return false
	}
	return CanEditMember(actor, target)
}
