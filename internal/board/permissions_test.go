package board

import (
	"testing"

	"task-board-system.com/task-board-system/internal/constants"
	model "task-board-system.com/task-board-system/internal/models"
)

func TestCanEdit_OwnershipAndRoles(t *testing.T) {
	task := model.Task{ID: 10, CreatedBy: 2, AssigneeID: 3}

	assignee := model.Member{ID: 3, Role: constants.RoleMember}
	if !CanEdit(assignee, task) {
		t.Error("assignee with member role should be able to edit")
	}

	stranger := model.Member{ID: 4, Role: constants.RoleMember}
	if CanEdit(stranger, task) {
		t.Error("unrelated member should not be able to edit")
	}

	admin := model.Member{ID: 4, Role: constants.RoleAdmin}
	if !CanEdit(admin, task) {
		t.Error("admin should be able to edit any task")
	}

	creator := model.Member{ID: 2, Role: constants.RoleMember}
	if !CanEdit(creator, task) {
		t.Error("creator should be able to edit")
	}
}

func TestCanDelete_RequiresCreatorOrElevatedRole(t *testing.T) {
	task := model.Task{ID: 10, CreatedBy: 2, AssigneeID: 3}

	if CanDelete(model.Member{ID: 3, Role: constants.RoleMember}, task) {
		t.Error("assignee alone should not be able to delete")
	}
	if !CanDelete(model.Member{ID: 2, Role: constants.RoleMember}, task) {
		t.Error("creator should be able to delete")
	}
	if !CanDelete(model.Member{ID: 9, Role: constants.RoleManager}, task) {
		t.Error("manager should be able to delete")
	}
}

func TestCanChangeStatus_MatchesCanEdit(t *testing.T) {
	task := model.Task{ID: 10, CreatedBy: 2, AssigneeID: 3}
	users := []model.Member{
		{ID: 3, Role: constants.RoleMember},
		{ID: 4, Role: constants.RoleMember},
		{ID: 4, Role: constants.RoleAdmin},
	}
	for _, u := range users {
		if CanChangeStatus(u, task) != CanEdit(u, task) {
			t.Errorf("user %d/%s: change-status and edit rules diverged", u.ID, u.Role)
		}
	}
}

func TestCanView_MemberSeesOwnTasksOnly(t *testing.T) {
	task := model.Task{ID: 10, CreatedBy: 2, AssigneeID: 3}

	if CanView(model.Member{ID: 4, Role: constants.RoleMember}, task) {
		t.Error("unrelated member should not see the task")
	}
	if !CanView(model.Member{ID: 3, Role: constants.RoleMember}, task) {
		t.Error("assignee should see the task")
	}
	if !CanView(model.Member{ID: 4, Role: constants.RoleManager}, task) {
		t.Error("manager should see every task")
	}
}

func TestMemberManagementMatrix(t *testing.T) {
	admin := model.Member{ID: 1, Role: constants.RoleAdmin}
	manager := model.Member{ID: 2, Role: constants.RoleManager}
	member := model.Member{ID: 3, Role: constants.RoleMember}

	if !CanEditMember(admin, manager) || !CanEditMember(admin, member) || !CanEditMember(admin, admin) {
		t.Error("admin should be able to edit any account")
	}
	if !CanEditMember(manager, member) {
		t.Error("manager should be able to edit plain members")
	}
	if CanEditMember(manager, admin) || CanEditMember(manager, manager) {
		t.Error("manager may edit member-role accounts only")
	}
	if CanEditMember(member, member) {
		t.Error("member should not manage accounts")
	}
}

func TestCanGrantRole_AdminOnlyForAdmin(t *testing.T) {
	admin := model.Member{ID: 1, Role: constants.RoleAdmin}
	manager := model.Member{ID: 2, Role: constants.RoleManager}

	if !CanGrantRole(admin, constants.RoleAdmin) {
		t.Error("admin should be able to grant admin")
	}
	if CanGrantRole(manager, constants.RoleAdmin) {
		t.Error("manager must not grant admin")
	}
	if !CanGrantRole(manager, constants.RoleMember) {
		t.Error("manager should be able to grant member")
	}
}

func TestCanDeleteMember_AdminAccountsAreProtected(t *testing.T) {
	admin := model.Member{ID: 1, Role: constants.RoleAdmin}
	otherAdmin := model.Member{ID: 9, Role: constants.RoleAdmin}
	manager := model.Member{ID: 2, Role: constants.RoleManager}
	member := model.Member{ID: 3, Role: constants.RoleMember}

	if CanDeleteMember(admin, otherAdmin) {
		t.Error("admin accounts can never be deleted through this pathway")
	}
	if !CanDeleteMember(manager, member) {
		t.Error("manager should be able to delete a plain member")
	}
	if CanDeleteMember(member, member) {
		t.Error("member should not delete accounts")
	}
}
