package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-board-system.com/task-board-system/internal/board"
	"task-board-system.com/task-board-system/internal/constants"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
	"task-board-system.com/task-board-system/internal/sessions"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Task{}, &model.Member{}, &model.Comment{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type fixture struct {
	tasks      *TaskService
	members    *MemberService
	admin      model.Member
	manager    model.Member
	memberA    model.Member
	memberB    model.Member
	taskRepo   *repository.TaskRepository
	memberRepo *repository.MemberRepository
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)

	memberRepo := repository.NewMemberRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	f := &fixture{
		tasks:      NewTaskService(taskRepo, commentRepo),
		members:    NewMemberService(memberRepo),
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
	}

	ctx := context.Background()
	seed := []struct {
		dst *model.Member
		m   model.Member
	}{
		{&f.admin, model.Member{Name: "Ada", Email: "ada@example.com", Role: constants.RoleAdmin, Department: "engineering", Status: constants.MemberActive}},
		{&f.manager, model.Member{Name: "Mia", Email: "mia@example.com", Role: constants.RoleManager, Department: "engineering", Status: constants.MemberActive}},
		{&f.memberA, model.Member{Name: "Ana", Email: "ana@example.com", Role: constants.RoleMember, Department: "design", Status: constants.MemberActive}},
		{&f.memberB, model.Member{Name: "Bob", Email: "bob@example.com", Role: constants.RoleMember, Department: "design", Status: constants.MemberActive}},
	}
	for _, s := range seed {
		created, err := memberRepo.Create(ctx, &s.m)
		if err != nil {
			t.Fatalf("failed to seed member %s: %v", s.m.Email, err)
		}
		*s.dst = *created
	}

	return f
}

func (f *fixture) createTask(t *testing.T, creator model.Member, assignee model.Member, title string) *model.Task {
	t.Helper()
	task, err := f.tasks.CreateTask(context.Background(), creator, &model.Task{
		Title:      title,
		AssigneeID: assignee.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task %q: %v", title, err)
	}
	return task
}

func TestTaskService_CreateEntersTodoWithDenormalizedAssignee(t *testing.T) {
	f := setupFixture(t)

	task := f.createTask(t, f.manager, f.memberA, "Design review")

	if task.Status != constants.StatusTodo {
		t.Errorf("new tasks must enter todo, got %s", task.Status)
	}
	if task.Priority != constants.PriorityMedium {
		t.Errorf("expected default medium priority, got %s", task.Priority)
	}
	if task.AssigneeName != "Ana" || task.AssigneeDepartment != "design" {
		t.Errorf("assignee not denormalized: %q / %q", task.AssigneeName, task.AssigneeDepartment)
	}
	if task.CreatedByName != "Mia" {
		t.Errorf("creator not denormalized: %q", task.CreatedByName)
	}
}

func TestTaskService_CreateRejectsUnknownAssignee(t *testing.T) {
	f := setupFixture(t)

	_, err := f.tasks.CreateTask(context.Background(), f.manager, &model.Task{
		Title:      "Orphan",
		AssigneeID: 9999,
	})
	if !errors.Is(err, apperrors.ErrAssigneeNotFound) {
		t.Errorf("expected ErrAssigneeNotFound, got %v", err)
	}
}

func TestTaskService_MemberListIsScopedServerSide(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.createTask(t, f.manager, f.memberA, "for Ana")
	f.createTask(t, f.manager, f.memberB, "for Bob")
	f.createTask(t, f.memberA, f.memberB, "Ana created, Bob assigned")

	anaTasks, err := f.tasks.ListTasks(ctx, f.memberA)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(anaTasks) != 2 {
		t.Errorf("Ana should see assigned + created tasks only, got %d", len(anaTasks))
	}

	all, err := f.tasks.ListTasks(ctx, f.manager)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("manager should see every task, got %d", len(all))
	}
}

func TestTaskService_UpdateRequiresOwnershipOrRole(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	task := f.createTask(t, f.manager, f.memberA, "guarded")

	title := "renamed"
	if _, err := f.tasks.UpdateTask(ctx, f.memberB, task.ID, model.TaskPatch{Title: &title}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("unrelated member must get ErrForbidden, got %v", err)
	}

	status := constants.StatusInProgress
	updated, err := f.tasks.UpdateTask(ctx, f.memberA, task.ID, model.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("assignee update failed: %v", err)
	}
	if updated.Status != constants.StatusInProgress {
		t.Errorf("expected in-progress, got %s", updated.Status)
	}
}

func TestTaskService_RepeatedStatusCommitIsIdempotent(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	task := f.createTask(t, f.manager, f.memberA, "idempotent")

	status := constants.StatusReview
	first, err := f.tasks.UpdateTask(ctx, f.manager, task.ID, model.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	second, err := f.tasks.UpdateTask(ctx, f.manager, task.ID, model.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	if !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Error("repeating an equal status commit must not bump updated_at")
	}
	if second.Version != first.Version {
		t.Error("repeating an equal status commit must not bump the version")
	}
}

func TestTaskService_EmptyPatchIsNoOp(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	task := f.createTask(t, f.manager, f.memberA, "untouched")

	after, err := f.taskRepo.UpdatePartial(ctx, task.ID, model.TaskPatch{})
	if err != nil {
		t.Fatalf("empty patch failed: %v", err)
	}
	if !after.UpdatedAt.Equal(task.UpdatedAt) {
		t.Error("an empty patch must not bump updated_at")
	}
	if after.Version != task.Version {
		t.Error("an empty patch must not bump the version")
	}
}

func TestTaskService_DeleteRequiresCreatorOrRole(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	task := f.createTask(t, f.memberA, f.memberB, "deletable")

	if err := f.tasks.DeleteTask(ctx, f.memberB, task.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("assignee alone must not delete, got %v", err)
	}
	if err := f.tasks.DeleteTask(ctx, f.memberA, task.ID); err != nil {
		t.Errorf("creator delete failed: %v", err)
	}
	if err := f.tasks.DeleteTask(ctx, f.memberA, task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("second delete should report not found, got %v", err)
	}
}

func TestTaskService_CommentTextMustNotBeEmpty(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	task := f.createTask(t, f.manager, f.memberA, "commented")

	if _, err := f.tasks.CreateComment(ctx, f.memberA, task.ID, "   "); !errors.Is(err, apperrors.ErrCommentTextRequired) {
		t.Errorf("whitespace-only text must be rejected, got %v", err)
	}

	comment, err := f.tasks.CreateComment(ctx, f.memberA, task.ID, "  looks good  ")
	if err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	if comment.Text != "looks good" {
		t.Errorf("text should be trimmed, got %q", comment.Text)
	}
	if comment.AuthorName != "Ana" {
		t.Errorf("author not denormalized: %q", comment.AuthorName)
	}
}

func TestMemberService_ManagementMatrix(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	dept := "support"
	if _, err := f.members.UpdateMember(ctx, f.manager, f.admin.ID, model.MemberPatch{Department: &dept}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("manager must not edit an admin, got %v", err)
	}

	role := constants.RoleAdmin
	if _, err := f.members.UpdateMember(ctx, f.manager, f.memberA.ID, model.MemberPatch{Role: &role}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("manager must not grant admin, got %v", err)
	}
	if _, err := f.members.UpdateMember(ctx, f.admin, f.memberA.ID, model.MemberPatch{Role: &role}); err != nil {
		t.Errorf("admin grant failed: %v", err)
	}

	if err := f.members.DeleteMember(ctx, f.admin, f.admin.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("admin accounts must never be deletable, got %v", err)
	}
	if err := f.members.DeleteMember(ctx, f.manager, f.memberB.ID); err != nil {
		t.Errorf("manager deleting a plain member failed: %v", err)
	}
}

func TestMemberService_CreateRejectsDuplicateEmail(t *testing.T) {
	f := setupFixture(t)

	_, err := f.members.CreateMember(context.Background(), f.admin, &model.Member{
		Name:  "Clone",
		Email: "ana@example.com",
		Role:  constants.RoleMember,
	})
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSessionService_LoginResolveLogout(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	store := sessions.NewMemorySessionStore()
	svc := NewSessionService(store, f.memberRepo, 30*time.Minute)

	if _, _, err := svc.Login(ctx, "nobody@example.com"); !errors.Is(err, apperrors.ErrMemberNotFound) {
		t.Errorf("unknown email should report not found, got %v", err)
	}

	token, member, err := svc.Login(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if member.ID != f.memberA.ID {
		t.Errorf("login resolved wrong member: %d", member.ID)
	}

	resolved, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.ID != f.memberA.ID {
		t.Errorf("resolve returned wrong member: %d", resolved.ID)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Resolve(ctx, token); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestBoard_DragPersistsStatusChange(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	task := f.createTask(t, f.manager, f.memberA, "draggable")

	gateway := NewBoardGateway(f.tasks, f.members, f.memberA)
	store := board.NewStore(gateway)
	if _, err := store.Load(ctx); err != nil {
		t.Fatalf("board load failed: %v", err)
	}
	rec := board.NewReconciler(store, 5*time.Second)

	if err := rec.DragStart(task.ID); err != nil {
		t.Fatalf("drag start failed: %v", err)
	}
	status := constants.StatusInProgress
	res, err := rec.DragEnd(ctx, task.ID, board.Target{Column: &status})
	if err != nil {
		t.Fatalf("drag end failed: %v", err)
	}
	if res.Task == nil || res.Task.Status != constants.StatusInProgress {
		t.Fatal("drag should commit the new status")
	}

	persisted, err := f.taskRepo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if persisted.Status != constants.StatusInProgress {
		t.Errorf("status change not persisted, got %s", persisted.Status)
	}
	if !res.Task.UpdatedAt.Equal(persisted.UpdatedAt) {
		t.Error("board cache should carry the server's updated_at")
	}
}
