package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	model "task-board-system.com/task-board-system/internal/models"
)

const reloadTimeout = 10 * time.Second

// Store is the in-memory authoritative cache of the tasks a session works
// with between fetches. All mutations go through it: optimistic ones via
// ApplyLocal, confirmed ones via Commit.
type Store struct {
	mu      sync.Mutex
	gateway Gateway
	tasks   []model.Task
	loaded  bool
	subs    []func()
}

func NewStore(gateway Gateway) *Store {
	return &Store{gateway: gateway}
}

// Load replaces the cache with the gateway's task list. On failure the
// previous cache is kept untouched so the caller can surface a retry.
func (s *Store) Load(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.gateway.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.loaded = true
	s.mu.Unlock()

	s.notify()
	return s.Tasks(), nil
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Tasks returns a copy of the cached list in its current order.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id int64) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// ApplyLocal mutates the cached task only. It never talks to the gateway;
// callers pair it with Commit for the authoritative write.
func (s *Store) ApplyLocal(id int64, patch model.TaskPatch) bool {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	applyPatch(&s.tasks[i], patch)
	s.mu.Unlock()

	s.notify()
	return true
}

// Commit writes the patch through the gateway. On success the cached task is
// replaced by the server's response, so updated_at always reflects server
// time. On failure the cache is reloaded from the gateway and the optimistic
// state is discarded; no divergent state survives a rejected commit.
func (s *Store) Commit(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	task, err := s.gateway.UpdateTask(ctx, id, patch)
	if err != nil {
		s.reload()
		return nil, err
	}

	s.mu.Lock()
	if i := s.index(id); i >= 0 {
		s.tasks[i] = *task
	}
	s.mu.Unlock()

	s.notify()
	return task, nil
}

// MoveWithin splices the cached list: the source task is removed and
// reinserted at the target task's position. This is the same-column reorder;
// the order is session-local and resets on the next Load, as there is no
// rank field to persist it against.
func (s *Store) MoveWithin(sourceID, targetID int64) bool {
	s.mu.Lock()
	src := s.index(sourceID)
	dst := s.index(targetID)
	if src < 0 || dst < 0 || src == dst {
		s.mu.Unlock()
		return false
	}

	task := s.tasks[src]
	s.tasks = append(s.tasks[:src], s.tasks[src+1:]...)
	if dst > src {
		dst--
	}
	s.tasks = append(s.tasks[:dst], append([]model.Task{task}, s.tasks[dst:]...)...)
	s.mu.Unlock()

	s.notify()
	return true
}

// Subscribe registers a callback invoked after every cache change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (s *Store) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	// The drag context may already be expired here; resynchronization runs
	// on its own deadline. A failed reload keeps the previous cache.
	_, _ = s.Load(ctx)
}

// index must be called with s.mu held.
func (s *Store) index(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func applyPatch(t *model.Task, p model.TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.AssigneeID != nil {
		t.AssigneeID = *p.AssigneeID
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.Project != nil {
		t.Project = *p.Project
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
}
