package board

import (
	"context"
	"sync"
	"time"

	"task-board-system.com/task-board-system/internal/constants"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
)

type DragState int

const (
	StateIdle DragState = iota
	StateDragging
	StateResolving
)

// Target is where a drag gesture ended: on another task, on a column, or
// nowhere (both nil).
type Target struct {
	TaskID *int64
	Column *constants.TaskStatus
}

// MoveResult describes what a completed gesture did.
type MoveResult struct {
	Task      *model.Task `json:"task,omitempty"`
	Reordered bool        `json:"reordered"`
	NoOp      bool        `json:"no_op"`
}

// Reconciler owns the drag-and-drop state machine of one board session:
// Idle -> Dragging -> (Resolving | Idle) -> Idle. A gesture that crosses
// columns becomes a status change, applied optimistically and committed
// through the store; a failed commit reloads from the source of truth and
// the optimistic state is gone.
type Reconciler struct {
	mu       sync.Mutex
	store    *Store
	timeout  time.Duration
	state    DragState
	active   *model.Task
	inflight map[int64]bool
}

func NewReconciler(store *Store, commitTimeout time.Duration) *Reconciler {
	return &Reconciler{
		store:    store,
		timeout:  commitTimeout,
		inflight: make(map[int64]bool),
	}
}

func (r *Reconciler) State() DragState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// ActiveTask is the snapshot taken at DragStart, used for overlay rendering.
func (r *Reconciler) ActiveTask() *model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return nil
	}
	snapshot := *r.active
	return &snapshot
}

// DragStart transitions Idle -> Dragging and snapshots the task. Nothing is
// mutated until DragEnd.
func (r *Reconciler) DragStart(taskID int64) error {
	task, ok := r.store.Get(taskID)
	if !ok {
		return apperrors.ErrTaskNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateIdle {
		return apperrors.ErrDragInProgress
	}
	r.state = StateDragging
	r.active = &task
	return nil
}

// DragEnd resolves the gesture and always returns the machine to Idle.
func (r *Reconciler) DragEnd(ctx context.Context, sourceID int64, target Target) (*MoveResult, error) {
	defer func() {
		r.mu.Lock()
		// A rejected gesture must not flip the machine to Idle while an
		// earlier commit is still resolving.
		if len(r.inflight) == 0 {
			r.state = StateIdle
		}
		r.active = nil
		r.mu.Unlock()
	}()

	// Dropped outside any valid target.
	if target.TaskID == nil && target.Column == nil {
		return &MoveResult{NoOp: true}, nil
	}

	source, ok := r.store.Get(sourceID)
	if !ok {
		return nil, apperrors.ErrTaskNotFound
	}

	newStatus := source.Status
	switch {
	case target.TaskID != nil:
		over, ok := r.store.Get(*target.TaskID)
		if !ok {
			return &MoveResult{NoOp: true}, nil
		}
		if over.Status == source.Status {
			r.store.MoveWithin(sourceID, over.ID)
			return &MoveResult{Reordered: true}, nil
		}
		newStatus = over.Status
	case target.Column != nil:
		if !target.Column.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		newStatus = *target.Column
	}

	if newStatus == source.Status {
		return &MoveResult{NoOp: true}, nil
	}

	return r.commitStatus(ctx, sourceID, newStatus)
}

// commitStatus applies the optimistic change, then reconciles against the
// server. At most one commit per task may be outstanding; a second gesture
// on the same task is rejected so the caller can retry.
func (r *Reconciler) commitStatus(ctx context.Context, taskID int64, status constants.TaskStatus) (*MoveResult, error) {
	r.mu.Lock()
	if r.inflight[taskID] {
		r.mu.Unlock()
		return nil, apperrors.ErrCommitInFlight
	}
	r.inflight[taskID] = true
	r.state = StateResolving
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.inflight, taskID)
		r.mu.Unlock()
	}()

	patch := model.TaskPatch{Status: &status}
	r.store.ApplyLocal(taskID, patch)

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	task, err := r.store.Commit(cctx, taskID, patch)
	if err != nil {
		return nil, err
	}
	return &MoveResult{Task: task}, nil
}
