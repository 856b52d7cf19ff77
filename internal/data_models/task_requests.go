package dto

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	AssigneeID  int64    `json:"assignee_id"`
	DueDate     string   `json:"due_date"`
	Project     string   `json:"project"`
	Tags        []string `json:"tags"`
}

type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	AssigneeID  *int64    `json:"assignee_id"`
	DueDate     *string   `json:"due_date"`
	Project     *string   `json:"project"`
	Tags        *[]string `json:"tags"`
}

// MoveTaskRequest is a completed drag gesture: the task that was dragged and
// either the task or the column it was dropped on. Both targets absent means
// the drop landed nowhere.
type MoveTaskRequest struct {
	TaskID       int64   `json:"task_id"`
	TargetTaskID *int64  `json:"target_task_id"`
	TargetColumn *string `json:"target_column"`
}
