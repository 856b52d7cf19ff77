package board

import (
	"strconv"
	"strings"
	"time"

	"task-board-system.com/task-board-system/internal/constants"
	model "task-board-system.com/task-board-system/internal/models"
)

// Criteria holds the active board filters. Zero values and nil pointers
// mean the filter is not applied.
type Criteria struct {
	Search     string
	Status     constants.TaskStatus
	Priority   constants.TaskPriority
	Assignee   string
	Project    string
	Department string
	DueFrom    *time.Time
	DueTo      *time.Time
	Overdue    bool
}

// Filter returns the subset of tasks matching every set criterion, in the
// original order. Reordering on the board happens against the filtered view
// but persists against the unfiltered store, so stability matters here.
func Filter(tasks []model.Task, c Criteria, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, c, now) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t model.Task, c Criteria, now time.Time) bool {
	if !matchesSearch(t, c.Search) {
		return false
	}
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Priority != "" && t.Priority != c.Priority {
		return false
	}
	if c.Assignee != "" && strconv.FormatInt(t.AssigneeID, 10) != c.Assignee {
		return false
	}
	if c.Project != "" && t.Project != c.Project {
		return false
	}
	if c.Department != "" && t.AssigneeDepartment != c.Department {
		return false
	}
	if c.DueFrom != nil && (t.DueDate == nil || t.DueDate.Before(*c.DueFrom)) {
		return false
	}
	if c.DueTo != nil && (t.DueDate == nil || t.DueDate.After(*c.DueTo)) {
		return false
	}
	if c.Overdue {
		if t.DueDate == nil || !t.DueDate.Before(now) || t.Status == constants.StatusDone {
			return false
		}
	}
	return true
}

// matchesSearch does a case-insensitive substring match across title,
// description, assignee name, project and tags. An empty needle matches
// everything.
func matchesSearch(t model.Task, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, field := range []string{t.Title, t.Description, t.AssigneeName, t.Project} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
