package sdk

import "time"

// Task represents a parenting to-do item.
type Task struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Completed     bool       `json:"completed"`
	Priority      int        `json:"priority"`
	PriorityLabel string     `json:"priority_label,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	IsOverdue     bool       `json:"is_overdue,omitempty"`
	IsDueSoon     bool       `json:"is_due_soon,omitempty"`
	DaysUntilDue  *int       `json:"days_until_due,omitempty"`
	Created       *time.Time `json:"created_at,omitempty"`
	LastUpdated   *time.Time `json:"updated_at,omitempty"`
}

// TaskSpec is the payload for creating or updating a task.
type TaskSpec struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// TaskList is a paged collection of tasks.
type TaskList struct {
	Items      []Task         `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}
