package dto

import (
	"time"

	"todoList/internal/models/task"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
}

type TaskResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
	IsOverdue   bool    `json:"is_overdue"`
}

func FromTask(t *task.Task) TaskResponse {
	var completedAt *string
	if t.CompletedAt != nil {
		formatted := t.CompletedAt.Format(task.TimeLayout)
		completedAt = &formatted
	}

	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Format(task.DateLayout),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(task.TimeLayout),
		CompletedAt: completedAt,
		IsOverdue: t.Status == task.StatusOverdue ||
			(t.Status != task.StatusCompleted && t.DueDate.Before(time.Now())),
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
