package handlers

import (
	"context"
	"time"

	"todoList/internal/models/task"
	"todoList/internal/service"
)

type TaskService interface {
	AddTask(ctx context.Context, title, description string, dueDate time.Time, priority string) (*task.Task, error)
	CompleteTask(ctx context.Context, id int) (*task.Task, error)
	DeleteTask(ctx context.Context, id int) error
	ListSorted(ctx context.Context) []*task.Task
	ListFiltered(ctx context.Context, kind service.FilterKind) []*task.Task
}
