package service

import (
	"context"

	"todoList/internal/models/task"
)

type TaskStore interface {
	Load(context.Context) ([]*task.Task, error)
	Save(context.Context, []*task.Task) error
}
