package repository

import (
	"context"

	"todoList/internal/models/task"
)

// TaskStore - контракт хранилища. Список задач всегда читается и
// перезаписывается целиком, инкрементального сохранения нет.
type TaskStore interface {
	Load(ctx context.Context) ([]*task.Task, error)
	Save(ctx context.Context, tasks []*task.Task) error
}
