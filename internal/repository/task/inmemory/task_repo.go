package inmemory

import (
	"context"
	"sync"

	"todoList/internal/models/task"
	"todoList/internal/repository"
)

// TaskStorage - эфемерное хранилище для тестов и режима repository.type:
// inmemory. Держит копию списка, чтобы вызывающий код не делил с ним срез.
type TaskStorage struct {
	mtx   sync.RWMutex
	tasks []*task.Task
}

var _ repository.TaskStore = (*TaskStorage)(nil)

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{tasks: []*task.Task{}}
}

func (s *TaskStorage) Load(ctx context.Context) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, len(s.tasks))
	for i, t := range s.tasks {
		copied := *t
		res[i] = &copied
	}
	return res, nil
}

func (s *TaskStorage) Save(ctx context.Context, tasks []*task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	res := make([]*task.Task, len(tasks))
	for i, t := range tasks {
		copied := *t
		res[i] = &copied
	}
	s.tasks = res
	return nil
}
