package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"todoList/internal/logger"
	"todoList/internal/models/task"

	"go.uber.org/zap"
)

type RepoType string

const FileType RepoType = "file"
const InMemoryType RepoType = "inmemory"

// TaskService владеет списком задач в памяти и после каждой мутации
// переписывает его в хранилище целиком. Мьютекс нужен, потому что рядом с
// интерактивной оболочкой могут работать фоновый воркер и http-сервер.
type TaskService struct {
	store    TaskStore
	RepoType RepoType

	mtx   sync.RWMutex
	tasks []*task.Task
}

func NewTaskService(store TaskStore, repoType RepoType) *TaskService {
	return &TaskService{
		store:    store,
		RepoType: repoType,
		tasks:    []*task.Task{},
	}
}

// LoadAndRefresh загружает задачи, переводит просроченные в Overdue и
// сохраняет файл, если что-то поменялось. Ошибка чтения не фатальна:
// начинаем с пустого списка, как и при отсутствии файла.
func (s *TaskService) LoadAndRefresh(ctx context.Context) ([]*task.Task, error) {
	loaded, err := s.store.Load(ctx)
	if err != nil {
		logger.Error("Service: Ошибка загрузки задач, стартуем с пустым списком", err)
		loaded = []*task.Task{}
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = loaded
	changed := RefreshOverdue(today(), s.tasks)
	if changed > 0 {
		logger.Info("Service: Задачи просрочены при загрузке", zap.Int("count", changed))
		if err := s.persistLocked(ctx); err != nil {
			return s.snapshotLocked(), err
		}
	}

	return s.snapshotLocked(), nil
}

// AddTask создаёт задачу: id = максимальный существующий + 1 (или 1 для
// пустого списка), статус Pending, после добавления список сохраняется
func (s *TaskService) AddTask(ctx context.Context, title, description string, dueDate time.Time, priority string) (*task.Task, error) {
	// оболочка уже валидирует приоритет, но сервис перепроверяет:
	// сюда же ходит http-слой
	normalized, err := task.ParsePriority(priority)
	if err != nil {
		logger.Warn("Service: Неверный приоритет", zap.String("priority", priority))
		return nil, NewValidationError("priority", "ожидается High, Medium или Low")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	newTask := &task.Task{
		ID:          s.nextIDLocked(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    normalized,
		Status:      task.StatusPending,
		CreatedAt:   time.Now(),
	}
	s.tasks = append(s.tasks, newTask)

	logger.Info("Service: Задача добавлена",
		zap.Int("task_id", newTask.ID),
		zap.String("priority", string(normalized)))

	if err := s.persistLocked(ctx); err != nil {
		return newTask, err
	}
	return newTask, nil
}

// CompleteTask отмечает задачу выполненной. Повторное выполнение и промах
// по id - бизнес-ошибки, но файл переписывается в любом случае: так вёл
// себя оригинал, поведение сохранено осознанно.
func (s *TaskService) CompleteTask(ctx context.Context, id int) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var opErr error
	var completed *task.Task

	t := s.findLocked(id)
	switch {
	case t == nil:
		logger.Info("Service: Задача не найдена", zap.Int("task_id", id))
		opErr = NewNotFound(id)
	case t.Status == task.StatusCompleted:
		logger.Info("Service: Задача уже выполнена", zap.Int("task_id", id))
		opErr = NewAlreadyCompleted(id)
	default:
		now := time.Now()
		t.Status = task.StatusCompleted
		t.CompletedAt = &now
		completed = t
		logger.Info("Service: Задача выполнена", zap.Int("task_id", id))
	}

	saveErr := s.persistLocked(ctx)
	if opErr != nil {
		return nil, opErr
	}
	return completed, saveErr
}

// DeleteTask удаляет задачу по id. Файл переписывается и при промахе.
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var opErr error
	found := false
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			found = true
			break
		}
	}

	if found {
		logger.Info("Service: Задача удалена", zap.Int("task_id", id))
	} else {
		logger.Info("Service: Задача не найдена", zap.Int("task_id", id))
		opErr = NewNotFound(id)
	}

	saveErr := s.persistLocked(ctx)
	if opErr != nil {
		return opErr
	}
	return saveErr
}

// Persist сохраняет текущий список явно - финальная запись при выходе
func (s *TaskService) Persist(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.persistLocked(ctx)
}

// RefreshOverdueNow пересчитывает просрочку на текущую дату и сохраняет
// файл, только если что-то поменялось. Используется фоновым воркером.
func (s *TaskService) RefreshOverdueNow(ctx context.Context) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	changed := RefreshOverdue(today(), s.tasks)
	if changed == 0 {
		return 0, nil
	}
	return changed, s.persistLocked(ctx)
}

// RefreshOverdue - чистая функция обновления просрочки: Pending со сроком
// строго раньше today становится Overdue. Выполненные и уже просроченные
// задачи не трогаются, повторный вызов ничего не меняет.
func RefreshOverdue(today time.Time, tasks []*task.Task) int {
	changed := 0
	for _, t := range tasks {
		if t.Status == task.StatusPending && t.DueDate.Before(today) {
			t.Status = task.StatusOverdue
			changed++
		}
	}
	return changed
}

func (s *TaskService) persistLocked(ctx context.Context) error {
	if err := s.store.Save(ctx, s.tasks); err != nil {
		// список в памяти остаётся актуальным, на диске - устаревшее
		logger.Error("Service: Ошибка сохранения задач", err)
		return fmt.Errorf("сохранение задач: %w", err)
	}
	return nil
}

func (s *TaskService) findLocked(id int) *task.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *TaskService) nextIDLocked() int {
	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

func (s *TaskService) snapshotLocked() []*task.Task {
	res := make([]*task.Task, len(s.tasks))
	copy(res, s.tasks)
	return res
}

// today обрезает текущее время до календарной даты: просрочка считается
// по дням, а не по часам
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
