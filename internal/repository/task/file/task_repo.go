package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/repository"

	"go.uber.org/zap"
)

// TaskStorage хранит задачи в плоском текстовом файле: строка заголовка,
// дальше по одной задаче на строку.
type TaskStorage struct {
	path string
}

var _ repository.TaskStore = (*TaskStorage)(nil)

func NewTaskStorage(path string) *TaskStorage {
	return &TaskStorage{path: path}
}

// Load читает весь файл. Отсутствие файла - пустой список без ошибки.
// Битая строка пропускается с предупреждением, загрузка продолжается.
func (s *TaskStorage) Load(ctx context.Context) ([]*task.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("Repository: Файл задач не найден, начинаем с пустого списка",
				zap.String("path", s.path))
			return []*task.Task{}, nil
		}
		return nil, fmt.Errorf("открытие файла задач: %w", err)
	}
	defer f.Close()

	tasks := []*task.Task{}
	scanner := bufio.NewScanner(f)

	// первая строка - заголовок
	if !scanner.Scan() {
		return tasks, scanner.Err()
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := task.ParseLine(line)
		if err != nil {
			logger.Warn("Repository: Битая строка пропущена",
				zap.Int("line", lineNo),
				zap.String("content", line),
				zap.Error(err))
			continue
		}
		tasks = append(tasks, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("чтение файла задач: %w", err)
	}

	logger.Info("Repository: Задачи загружены",
		zap.String("path", s.path),
		zap.Int("count", len(tasks)))
	return tasks, nil
}

// Save полностью перезаписывает файл в порядке списка. Запись идёт во
// временный файл рядом с целевым, затем rename: при сбое на диске
// остаётся прежнее содержимое, а не обрезанный файл.
func (s *TaskStorage) Save(ctx context.Context, tasks []*task.Task) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return fmt.Errorf("создание временного файла: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := fmt.Fprintln(w, task.Header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("запись заголовка: %w", err)
	}

	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, t.MarshalLine()); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("запись задачи %d: %w", t.ID, err)
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("сброс буфера: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("закрытие временного файла: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("замена файла задач: %w", err)
	}

	logger.Info("Repository: Задачи сохранены",
		zap.String("path", s.path),
		zap.Int("count", len(tasks)))
	return nil
}
