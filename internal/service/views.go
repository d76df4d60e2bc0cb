package service

import (
	"context"
	"sort"
	"time"

	"todoList/internal/models/task"
)

type FilterKind string

const FilterPending FilterKind = "pending"
const FilterCompleted FilterKind = "completed"
const FilterDueSoon FilterKind = "due-soon"
const FilterOverdue FilterKind = "overdue"

// ListSorted возвращает НОВЫЙ срез, отсортированный для вывода: сначала
// эффективный приоритет (Overdue перекрывает всё), при равенстве - более
// ранний срок. Исходный порядок списка не меняется - именно он уходит в
// файл. Перед сортировкой обновляется просрочка, без записи на диск.
func (s *TaskService) ListSorted(ctx context.Context) []*task.Task {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	RefreshOverdue(today(), s.tasks)
	return sortForDisplay(s.snapshotLocked())
}

// ListFiltered возвращает отфильтрованное и отсортированное для вывода
// представление. Ничего не мутирует и не сохраняет.
func (s *TaskService) ListFiltered(ctx context.Context, kind FilterKind) []*task.Task {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	RefreshOverdue(today(), s.tasks)

	day := today()
	tomorrow := day.AddDate(0, 0, 1)

	res := []*task.Task{}
	for _, t := range s.tasks {
		switch kind {
		case FilterPending:
			if t.Status == task.StatusPending {
				res = append(res, t)
			}
		case FilterCompleted:
			if t.Status == task.StatusCompleted {
				res = append(res, t)
			}
		case FilterDueSoon:
			if sameDay(t.DueDate, day) || sameDay(t.DueDate, tomorrow) {
				res = append(res, t)
			}
		case FilterOverdue:
			if t.Status == task.StatusOverdue {
				res = append(res, t)
			}
		}
	}

	return sortForDisplay(res)
}

func sortForDisplay(tasks []*task.Task) []*task.Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tasks[i].DisplayRank(), tasks[j].DisplayRank()
		if ri != rj {
			return ri < rj
		}
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
	return tasks
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
