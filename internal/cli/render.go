package cli

import (
	"fmt"
	"io"

	"todoList/internal/models/task"
)

// renderTasks печатает таблицу задач фиксированной ширины. Длинные
// названия обрезаются, даты выводятся без времени.
func renderTasks(out io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "Нет задач для отображения.")
		return
	}

	fmt.Fprintf(out, "\n%-4s %-20s %-10s %-12s %-10s %-12s\n",
		"ID", "Название", "Приоритет", "Срок", "Статус", "Создана")
	fmt.Fprintln(out, "-----------------------------------------------------------------------")

	for _, t := range tasks {
		fmt.Fprintf(out, "%-4d %-20s %-10s %-12s %-10s %-12s\n",
			t.ID,
			truncate(t.Title, 18),
			t.Priority,
			t.DueDate.Format(task.DateLayout),
			t.Status,
			t.CreatedAt.Format(task.DateLayout))
	}
	fmt.Fprintln(out, "-----------------------------------------------------------------------")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
