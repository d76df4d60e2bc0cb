package task

import (
	"fmt"
	"strings"
	"time"
)

type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Status string
type Priority string

const StatusPending Status = "Pending"
const StatusCompleted Status = "Completed"
const StatusOverdue Status = "Overdue"

const PriorityHigh Priority = "High"
const PriorityMedium Priority = "Medium"
const PriorityLow Priority = "Low"

// ParsePriority принимает значение без учёта регистра и возвращает
// нормализованную форму для хранения
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("неизвестный приоритет %q", raw)
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusCompleted, StatusOverdue:
		return Status(raw), nil
	}
	return "", fmt.Errorf("неизвестный статус %q", raw)
}

// Таблица рангов для сортировки при выводе. Ключ - статус Overdue либо
// текст приоритета, незнакомые значения уходят в конец (99).
var displayRank = map[string]int{
	"Overdue":   0,
	"High":      1,
	"Medium":    2,
	"Low":       3,
	"Pending":   4,
	"Completed": 5,
}

// DisplayRank возвращает эффективный приоритет задачи: просроченный статус
// перекрывает приоритет, остальные ранжируются по тексту приоритета
func (t *Task) DisplayRank() int {
	key := string(t.Priority)
	if t.Status == StatusOverdue {
		key = "Overdue"
	}
	if rank, ok := displayRank[key]; ok {
		return rank
	}
	return 99
}
