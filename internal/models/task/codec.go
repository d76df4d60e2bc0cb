package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Формат хранения: одна задача - одна строка, поля через запятую.
// Запятая внутри текста НЕ экранируется: такая строка при чтении
// развалится и будет пропущена, ровно как в исходном формате файла.

const DateLayout = "2006-01-02"
const TimeLayout = "2006-01-02T15:04:05"

const Header = "ID,Title,Description,DueDate,Priority,Status,CreatedAt,CompletedAt"

const minFields = 7

// MarshalLine собирает строку файла в фиксированном порядке полей
func (t *Task) MarshalLine() string {
	completedAt := ""
	if t.CompletedAt != nil {
		completedAt = t.CompletedAt.Format(TimeLayout)
	}

	fields := []string{
		strconv.Itoa(t.ID),
		t.Title,
		t.Description,
		t.DueDate.Format(DateLayout),
		string(t.Priority),
		string(t.Status),
		t.CreatedAt.Format(TimeLayout),
		completedAt,
	}
	return strings.Join(fields, ",")
}

// ParseLine разбирает строку файла. Любая ошибка формата означает, что
// строку нужно пропустить целиком, а не прерывать загрузку.
func ParseLine(line string) (*Task, error) {
	parts := strings.Split(line, ",")
	if len(parts) < minFields {
		return nil, fmt.Errorf("мало полей: %d из %d", len(parts), minFields)
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("разбор id: %w", err)
	}

	dueDate, err := time.Parse(DateLayout, parts[3])
	if err != nil {
		return nil, fmt.Errorf("разбор срока: %w", err)
	}

	status, err := ParseStatus(parts[5])
	if err != nil {
		return nil, fmt.Errorf("разбор статуса: %w", err)
	}

	createdAt, err := time.Parse(TimeLayout, parts[6])
	if err != nil {
		return nil, fmt.Errorf("разбор времени создания: %w", err)
	}

	// восьмое поле опционально: пустая строка - задача не завершена
	var completedAt *time.Time
	if len(parts) > 7 && parts[7] != "" {
		parsed, err := time.Parse(TimeLayout, parts[7])
		if err != nil {
			return nil, fmt.Errorf("разбор времени завершения: %w", err)
		}
		completedAt = &parsed
	}

	return &Task{
		ID:          id,
		Title:       parts[1],
		Description: parts[2],
		DueDate:     dueDate,
		// приоритет не валидируется при чтении: незнакомый текст
		// сохраняется как есть и ранжируется как 99
		Priority:    Priority(parts[4]),
		Status:      status,
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}, nil
}
