package task_test

import (
	"testing"
	"time"

	"todoList/internal/models/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePriority тестирует разбор приоритета без учёта регистра
func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected task.Priority
		wantErr  bool
	}{
		{name: "canonical high", input: "High", expected: task.PriorityHigh},
		{name: "lowercase medium", input: "medium", expected: task.PriorityMedium},
		{name: "uppercase low", input: "LOW", expected: task.PriorityLow},
		{name: "padded input", input: "  high  ", expected: task.PriorityHigh},
		{name: "unknown value", input: "urgent", wantErr: true},
		{name: "empty value", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := task.ParsePriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

// TestParseStatus тестирует разбор статуса
func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Completed", "Overdue"} {
		got, err := task.ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, task.Status(valid), got)
	}

	_, err := task.ParseStatus("pending") // регистр в файле фиксированный
	assert.Error(t, err)

	_, err = task.ParseStatus("Deleted")
	assert.Error(t, err)
}

// TestDisplayRank тестирует таблицу эффективных приоритетов
func TestDisplayRank(t *testing.T) {
	tests := []struct {
		name     string
		task     task.Task
		expected int
	}{
		{
			name:     "overdue overrides priority",
			task:     task.Task{Status: task.StatusOverdue, Priority: task.PriorityLow},
			expected: 0,
		},
		{
			name:     "pending high",
			task:     task.Task{Status: task.StatusPending, Priority: task.PriorityHigh},
			expected: 1,
		},
		{
			name:     "pending medium",
			task:     task.Task{Status: task.StatusPending, Priority: task.PriorityMedium},
			expected: 2,
		},
		{
			name:     "completed keeps priority rank",
			task:     task.Task{Status: task.StatusCompleted, Priority: task.PriorityLow},
			expected: 3,
		},
		{
			name:     "unknown priority goes last",
			task:     task.Task{Status: task.StatusPending, Priority: "Urgent"},
			expected: 99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.DisplayRank())
		})
	}
}

// TestMarshalLine тестирует сборку строки файла
func TestMarshalLine(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	taskToWrite := &task.Task{
		ID:          1,
		Title:       "Pay rent",
		Description: "",
		DueDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Priority:    task.PriorityHigh,
		Status:      task.StatusPending,
		CreatedAt:   createdAt,
	}

	line := taskToWrite.MarshalLine()
	assert.Equal(t, "1,Pay rent,,2024-01-15,High,Pending,2024-01-01T10:00:00,", line)

	// завершённая задача пишет восьмое поле
	completedAt := time.Date(2024, 1, 2, 12, 30, 0, 0, time.UTC)
	taskToWrite.Status = task.StatusCompleted
	taskToWrite.CompletedAt = &completedAt
	line = taskToWrite.MarshalLine()
	assert.Equal(t, "1,Pay rent,,2024-01-15,High,Completed,2024-01-01T10:00:00,2024-01-02T12:30:00", line)
}

// TestParseLine тестирует разбор строки файла
func TestParseLine(t *testing.T) {
	t.Run("valid pending line", func(t *testing.T) {
		got, err := task.ParseLine("5,Title,Desc,2024-01-01,High,Pending,2024-01-01T10:00:00,")
		require.NoError(t, err)

		assert.Equal(t, 5, got.ID)
		assert.Equal(t, "Title", got.Title)
		assert.Equal(t, "Desc", got.Description)
		assert.Equal(t, task.PriorityHigh, got.Priority)
		assert.Equal(t, task.StatusPending, got.Status)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("valid completed line", func(t *testing.T) {
		got, err := task.ParseLine("2,Done,,2024-01-01,Low,Completed,2024-01-01T10:00:00,2024-01-05T09:15:00")
		require.NoError(t, err)

		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC), *got.CompletedAt)
	})

	t.Run("missing completed field still parses", func(t *testing.T) {
		got, err := task.ParseLine("3,Seven,,2024-01-01,Low,Pending,2024-01-01T10:00:00")
		require.NoError(t, err)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("unknown priority survives as text", func(t *testing.T) {
		got, err := task.ParseLine("4,Odd,,2024-01-01,Urgent,Pending,2024-01-01T10:00:00,")
		require.NoError(t, err)
		assert.Equal(t, task.Priority("Urgent"), got.Priority)
		assert.Equal(t, 99, got.DisplayRank())
	})

	tests := []struct {
		name string
		line string
	}{
		{name: "non-numeric id", line: "abc,Title,,2024-01-01,High,Pending,2024-01-01T10:00:00,"},
		{name: "too few fields", line: "1,Title,2024-01-01"},
		{name: "bad due date", line: "1,Title,,01/01/2024,High,Pending,2024-01-01T10:00:00,"},
		{name: "bad created at", line: "1,Title,,2024-01-01,High,Pending,yesterday,"},
		{name: "bad completed at", line: "1,Title,,2024-01-01,High,Completed,2024-01-01T10:00:00,never"},
		{name: "unknown status", line: "1,Title,,2024-01-01,High,Archived,2024-01-01T10:00:00,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := task.ParseLine(tt.line)
			assert.Error(t, err)
		})
	}
}

// TestLineRoundTrip тестирует запись и обратное чтение одной задачи
func TestLineRoundTrip(t *testing.T) {
	completedAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	original := &task.Task{
		ID:          42,
		Title:       "Backup",
		Description: "weekly backup",
		DueDate:     time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		Priority:    task.PriorityMedium,
		Status:      task.StatusCompleted,
		CreatedAt:   time.Date(2024, 2, 1, 7, 45, 30, 0, time.UTC),
		CompletedAt: &completedAt,
	}

	parsed, err := task.ParseLine(original.MarshalLine())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
