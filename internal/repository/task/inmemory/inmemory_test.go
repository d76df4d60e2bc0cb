package inmemory_test

import (
	"context"
	"testing"
	"time"

	"todoList/internal/models/task"
	"todoList/internal/repository/task/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTaskStorage_New тестирует создание хранилища
func TestTaskStorage_New(t *testing.T) {
	storage := inmemory.NewTaskStorage()
	assert.NotNil(t, storage)
}

// TestTaskStorage_LoadEmpty тестирует загрузку из пустого хранилища
func TestTaskStorage_LoadEmpty(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	tasks, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// TestTaskStorage_SaveLoad тестирует сохранение и загрузку
func TestTaskStorage_SaveLoad(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	tasks := []*task.Task{
		{ID: 1, Title: "Test Task", Status: task.StatusPending, DueDate: time.Now().Add(24 * time.Hour)},
		{ID: 2, Title: "Second", Status: task.StatusCompleted},
	}

	require.NoError(t, storage.Save(ctx, tasks))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Test Task", loaded[0].Title)
	assert.Equal(t, 2, loaded[1].ID)
}

// TestTaskStorage_Isolation тестирует, что хранилище отдаёт копии:
// правка результата Load не должна менять сохранённое состояние
func TestTaskStorage_Isolation(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	require.NoError(t, storage.Save(ctx, []*task.Task{{ID: 1, Title: "Original"}}))

	loaded, err := storage.Load(ctx)
	require.NoError(t, err)
	loaded[0].Title = "Mutated"

	reloaded, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Original", reloaded[0].Title)
}
