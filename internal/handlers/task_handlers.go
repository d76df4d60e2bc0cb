package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"todoList/internal/handlers/dto"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Вторая поверхность над тем же сервисом: оболочка и http-сервер живут
// в одном процессе, поэтому состояние у них общее

type TaskHandler struct {
	TaskService TaskService
}

func NewTaskHandler(taskService TaskService) TaskHandler {
	return TaskHandler{
		TaskService: taskService,
	}
}

func (h *TaskHandler) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.GetTasks)  // GET /tasks
		r.Post("/", h.PostTask) // POST /tasks

		r.Get("/pending", h.GetPendingTasks)     // GET /tasks/pending
		r.Get("/completed", h.GetCompletedTasks) // GET /tasks/completed
		r.Get("/due-soon", h.GetDueSoonTasks)    // GET /tasks/due-soon
		r.Get("/overdue", h.GetOverdueTasks)     // GET /tasks/overdue

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/complete", h.CompleteTask) // POST /tasks/{id}/complete
			r.Delete("/", h.DeleteTask)         // DELETE /tasks/{id}
		})
	})

	r.Get("/health", h.HealthCheck)
	return r
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, "")
}

func (h *TaskHandler) GetPendingTasks(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, service.FilterPending)
}

func (h *TaskHandler) GetCompletedTasks(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, service.FilterCompleted)
}

func (h *TaskHandler) GetDueSoonTasks(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, service.FilterDueSoon)
}

func (h *TaskHandler) GetOverdueTasks(w http.ResponseWriter, r *http.Request) {
	h.listTasks(w, r, service.FilterOverdue)
}

func (h *TaskHandler) listTasks(w http.ResponseWriter, r *http.Request, kind service.FilterKind) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var tasks []*task.Task
	if kind == "" {
		tasks = h.TaskService.ListSorted(r.Context())
	} else {
		tasks = h.TaskService.ListFiltered(r.Context(), kind)
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.String("filter", string(kind)),
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks)))
}

func (h *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	if request.Title == "" {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", "title"),
			zap.String("error", "empty_field"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "название не может быть пустым")
		return
	}

	dueDate, err := time.Parse(task.DateLayout, request.DueDate)
	if err != nil {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", "due_date"),
			zap.String("error", "wrong_format"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "срок должен быть в формате ГГГГ-ММ-ДД")
		return
	}

	created, err := h.TaskService.AddTask(r.Context(), request.Title, request.Description, dueDate, request.Priority)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "add_task"),
			zap.Duration("ms", time.Since(start)))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.Int("task_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("task", dto.FromTask(created)))
}

func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	completed, err := h.TaskService.CompleteTask(r.Context(), id)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "complete_task"),
			zap.Duration("ms", time.Since(start)))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача выполнена",
		zap.Int("task_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(completed)))
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.TaskService.DeleteTask(r.Context(), id); err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "delete_task"),
			zap.Duration("ms", time.Since(start)))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.Int("task_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	healthCheck(w)
}

func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "id должен быть числом")
		return 0, false
	}
	return id, true
}
