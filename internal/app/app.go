package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"todoList/internal/cli"
	"todoList/internal/config"
	"todoList/internal/handlers"
	"todoList/internal/logger"
	"todoList/internal/middleware"
	"todoList/internal/repository"
	"todoList/internal/repository/task/file"
	"todoList/internal/repository/task/inmemory"
	"todoList/internal/service"
	"todoList/internal/worker"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	config    *config.Config
	service   *service.TaskService
	worker    *worker.OverdueWorker
	server    *http.Server
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Run собирает все слои и крутит интерактивную оболочку до выхода.
// Воркер и http-сервер (если включён) живут рядом и гаснут вместе с ней.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.Path); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Sync()
	})
	defer a.shutdown()

	store, repoType, err := a.pickStore()
	if err != nil {
		return err
	}

	a.service = service.NewTaskService(store, repoType)

	if _, err := a.service.LoadAndRefresh(ctx); err != nil {
		// задачи в памяти актуальны, просто не записались - работаем дальше
		logger.Warn("App: Не удалось сохранить задачи после загрузки", zap.Error(err))
	}

	workerCtx, stopWorker := context.WithCancel(ctx)
	a.shutdowns = append(a.shutdowns, stopWorker)

	a.worker = worker.NewOverdueWorker(a.service, a.config.Worker.Interval)
	go a.worker.Start(workerCtx)

	if a.config.Server.Enabled {
		a.startServer()
	}

	shell := cli.NewShell(a.service, in, out)
	return shell.Run(ctx)
}

func (a *App) pickStore() (repository.TaskStore, service.RepoType, error) {
	switch a.config.Repository.Type {
	case "file", "":
		return file.NewTaskStorage(a.config.Storage.Path), service.FileType, nil
	case "inmemory":
		return inmemory.NewTaskStorage(), service.InMemoryType, nil
	}
	return nil, "", fmt.Errorf("неизвестный тип хранилища %q", a.config.Repository.Type)
}

func (a *App) startServer() {
	handler := handlers.NewTaskHandler(a.service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(a.config.Server.RateLimitRPM))
	r.Mount("/", handler.Routes())

	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: r,
	}

	a.shutdowns = append(a.shutdowns, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.server.Shutdown(shutdownCtx)
	})

	go func() {
		logger.Info("App: HTTP-сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("App: Ошибка HTTP-сервера", err)
		}
	}()
}

func (a *App) shutdown() {
	// в обратном порядке: сервер и воркер раньше, логгер последним
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
