package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/tasklist-server/internal/config"
	"github.com/BuzzLyutic/tasklist-server/internal/handler"
	"github.com/BuzzLyutic/tasklist-server/internal/repo"
	"github.com/BuzzLyutic/tasklist-server/internal/server"
	"github.com/BuzzLyutic/tasklist-server/internal/service"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	var taskRepo repo.TaskListRepository
	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to Database", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			logger.Fatal("Failed to ping the Database", zap.Error(err))
		}

		pgRepo := repo.NewPostgresRepo(pool, repo.DefaultListName)
		if err := pgRepo.Migrate(context.Background()); err != nil {
			logger.Fatal("Failed to migrate the Database", zap.Error(err))
		}
		logger.Info("Tasks will be saved to Postgres", zap.String("list", repo.DefaultListName))
		taskRepo = pgRepo
	default:
		fileRepo := repo.NewFileRepo(cfg.TasksFile, cfg.AtomicWrites)
		logger.Info("Tasks will be saved to file", zap.String("path", fileRepo.Path()))
		taskRepo = fileRepo
	}

	taskService := service.NewTaskListService(taskRepo)

	// Список задач должен существовать до приема соединений
	created, err := taskService.Init(context.Background())
	if err != nil {
		logger.Fatal("Failed to initialize task list", zap.Error(err))
	}
	if created {
		logger.Info("Initialized empty task list")
	} else if list, err := taskService.Load(context.Background()); err == nil {
		logger.Info("Loaded task list", zap.Int("tasks", list.Count()))
	}

	taskHandler := handler.NewTaskListHandler(taskService, logger)
	r := server.NewRouter(taskHandler, server.RouterConfig{
		SavePath:    cfg.SavePath,
		StaticDir:   cfg.StaticDir,
		LogRequests: true,
	})

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started",
			zap.String("addr", "http://localhost:"+cfg.Port+"/"),
			zap.String("save_path", cfg.SavePath),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
