package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"lifeTracker/internal/config"
	"lifeTracker/internal/handlers"
	"lifeTracker/internal/logger"
	"lifeTracker/internal/middleware"
	"lifeTracker/internal/priority"
	rep "lifeTracker/internal/repository"
	goalinmemory "lifeTracker/internal/repository/goal/inmemory"
	probleminmemory "lifeTracker/internal/repository/problem/inmemory"
	taskinmemory "lifeTracker/internal/repository/task/inmemory"
	taskpostgres "lifeTracker/internal/repository/task/postgres"
	"lifeTracker/internal/service"
	"lifeTracker/internal/worker"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	worker    *worker.ReconcileWorker
	shutdowns []func()
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Shutting down logging...")
		logger.Sync()
	})

	defaultUser, err := uuid.Parse(a.config.Auth.DefaultUserID)
	if err != nil {
		return fmt.Errorf("parsing default user id: %w", err)
	}

	var taskRepo rep.TaskRepository
	switch a.config.Repository.Type {
	case "postgres":
		storage, err := taskpostgres.New(ctx, a.config.Database.URL)
		if err != nil {
			return fmt.Errorf("initializing postgres repository: %w", err)
		}
		a.shutdowns = append(a.shutdowns, storage.Close)
		taskRepo = storage
	case "inmemory", "":
		taskRepo = taskinmemory.NewTaskStorage()
	default:
		return fmt.Errorf("unknown repository type %q", a.config.Repository.Type)
	}

	// Goals and problems carry no computed logic; the in-memory store
	// covers them for now.
	goalRepo := goalinmemory.NewGoalStorage()
	problemRepo := probleminmemory.NewProblemStorage()

	policy := priority.DefaultPolicy()

	taskService := service.NewTaskService(taskRepo, policy)
	statsService := service.NewStatsService(taskRepo, goalRepo)
	goalService := service.NewGoalService(goalRepo)
	problemService := service.NewProblemService(problemRepo)

	taskHandler := handlers.NewTaskHandler(&taskService)
	statsHandler := handlers.NewStatsHandler(&statsService)
	goalHandler := handlers.NewGoalHandler(&goalService)
	problemHandler := handlers.NewProblemHandler(&problemService)
	financeHandler := handlers.NewFinanceHandler()

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(100))
	r.Use(middleware.UserContext(defaultUser))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-User-ID"},
	}))

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetTasks)  // GET /tasks?status=&life_area=&sort_by=
		r.Post("/", taskHandler.PostTask) // POST /tasks

		r.Get("/today-focus", taskHandler.TodayFocus) // GET /tasks/today-focus
		r.Get("/upcoming", taskHandler.UpcomingTasks) // GET /tasks/upcoming

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)   // GET /tasks/{id}
			r.Patch("/", taskHandler.PatchTask)   // PATCH /tasks/{id}
			r.Delete("/", taskHandler.DeleteTask) // DELETE /tasks/{id}

			r.Post("/complete", taskHandler.CompleteTask) // POST /tasks/{id}/complete
		})
	})

	r.Route("/goals", func(r chi.Router) {
		r.Get("/", goalHandler.GetGoals)
		r.Post("/", goalHandler.PostGoal)
		r.Patch("/{id}", goalHandler.PatchGoal)
		r.Delete("/{id}", goalHandler.DeleteGoal)
	})

	r.Route("/problems", func(r chi.Router) {
		r.Get("/", problemHandler.GetProblems)
		r.Post("/", problemHandler.PostProblem)
		r.Patch("/{id}", problemHandler.PatchProblem)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/quick", statsHandler.QuickStats)
		r.Get("/life-areas", statsHandler.LifeAreas)
	})

	r.Route("/progress", func(r chi.Router) {
		r.Get("/daily", statsHandler.DailyProgress)
		r.Get("/weekly", statsHandler.WeeklyProgress)
		r.Get("/monthly", statsHandler.MonthlyProgress)
		r.Get("/yearly", statsHandler.YearlyProgress)
	})

	r.Get("/finance/summary", financeHandler.Summary)

	r.Get("/health", taskHandler.HealthCheck)

	a.router = r
	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: r,
	}
	a.worker = worker.NewReconcileWorker(taskRepo, policy, a.config.Worker.Interval, a.config.Worker.BatchSize)

	return nil
}

func (a *App) Run(ctx context.Context) error {
	go a.worker.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started")
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.Shutdown()
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", err)
	}

	a.Shutdown()
	return nil
}

// Shutdown runs the registered cleanup functions in reverse order.
func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
