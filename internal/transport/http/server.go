package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"moviereviews/internal/analytics"
	"moviereviews/internal/config"
	"moviereviews/internal/database"
	"moviereviews/internal/handler"
	"moviereviews/internal/queue"
	appredis "moviereviews/internal/redis"
	"moviereviews/internal/repository"
	"moviereviews/internal/service"
	"moviereviews/internal/worker"
)

// Run wires the whole application together and serves HTTP until the
// process receives SIGINT/SIGTERM. Configuration is loaded once here and
// handed down by reference; nothing reads the environment after startup.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	redisClient, err := appredis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer redisClient.Close()

	ctx := context.Background()
	if err := redisClient.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Queue
	publisher := queue.NewPublisher(redisClient.Client)
	consumer := queue.NewConsumer(redisClient.Client)

	// Services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, cfg)
	movieService := service.NewMovieService(movieRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo, publisher)

	// Analytics workers consume review events off the stream and forward
	// them to Google Analytics. The HTTP path never waits on them.
	notifier := analytics.NewGAClient(cfg.GATrackingID)
	manager := worker.NewManager(consumer, worker.NewHandler(notifier), worker.ManagerConfig{
		WorkerCount: cfg.AnalyticsWorkerCount,
	})
	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("failed to start analytics workers: %w", err)
	}
	defer manager.Stop()

	// Handlers
	authHandler := handler.NewAuthHandler(userService, authService)
	movieHandler := handler.NewMovieHandler(movieService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	router := NewRouter(RouterConfig{
		AuthHandler:   authHandler,
		MovieHandler:  movieHandler,
		ReviewHandler: reviewHandler,
		Verifier:      authService,
	})

	server := &stdhttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Printf("Received %v, shutting down", sig)
	}

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
