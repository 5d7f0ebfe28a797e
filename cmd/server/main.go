// Command microfeed starts the microfeed HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/avekshin/microfeed/internal/config"
	"github.com/avekshin/microfeed/internal/crypto"
	"github.com/avekshin/microfeed/internal/migrate"
	"github.com/avekshin/microfeed/internal/repository/postgres"
	httpserver "github.com/avekshin/microfeed/internal/server/http"
	"github.com/avekshin/microfeed/internal/service"
	"github.com/avekshin/microfeed/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and starts the HTTP server.
func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, cfg.DatabaseURL, cfg.PoolMinConns, cfg.PoolMaxConns)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	postRepo := postgres.NewPostRepo(db)
	commentRepo := postgres.NewCommentRepo(db)
	likeRepo := postgres.NewLikeRepo(db)

	hasher := crypto.NewPool(cfg.PasswordSalt, cfg.HashWorkers)
	defer hasher.Close()

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	// Services
	authSvc := service.NewAuthService(userRepo, codec, hasher, cfg.AdminUser, cfg.AdminPassword)
	userSvc := service.NewUserService(userRepo, hasher)
	postSvc := service.NewPostService(postRepo)
	commentSvc := service.NewCommentService(commentRepo, postRepo)
	likeSvc := service.NewLikeService(likeRepo)

	if err := authSvc.EnsureAdmin(ctx); err != nil {
		logger.Fatal("admin bootstrap", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	app := httpserver.New(logger, codec, authSvc, userSvc, postSvc, commentSvc, likeSvc)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: app.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
