package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/khatasathi/inventory-admin/internal/auth"
	"github.com/khatasathi/inventory-admin/internal/config"
	"github.com/khatasathi/inventory-admin/internal/db"
	"github.com/khatasathi/inventory-admin/internal/http/handlers"
	rl "github.com/khatasathi/inventory-admin/internal/http/rate_limiter"
	"github.com/khatasathi/inventory-admin/internal/http/router"
	"github.com/khatasathi/inventory-admin/internal/logger"
	"github.com/khatasathi/inventory-admin/internal/redissvc"
	"github.com/khatasathi/inventory-admin/internal/repo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title KhataSathi API
// @version 1.0
// @description REST API for the KhataSathi inventory admin dashboard.
// @host localhost:4000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to env file (default .env)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	lg, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)
	rl.Configure(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop(ctx, time.Minute, 3*time.Minute)

	database, err := setupRepositories(ctx, cfg)
	if err != nil {
		lg.Fatal("could not set up repositories", zap.Error(err))
	}
	if database != nil {
		defer database.Close()
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()

		svc := redissvc.NewRedisService(rdb, "khatasathi:", cfg.Redis.MetaTTL)
		if err := svc.Ping(ctx); err != nil {
			lg.Warn("redis unavailable, meta cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			handlers.SetMetaCache(redissvc.NewMetaCache(svc))
		}
	}

	if cfg.Admin.Password != "" {
		if err := handlers.SeedAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			lg.Fatal("could not seed admin user", zap.Error(err))
		}
	} else {
		lg.Warn("ADMIN_PASSWORD not set, no admin user seeded")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		lg.Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", zap.Error(err))
	}
}

// setupRepositories wires Postgres repositories when DATABASE_URL is set and
// in-memory ones otherwise. The returned *sql.DB is nil in memory mode.
func setupRepositories(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Database.URL == "" {
		zap.L().Warn("DATABASE_URL not set, using in-memory repositories")
		products := repo.NewInMemoryProductRepository()
		handlers.SetProductRepo(products)
		handlers.SetMetricsRepo(repo.NewInMemoryMetricsRepository(products))
		handlers.SetUserRepo(repo.NewInMemoryUserRepository())
		return nil, nil
	}

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, database); err != nil {
		database.Close()
		return nil, err
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	return database, nil
}
