package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	_ "github.com/lib/pq"

	"academyscheduler/config"
	authadapter "academyscheduler/internal/adapters/auth"
	httpdelivery "academyscheduler/internal/delivery/http"
	"academyscheduler/internal/delivery/http/controllers"
	"academyscheduler/internal/delivery/http/middleware"
	"academyscheduler/internal/repository/postgres"
	"academyscheduler/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title Academy Scheduler API
// @version 1.0
// @description Lesson scheduling for training classes: rooms, trainers, modules, class curricula, and conflict-free session booking.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	logger.Info("starting", "env", cfg.Environment, "port", cfg.Port)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	sessionRepo := postgres.NewSessionRepository(db)
	detailRepo := postgres.NewClassDetailRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	userRepo := postgres.NewUserRepository(db)

	issuer, verifier := authadapter.NewJWTTokens(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)

	schedulerSvc := services.NewSchedulerService(sessionRepo, detailRepo, serviceTimeout)
	detailSvc := services.NewClassDetailService(detailRepo, serviceTimeout)
	catalogSvc := services.NewCatalogService(catalogRepo, serviceTimeout)
	authSvc := services.NewAuthService(userRepo, hasher, issuer, cfg.TokenExpiry, serviceTimeout)

	mux := httpdelivery.NewRouter(
		logger,
		verifier,
		controllers.NewScheduleController(logger, schedulerSvc),
		controllers.NewClassDetailController(logger, detailSvc),
		controllers.NewCatalogController(logger, catalogSvc),
		controllers.NewAuthController(logger, authSvc),
	)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	if cfg.CORSAllowedOrigins != "" {
		handler = middleware.CORS(strings.Split(cfg.CORSAllowedOrigins, ","), handler)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", "signal", sig.String())

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("stopped")
}
