package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/biblioteca/biblioteca-admin/internal/config"
	"github.com/biblioteca/biblioteca-admin/internal/crypto"
	"github.com/biblioteca/biblioteca-admin/internal/handler"
	"github.com/biblioteca/biblioteca-admin/internal/middleware"
	"github.com/biblioteca/biblioteca-admin/internal/repository"
	"github.com/biblioteca/biblioteca-admin/internal/service"
	"github.com/biblioteca/biblioteca-admin/internal/session"
	"github.com/biblioteca/biblioteca-admin/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if cfg.LoginRequired() {
		if err := crypto.CheckHash(cfg.AdminPasswordHash); err != nil {
			slog.Error("invalid ADMIN_PASSWORD_HASH", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("ADMIN_PASSWORD_HASH not set, admin pages are open")
	}
	if cfg.TrustProxy {
		slog.Info("trusting X-Forwarded-For for client addresses")
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("loading templates", "error", err)
		os.Exit(1)
	}

	client := repository.NewClient(cfg.APIBaseURL)
	books := service.NewBookResource(repository.NewBookRepository(client))
	users := service.NewUserResource(repository.NewUserRepository(client))

	store := session.NewStore(cfg.SessionTTL, 10*time.Minute)
	defer store.Close()

	sessions := middleware.NewSessionManager(middleware.SessionOptions{
		Store:  store,
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.Env == "production",
	})

	pages := handler.NewPages(renderer, cfg.LoginRequired())
	router := handler.NewRouter(handler.Router{
		Pages: pages,
		Home:  handler.NewHomeHandler(service.NewDashboard(books), pages),
		Books: handler.NewBookHandler(service.NewBookService(books), pages),
		Users: handler.NewUserHandler(service.NewUserService(users), pages),
		Auth:  handler.NewAuthHandler(crypto.NewPasswordHasher(crypto.DefaultArgon2Params()), cfg.AdminPasswordHash, sessions, pages),

		Sessions:      sessions.Handler,
		RateLimit:     middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		LoginRequired: cfg.LoginRequired(),
		TrustProxy:    cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
