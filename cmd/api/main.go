package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/twnguydev/uniteam/internal/config"
	"github.com/twnguydev/uniteam/internal/handler"
	"github.com/twnguydev/uniteam/internal/mailer"
	"github.com/twnguydev/uniteam/internal/middleware"
	"github.com/twnguydev/uniteam/internal/repository"
	"github.com/twnguydev/uniteam/internal/service"
	"github.com/twnguydev/uniteam/internal/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	cancel()
	if err != nil {
		slog.Error("database initialization failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mail, err := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})
	if err != nil {
		slog.Error("mailer initialization failed", "error", err)
		os.Exit(1)
	}

	tokens := token.NewManager(cfg.JWTSecret, "uniteam")

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	authService := service.NewAuthService(userRepo, tokens, cfg.AccessTokenTTL)
	userService := service.NewUserService(userRepo, mail, cfg.FrontendURL)
	eventService := service.NewEventService(eventRepo)
	participantService := service.NewParticipantService(participantRepo, eventRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService)
	participantHandler := handler.NewParticipantHandler(participantService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	groupHandler := handler.NewCatalogHandler(service.NewCatalogService(repository.NewGroupRepository(db)), "group")
	roomHandler := handler.NewCatalogHandler(service.NewCatalogService(repository.NewRoomRepository(db)), "room")
	statusHandler := handler.NewCatalogHandler(service.NewCatalogService(repository.NewStatusRepository(db)), "status")

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/auth/token", authHandler.HandleLogin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(authService))

		r.Get("/auth/me", authHandler.HandleMe)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.HandleList)
			r.Get("/{user_id}", userHandler.HandleGet)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", userHandler.HandleCreate)
				r.Put("/{user_id}", userHandler.HandleUpdate)
				r.Delete("/{user_id}", userHandler.HandleDelete)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.HandleList)
			r.Post("/", eventHandler.HandleCreate)
			r.Get("/{event_id}", eventHandler.HandleGet)
			r.Put("/{event_id}", eventHandler.HandleUpdate)
			r.Delete("/{event_id}", eventHandler.HandleDelete)

			r.Get("/{event_id}/participants", participantHandler.HandleListByEvent)
			r.Post("/{event_id}/participants", participantHandler.HandleJoin)
			r.Delete("/{event_id}/participants", participantHandler.HandleLeave)
		})

		r.Get("/participations", participantHandler.HandleListMine)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationHandler.HandleList)
			r.Delete("/{notification_id}", notificationHandler.HandleDelete)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", notificationHandler.HandleCreate)
			})
		})

		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/rooms", roomHandler.Routes())
		r.Mount("/statuses", statusHandler.Routes())
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
