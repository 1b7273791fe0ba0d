// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Command crossstack runs the CrossStack community site: public pages,
// membership sign-up, photo album and the admin dashboard.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/voidlabs/crossstack/internal/config"
	"github.com/voidlabs/crossstack/internal/handler"
	"github.com/voidlabs/crossstack/internal/middleware"
	"github.com/voidlabs/crossstack/internal/render"
	"github.com/voidlabs/crossstack/internal/service"
	"github.com/voidlabs/crossstack/internal/session"
	"github.com/voidlabs/crossstack/internal/store"
	"github.com/voidlabs/crossstack/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupLogger(cfg)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	ctx := context.Background()
	if err := store.Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if err := store.SeedDemo(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding demo content: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates,
		SessionManager: sessionManager,
		SiteName:       cfg.SiteName,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	queries := store.New(db)
	adminService := service.NewAdminService(db, cfg.DesignatedAdminEmails())
	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	frontendHandler := handler.NewFrontendHandler(db, renderer, sessionManager)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, adminService, loginProtection)
	adminHandler := handler.NewAdminHandler(db, renderer, adminService)

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.CSRF([]byte(cfg.SessionSecret), cfg.IsDevelopment()))
	r.Use(middleware.LoadAccount(sessionManager, queries, adminService))

	// Public pages
	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get(handler.RouteEvents, frontendHandler.Events)
	r.Get(handler.RouteEventsID, frontendHandler.EventDetail)
	r.Get(handler.RouteAbout, frontendHandler.About)
	r.Get(handler.RouteAlbum, frontendHandler.Album)
	r.Get(handler.RouteJoin, frontendHandler.JoinForm)
	r.Post(handler.RouteJoin, frontendHandler.JoinSubmit)

	// Auth
	r.Get(handler.RouteLogin, authHandler.LoginForm)
	r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
	r.Get(handler.RouteSignup, authHandler.SignupForm)
	r.Post(handler.RouteSignup, authHandler.Signup)
	r.Get(handler.RouteSignUpSuccess, authHandler.SignUpSuccess)
	r.Post(handler.RouteLogout, authHandler.Logout)

	// Admin dashboard
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin())

		r.Get(handler.RouteRoot, adminHandler.Dashboard)

		r.Route(handler.RouteEvents, func(r chi.Router) {
			r.Post(handler.RouteRoot, adminHandler.CreateEvent)
			r.Get(handler.RouteParamID, adminHandler.EventDetailEditor)
			r.Post(handler.RouteParamID, adminHandler.UpdateEvent)
			r.Post(handler.RouteParamID+"/delete", adminHandler.DeleteEvent)
			r.Post(handler.RouteParamID+"/details", adminHandler.UpdateEventDetails)
			r.Post(handler.RouteParamID+"/images", adminHandler.AddEventImage)
			r.Post(handler.RouteParamID+"/images/remove", adminHandler.RemoveEventImage)
		})

		r.Route(handler.RouteGallery, func(r chi.Router) {
			r.Post(handler.RouteRoot, adminHandler.CreateGalleryEvent)
			r.Post(handler.RouteParamID, adminHandler.UpdateGalleryEvent)
			r.Post(handler.RouteParamID+"/delete", adminHandler.DeleteGalleryEvent)
			r.Post(handler.RouteParamID+"/images", adminHandler.AddGalleryImage)
			r.Post("/images"+handler.RouteParamID+"/featured", adminHandler.ToggleGalleryImageFeatured)
			r.Post("/images"+handler.RouteParamID+"/delete", adminHandler.DeleteGalleryImage)
		})

		r.Route(handler.RouteMembers, func(r chi.Router) {
			r.Post(handler.RouteParamID+"/approve", adminHandler.ToggleMemberApproval)
			r.Post(handler.RouteParamID+"/delete", adminHandler.DeleteMember)
		})

		r.Route(handler.RouteAdmins, func(r chi.Router) {
			r.Post(handler.RouteRoot, adminHandler.InviteAdmin)
			r.Post(handler.RouteParamID+"/delete", adminHandler.DeleteAdmin)
		})

		r.Post(handler.RouteContent+handler.RouteParamID, adminHandler.UpdateContent)
	})

	// Static assets from the embedded filesystem
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("mounting static assets: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// setupLogger configures the default slog logger from config.
func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
