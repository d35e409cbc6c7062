// @title Exercise Tracker API
// @version 1.0
// @description Exercise tracking backend: user registration, login and a
// @description bearer-token protected exercise log.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "fittrack/docs" // swagger docs registration
	"fittrack/internal/config"
	"fittrack/internal/handlers"
	"fittrack/internal/logger"
	"fittrack/internal/middleware"
	"fittrack/internal/routes"
	"fittrack/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err)
	}

	log := logger.New(cfg.LogLevel)

	// --- MongoDB ---
	client, err := store.Connect(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from database", "error", err)
		}
	}()
	log.Info("MongoDB database connection established successfully")

	db := client.Database(cfg.Database.Name)
	users := store.NewUsers(db)
	exercises := store.NewExercises(db)

	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
		defer cancel()
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal("failed to ensure indexes", "error", err)
		}
	}

	// --- HTTP handlers and routes ---
	userHandler := handlers.NewUserHandler(users, &cfg.JWT, log)
	exerciseHandler := handlers.NewExerciseHandler(exercises, log)
	healthHandler := handlers.NewHealthHandler(client)

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, userHandler, exerciseHandler, healthHandler, &cfg.JWT)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(middleware.RequestLogger(mux, log))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// --- HTTP server + graceful shutdown ---
	go func() {
		var err error
		if cfg.TLSEnabled() {
			log.Info("HTTPS server listening", "port", cfg.Server.Port)
			err = srv.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile)
		} else {
			log.Info("HTTP server listening", "port", cfg.Server.Port)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	log.Info("server stopped")
}
