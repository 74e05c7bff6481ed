package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postsched/internal/dbmysql"
	"postsched/internal/di"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Scheduler Service...")

	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize scheduler service: %v", err)
	}

	configureLogging(app)

	// Run migrations
	if err := dbmysql.Migrate(app.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Info("Database migration completed")

	// Fired jobs are executed by the schedule service.
	app.Dispatcher.Start(app.Scheduler)

	server := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      app.Handler.Router(),
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Infof("Scheduler Service running on port %s", app.Config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Scheduler Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("HTTP shutdown error: %v", err)
	}

	app.Dispatcher.Shutdown()
	log.Info("Scheduler Service stopped")
}

func configureLogging(app *di.Application) {
	if level, err := log.ParseLevel(app.Config.Logging.Level); err == nil {
		log.SetLevel(level)
	}
	if app.Config.Logging.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
