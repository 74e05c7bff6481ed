package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postsched/internal/dbmysql"
	"postsched/internal/di"

	log "github.com/sirupsen/logrus"
)

// The sync worker reconciles every account's remote timeline on a cadence.
// The per-owner staleness gate inside the reconciler keeps the effective
// rate at its configured minimum even if this loop runs more often.
func main() {
	log.Info("Starting Sync Worker...")

	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize sync worker: %v", err)
	}

	if err := dbmysql.Migrate(app.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	interval := time.Duration(app.Config.Sync.WorkerIntervalMin) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Infof("Sync Worker running every %s", interval)
	app.Reconciler.ReconcileAll(ctx)

	for {
		select {
		case <-ticker.C:
			app.Reconciler.ReconcileAll(ctx)
		case <-quit:
			log.Info("Shutting down Sync Worker...")
			return
		}
	}
}
