package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"wedding-backend/config"
	"wedding-backend/routes"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "dev-secret-change-in-production" {
		log.Println("⚠️  JWT_SECRET not set; using the development secret")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	app, err := routes.NewApp(cfg, db, rdb)
	if err != nil {
		log.Fatalf("❌ Router setup failed: %v", err)
	}

	workers, stopWorkers := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		app.Hub.Run(workers)
	}()
	go func() {
		defer wg.Done()
		app.Sweeper.Run(workers)
	}()

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	stopWorkers()
	wg.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server stopped gracefully")
}
