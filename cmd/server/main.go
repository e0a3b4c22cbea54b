// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/webmart/admin-dashboard/internal/commerce"
	"github.com/webmart/admin-dashboard/internal/config"
	"github.com/webmart/admin-dashboard/internal/i18n"
	"github.com/webmart/admin-dashboard/internal/router"
	"github.com/webmart/admin-dashboard/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.LocalesPath); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Platform API client
	client := commerce.NewClientFromConfig(cfg.Platform)

	// Preview staging area
	previewStore, err := services.NewPreviewStore(cfg.Uploads)
	if err != nil {
		logrus.Fatal("Failed to initialize preview store: ", err)
	}

	// Initialize router
	r := router.Initialize(client, previewStore, cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Starting admin dashboard server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}
