package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commentboard/internal/db"
	"commentboard/internal/handlers"
	"commentboard/internal/middleware"
	"commentboard/internal/repository"
	"commentboard/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	createLimit  = 5
	createWindow = 60 * time.Second
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("[server] no .env file found, reading env vars from system")
	}

	// Initialize Database
	db.Init()

	// Rate limiter guarding comment creation, pruned in the background
	limiter := middleware.NewSlidingWindowLimiter(createLimit, createWindow)
	limiter.StartPruning(5 * time.Minute)
	defer limiter.Stop()

	// Initialize Gin
	r := gin.Default()
	r.Use(cors.Default())

	// Handlers
	commentHandler := handlers.NewCommentHandler(
		services.NewCommentService(repository.NewGormRepo(db.DB)),
	)
	healthHandler := handlers.NewHealthHandler()

	r.GET("/comments", commentHandler.List)
	r.POST("/comments", middleware.RateLimit(limiter), commentHandler.Create)
	r.PUT("/comments/:id/like", commentHandler.ToggleLike)
	r.PUT("/comments/:id", commentHandler.Edit)
	r.DELETE("/comments/:id", commentHandler.Delete)
	r.PATCH("/comments/:id/pin", commentHandler.TogglePin)
	r.PATCH("/comments/:id/status", commentHandler.UpdateStatus)
	r.GET("/health", healthHandler.Check)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Infof("[server] listening on :%s", port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[server] failed to start: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("[server] shutdown error: %v", err)
		return
	}
	log.Info("[server] stopped gracefully")
}
