package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/motmot/nexlink/backend/internal/assistant"
	"github.com/motmot/nexlink/backend/internal/config"
	"github.com/motmot/nexlink/backend/internal/handlers"
	"github.com/motmot/nexlink/backend/internal/logger"
	"github.com/motmot/nexlink/backend/internal/middleware"
	"github.com/motmot/nexlink/backend/internal/persistence"
	"github.com/motmot/nexlink/backend/internal/services"
	"github.com/motmot/nexlink/backend/internal/store"
	"github.com/motmot/nexlink/backend/internal/ws"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables; .env is optional and system
	// environment still applies without it.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		os.Exit(1)
	}
	defer logger.Close()
	log := logger.Log

	log.Info("=== NexLink server starting ===")

	// Snapshot slot backed by SQLite.
	slot, err := persistence.NewSQLiteSlot(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open snapshot slot", zap.Error(err))
	}

	st, err := store.New(slot, log)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}

	// Assistant client: real Gemini clients behind a round-robin pool
	// when keys are configured, otherwise a canned mock so the rest of
	// the system behaves the same offline.
	var client assistant.Client
	if len(cfg.AssistantAPIKeys) > 0 {
		clients := make([]assistant.Client, 0, len(cfg.AssistantAPIKeys))
		for _, key := range cfg.AssistantAPIKeys {
			clients = append(clients, assistant.NewGeminiClient(key))
		}
		client = assistant.NewPool(clients...)
		log.Info("Assistant pool configured", zap.Int("keys", len(clients)))
	} else {
		client = &assistant.MockClient{Response: "Hello from Nexus AI!"}
		log.Warn("No API keys configured, assistant runs on canned responses")
	}

	responder := assistant.NewResponder(st, client, log, cfg.AutoPostInterval, cfg.AutoPostChance)
	responder.Start()
	defer responder.Stop()

	heartbeat := services.NewHeartbeatService(st, log, cfg.HeartbeatInterval)
	heartbeat.Start()
	defer heartbeat.Stop()

	cleanup := services.NewCleanupService(st, log, cfg.StorySweepInterval)
	cleanup.Start()
	defer cleanup.Stop()

	wsHub := ws.NewHub(st, log, 5*time.Second)
	go wsHub.Run()

	h := handlers.NewHandlers(st, log)
	h.SetResponder(responder)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.GinLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "nexlink-backend",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ws/presence", wsHub.HandleWebSocket)

	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Info("NexLink backend listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := wsHub.Shutdown(ctx); err != nil {
		log.Warn("WebSocket shutdown incomplete", zap.Error(err))
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
