package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sahayak-backend/internal/config"
	"sahayak-backend/internal/database"
	"sahayak-backend/internal/handlers"
	"sahayak-backend/internal/router"
	"sahayak-backend/internal/schemes"
	"sahayak-backend/internal/services"
	"sahayak-backend/internal/session"
)

func main() {
	log.Println("🚀 Starting Sahayak Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Session Store ────
	var store session.Store
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		store = session.NewRedisStore(redisClient, cfg.SessionTTL)
		log.Println("✓ Redis session store connected")
	} else {
		memStore := session.NewMemoryStore(cfg.SessionTTL)
		defer memStore.Close()
		store = memStore
		log.Println("✓ In-memory session store initialized (single instance only)")
	}

	// ──── Step 3: Initialize Scheme Source ────
	var source schemes.Source
	switch {
	case cfg.DatabaseURL != "":
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()
		if err := database.EnsureSchema(pool); err != nil {
			log.Fatalf("✗ Schema setup failed: %v", err)
		}
		source = schemes.NewPostgresSource(pool)
		log.Println("✓ PostgreSQL scheme source connected")
	case cfg.SchemesAPIURL != "":
		source = schemes.NewHTTPSource(cfg.SchemesAPIURL, cfg.SchemesTimeout)
		log.Printf("✓ Remote scheme source configured (%s)", cfg.SchemesAPIURL)
	default:
		source = schemes.NewStaticSource(nil)
		log.Println("✓ Bundled scheme list loaded")
	}

	// ──── Step 4: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs, cfg.GeminiTimeout)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini Flash client initialized")

	// ──── Step 5: Wire Chat Pipeline ────
	chatService := services.NewChatService(store, source, geminiService, cfg.MaxSchemes)
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 6: Start HTTP Server ────
	r := router.New(chatHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Sahayak Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
