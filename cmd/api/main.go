package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/salleinventory/salleinventory-golang/internal/database"
	"github.com/salleinventory/salleinventory-golang/internal/handlers"
	"github.com/salleinventory/salleinventory-golang/internal/routes"
)

// defaultUmbralCriticos: problem percentage above which an item is reported
// as critical, overridable via CRITICAL_THRESHOLD.
const defaultUmbralCriticos = 30.0

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	umbral := defaultUmbralCriticos
	if raw := os.Getenv("CRITICAL_THRESHOLD"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Fatalf("Invalid CRITICAL_THRESHOLD %q: %v", raw, err)
		}
		umbral = parsed
	}

	app := &handlers.Handlers{
		DB:             db,
		UmbralCriticos: umbral,
		Produccion:     os.Getenv("APP_ENV") == "production",
	}

	router := routes.SetupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting SalleInventory API server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown: finish in-flight requests, then close the pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
