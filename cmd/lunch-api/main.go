package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lunch-planner/internal/api"
	"lunch-planner/internal/auth"
	"lunch-planner/internal/config"
	"lunch-planner/internal/database"
	"lunch-planner/internal/meal"
	"lunch-planner/internal/menu"
	"lunch-planner/internal/selection"
	"lunch-planner/internal/user"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireServer(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	router := api.NewRouter(&api.Server{
		Users:         user.NewRepository(db.SQL),
		MealTypes:     meal.NewTypeRepository(db.SQL),
		Meals:         meal.NewRepository(db.SQL),
		Lunches:       menu.NewRepository(db.SQL),
		Selections:    selection.NewRepository(db.SQL),
		Issuer:        auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		DataPath:      cfg.DatabasePath,
		PlanningWeeks: cfg.PlanningWeeks,
	}, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Lunch API listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
