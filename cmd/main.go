/**
 * @description
 * This is the main entry point for the account-service. Its responsibility is
 * to initialize all components — configuration, the PostgreSQL pool, the
 * token issuer, the SMTP mailer and the optional RabbitMQ producer — wire
 * them into the service, and run the HTTP server with graceful shutdown.
 *
 * @dependencies
 * - The service's internal packages for config, api, app logic and storage.
 * - pgxpool for database connections, godotenv for local config.
 */
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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/inclufi/account-service/internal/api"
	"github.com/inclufi/account-service/internal/app"
	"github.com/inclufi/account-service/internal/config"
	"github.com/inclufi/account-service/internal/store"
	"github.com/inclufi/account-service/pkg/mailer"
	"github.com/inclufi/account-service/pkg/rabbitmq"
	"github.com/inclufi/account-service/pkg/token"
)

func main() {
	// Load .env file for local development. In production, env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Establish database connection pool.
	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse database URL: %v", err)
	}
	dbConfig.MaxConns = 20
	dbConfig.MaxConnLifetime = 30 * time.Minute
	dbConfig.MaxConnIdleTime = 5 * time.Minute

	dbpool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer dbpool.Close()
	log.Println("Database connection established")

	// Set up dependencies.
	userRepo := store.NewPostgresUserRepository(dbpool)
	kycRepo := store.NewPostgresKycRepository(dbpool)
	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTLMinute)*time.Minute)
	decisionMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	var producer rabbitmq.Publisher
	if cfg.RabbitMQURL != "" {
		p, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		producer = p
	} else {
		log.Println("RABBITMQ_URL not set, decision events disabled")
	}

	service := app.NewService(userRepo, kycRepo, issuer, decisionMailer, producer)

	// Setup and start HTTP server.
	router := api.NewRouter(api.NewAuthHandler(service), api.NewAdminHandler(service), cfg.AdminJWTSecret)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %s", err)
		}
	}()

	// Wait for termination signal for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down account-service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
