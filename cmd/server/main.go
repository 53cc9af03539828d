package main // Entry point package

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/cutie-cafe/cutie-backend/internal/config"
	"github.com/cutie-cafe/cutie-backend/internal/database"
	"github.com/cutie-cafe/cutie-backend/internal/handler"
	"github.com/cutie-cafe/cutie-backend/internal/mailer"
	"github.com/cutie-cafe/cutie-backend/internal/middleware"
	"github.com/cutie-cafe/cutie-backend/internal/queue"
	"github.com/cutie-cafe/cutie-backend/internal/repository"
	"github.com/cutie-cafe/cutie-backend/internal/router"
	"github.com/cutie-cafe/cutie-backend/internal/service"
	"github.com/cutie-cafe/cutie-backend/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	transport, err := mailer.NewSMTPTransport(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom,
	})
	if err != nil {
		log.Fatalf("smtp: %v", err)
	}

	reservations := repository.NewReservationRepo(db)
	events := repository.NewEventRepo(db)
	products := repository.NewProductRepo(db)
	services := repository.NewServiceRepo(db)
	newsletter := repository.NewNewsletterRepo(db)
	admins := repository.NewAdminRepo(db)

	// Seed the back-office account when configured; existing rows win.
	if cfg.AdminEmail != "" && cfg.AdminPass != "" {
		hash, err := utils.HashPassword(cfg.AdminPass, cfg.BcryptCost)
		if err != nil {
			log.Fatalf("admin seed: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := admins.EnsureAdmin(ctx, strings.ToLower(strings.TrimSpace(cfg.AdminEmail)), hash); err != nil {
			cancel()
			log.Fatalf("admin seed: %v", err)
		}
		cancel()
	}

	publisher := queue.NewPublisher(cfg.AMQPURL)
	transitions := service.NewReservationService(reservations, transport, publisher)
	issues := service.NewNewsletterService(transport)

	mailHandler := handler.NewMailHandler(transport)
	newsHandler := handler.NewNewsletterHandler(issues, newsletter)
	publicHandler := handler.NewPublicHandler(reservations, events, products, services, transport)
	authHandler := handler.NewAuthHandler(cfg, admins)
	adminHandler := handler.NewAdminHandler(reservations, transitions, events, products, services, newsletter)

	// Redis is optional: a nil client turns the limiter and the cache
	// into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable; rate limiting and caching disabled")
	}
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterMail(e, mailHandler, newsHandler)
	router.RegisterPublic(e, publicHandler, newsHandler, limit, cache)
	router.RegisterAdmin(e, authHandler, adminHandler, cfg.JWTSecret)

	if cfg.AMQPURL != "" {
		go func() {
			if err := queue.StartStatusConsumer(cfg.AMQPURL); err != nil {
				log.Printf("status consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
