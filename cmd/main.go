package main

import (
	"context"
	"log"

	"github.com/RIDSdiseno/RidsMovilBack/config"
	"github.com/RIDSdiseno/RidsMovilBack/db"
	authhandler "github.com/RIDSdiseno/RidsMovilBack/internal/auth/handler"
	authrepo "github.com/RIDSdiseno/RidsMovilBack/internal/auth/repository/postgres"
	authservice "github.com/RIDSdiseno/RidsMovilBack/internal/auth/service"
	deliveryhandler "github.com/RIDSdiseno/RidsMovilBack/internal/delivery/handler"
	deliveryrepo "github.com/RIDSdiseno/RidsMovilBack/internal/delivery/repository/postgres"
	deliveryservice "github.com/RIDSdiseno/RidsMovilBack/internal/delivery/service"
	"github.com/RIDSdiseno/RidsMovilBack/internal/logger"
	"github.com/RIDSdiseno/RidsMovilBack/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logr := logger.New(cfg.LogLevel)

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := authrepo.NewPostgresRepository(pool)
	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL())
	sessionService := authservice.NewSessionService(repo, repo, tokenService, cfg, logr)
	authHandler := authhandler.NewAuthHandler(sessionService, tokenService, cfg)

	signer := cloudinary.NewSigner(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.BaseFolder,
	)
	if !signer.Enabled() {
		logr.Warn("cloudinary credentials missing, evidence upload signing disabled")
	}

	dRepo := deliveryrepo.NewPostgresRepository(pool)
	dService := deliveryservice.NewDeliveryService(dRepo, signer, logr)
	dHandler := deliveryhandler.NewDeliveryHandler(dService)

	app := fiber.New()
	authhandler.RegisterRoutes(app, authHandler)
	deliveryhandler.RegisterRoutes(app, dHandler, authHandler.RequireAuth())

	logr.Info("listening", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
