package main

import (
	"context"
	"flag"
	"log"

	"coffee-house/cmd"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/data/repository/demo"
	"coffee-house/internal/wire"
	"coffee-house/pkg/database"
	"coffee-house/pkg/payment"
	"coffee-house/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	initDB := flag.Bool("init-db", false, "create the schema and seed baseline data, then exit")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("demo_mode", config.App.DemoMode),
	)

	var repos *repository.Repository
	var gateway payment.Gateway

	if config.App.DemoMode {
		if *initDB {
			logger.Fatal("Cannot initialize a database in demo mode")
		}

		// No database or Stripe key: run on seeded fixtures with a fake gateway
		logger.Info("Running in demo mode with seeded fixtures")
		repos = demo.NewSeededRepository(logger)
		gateway = payment.NewFakeGateway()
	} else {
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")

		if *initDB {
			ctx := context.Background()
			if err := database.InitSchema(ctx, db, logger); err != nil {
				logger.Fatal("Failed to create schema", zap.Error(err))
			}
			if err := database.Seed(ctx, db, logger); err != nil {
				logger.Fatal("Failed to seed database", zap.Error(err))
			}
			logger.Info("Database initialized")
			return
		}

		repos = repository.NewRepository(db, logger)
		gateway = payment.NewStripeGateway(config.Stripe.SecretKey, logger)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, gateway, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
