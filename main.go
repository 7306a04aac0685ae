package main

import (
	"os"
	"time"

	"saree-crm/config"
	"saree-crm/database"
	"saree-crm/logger"
	"saree-crm/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogFile)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
	})
	app.Use(cors.New())

	db, err := database.Init(cfg)
	if err != nil {
		// A half-initialized schema must never serve traffic.
		logger.Error("Failed to initialize the store", err)
		os.Exit(1)
	}

	if cfg.SeedDemo {
		if err := database.SeedDemo(db); err != nil {
			logger.Error("Failed to seed demo data", err)
			os.Exit(1)
		}
	}

	routes.SetupRoutes(app, db, cfg)

	logger.Success("Server is running on " + cfg.AppHost + ":" + cfg.AppPort)
	if err := app.Listen(cfg.AppHost + ":" + cfg.AppPort); err != nil {
		logger.Error("Server stopped", err)
		os.Exit(1)
	}
}
