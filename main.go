package main

import (
	"log"
	"os"

	"karukotha/config"
	"karukotha/db"
	"karukotha/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.Seed(gdb); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat("uploads"); os.IsNotExist(err) {
		os.Mkdir("uploads", 0755)
	}

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
	}))

	app.Static("/uploads", "./uploads")

	routes.SetupRoutes(app, gdb)

	log.Fatal(app.Listen(":" + cfg.Port))
}
