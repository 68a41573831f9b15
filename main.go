package main

import (
	"log"

	"cinema_ops/config"
	"cinema_ops/database"
	"cinema_ops/handler"
	"cinema_ops/helper"
	"cinema_ops/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // poster uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Staff-Key, X-Customer-Email",
	}))

	database.ConnectDB()

	helper.StartScreeningStatusScheduler()
	defer helper.StopScreeningStatusScheduler()
	helper.StartMovieStatusScheduler()
	defer helper.StopMovieStatusScheduler()

	// Minutely sweeps: lapsed seat holds and unclaimed tickets.
	c := cron.New()
	c.AddFunc("@every 1m", handler.ExpireSeatHolds)
	c.AddFunc("@every 1m", handler.ExpireTickets)
	c.Start()
	defer c.Stop()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
