package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"ziada-travel/database"
	"ziada-travel/database/seeders"
	"ziada-travel/logger"
	"ziada-travel/routes"
)

func main() {
	env := godotenv.Load()
	if env != nil {
		fmt.Println("No .env file found, using process environment")
	}

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		BodyLimit:    2 * 1024 * 1024, // forms only, no uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
			if code == fiber.StatusNotFound {
				return c.Status(code).Render("404", fiber.Map{})
			}
			return c.Status(code).SendString(err.Error())
		},
	})

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		seeders.SeedCatalog(db)
		seeders.SeedBlog(db)
		logger.Success("Seeding finished")
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("FRONTEND_URL", "*"),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	if err := routes.SetupRoutes(app, db); err != nil {
		logger.Fatal("Startup aborted: " + err.Error())
	}

	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	logger.Success("Server is running on ip: " + appHost + " port: " + appPort +
		"\n\t\t\t\t\t\t******************************************************************************************\n")
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Error("Server stopped", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
