package main

import (
	"context"
	"learnhub/cache"
	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/routers/courseRoutes"
	"learnhub/utils"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	ttl := time.Duration(config.AppConfig.InstructorCacheTTLSeconds) * time.Second
	if err := cache.Connect(config.AppConfig.RedisURL, ttl); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	scheduler, err := utils.InitializeOrderScheduler(config.AppConfig.OrderCompactCron)
	if err != nil {
		log.Fatalf("Invalid ORDER_COMPACT_CRON %q: %v", config.AppConfig.OrderCompactCron, err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",               // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization,X-Request-ID", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${respHeader:X-Request-ID}\n",
	}))

	app.Use(middleware.RequestID)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	courseRoutes.SetupCurriculumRoutes(app)

	go func() {
		log.Printf("Server is running on port %s", config.AppConfig.Port)
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	if err := cache.Instructors.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
	if sqlDB, err := database.Database.Db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
