package main

import (
	"log"
	"net/http"
	"os"

	"villa/config"
	"villa/jobs"
	"villa/models"
	"villa/routes"
	"villa/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Room{},
		&models.RatePlan{},
		&models.RoomType{},
		&models.BedType{},
		&models.Amenity{},
		&models.PrivacyPolicy{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	metadataCache := services.NewMetadataCacheService(services.MetadataCacheServiceOptions{
		DB:    config.DB,
		Redis: config.RedisClient,
	})
	jobs.SetMetadataCacheRefresher(metadataCache)

	migrateTables()

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
