// OutFlo Outreach Campaign API
// @title OutFlo API
// @version 1.0
// @description Campaign management, LinkedIn lead scraping and personalized outreach message generation
// @host localhost:5000
// @BasePath /

package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	_ "github.com/Nirvanjha2004/outflo/docs"
	"github.com/Nirvanjha2004/outflo/internal/config"
	"github.com/Nirvanjha2004/outflo/internal/database"
	"github.com/Nirvanjha2004/outflo/internal/handlers"
	"github.com/Nirvanjha2004/outflo/internal/message"
	"github.com/Nirvanjha2004/outflo/internal/middleware"
	"github.com/Nirvanjha2004/outflo/internal/scraper"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := database.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	// Initialize Gin router
	r := gin.Default()

	r.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
		"172.16.0.0/12",  // Docker networks
		"10.0.0.0/8",     // Private networks
		"192.168.0.0/16", // Private networks
	})

	// CORS with an explicit allow-list; unknown origins get no CORS headers
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.SecurityHeaders())

	// 60 requests/minute per IP across the API
	limiter := middleware.NewRateLimiter(rate.Every(time.Second), 60)
	r.Use(middleware.RateLimitMiddleware(limiter))

	linkedInScraper := scraper.New(cfg, db)
	jobs := scraper.NewJobTracker()

	linkedInHandler := handlers.NewLinkedInHandler(db, linkedInScraper, jobs)
	campaignHandler := handlers.NewCampaignHandler(db)
	messageHandler := handlers.NewMessageHandler(message.NewGenerator(cfg))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Outflo API is running"})
	})

	linkedin := r.Group("/linkedin")
	{
		linkedin.POST("/scrape", middleware.ScrapeProtectionMiddleware(time.Minute), linkedInHandler.Scrape)
		linkedin.GET("", linkedInHandler.List)
		linkedin.GET("/jobs/:id", linkedInHandler.GetJob)
		linkedin.GET("/:id", linkedInHandler.Get)
		linkedin.DELETE("/:id", linkedInHandler.Delete)
	}

	campaigns := r.Group("/campaigns")
	{
		campaigns.GET("", campaignHandler.List)
		campaigns.POST("", campaignHandler.Create)
		campaigns.GET("/:id", campaignHandler.Get)
		campaigns.PUT("/:id", campaignHandler.Update)
		campaigns.DELETE("/:id", campaignHandler.Delete)
	}

	r.POST("/personalized-message", messageHandler.Create)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
