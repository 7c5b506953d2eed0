package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripit/database"
	"tripit/handlers"
	"tripit/middleware"
	"tripit/services"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	database.InitDB()
	services.InitAI()
	middleware.InitAuth()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Trusted proxies (Railway sits behind a proxy)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth())
	{
		api.GET("/health", handlers.HealthHandler)
		api.GET("/destinations", handlers.DestinationsHandler)
		api.POST("/recommendations", handlers.RecommendationsHandler)
		api.POST("/suggestions", handlers.SuggestionsHandler)
		api.POST("/chat", handlers.ChatHandler)

		api.POST("/itinerary/generate", handlers.GenerateItineraryHandler)
		api.POST("/itinerary/save", handlers.SaveItineraryHandler)
		api.GET("/itinerary/:id", handlers.GetItineraryHandler)
		api.GET("/itinerary/:id/pdf", handlers.DownloadHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/itinerary/user/:userId", handlers.UserTripsHandler)
			protected.GET("/trips/:userId", handlers.UserTripsHandler) // alias
			protected.DELETE("/itinerary/:id", handlers.DeleteItineraryHandler)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 TripIT backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
