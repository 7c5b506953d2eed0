package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripit/database"
	"tripit/middleware"
	"tripit/models"
	"tripit/services"
)

// GenerateItineraryHandler builds a day-wise plan for the request. The
// generator always produces a plan (AI or template), so a valid body
// always gets a 200.
func GenerateItineraryHandler(c *gin.Context) {
	var req models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	it := services.GetAIClient().GenerateItineraryPlan(req)
	log.Printf("✅ Itinerary generated for %s (%d days, id %s)", it.Destination, it.Days, it.ID)
	c.JSON(http.StatusOK, it)
}

// SaveItineraryHandler upserts an itinerary. The owner comes from the auth
// token when present, otherwise from the request body (dev mode).
func SaveItineraryHandler(c *gin.Context) {
	var req models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Itinerary.ID == "" {
		req.Itinerary.ID = uuid.New().String()
	}

	userID := middleware.UserID(c)
	if userID == "" {
		userID = req.UserID
	}

	if err := database.SaveItinerary(req.Itinerary, userID); err != nil {
		log.Printf("❌ Failed to save itinerary %s: %v", req.Itinerary.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save itinerary"})
		return
	}

	c.JSON(http.StatusOK, models.SaveItineraryResponse{Success: true, ID: req.Itinerary.ID})
}

// GetItineraryHandler fetches one saved itinerary by ID.
func GetItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	it, err := database.GetItinerary(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		log.Printf("❌ Failed to load itinerary %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load itinerary"})
		return
	}
	c.JSON(http.StatusOK, it)
}

// UserTripsHandler lists a user's saved itineraries, newest first. An
// authenticated caller may only list their own trips.
func UserTripsHandler(c *gin.Context) {
	userID := c.Param("userId")
	if authed := middleware.UserID(c); authed != "" && authed != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot list another user's trips"})
		return
	}

	trips, err := database.GetUserItineraries(userID)
	if err != nil {
		log.Printf("❌ Failed to list trips for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trips"})
		return
	}
	c.JSON(http.StatusOK, trips)
}

// DeleteItineraryHandler removes a saved itinerary. Authenticated deletes
// are scoped to the caller's own rows.
func DeleteItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	deleted, err := database.DeleteItinerary(id, middleware.UserID(c))
	if err != nil {
		log.Printf("❌ Failed to delete itinerary %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete itinerary"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
