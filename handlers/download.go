package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripit/database"
	"tripit/services"
)

// DownloadHandler renders a saved itinerary as a PDF on the fly.
func DownloadHandler(c *gin.Context) {
	id := c.Param("id")

	it, err := database.GetItinerary(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		log.Printf("❌ Failed to load itinerary %s for PDF: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load itinerary"})
		return
	}

	pdfBytes, err := services.ItineraryPDF(*it, c.Query("traveler"))
	if err != nil {
		log.Printf("❌ PDF generation failed for itinerary %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	log.Printf("✅ PDF generated for itinerary %s (%d bytes)", id, len(pdfBytes))
	c.Header("Content-Disposition", "attachment; filename=tripit-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func HealthHandler(c *gin.Context) {
	dbStatus := "ok"
	if database.DB == nil {
		dbStatus = "not initialized"
	} else if err := database.DB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "TripIT API",
		"database": dbStatus,
	})
}
