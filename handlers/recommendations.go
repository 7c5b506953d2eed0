package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripit/catalog"
	"tripit/models"
	"tripit/services"
)

const maxRecommendations = 3

// RecommendationsHandler scores the full catalog against the traveler's
// preferences and returns the top matches with AI-written reason lines.
func RecommendationsHandler(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	scored := services.ScoreDestinations(catalog.All, req)
	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}

	ai := services.GetAIClient()
	destinations := make([]models.WireDestination, 0, len(scored))
	for i, s := range scored {
		destinations = append(destinations, models.WireDestination{
			ID:            i + 1,
			Name:          s.Name,
			Country:       s.Country,
			Description:   s.Description,
			Image:         catalog.ImageURL(s.Name),
			EstimatedCost: s.EstimatedCost,
			Score:         s.Score,
			Reason:        ai.ExplainDestination(s.Destination, req),
			Tags:          services.DestinationTags(s.Destination),
		})
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		Destinations: destinations,
		Query:        &req,
	})
}

// DestinationsHandler dumps the raw catalog, enriched for display.
func DestinationsHandler(c *gin.Context) {
	enriched := make([]models.Candidate, 0, len(catalog.All))
	for _, d := range catalog.All {
		enriched = append(enriched, catalog.Enrich(d))
	}
	c.JSON(http.StatusOK, gin.H{"destinations": enriched})
}
