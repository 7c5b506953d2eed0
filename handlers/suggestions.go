package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripit/models"
	"tripit/services"
)

// SuggestionsHandler returns up to three contextual tips for a partial
// preference. An empty body is valid and yields generic tips.
func SuggestionsHandler(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	suggestions := services.GetAIClient().SuggestionsFor(req, nil)
	c.JSON(http.StatusOK, models.SuggestionResponse{Suggestions: suggestions})
}

// ChatHandler answers one travel-assistant message.
func ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response: services.GetAIClient().ChatReply(req.Message),
	})
}
