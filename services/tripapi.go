package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"tripit/models"
)

// TokenSource supplies the current bearer token, or "" when no session is
// active. Kept as a function so the auth provider owns token refresh.
type TokenSource func() string

// TripAPI is the HTTP client for the trip-planning backend. All calls share a
// 30 second timeout sized for AI endpoints; callers are expected to fall back
// to local data on error.
type TripAPI struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

func NewTripAPI(baseURL string, token TokenSource) *TripAPI {
	return &TripAPI{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *TripAPI) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeout vs network only matters for the log line; both fall back.
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			log.Printf("⚠️  API request timed out: %s %s", method, path)
		} else {
			log.Printf("⚠️  Network error — backend may be offline: %s %s: %v", method, path, err)
		}
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(data))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse API response: %w", err)
	}
	return nil
}

// GetRecommendations asks the backend for AI-ranked destinations.
func (c *TripAPI) GetRecommendations(req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	var out models.RecommendationResponse
	if err := c.do(http.MethodPost, "/recommendations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateItinerary asks the backend for a day-wise plan.
func (c *TripAPI) GenerateItinerary(req models.ItineraryRequest) (*models.Itinerary, error) {
	var out models.Itinerary
	if err := c.do(http.MethodPost, "/itinerary/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSuggestions fetches contextual tips for a partial preference.
func (c *TripAPI) GetSuggestions(req models.SuggestionRequest) ([]string, error) {
	var out models.SuggestionResponse
	if err := c.do(http.MethodPost, "/suggestions", req, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// SaveItinerary persists an itinerary, optionally attached to a user.
func (c *TripAPI) SaveItinerary(it models.Itinerary, userID string) (*models.SaveItineraryResponse, error) {
	var out models.SaveItineraryResponse
	req := models.SaveItineraryRequest{Itinerary: it, UserID: userID}
	if err := c.do(http.MethodPost, "/itinerary/save", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetItinerary fetches one saved itinerary by ID.
func (c *TripAPI) GetItinerary(id string) (*models.Itinerary, error) {
	var out models.Itinerary
	if err := c.do(http.MethodGet, "/itinerary/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserTrips lists a user's saved itineraries, newest first.
func (c *TripAPI) GetUserTrips(userID string) ([]models.Itinerary, error) {
	var out []models.Itinerary
	if err := c.do(http.MethodGet, "/itinerary/user/"+userID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTrip removes a saved itinerary.
func (c *TripAPI) DeleteTrip(id string) error {
	return c.do(http.MethodDelete, "/itinerary/"+id, nil, nil)
}

// Chat sends one message to the travel assistant.
func (c *TripAPI) Chat(message string) (string, error) {
	var out models.ChatResponse
	if err := c.do(http.MethodPost, "/chat", models.ChatRequest{Message: message}, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}
