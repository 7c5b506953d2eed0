package models

// Request/response contracts for the /api endpoints. Field names are the wire
// format shared with the web client, hence snake_case.

type RecommendationRequest struct {
	Budget     int    `json:"budget" binding:"required,gt=0,lte=10000000"`
	Days       int    `json:"days" binding:"required,min=1,max=30"`
	TravelType string `json:"travel_type" binding:"required,min=2,max=50"`
	Interest   string `json:"interest" binding:"required,min=2,max=50"`
	Travelers  int    `json:"travelers"`
}

// WireDestination is a scored destination as returned by /recommendations.
type WireDestination struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	EstimatedCost int      `json:"estimated_cost"`
	Score         float64  `json:"score"`
	Reason        string   `json:"reason"`
	Tags          []string `json:"tags"`
}

type RecommendationResponse struct {
	Destinations []WireDestination      `json:"destinations"`
	Query        *RecommendationRequest `json:"query,omitempty"`
}

type ItineraryRequest struct {
	Destination string `json:"destination" binding:"required,min=2,max=100"`
	Days        int    `json:"days" binding:"required,min=1,max=30"`
	Budget      int    `json:"budget" binding:"required,gt=0,lte=10000000"`
	TravelType  string `json:"travel_type" binding:"required,min=2,max=50"`
	Interest    string `json:"interest" binding:"required,min=2,max=50"`
	Travelers   int    `json:"travelers"`
}

type SaveItineraryRequest struct {
	Itinerary Itinerary `json:"itinerary" binding:"required"`
	UserID    string    `json:"user_id"`
}

type SaveItineraryResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// SuggestionRequest carries whatever subset of the preference the user has
// picked so far; all fields are optional.
type SuggestionRequest struct {
	TripType         string `json:"tripType,omitempty"`
	Terrain          string `json:"terrain,omitempty"`
	Budget           string `json:"budget,omitempty"`
	Duration         string `json:"duration,omitempty"`
	LocationPref     string `json:"locationPref,omitempty"`
	SpecificLocation string `json:"specificLocation,omitempty"`
}

type SuggestionResponse struct {
	Suggestions []string `json:"suggestions"`
	Tip         string   `json:"tip,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
