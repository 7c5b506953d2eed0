package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripit/models"
)

// AIClient talks to an OpenAI-compatible chat-completions endpoint (Groq by
// default). Every caller has a deterministic fallback, so a missing key or a
// failed call never breaks a request.
type AIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var aiClient *AIClient

func InitAI() {
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}

	aiClient = &AIClient{
		apiKey:  os.Getenv("GROQ_API_KEY"),
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if aiClient.apiKey != "" {
		log.Println("✅ AI (Groq) initialized with model:", model)
	} else {
		log.Println("⚠️  GROQ_API_KEY not set — itineraries, chat and suggestions will use rule-based fallbacks")
	}
}

func GetAIClient() *AIClient {
	return aiClient
}

// Ready reports whether an API key is configured.
func (c *AIClient) Ready() bool {
	return c != nil && c.apiKey != ""
}

// ─── Chat completions plumbing ────────────────────────────────────────────────

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *AIClient) complete(system, user string, maxTokens int, temperature float64) (string, error) {
	if !c.Ready() {
		return "", fmt.Errorf("groq API key not configured")
	}

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from AI")
	}
	return parsed.Choices[0].Message.Content, nil
}

// cleanJSON strips markdown code fences the model sometimes wraps around
// JSON payloads.
func cleanJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// ─── Destination explanations ─────────────────────────────────────────────────

// ExplainDestination produces the one-sentence "reason" line for a
// recommendation card. Always returns usable text.
func (c *AIClient) ExplainDestination(d models.Destination, req models.RecommendationRequest) string {
	if c.Ready() {
		prompt := fmt.Sprintf(
			"In one sentence (max 25 words), explain why %s, %s suits a %d-day %s trip focused on %s. Highlights: %s.",
			d.Name, d.Country, req.Days, req.TravelType, req.Interest, d.Highlights)
		reason, err := c.complete("You are a concise travel expert.", prompt, 80, 0.6)
		if err == nil {
			return strings.TrimSpace(reason)
		}
		log.Printf("⚠️  AI explanation failed for %s: %v — using fallback text", d.Name, err)
	}
	return FallbackReason(d, req)
}

// FallbackReason builds a deterministic reason line from catalog data.
func FallbackReason(d models.Destination, req models.RecommendationRequest) string {
	highlight := strings.TrimSpace(strings.Split(d.Highlights, ",")[0])
	if highlight == "" {
		highlight = "its local experiences"
	}
	return fmt.Sprintf("%s is a strong match for %s trips — known for %s, best visited %s.",
		d.Name, req.TravelType, highlight, d.BestTime)
}

// ─── Itinerary generation ─────────────────────────────────────────────────────

// GenerateItineraryPlan returns a day-wise itinerary for the request, using
// the LLM when available and a deterministic template otherwise. Total: it
// never fails.
func (c *AIClient) GenerateItineraryPlan(req models.ItineraryRequest) models.Itinerary {
	if c.Ready() {
		if it, err := c.generateWithAI(req); err == nil {
			return *it
		} else {
			log.Printf("⚠️  AI itinerary generation failed: %v — using fallback plan", err)
		}
	}
	return FallbackItineraryPlan(req)
}

func (c *AIClient) generateWithAI(req models.ItineraryRequest) (*models.Itinerary, error) {
	prompt := fmt.Sprintf(`Create a %d-day itinerary for %s for %d traveler(s), budget %d, travel type %s, main interest %s.
Respond with ONLY valid JSON in this exact shape:
{"destination":"...","days":%d,"total_cost":0,"day_plans":[{"day":1,"title":"...","activities":["..."],"meals":["..."],"accommodation":"...","estimated_cost":0,"tips":"..."}],"travel_tips":["..."],"cost_breakdown":{"accommodation":0,"food":0,"activities":0,"transport":0}}`,
		req.Days, req.Destination, travelerCount(req.Travelers), req.Budget, req.TravelType, req.Interest, req.Days)

	content, err := c.complete("You are a travel-planning engine that outputs strict JSON.", prompt, 2048, 0.5)
	if err != nil {
		return nil, err
	}

	var it models.Itinerary
	if err := json.Unmarshal([]byte(cleanJSON(content)), &it); err != nil {
		return nil, fmt.Errorf("AI returned malformed itinerary JSON: %w", err)
	}
	if len(it.DayPlans) == 0 {
		return nil, fmt.Errorf("AI itinerary has no day plans")
	}

	// Normalize whatever the model produced: IDs are ours, day numbers must
	// run 1..N ascending.
	it.ID = uuid.New().String()
	it.Destination = req.Destination
	it.Days = len(it.DayPlans)
	for i := range it.DayPlans {
		it.DayPlans[i].Day = i + 1
	}
	if it.TotalCost <= 0 {
		it.TotalCost = req.Budget
	}
	return &it, nil
}

func titleCase(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FallbackItineraryPlan is the deterministic server-side itinerary template.
func FallbackItineraryPlan(req models.ItineraryRequest) models.Itinerary {
	days := req.Days
	if days < 1 {
		days = 1
	}
	dailyBudget := req.Budget / days

	activitySets := map[string][]string{
		"mountains": {"Trekking", "Scenic viewpoints", "Local village visit"},
		"beach":     {"Beach activities", "Water sports", "Sunset cruise"},
		"heritage":  {"Monument tours", "Museum visit", "Heritage walk"},
		"nature":    {"Nature trails", "Wildlife spotting", "Photography"},
		"spiritual": {"Temple visits", "Meditation session", "Evening prayers"},
		"adventure": {"Adventure sports", "Outdoor activities", "Local exploration"},
	}
	activities, ok := activitySets[strings.ToLower(req.Interest)]
	if !ok {
		activities = []string{"Local sightseeing", "Cultural experiences", "Food tour"}
	}

	interestTitle := titleCase(req.Interest)
	plans := make([]models.DayPlan, 0, days)
	for i := 1; i <= days; i++ {
		var phase string
		switch {
		case i == 1:
			phase = "Arrival & Exploration"
		case i == days:
			phase = "Departure"
		default:
			phase = interestTitle + " Adventure"
		}
		plans = append(plans, models.DayPlan{
			Day:   i,
			Title: fmt.Sprintf("Day %d - %s", i, phase),
			Activities: []string{
				"Morning: " + activities[0],
				"Afternoon: " + activities[1],
				"Evening: " + activities[2],
			},
			Meals:         []string{"Breakfast at hotel", "Authentic local lunch", "Dinner at popular restaurant"},
			Accommodation: "Well-rated hotel in convenient location",
			EstimatedCost: dailyBudget,
			Tips:          "Start early to make the most of your day in " + req.Destination,
		})
	}

	return models.Itinerary{
		ID:          uuid.New().String(),
		Destination: req.Destination,
		Days:        days,
		TotalCost:   req.Budget,
		DayPlans:    plans,
		TravelTips: []string{
			"Best time to visit " + req.Destination + " varies by season",
			"Keep some cash handy for local purchases",
			"Respect local customs and dress codes",
			"Stay hydrated and carry sunscreen",
		},
		CostBreakdown: map[string]int{
			"accommodation": int(float64(req.Budget) * 0.40),
			"food":          int(float64(req.Budget) * 0.25),
			"activities":    int(float64(req.Budget) * 0.20),
			"transport":     int(float64(req.Budget) * 0.15),
		},
	}
}
