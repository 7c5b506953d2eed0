package services

import (
	"log"
	"math/rand"
	"strings"

	"tripit/catalog"
	"tripit/models"
)

// Chat and contextual-suggestion generation. Both degrade to curated
// rule-based replies so the endpoints stay useful without an AI key.

// ChatReply answers one travel-assistant message.
func (c *AIClient) ChatReply(message string) string {
	if c.Ready() {
		reply, err := c.complete(
			"You are TripIT, a friendly travel assistant. Answer travel questions briefly and concretely, with prices and best seasons where relevant.",
			message, 400, 0.7)
		if err == nil {
			return strings.TrimSpace(reply)
		}
		log.Printf("⚠️  AI chat failed: %v — using keyword fallback", err)
	}
	return FallbackChatReply(message)
}

// FallbackChatReply picks a canned answer by keyword.
func FallbackChatReply(message string) string {
	m := strings.ToLower(message)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(m, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("beach", "goa", "sea", "ocean"):
		return "For beach destinations, I highly recommend Goa! It's perfect for a relaxing vacation with beautiful beaches, water sports, and vibrant nightlife. Best time to visit is October to March."
	case contains("mountain", "manali", "hill", "trek", "himalaya"):
		return "Mountain lovers should definitely check out Manali or Ladakh! Perfect for trekking, paragliding, and stunning views. Best time is March to June."
	case contains("heritage", "jaipur", "culture", "history", "palace"):
		return "For heritage and culture, Jaipur is amazing! The Pink City offers magnificent forts, palaces, and rich Rajasthani culture. Best time is October to March."
	case contains("budget", "cheap", "affordable"):
		return "For budget-friendly trips, consider Rishikesh or Varanasi. Both offer incredible experiences without breaking the bank!"
	case contains("romantic", "honeymoon", "couple"):
		return "For romantic getaways, Udaipur is magical! Known as the City of Lakes, it's perfect for couples. Kerala's backwaters are also incredibly romantic."
	}
	return "I'd love to help you plan your perfect trip! Tell me what kind of experience you're looking for - beaches, mountains, heritage, adventure, or something else? Also let me know your approximate budget and duration!"
}

// SuggestionsFor returns up to three contextual tips for a partial
// preference.
func (c *AIClient) SuggestionsFor(req models.SuggestionRequest, rng *rand.Rand) []string {
	if c.Ready() {
		prompt := "Give 2-3 short travel tips (one line each, no numbering) for a traveler with these preferences: " + describePreference(req)
		reply, err := c.complete("You are a concise travel tip generator.", prompt, 200, 0.7)
		if err == nil {
			if tips := splitTips(reply); len(tips) > 0 {
				return tips
			}
		} else {
			log.Printf("⚠️  AI suggestions failed: %v — using rule-based tips", err)
		}
	}
	return RuleBasedSuggestions(req, rng)
}

// RuleBasedSuggestions builds tips from the offline catalog: up to two
// matching destinations plus one practical tip.
func RuleBasedSuggestions(req models.SuggestionRequest, rng *rand.Rand) []string {
	var suggestions []string

	prefs := models.Preference{TripType: req.TripType, Terrain: req.Terrain}
	for _, cand := range catalog.Filter(prefs, "", 2, rng) {
		suggestions = append(suggestions, formatDestinationTip(cand.Name, req.TripType))
	}

	switch {
	case req.Budget == models.BudgetLow:
		suggestions = append(suggestions, "💡 Travel tip: Local homestays significantly reduce costs")
	case req.Budget == models.BudgetLuxury:
		suggestions = append(suggestions, "✨ Luxury tip: Book private transfers for comfort")
	case req.Duration == models.DurationWeekend:
		suggestions = append(suggestions, "⏰ Weekend tip: Start early to maximize your short trip")
	default:
		suggestions = append(suggestions, "📅 Plan ahead: Book 2 months in advance for best deals")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func formatDestinationTip(name, tripType string) string {
	switch tripType {
	case models.TripAdventure:
		return "🏔️ " + name + ": Great for trekking & outdoor activities"
	case models.TripRelaxation:
		return "🌴 " + name + ": Perfect for unwinding and peace"
	case models.TripCultural:
		return "🏛️ " + name + ": Rich in history and local culture"
	case models.TripSpiritual:
		return "🕉️ " + name + ": Ideal for spiritual rejuvenation"
	case models.TripRomantic:
		return "💑 " + name + ": Romantic getaway with scenic views"
	case models.TripFoodie:
		return "🍜 " + name + ": A feast of local flavors and markets"
	}
	return "✨ " + name + ": A top recommendation for your trip"
}

func describePreference(req models.SuggestionRequest) string {
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+"="+v)
		}
	}
	add("trip type", req.TripType)
	add("terrain", req.Terrain)
	add("budget", req.Budget)
	add("duration", req.Duration)
	add("location", req.LocationPref)
	add("specific location", req.SpecificLocation)
	if len(parts) == 0 {
		return "no preferences chosen yet"
	}
	return strings.Join(parts, ", ")
}

func splitTips(reply string) []string {
	var tips []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• "))
		if line != "" {
			tips = append(tips, line)
		}
	}
	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}
