package services

import (
	"strings"

	"tripit/catalog"
	"tripit/models"
)

// Translation tables between the planner's preference vocabulary and the
// recommendation API's request vocabulary. The two sides grew up separately,
// so the names do not line up one-to-one.

var budgetAmounts = map[string]int{
	models.BudgetLow:      30000,
	models.BudgetModerate: 80000,
	models.BudgetLuxury:   200000,
}

var durationDays = map[string]int{
	models.DurationWeekend:  3,
	models.DurationWeek:     6,
	models.DurationTwoWeeks: 12,
}

// Spiritual and foodie trips score against culture/heritage tags server-side.
var tripTypeToTravelType = map[string]string{
	models.TripSpiritual:  "culture",
	models.TripAdventure:  "adventure",
	models.TripRelaxation: "relaxation",
	models.TripCultural:   "culture",
	models.TripRomantic:   "romantic",
	models.TripFoodie:     "culture",
}

var terrainToInterest = map[string]string{
	models.TerrainMountain:    "mountains",
	models.TerrainBeach:       "beach",
	models.TerrainCity:        "heritage",
	models.TerrainCountryside: "nature",
}

const (
	defaultBudget     = 50000
	defaultDays       = 5
	defaultTravelType = "adventure"
	defaultInterest   = "nature"
	defaultTravelers  = 2
)

// RecommendationRequestFor maps a preference to the recommendation API's
// request shape, applying defaults for anything unset.
func RecommendationRequestFor(p models.Preference) models.RecommendationRequest {
	return models.RecommendationRequest{
		Budget:     budgetAmount(p.Budget),
		Days:       durationDayCount(p.Duration),
		TravelType: travelType(p.TripType),
		Interest:   interest(p.Terrain),
		Travelers:  travelerCount(p.Travelers),
	}
}

// ItineraryRequestFor maps a destination name plus the current preference to
// the itinerary generation request shape.
func ItineraryRequestFor(destination string, p models.Preference) models.ItineraryRequest {
	return models.ItineraryRequest{
		Destination: destination,
		Days:        durationDayCount(p.Duration),
		Budget:      budgetAmount(p.Budget),
		TravelType:  travelType(p.TripType),
		Interest:    interest(p.Terrain),
		Travelers:   travelerCount(p.Travelers),
	}
}

func budgetAmount(tier string) int {
	if v, ok := budgetAmounts[tier]; ok {
		return v
	}
	return defaultBudget
}

func durationDayCount(tier string) int {
	if v, ok := durationDays[tier]; ok {
		return v
	}
	return defaultDays
}

func travelType(tripType string) string {
	if v, ok := tripTypeToTravelType[tripType]; ok {
		return v
	}
	if tripType != "" {
		return tripType
	}
	return defaultTravelType
}

func interest(terrain string) string {
	if v, ok := terrainToInterest[terrain]; ok {
		return v
	}
	if terrain != "" {
		return terrain
	}
	return defaultInterest
}

func travelerCount(n int) int {
	if n >= 1 {
		return n
	}
	return defaultTravelers
}

// ─── Response mapping ─────────────────────────────────────────────────────────

// CandidateFromWire converts a scored API destination into a display
// candidate, synthesizing the same package tiers and cost breakdown the
// offline catalog produces.
func CandidateFromWire(d models.WireDestination) models.Candidate {
	highlights := strings.Join(d.Tags, ", ")
	if highlights == "" && d.Description != "" {
		highlights = truncate(d.Description, 50)
	}
	return models.Candidate{
		ID:            d.ID,
		Name:          d.Name,
		Country:       d.Country,
		Description:   d.Description,
		Image:         d.Image,
		Highlights:    highlights,
		EstimatedCost: d.EstimatedCost,
		Score:         d.Score,
		Reason:        d.Reason,
		BestTime:      "October - March",
		TripType:      TripTypeFromTags(d.Tags),
		Terrain:       TerrainFromTags(d.Tags),
		Packages:      catalog.BuildPackages(d.EstimatedCost),
		Itinerary:     defaultItinerary(d.Name, d.Tags),
		CostBreakdown: catalog.BuildCostBreakdown(d.EstimatedCost),
	}
}

// TripTypeFromTags maps API tags back to a planner trip type. First match in
// precedence order wins.
func TripTypeFromTags(tags []string) string {
	switch {
	case hasTag(tags, "adventure"):
		return models.TripAdventure
	case hasTag(tags, "relaxation"):
		return models.TripRelaxation
	case hasTag(tags, "heritage") || hasTag(tags, "culture"):
		return models.TripCultural
	case hasTag(tags, "spiritual"):
		return models.TripSpiritual
	}
	return models.TripAdventure
}

// TerrainFromTags maps API tags back to a planner terrain, first match wins.
func TerrainFromTags(tags []string) string {
	switch {
	case hasTag(tags, "mountains"):
		return models.TerrainMountain
	case hasTag(tags, "beach"):
		return models.TerrainBeach
	case hasTag(tags, "heritage") || hasTag(tags, "culture"):
		return models.TerrainCity
	case hasTag(tags, "nature") || hasTag(tags, "backwaters"):
		return models.TerrainCountryside
	}
	return models.TerrainCity
}

func defaultItinerary(name string, tags []string) []string {
	activity := "sightseeing"
	if len(tags) > 0 && tags[0] != "" {
		activity = tags[0]
	}
	highlight := "local culture"
	if len(tags) > 1 && tags[1] != "" {
		highlight = tags[1]
	}
	return []string{
		"Day 1: Arrival in " + name + ". Transfer to hotel. Evening leisure.",
		"Day 2: Full day sightseeing: " + activity + " and surrounds.",
		"Day 3: Cultural immersion: explore " + highlight + ".",
		"Day 4: Free time for shopping or relaxation.",
		"Day 5: Airport transfer and departure.",
	}
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), want) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
