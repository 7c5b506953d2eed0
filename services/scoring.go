package services

import (
	"sort"
	"strings"

	"tripit/models"
)

// Rule-based destination scoring for /recommendations. Weights heavily favor
// explicit user choices so a terrain/type match always outranks budget fit:
// interest 40, travel type 35, budget 25.

var travelTypeTags = map[string][]string{
	"adventure":  {"adventure", "mountains", "offbeat", "trekking", "rafting"},
	"relaxation": {"relaxation", "nature", "backwaters", "lakes", "beach", "spa", "scenic"},
	"culture":    {"heritage", "culture", "spiritual", "temples", "history", "museums"},
	"party":      {"party", "beach", "nightlife", "urban"},
	"romantic":   {"romantic", "lakes", "nature", "scenic", "honeymoon", "luxury"},
	"family":     {"family", "heritage", "nature", "kid-friendly", "safe"},
	"spiritual":  {"spiritual", "temples", "pilgrimage", "yoga", "meditation"},
	"foodie":     {"food", "culture", "heritage", "markets", "urban"},
}

var interestTags = map[string][]string{
	"mountains": {"mountains", "hills", "trekking", "snow", "adventure", "scenic"},
	"beach":     {"beach", "coastal", "sea", "island", "water", "relaxation"},
	"heritage":  {"heritage", "culture", "history", "monuments", "forts", "museums"},
	"nature":    {"nature", "backwaters", "wildlife", "forests", "scenic", "lakes"},
	"spiritual": {"spiritual", "temples", "pilgrimage", "religious", "yoga"},
	"adventure": {"adventure", "offbeat", "trekking", "rafting", "sports"},
	"city":      {"city", "urban", "nightlife", "shopping", "food"},
}

// Request budgets arrive in the client's display currency; catalog costs are
// internal units. One internal unit ≈ 80 display units.
const displayUnitsPerInternal = 80

// ScoredDestination pairs a catalog record with its preference score.
type ScoredDestination struct {
	models.Destination
	Score float64
}

// ScoreDestinations ranks the catalog against the request, highest first.
func ScoreDestinations(dests []models.Destination, req models.RecommendationRequest) []ScoredDestination {
	userTypeTags := toSet(travelTypeTags[strings.ToLower(req.TravelType)])
	userInterestTags := toSet(interestTags[strings.ToLower(req.Interest)])
	interestLower := strings.ToLower(req.Interest)

	budgetInternal := float64(req.Budget) / displayUnitsPerInternal

	scored := make([]ScoredDestination, 0, len(dests))
	for _, d := range dests {
		tags := toSet(DestinationTags(d))
		score := 0.0

		// Interest (terrain) match — highest priority.
		if n := overlap(tags, userInterestTags); n > 0 {
			score += minf(40, float64(n)*20)
		}
		if tags[interestLower] {
			score += 15
		}

		// Travel type match.
		if n := overlap(tags, userTypeTags); n > 0 {
			score += minf(35, float64(n)*15)
		}
		if strings.EqualFold(d.TripType, req.TravelType) {
			score += 10
		}

		// Budget fit.
		if budgetInternal > 0 {
			ratio := float64(d.EstimatedCost) / budgetInternal
			switch {
			case ratio >= 0.5 && ratio <= 0.8:
				score += 25 // sweet spot
			case ratio < 0.5:
				score += 15 // well under budget
			case ratio <= 1.0:
				score += 20 // tight but affordable
			case ratio <= 1.2:
				score += 5 // might stretch
			}
		}

		if score > 100 {
			score = 100
		}
		scored = append(scored, ScoredDestination{Destination: d, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// DestinationTags flattens a record's highlights plus its trip type and
// terrain into a lowercase tag list for scoring and wire responses.
func DestinationTags(d models.Destination) []string {
	var tags []string
	for _, h := range strings.Split(d.Highlights, ",") {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			tags = append(tags, h)
		}
	}
	if d.TripType != "" {
		tags = append(tags, strings.ToLower(d.TripType))
	}
	if d.Terrain != "" {
		tags = append(tags, strings.ToLower(d.Terrain))
	}
	return tags
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func overlap(a, b map[string]bool) int {
	n := 0
	for k := range a {
		if b[k] {
			n++
		}
	}
	return n
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
