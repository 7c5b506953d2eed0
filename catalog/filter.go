package catalog

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"tripit/models"
)

// Budget tier boundaries in internal cost units.
const (
	budgetCeiling   = 800
	moderateCeiling = 2000
)

// Filter returns up to count destination candidates matching the preference,
// shuffled with rng (pass nil for a time-seeded source). Ranking is random on
// purpose: this is the offline stand-in for the AI recommendation call.
//
// Selection is total over any input; unset preference fields are simply not
// filtered on, and a zero-result strict pass relaxes to location + trip type
// before giving up with an empty slice.
func Filter(prefs models.Preference, homeCountry string, count int, rng *rand.Rand) []models.Candidate {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	filtered := applyAll(prefs, homeCountry)

	// Too strict: drop terrain and budget, keep location and trip type.
	if len(filtered) == 0 {
		filtered = relaxed(prefs, homeCountry)
	}

	rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	if count > 0 && len(filtered) > count {
		filtered = filtered[:count]
	}

	out := make([]models.Candidate, 0, len(filtered))
	for i, d := range filtered {
		c := Enrich(d)
		c.ID = i
		out = append(out, c)
	}
	return out
}

func applyAll(prefs models.Preference, homeCountry string) []models.Destination {
	var filtered []models.Destination
	for _, d := range All {
		switch prefs.LocationPref {
		case models.ScopeDomestic:
			if d.Country != homeCountry {
				continue
			}
		case models.ScopeNearby:
			if !NearbyCountries[d.Country] || d.Country == homeCountry {
				continue
			}
		case models.ScopeInternational:
			if d.Country == homeCountry || NearbyCountries[d.Country] {
				continue
			}
		}
		if prefs.TripType != "" && d.TripType != prefs.TripType {
			continue
		}
		if prefs.Terrain != "" && d.Terrain != prefs.Terrain {
			continue
		}
		switch prefs.Budget {
		case models.BudgetLow:
			if d.EstimatedCost >= budgetCeiling {
				continue
			}
		case models.BudgetModerate:
			if d.EstimatedCost < budgetCeiling || d.EstimatedCost > moderateCeiling {
				continue
			}
		case models.BudgetLuxury:
			if d.EstimatedCost <= moderateCeiling {
				continue
			}
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// relaxed re-applies only the location scope (domestic/nearby) and trip type.
// International is deliberately not reapplied here.
func relaxed(prefs models.Preference, homeCountry string) []models.Destination {
	var filtered []models.Destination
	for _, d := range All {
		switch prefs.LocationPref {
		case models.ScopeDomestic:
			if d.Country != homeCountry {
				continue
			}
		case models.ScopeNearby:
			if !NearbyCountries[d.Country] {
				continue
			}
		}
		if prefs.TripType != "" && d.TripType != prefs.TripType {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// ─── Candidate enrichment ─────────────────────────────────────────────────────

// Enrich turns a raw catalog record into a display candidate with an image
// URL, package tiers, a skeleton itinerary and a cost breakdown.
func Enrich(d models.Destination) models.Candidate {
	return models.Candidate{
		ID:            d.ID,
		Name:          d.Name,
		Country:       d.Country,
		Description:   d.Description,
		Image:         ImageURL(d.Name),
		Highlights:    d.Highlights,
		EstimatedCost: d.EstimatedCost,
		BestTime:      d.BestTime,
		TripType:      d.TripType,
		Terrain:       d.Terrain,
		Packages:      BuildPackages(d.EstimatedCost),
		Itinerary:     skeletonItinerary(d.Name, d.Highlights),
		CostBreakdown: BuildCostBreakdown(d.EstimatedCost),
	}
}

// ImageURL builds the deterministic placeholder image URL for a destination.
func ImageURL(name string) string {
	return "https://loremflickr.com/600/800/" + strings.ReplaceAll(name, " ", ",") + ",travel,landmark/all"
}

// BuildPackages prices the three fixed tiers off the base cost.
func BuildPackages(cost int) []models.Package {
	if cost <= 0 {
		cost = 2000
	}
	return []models.Package{
		{Name: "Standard", Price: roundMul(cost, 0.8), Duration: 5, Includes: "Flights, 3★ Hotel, Breakfast"},
		{Name: "Premium", Price: cost, Duration: 7, Includes: "Direct Flights, 4★ Hotel, Tours"},
		{Name: "Luxury", Price: roundMul(cost, 1.5), Duration: 10, Includes: "Business Class, 5★ Resort, All Inclusive"},
	}
}

// BuildCostBreakdown splits the estimated cost 40/30/20/10 across flights,
// accommodation, food and activities.
func BuildCostBreakdown(cost int) models.CostBreakdown {
	return models.CostBreakdown{
		Flights:       roundMul(cost, 0.40),
		Accommodation: roundMul(cost, 0.30),
		Food:          roundMul(cost, 0.20),
		Activities:    roundMul(cost, 0.10),
	}
}

func skeletonItinerary(name, highlights string) []string {
	return []string{
		"Day 1: Arrival in " + name + ". Transfer to hotel. Evening leisure.",
		"Day 2: Full day sightseeing: " + HighlightTag(highlights, 0, "local landmarks") + " and surrounds.",
		"Day 3: Cultural immersion or adventure activity: " + HighlightTag(highlights, 1, "local culture") + ".",
		"Day 4: Free time for shopping or relaxation at " + HighlightTag(highlights, 2, "local markets") + ".",
		"Day 5: Airport transfer and departure.",
	}
}

// HighlightTag returns the i-th comma-separated highlight, trimmed, or the
// fallback when the tag is missing or blank.
func HighlightTag(highlights string, i int, fallback string) string {
	parts := strings.Split(highlights, ",")
	if i < 0 || i >= len(parts) {
		return fallback
	}
	tag := strings.TrimSpace(parts[i])
	if tag == "" {
		return fallback
	}
	return tag
}

func roundMul(cost int, factor float64) int {
	return int(math.Round(float64(cost) * factor))
}
