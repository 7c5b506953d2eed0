package models

// ─── Preference ───────────────────────────────────────────────────────────────

// Location scope values.
const (
	ScopeDomestic      = "domestic"
	ScopeNearby        = "nearby"
	ScopeInternational = "international"
)

// Trip type values.
const (
	TripSpiritual  = "spiritual"
	TripAdventure  = "adventure"
	TripRelaxation = "relaxation"
	TripCultural   = "cultural"
	TripRomantic   = "romantic"
	TripFoodie     = "foodie"
)

// Terrain values.
const (
	TerrainMountain    = "mountain"
	TerrainBeach       = "beach"
	TerrainCity        = "city"
	TerrainCountryside = "countryside"
)

// Budget tiers.
const (
	BudgetLow      = "budget"
	BudgetModerate = "moderate"
	BudgetLuxury   = "luxury"
)

// Duration tiers.
const (
	DurationWeekend  = "weekend"
	DurationWeek     = "week"
	DurationTwoWeeks = "twoWeeks"
)

// Preference is the user's trip intent, filled in field by field while the
// planner asks questions. Every selector is optional until Validate is called.
type Preference struct {
	LocationPref     string `json:"locationPref,omitempty"`
	SpecificLocation string `json:"specificLocation,omitempty"`
	TripType         string `json:"tripType,omitempty"`
	Terrain          string `json:"terrain,omitempty"`
	Budget           string `json:"budget,omitempty"`
	Duration         string `json:"duration,omitempty"`
	Travelers        int    `json:"travelers,omitempty"`
}

// Validate reports the first missing required field, in the order the
// planner asks for them. Returns "" when the preference is complete.
func (p Preference) Validate() string {
	switch {
	case p.LocationPref == "":
		return "Please select where you want to travel"
	case p.TripType == "":
		return "Please select a trip type"
	case p.Terrain == "":
		return "Please select a preferred terrain"
	case p.Budget == "":
		return "Please select your budget"
	case p.Duration == "":
		return "Please select a duration"
	}
	return ""
}

// Empty reports whether none of the five selector fields have been chosen yet.
func (p Preference) Empty() bool {
	return p.TripType == "" && p.Terrain == "" && p.Budget == "" &&
		p.Duration == "" && p.LocationPref == ""
}

// ─── Catalog ──────────────────────────────────────────────────────────────────

// Destination is one static catalog record. Loaded once, never mutated.
type Destination struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	Description   string `json:"description"`
	Highlights    string `json:"highlights"` // comma-joined tags
	EstimatedCost int    `json:"estimatedCost"`
	BestTime      string `json:"bestTime"`
	TripType      string `json:"tripType"`
	Terrain       string `json:"terrain"`
}

// Package is one of the three price tiers shown on a candidate card.
type Package struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"`
	Includes string `json:"includes"`
}

// CostBreakdown splits a candidate's estimated cost into display buckets.
type CostBreakdown struct {
	Flights       int `json:"flights"`
	Accommodation int `json:"accommodation"`
	Food          int `json:"food"`
	Activities    int `json:"activities"`
}

// Candidate is a destination enriched for display: either a filtered catalog
// record or a remote recommendation, plus synthesized pricing and a skeleton
// itinerary. Ephemeral; rebuilt on every search.
type Candidate struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Country       string        `json:"country"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Highlights    string        `json:"highlights"`
	EstimatedCost int           `json:"estimatedCost"`
	Score         float64       `json:"score,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	BestTime      string        `json:"bestTime"`
	TripType      string        `json:"tripType"`
	Terrain       string        `json:"terrain"`
	Packages      []Package     `json:"packages"`
	Itinerary     []string      `json:"itinerary"`
	CostBreakdown CostBreakdown `json:"costBreakdown"`
}

// ─── Itinerary ────────────────────────────────────────────────────────────────

// DayPlan is a single day of a generated itinerary.
type DayPlan struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	Meals         []string `json:"meals"`
	Accommodation string   `json:"accommodation"`
	EstimatedCost int      `json:"estimated_cost"`
	Tips          string   `json:"tips,omitempty"`
}

// Itinerary is a full day-by-day plan for one destination. Day numbers run
// 1..Days, unique and ascending.
type Itinerary struct {
	ID            string         `json:"id"`
	Destination   string         `json:"destination"`
	Days          int            `json:"days"`
	TotalCost     int            `json:"total_cost"`
	DayPlans      []DayPlan      `json:"day_plans"`
	TravelTips    []string       `json:"travel_tips"`
	CostBreakdown map[string]int `json:"cost_breakdown"`
}
