package planner

import (
	"log"
	"math/rand"
	"strconv"
	"time"

	"tripit/catalog"
	"tripit/models"
	"tripit/services"
)

// TripService is the slice of the backend API the planner consumes.
// *services.TripAPI satisfies it; tests substitute a stub.
type TripService interface {
	GetRecommendations(models.RecommendationRequest) (*models.RecommendationResponse, error)
	GenerateItinerary(models.ItineraryRequest) (*models.Itinerary, error)
	GetSuggestions(models.SuggestionRequest) ([]string, error)
	SaveItinerary(models.Itinerary, string) (*models.SaveItineraryResponse, error)
	GetUserTrips(string) ([]models.Itinerary, error)
	DeleteTrip(string) error
}

// Step is a planner state. Forward flow is intro → questions → loading →
// results → itinerary; results and itinerary allow stepping back.
type Step string

const (
	StepIntro     Step = "intro"
	StepQuestions Step = "questions"
	StepLoading   Step = "loading"
	StepResults   Step = "results"
	StepItinerary Step = "itinerary"
)

// OfflineNotice is the advisory shown when recommendations come from the
// local catalog instead of the backend.
const OfflineNotice = "Using offline recommendations (backend unavailable)"

const itineraryFailedNotice = "Failed to generate itinerary. Please try again."

// fallbackResultCount is how many offline candidates a failed recommendation
// call is replaced with.
const fallbackResultCount = 5

// Session is one run of the trip planner, owned by a single UI flow. The
// suggestion debounce timer runs on its own goroutine but only ever sees a
// preference snapshot and the mutex-guarded suggest state (see suggest.go);
// it never reads or writes the session directly.
type Session struct {
	api         TripService
	rng         *rand.Rand
	homeCountry string

	Step        Step
	Preferences models.Preference
	Results     []models.Candidate
	Err         string
	Offline     bool

	Selected         *models.Candidate
	Itinerary        *models.Itinerary
	ItineraryLoading bool
	ItineraryErr     string

	Saving  bool
	Saved   bool
	SavedID string
	Dirty   bool
	Editing bool

	// Trips, when set, receives saved itineraries for the dashboard list.
	Trips *TripList

	suggest *suggestState
}

// NewSession creates a planner session at the intro step. rng seeds the
// offline shuffle; pass nil outside of tests.
func NewSession(api TripService, homeCountry string, rng *rand.Rand) *Session {
	if homeCountry == "" {
		homeCountry = "India"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{
		api:         api,
		rng:         rng,
		homeCountry: homeCountry,
		Step:        StepIntro,
	}
	s.Preferences.Travelers = 2
	s.suggest = newSuggestState(s)
	return s
}

// Begin moves from the intro screen to the questions.
func (s *Session) Begin() {
	if s.Step == StepIntro {
		s.Step = StepQuestions
	}
}

// BackToQuestions discards results and returns to the question flow.
func (s *Session) BackToQuestions() {
	s.Step = StepQuestions
	s.Results = nil
	s.Err = ""
}

// BackToResults discards the itinerary and selected destination.
func (s *Session) BackToResults() {
	s.Step = StepResults
	s.Itinerary = nil
	s.ItineraryErr = ""
	s.Selected = nil
}

// Close resets the session to a fresh intro state. The session object stays
// reusable.
func (s *Session) Close() {
	s.suggest.cancel()
	s.Step = StepIntro
	s.Results = nil
	s.Err = ""
	s.Offline = false
	s.Selected = nil
	s.Itinerary = nil
	s.ItineraryLoading = false
	s.ItineraryErr = ""
	s.Saving = false
	s.Saved = false
	s.SavedID = ""
	s.Dirty = false
	s.Editing = false
	s.Preferences = models.Preference{Travelers: 2}
	s.setSuggestions(nil)
}

// Generate validates the preference and, if complete, runs the
// loading → results transition. It returns the validation message when the
// preference is incomplete; the step then stays at questions.
//
// The results step is always reached on a valid preference: a failed backend
// call degrades to the offline catalog instead of surfacing an error state.
func (s *Session) Generate() string {
	if s.Step != StepQuestions {
		return ""
	}
	if msg := s.Preferences.Validate(); msg != "" {
		return msg
	}

	s.Step = StepLoading

	resp, err := s.api.GetRecommendations(services.RecommendationRequestFor(s.Preferences))
	if s.Step != StepLoading {
		// Session was closed while the call was in flight; drop the result.
		return ""
	}

	if err != nil {
		log.Printf("⚠️  Recommendation request failed: %v — using offline catalog", err)
		s.Err = OfflineNotice
		s.Offline = true
		s.Results = catalog.Filter(s.Preferences, s.homeCountry, fallbackResultCount, s.rng)
	} else {
		results := make([]models.Candidate, 0, len(resp.Destinations))
		for i, d := range resp.Destinations {
			c := services.CandidateFromWire(d)
			c.ID = i
			results = append(results, c)
		}
		s.Results = results
		s.Err = ""
		s.Offline = false
	}

	s.Step = StepResults
	return ""
}

// SelectDestination generates an itinerary for one of the result candidates
// and moves to the itinerary step. A failed generation is replaced by a local
// fallback plan; the step never reverts.
func (s *Session) SelectDestination(c models.Candidate) {
	s.Selected = &c
	s.ItineraryLoading = true
	s.ItineraryErr = ""
	s.Step = StepItinerary

	it, err := s.api.GenerateItinerary(services.ItineraryRequestFor(c.Name, s.Preferences))
	if s.Step != StepItinerary || s.Selected == nil || s.Selected.Name != c.Name {
		return
	}

	if err != nil {
		log.Printf("⚠️  Itinerary generation failed for %s: %v — using fallback plan", c.Name, err)
		s.ItineraryErr = itineraryFailedNotice
		fb := FallbackItinerary(c, s.Preferences)
		s.Itinerary = &fb
	} else {
		s.Itinerary = it
		s.ItineraryErr = ""
	}
	s.ItineraryLoading = false
}

// Regenerate rebuilds the itinerary for the currently selected destination,
// dropping any saved/edited state first.
func (s *Session) Regenerate() {
	if s.Selected == nil {
		return
	}
	s.Saved = false
	s.SavedID = ""
	s.Dirty = false
	s.Editing = false
	s.SelectDestination(*s.Selected)
}

// FallbackItinerary builds a plan from candidate data alone. It is total:
// missing highlights and unset duration tiers still produce a well-formed
// itinerary with days numbered 1..N.
func FallbackItinerary(dest models.Candidate, prefs models.Preference) models.Itinerary {
	days := 12
	switch prefs.Duration {
	case models.DurationWeekend:
		days = 3
	case models.DurationWeek:
		days = 6
	}

	perDay := dest.EstimatedCost
	if days > 0 {
		perDay = roundShare(dest.EstimatedCost, 1/float64(days))
	}

	plans := make([]models.DayPlan, 0, days)
	for i := 1; i <= days; i++ {
		var title string
		switch {
		case i == 1:
			title = "Arrival in " + dest.Name
		case i == days:
			title = "Departure Day"
		default:
			title = "Day " + strconv.Itoa(i) + " - Explore " + dest.Name
		}

		first := "Morning breakfast at hotel"
		if i == 1 {
			first = "Airport/Station pickup and transfer to hotel"
		}
		last := "Evening leisure time"
		if i == days {
			last = "Pack and checkout"
		}

		plans = append(plans, models.DayPlan{
			Day:   i,
			Title: title,
			Activities: []string{
				first,
				catalog.HighlightTag(dest.Highlights, i%3, "Local sightseeing"),
				"Lunch at local restaurant",
				last,
			},
			Meals:         []string{"Breakfast", "Lunch", "Dinner"},
			Accommodation: "3-4 Star Hotel",
			EstimatedCost: perDay,
		})
	}

	breakdown := map[string]int{
		"flights":       dest.CostBreakdown.Flights,
		"accommodation": dest.CostBreakdown.Accommodation,
		"food":          dest.CostBreakdown.Food,
		"activities":    dest.CostBreakdown.Activities,
	}
	if dest.CostBreakdown == (models.CostBreakdown{}) {
		breakdown = map[string]int{
			"transport":     roundShare(dest.EstimatedCost, 0.35),
			"accommodation": roundShare(dest.EstimatedCost, 0.30),
			"food":          roundShare(dest.EstimatedCost, 0.20),
			"activities":    roundShare(dest.EstimatedCost, 0.15),
		}
	}

	return models.Itinerary{
		ID:          "fallback-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Destination: dest.Name,
		Days:        days,
		TotalCost:   dest.EstimatedCost,
		DayPlans:    plans,
		TravelTips: []string{
			"Book accommodations in advance for better rates",
			"Keep copies of important documents",
			"Try local cuisine for authentic experience",
			"Download offline maps before the trip",
		},
		CostBreakdown: breakdown,
	}
}

func roundShare(total int, factor float64) int {
	return int(float64(total)*factor + 0.5)
}
