package planner

import (
	"log"
	"sync"
	"time"

	"tripit/models"
)

// SuggestDebounce is how long the planner waits after the last preference
// edit before asking for contextual suggestions. Each edit restarts the
// window, so a burst of edits coalesces into one call.
const SuggestDebounce = 600 * time.Millisecond

// suggestState owns the debounced suggestion fetch. The timer fires on its
// own goroutine, which only ever sees a preference snapshot taken at
// schedule time plus the fields behind mu; it never reads the live session.
// gen identifies the newest schedule, so a fetch that was already running
// when the session moved on cannot apply its result.
type suggestState struct {
	session *Session
	delay   time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	gen         int
	suggestions []string
	loading     bool
}

func newSuggestState(s *Session) *suggestState {
	return &suggestState{session: s, delay: SuggestDebounce}
}

// SetPreference updates one preference field by its wire name. Edits to the
// five selector fields while on the questions step schedule a suggestion
// refresh.
func (s *Session) SetPreference(key, value string) {
	triggers := true
	switch key {
	case "locationPref":
		s.Preferences.LocationPref = value
	case "tripType":
		s.Preferences.TripType = value
	case "terrain":
		s.Preferences.Terrain = value
	case "budget":
		s.Preferences.Budget = value
	case "duration":
		s.Preferences.Duration = value
	case "specificLocation":
		s.Preferences.SpecificLocation = value
		triggers = false
	default:
		return
	}
	if triggers && s.Step == StepQuestions {
		s.suggest.schedule(s.Preferences)
	}
}

// SetTravelers updates the traveler count; values below 1 are ignored.
func (s *Session) SetTravelers(n int) {
	if n >= 1 {
		s.Preferences.Travelers = n
	}
}

// Suggestions returns the current contextual tips.
func (s *Session) Suggestions() []string {
	s.suggest.mu.Lock()
	defer s.suggest.mu.Unlock()
	return s.suggest.suggestions
}

// SuggestionsLoading reports whether a fetch is in flight.
func (s *Session) SuggestionsLoading() bool {
	s.suggest.mu.Lock()
	defer s.suggest.mu.Unlock()
	return s.suggest.loading
}

// FetchSuggestions calls the suggestions endpoint immediately with the
// current partial preference. With nothing selected yet it skips the call and
// clears any stale tips. Fetch failures keep the previous list; suggestions
// never block or fail the main flow.
func (s *Session) FetchSuggestions() {
	s.suggest.mu.Lock()
	gen := s.suggest.gen
	s.suggest.mu.Unlock()
	s.fetchSuggestions(s.Preferences, gen)
}

// fetchSuggestions runs one fetch for the given preference snapshot. gen is
// the schedule generation the snapshot belongs to; a result only applies
// while that generation is still current.
func (s *Session) fetchSuggestions(p models.Preference, gen int) {
	if p.Empty() {
		s.suggest.apply(gen, nil)
		return
	}

	s.suggest.setLoading(true)
	defer s.suggest.setLoading(false)

	tips, err := s.api.GetSuggestions(models.SuggestionRequest{
		TripType:         p.TripType,
		Terrain:          p.Terrain,
		Budget:           p.Budget,
		Duration:         p.Duration,
		LocationPref:     p.LocationPref,
		SpecificLocation: p.SpecificLocation,
	})
	if err != nil {
		log.Printf("⚠️  Failed to fetch suggestions: %v", err)
		return
	}
	s.suggest.apply(gen, tips)
}

func (s *Session) setSuggestions(tips []string) {
	s.suggest.mu.Lock()
	s.suggest.suggestions = tips
	s.suggest.mu.Unlock()
}

// schedule restarts the debounce window. The preference is copied here, on
// the caller's goroutine, so the timer callback never touches the session.
func (st *suggestState) schedule(p models.Preference) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.timer != nil {
		st.timer.Stop()
	}
	st.gen++
	gen := st.gen
	st.timer = time.AfterFunc(st.delay, func() {
		st.session.fetchSuggestions(p, gen)
	})
}

// cancel stops any pending timer and invalidates in-flight fetches.
func (st *suggestState) cancel() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
	st.gen++
}

// apply installs a fetch result, unless a newer schedule or a cancel
// superseded it.
func (st *suggestState) apply(gen int, tips []string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.gen != gen {
		return
	}
	st.suggestions = tips
}

func (st *suggestState) setLoading(v bool) {
	st.mu.Lock()
	st.loading = v
	st.mu.Unlock()
}
