package planner

import (
	"errors"
	"testing"
	"time"

	"tripit/models"
)

func TestDebouncedSuggestions(t *testing.T) {
	api := &stubAPI{tips: []string{"🏔️ Manali: Great for trekking & outdoor activities"}}
	s := newTestSession(api)
	s.suggest.delay = 40 * time.Millisecond
	s.Begin()

	// A burst of edits within the window coalesces into one fetch.
	s.SetPreference("locationPref", models.ScopeDomestic)
	time.Sleep(10 * time.Millisecond)
	s.SetPreference("tripType", models.TripAdventure)
	time.Sleep(10 * time.Millisecond)
	s.SetPreference("terrain", models.TerrainMountain)

	time.Sleep(150 * time.Millisecond)

	if got := api.tipCallCount(); got != 1 {
		t.Fatalf("suggestion endpoint called %d times, want 1", got)
	}

	api.mu.Lock()
	req := api.lastTipReq
	api.mu.Unlock()
	if req.LocationPref != models.ScopeDomestic || req.TripType != models.TripAdventure || req.Terrain != models.TerrainMountain {
		t.Errorf("fetched with stale preference: %+v", req)
	}

	if got := s.Suggestions(); len(got) != 1 {
		t.Errorf("suggestions = %v", got)
	}
}

func TestSpecificLocationDoesNotTriggerSuggestions(t *testing.T) {
	api := &stubAPI{}
	s := newTestSession(api)
	s.suggest.delay = 20 * time.Millisecond
	s.Begin()

	s.SetPreference("specificLocation", "Kerala")
	time.Sleep(80 * time.Millisecond)

	if got := api.tipCallCount(); got != 0 {
		t.Errorf("free-text edit triggered %d fetches", got)
	}
	if s.Preferences.SpecificLocation != "Kerala" {
		t.Errorf("specific location = %q", s.Preferences.SpecificLocation)
	}
}

func TestSuggestionsOnlyOnQuestionsStep(t *testing.T) {
	api := &stubAPI{}
	s := newTestSession(api)
	s.suggest.delay = 20 * time.Millisecond

	// Still on the intro step.
	s.SetPreference("tripType", models.TripAdventure)
	time.Sleep(80 * time.Millisecond)

	if got := api.tipCallCount(); got != 0 {
		t.Errorf("edit outside the questions step triggered %d fetches", got)
	}
}

func TestFetchSuggestionsEmptyPreference(t *testing.T) {
	api := &stubAPI{}
	s := newTestSession(api)
	s.setSuggestions([]string{"stale tip"})

	s.FetchSuggestions()

	if got := api.tipCallCount(); got != 0 {
		t.Errorf("empty preference fetched %d times", got)
	}
	if got := s.Suggestions(); got != nil {
		t.Errorf("stale suggestions not cleared: %v", got)
	}
}

func TestFetchSuggestionsFailureKeepsPrevious(t *testing.T) {
	api := &stubAPI{tips: []string{"first tip"}}
	s := newTestSession(api)
	s.Preferences.TripType = models.TripAdventure

	s.FetchSuggestions()
	if got := s.Suggestions(); len(got) != 1 || got[0] != "first tip" {
		t.Fatalf("suggestions = %v", got)
	}

	api.mu.Lock()
	api.tipsErr = errors.New("503")
	api.mu.Unlock()

	s.FetchSuggestions()
	if got := s.Suggestions(); len(got) != 1 || got[0] != "first tip" {
		t.Errorf("failed fetch dropped previous suggestions: %v", got)
	}
	if s.SuggestionsLoading() {
		t.Error("loading flag stuck after a failed fetch")
	}
}

// TestConcurrentEditsDuringFetches hammers the selector fields while timer
// goroutines fire fetches. The fetches must only ever see preference
// snapshots taken at schedule time, never the live struct mid-write; run
// with -race.
func TestConcurrentEditsDuringFetches(t *testing.T) {
	api := &stubAPI{tips: []string{"tip"}}
	s := newTestSession(api)
	s.suggest.delay = time.Nanosecond
	s.Begin()

	for i := 0; i < 200; i++ {
		s.SetPreference("tripType", models.TripAdventure)
		s.SetPreference("terrain", models.TerrainMountain)
		s.SetPreference("budget", models.BudgetLow)
	}
	time.Sleep(50 * time.Millisecond)

	// Every snapshot scheduled after the first edit carries the trip type.
	api.mu.Lock()
	req := api.lastTipReq
	api.mu.Unlock()
	if req.TripType != models.TripAdventure {
		t.Errorf("last fetch saw a torn preference: %+v", req)
	}
}

// blockingTipsAPI parks GetSuggestions until released, so a test can hold a
// fetch in flight across a session reset.
type blockingTipsAPI struct {
	stubAPI
	started chan struct{}
	release chan struct{}
}

func (b *blockingTipsAPI) GetSuggestions(req models.SuggestionRequest) ([]string, error) {
	b.started <- struct{}{}
	<-b.release
	return []string{"late tip"}, nil
}

func TestCloseDiscardsInFlightSuggestions(t *testing.T) {
	api := &blockingTipsAPI{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := NewSession(api, "India", nil)
	s.suggest.delay = time.Nanosecond
	s.Begin()

	s.SetPreference("tripType", models.TripAdventure)
	<-api.started

	s.Close()
	close(api.release)
	time.Sleep(20 * time.Millisecond)

	if got := s.Suggestions(); got != nil {
		t.Errorf("fetch in flight during Close repopulated suggestions: %v", got)
	}
}

func TestSetTravelers(t *testing.T) {
	s := newTestSession(&stubAPI{})
	s.SetTravelers(4)
	if s.Preferences.Travelers != 4 {
		t.Errorf("travelers = %d, want 4", s.Preferences.Travelers)
	}
	s.SetTravelers(0)
	if s.Preferences.Travelers != 4 {
		t.Errorf("travelers = %d after invalid set, want 4", s.Preferences.Travelers)
	}
}
