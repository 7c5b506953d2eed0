package planner

import (
	"log"
	"strconv"
	"time"

	"tripit/models"
)

// Itinerary edit operations. All of them require a generated itinerary and a
// valid day index; anything out of range is a no-op. Every mutation marks the
// itinerary dirty until the next successful save.

// ToggleEditMode flips the itinerary editor on or off.
func (s *Session) ToggleEditMode() {
	s.Editing = !s.Editing
}

// UpdateActivity replaces one activity line on a day.
func (s *Session) UpdateActivity(dayIndex, activityIndex int, text string) {
	day := s.dayAt(dayIndex)
	if day == nil || activityIndex < 0 || activityIndex >= len(day.Activities) {
		return
	}
	day.Activities[activityIndex] = text
	s.markDirty()
}

// AddActivity appends an activity to a day, creating the list if needed.
func (s *Session) AddActivity(dayIndex int, text string) {
	day := s.dayAt(dayIndex)
	if day == nil {
		return
	}
	day.Activities = append(day.Activities, text)
	s.markDirty()
}

// RemoveActivity deletes an activity by position.
func (s *Session) RemoveActivity(dayIndex, activityIndex int) {
	day := s.dayAt(dayIndex)
	if day == nil || activityIndex < 0 || activityIndex >= len(day.Activities) {
		return
	}
	day.Activities = append(day.Activities[:activityIndex], day.Activities[activityIndex+1:]...)
	s.markDirty()
}

// UpdateDayTitle replaces a day's title.
func (s *Session) UpdateDayTitle(dayIndex int, title string) {
	day := s.dayAt(dayIndex)
	if day == nil {
		return
	}
	day.Title = title
	s.markDirty()
}

func (s *Session) dayAt(i int) *models.DayPlan {
	if s.Itinerary == nil || i < 0 || i >= len(s.Itinerary.DayPlans) {
		return nil
	}
	return &s.Itinerary.DayPlans[i]
}

func (s *Session) markDirty() {
	s.Dirty = true
	s.Saved = false
}

// SaveResult reports how a save landed. Saved is always true afterwards;
// Synced tells whether the backend accepted it or the ID is local-only.
type SaveResult struct {
	ID     string
	Synced bool
}

// Save persists the current itinerary. Transport failure degrades to a
// locally generated ID rather than an error: the trip stays usable offline
// and a caller can show "sync pending" off Synced.
func (s *Session) Save(userID string) SaveResult {
	if s.Itinerary == nil {
		return SaveResult{}
	}

	s.Saving = true
	defer func() { s.Saving = false }()

	resp, err := s.api.SaveItinerary(*s.Itinerary, userID)
	if err != nil {
		log.Printf("⚠️  Failed to save itinerary: %v — keeping local copy", err)
		s.SavedID = "local-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
		s.Saved = true
		return SaveResult{ID: s.SavedID}
	}

	s.SavedID = resp.ID
	s.Saved = true
	s.Dirty = false

	if userID != "" && s.Trips != nil {
		saved := *s.Itinerary
		saved.ID = resp.ID
		s.Trips.Add(saved)
	}
	return SaveResult{ID: resp.ID, Synced: true}
}
