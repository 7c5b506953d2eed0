package planner

import (
	"errors"
	"strings"
	"testing"

	"tripit/models"
)

func sessionWithItinerary(api *stubAPI) *Session {
	s := newTestSession(api)
	s.Step = StepItinerary
	s.Itinerary = &models.Itinerary{
		ID:          "it-1",
		Destination: "Varanasi",
		Days:        2,
		DayPlans: []models.DayPlan{
			{Day: 1, Title: "Arrival", Activities: []string{"Check in", "Evening walk"}},
			{Day: 2, Title: "Departure", Activities: []string{"Pack and checkout"}},
		},
	}
	return s
}

func TestUpdateActivity(t *testing.T) {
	s := sessionWithItinerary(&stubAPI{})

	s.UpdateActivity(0, 1, "Ganga Aarti at sunset")
	if got := s.Itinerary.DayPlans[0].Activities[1]; got != "Ganga Aarti at sunset" {
		t.Errorf("activity = %q", got)
	}
	if !s.Dirty {
		t.Error("edit did not mark the itinerary dirty")
	}

	t.Run("out of range is a no-op", func(t *testing.T) {
		s := sessionWithItinerary(&stubAPI{})
		s.UpdateActivity(5, 0, "x")
		s.UpdateActivity(0, 9, "x")
		s.UpdateActivity(-1, 0, "x")
		if s.Dirty {
			t.Error("invalid edit marked the itinerary dirty")
		}
	})

	t.Run("no itinerary is a no-op", func(t *testing.T) {
		s := newTestSession(&stubAPI{})
		s.UpdateActivity(0, 0, "x")
		if s.Dirty {
			t.Error("edit without an itinerary marked dirty")
		}
	})
}

func TestAddThenRemoveActivity(t *testing.T) {
	s := sessionWithItinerary(&stubAPI{})
	before := len(s.Itinerary.DayPlans[0].Activities)

	s.AddActivity(0, "Boat ride")
	if got := len(s.Itinerary.DayPlans[0].Activities); got != before+1 {
		t.Fatalf("after add: %d activities, want %d", got, before+1)
	}

	s.RemoveActivity(0, before)
	if got := len(s.Itinerary.DayPlans[0].Activities); got != before {
		t.Errorf("after remove: %d activities, want %d", got, before)
	}
	if !s.Dirty {
		t.Error("edits did not mark dirty")
	}
}

func TestUpdateDayTitle(t *testing.T) {
	s := sessionWithItinerary(&stubAPI{})
	s.UpdateDayTitle(1, "Final morning")
	if got := s.Itinerary.DayPlans[1].Title; got != "Final morning" {
		t.Errorf("title = %q", got)
	}
}

func TestEditClearsSavedFlag(t *testing.T) {
	s := sessionWithItinerary(&stubAPI{})
	s.Saved = true
	s.AddActivity(1, "Souvenir shopping")
	if s.Saved {
		t.Error("edit left the itinerary marked saved")
	}
}

func TestSave(t *testing.T) {
	t.Run("synced save", func(t *testing.T) {
		api := &stubAPI{saveResp: &models.SaveItineraryResponse{Success: true, ID: "srv-1"}}
		s := sessionWithItinerary(api)
		s.Trips = NewTripList(api)
		s.Dirty = true

		res := s.Save("user-7")
		if !res.Synced || res.ID != "srv-1" {
			t.Errorf("result = %+v", res)
		}
		if !s.Saved || s.Dirty || s.SavedID != "srv-1" {
			t.Errorf("saved=%v dirty=%v id=%q", s.Saved, s.Dirty, s.SavedID)
		}
		if len(s.Trips.Trips) != 1 || s.Trips.Trips[0].ID != "srv-1" {
			t.Errorf("trip list = %+v", s.Trips.Trips)
		}
	})

	t.Run("failed save keeps a local copy", func(t *testing.T) {
		api := &stubAPI{saveErr: errors.New("503")}
		s := sessionWithItinerary(api)
		s.Dirty = true

		res := s.Save("user-7")
		if res.Synced {
			t.Error("failed save reported as synced")
		}
		if !strings.HasPrefix(res.ID, "local-") {
			t.Errorf("local ID = %q", res.ID)
		}
		if !s.Saved {
			t.Error("failed save should still mark Saved (local copy exists)")
		}
		if !s.Dirty {
			t.Error("failed save should leave the itinerary dirty for a later sync")
		}
	})

	t.Run("anonymous save skips the trip list", func(t *testing.T) {
		api := &stubAPI{saveResp: &models.SaveItineraryResponse{Success: true, ID: "srv-2"}}
		s := sessionWithItinerary(api)
		s.Trips = NewTripList(api)

		s.Save("")
		if len(s.Trips.Trips) != 0 {
			t.Errorf("anonymous save added to trip list: %+v", s.Trips.Trips)
		}
	})

	t.Run("no itinerary", func(t *testing.T) {
		api := &stubAPI{}
		s := newTestSession(api)
		if res := s.Save("user-7"); res.ID != "" || res.Synced {
			t.Errorf("result = %+v, want zero", res)
		}
		if api.saveCalls != 0 {
			t.Error("backend called without an itinerary")
		}
	})
}

func TestToggleEditMode(t *testing.T) {
	s := sessionWithItinerary(&stubAPI{})
	s.ToggleEditMode()
	if !s.Editing {
		t.Error("first toggle should enable editing")
	}
	s.ToggleEditMode()
	if s.Editing {
		t.Error("second toggle should disable editing")
	}
}
