package planner

import (
	"log"

	"tripit/models"
)

// TripList is the dashboard's cache of a user's saved trips. Deletes are
// optimistic: the entry disappears immediately and comes back if the backend
// refuses.
type TripList struct {
	api TripService

	Trips       []models.Itinerary
	Loading     bool
	Err         string
	Initialized bool
}

func NewTripList(api TripService) *TripList {
	return &TripList{api: api}
}

// Fetch loads the user's trips from the backend. On failure the list is
// emptied and Err set; callers render an empty state rather than erroring.
func (t *TripList) Fetch(userID string) error {
	if userID == "" {
		return nil
	}

	t.Loading = true
	t.Err = ""
	defer func() { t.Loading = false }()

	trips, err := t.api.GetUserTrips(userID)
	if err != nil {
		log.Printf("⚠️  Failed to fetch user trips: %v", err)
		t.Err = "Failed to load your trips"
		t.Trips = []models.Itinerary{}
		return err
	}
	t.Trips = trips
	t.Initialized = true
	return nil
}

// Add prepends a newly saved trip.
func (t *TripList) Add(it models.Itinerary) {
	t.Trips = append([]models.Itinerary{it}, t.Trips...)
}

// Delete removes a trip optimistically, then issues the remote delete. A
// remote failure restores the pre-delete snapshot and returns the error.
func (t *TripList) Delete(id string) error {
	if id == "" {
		return nil
	}

	previous := make([]models.Itinerary, len(t.Trips))
	copy(previous, t.Trips)

	kept := t.Trips[:0:0]
	for _, trip := range t.Trips {
		if trip.ID != id {
			kept = append(kept, trip)
		}
	}
	t.Trips = kept

	if err := t.api.DeleteTrip(id); err != nil {
		log.Printf("⚠️  Failed to delete trip %s: %v — restoring list", id, err)
		t.Trips = previous
		return err
	}
	return nil
}
