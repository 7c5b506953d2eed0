package services

import (
	"testing"

	"tripit/catalog"
	"tripit/models"
)

func findByName(t *testing.T, scored []ScoredDestination, name string) ScoredDestination {
	t.Helper()
	for _, s := range scored {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("destination %q not in scored results", name)
	return ScoredDestination{}
}

func TestScoreDestinations(t *testing.T) {
	req := models.RecommendationRequest{
		Budget:     200000,
		Days:       6,
		TravelType: "adventure",
		Interest:   "mountains",
		Travelers:  2,
	}
	scored := ScoreDestinations(catalog.All, req)

	if len(scored) != len(catalog.All) {
		t.Fatalf("scored %d of %d destinations", len(scored), len(catalog.All))
	}

	t.Run("sorted highest first", func(t *testing.T) {
		for i := 1; i < len(scored); i++ {
			if scored[i].Score > scored[i-1].Score {
				t.Fatalf("position %d (%.0f) outranks position %d (%.0f)",
					i, scored[i].Score, i-1, scored[i-1].Score)
			}
		}
	})

	t.Run("scores capped at 100", func(t *testing.T) {
		for _, s := range scored {
			if s.Score > 100 {
				t.Errorf("%s scored %.0f", s.Name, s.Score)
			}
		}
	})

	t.Run("terrain and type match outranks mismatch", func(t *testing.T) {
		manali := findByName(t, scored, "Manali")
		goa := findByName(t, scored, "Goa")
		if manali.Score <= goa.Score {
			t.Errorf("Manali (%.0f) should outrank Goa (%.0f) for a mountain adventure trip",
				manali.Score, goa.Score)
		}
	})
}

func TestScoreDestinationsBudgetBands(t *testing.T) {
	dest := []models.Destination{
		{Name: "Cheap", EstimatedCost: 400, TripType: "adventure", Terrain: "mountain"},
		{Name: "SweetSpot", EstimatedCost: 1500, TripType: "adventure", Terrain: "mountain"},
		{Name: "WayOver", EstimatedCost: 5000, TripType: "adventure", Terrain: "mountain"},
	}
	// 200000 display units = 2500 internal units.
	req := models.RecommendationRequest{Budget: 200000, Days: 5, TravelType: "adventure", Interest: "mountains"}
	scored := ScoreDestinations(dest, req)

	sweet := findByName(t, scored, "SweetSpot")
	cheap := findByName(t, scored, "Cheap")
	over := findByName(t, scored, "WayOver")

	if sweet.Score <= cheap.Score {
		t.Errorf("sweet-spot pricing (%.0f) should beat well-under-budget (%.0f)", sweet.Score, cheap.Score)
	}
	if cheap.Score <= over.Score {
		t.Errorf("affordable (%.0f) should beat unaffordable (%.0f)", cheap.Score, over.Score)
	}
}

func TestDestinationTags(t *testing.T) {
	d := models.Destination{
		Highlights: "Pangong Lake, Nubra Valley, Monasteries",
		TripType:   "Adventure",
		Terrain:    "mountain",
	}
	tags := DestinationTags(d)
	want := []string{"pangong lake", "nubra valley", "monasteries", "adventure", "mountain"}
	if len(tags) != len(want) {
		t.Fatalf("got %d tags %v, want %d", len(tags), tags, len(want))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d = %q, want %q", i, tags[i], want[i])
		}
	}
}
