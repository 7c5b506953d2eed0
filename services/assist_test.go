package services

import (
	"math/rand"
	"strings"
	"testing"

	"tripit/models"
)

func TestFallbackChatReply(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"I want a beach holiday", "Goa"},
		{"best mountain treks?", "Manali"},
		{"interested in heritage and history", "Jaipur"},
		{"something cheap and affordable", "Rishikesh"},
		{"planning our honeymoon", "Udaipur"},
		{"hello", "plan your perfect trip"},
	}
	for _, tc := range cases {
		got := FallbackChatReply(tc.message)
		if !strings.Contains(got, tc.want) {
			t.Errorf("FallbackChatReply(%q) = %q, want mention of %q", tc.message, got, tc.want)
		}
	}
}

func TestChatReplyWithoutKey(t *testing.T) {
	var c *AIClient
	if got := c.ChatReply("beach"); !strings.Contains(got, "Goa") {
		t.Errorf("nil-client reply = %q", got)
	}
}

func TestRuleBasedSuggestions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("caps at three", func(t *testing.T) {
		got := RuleBasedSuggestions(models.SuggestionRequest{
			TripType: models.TripAdventure,
			Terrain:  models.TerrainMountain,
			Budget:   models.BudgetLow,
		}, rng)
		if len(got) == 0 || len(got) > 3 {
			t.Fatalf("got %d suggestions: %v", len(got), got)
		}
	})

	t.Run("budget tier picks the money tip", func(t *testing.T) {
		got := RuleBasedSuggestions(models.SuggestionRequest{Budget: models.BudgetLow}, rng)
		if !containsSubstring(got, "homestays") {
			t.Errorf("suggestions = %v, want a homestay tip", got)
		}
	})

	t.Run("luxury tier picks the comfort tip", func(t *testing.T) {
		got := RuleBasedSuggestions(models.SuggestionRequest{Budget: models.BudgetLuxury}, rng)
		if !containsSubstring(got, "private transfers") {
			t.Errorf("suggestions = %v, want a transfer tip", got)
		}
	})

	t.Run("weekend duration picks the timing tip", func(t *testing.T) {
		got := RuleBasedSuggestions(models.SuggestionRequest{Duration: models.DurationWeekend}, rng)
		if !containsSubstring(got, "Start early") {
			t.Errorf("suggestions = %v, want a weekend tip", got)
		}
	})

	t.Run("default picks the planning tip", func(t *testing.T) {
		got := RuleBasedSuggestions(models.SuggestionRequest{TripType: models.TripRomantic}, rng)
		if !containsSubstring(got, "2 months in advance") {
			t.Errorf("suggestions = %v, want the plan-ahead tip", got)
		}
	})
}

func TestSuggestionsForWithoutKey(t *testing.T) {
	var c *AIClient
	got := c.SuggestionsFor(models.SuggestionRequest{TripType: models.TripSpiritual}, rand.New(rand.NewSource(2)))
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("got %d suggestions: %v", len(got), got)
	}
	if !containsSubstring(got, "spiritual rejuvenation") {
		t.Errorf("suggestions = %v, want a spiritual destination tip", got)
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
