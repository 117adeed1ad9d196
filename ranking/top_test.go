package ranking

import (
	"errors"
	"math"
	"testing"

	"github.com/botirk38/collabfilter/types"
)

func critics() types.PreferenceMatrix[string, string] {
	return types.PreferenceMatrix[string, string]{
		"Lisa Rose":     {"Lady in the Water": 2.5, "Snakes on a Plane": 3.5, "Just My Luck": 3.0, "Superman Returns": 3.5, "You, Me and Dupree": 2.5, "The Night Listener": 3.0},
		"Gene Seymour":  {"Lady in the Water": 3.0, "Snakes on a Plane": 3.5, "Just My Luck": 1.5, "Superman Returns": 5.0, "The Night Listener": 3.0, "You, Me and Dupree": 3.5},
		"Michael":       {"Lady in the Water": 2.5, "Snakes on a Plane": 3.0, "Superman Returns": 3.5, "The Night Listener": 4.0},
		"Claudia Puig":  {"Snakes on a Plane": 3.5, "Just My Luck": 3.0, "The Night Listener": 4.5, "Superman Returns": 4.0, "You, Me and Dupree": 2.5},
		"Mick LaSalle":  {"Lady in the Water": 3.0, "Snakes on a Plane": 4.0, "Just My Luck": 2.0, "Superman Returns": 3.0, "The Night Listener": 3.0, "You, Me and Dupree": 2.0},
		"Jack Matthews": {"Lady in the Water": 3.0, "Snakes on a Plane": 4.0, "The Night Listener": 3.0, "Superman Returns": 5.0, "You, Me and Dupree": 3.5},
		"Toby":          {"Snakes on a Plane": 4.5, "You, Me and Dupree": 1.0, "Superman Returns": 4.0},
	}
}

func TestTopMatches(t *testing.T) {
	prefs := critics()

	t.Run("Pearson", func(t *testing.T) {
		matches, err := TopMatches(prefs, "Toby", 3, types.MetricPearson)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := []struct {
			id    string
			score float64
		}{
			{"Lisa Rose", 0.99124070},
			{"Mick LaSalle", 0.92447345},
			{"Claudia Puig", 0.89340515},
		}
		if len(matches) != len(want) {
			t.Fatalf("Expected %d matches, got %d", len(want), len(matches))
		}
		for i, w := range want {
			if matches[i].ID != w.id {
				t.Errorf("Position %d: expected %s, got %s", i, w.id, matches[i].ID)
			}
			if math.Abs(matches[i].Score-w.score) > 1e-6 {
				t.Errorf("Position %d: expected score %f, got %f", i, w.score, matches[i].Score)
			}
		}
	})

	t.Run("LengthAndOrder", func(t *testing.T) {
		for _, metric := range []types.Metric{types.MetricEuclidean, types.MetricManhattan, types.MetricPearson} {
			for _, n := range []int{1, 3, 6, 10} {
				matches, err := TopMatches(prefs, "Lisa Rose", n, metric)
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if want := min(n, len(prefs)-1); len(matches) != want {
					t.Errorf("%s n=%d: expected %d matches, got %d", metric, n, want, len(matches))
				}
				for i := 1; i < len(matches); i++ {
					if matches[i].Score > matches[i-1].Score {
						t.Errorf("%s: matches not sorted at %d: %v", metric, i, matches)
					}
				}
				for _, m := range matches {
					if m.ID == "Lisa Rose" {
						t.Errorf("%s: target entity returned in its own matches", metric)
					}
				}
			}
		}
	})

	t.Run("TieBreakDescendingID", func(t *testing.T) {
		ties := types.PreferenceMatrix[string, string]{
			"p": {"x": 1},
			"a": {"x": 1},
			"b": {"x": 1},
			"c": {"x": 1},
		}
		matches, err := TopMatches(ties, "p", 5, types.MetricEuclidean)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got := []string{matches[0].ID, matches[1].ID, matches[2].ID}
		if got[0] != "c" || got[1] != "b" || got[2] != "a" {
			t.Errorf("Expected [c b a], got %v", got)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		if _, err := TopMatches(prefs, "Nobody", 3, types.MetricPearson); !errors.Is(err, types.ErrKeyNotFound) {
			t.Errorf("Expected ErrKeyNotFound, got %v", err)
		}
		if _, err := TopMatches(prefs, "Toby", 0, types.MetricPearson); !errors.Is(err, types.ErrInvalidN) {
			t.Errorf("Expected ErrInvalidN, got %v", err)
		}
		if _, err := TopMatches(prefs, "Toby", 3, types.Metric(0)); !errors.Is(err, types.ErrUnknownMetric) {
			t.Errorf("Expected ErrUnknownMetric, got %v", err)
		}
	})

	t.Run("SingleEntity", func(t *testing.T) {
		alone := types.PreferenceMatrix[string, string]{"p": {"x": 1}}
		matches, err := TopMatches(alone, "p", 5, types.MetricPearson)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("Expected no matches, got %v", matches)
		}
	})
}
