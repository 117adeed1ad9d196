package similarity

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/botirk38/collabfilter/types"
)

func sampleMatrix() types.PreferenceMatrix[string, string] {
	return types.PreferenceMatrix[string, string]{
		"A": {"x": 5, "y": 3},
		"B": {"x": 4, "y": 3, "z": 2},
		"C": {"x": 5, "z": 1},
		"D": {"w": 2},
	}
}

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

func TestSharedItems(t *testing.T) {
	prefs := sampleMatrix()

	shared, err := SharedItems(prefs, "A", "B")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !slices.Equal(shared, []string{"x", "y"}) {
		t.Errorf("Expected [x y], got %v", shared)
	}

	shared, err = SharedItems(prefs, "A", "D")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(shared) != 0 {
		t.Errorf("Expected no shared items, got %v", shared)
	}

	if _, err := SharedItems(prefs, "A", "missing"); !errors.Is(err, types.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
	if _, err := SharedItems(prefs, "missing", "A"); !errors.Is(err, types.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestSimilarityFunctions(t *testing.T) {
	prefs := sampleMatrix()

	t.Run("EuclideanSimilarity", func(t *testing.T) {
		sim, err := EuclideanSimilarity(prefs, "A", "B")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if sim != 0.5 {
			t.Errorf("Expected 0.5, got %f", sim)
		}

		// Identical profile (should be 1)
		sim, _ = EuclideanSimilarity(prefs, "A", "A")
		if sim != 1 {
			t.Errorf("Expected 1, got %f", sim)
		}

		// No shared items (should be 0)
		sim, _ = EuclideanSimilarity(prefs, "A", "D")
		if sim != 0 {
			t.Errorf("Expected 0 for disjoint profiles, got %f", sim)
		}
	})

	t.Run("ManhattanSimilarity", func(t *testing.T) {
		sim, err := ManhattanSimilarity(prefs, "A", "B")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if sim != 0.5 {
			t.Errorf("Expected 0.5, got %f", sim)
		}

		// No shared items scores 1, unlike Euclidean
		sim, _ = ManhattanSimilarity(prefs, "A", "D")
		if sim != 1 {
			t.Errorf("Expected 1 for disjoint profiles, got %f", sim)
		}

		sim, _ = ManhattanSimilarity(prefs, "B", "C")
		if math.Abs(sim-1.0/3.0) > 1e-12 {
			t.Errorf("Expected 1/3, got %f", sim)
		}
	})

	t.Run("PearsonSimilarity", func(t *testing.T) {
		linear := types.PreferenceMatrix[string, int]{
			"a": {1: 1, 2: 2, 3: 3, 4: 4, 5: 5},
			"b": {1: 2, 2: 4, 3: 6, 4: 8, 5: 10},
			"c": {1: 5, 2: 4, 3: 3, 4: 2, 5: 1},
			"d": {1: 3, 2: 3, 3: 3},
			"e": {9: 1},
		}

		sim, _ := PearsonSimilarity(linear, "a", "b")
		if math.Abs(sim-1) > 0.001 {
			t.Errorf("Expected ~1 for perfect correlation, got %f", sim)
		}

		sim, _ = PearsonSimilarity(linear, "a", "c")
		if math.Abs(sim+1) > 0.001 {
			t.Errorf("Expected ~-1 for negative correlation, got %f", sim)
		}

		// Zero variance
		sim, _ = PearsonSimilarity(linear, "a", "d")
		if sim != 0 {
			t.Errorf("Expected 0 for zero variance, got %f", sim)
		}

		// No shared items
		sim, _ = PearsonSimilarity(linear, "a", "e")
		if sim != 0 {
			t.Errorf("Expected 0 for disjoint profiles, got %f", sim)
		}

		sim, _ = PearsonSimilarity(critics(), "Lisa Rose", "Gene Seymour")
		if math.Abs(sim-0.396059017) > 1e-6 {
			t.Errorf("Expected ~0.396059, got %f", sim)
		}
	})

	t.Run("MissingEntity", func(t *testing.T) {
		for _, metric := range []types.Metric{types.MetricEuclidean, types.MetricManhattan, types.MetricPearson} {
			if _, err := Score(metric, prefs, "A", "nobody"); !errors.Is(err, types.ErrKeyNotFound) {
				t.Errorf("%s: expected ErrKeyNotFound, got %v", metric, err)
			}
		}
	})

	t.Run("UnknownMetric", func(t *testing.T) {
		if _, err := Score(types.Metric(42), prefs, "A", "B"); !errors.Is(err, types.ErrUnknownMetric) {
			t.Errorf("Expected ErrUnknownMetric, got %v", err)
		}
	})
}

func TestSimilaritySymmetry(t *testing.T) {
	prefs := critics()
	ids := prefs.Entities()

	for _, metric := range []types.Metric{types.MetricEuclidean, types.MetricManhattan, types.MetricPearson} {
		t.Run(metric.String(), func(t *testing.T) {
			for _, a := range ids {
				for _, b := range ids {
					ab, err := Score(metric, prefs, a, b)
					if err != nil {
						t.Fatalf("Unexpected error: %v", err)
					}
					ba, _ := Score(metric, prefs, b, a)
					if ab != ba {
						t.Errorf("%s(%s,%s)=%v but %s(%s,%s)=%v", metric, a, b, ab, metric, b, a, ba)
					}
					if metric == types.MetricPearson && (ab < -1 || ab > 1) {
						t.Errorf("Pearson out of range: %v", ab)
					}
					if metric != types.MetricPearson && (ab <= 0 || ab > 1) {
						t.Errorf("%s out of (0,1]: %v", metric, ab)
					}
				}
			}
		})
	}

	for _, a := range ids {
		if sim, _ := EuclideanSimilarity(prefs, a, a); sim != 1 {
			t.Errorf("Expected self-similarity 1 for %s, got %f", a, sim)
		}
	}
}
